package domain

import "errors"

var (
	ErrMissingCredential = errors.New("missing API key")
	ErrAuthentication    = errors.New("authentication failed")
	ErrFetch             = errors.New("fetching time entries failed")
	ErrEmptyResult       = errors.New("no logged time")
	ErrFileWrite         = errors.New("writing export file failed")
	ErrInvalidWindow     = errors.New("invalid time window")
)
