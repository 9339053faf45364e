package ports

import (
	"context"

	"teamwork-time/internal/domain"
)

// TeamworkClient resolves the calling user and lists their time entries.
type TeamworkClient interface {
	CurrentUserID(ctx context.Context) (string, error)
	ListTimeEntries(ctx context.Context, userID string, interval domain.TimeInterval) ([]domain.TimeEntry, error)
}

// Exporter persists an aggregated report.
type Exporter interface {
	Export(ctx context.Context, interval domain.TimeInterval, totals domain.Totals) error
}
