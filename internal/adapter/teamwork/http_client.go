package teamwork

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"teamwork-time/internal/domain"
)

// DefaultBaseURL is the Teamwork site queried when no base URL is configured.
const DefaultBaseURL = "https://gisat.teamwork.com"

// apiKeyPassword is the fixed Basic-auth password Teamwork expects alongside an API key.
const apiKeyPassword = "authByApiKey"

// Client implements ports.TeamworkClient using the Teamwork Projects v1 API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *slog.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, log *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CurrentUserID returns the person id of the API key's owner.
// GET /me.json
func (c *Client) CurrentUserID(ctx context.Context) (string, error) {
	if c.apiKey == "" {
		return "", domain.ErrMissingCredential
	}
	resp, err := c.get(ctx, "/me.json", nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrAuthentication, err)
	}
	defer resp.Body.Close()

	var me rawMe
	if err := json.NewDecoder(resp.Body).Decode(&me); err != nil {
		return "", fmt.Errorf("%w: decoding profile: %w", domain.ErrAuthentication, err)
	}
	if me.Person.ID == "" {
		return "", fmt.Errorf("%w: profile has no person id", domain.ErrAuthentication)
	}
	c.log.Debug("resolved teamwork user", slog.String("user_id", string(me.Person.ID)))
	return string(me.Person.ID), nil
}

// ListTimeEntries fetches every page of the user's entries within interval.
// GET /time_entries.json?userId=...&fromDate=...&toDate=...&page=...
// The server reports paging through the X-Page and X-Pages headers.
func (c *Client) ListTimeEntries(ctx context.Context, userID string, interval domain.TimeInterval) ([]domain.TimeEntry, error) {
	if c.apiKey == "" {
		return nil, domain.ErrMissingCredential
	}
	var (
		out      []domain.TimeEntry
		page     = 0
		lastSeen = -1
	)
	for {
		q := url.Values{}
		q.Set("userId", userID)
		q.Set("fromDate", interval.From)
		q.Set("toDate", interval.To)
		q.Set("page", strconv.Itoa(page))

		entries, current, total, err := c.fetchPage(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %w", domain.ErrFetch, page, err)
		}
		out = append(out, entries...)
		c.log.Debug("fetched time entries page",
			slog.Int("page", current),
			slog.Int("pages", total),
			slog.Int("count", len(entries)),
		)

		if current < 0 || total < 0 || current >= total {
			break
		}
		if current <= lastSeen {
			return nil, fmt.Errorf("%w: page header did not advance past %d", domain.ErrFetch, lastSeen)
		}
		lastSeen = current
		page = current + 1
	}
	return out, nil
}

// fetchPage returns the page's entries and the X-Page/X-Pages values,
// or -1 for a header that is missing or not an integer.
func (c *Client) fetchPage(ctx context.Context, q url.Values) ([]domain.TimeEntry, int, int, error) {
	resp, err := c.get(ctx, "/time_entries.json", q)
	if err != nil {
		return nil, 0, 0, err
	}
	defer resp.Body.Close()

	var body rawTimeEntries
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, 0, 0, err
	}
	entries := make([]domain.TimeEntry, 0, len(body.TimeEntries))
	for _, r := range body.TimeEntries {
		e, err := r.toDomain()
		if err != nil {
			return nil, 0, 0, fmt.Errorf("entry %s: %w", r.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, headerInt(resp.Header, "X-Page"), headerInt(resp.Header, "X-Pages"), nil
}

// get issues an authenticated GET and returns the response only for 200 OK.
func (c *Client) get(ctx context.Context, path string, q url.Values) (*http.Response, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, err
	}
	u.Path = strings.TrimRight(u.Path, "/") + path
	if q != nil {
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	// Basic auth: apiKey:authByApiKey
	auth := base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%s", c.apiKey, apiKeyPassword)))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("teamwork: unexpected status %d: %s", resp.StatusCode, string(body))
	}
	return resp, nil
}

func headerInt(h http.Header, key string) int {
	v, err := strconv.Atoi(strings.TrimSpace(h.Get(key)))
	if err != nil {
		return -1
	}
	return v
}

type rawMe struct {
	Person struct {
		ID flexString `json:"id"`
	} `json:"person"`
}

type rawTimeEntries struct {
	TimeEntries []rawTimeEntry `json:"time-entries"`
}

// rawTimeEntry mirrors the JSON from Teamwork v1.
type rawTimeEntry struct {
	ID                  flexString `json:"id"`
	PersonFirstName     string     `json:"person-first-name"`
	PersonLastName      string     `json:"person-last-name"`
	ProjectName         string     `json:"project-name"`
	TaskName            string     `json:"todo-item-name"`
	ParentTaskName      string     `json:"parentTaskName"`
	Description         string     `json:"description"`
	HoursDecimal        flexString `json:"hoursDecimal"`
	DateUserPerspective string     `json:"dateUserPerspective"`
	Date                string     `json:"date"`
}

func (r rawTimeEntry) toDomain() (domain.TimeEntry, error) {
	hours, err := strconv.ParseFloat(strings.TrimSpace(string(r.HoursDecimal)), 64)
	if err != nil {
		return domain.TimeEntry{}, fmt.Errorf("hoursDecimal %q: %w", r.HoursDecimal, err)
	}
	raw := r.DateUserPerspective
	if raw == "" {
		raw = r.Date
	}
	date, err := parseDate(raw)
	if err != nil {
		return domain.TimeEntry{}, err
	}
	return domain.TimeEntry{
		ID:              string(r.ID),
		PersonFirstName: r.PersonFirstName,
		PersonLastName:  r.PersonLastName,
		ProjectName:     r.ProjectName,
		TaskName:        r.TaskName,
		ParentTaskName:  r.ParentTaskName,
		Description:     r.Description,
		Hours:           hours,
		Date:            date,
	}, nil
}

// parseDate accepts RFC3339 timestamps and plain YYYY-MM-DD dates. The
// parsed offset is kept so the calendar day matches the user's perspective.
func parseDate(val string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t, nil
	}
	if d, err := time.Parse("2006-01-02", val); err == nil {
		return d, nil
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", val)
}

// flexString decodes a JSON string or number into its textual form.
// Teamwork sends ids and decimal hours either way depending on endpoint.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New("expected string or number")
	}
	*f = flexString(n.String())
	return nil
}
