package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"teamwork-time/internal/domain"
	"teamwork-time/internal/ports"
	"teamwork-time/internal/report"
)

// ReportUseCase fetches one month of Teamwork time for the API key's owner,
// aggregates it and hands the totals to an Exporter.
type ReportUseCase struct {
	Log      *slog.Logger
	Teamwork ports.TeamworkClient
	Exporter ports.Exporter
	Now      func() time.Time // defaults to time.Now
}

// Run executes the pipeline for month/year (zero means omitted). Stages run
// strictly in sequence and the first failure aborts the run.
func (uc *ReportUseCase) Run(ctx context.Context, month, year int) (domain.Totals, error) {
	if uc.Teamwork == nil || uc.Exporter == nil {
		return domain.Totals{}, errors.New("usecase not initialized: missing dependencies")
	}
	now := time.Now
	if uc.Now != nil {
		now = uc.Now
	}

	userID, err := uc.Teamwork.CurrentUserID(ctx)
	if err != nil {
		return domain.Totals{}, err
	}

	interval, err := domain.MonthWindow(now(), month, year)
	if err != nil {
		return domain.Totals{}, err
	}
	uc.Log.Info("fetching time entries",
		slog.String("user_id", userID),
		slog.String("from", interval.From),
		slog.String("to", interval.To),
	)

	entries, err := uc.Teamwork.ListTimeEntries(ctx, userID, interval)
	if err != nil {
		return domain.Totals{}, err
	}
	uc.Log.Info("fetched time entries", slog.Int("count", len(entries)))

	totals, err := report.Aggregate(entries, interval)
	if err != nil {
		return domain.Totals{}, err
	}
	uc.Log.Info("aggregated time entries",
		slog.String("user", totals.User),
		slog.Float64("total_hours", totals.Total),
		slog.Int("projects", len(totals.Summary)),
		slog.Int("days", len(totals.Days)),
	)

	if err := uc.Exporter.Export(ctx, interval, totals); err != nil {
		return domain.Totals{}, err
	}
	return totals, nil
}
