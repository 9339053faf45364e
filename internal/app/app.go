package app

import (
	"context"
	"io"
	"log/slog"

	"teamwork-time/internal/adapter/jsonfile"
	tw "teamwork-time/internal/adapter/teamwork"
	"teamwork-time/internal/config"
	"teamwork-time/internal/domain"
	"teamwork-time/internal/usecase"
)

// App wires adapters and use cases for one API key.
type App struct {
	log *slog.Logger
	uc  *usecase.ReportUseCase
}

// New builds the pipeline. Reports are echoed to out.
func New(log *slog.Logger, cfg config.Config, apiKey string, out io.Writer) (*App, error) {
	if apiKey == "" {
		return nil, domain.ErrMissingCredential
	}
	client := tw.NewClient(cfg.Teamwork.BaseURL, apiKey, cfg.Teamwork.Timeout, log)
	exporter := jsonfile.NewExporter(cfg.Export.Dir, out, log)

	uc := &usecase.ReportUseCase{
		Log:      log,
		Teamwork: client,
		Exporter: exporter,
	}
	return &App{log: log, uc: uc}, nil
}

// Run produces the report for month/year; zero values select the previous month.
func (a *App) Run(ctx context.Context, month, year int) (domain.Totals, error) {
	return a.uc.Run(ctx, month, year)
}
