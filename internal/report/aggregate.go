// Package report reduces Teamwork time entries into per-project and per-day totals.
package report

import (
	"teamwork-time/internal/domain"
)

// Aggregate builds the Totals for entries within interval.
// The report is named after the first entry's person; entries are assumed
// to belong to one user since the fetch is scoped by user id.
func Aggregate(entries []domain.TimeEntry, interval domain.TimeInterval) (domain.Totals, error) {
	if len(entries) == 0 {
		return domain.Totals{}, domain.ErrEmptyResult
	}

	totals := domain.Totals{
		User:    entries[0].PersonName(),
		From:    interval.From,
		To:      interval.To,
		Summary: make(map[string]*domain.ProjectTotals),
		Days:    make(map[string]*domain.DayTotals),
	}

	for _, e := range entries {
		project := e.ProjectName
		task := e.TaskLabel()

		summary := projectIn(totals.Summary, project)
		day := dayIn(totals.Days, e.DayLabel())
		dayProject := projectIn(day.Projects, project)

		summary.Tasks[task] += e.Hours
		summary.Total += e.Hours
		dayProject.Tasks[task] += e.Hours
		dayProject.Total += e.Hours
		day.Total += e.Hours
		totals.Total += e.Hours
	}
	return totals, nil
}

func projectIn(m map[string]*domain.ProjectTotals, name string) *domain.ProjectTotals {
	p, ok := m[name]
	if !ok {
		p = &domain.ProjectTotals{Tasks: make(map[string]float64)}
		m[name] = p
	}
	return p
}

func dayIn(m map[string]*domain.DayTotals, label string) *domain.DayTotals {
	d, ok := m[label]
	if !ok {
		d = &domain.DayTotals{Projects: make(map[string]*domain.ProjectTotals)}
		m[label] = d
	}
	return d
}
