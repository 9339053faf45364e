package report

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"teamwork-time/internal/domain"
)

var march = domain.TimeInterval{From: "20240301", To: "20240331"}

func entry(project, parent, task string, hours float64, day int) domain.TimeEntry {
	return domain.TimeEntry{
		PersonFirstName: "Ada",
		PersonLastName:  "Lovelace",
		ProjectName:     project,
		ParentTaskName:  parent,
		TaskName:        task,
		Hours:           hours,
		Date:            time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
	}
}

func sampleEntries() []domain.TimeEntry {
	return []domain.TimeEntry{
		entry("Engine", "Release", "Fix bug", 1.5, 4),
		entry("Engine", "", "Write docs", 2, 4),
		entry("Website", "", "Deploy", 0.25, 4),
		entry("Engine", "Release", "Fix bug", 3, 5),
		entry("Website", "", "Deploy", 1.75, 6),
	}
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestAggregate_EmptyInput(t *testing.T) {
	_, err := Aggregate(nil, march)
	if !errors.Is(err, domain.ErrEmptyResult) {
		t.Fatalf("expected ErrEmptyResult, got %v", err)
	}
}

func TestAggregate_Structure(t *testing.T) {
	got, err := Aggregate(sampleEntries(), march)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	want := domain.Totals{
		User:  "Ada Lovelace",
		From:  "20240301",
		To:    "20240331",
		Total: 8.5,
		Summary: map[string]*domain.ProjectTotals{
			"Engine": {
				Tasks: map[string]float64{"Release >> Fix bug": 4.5, "Write docs": 2},
				Total: 6.5,
			},
			"Website": {
				Tasks: map[string]float64{"Deploy": 2},
				Total: 2,
			},
		},
		Days: map[string]*domain.DayTotals{
			"04.03. - Monday": {
				Projects: map[string]*domain.ProjectTotals{
					"Engine":  {Tasks: map[string]float64{"Release >> Fix bug": 1.5, "Write docs": 2}, Total: 3.5},
					"Website": {Tasks: map[string]float64{"Deploy": 0.25}, Total: 0.25},
				},
				Total: 3.75,
			},
			"05.03. - Tuesday": {
				Projects: map[string]*domain.ProjectTotals{
					"Engine": {Tasks: map[string]float64{"Release >> Fix bug": 3}, Total: 3},
				},
				Total: 3,
			},
			"06.03. - Wednesday": {
				Projects: map[string]*domain.ProjectTotals{
					"Website": {Tasks: map[string]float64{"Deploy": 1.75}, Total: 1.75},
				},
				Total: 1.75,
			},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected totals:\n got %+v\nwant %+v", got, want)
	}
}

func TestAggregate_SumsAgree(t *testing.T) {
	entries := sampleEntries()
	got, err := Aggregate(entries, march)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	var sum float64
	for _, e := range entries {
		sum += e.Hours
	}
	if !almostEqual(got.Total, sum) {
		t.Errorf("total %v, want %v", got.Total, sum)
	}

	var projects float64
	for name, p := range got.Summary {
		var tasks float64
		for _, h := range p.Tasks {
			tasks += h
		}
		if !almostEqual(tasks, p.Total) {
			t.Errorf("project %s: tasks sum %v, total %v", name, tasks, p.Total)
		}
		projects += p.Total
	}
	if !almostEqual(projects, got.Total) {
		t.Errorf("summary sum %v, total %v", projects, got.Total)
	}

	var days float64
	for label, d := range got.Days {
		var dayProjects float64
		for _, p := range d.Projects {
			dayProjects += p.Total
		}
		if !almostEqual(dayProjects, d.Total) {
			t.Errorf("day %s: projects sum %v, total %v", label, dayProjects, d.Total)
		}
		days += d.Total
	}
	if !almostEqual(days, got.Total) {
		t.Errorf("days sum %v, total %v", days, got.Total)
	}
}

func TestAggregate_OrderIndependentAndIdempotent(t *testing.T) {
	entries := sampleEntries()
	first, err := Aggregate(entries, march)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	second, _ := Aggregate(entries, march)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("aggregating the same input twice gave different results")
	}

	reversed := make([]domain.TimeEntry, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}
	third, _ := Aggregate(reversed, march)
	if !almostEqual(first.Total, third.Total) {
		t.Fatalf("reordered total %v, want %v", third.Total, first.Total)
	}
	for name, p := range first.Summary {
		if !almostEqual(p.Total, third.Summary[name].Total) {
			t.Errorf("project %s: reordered total %v, want %v", name, third.Summary[name].Total, p.Total)
		}
	}
}

func TestAggregate_UserFromFirstEntry(t *testing.T) {
	entries := sampleEntries()
	entries[1].PersonFirstName = "Grace"
	got, err := Aggregate(entries, march)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if got.User != "Ada Lovelace" {
		t.Fatalf("user %q, want first entry's name", got.User)
	}
}
