package domain

// Totals is the aggregated report for one user and one interval.
type Totals struct {
	User    string                    `json:"user"`
	From    string                    `json:"from"`
	To      string                    `json:"to"`
	Total   float64                   `json:"total"`
	Summary map[string]*ProjectTotals `json:"summary"`
	Days    map[string]*DayTotals     `json:"days"`
}

// ProjectTotals holds hours per task label and their sum.
type ProjectTotals struct {
	Tasks map[string]float64 `json:"tasks"`
	Total float64            `json:"total"`
}

// DayTotals holds one day's hours grouped by project.
type DayTotals struct {
	Projects map[string]*ProjectTotals `json:"projects"`
	Total    float64                   `json:"total"`
}
