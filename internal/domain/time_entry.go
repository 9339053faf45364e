package domain

import "time"

// TimeEntry represents a Teamwork time entry in the domain.
type TimeEntry struct {
	ID              string
	PersonFirstName string
	PersonLastName  string
	ProjectName     string
	TaskName        string
	ParentTaskName  string // empty when the task has no parent
	Description     string
	Hours           float64
	Date            time.Time // user-perspective date, kept in the offset the API reported
}

// PersonName returns "<first> <last>".
func (e TimeEntry) PersonName() string {
	return e.PersonFirstName + " " + e.PersonLastName
}

// TaskLabel prefixes the task with its parent task, if any.
func (e TimeEntry) TaskLabel() string {
	if e.ParentTaskName != "" {
		return e.ParentTaskName + " >> " + e.TaskName
	}
	return e.TaskName
}

// DayLabel formats the entry date as "DD.MM. - Weekday".
func (e TimeEntry) DayLabel() string {
	return e.Date.Format("02.01. - Monday")
}
