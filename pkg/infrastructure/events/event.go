package events

import "time"

// Type identifies a pipeline run milestone.
type Type string

// Milestones recorded over a pipeline run. Date-scoped events carry the
// analysis date; run-scoped events leave it zero.
const (
	RunStarted     Type = "run.started"
	SourceDegraded Type = "source.degraded"
	StageCompleted Type = "stage.completed"
	DateSkipped    Type = "date.skipped"
	RunCompleted   Type = "run.completed"
)

// Event is one recorded milestone of a pipeline run. Version is the
// 1-based append position within the run's stream, assigned by the
// journal on append.
type Event struct {
	Type    Type
	RunID   string
	Date    time.Time
	At      time.Time
	Version int
	Detail  string
}

// Journal records run events for later inspection. Recording must never
// fail a run, so Append returns nothing.
type Journal interface {
	Append(event Event)
	Events(runID string) []Event
	All() []Event
}

// Nop returns a journal that discards everything.
func Nop() Journal { return nopJournal{} }

type nopJournal struct{}

func (nopJournal) Append(Event)          {}
func (nopJournal) Events(string) []Event { return nil }
func (nopJournal) All() []Event          { return nil }
