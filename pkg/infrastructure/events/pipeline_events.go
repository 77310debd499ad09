package events

import (
	"fmt"
	"time"
)

// Constructors for the pipeline's run events. They stamp the wall
// clock; the journal assigns stream versions on append.

func NewRunStarted(runID string, date time.Time, stage int) Event {
	return Event{
		Type:   RunStarted,
		RunID:  runID,
		Date:   date,
		At:     time.Now(),
		Detail: fmt.Sprintf("pipeline started through stage %d", stage),
	}
}

func NewSourceDegraded(runID string, date time.Time, source string) Event {
	return Event{
		Type:   SourceDegraded,
		RunID:  runID,
		Date:   date,
		At:     time.Now(),
		Detail: source + " unavailable, continuing with fallback values",
	}
}

func NewStageCompleted(runID string, date time.Time, stage, records int, elapsed time.Duration) Event {
	return Event{
		Type:   StageCompleted,
		RunID:  runID,
		Date:   date,
		At:     time.Now(),
		Detail: fmt.Sprintf("stage %d produced %d records in %s", stage, records, elapsed),
	}
}

func NewDateSkipped(runID string, date time.Time, reason string) Event {
	return Event{
		Type:   DateSkipped,
		RunID:  runID,
		Date:   date,
		At:     time.Now(),
		Detail: "skipped: " + reason,
	}
}

func NewRunCompleted(runID string, date time.Time, records int) Event {
	return Event{
		Type:   RunCompleted,
		RunID:  runID,
		Date:   date,
		At:     time.Now(),
		Detail: fmt.Sprintf("completed with %d ranked records", records),
	}
}
