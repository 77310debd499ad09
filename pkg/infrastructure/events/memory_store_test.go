package events

import (
	"testing"
	"time"
)

func TestMemoryJournalVersionsPerStream(t *testing.T) {
	journal := NewMemoryJournal()
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	journal.Append(NewRunStarted("run-a", date, 3))
	journal.Append(NewStageCompleted("run-a", date, 1, 40, time.Millisecond))
	journal.Append(NewRunStarted("run-b", date, 1))
	journal.Append(NewRunCompleted("run-a", date, 40))

	a := journal.Events("run-a")
	if len(a) != 3 {
		t.Fatalf("run-a events = %d, want 3", len(a))
	}
	for i, event := range a {
		if event.Version != i+1 {
			t.Errorf("run-a event %d version = %d, want %d", i, event.Version, i+1)
		}
	}
	if a[0].Type != RunStarted || a[1].Type != StageCompleted || a[2].Type != RunCompleted {
		t.Errorf("run-a sequence = %v %v %v", a[0].Type, a[1].Type, a[2].Type)
	}

	b := journal.Events("run-b")
	if len(b) != 1 {
		t.Fatalf("run-b events = %d, want 1", len(b))
	}
	if b[0].Version != 1 {
		t.Errorf("run-b version = %d, want 1", b[0].Version)
	}
}

func TestMemoryJournalAllPreservesArrivalOrder(t *testing.T) {
	journal := NewMemoryJournal()
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	journal.Append(NewRunStarted("run-a", date, 2))
	journal.Append(NewDateSkipped("run-b", date, "no demand data"))
	journal.Append(NewSourceDegraded("run-a", date, "stockouts"))

	all := journal.All()
	if len(all) != 3 {
		t.Fatalf("all events = %d, want 3", len(all))
	}
	want := []Type{RunStarted, DateSkipped, SourceDegraded}
	for i, event := range all {
		if event.Type != want[i] {
			t.Errorf("event %d type = %v, want %v", i, event.Type, want[i])
		}
	}
}

func TestMemoryJournalReturnsCopies(t *testing.T) {
	journal := NewMemoryJournal()
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	journal.Append(NewRunStarted("run-a", date, 3))

	got := journal.Events("run-a")
	got[0].Detail = "mutated"

	if journal.Events("run-a")[0].Detail == "mutated" {
		t.Error("Events returned shared backing storage")
	}

	all := journal.All()
	all[0].Detail = "mutated"
	if journal.All()[0].Detail == "mutated" {
		t.Error("All returned shared backing storage")
	}
}

func TestMemoryJournalUnknownRun(t *testing.T) {
	journal := NewMemoryJournal()
	if got := journal.Events("missing"); len(got) != 0 {
		t.Errorf("events for unknown run = %d, want 0", len(got))
	}
}

func TestNopJournalDiscards(t *testing.T) {
	journal := Nop()
	journal.Append(NewRunStarted("run-a", time.Now(), 1))

	if len(journal.Events("run-a")) != 0 {
		t.Error("nop journal retained an event")
	}
	if len(journal.All()) != 0 {
		t.Error("nop journal retained an event in All")
	}
}
