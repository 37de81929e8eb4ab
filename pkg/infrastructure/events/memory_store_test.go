package events

import (
	"testing"
)

func TestInMemoryEventStore_AppendAndRead(t *testing.T) {
	store := NewInMemoryEventStore()
	runID := NewRunID()

	if err := store.AppendEvent(runID, NewEvent(DealEvaluatedEvent, runID, DealEvaluated{PrimaryMethod: "Yield-on-Cost"})); err != nil {
		t.Fatalf("AppendEvent failed: %v", err)
	}
	if err := store.AppendEvent(runID, NewEvent(ParkingRecommendedEvent, runID, ParkingRecommended{RequiredSpaces: 40})); err != nil {
		t.Fatalf("AppendEvent failed: %v", err)
	}

	recorded, err := store.ReadEvents(runID, 0)
	if err != nil {
		t.Fatalf("ReadEvents failed: %v", err)
	}
	if len(recorded) != 2 {
		t.Fatalf("expected 2 events, got %d", len(recorded))
	}
	if recorded[0].Version() != 1 || recorded[1].Version() != 2 {
		t.Errorf("expected versions 1 and 2, got %d and %d", recorded[0].Version(), recorded[1].Version())
	}
	if recorded[0].ID() == recorded[1].ID() {
		t.Error("events should carry distinct IDs")
	}

	fromSecond, err := store.ReadEvents(runID, 2)
	if err != nil {
		t.Fatalf("ReadEvents failed: %v", err)
	}
	if len(fromSecond) != 1 || fromSecond[0].Type() != ParkingRecommendedEvent {
		t.Error("expected only the second event from version 2")
	}
}

func TestInMemoryEventStore_RunsAreIndependent(t *testing.T) {
	store := NewInMemoryEventStore()
	runA := NewRunID()
	runB := NewRunID()

	_ = store.AppendEvent(runA, NewEvent(DealEvaluatedEvent, runA, nil))
	_ = store.AppendEvent(runB, NewEvent(DealEvaluatedEvent, runB, nil))

	a, _ := store.ReadEvents(runA, 0)
	if len(a) != 1 {
		t.Errorf("expected 1 event in run A, got %d", len(a))
	}

	all, _ := store.ReadAllEvents(0)
	if len(all) != 2 {
		t.Errorf("expected 2 events overall, got %d", len(all))
	}

	missing, _ := store.ReadEvents("unknown-run", 0)
	if len(missing) != 0 {
		t.Errorf("unknown run should read empty, got %d", len(missing))
	}
}
