package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is one fact recorded about an evaluation run.
type Event interface {
	ID() string
	Type() string
	RunID() string
	Data() interface{}
	Timestamp() time.Time
	Version() int
}

// EventHandler consumes events it declares it can handle.
type EventHandler interface {
	Handle(event Event) error
	CanHandle(eventType string) bool
}

// EventStore records evaluation events per run. Runs have no natural business
// key, so callers mint run IDs with NewRunID.
type EventStore interface {
	AppendEvent(runID string, event Event) error
	ReadEvents(runID string, fromVersion int) ([]Event, error)
	ReadAllEvents(fromPosition int) ([]Event, error)
	Subscribe(eventTypes []string, handler EventHandler) error
	Unsubscribe(handler EventHandler) error
}

// BaseEvent is the common event envelope.
type BaseEvent struct {
	EventID      string
	EventType    string
	Run          string
	EventData    interface{}
	EventTime    time.Time
	EventVersion int
}

func (e BaseEvent) ID() string {
	return e.EventID
}

func (e BaseEvent) Type() string {
	return e.EventType
}

func (e BaseEvent) RunID() string {
	return e.Run
}

func (e BaseEvent) Data() interface{} {
	return e.EventData
}

func (e BaseEvent) Timestamp() time.Time {
	return e.EventTime
}

func (e BaseEvent) Version() int {
	return e.EventVersion
}

// NewRunID mints an identifier for one evaluation run
func NewRunID() string {
	return uuid.NewString()
}

// NewEvent wraps a payload in an envelope with a fresh event ID
func NewEvent(eventType, runID string, data interface{}) Event {
	return BaseEvent{
		EventID:      uuid.NewString(),
		EventType:    eventType,
		Run:          runID,
		EventData:    data,
		EventTime:    time.Now(),
		EventVersion: 1,
	}
}
