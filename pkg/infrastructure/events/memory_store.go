package events

import (
	"fmt"
	"sync"
)

// InMemoryEventStore keeps the event trail for the life of the process.
// Nothing is persisted; runs are independent.
type InMemoryEventStore struct {
	runs        map[string][]Event
	subscribers map[string][]EventHandler
	mutex       sync.RWMutex
	allEvents   []Event
}

// NewInMemoryEventStore creates an empty store
func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		runs:        make(map[string][]Event),
		subscribers: make(map[string][]EventHandler),
		allEvents:   make([]Event, 0),
	}
}

// AppendEvent versions the event within its run and notifies subscribers.
func (s *InMemoryEventStore) AppendEvent(runID string, event Event) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	versioned := BaseEvent{
		EventID:      event.ID(),
		EventType:    event.Type(),
		Run:          runID,
		EventData:    event.Data(),
		EventTime:    event.Timestamp(),
		EventVersion: len(s.runs[runID]) + 1,
	}

	s.runs[runID] = append(s.runs[runID], versioned)
	s.allEvents = append(s.allEvents, versioned)

	go s.notifySubscribers(versioned)

	return nil
}

// ReadEvents returns a run's events starting at fromVersion (1-based).
func (s *InMemoryEventStore) ReadEvents(runID string, fromVersion int) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	run, exists := s.runs[runID]
	if !exists {
		return []Event{}, nil
	}
	if fromVersion < 1 {
		fromVersion = 1
	}
	if fromVersion > len(run) {
		return []Event{}, nil
	}
	return run[fromVersion-1:], nil
}

// ReadAllEvents returns every recorded event starting at fromPosition.
func (s *InMemoryEventStore) ReadAllEvents(fromPosition int) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if fromPosition < 0 {
		fromPosition = 0
	}
	if fromPosition >= len(s.allEvents) {
		return []Event{}, nil
	}
	return s.allEvents[fromPosition:], nil
}

// Subscribe registers a handler for the given event types.
func (s *InMemoryEventStore) Subscribe(eventTypes []string, handler EventHandler) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, eventType := range eventTypes {
		s.subscribers[eventType] = append(s.subscribers[eventType], handler)
	}
	return nil
}

// Unsubscribe removes a handler from every event type.
func (s *InMemoryEventStore) Unsubscribe(handler EventHandler) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for eventType, handlers := range s.subscribers {
		kept := make([]EventHandler, 0, len(handlers))
		for _, h := range handlers {
			if h != handler {
				kept = append(kept, h)
			}
		}
		s.subscribers[eventType] = kept
	}
	return nil
}

func (s *InMemoryEventStore) notifySubscribers(event Event) {
	s.mutex.RLock()
	handlers := s.subscribers[event.Type()]
	s.mutex.RUnlock()

	for _, handler := range handlers {
		if handler.CanHandle(event.Type()) {
			go func(h EventHandler, e Event) {
				if err := h.Handle(e); err != nil {
					fmt.Printf("Error handling event %s: %v\n", e.Type(), err)
				}
			}(handler, event)
		}
	}
}
