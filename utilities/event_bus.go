package utilities

import "sync"

// Event names published on the global bus.
const (
	EventSessionCreated   = "interview.session_created"
	EventSessionCompleted = "interview.session_completed"
)

type EventHandler func(interface{})

// EventBus is a minimal in-process pub/sub used to decouple side effects
// (question-history recording, completion hooks) from the request path.
type EventBus struct {
	handlers map[string][]EventHandler
	mu       sync.RWMutex
	wg       sync.WaitGroup
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[string][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(event string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.handlers[event] = append(eb.handlers[event], handler)
}

// Publish runs the subscribed handlers asynchronously.
func (eb *EventBus) Publish(event string, data interface{}) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	for _, handler := range eb.handlers[event] {
		h := handler
		eb.wg.Add(1)
		go func() {
			defer eb.wg.Done()
			h(data)
		}()
	}
}

// Wait blocks until all in-flight handlers finish. Used on shutdown and in
// tests.
func (eb *EventBus) Wait() {
	eb.wg.Wait()
}

// Global instance
var GlobalEventBus = NewEventBus()
