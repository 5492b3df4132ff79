package memory

import (
	"context" // standard Go package for request-scoped context (timeouts, cancellation)
	"sync"    // standard Go package for concurrency primitives like Mutex

	interfaces "github.com/sheikh-saqib/banking-services/internal/interfaces"
)

// Message is one event recorded by the Publisher.
type Message struct {
	Topic string
	Key   string
	Event any
}

// Publisher is an in-memory implementation of interfaces.EventPublisher.
// It keeps every published event in a slice and is safe for concurrent use.
type Publisher struct {
	mu       sync.Mutex // protects messages
	messages []Message
}

// NewPublisher creates and returns an empty Publisher
func NewPublisher() *Publisher {
	return &Publisher{
		messages: make([]Message, 0),
	}
}

// Publish records the event. It fails only when ctx is already done.
func (p *Publisher) Publish(ctx context.Context, topic string, key string, event any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.messages = append(p.messages, Message{Topic: topic, Key: key, Event: event})
	return nil
}

// Messages returns a copy of everything published so far.
func (p *Publisher) Messages() []Message {
	p.mu.Lock()
	defer p.mu.Unlock()

	copied := make([]Message, len(p.messages))
	copy(copied, p.messages) // callers can't modify internal state
	return copied
}

// Compile-time check: ensure Publisher implements EventPublisher interface
var _ interfaces.EventPublisher = (*Publisher)(nil)
