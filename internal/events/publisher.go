// Package events fans slider change notifications out to any number of
// subscribers.
package events

import (
	"sync"

	"github.com/alexisbeaulieu97/slidekit/internal/logger"
	"github.com/alexisbeaulieu97/slidekit/internal/slider"
)

// Kind distinguishes live changes from commits.
type Kind string

const (
	KindChange Kind = "change"
	KindCommit Kind = "commit"
)

// Event is one notification from a slider.
type Event struct {
	Kind Kind
	slider.ChangeEvent
}

// Handler receives published events.
type Handler func(Event)

// Subscription removes a handler.
type Subscription interface {
	Unsubscribe()
}

// Publisher logs every event and hands it to the subscribers of its kind.
type Publisher struct {
	log    *logger.Logger
	subs   map[Kind][]subscriptionEntry
	nextID int
	mu     sync.RWMutex
}

// NewPublisher creates a publisher writing each event to log at debug level.
func NewPublisher(log *logger.Logger) *Publisher {
	return &Publisher{
		log:  log,
		subs: make(map[Kind][]subscriptionEntry),
	}
}

// Publish logs the event and invokes its subscribers in subscription order.
func (p *Publisher) Publish(event Event) {
	if p == nil {
		return
	}

	p.mu.RLock()
	handlers := append([]subscriptionEntry(nil), p.subs[event.Kind]...)
	p.mu.RUnlock()

	p.log.Debug("slider event",
		"kind", string(event.Kind),
		"slider_id", event.SliderID,
		"value", event.Value.String(),
		"handle", event.Handle.String(),
		"source", event.Source.String(),
	)

	for _, entry := range handlers {
		entry.handler(event)
	}
}

// OnChange publishes e as a change. It fits slider.Options.OnChange.
func (p *Publisher) OnChange(e slider.ChangeEvent) {
	p.Publish(Event{Kind: KindChange, ChangeEvent: e})
}

// OnCommit publishes e as a commit. It fits slider.Options.OnChangeCommitted.
func (p *Publisher) OnCommit(e slider.ChangeEvent) {
	p.Publish(Event{Kind: KindCommit, ChangeEvent: e})
}

// Subscribe registers handler for events of kind.
func (p *Publisher) Subscribe(kind Kind, handler Handler) Subscription {
	if p == nil || handler == nil {
		return noopSubscription{}
	}
	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.subs[kind] = append(p.subs[kind], subscriptionEntry{id: id, handler: handler})
	p.mu.Unlock()

	return subscription{
		cancel: func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			handlers := p.subs[kind]
			for i, entry := range handlers {
				if entry.id == id {
					p.subs[kind] = append(handlers[:i], handlers[i+1:]...)
					break
				}
			}
		},
	}
}

// SubscribeAll registers handler for every kind.
func (p *Publisher) SubscribeAll(handler Handler) Subscription {
	change := p.Subscribe(KindChange, handler)
	commit := p.Subscribe(KindCommit, handler)
	return subscription{cancel: func() {
		change.Unsubscribe()
		commit.Unsubscribe()
	}}
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	cancel func()
}

func (s subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

type subscriptionEntry struct {
	id      int
	handler Handler
}
