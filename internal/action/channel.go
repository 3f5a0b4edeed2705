package action

import (
	"context"
	"sync"

	"showcase/internal/errors"
	"showcase/internal/log"
)

// ErrClosed is returned by Subscription.Next once the subscription is closed.
var ErrClosed = errors.New("action subscription closed")

// Channel broadcasts actions to every subscription. Each subscription holds a
// single pending action; publishing into a full slot evicts the older action.
// Publish never blocks and is safe for concurrent use.
type Channel struct {
	mu     sync.Mutex
	subs   map[*Subscription]struct{}
	closed bool
}

// NewChannel creates a channel with no subscribers.
func NewChannel() *Channel {
	return &Channel{subs: make(map[*Subscription]struct{})}
}

// Subscription receives the actions published after it was created.
type Subscription struct {
	ch     chan Kind
	parent *Channel
	once   sync.Once
}

// Subscribe registers a new subscription. Subscribing to a closed channel
// returns an already closed subscription.
func (c *Channel) Subscribe() *Subscription {
	s := &Subscription{ch: make(chan Kind, 1), parent: c}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		s.once.Do(func() { close(s.ch) })
		return s
	}
	c.subs[s] = struct{}{}
	return s
}

// Publish delivers k to every subscription. It reports whether a pending
// action was evicted from any of them. With no subscribers the action is
// discarded.
func (c *Channel) Publish(k Kind) (evicted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	for s := range c.subs {
		select {
		case s.ch <- k:
			continue
		default:
		}
		select {
		case old := <-s.ch:
			evicted = true
			log.With(log.F("dropped", old.String()), log.F("kept", k.String())).Debug("action slot full, dropping oldest")
		default:
		}
		select {
		case s.ch <- k:
		default:
		}
	}
	return evicted
}

// Subscribers returns the number of open subscriptions.
func (c *Channel) Subscribers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

// Close closes every subscription. Later publishes are discarded.
func (c *Channel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	for s := range c.subs {
		delete(c.subs, s)
		s.once.Do(func() { close(s.ch) })
	}
}

// C exposes the receive side for select loops. It is closed with the
// subscription.
func (s *Subscription) C() <-chan Kind {
	return s.ch
}

// TryNext returns the pending action without waiting.
func (s *Subscription) TryNext() (Kind, bool) {
	select {
	case k, ok := <-s.ch:
		return k, ok
	default:
		return 0, false
	}
}

// Next waits for the next action.
func (s *Subscription) Next(ctx context.Context) (Kind, error) {
	select {
	case k, ok := <-s.ch:
		if !ok {
			return 0, ErrClosed
		}
		return k, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// Close unsubscribes. It is safe to call more than once.
func (s *Subscription) Close() {
	c := s.parent
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.subs, s)
	s.once.Do(func() { close(s.ch) })
}
