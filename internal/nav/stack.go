// Package nav tracks the back stack and publishes committed navigation
// transitions.
package nav

import (
	"github.com/google/uuid"
)

// Lifecycle is the state of a back stack entry.
type Lifecycle int

const (
	Created Lifecycle = iota
	Resumed
	Stopped
	Destroyed
)

func (l Lifecycle) String() string {
	switch l {
	case Created:
		return "created"
	case Resumed:
		return "resumed"
	case Stopped:
		return "stopped"
	case Destroyed:
		return "destroyed"
	}
	return "unknown"
}

// Entry is one frame of the back stack. State holds per-destination UI state
// (selection, scroll offset, selected tab) and survives a PopToStart with
// preserved state when the route is pushed again with RestoreState.
type Entry struct {
	ID        uuid.UUID
	Route     string
	State     map[string]any
	lifecycle Lifecycle
}

func newEntry(route string) *Entry {
	return &Entry{ID: uuid.New(), Route: route, State: map[string]any{}}
}

// Lifecycle returns the current lifecycle state of e.
func (e *Entry) Lifecycle() Lifecycle {
	if e == nil {
		return Destroyed
	}
	return e.lifecycle
}

// PushOptions control a Push.
type PushOptions struct {
	SingleTop    bool // reuse the top entry when it already shows the route
	RestoreState bool // restore state saved by PopToStart(true)
}

// Stack is the navigation stack collaborator.
type Stack interface {
	Current() *Entry
	Previous() *Entry
	Push(route string, opts PushOptions) *Entry
	PopToStart(preserveState bool)
	Pop() bool
	IsActiveTop(e *Entry) bool
}

// MemoryStack is an in-memory Stack. It is not safe for concurrent use.
type MemoryStack struct {
	entries []*Entry
	saved   map[string]map[string]any
}

// NewMemoryStack creates a stack whose start destination is start.
func NewMemoryStack(start string) *MemoryStack {
	e := newEntry(start)
	e.lifecycle = Resumed
	return &MemoryStack{entries: []*Entry{e}, saved: map[string]map[string]any{}}
}

func (s *MemoryStack) Current() *Entry {
	return s.entries[len(s.entries)-1]
}

func (s *MemoryStack) Previous() *Entry {
	if len(s.entries) < 2 {
		return nil
	}
	return s.entries[len(s.entries)-2]
}

// Len returns the number of entries.
func (s *MemoryStack) Len() int { return len(s.entries) }

// Routes returns the routes from bottom to top.
func (s *MemoryStack) Routes() []string {
	routes := make([]string, len(s.entries))
	for i, e := range s.entries {
		routes[i] = e.Route
	}
	return routes
}

func (s *MemoryStack) Push(route string, opts PushOptions) *Entry {
	top := s.Current()
	if opts.SingleTop && top.Route == route {
		top.lifecycle = Resumed
		return top
	}

	e := newEntry(route)
	if opts.RestoreState {
		if state, ok := s.saved[route]; ok {
			e.State = state
			delete(s.saved, route)
		}
	}
	top.lifecycle = Stopped
	e.lifecycle = Resumed
	s.entries = append(s.entries, e)
	return e
}

func (s *MemoryStack) PopToStart(preserveState bool) {
	for len(s.entries) > 1 {
		s.popTop(preserveState)
	}
	s.entries[0].lifecycle = Resumed
}

func (s *MemoryStack) Pop() bool {
	if len(s.entries) < 2 {
		return false
	}
	s.popTop(false)
	s.Current().lifecycle = Resumed
	return true
}

func (s *MemoryStack) popTop(save bool) {
	top := s.entries[len(s.entries)-1]
	if save && len(top.State) > 0 {
		s.saved[top.Route] = top.State
	}
	top.lifecycle = Destroyed
	s.entries[len(s.entries)-1] = nil
	s.entries = s.entries[:len(s.entries)-1]
}

// IsActiveTop reports whether e is the resumed top entry.
func (s *MemoryStack) IsActiveTop(e *Entry) bool {
	return e != nil && e == s.Current() && e.lifecycle == Resumed
}
