package nav

import (
	"strconv"

	"showcase/internal/log"
)

// Snapshot is the navigation state seen by the rest of the application.
type Snapshot struct {
	CurrentRoute  string
	PreviousRoute string // route active before the latest committed transition
	Entry         *Entry
}

// Observer wraps a Stack with de-duplicated navigation and commit
// notifications. All methods must be called from the UI goroutine.
type Observer struct {
	stack     Stack
	previous  string
	listeners []*listener
}

type listener struct {
	fn func(Snapshot)
}

// NewObserver creates an observer over stack.
func NewObserver(stack Stack) *Observer {
	return &Observer{stack: stack}
}

// Stack returns the underlying stack.
func (o *Observer) Stack() Stack { return o.stack }

// Snapshot returns the current navigation state.
func (o *Observer) Snapshot() Snapshot {
	e := o.stack.Current()
	s := Snapshot{PreviousRoute: o.previous, Entry: e}
	if e != nil {
		s.CurrentRoute = e.Route
	}
	return s
}

// OnCommit registers fn to run after every committed transition. The returned
// function removes it.
func (o *Observer) OnCommit(fn func(Snapshot)) func() {
	l := &listener{fn: fn}
	o.listeners = append(o.listeners, l)
	return func() {
		for i, other := range o.listeners {
			if other == l {
				o.listeners = append(o.listeners[:i], o.listeners[i+1:]...)
				return
			}
		}
	}
}

// NavigateTo pushes route, or route/<elementID> when an id is given, only if
// from is the resumed top entry. A second dispatch from the same entry finds
// it stopped and is ignored.
func (o *Observer) NavigateTo(route string, elementID *int64, from *Entry) bool {
	if !o.stack.IsActiveTop(from) {
		log.With(log.F("route", route), log.F("from", from.routeOrEmpty())).Debug("ignoring duplicate navigation")
		return false
	}
	full := route
	if elementID != nil {
		full = route + "/" + strconv.FormatInt(*elementID, 10)
	}
	return o.transition(func() { o.stack.Push(full, PushOptions{}) })
}

// NavigateToRoot switches to a top-level destination: history is popped back
// to the start destination with its state saved, then route is pushed single
// top with its saved state restored.
func (o *Observer) NavigateToRoot(route string) bool {
	if cur := o.stack.Current(); cur != nil && cur.Route == route {
		return false
	}
	return o.transition(func() {
		o.stack.PopToStart(true)
		o.stack.Push(route, PushOptions{SingleTop: true, RestoreState: true})
	})
}

// Navigate pushes route unconditionally.
func (o *Observer) Navigate(route string) bool {
	return o.transition(func() { o.stack.Push(route, PushOptions{}) })
}

// Back pops the top entry when there is one below it.
func (o *Observer) Back() bool {
	popped := false
	committed := o.transition(func() { popped = o.stack.Pop() })
	return popped && committed
}

func (o *Observer) transition(apply func()) bool {
	before := o.stack.Current()
	apply()
	after := o.stack.Current()
	if after == before {
		return false
	}
	o.previous = before.routeOrEmpty()

	snap := o.Snapshot()
	log.With(log.F("from", snap.PreviousRoute), log.F("to", snap.CurrentRoute)).Debug("navigation committed")
	for _, l := range append([]*listener(nil), o.listeners...) {
		l.fn(snap)
	}
	return true
}

func (e *Entry) routeOrEmpty() string {
	if e == nil {
		return ""
	}
	return e.Route
}
