package clamp

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

// GuardState is a state of a [Guard].
type GuardState int

const (
	GuardInvalid GuardState = iota

	// GuardOpen is a state of a guard which can be read, written and resolved.
	GuardOpen

	// GuardCommitted is a state of a guard whose value was written back.
	GuardCommitted

	// GuardDiscarded is a state of a guard dropped without a write back.
	GuardDiscarded
)

var guardStateValueMap = map[GuardState]string{
	GuardOpen:      "open",
	GuardCommitted: "committed",
	GuardDiscarded: "discarded",
}

func (s GuardState) String() string {
	v, ok := guardStateValueMap[s]
	if !ok {
		return fmt.Sprintf("guard-state-invalid(%d)", s)
	}

	return v
}

// Guard is an edit session over a value. It works on a snapshot: the target
// is written only by a successful Commit. Nothing else should touch the
// target while the guard is open.
//
// A guard must be resolved with either Commit or Discard. Any use of a
// resolved guard panics with [GuardReuseError]. Builds with the clampdebug
// tag log guards collected while still open.
type Guard[V any] struct {
	target *V
	value  V
	check  func(V) error
	status *guardStatus
}

// guardStatus lives apart from the guard so that the leak check does not
// keep the guard reachable.
type guardStatus struct {
	state GuardState
	site  string
}

// NewGuard opens an edit session over target. A nil check accepts any value.
func NewGuard[V any](target *V, check func(V) error) *Guard[V] {
	return newGuard(target, check)
}

func newGuard[V any](target *V, check func(V) error) *Guard[V] {
	g := &Guard[V]{
		target: target,
		value:  *target,
		check:  check,
		status: &guardStatus{state: GuardOpen},
	}
	trackGuard(g, g.status)

	return g
}

// Get returns the working value.
func (g *Guard[V]) Get() V {
	g.mustOpen()
	return g.value
}

// Set replaces the working value.
func (g *Guard[V]) Set(v V) {
	g.mustOpen()
	g.value = v
}

// Ptr returns a pointer to the working value. It must not be used after
// the guard is resolved.
func (g *Guard[V]) Ptr() *V {
	g.mustOpen()
	return &g.value
}

// Check validates the working value without resolving the guard.
func (g *Guard[V]) Check() error {
	g.mustOpen()
	if g.check == nil {
		return nil
	}

	return g.check(g.value)
}

// Commit validates the working value and writes it into the target. The
// guard stays open if validation fails, so the value can be fixed and
// committed again or the guard discarded.
func (g *Guard[V]) Commit() error {
	if err := g.Check(); err != nil {
		return fmt.Errorf("commit guard: %w", err)
	}

	*g.target = g.value
	g.status.state = GuardCommitted
	return nil
}

// Discard drops the working value leaving the target as it was.
func (g *Guard[V]) Discard() {
	g.mustOpen()
	g.status.state = GuardDiscarded
}

// State returns the guard state.
func (g *Guard[V]) State() GuardState {
	return g.status.state
}

func (g *Guard[V]) mustOpen() {
	if g.status.state != GuardOpen {
		panic(&GuardReuseError{State: g.status.state})
	}
}

var guardLeakLogger atomic.Pointer[slog.Logger]

// SetGuardLeakLogger sets the logger reporting unresolved guards in builds
// with the clampdebug tag. A nil logger restores slog.Default.
func SetGuardLeakLogger(logger *slog.Logger) {
	guardLeakLogger.Store(logger)
}

func leakLogger() *slog.Logger {
	if l := guardLeakLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}
