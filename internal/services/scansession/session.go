// Package scansession owns the lifecycle of one diagnostic request:
//
//	idle -> capturing -> submitted -> analyzing -> completed | failed -> idle
//
// Every method except Await is synchronous and non-blocking; classification
// runs on a Dispatcher. Each submission gets a generation number, and a
// result is attached only if its generation is still current and the session
// is still analyzing, so a cancelled or superseded submission can never
// overwrite a newer one.
package scansession

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"akwana/internal/domain"
	"akwana/internal/ports"
	"akwana/internal/workers/scanrunner"
)

type State string

const (
	StateIdle      State = "idle"
	StateCapturing State = "capturing"
	StateSubmitted State = "submitted"
	StateAnalyzing State = "analyzing"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
)

// InFlight reports whether a classification is pending.
func (s State) InFlight() bool { return s == StateSubmitted || s == StateAnalyzing }

// Dispatcher runs classification jobs asynchronously. Enqueue must not
// invoke the job's Deliver func before returning.
type Dispatcher interface {
	Enqueue(job scanrunner.Job) (context.CancelFunc, error)
}

// Builder turns a match into an artifact.
type Builder interface {
	Build(m domain.MatchResult, in domain.Input) (domain.Artifact, error)
}

type Transition struct {
	SessionID string
	From, To  State
	Artifact  *domain.Artifact
	Failure   *domain.Failure
	At        time.Time
}

type Snapshot struct {
	ID            string           `json:"id"`
	State         State            `json:"state"`
	InputKind     domain.InputKind `json:"input_kind,omitempty"`
	Artifact      *domain.Artifact `json:"artifact,omitempty"`
	LastCompleted *domain.Artifact `json:"last_completed,omitempty"`
	Failure       *domain.Failure  `json:"failure,omitempty"`
	Attempts      int              `json:"attempts"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type Config struct {
	Dispatcher Dispatcher
	Builder    Builder
	Publisher  ports.Publisher
	Logger     *zap.Logger
	Clock      func() time.Time
}

type Session struct {
	id         string
	dispatcher Dispatcher
	builder    Builder
	publisher  ports.Publisher
	logger     *zap.Logger
	now        func() time.Time

	mu         sync.Mutex
	state      State
	input      domain.Input
	current    *domain.Artifact
	last       *domain.Artifact
	handedOff  bool // last has reached the publisher
	failure    *domain.Failure
	generation uint64
	cancelJob  context.CancelFunc
	attempts   int
	updatedAt  time.Time

	// emitMu is taken before mu by every mutation and held through
	// notification delivery.
	emitMu    sync.Mutex
	watchMu   sync.Mutex
	watchers  map[uint64]func(Transition)
	nextWatch uint64
}

// pending collects side effects produced under mu and released after it.
type pending struct {
	transitions []Transition
	publish     *domain.Artifact
}

func New(cfg Config) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := cfg.Clock
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	id := uuid.NewString()
	return &Session{
		id:         id,
		dispatcher: cfg.Dispatcher,
		builder:    cfg.Builder,
		publisher:  cfg.Publisher,
		logger:     logger.Named("session").With(zap.String("session_id", id)),
		now:        now,
		state:      StateIdle,
		updatedAt:  now(),
		watchers:   make(map[uint64]func(Transition)),
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Capture stages in. Only valid from idle.
func (s *Session) Capture(in domain.Input) (State, error) {
	s.lock()
	if s.state != StateIdle {
		state := s.state
		s.unlock()
		return state, domain.ErrInvalidTransition
	}
	if in.IsZero() {
		s.unlock()
		return StateIdle, domain.ErrNoInput
	}
	var p pending
	s.input = in
	s.transition(&p, StateCapturing)
	s.release(p)
	return StateCapturing, nil
}

// Submit starts classification of the staged input. A second Submit while
// the first is in flight is rejected with ErrBusy, not queued.
func (s *Session) Submit() (State, error) {
	s.lock()
	switch {
	case s.state.InFlight():
		state := s.state
		s.unlock()
		return state, domain.ErrBusy
	case s.state == StateIdle && s.input.IsZero():
		s.unlock()
		return StateIdle, domain.ErrNoInput
	case s.state != StateCapturing:
		state := s.state
		s.unlock()
		return state, domain.ErrInvalidTransition
	}
	var p pending
	s.dispatch(&p)
	state := s.state
	s.release(p)
	return state, nil
}

// Retry re-submits the staged input after a failure without a new Capture.
func (s *Session) Retry() (State, error) {
	s.lock()
	if s.state != StateFailed {
		state := s.state
		s.unlock()
		if state.InFlight() {
			return state, domain.ErrBusy
		}
		return state, domain.ErrInvalidTransition
	}
	if s.input.IsZero() {
		s.unlock()
		return StateFailed, domain.ErrNoInput
	}
	var p pending
	s.failure = nil
	s.dispatch(&p)
	state := s.state
	s.release(p)
	return state, nil
}

// Cancel abandons the in-flight classification and returns to idle. The
// worker is not interrupted beyond context cancellation; its result is
// dropped when it arrives.
func (s *Session) Cancel() (State, error) {
	s.lock()
	if !s.state.InFlight() {
		state := s.state
		s.unlock()
		return state, domain.ErrInvalidTransition
	}
	var p pending
	s.abandon()
	s.input = domain.Input{}
	s.transition(&p, StateIdle)
	s.release(p)
	return StateIdle, nil
}

// Reset returns to idle from any state. The last completed artifact is
// kept, and handed to the publisher if completion did not already do so.
func (s *Session) Reset() State {
	s.lock()
	s.resetLocked()
	return StateIdle
}

// ResetIfSettled resets the session only if it is idle, completed or failed,
// checking and resetting under one lock. It reports whether it reset.
func (s *Session) ResetIfSettled() bool {
	s.lock()
	switch s.state {
	case StateIdle, StateCompleted, StateFailed:
		s.resetLocked()
		return true
	}
	s.unlock()
	return false
}

// resetLocked expects both locks held and releases them.
func (s *Session) resetLocked() {
	var p pending
	if s.state.InFlight() {
		s.abandon()
	}
	if s.last != nil && !s.handedOff && s.publisher != nil {
		a := *s.last
		p.publish = &a
		s.handedOff = true
	}
	s.input = domain.Input{}
	s.failure = nil
	s.current = nil
	if s.state != StateIdle {
		s.transition(&p, StateIdle)
	}
	s.release(p)
}

// dispatch moves capturing/failed through submitted to analyzing. Caller
// holds mu.
func (s *Session) dispatch(p *pending) {
	s.transition(p, StateSubmitted)
	s.generation++
	s.attempts++
	gen := s.generation

	if s.dispatcher == nil {
		s.fail(p, domain.FailureFrom(domain.ErrCapability))
		return
	}
	cancel, err := s.dispatcher.Enqueue(scanrunner.Job{
		SessionID: s.id,
		Input:     s.input,
		Deliver:   func(out scanrunner.Outcome) { s.complete(gen, out) },
	})
	if err != nil {
		s.logger.Warn("dispatch rejected", zap.Error(err))
		s.fail(p, domain.FailureFrom(err))
		return
	}
	s.cancelJob = cancel
	s.transition(p, StateAnalyzing)
}

func (s *Session) complete(gen uint64, out scanrunner.Outcome) {
	s.lock()
	if gen != s.generation || s.state != StateAnalyzing {
		s.unlock()
		s.logger.Debug("stale classification result dropped", zap.Uint64("generation", gen))
		return
	}
	var p pending
	s.cancelJob = nil
	if out.Err != nil {
		s.fail(&p, domain.FailureFrom(out.Err))
		s.release(p)
		return
	}
	a, err := s.builder.Build(out.Match, s.input)
	if err != nil {
		s.logger.Error("artifact build failed", zap.Error(err), zap.String("rule_id", out.Match.Rule.ID))
		s.fail(&p, domain.FailureFrom(err))
		s.release(p)
		return
	}
	s.current = &a
	s.last = &a
	s.handedOff = s.publisher != nil
	cp := a
	p.publish = &cp
	s.transition(&p, StateCompleted)
	s.release(p)
}

func (s *Session) fail(p *pending, f domain.Failure) {
	s.failure = &f
	s.transition(p, StateFailed)
}

// abandon invalidates the in-flight generation. Caller holds mu.
func (s *Session) abandon() {
	s.generation++
	if s.cancelJob != nil {
		s.cancelJob()
		s.cancelJob = nil
	}
}

func (s *Session) transition(p *pending, to State) {
	t := Transition{SessionID: s.id, From: s.state, To: to, At: s.now()}
	if to == StateCompleted && s.current != nil {
		a := *s.current
		t.Artifact = &a
	}
	if to == StateFailed && s.failure != nil {
		f := *s.failure
		t.Failure = &f
	}
	s.state = to
	s.updatedAt = t.At
	p.transitions = append(p.transitions, t)
	s.logger.Debug("transition", zap.String("from", string(t.From)), zap.String("to", string(to)))
}

// lock takes emitMu then mu. Every mutation holds both, so notifications
// leave in transition order while readers only ever need mu.
func (s *Session) lock() {
	s.emitMu.Lock()
	s.mu.Lock()
}

func (s *Session) unlock() {
	s.mu.Unlock()
	s.emitMu.Unlock()
}

// release drops mu and delivers p's notifications, then drops emitMu.
func (s *Session) release(p pending) {
	s.mu.Unlock()
	defer s.emitMu.Unlock()

	if len(p.transitions) > 0 {
		watchers := s.snapshotWatchers()
		for _, t := range p.transitions {
			for _, fn := range watchers {
				fn(t)
			}
		}
	}
	if p.publish != nil && s.publisher != nil {
		s.publisher.Publish(*p.publish)
	}
}

func (s *Session) snapshotWatchers() []func(Transition) {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()
	out := make([]func(Transition), 0, len(s.watchers))
	for i := uint64(0); i < s.nextWatch; i++ {
		if fn, ok := s.watchers[i]; ok {
			out = append(out, fn)
		}
	}
	return out
}

// Watch registers fn for every state transition. fn runs synchronously on
// the goroutine that caused the transition, with no session lock held other
// than the emit lock: it may read (State, Snapshot) but must not call
// Capture, Submit, Retry, Cancel, Reset or Await. The returned func
// unregisters fn and may be called more than once.
func (s *Session) Watch(fn func(Transition)) func() {
	s.watchMu.Lock()
	id := s.nextWatch
	s.nextWatch++
	s.watchers[id] = fn
	s.watchMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.watchMu.Lock()
			delete(s.watchers, id)
			s.watchMu.Unlock()
		})
	}
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		ID:        s.id,
		State:     s.state,
		Attempts:  s.attempts,
		UpdatedAt: s.updatedAt,
	}
	if !s.input.IsZero() {
		snap.InputKind = s.input.Kind()
	}
	if s.current != nil {
		a := *s.current
		snap.Artifact = &a
	}
	if s.last != nil {
		a := *s.last
		snap.LastCompleted = &a
	}
	if s.failure != nil {
		f := *s.failure
		snap.Failure = &f
	}
	return snap
}

// Artifact returns the current artifact; it is non-nil exactly when the
// session is completed.
func (s *Session) Artifact() *domain.Artifact {
	return s.Snapshot().Artifact
}

// LastCompleted returns the most recent artifact, surviving Reset.
func (s *Session) LastCompleted() *domain.Artifact {
	return s.Snapshot().LastCompleted
}

// Await blocks until no classification is in flight or ctx is done. When it
// returns a settled snapshot, watchers and the publisher have already been
// notified of that transition. Must not be called from a watcher.
func (s *Session) Await(ctx context.Context) (Snapshot, error) {
	wake := make(chan struct{}, 1)
	unwatch := s.Watch(func(Transition) {
		select {
		case wake <- struct{}{}:
		default:
		}
	})
	defer unwatch()

	for {
		snap := s.Snapshot()
		if !snap.State.InFlight() {
			// Mutations hold emitMu until their notifications are out, so
			// this waits for the transition just observed.
			s.emitMu.Lock()
			s.emitMu.Unlock()
			return snap, nil
		}
		select {
		case <-wake:
		case <-ctx.Done():
			return snap, ctx.Err()
		}
	}
}
