package scanner

import (
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"akwana/internal/domain"
	"akwana/internal/ports"
	"akwana/internal/services/scansession"
)

const DefaultMaxSessions = 256

// Service creates scan sessions and looks them up by id.
type Service struct {
	dispatcher scansession.Dispatcher
	builder    scansession.Builder
	publisher  ports.Publisher
	logger     *zap.Logger
	max        int
	observers  []func(scansession.Transition)

	mu       sync.Mutex
	sessions map[string]*scansession.Session
	order    []string
}

func New(dispatcher scansession.Dispatcher, builder scansession.Builder, publisher ports.Publisher, maxSessions int, logger *zap.Logger) *Service {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		dispatcher: dispatcher,
		builder:    builder,
		publisher:  publisher,
		logger:     logger,
		max:        maxSessions,
		sessions:   make(map[string]*scansession.Session),
	}
}

// Observe attaches fn to every session started afterwards. Call it before
// serving traffic.
func (s *Service) Observe(fn func(scansession.Transition)) {
	s.observers = append(s.observers, fn)
}

// Start creates a new idle session. When the registry is full the oldest
// idle, completed or failed session is reset and dropped. Sessions holding a
// capture or a scan in flight are never evicted.
func (s *Service) Start() (*scansession.Session, error) {
	sess := scansession.New(scansession.Config{
		Dispatcher: s.dispatcher,
		Builder:    s.builder,
		Publisher:  s.publisher,
		Logger:     s.logger,
	})
	for _, fn := range s.observers {
		sess.Watch(fn)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sessions) >= s.max {
		if !s.evictLocked() {
			return nil, fmt.Errorf("%w: %d sessions in flight", domain.ErrCapability, len(s.sessions))
		}
	}
	s.sessions[sess.ID()] = sess
	s.order = append(s.order, sess.ID())
	return sess, nil
}

func (s *Service) evictLocked() bool {
	for i, id := range s.order {
		if !s.sessions[id].ResetIfSettled() {
			continue
		}
		delete(s.sessions, id)
		s.order = slices.Delete(s.order, i, i+1)
		s.logger.Debug("session evicted", zap.String("session_id", id))
		return true
	}
	return false
}

func (s *Service) Get(id string) (*scansession.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return sess, nil
}

func (s *Service) Status(id string) (scansession.Snapshot, error) {
	sess, err := s.Get(id)
	if err != nil {
		return scansession.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

// Close resets the session, handing its last artifact off, and forgets it.
func (s *Service) Close(id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
		s.order = slices.DeleteFunc(s.order, func(o string) bool { return o == id })
	}
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	sess.Reset()
	return nil
}

func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
