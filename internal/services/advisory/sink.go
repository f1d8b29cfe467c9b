package advisory

import (
	"slices"
	"sync"

	"go.uber.org/zap"

	"akwana/internal/domain"
)

// DefaultRetention is the history cap used when none is configured.
const DefaultRetention = 50

// Sink is the read-only view the UI polls or subscribes to: the latest
// completed artifact plus a bounded FIFO history.
type Sink struct {
	mu        sync.RWMutex
	retention int
	history   []domain.Artifact
	ids       map[string]struct{}

	subMu sync.Mutex
	keys  []string
	subs  map[string]func(domain.Artifact)

	logger *zap.Logger
}

func NewSink(retention int, logger *zap.Logger) *Sink {
	if retention <= 0 {
		retention = DefaultRetention
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sink{
		retention: retention,
		ids:       make(map[string]struct{}),
		subs:      make(map[string]func(domain.Artifact)),
		logger:    logger.Named("advisory"),
	}
}

// Publish appends a to history, evicting the oldest entries past the cap,
// and notifies subscribers. Publishing an artifact already in history is a
// no-op.
func (s *Sink) Publish(a domain.Artifact) {
	s.mu.Lock()
	if _, dup := s.ids[a.ID]; dup {
		s.mu.Unlock()
		return
	}
	s.history = append(s.history, a)
	s.ids[a.ID] = struct{}{}
	for len(s.history) > s.retention {
		evicted := s.history[0]
		delete(s.ids, evicted.ID)
		s.history = slices.Delete(s.history, 0, 1)
	}
	s.mu.Unlock()

	s.logger.Debug("artifact published", zap.String("artifact_id", a.ID), zap.String("status", string(a.Status)))

	for _, fn := range s.subscribers() {
		fn(a)
	}
}

func (s *Sink) subscribers() []func(domain.Artifact) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	out := make([]func(domain.Artifact), 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, s.subs[k])
	}
	return out
}

func (s *Sink) Latest() (domain.Artifact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.history) == 0 {
		return domain.Artifact{}, false
	}
	return s.history[len(s.history)-1], true
}

// History returns artifacts oldest first.
func (s *Sink) History() []domain.Artifact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.history)
}

func (s *Sink) Retention() int { return s.retention }

// Subscribe registers fn under key. Subscribing an existing key replaces its
// callback without changing notification order.
func (s *Sink) Subscribe(key string, fn func(domain.Artifact)) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	if _, ok := s.subs[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.subs[key] = fn
}

// Unsubscribe removes key; unknown keys are ignored.
func (s *Sink) Unsubscribe(key string) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	if _, ok := s.subs[key]; !ok {
		return
	}
	delete(s.subs, key)
	s.keys = slices.DeleteFunc(s.keys, func(k string) bool { return k == key })
}
