// Package memory is the in-process artifact store used when no database is
// configured.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"akwana/internal/domain"
)

// DefaultCapacity bounds an Artifacts store built with a non-positive capacity.
const DefaultCapacity = 1024

// Artifacts keeps at most capacity artifacts, dropping the oldest saved first.
type Artifacts struct {
	capacity int

	mu    sync.RWMutex
	byID  map[string]domain.Artifact
	order []string
}

func NewArtifacts(capacity int) *Artifacts {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Artifacts{capacity: capacity, byID: make(map[string]domain.Artifact)}
}

func (s *Artifacts) Save(_ context.Context, a domain.Artifact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[a.ID]; ok {
		return nil
	}
	if len(s.order) >= s.capacity {
		delete(s.byID, s.order[0])
		s.order = slices.Delete(s.order, 0, 1)
	}
	s.byID[a.ID] = clone(a)
	s.order = append(s.order, a.ID)
	return nil
}

func (s *Artifacts) Load(_ context.Context, id string) (domain.Artifact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.byID[id]
	if !ok {
		return domain.Artifact{}, fmt.Errorf("artifact %s: %w", id, domain.ErrNotFound)
	}
	return clone(a), nil
}

func (s *Artifacts) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

func clone(a domain.Artifact) domain.Artifact {
	a.Issues = slices.Clone(a.Issues)
	a.Recommendations = slices.Clone(a.Recommendations)
	if a.CostEstimate != nil {
		c := *a.CostEstimate
		a.CostEstimate = &c
	}
	return a
}
