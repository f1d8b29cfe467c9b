package recommend

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"

	"akwana/internal/domain"
)

// Builder expands a match into a fresh, immutable artifact.
type Builder struct {
	now   func() time.Time
	newID func() string
}

func New() *Builder {
	return &Builder{now: func() time.Time { return time.Now().UTC() }, newID: uuid.NewString}
}

// WithClock returns a copy of b stamping artifacts with now.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	cp := *b
	cp.now = now
	return &cp
}

// Build copies rule fields into a new artifact. Confidence is passed through
// from the match unchanged. A malformed match is a programmer error and is
// reported as ErrPrecondition.
func (b *Builder) Build(m domain.MatchResult, in domain.Input) (domain.Artifact, error) {
	if m.Rule.ID == "" {
		return domain.Artifact{}, fmt.Errorf("%w: match has no rule", domain.ErrPrecondition)
	}
	if math.IsNaN(m.Confidence) || m.Confidence < 0 || m.Confidence > 100 {
		return domain.Artifact{}, fmt.Errorf("%w: confidence %v outside [0,100]", domain.ErrPrecondition, m.Confidence)
	}
	if !m.Rule.Severity.Valid() {
		return domain.Artifact{}, fmt.Errorf("%w: rule %s severity %q", domain.ErrPrecondition, m.Rule.ID, m.Rule.Severity)
	}
	if in.IsZero() {
		return domain.Artifact{}, fmt.Errorf("%w: artifact without input", domain.ErrPrecondition)
	}

	a := domain.Artifact{
		ID:              b.newID(),
		InputRef:        in.ID(),
		InputKind:       in.Kind(),
		Fallback:        m.Fallback,
		Title:           m.Rule.Title,
		Status:          m.Rule.Severity,
		Confidence:      m.Confidence,
		Issues:          nonNil(m.Rule.Issues),
		Recommendations: nonNil(m.Rule.Recommendations),
		CreatedAt:       b.now(),
	}
	if !m.Fallback {
		a.MatchedRuleID = m.Rule.ID
	}
	if m.Rule.CostEstimate != nil {
		cost := *m.Rule.CostEstimate
		a.CostEstimate = &cost
	}
	return a, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}
