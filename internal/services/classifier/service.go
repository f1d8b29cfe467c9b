package classifier

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"akwana/internal/domain"
	"akwana/internal/ports"
)

// DefaultFallbackConfidence is the confidence reported for the default rule.
const DefaultFallbackConfidence = 40

// Catalog is the read side of the rule catalog the classifier scans.
type Catalog interface {
	All() ([]domain.Rule, error)
	Lookup(tag string) ([]domain.Rule, error)
	Default() (domain.Rule, error)
}

// Service matches inputs against the catalog. Text uses first-match-wins in
// declaration order; images are labelled by the ImageClassifier port and the
// label's tag picks the first rule carrying it. Nothing matching yields the
// default rule at the fallback confidence, never an error.
type Service struct {
	catalog  Catalog
	images   ports.ImageClassifier
	intent   ports.TextIntent
	fallback float64
}

type Option func(*Service)

func WithTextIntent(t ports.TextIntent) Option { return func(s *Service) { s.intent = t } }

func WithFallbackConfidence(c float64) Option {
	return func(s *Service) {
		if c >= 0 && c <= 100 {
			s.fallback = c
		}
	}
}

func New(catalog Catalog, images ports.ImageClassifier, opts ...Option) *Service {
	s := &Service{catalog: catalog, images: images, fallback: DefaultFallbackConfidence}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Match(ctx context.Context, in domain.Input) (domain.MatchResult, error) {
	switch in.Kind() {
	case domain.InputText:
		return s.matchText(ctx, in.Text())
	case domain.InputImage:
		return s.matchImage(ctx, in.Image())
	default:
		return domain.MatchResult{}, fmt.Errorf("%w: unsupported input kind %q", domain.ErrValidation, in.Kind())
	}
}

func (s *Service) matchText(ctx context.Context, text string) (domain.MatchResult, error) {
	if s.intent != nil {
		normalized, err := s.intent.Normalize(ctx, text)
		if err != nil {
			return domain.MatchResult{}, capabilityErr("text intent", err)
		}
		text = normalized
	}
	text = strings.ToLower(text)

	rules, err := s.catalog.All()
	if err != nil {
		return domain.MatchResult{}, err
	}
	for _, r := range rules {
		if r.MatchesText(text) {
			return domain.MatchResult{Rule: r, Confidence: r.ConfidenceBase}, nil
		}
	}
	return s.fallbackResult()
}

func (s *Service) matchImage(ctx context.Context, desc domain.ImageDescriptor) (domain.MatchResult, error) {
	if s.images == nil {
		return domain.MatchResult{}, fmt.Errorf("%w: no image classifier configured", domain.ErrCapability)
	}
	label, err := s.images.Classify(ctx, desc)
	if err != nil {
		return domain.MatchResult{}, capabilityErr("image classifier", err)
	}
	if label.DomainTag == "" || math.IsNaN(label.Confidence) || label.Confidence < 0 || label.Confidence > 100 {
		return domain.MatchResult{}, fmt.Errorf("%w: malformed image label %+v", domain.ErrCapability, label)
	}
	rules, err := s.catalog.Lookup(label.DomainTag)
	if err != nil {
		return domain.MatchResult{}, err
	}
	if len(rules) == 0 {
		return s.fallbackResult()
	}
	return domain.MatchResult{Rule: rules[0], Confidence: label.Confidence}, nil
}

func (s *Service) fallbackResult() (domain.MatchResult, error) {
	def, err := s.catalog.Default()
	if err != nil {
		return domain.MatchResult{}, err
	}
	return domain.MatchResult{Rule: def, Confidence: s.fallback, Fallback: true}, nil
}

// capabilityErr maps port failures onto the engine's taxonomy, keeping
// deadline expiry distinct from backend failure.
func capabilityErr(what string, err error) error {
	switch {
	case errors.Is(err, domain.ErrTimeout), errors.Is(err, domain.ErrCapability):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", what, domain.ErrTimeout)
	default:
		return fmt.Errorf("%s: %w: %v", what, domain.ErrCapability, err)
	}
}
