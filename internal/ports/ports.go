package ports

import (
	"context"

	"akwana/internal/domain"
)

// ImageClassifier is the external AI/ML backend that labels an image with a
// domain tag and a confidence in [0,100].
type ImageClassifier interface {
	Classify(ctx context.Context, desc domain.ImageDescriptor) (domain.ImageLabel, error)
}

// TextIntent pre-normalizes free text (folding, translation) before matching.
type TextIntent interface {
	Normalize(ctx context.Context, text string) (string, error)
}

// Classifier maps an input to exactly one rule.
type Classifier interface {
	Match(ctx context.Context, in domain.Input) (domain.MatchResult, error)
}

// Publisher receives every newly completed artifact.
type Publisher interface {
	Publish(a domain.Artifact)
}

// ForecastSource supplies daily weather forecasts for a district, starting today.
type ForecastSource interface {
	Forecast(ctx context.Context, district string, days int) ([]domain.ForecastDay, error)
}
