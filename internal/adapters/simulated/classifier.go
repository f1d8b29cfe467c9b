// Package simulated is an image classifier that answers from a fixed table
// after a delay. It stands in for a real vision model in demos and tests.
package simulated

import (
	"context"
	"fmt"
	"time"

	"akwana/internal/domain"
)

var defaultLabels = map[domain.ScanType]domain.ImageLabel{
	domain.ScanCrop: {DomainTag: domain.TagDisease, Confidence: 87},
	domain.ScanSoil: {DomainTag: domain.TagSoilNutrient, Confidence: 92},
}

type Classifier struct {
	delay  time.Duration
	labels map[domain.ScanType]domain.ImageLabel
}

func New(delay time.Duration) *Classifier {
	labels := make(map[domain.ScanType]domain.ImageLabel, len(defaultLabels))
	for k, v := range defaultLabels {
		labels[k] = v
	}
	return &Classifier{delay: delay, labels: labels}
}

// WithLabel overrides the answer for one scan type.
func (c *Classifier) WithLabel(st domain.ScanType, label domain.ImageLabel) *Classifier {
	c.labels[st] = label
	return c
}

func (c *Classifier) Classify(ctx context.Context, img domain.ImageDescriptor) (domain.ImageLabel, error) {
	if c.delay > 0 {
		t := time.NewTimer(c.delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return domain.ImageLabel{}, ctx.Err()
		}
	}
	label, ok := c.labels[img.ScanType]
	if !ok {
		return domain.ImageLabel{}, fmt.Errorf("%w: no model for scan type %q", domain.ErrCapability, img.ScanType)
	}
	return label, nil
}
