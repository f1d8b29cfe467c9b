package simulated

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akwana/internal/domain"
)

func TestClassifier_ScanTypes(t *testing.T) {
	c := New(0)
	label, err := c.Classify(context.Background(), domain.ImageDescriptor{ScanType: domain.ScanCrop})
	require.NoError(t, err)
	assert.Equal(t, domain.ImageLabel{DomainTag: domain.TagDisease, Confidence: 87}, label)

	label, err = c.Classify(context.Background(), domain.ImageDescriptor{ScanType: domain.ScanSoil})
	require.NoError(t, err)
	assert.Equal(t, domain.ImageLabel{DomainTag: domain.TagSoilNutrient, Confidence: 92}, label)

	_, err = c.Classify(context.Background(), domain.ImageDescriptor{ScanType: "leaf"})
	assert.ErrorIs(t, err, domain.ErrCapability)
}

func TestClassifier_Override(t *testing.T) {
	c := New(0).WithLabel(domain.ScanCrop, domain.ImageLabel{DomainTag: domain.TagPest, Confidence: 70})
	label, err := c.Classify(context.Background(), domain.ImageDescriptor{ScanType: domain.ScanCrop})
	require.NoError(t, err)
	assert.Equal(t, domain.TagPest, label.DomainTag)
}

func TestClassifier_DelayHonorsContext(t *testing.T) {
	c := New(time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := c.Classify(ctx, domain.ImageDescriptor{ScanType: domain.ScanCrop})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
