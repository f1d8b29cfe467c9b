package recommend

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akwana/internal/domain"
)

var fixed = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func blightRule() domain.Rule {
	return domain.Rule{
		ID:              "early-blight",
		Title:           "Early Blight Disease Detected",
		DomainTags:      []string{domain.TagDisease},
		Severity:        domain.StatusWarning,
		ConfidenceBase:  87,
		Issues:          []string{"Lower leaves affected"},
		Recommendations: []string{"Remove affected leaves immediately", "Apply fungicide"},
		CostEstimate:    &domain.Money{Amount: decimal.NewFromInt(25000), Currency: "UGX", Per: "acre"},
	}
}

func TestBuild_CopiesRuleFields(t *testing.T) {
	in, err := domain.NewTextInput("tomato blight")
	require.NoError(t, err)

	b := New().WithClock(func() time.Time { return fixed })
	a, err := b.Build(domain.MatchResult{Rule: blightRule(), Confidence: 61.5}, in)
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, in.ID(), a.InputRef)
	assert.Equal(t, domain.InputText, a.InputKind)
	assert.Equal(t, "early-blight", a.MatchedRuleID)
	assert.Equal(t, domain.StatusWarning, a.Status)
	assert.Equal(t, 61.5, a.Confidence)
	assert.Equal(t, fixed, a.CreatedAt)
	if diff := cmp.Diff(blightRule().Recommendations, a.Recommendations); diff != "" {
		t.Errorf("recommendations mismatch (-want +got):\n%s", diff)
	}
	require.NotNil(t, a.CostEstimate)
	assert.Equal(t, "UGX 25,000 per acre", a.CostEstimate.String())
}

func TestBuild_FreshArtifactPerCall(t *testing.T) {
	in, err := domain.NewTextInput("blight")
	require.NoError(t, err)
	rule := blightRule()
	m := domain.MatchResult{Rule: rule, Confidence: 87}

	b := New()
	a1, err := b.Build(m, in)
	require.NoError(t, err)
	a2, err := b.Build(m, in)
	require.NoError(t, err)
	assert.NotEqual(t, a1.ID, a2.ID)

	rule.Recommendations[0] = "changed"
	assert.Equal(t, "Remove affected leaves immediately", a1.Recommendations[0])
}

func TestBuild_FallbackHasNoMatchedRule(t *testing.T) {
	in, err := domain.NewTextInput("hello")
	require.NoError(t, err)
	def := domain.Rule{ID: "general-advice", DomainTags: []string{domain.DefaultTag}, Severity: domain.StatusHealthy}

	a, err := New().Build(domain.MatchResult{Rule: def, Confidence: 40, Fallback: true}, in)
	require.NoError(t, err)
	assert.True(t, a.Fallback)
	assert.Empty(t, a.MatchedRuleID)
	assert.NotNil(t, a.Issues)
	assert.NotNil(t, a.Recommendations)
}

func TestBuild_PreconditionViolations(t *testing.T) {
	in, err := domain.NewTextInput("blight")
	require.NoError(t, err)

	cases := []struct {
		name  string
		match domain.MatchResult
		input domain.Input
	}{
		{"no rule", domain.MatchResult{Confidence: 50}, in},
		{"nan confidence", domain.MatchResult{Rule: blightRule(), Confidence: math.NaN()}, in},
		{"negative confidence", domain.MatchResult{Rule: blightRule(), Confidence: -1}, in},
		{"bad severity", domain.MatchResult{Rule: domain.Rule{ID: "x", Severity: "purple"}, Confidence: 1}, in},
		{"zero input", domain.MatchResult{Rule: blightRule(), Confidence: 50}, domain.Input{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New().Build(tc.match, tc.input)
			assert.ErrorIs(t, err, domain.ErrPrecondition)
		})
	}
}
