package domain

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Core domain models shared by the catalog, classifier, builder and sessions.
// HTTP and storage shapes live in their adapters; keep these decoupled.

type Status string

const (
	StatusHealthy  Status = "healthy"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

func (s Status) Valid() bool {
	switch s {
	case StatusHealthy, StatusWarning, StatusCritical:
		return true
	}
	return false
}

// DefaultTag marks the fallback rule returned when nothing else matches.
const DefaultTag = "default"

// Domain tags used by the builtin catalog.
const (
	TagDisease      = "disease"
	TagPest         = "pest"
	TagSoilNutrient = "soil_nutrient"
	TagWeatherRisk  = "weather_risk"
	TagPlanting     = "planting"
)

// Money is a cost estimate such as "UGX 25,000 per acre".
type Money struct {
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
	Currency string          `json:"currency" yaml:"currency"`
	Per      string          `json:"per,omitempty" yaml:"per,omitempty"`
}

func (m Money) String() string {
	amount := humanize.Comma(m.Amount.IntPart())
	if frac := m.Amount.Sub(decimal.NewFromInt(m.Amount.IntPart())); !frac.IsZero() {
		amount = humanize.CommafWithDigits(m.Amount.InexactFloat64(), 2)
	}
	out := strings.TrimSpace(m.Currency + " " + amount)
	if m.Per != "" {
		out += " per " + m.Per
	}
	return out
}

// Rule is a static predicate-to-advisory mapping. Rules are loaded once with
// the catalog and never mutated afterwards.
type Rule struct {
	ID              string
	Title           string
	DomainTags      []string
	Keywords        []string // lowercase; any contained keyword matches
	Severity        Status
	ConfidenceBase  float64
	Issues          []string
	Recommendations []string
	CostEstimate    *Money
	Rainfall        *RainfallRange // set on rules that advise on a daily forecast
}

// RainfallRange bounds daily rainfall in millimetres: Above is exclusive,
// AtMost inclusive, and a nil bound is open.
type RainfallRange struct {
	Above  *float64
	AtMost *float64
}

func (r RainfallRange) Contains(mm float64) bool {
	if r.Above != nil && mm <= *r.Above {
		return false
	}
	if r.AtMost != nil && mm > *r.AtMost {
		return false
	}
	return true
}

func (r Rule) HasTag(tag string) bool {
	for _, t := range r.DomainTags {
		if t == tag {
			return true
		}
	}
	return false
}

// MatchesRainfall reports whether the rule advises on a day with mm of rain.
func (r Rule) MatchesRainfall(mm float64) bool {
	return r.Rainfall != nil && r.Rainfall.Contains(mm)
}

// MatchesText reports whether any keyword is contained in already-normalized text.
func (r Rule) MatchesText(normalized string) bool {
	for _, kw := range r.Keywords {
		if kw != "" && strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

// MatchResult is the classifier output. Fallback is set when no rule matched
// and the catalog's default rule was substituted.
type MatchResult struct {
	Rule       Rule
	Confidence float64
	Fallback   bool
}

// ImageLabel is what an image classifier backend returns for a descriptor.
type ImageLabel struct {
	DomainTag  string  `json:"domain_tag"`
	Confidence float64 `json:"confidence"`
}

// Artifact is the structured output of one completed diagnostic request.
// It is immutable once built; a new submission produces a new artifact.
type Artifact struct {
	ID              string    `json:"id"`
	InputRef        string    `json:"input_ref"`
	InputKind       InputKind `json:"input_kind"`
	MatchedRuleID   string    `json:"matched_rule_id,omitempty"`
	Fallback        bool      `json:"fallback"`
	Title           string    `json:"title"`
	Status          Status    `json:"status"`
	Confidence      float64   `json:"confidence"`
	Issues          []string  `json:"issues"`
	Recommendations []string  `json:"recommendations"`
	CostEstimate    *Money    `json:"cost_estimate,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
