// Package catalog holds the ordered, versioned set of advisory rules.
//
// A Catalog is built once at startup and is read-only afterwards, so it is
// shared between sessions without locking. Declaration order is significant:
// All and Lookup return rules in the order they were declared, which is the
// order the classifier scans them in.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"akwana/internal/domain"
)

//go:embed rules.yaml
var builtinYAML []byte

type Catalog struct {
	version string
	rules   []domain.Rule
	byTag   map[string][]int
	ready   bool
}

// New validates rules and returns an initialized catalog.
func New(version string, rules []domain.Rule) (*Catalog, error) {
	if strings.TrimSpace(version) == "" {
		return nil, fmt.Errorf("catalog: version is empty")
	}
	c := &Catalog{
		version: version,
		rules:   make([]domain.Rule, 0, len(rules)),
		byTag:   make(map[string][]int),
	}
	seen := make(map[string]struct{}, len(rules))
	hasDefault := false
	for i, r := range rules {
		if err := validateRule(r); err != nil {
			return nil, fmt.Errorf("catalog: rule %d: %w", i, err)
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate rule id %q", r.ID)
		}
		seen[r.ID] = struct{}{}
		if r.HasTag(domain.DefaultTag) {
			hasDefault = true
		}
		c.rules = append(c.rules, cloneRule(r))
		for _, tag := range r.DomainTags {
			c.byTag[tag] = append(c.byTag[tag], i)
		}
	}
	if !hasDefault {
		return nil, fmt.Errorf("catalog: no rule tagged %q", domain.DefaultTag)
	}
	c.ready = true
	return c, nil
}

func validateRule(r domain.Rule) error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("id is empty")
	}
	if len(r.DomainTags) == 0 {
		return fmt.Errorf("rule %s has no domain tags", r.ID)
	}
	if !r.Severity.Valid() {
		return fmt.Errorf("rule %s has unknown severity %q", r.ID, r.Severity)
	}
	if math.IsNaN(r.ConfidenceBase) || r.ConfidenceBase < 0 || r.ConfidenceBase > 100 {
		return fmt.Errorf("rule %s confidence %v outside [0,100]", r.ID, r.ConfidenceBase)
	}
	for _, kw := range r.Keywords {
		if kw != strings.ToLower(kw) {
			return fmt.Errorf("rule %s keyword %q is not lowercase", r.ID, kw)
		}
	}
	if rr := r.Rainfall; rr != nil && rr.Above != nil && rr.AtMost != nil && *rr.AtMost <= *rr.Above {
		return fmt.Errorf("rule %s rainfall range is empty", r.ID)
	}
	return nil
}

func cloneRule(r domain.Rule) domain.Rule {
	r.DomainTags = slices.Clone(r.DomainTags)
	r.Keywords = slices.Clone(r.Keywords)
	r.Issues = slices.Clone(r.Issues)
	r.Recommendations = slices.Clone(r.Recommendations)
	if r.CostEstimate != nil {
		m := *r.CostEstimate
		r.CostEstimate = &m
	}
	if r.Rainfall != nil {
		rr := *r.Rainfall
		r.Rainfall = &rr
	}
	return r
}

func (c *Catalog) Version() string {
	if c == nil {
		return ""
	}
	return c.version
}

// All returns every rule in declaration order.
func (c *Catalog) All() ([]domain.Rule, error) {
	if c == nil || !c.ready {
		return nil, fmt.Errorf("catalog not initialized: %w", domain.ErrNotFound)
	}
	out := make([]domain.Rule, len(c.rules))
	for i, r := range c.rules {
		out[i] = cloneRule(r)
	}
	return out, nil
}

// Lookup returns the rules carrying tag in declaration order. An unknown tag
// yields an empty slice, not an error.
func (c *Catalog) Lookup(tag string) ([]domain.Rule, error) {
	if c == nil || !c.ready {
		return nil, fmt.Errorf("catalog not initialized: %w", domain.ErrNotFound)
	}
	idx := c.byTag[tag]
	out := make([]domain.Rule, 0, len(idx))
	for _, i := range idx {
		out = append(out, cloneRule(c.rules[i]))
	}
	return out, nil
}

// Default returns the first rule tagged "default".
func (c *Catalog) Default() (domain.Rule, error) {
	rules, err := c.Lookup(domain.DefaultTag)
	if err != nil {
		return domain.Rule{}, err
	}
	if len(rules) == 0 {
		return domain.Rule{}, fmt.Errorf("no default rule: %w", domain.ErrNotFound)
	}
	return rules[0], nil
}

type document struct {
	Version string    `yaml:"version"`
	Rules   []ruleDoc `yaml:"rules"`
}

type ruleDoc struct {
	ID              string   `yaml:"id"`
	Title           string   `yaml:"title"`
	Tags            []string `yaml:"tags"`
	Keywords        []string `yaml:"keywords"`
	Severity        string   `yaml:"severity"`
	Confidence      float64  `yaml:"confidence"`
	Issues          []string `yaml:"issues"`
	Recommendations []string `yaml:"recommendations"`
	Cost            *costDoc `yaml:"cost"`
	Rainfall        *rainDoc `yaml:"rainfall"`
}

type rainDoc struct {
	Above  *float64 `yaml:"above"`
	AtMost *float64 `yaml:"at_most"`
}

type costDoc struct {
	Amount   string `yaml:"amount"`
	Currency string `yaml:"currency"`
	Per      string `yaml:"per"`
}

// Load parses a YAML catalog document.
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	rules := make([]domain.Rule, 0, len(doc.Rules))
	for _, d := range doc.Rules {
		rule := domain.Rule{
			ID:              d.ID,
			Title:           d.Title,
			DomainTags:      d.Tags,
			Keywords:        d.Keywords,
			Severity:        domain.Status(d.Severity),
			ConfidenceBase:  d.Confidence,
			Issues:          d.Issues,
			Recommendations: d.Recommendations,
		}
		if d.Cost != nil {
			amount, err := decimal.NewFromString(d.Cost.Amount)
			if err != nil {
				return nil, fmt.Errorf("rule %s cost amount: %w", d.ID, err)
			}
			rule.CostEstimate = &domain.Money{Amount: amount, Currency: d.Cost.Currency, Per: d.Cost.Per}
		}
		if d.Rainfall != nil {
			rule.Rainfall = &domain.RainfallRange{Above: d.Rainfall.Above, AtMost: d.Rainfall.AtMost}
		}
		rules = append(rules, rule)
	}
	return New(doc.Version, rules)
}

// LoadFile reads a catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Builtin returns the catalog embedded in the binary.
func Builtin() (*Catalog, error) {
	return Load(bytes.NewReader(builtinYAML))
}
