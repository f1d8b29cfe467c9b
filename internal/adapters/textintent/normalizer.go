// Package textintent folds farmer questions into the vocabulary the rule
// catalog is keyed on: Unicode case folding, NFKC, collapsed whitespace and
// a small Luganda/Swahili glossary.
package textintent

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// DefaultGlossary maps local crop and soil words to catalog keywords.
var DefaultGlossary = map[string]string{
	"kasooli":  "maize",
	"mahindi":  "maize",
	"emmwanyi": "coffee",
	"kahawa":   "coffee",
	"ettaka":   "soil",
	"udongo":   "soil",
	"ebitooke": "banana",
	"ndizi":    "banana",
	"enkuba":   "rain",
	"mvua":     "rain",
	"mbolea":   "fertilizer",
	"wadudu":   "pest",
}

type Normalizer struct {
	glossary map[string]string
}

func New(glossary map[string]string) *Normalizer {
	if glossary == nil {
		glossary = DefaultGlossary
	}
	g := make(map[string]string, len(glossary))
	fold := cases.Fold()
	for k, v := range glossary {
		g[fold.String(k)] = v
	}
	return &Normalizer{glossary: g}
}

func (n *Normalizer) Normalize(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	folded := cases.Fold().String(norm.NFKC.String(text))
	words := strings.FieldsFunc(folded, unicode.IsSpace)
	for i, w := range words {
		core := strings.TrimFunc(w, func(r rune) bool { return unicode.IsPunct(r) })
		if repl, ok := n.glossary[core]; ok {
			words[i] = strings.Replace(w, core, repl, 1)
		}
	}
	return strings.Join(words, " "), nil
}
