// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package score computes the domain-relevance and multi-criteria quality
// scores for a record. Implements: prd008-scoring R1.1-R1.4 (relevance),
// R2.1-R2.6 (quality dimensions).
//
// Scoring is pure: no I/O, no randomness, no shared state. Identical
// (record, config) inputs always produce identical scores.
package score

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/curation-engine/pkg/types"
)

// Relevance scores how well a record matches the configured domain
// concepts. Each concept is tested case-insensitively against title,
// abstract, and keywords; a concept found in several fields counts once
// at its configured weight, not cumulatively, so repetition earns
// nothing. The result is the matched-weight sum normalized by the total
// configured weight, clamped to [0,1]. Zero matches score exactly 0.
func Relevance(rec types.Record, conceptWeights map[string]float64) (float64, []string) {
	title := strings.ToLower(rec.Title)
	abstract := strings.ToLower(rec.Abstract)
	keywords := make([]string, len(rec.Keywords))
	for i, kw := range rec.Keywords {
		keywords[i] = strings.ToLower(kw)
	}

	// Iterate concepts in sorted order so reasons are reproducible.
	concepts := make([]string, 0, len(conceptWeights))
	total := 0.0
	for c, w := range conceptWeights {
		concepts = append(concepts, c)
		total += w
	}
	sort.Strings(concepts)

	if total == 0 {
		return 0, []string{"no concept weights configured"}
	}

	matched := 0.0
	var reasons []string
	for _, concept := range concepts {
		needle := strings.ToLower(concept)
		var fields []string
		if strings.Contains(title, needle) {
			fields = append(fields, "title")
		}
		if abstract != "" && strings.Contains(abstract, needle) {
			fields = append(fields, "abstract")
		}
		for _, kw := range keywords {
			if strings.Contains(kw, needle) {
				fields = append(fields, "keywords")
				break
			}
		}
		if len(fields) == 0 {
			continue
		}
		w := conceptWeights[concept]
		matched += w
		reasons = append(reasons, fmt.Sprintf("concept %q matched in %s (weight %.2f)",
			concept, strings.Join(fields, ", "), w))
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "no configured concepts matched")
	}

	return clamp01(matched / total), reasons
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
