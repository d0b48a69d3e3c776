// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"math"
)

// VenueInfo is one row of the venue-reputation table, keyed by normalized
// venue name.
type VenueInfo struct {
	// ImpactFactor is the venue impact factor, 0 when unknown.
	ImpactFactor float64 `json:"impact_factor,omitempty" yaml:"impact_factor,omitempty"`

	// Quartile is the venue ranking bucket.
	Quartile Quartile `json:"quartile,omitempty" yaml:"quartile,omitempty"`

	// Category classifies the venue (journal, conference, dataset).
	Category string `json:"category,omitempty" yaml:"category,omitempty"`

	// Score overrides the derived reputation score for venues without
	// impact-factor data (e.g. conferences).
	Score float64 `json:"score,omitempty" yaml:"score,omitempty"`
}

// ScoreWeights distributes the quality score across its five dimensions.
// The weights must sum to 1.0 (R2.2).
type ScoreWeights struct {
	Venue    float64 `json:"venue" yaml:"venue"`
	Citation float64 `json:"citation" yaml:"citation"`
	Content  float64 `json:"content" yaml:"content"`
	Author   float64 `json:"author" yaml:"author"`
	Novelty  float64 `json:"novelty" yaml:"novelty"`
}

// Sum returns the total of the five weights.
func (w ScoreWeights) Sum() float64 {
	return w.Venue + w.Citation + w.Content + w.Author + w.Novelty
}

// PolicyConfig holds the hard constraints applied before tier
// classification. Per prd008-scoring R4.3, thresholds apply only when the
// corresponding field is known: unknown data defers to the quality score.
type PolicyConfig struct {
	// PublisherBlacklist lists publishers whose records are rejected
	// unconditionally. Matching is case-insensitive on the normalized name.
	PublisherBlacklist []string `json:"publisher_blacklist,omitempty" yaml:"publisher_blacklist,omitempty"`

	// PublisherWhitelist lists trusted publishers. Advisory unless
	// WhitelistOnly is set.
	PublisherWhitelist []string `json:"publisher_whitelist,omitempty" yaml:"publisher_whitelist,omitempty"`

	// WhitelistOnly rejects records whose known publisher is absent from
	// the whitelist.
	WhitelistOnly bool `json:"whitelist_only,omitempty" yaml:"whitelist_only,omitempty"`

	// MinImpactFactor rejects records whose known venue impact factor is
	// below this value. 0 disables the check.
	MinImpactFactor float64 `json:"min_impact_factor,omitempty" yaml:"min_impact_factor,omitempty"`

	// MinQuartile rejects records whose known venue quartile ranks below
	// this value. Empty or unknown disables the check.
	MinQuartile Quartile `json:"min_quartile,omitempty" yaml:"min_quartile,omitempty"`

	// MinYear rejects records published before this year. 0 disables the
	// check.
	MinYear int `json:"min_year,omitempty" yaml:"min_year,omitempty"`

	// AllowPreprints controls whether preprint-venue records pass the
	// gate. Defaults to true.
	AllowPreprints *bool `json:"allow_preprints,omitempty" yaml:"allow_preprints,omitempty"`
}

// PreprintsAllowed resolves the AllowPreprints option, defaulting to true.
func (p PolicyConfig) PreprintsAllowed() bool {
	return p.AllowPreprints == nil || *p.AllowPreprints
}

// CurationConfig bundles everything the engine needs to evaluate a
// record. It is loaded from configuration by the caller and treated as
// read-only by the engine, so tests can supply deterministic fixtures.
type CurationConfig struct {
	// ConceptWeights maps a domain concept phrase to its relevance weight
	// in (0,1]. Must be non-empty.
	ConceptWeights map[string]float64 `json:"concept_weights" yaml:"concept_weights"`

	// Venues is the venue-reputation table keyed by normalized venue name.
	Venues map[string]VenueInfo `json:"venues,omitempty" yaml:"venues,omitempty"`

	// NoveltyTerms lists innovation-signaling phrases searched in title
	// and abstract. Presence adds a bounded bonus; absence is neutral.
	NoveltyTerms []string `json:"novelty_terms,omitempty" yaml:"novelty_terms,omitempty"`

	// Weights distributes the quality score across its dimensions.
	Weights ScoreWeights `json:"weights" yaml:"weights"`

	// Policy holds the hard pass/fail constraints.
	Policy PolicyConfig `json:"policy,omitempty" yaml:"policy,omitempty"`
}

// weightTolerance absorbs float error when checking the weight sum.
const weightTolerance = 1e-6

// Validate rejects malformed configuration eagerly, at load time rather
// than per record (R5.1): an empty concept map, out-of-range concept or
// sub-score weights, or sub-score weights that do not sum to 1.0.
func (c CurationConfig) Validate() error {
	if len(c.ConceptWeights) == 0 {
		return fmt.Errorf("config: concept_weights is empty")
	}
	for concept, w := range c.ConceptWeights {
		if w <= 0 || w > 1 {
			return fmt.Errorf("config: concept %q has weight %v outside (0,1]", concept, w)
		}
	}
	for name, w := range map[string]float64{
		"venue":    c.Weights.Venue,
		"citation": c.Weights.Citation,
		"content":  c.Weights.Content,
		"author":   c.Weights.Author,
		"novelty":  c.Weights.Novelty,
	} {
		if w < 0 || w > 1 {
			return fmt.Errorf("config: %s weight %v outside [0,1]", name, w)
		}
	}
	if sum := c.Weights.Sum(); math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("config: sub-score weights sum to %v, want 1.0", sum)
	}
	if q := c.Policy.MinQuartile; q != "" && q != QuartileUnknown && q.Rank() == 0 {
		return fmt.Errorf("config: unknown min_quartile %q", q)
	}
	return nil
}
