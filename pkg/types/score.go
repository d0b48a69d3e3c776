// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Tier is the discrete quality bucket assigned to an evaluated record.
// Per prd008-scoring R2.5 the mapping from score to tier is lower-inclusive
// at each boundary.
type Tier string

const (
	TierTop         Tier = "top_tier"
	TierExcellent   Tier = "excellent"
	TierGood        Tier = "good"
	TierUnderReview Tier = "under_review"
	TierFiltered    Tier = "filtered"
)

// rank orders tiers for monotonicity comparisons; filtered is lowest.
var tierRank = map[Tier]int{
	TierFiltered:    0,
	TierUnderReview: 1,
	TierGood:        2,
	TierExcellent:   3,
	TierTop:         4,
}

// AtLeast reports whether t ranks at or above other.
func (t Tier) AtLeast(other Tier) bool {
	return tierRank[t] >= tierRank[other]
}

// ScoreBreakdown carries the quality sub-scores, their weights, and the
// combined score. All values are in [0,1]. It is derived at scoring time
// and never persisted independently of the record it describes.
type ScoreBreakdown struct {
	Venue    float64 `json:"venue" yaml:"venue"`
	Citation float64 `json:"citation" yaml:"citation"`
	Content  float64 `json:"content" yaml:"content"`
	Author   float64 `json:"author" yaml:"author"`
	Novelty  float64 `json:"novelty" yaml:"novelty"`

	// Weights are the sub-score weights used to combine the dimensions.
	Weights ScoreWeights `json:"weights" yaml:"weights"`

	// Total is the weighted sum of the five sub-scores.
	Total float64 `json:"total" yaml:"total"`

	// Reasons explains each sub-score in human-readable form (R2.6).
	Reasons []string `json:"reasons" yaml:"reasons"`
}

// DedupKind distinguishes a novel record from a duplicate of an already
// admitted one.
type DedupKind string

const (
	DedupNovel     DedupKind = "novel"
	DedupDuplicate DedupKind = "duplicate"
)

// DedupOutcome describes how a record resolved against the known index.
type DedupOutcome struct {
	Kind DedupKind `json:"kind" yaml:"kind"`

	// MatchedKey is the fingerprint that matched for duplicates.
	MatchedKey string `json:"matched_key,omitempty" yaml:"matched_key,omitempty"`

	// MatchedStrong reports whether the match was on the strong
	// (identifier) fingerprint rather than the weak one.
	MatchedStrong bool `json:"matched_strong,omitempty" yaml:"matched_strong,omitempty"`

	// Merged is the field-merged entry written back to the index for
	// duplicates.
	Merged *IndexEntry `json:"merged,omitempty" yaml:"merged,omitempty"`
}

// PolicyOutcome is the hard pass/fail gate result, independent of the
// continuous quality score.
type PolicyOutcome struct {
	Passed bool `json:"passed" yaml:"passed"`

	// Reasons lists each criterion that rejected the record, naming the
	// values compared.
	Reasons []string `json:"reasons,omitempty" yaml:"reasons,omitempty"`
}

// EvaluationResult is the engine's verdict on a single record.
type EvaluationResult struct {
	Dedup DedupOutcome `json:"dedup" yaml:"dedup"`

	// The fields below are populated only for novel records; duplicates
	// are merged into the index and not re-scored.
	Relevance        float64        `json:"relevance,omitempty" yaml:"relevance,omitempty"`
	Quality          ScoreBreakdown `json:"quality,omitempty" yaml:"quality,omitempty"`
	Policy           PolicyOutcome  `json:"policy,omitempty" yaml:"policy,omitempty"`
	Tier             Tier           `json:"tier,omitempty" yaml:"tier,omitempty"`
	RelevanceReasons []string       `json:"relevance_reasons,omitempty" yaml:"relevance_reasons,omitempty"`
}

// IndexEntry is the minimal record summary kept per fingerprint in the
// known index, sufficient to apply the merge policy on later duplicates.
type IndexEntry struct {
	Title         string    `json:"title" yaml:"title"`
	FirstAuthor   string    `json:"first_author,omitempty" yaml:"first_author,omitempty"`
	Year          int       `json:"year" yaml:"year"`
	Venue         string    `json:"venue,omitempty" yaml:"venue,omitempty"`
	VenueType     VenueType `json:"venue_type,omitempty" yaml:"venue_type,omitempty"`
	Identifier    string    `json:"identifier,omitempty" yaml:"identifier,omitempty"`
	Abstract      string    `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Keywords      []string  `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	CitationCount int       `json:"citation_count" yaml:"citation_count"`
	Publisher     string    `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	VenueQuartile Quartile  `json:"venue_quartile,omitempty" yaml:"venue_quartile,omitempty"`
	ImpactFactor  float64   `json:"impact_factor,omitempty" yaml:"impact_factor,omitempty"`
}
