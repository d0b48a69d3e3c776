// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package policy

import "github.com/pdiddy/curation-engine/pkg/types"

// Tier boundaries. Each boundary value belongs to the bucket above it:
// a score of exactly 0.70 is excellent, not good.
const (
	topTierMin     = 0.85
	excellentMin   = 0.70
	goodMin        = 0.55
	underReviewMin = 0.40
)

// Classify maps a quality score and the policy outcome to a tier. A
// policy rejection is always filtered, whatever the score.
func Classify(qualityScore float64, outcome types.PolicyOutcome) types.Tier {
	if !outcome.Passed {
		return types.TierFiltered
	}
	switch {
	case qualityScore >= topTierMin:
		return types.TierTop
	case qualityScore >= excellentMin:
		return types.TierExcellent
	case qualityScore >= goodMin:
		return types.TierGood
	case qualityScore >= underReviewMin:
		return types.TierUnderReview
	default:
		return types.TierFiltered
	}
}
