// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"fmt"
	"math"
	"strings"

	"github.com/pdiddy/curation-engine/internal/normalize"
	"github.com/pdiddy/curation-engine/pkg/types"
)

// unknownVenueScore is the default for venues absent from the reputation
// table. Low but nonzero: absence of data is not evidence of low quality.
const unknownVenueScore = 0.3

// citationLogCap caps the log-scaled citations-per-year curve.
const citationLogCap = 3.0

// recentExpectedCitations is the lenient expectation for records one
// year old or less, which have not had time to accrue citations.
const recentExpectedCitations = 5.0

// Quality combines the five quality dimensions into a single weighted
// score with a per-dimension breakdown and reasons (R2.1-R2.6). nowYear
// anchors the citation-age calculation; callers pass the current year,
// tests pass a fixed one.
func Quality(rec types.Record, n normalize.Record, cfg types.CurationConfig, nowYear int) types.ScoreBreakdown {
	b := types.ScoreBreakdown{Weights: cfg.Weights}

	var reasons []string
	collect := func(score float64, rs []string) float64 {
		reasons = append(reasons, rs...)
		return clamp01(score)
	}

	b.Venue = collect(venueScore(rec, n, cfg.Venues))
	b.Citation = collect(citationScore(rec.CitationCount, rec.Year, nowYear))
	b.Content = collect(contentScore(rec, n))
	b.Author = collect(authorScore(rec.Authors))
	b.Novelty = collect(noveltyScore(rec, cfg.NoveltyTerms))

	b.Total = clamp01(b.Venue*cfg.Weights.Venue +
		b.Citation*cfg.Weights.Citation +
		b.Content*cfg.Weights.Content +
		b.Author*cfg.Weights.Author +
		b.Novelty*cfg.Weights.Novelty)
	b.Reasons = reasons

	return b
}

// quartileScore maps a ranking bucket to a reputation component.
func quartileScore(q types.Quartile) float64 {
	switch q {
	case types.Q1:
		return 1.0
	case types.Q2:
		return 0.8
	case types.Q3:
		return 0.6
	case types.Q4:
		return 0.4
	default:
		return 0
	}
}

// venueScore looks the venue up in the reputation table, falling back to
// quartile/impact-factor data carried on the record itself. Unknown
// venues default to unknownVenueScore.
func venueScore(rec types.Record, n normalize.Record, venues map[string]types.VenueInfo) (float64, []string) {
	quartile := rec.VenueQuartile
	impact := rec.ImpactFactor

	if info, ok := venues[n.Venue]; ok {
		if info.Score > 0 {
			return info.Score, []string{fmt.Sprintf(
				"venue %q has configured reputation score %.2f", rec.Venue, info.Score)}
		}
		if info.Quartile != "" {
			quartile = info.Quartile
		}
		if info.ImpactFactor > 0 {
			impact = info.ImpactFactor
		}
	}

	qs := quartileScore(quartile)
	ifs := math.Min(impact/10.0, 1.0)

	switch {
	case qs > 0 && impact > 0:
		s := 0.5*qs + 0.5*ifs
		return s, []string{fmt.Sprintf(
			"venue %q ranked %s with impact factor %.1f", rec.Venue, quartile, impact)}
	case qs > 0:
		return qs, []string{fmt.Sprintf("venue %q ranked %s", rec.Venue, quartile)}
	case impact > 0:
		return ifs, []string{fmt.Sprintf("venue %q has impact factor %.1f", rec.Venue, impact)}
	default:
		return unknownVenueScore, []string{fmt.Sprintf(
			"venue %q not in reputation table, defaulting to %.1f", rec.Venue, unknownVenueScore)}
	}
}

// citationScore is a monotone, saturating function of citation count
// adjusted for record age. Records a year old or less score on a more
// lenient expected-citation curve so they are not penalized for recency.
// Unknown years fall back to a three-year age assumption.
func citationScore(citations, year, nowYear int) (float64, []string) {
	age := 3
	if year != types.YearUnknown {
		age = nowYear - year
		if age < 0 {
			age = 0
		}
	}

	if age <= 1 {
		s := math.Min(float64(citations)/recentExpectedCitations, 1.0)
		return s, []string{fmt.Sprintf(
			"%d citations at age %dy scored on the recent-record curve", citations, age)}
	}

	perYear := float64(citations) / float64(age)
	s := math.Min(math.Log10(perYear+1), citationLogCap) / citationLogCap
	return s, []string{fmt.Sprintf(
		"%d citations over %d years (%.1f/year)", citations, age, perYear)}
}

// contentScore is a coarse heuristic over abstract length, title length,
// and identifier presence. Each contributes a bounded partial score.
func contentScore(rec types.Record, n normalize.Record) (float64, []string) {
	var s float64
	var reasons []string

	abstractWords := len(strings.Fields(rec.Abstract))
	switch {
	case abstractWords >= 100:
		s += 0.4
		reasons = append(reasons, fmt.Sprintf("substantial abstract (%d words)", abstractWords))
	case abstractWords >= 40:
		s += 0.3
		reasons = append(reasons, fmt.Sprintf("moderate abstract (%d words)", abstractWords))
	case abstractWords > 0:
		s += 0.15
		reasons = append(reasons, fmt.Sprintf("short abstract (%d words)", abstractWords))
	default:
		reasons = append(reasons, "no abstract")
	}

	titleWords := len(strings.Fields(rec.Title))
	switch {
	case titleWords >= 6 && titleWords <= 25:
		s += 0.3
	case titleWords >= 3:
		s += 0.2
	default:
		s += 0.1
	}
	reasons = append(reasons, fmt.Sprintf("title length %d words", titleWords))

	if n.Identifier != "" {
		s += 0.3
		reasons = append(reasons, "persistent identifier present")
	}

	return s, reasons
}

// authorScore checks author-count plausibility and name well-formedness.
// Very short or implausibly long author lists are penalized.
func authorScore(authors []string) (float64, []string) {
	count := len(authors)
	var countComponent float64
	switch {
	case count >= 2 && count <= 10:
		countComponent = 0.6
	case count == 1 || (count >= 11 && count <= 25):
		countComponent = 0.4
	default:
		countComponent = 0.2
	}

	wellFormed := 0
	for _, a := range authors {
		if len(strings.Fields(a)) >= 2 || strings.Contains(a, ",") {
			wellFormed++
		}
	}
	nameComponent := 0.0
	if count > 0 {
		nameComponent = 0.4 * float64(wellFormed) / float64(count)
	}

	return countComponent + nameComponent, []string{fmt.Sprintf(
		"%d author(s), %d with well-formed names", count, wellFormed)}
}

// noveltyBase is the neutral novelty score: absence of innovation terms
// is not penalized.
const noveltyBase = 0.5

// noveltyPerTerm is the bounded bonus per matched innovation term.
const noveltyPerTerm = 0.15

// noveltyScore searches title and abstract for configured
// innovation-signaling terms.
func noveltyScore(rec types.Record, terms []string) (float64, []string) {
	text := strings.ToLower(rec.Title + " " + rec.Abstract)

	var matchedTerms []string
	for _, term := range terms {
		if term != "" && strings.Contains(text, strings.ToLower(term)) {
			matchedTerms = append(matchedTerms, term)
		}
	}

	if len(matchedTerms) == 0 {
		return noveltyBase, []string{"no innovation-signaling terms found (neutral)"}
	}

	s := noveltyBase + noveltyPerTerm*float64(len(matchedTerms))
	return s, []string{fmt.Sprintf("innovation terms present: %s",
		strings.Join(matchedTerms, ", "))}
}
