// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package policy applies the hard admission constraints and maps scores
// to quality tiers. Implements: prd008-scoring R4.1-R4.5 (policy gate),
// R2.5 (tier boundaries).
//
// The gate runs independently of, and before, the numeric scores: a
// record can be rejected outright however well it scores. Thresholds
// apply only to known values; unknown data defers to the quality score
// so sparse-metadata sources are not systematically penalized.
package policy

import (
	"fmt"
	"strings"

	"github.com/pdiddy/curation-engine/internal/normalize"
	"github.com/pdiddy/curation-engine/pkg/types"
)

// doiPublisherPrefixes infers a publisher from a DOI registrant prefix,
// so omitting the publisher field cannot dodge the blacklist.
var doiPublisherPrefixes = map[string]string{
	"10.1109": "ieee",
	"10.1016": "elsevier",
	"10.1007": "springer",
	"10.1038": "nature publishing group",
	"10.1002": "wiley",
	"10.3390": "mdpi",
	"10.1155": "hindawi",
}

// venuePublisherHints infers a publisher from a substring of the venue name.
var venuePublisherHints = []struct{ hint, publisher string }{
	{"ieee", "ieee"},
	{"elsevier", "elsevier"},
	{"springer", "springer"},
	{"nature", "nature publishing group"},
	{"wiley", "wiley"},
	{"mdpi", "mdpi"},
	{"hindawi", "hindawi"},
}

// preprintIndicators mark preprint servers in venue names.
var preprintIndicators = []string{
	"arxiv", "biorxiv", "medrxiv", "ssrn", "preprint",
	"research square", "techrxiv", "chemrxiv",
}

// Apply evaluates the hard constraints against a record. Every violated
// criterion is reported with the values compared.
func Apply(rec types.Record, n normalize.Record, cfg types.PolicyConfig) types.PolicyOutcome {
	var reasons []string

	publisher := ResolvePublisher(n)

	if publisher != "" && contains(cfg.PublisherBlacklist, publisher) {
		reasons = append(reasons, fmt.Sprintf("publisher %q is blacklisted", publisher))
	}

	if cfg.WhitelistOnly && publisher != "" && len(cfg.PublisherWhitelist) > 0 &&
		!contains(cfg.PublisherWhitelist, publisher) {
		reasons = append(reasons, fmt.Sprintf("publisher %q not in approved publisher list", publisher))
	}

	preprint := IsPreprint(rec, n)
	if preprint && !cfg.PreprintsAllowed() {
		reasons = append(reasons, fmt.Sprintf("preprint venue %q not allowed", rec.Venue))
	}

	// Numeric thresholds apply only when the value is known; preprints
	// are exempt from venue-metric checks they can never satisfy.
	if !preprint {
		if cfg.MinImpactFactor > 0 && rec.ImpactFactor > 0 && rec.ImpactFactor < cfg.MinImpactFactor {
			reasons = append(reasons, fmt.Sprintf("impact factor %.1f below threshold %.1f",
				rec.ImpactFactor, cfg.MinImpactFactor))
		}
		if minRank := cfg.MinQuartile.Rank(); minRank > 0 {
			if rank := rec.VenueQuartile.Rank(); rank > 0 && rank < minRank {
				reasons = append(reasons, fmt.Sprintf("venue quartile %s below minimum %s",
					rec.VenueQuartile, cfg.MinQuartile))
			}
		}
	}

	if cfg.MinYear > 0 && rec.Year != types.YearUnknown && rec.Year < cfg.MinYear {
		reasons = append(reasons, fmt.Sprintf("publication year %d below minimum %d",
			rec.Year, cfg.MinYear))
	}

	return types.PolicyOutcome{Passed: len(reasons) == 0, Reasons: reasons}
}

// ResolvePublisher returns the normalized publisher of a record,
// inferring it from the DOI prefix or the venue name when the publisher
// field is empty.
func ResolvePublisher(n normalize.Record) string {
	if n.Publisher != "" {
		return n.Publisher
	}
	if n.Identifier != "" {
		if i := strings.IndexByte(n.Identifier, '/'); i > 0 {
			if p, ok := doiPublisherPrefixes[n.Identifier[:i]]; ok {
				return p
			}
		}
	}
	for _, h := range venuePublisherHints {
		if strings.Contains(n.Venue, h.hint) {
			return h.publisher
		}
	}
	return ""
}

// IsPreprint reports whether a record comes from a preprint server,
// either by declared venue type or by venue-name indicators.
func IsPreprint(rec types.Record, n normalize.Record) bool {
	if rec.VenueType == types.VenuePreprint {
		return true
	}
	for _, ind := range preprintIndicators {
		if strings.Contains(n.Venue, ind) {
			return true
		}
	}
	return false
}

func contains(list []string, normalized string) bool {
	for _, item := range list {
		if normalize.Fold(item) == normalized {
			return true
		}
	}
	return false
}
