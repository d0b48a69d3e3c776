// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dedup resolves incoming records against the known index and
// merges duplicate metadata. Implements: prd009-dedup R2.1-R2.5, R3.1-R3.4.
package dedup

import (
	"github.com/pdiddy/curation-engine/internal/fingerprint"
	"github.com/pdiddy/curation-engine/pkg/types"
)

// Index is the accumulating set of admitted fingerprints. Implementations
// must be safe for concurrent use; the engine additionally serializes the
// resolve-then-insert sequence so two workers cannot both admit the same
// new record.
type Index interface {
	// Lookup returns the entry stored under key, if any.
	Lookup(key string) (types.IndexEntry, bool, error)

	// Insert stores entry under key, replacing any previous entry.
	Insert(key string, entry types.IndexEntry) error

	// Entries returns a snapshot of the whole index for export.
	Entries() (map[string]types.IndexEntry, error)
}

// Resolve classifies a record as novel or duplicate against the index.
// The strong (identifier) fingerprint is authoritative: when it matches,
// the record is a duplicate regardless of the weak key. Absent a strong
// match, the weak fingerprint decides. Every input yields exactly one of
// the two outcomes; missing identity data falls through to weak matching
// rather than erroring.
func Resolve(rec types.Record, fp fingerprint.Fingerprint, idx Index) (types.DedupOutcome, error) {
	if fp.Strong != "" {
		key := fingerprint.StrongKey(fp.Strong)
		existing, ok, err := idx.Lookup(key)
		if err != nil {
			return types.DedupOutcome{}, err
		}
		if ok {
			merged := Merge(existing, rec)
			return types.DedupOutcome{
				Kind:          types.DedupDuplicate,
				MatchedKey:    key,
				MatchedStrong: true,
				Merged:        &merged,
			}, nil
		}
	}

	key := fingerprint.WeakKey(fp.Weak)
	existing, ok, err := idx.Lookup(key)
	if err != nil {
		return types.DedupOutcome{}, err
	}
	if ok {
		merged := Merge(existing, rec)
		return types.DedupOutcome{
			Kind:       types.DedupDuplicate,
			MatchedKey: key,
			Merged:     &merged,
		}, nil
	}

	return types.DedupOutcome{Kind: types.DedupNovel}, nil
}

// Merge combines an existing entry with a newly seen duplicate record.
// For each field the more complete value wins: non-empty over empty,
// known year/quartile over unknown. Citation counts only grow over time,
// so the higher observed value is kept. Keyword sets are unioned. The
// merge never drops information present on either side.
func Merge(existing types.IndexEntry, rec types.Record) types.IndexEntry {
	incoming := EntryFromRecord(rec)
	out := existing

	if out.Title == "" {
		out.Title = incoming.Title
	}
	if out.FirstAuthor == "" {
		out.FirstAuthor = incoming.FirstAuthor
	}
	if out.Year == types.YearUnknown {
		out.Year = incoming.Year
	}
	if out.Venue == "" {
		out.Venue = incoming.Venue
	}
	if out.VenueType == "" {
		out.VenueType = incoming.VenueType
	}
	if out.Identifier == "" {
		out.Identifier = incoming.Identifier
	}
	if out.Abstract == "" {
		out.Abstract = incoming.Abstract
	}
	if out.Publisher == "" {
		out.Publisher = incoming.Publisher
	}
	if out.VenueQuartile == "" || out.VenueQuartile == types.QuartileUnknown {
		if incoming.VenueQuartile != "" {
			out.VenueQuartile = incoming.VenueQuartile
		}
	}
	if out.ImpactFactor == 0 {
		out.ImpactFactor = incoming.ImpactFactor
	}
	if incoming.CitationCount > out.CitationCount {
		out.CitationCount = incoming.CitationCount
	}
	out.Keywords = unionKeywords(out.Keywords, incoming.Keywords)

	return out
}

// EntryFromRecord builds the minimal index summary kept per fingerprint.
func EntryFromRecord(r types.Record) types.IndexEntry {
	e := types.IndexEntry{
		Title:         r.Title,
		Year:          r.Year,
		Venue:         r.Venue,
		VenueType:     r.VenueType,
		Identifier:    r.Identifier,
		Abstract:      r.Abstract,
		CitationCount: r.CitationCount,
		Publisher:     r.Publisher,
		VenueQuartile: r.VenueQuartile,
		ImpactFactor:  r.ImpactFactor,
	}
	if len(r.Authors) > 0 {
		e.FirstAuthor = r.Authors[0]
	}
	if len(r.Keywords) > 0 {
		e.Keywords = append([]string(nil), r.Keywords...)
	}
	return e
}

// unionKeywords appends keywords from b that a does not already contain,
// preserving a's order so merges stay deterministic.
func unionKeywords(a, b []string) []string {
	if len(b) == 0 {
		return a
	}
	seen := make(map[string]bool, len(a))
	for _, kw := range a {
		seen[kw] = true
	}
	out := a
	for _, kw := range b {
		if !seen[kw] {
			seen[kw] = true
			out = append(out, kw)
		}
	}
	return out
}
