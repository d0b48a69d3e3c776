// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the curation engine.
// Implements: prd007-curation (Record, R1.1-R1.4);
//
//	prd008-scoring (ScoreBreakdown, Tier, R2.1-R2.6);
//	prd009-dedup (IndexEntry, DedupOutcome, R3.1-R3.3).
package types

import (
	"errors"
	"fmt"
	"time"
)

// VenueType classifies the publication venue of a record.
type VenueType string

const (
	VenueJournal    VenueType = "journal"
	VenueConference VenueType = "conference"
	VenuePreprint   VenueType = "preprint"
)

// Quartile is a journal ranking bucket. QuartileUnknown means the venue
// has no known ranking, which is treated as absence of data rather than
// evidence of low quality.
type Quartile string

const (
	Q1              Quartile = "Q1"
	Q2              Quartile = "Q2"
	Q3              Quartile = "Q3"
	Q4              Quartile = "Q4"
	QuartileUnknown Quartile = "unknown"
)

// Rank returns the ordinal position of the quartile, Q1 highest (4) down
// to Q4 (1). Unknown quartiles rank 0.
func (q Quartile) Rank() int {
	switch q {
	case Q1:
		return 4
	case Q2:
		return 3
	case Q3:
		return 2
	case Q4:
		return 1
	default:
		return 0
	}
}

// YearUnknown is the sentinel for a record whose publication year could
// not be parsed. Downstream logic must still score and deduplicate such
// records.
const YearUnknown = 0

// Record is a bibliographic metadata entry as supplied by a discovery
// source. The engine never mutates a Record; normalized views are derived
// on the side.
type Record struct {
	// Title is the paper title. A record without a title is invalid.
	Title string `json:"title" yaml:"title"`

	// Authors lists author display names in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Year is the publication year, or YearUnknown if unparseable.
	Year int `json:"year" yaml:"year"`

	// Venue is the journal or conference name as reported by the source.
	Venue string `json:"venue" yaml:"venue"`

	// VenueType classifies the venue: journal, conference, or preprint.
	VenueType VenueType `json:"venue_type,omitempty" yaml:"venue_type,omitempty"`

	// Identifier is a persistent identifier (DOI or similar), if known.
	Identifier string `json:"identifier,omitempty" yaml:"identifier,omitempty"`

	// Abstract is the paper abstract. May be empty.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Keywords are source-supplied subject terms. Order is not significant.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	// CitationCount is the citation count reported by the source. Counts
	// may be stale; merges keep the maximum observed value.
	CitationCount int `json:"citation_count" yaml:"citation_count"`

	// Publisher is the publishing house, if reported.
	Publisher string `json:"publisher,omitempty" yaml:"publisher,omitempty"`

	// VenueQuartile is the venue's ranking bucket, if known.
	VenueQuartile Quartile `json:"venue_quartile,omitempty" yaml:"venue_quartile,omitempty"`

	// ImpactFactor is the venue impact factor, 0 when unknown.
	ImpactFactor float64 `json:"impact_factor,omitempty" yaml:"impact_factor,omitempty"`

	// OpenAccess reports whether the record is openly accessible.
	OpenAccess bool `json:"open_access,omitempty" yaml:"open_access,omitempty"`
}

// ErrInvalidRecord marks records that fail structural validation. Callers
// can distinguish bad input from a policy rejection via errors.Is.
var ErrInvalidRecord = errors.New("invalid record")

// Validate checks the structural invariants a record must satisfy before
// it can be fingerprinted (R1.2): non-empty title, at least one author,
// non-negative citation count, and a plausible year when one is present.
func (r Record) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidRecord)
	}
	if len(r.Authors) == 0 {
		return fmt.Errorf("%w: no authors", ErrInvalidRecord)
	}
	if r.CitationCount < 0 {
		return fmt.Errorf("%w: negative citation count %d", ErrInvalidRecord, r.CitationCount)
	}
	if r.Year != YearUnknown {
		if r.Year < 1900 || r.Year > time.Now().Year()+1 {
			return fmt.Errorf("%w: implausible year %d", ErrInvalidRecord, r.Year)
		}
	}
	return nil
}
