// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize canonicalizes raw record fields into a comparable
// form. Implements: prd007-curation R1.1, R1.3 (field normalization).
//
// Normalization never mutates the source record and never fails:
// malformed fields normalize to an explicit unknown sentinel so that
// downstream dedup and scoring can still handle partial records.
package normalize

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/curation-engine/pkg/types"
)

// Unknown is the sentinel used where a field could not be normalized.
const Unknown = "unknown"

// deaccent decomposes characters and drops combining marks, so "Müller"
// and "Muller" compare equal.
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Record is a normalized, comparison-only view of a types.Record. The
// original display forms are preserved on the source record.
type Record struct {
	// Title is the lower-cased, punctuation-stripped, whitespace-collapsed
	// title. Empty when the source title normalizes to nothing.
	Title string

	// FirstAuthorSurname is the normalized surname of the first author,
	// or Unknown when no author is usable.
	FirstAuthorSurname string

	// Venue is the trimmed, case-folded venue name.
	Venue string

	// Identifier is the case- and whitespace-normalized persistent
	// identifier, empty when absent.
	Identifier string

	// Year is the publication year or types.YearUnknown.
	Year int

	// Publisher is the trimmed, case-folded publisher name.
	Publisher string
}

// Do derives the normalized view of a record.
func Do(r types.Record) Record {
	return Record{
		Title:              Text(r.Title),
		FirstAuthorSurname: firstAuthorSurname(r.Authors),
		Venue:              Fold(r.Venue),
		Identifier:         Identifier(r.Identifier),
		Year:               r.Year,
		Publisher:          Fold(r.Publisher),
	}
}

// Text lower-cases s, strips diacritics and punctuation, and collapses
// whitespace. Used for titles and other free-text comparison keys.
func Text(s string) string {
	s = stripDiacritics(strings.ToLower(s))
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Fold trims and case-folds s without removing punctuation, for venue
// and publisher names where "&" and "-" are significant.
func Fold(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Identifier normalizes a persistent identifier: trimmed, lower-cased,
// with common DOI URL prefixes removed.
func Identifier(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, prefix := range []string{"https://doi.org/", "http://doi.org/", "doi:"} {
		s = strings.TrimPrefix(s, prefix)
	}
	return s
}

// Surname extracts and normalizes the surname from a single author name.
// Handles both "Last, First" and "First Last" forms. Returns Unknown for
// names that normalize to nothing.
func Surname(author string) string {
	author = strings.TrimSpace(author)
	var last string
	if i := strings.IndexByte(author, ','); i >= 0 {
		last = author[:i]
	} else {
		fields := strings.Fields(author)
		if len(fields) > 0 {
			last = fields[len(fields)-1]
		}
	}
	last = Text(last)
	if last == "" {
		return Unknown
	}
	return last
}

func firstAuthorSurname(authors []string) string {
	if len(authors) == 0 {
		return Unknown
	}
	return Surname(authors[0])
}

// Year coerces a year string into an integer, returning types.YearUnknown
// for anything that is not a plausible 4-digit year.
func Year(s string) int {
	s = strings.TrimSpace(s)
	y, err := strconv.Atoi(s)
	if err != nil || y < 1000 || y > 9999 {
		return types.YearUnknown
	}
	return y
}

func stripDiacritics(s string) string {
	out, _, err := transform.String(deaccent, s)
	if err != nil {
		return s
	}
	return out
}
