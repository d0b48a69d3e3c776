// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fingerprint derives stable identity keys for records.
// Implements: prd009-dedup R1.1-R1.4 (strong and weak fingerprints).
package fingerprint

import (
	"crypto/sha256"
	"fmt"

	"github.com/pdiddy/curation-engine/internal/normalize"
	"github.com/pdiddy/curation-engine/pkg/types"
)

// Fingerprint holds the identity keys of a record. Strong is present
// only when the record carries a persistent identifier; Weak is always
// computable for a valid record.
type Fingerprint struct {
	// Strong is the normalized persistent identifier, empty when absent.
	Strong string

	// Weak is a digest of normalized title, first-author surname, and
	// year. Two records with identical normalized inputs always produce
	// an identical weak fingerprint.
	Weak string
}

// ErrUntitled is returned when a record's title normalizes to nothing;
// such records must be rejected upstream and never reach the dedup index.
var ErrUntitled = fmt.Errorf("%w: title normalizes to empty", types.ErrInvalidRecord)

// New derives the fingerprints of a record from its normalized view.
func New(n normalize.Record) (Fingerprint, error) {
	if n.Title == "" {
		return Fingerprint{}, ErrUntitled
	}

	year := normalize.Unknown
	if n.Year != types.YearUnknown {
		year = fmt.Sprintf("%d", n.Year)
	}

	sum := sha256.Sum256([]byte(n.Title + "|" + n.FirstAuthorSurname + "|" + year))

	return Fingerprint{
		Strong: n.Identifier,
		Weak:   fmt.Sprintf("%x", sum[:8]),
	}, nil
}

// StrongKey prefixes a strong fingerprint for index storage, keeping the
// two key spaces disjoint.
func StrongKey(strong string) string { return "id:" + strong }

// WeakKey prefixes a weak fingerprint for index storage.
func WeakKey(weak string) string { return "wk:" + weak }
