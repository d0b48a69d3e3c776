package dedup

import (
	"testing"

	"github.com/pdiddy/curation-engine/internal/fingerprint"
	"github.com/pdiddy/curation-engine/internal/normalize"
	"github.com/pdiddy/curation-engine/pkg/types"
)

func mustFingerprint(t *testing.T, rec types.Record) fingerprint.Fingerprint {
	t.Helper()
	fp, err := fingerprint.New(normalize.Do(rec))
	if err != nil {
		t.Fatal(err)
	}
	return fp
}

func admit(t *testing.T, idx Index, rec types.Record) {
	t.Helper()
	fp := mustFingerprint(t, rec)
	entry := EntryFromRecord(rec)
	if fp.Strong != "" {
		if err := idx.Insert(fingerprint.StrongKey(fp.Strong), entry); err != nil {
			t.Fatal(err)
		}
	}
	if err := idx.Insert(fingerprint.WeakKey(fp.Weak), entry); err != nil {
		t.Fatal(err)
	}
}

func TestResolveNovel(t *testing.T) {
	idx := NewMemoryIndex()
	rec := types.Record{Title: "A New Paper", Authors: []string{"Smith"}, Year: 2024}

	out, err := Resolve(rec, mustFingerprint(t, rec), idx)
	if err != nil {
		t.Fatal(err)
	}
	if out.Kind != types.DedupNovel {
		t.Errorf("Kind = %q, want novel", out.Kind)
	}
}

func TestResolveStrongMatchIsAuthoritative(t *testing.T) {
	idx := NewMemoryIndex()
	existing := types.Record{
		Title:      "Original Title",
		Authors:    []string{"Smith"},
		Year:       2023,
		Identifier: "10.1016/a",
	}
	admit(t, idx, existing)

	// Same identifier, entirely different weak-key inputs.
	incoming := types.Record{
		Title:      "Retitled in a Different Venue",
		Authors:    []string{"Jones"},
		Year:       2024,
		Identifier: "10.1016/A ",
	}
	out, err := Resolve(incoming, mustFingerprint(t, incoming), idx)
	if err != nil {
		t.Fatal(err)
	}
	if out.Kind != types.DedupDuplicate || !out.MatchedStrong {
		t.Fatalf("outcome = %+v, want strong duplicate", out)
	}
}

func TestResolveWeakMatchWithoutIdentifier(t *testing.T) {
	idx := NewMemoryIndex()
	a := types.Record{
		Title:         "Deep Learning for Bearing Fault Diagnosis",
		Authors:       []string{"Smith"},
		Year:          2024,
		Venue:         "Mechanical Systems and Signal Processing",
		Publisher:     "Elsevier",
		CitationCount: 50,
		Identifier:    "10.1016/x",
	}
	admit(t, idx, a)

	b := types.Record{
		Title:         "Deep Learning for Bearing Fault Diagnosis",
		Authors:       []string{"Smith"},
		Year:          2024,
		Venue:         "Mechanical Systems and Signal Processing",
		CitationCount: 10,
	}
	out, err := Resolve(b, mustFingerprint(t, b), idx)
	if err != nil {
		t.Fatal(err)
	}
	if out.Kind != types.DedupDuplicate {
		t.Fatalf("Kind = %q, want duplicate", out.Kind)
	}
	if out.MatchedStrong {
		t.Error("MatchedStrong = true, want weak match")
	}
	if out.Merged.Identifier != "10.1016/x" {
		t.Errorf("merged identifier = %q, want A's identifier retained", out.Merged.Identifier)
	}
	if out.Merged.CitationCount != 50 {
		t.Errorf("merged citations = %d, want max(50,10)=50", out.Merged.CitationCount)
	}
}

func TestResolveSymmetricOnStrongKey(t *testing.T) {
	// Whichever of the two arrives second must classify as duplicate.
	x := types.Record{Title: "Version One", Authors: []string{"Smith"}, Year: 2024, Identifier: "10.1109/z"}
	y := types.Record{Title: "Version Two", Authors: []string{"Lee"}, Year: 2023, Identifier: "10.1109/z"}

	for _, order := range [][2]types.Record{{x, y}, {y, x}} {
		idx := NewMemoryIndex()
		admit(t, idx, order[0])
		out, err := Resolve(order[1], mustFingerprint(t, order[1]), idx)
		if err != nil {
			t.Fatal(err)
		}
		if out.Kind != types.DedupDuplicate {
			t.Errorf("second of (%q,%q) resolved %q, want duplicate",
				order[0].Title, order[1].Title, out.Kind)
		}
	}
}

func TestMergeNeverDropsInformation(t *testing.T) {
	existing := types.IndexEntry{
		Title:         "Sparse Record",
		Year:          types.YearUnknown,
		Keywords:      []string{"prognostics"},
		VenueQuartile: types.QuartileUnknown,
	}
	incoming := types.Record{
		Title:         "Sparse Record",
		Authors:       []string{"Ngai, T."},
		Year:          2022,
		Venue:         "ISA Transactions",
		VenueType:     types.VenueJournal,
		Identifier:    "10.1016/isa",
		Abstract:      "An abstract.",
		Keywords:      []string{"fault diagnosis", "prognostics"},
		CitationCount: 7,
		Publisher:     "Elsevier",
		VenueQuartile: types.Q1,
		ImpactFactor:  7.3,
	}

	merged := Merge(existing, incoming)

	if merged.Title != "Sparse Record" {
		t.Errorf("Title = %q", merged.Title)
	}
	if merged.Year != 2022 || merged.Venue != "ISA Transactions" || merged.Identifier != "10.1016/isa" {
		t.Errorf("incomplete fields not filled: %+v", merged)
	}
	if merged.VenueQuartile != types.Q1 {
		t.Errorf("quartile = %q, want known quartile over unknown", merged.VenueQuartile)
	}
	if merged.CitationCount != 7 {
		t.Errorf("citations = %d, want 7", merged.CitationCount)
	}
	want := map[string]bool{"prognostics": true, "fault diagnosis": true}
	if len(merged.Keywords) != len(want) {
		t.Fatalf("keywords = %v, want union of both sides", merged.Keywords)
	}
	for _, kw := range merged.Keywords {
		if !want[kw] {
			t.Errorf("unexpected keyword %q", kw)
		}
	}
}

func TestMergeKeepsExistingOverIncoming(t *testing.T) {
	existing := types.IndexEntry{
		Title:         "Full Record",
		Year:          2021,
		Venue:         "Measurement",
		Identifier:    "10.1016/m",
		CitationCount: 40,
	}
	incoming := types.Record{
		Title:         "Full Record but Different",
		Authors:       []string{"Other"},
		Year:          2020,
		Venue:         "Somewhere Else",
		CitationCount: 12,
	}

	merged := Merge(existing, incoming)
	if merged.Title != "Full Record" || merged.Year != 2021 || merged.Venue != "Measurement" {
		t.Errorf("existing complete fields overwritten: %+v", merged)
	}
	if merged.CitationCount != 40 {
		t.Errorf("citations = %d, want max kept", merged.CitationCount)
	}
}
