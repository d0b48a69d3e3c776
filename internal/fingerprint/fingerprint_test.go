package fingerprint

import (
	"errors"
	"testing"

	"github.com/pdiddy/curation-engine/internal/normalize"
	"github.com/pdiddy/curation-engine/pkg/types"
)

func TestNewDeterministic(t *testing.T) {
	rec := types.Record{
		Title:      "Deep Learning for Bearing Fault Diagnosis",
		Authors:    []string{"Jane Smith", "Bob Jones"},
		Year:       2024,
		Identifier: "10.1016/x",
	}

	fp1, err := New(normalize.Do(rec))
	if err != nil {
		t.Fatal(err)
	}
	fp2, err := New(normalize.Do(rec))
	if err != nil {
		t.Fatal(err)
	}
	if fp1 != fp2 {
		t.Errorf("fingerprints differ: %+v vs %+v", fp1, fp2)
	}
	if fp1.Strong != "10.1016/x" {
		t.Errorf("Strong = %q, want normalized identifier", fp1.Strong)
	}
	if fp1.Weak == "" {
		t.Error("Weak is empty")
	}
}

func TestNewEquivalentInputsShareWeakKey(t *testing.T) {
	a := types.Record{
		Title:   "Deep Learning for Bearing Fault Diagnosis",
		Authors: []string{"Smith, Jane"},
		Year:    2024,
	}
	b := types.Record{
		Title:   "  deep learning for bearing FAULT diagnosis! ",
		Authors: []string{"Jane Smith"},
		Year:    2024,
	}

	fpA, err := New(normalize.Do(a))
	if err != nil {
		t.Fatal(err)
	}
	fpB, err := New(normalize.Do(b))
	if err != nil {
		t.Fatal(err)
	}
	if fpA.Weak != fpB.Weak {
		t.Errorf("weak fingerprints differ for equivalent records: %q vs %q", fpA.Weak, fpB.Weak)
	}
}

func TestNewDistinguishesYearAndAuthor(t *testing.T) {
	base := types.Record{Title: "A Survey", Authors: []string{"Smith"}, Year: 2024}
	fpBase, _ := New(normalize.Do(base))

	otherYear := base
	otherYear.Year = 2023
	fpYear, _ := New(normalize.Do(otherYear))
	if fpYear.Weak == fpBase.Weak {
		t.Error("different years share a weak fingerprint")
	}

	otherAuthor := base
	otherAuthor.Authors = []string{"Jones"}
	fpAuthor, _ := New(normalize.Do(otherAuthor))
	if fpAuthor.Weak == fpBase.Weak {
		t.Error("different first authors share a weak fingerprint")
	}
}

func TestNewMissingStrongIdentifier(t *testing.T) {
	fp, err := New(normalize.Do(types.Record{Title: "Untracked", Authors: []string{"Doe"}}))
	if err != nil {
		t.Fatal(err)
	}
	if fp.Strong != "" {
		t.Errorf("Strong = %q, want empty", fp.Strong)
	}
	if fp.Weak == "" {
		t.Error("Weak is empty")
	}
}

func TestNewEmptyTitleRejected(t *testing.T) {
	_, err := New(normalize.Do(types.Record{Title: "?!", Authors: []string{"Doe"}}))
	if !errors.Is(err, types.ErrInvalidRecord) {
		t.Errorf("err = %v, want ErrInvalidRecord", err)
	}
}

func TestKeySpacesDisjoint(t *testing.T) {
	if StrongKey("x") == WeakKey("x") {
		t.Error("strong and weak key spaces collide")
	}
}
