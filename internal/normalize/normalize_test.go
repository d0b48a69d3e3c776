package normalize

import (
	"testing"

	"github.com/pdiddy/curation-engine/pkg/types"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Deep Learning For Bearing Fault Diagnosis", "deep learning for bearing fault diagnosis"},
		{"collapses whitespace", "  deep\t learning\n diagnosis ", "deep learning diagnosis"},
		{"strips punctuation", "attention is all you need!", "attention is all you need"},
		{"strips diacritics", "Über Prüfstände für Motoren", "uber prufstande fur motoren"},
		{"keeps digits", "ResNet-50 at 2024", "resnet50 at 2024"},
		{"empty", "", ""},
		{"only punctuation", "?!...", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.in); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSurname(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"first last", "Jane Smith", "smith"},
		{"last comma first", "Smith, Jane", "smith"},
		{"accented", "José García", "garcia"},
		{"single token", "Plato", "plato"},
		{"empty", "", Unknown},
		{"whitespace only", "   ", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Surname(tt.in); got != tt.want {
				t.Errorf("Surname(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10.1016/j.ymssp.2024.111", "10.1016/j.ymssp.2024.111"},
		{"  10.1016/X  ", "10.1016/x"},
		{"https://doi.org/10.1038/s41467", "10.1038/s41467"},
		{"doi:10.1109/TIE.2024.1", "10.1109/tie.2024.1"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Identifier(tt.in); got != tt.want {
			t.Errorf("Identifier(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestYear(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"2024", 2024},
		{" 1998 ", 1998},
		{"98", types.YearUnknown},
		{"not a year", types.YearUnknown},
		{"", types.YearUnknown},
	}
	for _, tt := range tests {
		if got := Year(tt.in); got != tt.want {
			t.Errorf("Year(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDoDoesNotMutateSource(t *testing.T) {
	rec := types.Record{
		Title:   "Deep Learning!",
		Authors: []string{"García, José"},
		Venue:   " Mechanical Systems and Signal Processing ",
		Year:    2024,
	}
	n := Do(rec)

	if rec.Title != "Deep Learning!" || rec.Authors[0] != "García, José" {
		t.Fatal("source record mutated")
	}
	if n.Title != "deep learning" {
		t.Errorf("Title = %q", n.Title)
	}
	if n.FirstAuthorSurname != "garcia" {
		t.Errorf("FirstAuthorSurname = %q", n.FirstAuthorSurname)
	}
	if n.Venue != "mechanical systems and signal processing" {
		t.Errorf("Venue = %q", n.Venue)
	}
}

func TestDoMissingFieldsUseSentinels(t *testing.T) {
	n := Do(types.Record{Title: "???"})
	if n.Title != "" {
		t.Errorf("Title = %q, want empty", n.Title)
	}
	if n.FirstAuthorSurname != Unknown {
		t.Errorf("FirstAuthorSurname = %q, want %q", n.FirstAuthorSurname, Unknown)
	}
	if n.Year != types.YearUnknown {
		t.Errorf("Year = %d, want YearUnknown", n.Year)
	}
}
