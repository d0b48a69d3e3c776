package score

import (
	"math"
	"reflect"
	"testing"

	"github.com/pdiddy/curation-engine/pkg/types"
)

func testWeights() map[string]float64 {
	return map[string]float64{
		"prognostics":     0.4,
		"fault diagnosis": 0.3,
		"reliability":     0.3,
	}
}

func TestRelevanceZeroMatches(t *testing.T) {
	rec := types.Record{Title: "A Study of Medieval Poetry", Authors: []string{"Doe"}}
	score, reasons := Relevance(rec, testWeights())
	if score != 0.0 {
		t.Errorf("score = %f, want exactly 0.0", score)
	}
	if len(reasons) == 0 {
		t.Error("zero-match result must still carry a reason")
	}
}

func TestRelevanceFullMatch(t *testing.T) {
	rec := types.Record{
		Title:    "Prognostics and Fault Diagnosis",
		Abstract: "We study reliability of rotating machinery.",
	}
	score, _ := Relevance(rec, testWeights())
	if math.Abs(score-1.0) > 1e-9 {
		t.Errorf("score = %f, want 1.0", score)
	}
}

func TestRelevanceCountsConceptOnceAcrossFields(t *testing.T) {
	// "prognostics" appears in title, abstract, and keywords; it must
	// contribute its weight a single time.
	rec := types.Record{
		Title:    "Prognostics prognostics prognostics",
		Abstract: "More prognostics here.",
		Keywords: []string{"prognostics"},
	}
	score, _ := Relevance(rec, testWeights())
	want := 0.4 / (0.4 + 0.3 + 0.3)
	if math.Abs(score-want) > 1e-9 {
		t.Errorf("score = %f, want %f (single contribution)", score, want)
	}
}

func TestRelevanceEmptyAbstractNotPenalized(t *testing.T) {
	withAbstract := types.Record{Title: "Prognostics of gears", Abstract: "unrelated text"}
	without := types.Record{Title: "Prognostics of gears"}

	s1, _ := Relevance(withAbstract, testWeights())
	s2, _ := Relevance(without, testWeights())
	if s1 != s2 {
		t.Errorf("empty abstract changed score: %f vs %f", s1, s2)
	}
}

func TestRelevanceCaseInsensitive(t *testing.T) {
	rec := types.Record{Title: "FAULT DIAGNOSIS of bearings"}
	score, _ := Relevance(rec, testWeights())
	if score == 0 {
		t.Error("case-insensitive match failed")
	}
}

func TestRelevanceDeterministic(t *testing.T) {
	rec := types.Record{
		Title:    "Reliability and prognostics",
		Abstract: "fault diagnosis study",
		Keywords: []string{"reliability"},
	}
	s1, r1 := Relevance(rec, testWeights())
	s2, r2 := Relevance(rec, testWeights())
	if s1 != s2 {
		t.Errorf("scores differ across calls: %f vs %f", s1, s2)
	}
	if !reflect.DeepEqual(r1, r2) {
		t.Errorf("reasons differ across calls:\n%v\n%v", r1, r2)
	}
}
