// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package curate evaluates candidate records against the known index,
// the relevance and quality scorers, and the admission policy.
// Implements: prd007-curation R2.1-R2.6 (evaluation pipeline);
//
//	prd009-dedup R2.6 (atomic resolve-and-insert).
package curate

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/pdiddy/curation-engine/internal/dedup"
	"github.com/pdiddy/curation-engine/internal/fingerprint"
	"github.com/pdiddy/curation-engine/internal/normalize"
	"github.com/pdiddy/curation-engine/internal/policy"
	"github.com/pdiddy/curation-engine/internal/score"
	"github.com/pdiddy/curation-engine/pkg/types"
)

// Engine evaluates records one at a time. Scoring is pure and stateless;
// the known index is the only shared resource, and the resolve-then-insert
// sequence runs under a single lock so concurrent workers cannot both
// admit the same new record.
type Engine struct {
	cfg types.CurationConfig
	idx dedup.Index

	// mu serializes dedup resolution and index write-back.
	mu sync.Mutex

	// now anchors citation-age math; tests pin it for reproducibility.
	now func() time.Time
}

// New validates cfg eagerly and returns an engine over the given index.
func New(cfg types.CurationConfig, idx dedup.Index) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, idx: idx, now: time.Now}, nil
}

// Evaluate runs one record through validation, dedup, scoring, the
// policy gate, and tier classification. Structurally invalid records
// return an error wrapping types.ErrInvalidRecord, distinct from a
// policy rejection. Duplicates are merged into the index and returned
// without re-scoring.
func (e *Engine) Evaluate(rec types.Record) (types.EvaluationResult, error) {
	if err := rec.Validate(); err != nil {
		return types.EvaluationResult{}, err
	}

	n := normalize.Do(rec)
	fp, err := fingerprint.New(n)
	if err != nil {
		return types.EvaluationResult{}, err
	}

	outcome, err := e.resolveAndRecord(rec, fp)
	if err != nil {
		return types.EvaluationResult{}, fmt.Errorf("resolving against index: %w", err)
	}

	result := types.EvaluationResult{Dedup: outcome}
	if outcome.Kind == types.DedupDuplicate {
		return result, nil
	}

	relevance, relevanceReasons := score.Relevance(rec, e.cfg.ConceptWeights)
	breakdown := score.Quality(rec, n, e.cfg, e.now().Year())
	gate := policy.Apply(rec, n, e.cfg.Policy)

	result.Relevance = relevance
	result.RelevanceReasons = relevanceReasons
	result.Quality = breakdown
	result.Policy = gate
	result.Tier = policy.Classify(breakdown.Total, gate)

	return result, nil
}

// resolveAndRecord is the critical section: classify the record against
// the index and write back either the novel entry or the merged
// duplicate under all of its identity keys.
func (e *Engine) resolveAndRecord(rec types.Record, fp fingerprint.Fingerprint) (types.DedupOutcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	outcome, err := dedup.Resolve(rec, fp, e.idx)
	if err != nil {
		return types.DedupOutcome{}, err
	}

	entry := dedup.EntryFromRecord(rec)
	if outcome.Kind == types.DedupDuplicate {
		entry = *outcome.Merged
	}

	keys := []string{fingerprint.WeakKey(fp.Weak)}
	if strong := normalize.Identifier(entry.Identifier); strong != "" {
		keys = append(keys, fingerprint.StrongKey(strong))
	}
	if outcome.Kind == types.DedupDuplicate && outcome.MatchedKey != "" {
		keys = append(keys, outcome.MatchedKey)
	}

	for _, key := range keys {
		if err := e.idx.Insert(key, entry); err != nil {
			return types.DedupOutcome{}, err
		}
	}
	return outcome, nil
}

// BatchItem pairs an input record with its evaluation result.
type BatchItem struct {
	Record types.Record
	Result types.EvaluationResult
	Err    error
}

// BatchSummary holds counts from a batch evaluation run, plus a
// histogram of policy rejection reasons.
type BatchSummary struct {
	Admitted   int
	Duplicates int
	Filtered   int
	Invalid    int

	RejectReasons map[string]int
}

// Total returns the number of records processed.
func (s BatchSummary) Total() int {
	return s.Admitted + s.Duplicates + s.Filtered + s.Invalid
}

// EvaluateBatch evaluates records with a bounded worker pool. Results
// are returned in input order; the order in which concurrently-novel
// records reach the index, and therefore which of two intra-batch
// duplicates is admitted first, is not deterministic. Progress lines
// and a summary are written to w.
func (e *Engine) EvaluateBatch(ctx context.Context, records []types.Record, workers int, w io.Writer) ([]BatchItem, BatchSummary, error) {
	if workers <= 0 {
		workers = 4
	}
	if workers > len(records) {
		workers = len(records)
	}

	items := make([]BatchItem, len(records))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				result, err := e.Evaluate(records[i])
				items[i] = BatchItem{Record: records[i], Result: result, Err: err}
			}
		}()
	}

	fed := 0
	var ctxErr error
feed:
	for i := range records {
		select {
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break feed
		case jobs <- i:
			fed++
		}
	}
	close(jobs)
	wg.Wait()

	summary := BatchSummary{RejectReasons: make(map[string]int)}
	for _, item := range items[:fed] {
		switch {
		case item.Err != nil:
			summary.Invalid++
			fmt.Fprintf(w, "invalid   %s: %v\n", titleOf(item.Record), item.Err)
		case item.Result.Dedup.Kind == types.DedupDuplicate:
			summary.Duplicates++
			fmt.Fprintf(w, "duplicate %s (matched %s)\n", titleOf(item.Record), item.Result.Dedup.MatchedKey)
		case item.Result.Tier == types.TierFiltered:
			summary.Filtered++
			for _, reason := range item.Result.Policy.Reasons {
				summary.RejectReasons[reason]++
			}
			fmt.Fprintf(w, "filtered  %s (score %.2f)\n", titleOf(item.Record), item.Result.Quality.Total)
		default:
			summary.Admitted++
			fmt.Fprintf(w, "admitted  %-12s %s (score %.2f)\n",
				item.Result.Tier, titleOf(item.Record), item.Result.Quality.Total)
		}
	}

	fmt.Fprintf(w, "\nadmitted: %d, duplicates: %d, filtered: %d, invalid: %d\n",
		summary.Admitted, summary.Duplicates, summary.Filtered, summary.Invalid)

	reasons := make([]string, 0, len(summary.RejectReasons))
	for reason := range summary.RejectReasons {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		fmt.Fprintf(w, "  %d rejected: %s\n", summary.RejectReasons[reason], reason)
	}

	return items, summary, ctxErr
}

func titleOf(rec types.Record) string {
	if rec.Title == "" {
		return "(untitled)"
	}
	if len(rec.Title) > 60 {
		return rec.Title[:57] + "..."
	}
	return rec.Title
}
