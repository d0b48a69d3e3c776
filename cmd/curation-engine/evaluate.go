// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/curation-engine/internal/curate"
	"github.com/pdiddy/curation-engine/internal/ingest"
	"github.com/pdiddy/curation-engine/pkg/types"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [records-file]",
	Short: "Evaluate candidate records against the known index and policy",
	Long: `Evaluate reads a batch of paper records from a YAML or JSON file (or stdin
with "-"), deduplicates each against the known index, scores relevance and
quality, applies the admission policy, and assigns a quality tier.

Novel fingerprints are written back to the index, so re-running the same
batch reports duplicates instead of re-admitting records.`,
	Args: cobra.ExactArgs(1),
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().Bool("json", false, "output results as JSON")
	evaluateCmd.Flags().Bool("csl", false, "read the records file as a CSL-YAML/CSL-JSON bibliography")
	evaluateCmd.Flags().String("bibliography", "", "write admitted records to this file as CSL-YAML")
	evaluateCmd.Flags().Bool("memory-index", false, "use a throwaway in-memory index instead of the SQLite store")
	evaluateCmd.Flags().Int("workers", 4, "number of concurrent evaluation workers")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	asCSL, _ := cmd.Flags().GetBool("csl")
	records, err := readRecords(args[0], asCSL)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("records file %s contains no records", args[0])
	}

	cfg, err := loadCurationConfig()
	if err != nil {
		return err
	}

	idx, closeIdx, err := openIndex(cmd)
	if err != nil {
		return err
	}
	defer closeIdx()

	engine, err := curate.New(cfg, idx)
	if err != nil {
		return err
	}

	workers, _ := cmd.Flags().GetInt("workers")
	asJSON, _ := cmd.Flags().GetBool("json")

	progress := os.Stdout
	if asJSON {
		progress = os.Stderr
	}

	items, summary, err := engine.EvaluateBatch(context.Background(), records, workers, progress)
	if err != nil {
		return err
	}

	if asJSON {
		if err := writeResultsJSON(items, os.Stdout); err != nil {
			return err
		}
	} else {
		writeResultsTable(items, summary)
	}

	if bibPath, _ := cmd.Flags().GetString("bibliography"); bibPath != "" {
		if err := writeBibliography(items, bibPath); err != nil {
			return err
		}
	}

	if summary.Invalid > 0 {
		return fmt.Errorf("%d record(s) were structurally invalid", summary.Invalid)
	}
	return nil
}

// writeBibliography writes the admitted records as a CSL-YAML list, for
// use as a Pandoc bibliography or reference-manager import.
func writeBibliography(items []curate.BatchItem, path string) error {
	var admitted []types.Record
	for _, item := range items {
		if item.Err != nil || item.Result.Dedup.Kind == types.DedupDuplicate {
			continue
		}
		if item.Result.Policy.Passed {
			admitted = append(admitted, item.Record)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating bibliography file: %w", err)
	}
	defer f.Close()

	if err := ingest.EncodeCSL(admitted, f); err != nil {
		return err
	}
	return f.Close()
}

// resultRow is the JSON output shape for one evaluated record.
type resultRow struct {
	Title  string                  `json:"title"`
	Error  string                  `json:"error,omitempty"`
	Result *types.EvaluationResult `json:"result,omitempty"`
}

func writeResultsJSON(items []curate.BatchItem, w *os.File) error {
	rows := make([]resultRow, len(items))
	for i, item := range items {
		rows[i] = resultRow{Title: item.Record.Title}
		if item.Err != nil {
			rows[i].Error = item.Err.Error()
		} else {
			result := item.Result
			rows[i].Result = &result
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func writeResultsTable(items []curate.BatchItem, summary curate.BatchSummary) {
	fmt.Printf("\n%-12s  %-7s  %-9s  %-60s  %s\n",
		"Tier", "Quality", "Relevance", "Title", "Outcome")
	fmt.Println(strings.Repeat("-", 110))

	for _, item := range items {
		title := item.Record.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}

		switch {
		case item.Err != nil:
			fmt.Printf("%-12s  %-7s  %-9s  %-60s  invalid: %v\n", "-", "-", "-", title, item.Err)
		case item.Result.Dedup.Kind == types.DedupDuplicate:
			fmt.Printf("%-12s  %-7s  %-9s  %-60s  duplicate of %s\n",
				"-", "-", "-", title, item.Result.Dedup.MatchedKey)
		default:
			outcome := "admitted"
			if !item.Result.Policy.Passed {
				outcome = "rejected: " + strings.Join(item.Result.Policy.Reasons, "; ")
			}
			fmt.Printf("%-12s  %-7.2f  %-9.2f  %-60s  %s\n",
				item.Result.Tier, item.Result.Quality.Total, item.Result.Relevance, title, outcome)
		}
	}

	fmt.Printf("\n%d records: %d admitted, %d duplicates, %d filtered, %d invalid\n",
		summary.Total(), summary.Admitted, summary.Duplicates, summary.Filtered, summary.Invalid)
}
