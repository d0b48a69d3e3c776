// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/curation-engine/internal/curate"
	"github.com/pdiddy/curation-engine/internal/dedup"
	"github.com/pdiddy/curation-engine/internal/ingest"
	"github.com/pdiddy/curation-engine/pkg/types"
)

// loadCurationConfig returns the curation configuration: the built-in
// PHM defaults, replaced by the "curation" section of the viper config
// file when one is present. The result is validated before use.
func loadCurationConfig() (types.CurationConfig, error) {
	cfg := curate.DefaultConfig()

	if viper.IsSet("curation") {
		// Round-trip the viper sub-tree through YAML so the struct tags
		// drive the field mapping.
		raw, err := yaml.Marshal(viper.Get("curation"))
		if err != nil {
			return types.CurationConfig{}, fmt.Errorf("reading curation config: %w", err)
		}
		var fileCfg types.CurationConfig
		if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
			return types.CurationConfig{}, fmt.Errorf("parsing curation config: %w", err)
		}
		cfg = fileCfg
	}

	if err := cfg.Validate(); err != nil {
		return types.CurationConfig{}, err
	}
	return cfg, nil
}

// openIndex opens the index selected by flags: the persistent SQLite
// store under --index-dir, or a throwaway in-memory index with
// --memory-index. The returned closer is a no-op for memory indexes.
func openIndex(cmd *cobra.Command) (dedup.Index, func() error, error) {
	if inMemory, _ := cmd.Flags().GetBool("memory-index"); inMemory {
		return dedup.NewMemoryIndex(), func() error { return nil }, nil
	}

	dir, _ := cmd.Flags().GetString("index-dir")
	if dir == "" {
		dir = "index"
	}
	store, err := dedup.NewStore(dir)
	if err != nil {
		return nil, nil, err
	}
	return store, store.Close, nil
}

// readRecords loads a batch of records from a YAML or JSON file, or from
// stdin when path is "-". With asCSL set, the input is parsed as a CSL
// bibliography instead of the native record list.
func readRecords(path string, asCSL bool) ([]types.Record, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading records file: %w", err)
	}

	if asCSL {
		return ingest.DecodeCSL(bytes.NewReader(data))
	}

	// YAML is a superset of JSON, so one decoder covers both formats.
	var records []types.Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing records file %s: %w", path, err)
	}
	return records, nil
}
