// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dedup

import (
	"fmt"
	"io"
	"sort"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/curation-engine/pkg/types"
)

// exportDoc is the on-disk shape of an index export: a mapping from
// fingerprint key to record summary (R3.4).
type exportDoc struct {
	Fingerprints map[string]types.IndexEntry `yaml:"fingerprints"`
}

// Export writes the index as YAML to w. Keys are emitted in sorted order
// so exports are reproducible.
func Export(idx Index, w io.Writer) error {
	entries, err := idx.Entries()
	if err != nil {
		return fmt.Errorf("reading index: %w", err)
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// yaml.v3 sorts map keys on encode, but build the document from the
	// sorted key list anyway so the shape is explicit.
	doc := exportDoc{Fingerprints: make(map[string]types.IndexEntry, len(entries))}
	for _, k := range keys {
		doc.Fingerprints[k] = entries[k]
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("encoding index export: %w", err)
	}
	return nil
}

// Import loads a YAML export produced by Export into idx. Importing an
// export of an index reproduces its fingerprint set exactly.
func Import(idx Index, r io.Reader) (int, error) {
	var doc exportDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return 0, fmt.Errorf("parsing index export: %w", err)
	}

	n := 0
	for key, entry := range doc.Fingerprints {
		if err := idx.Insert(key, entry); err != nil {
			return n, fmt.Errorf("importing %s: %w", key, err)
		}
		n++
	}
	return n, nil
}
