// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/curation-engine/internal/dedup"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Export and import the known-record index",
	Long: `Index manages the persistent fingerprint index that deduplication runs
against. Export writes the index as YAML for backup or transfer; import
loads a previously exported file. Import followed by export reproduces
the fingerprint set exactly.`,
}

var indexExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the index as YAML to a file (or stdout with \"-\")",
	Args:  cobra.ExactArgs(1),
	RunE:  runIndexExport,
}

var indexImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Load a YAML index export into the index",
	Args:  cobra.ExactArgs(1),
	RunE:  runIndexImport,
}

func init() {
	indexCmd.AddCommand(indexExportCmd)
	indexCmd.AddCommand(indexImportCmd)
	rootCmd.AddCommand(indexCmd)
}

func runIndexExport(cmd *cobra.Command, args []string) error {
	idx, closeIdx, err := openIndex(cmd)
	if err != nil {
		return err
	}
	defer closeIdx()

	if args[0] == "-" {
		return dedup.Export(idx, os.Stdout)
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := dedup.Export(idx, f); err != nil {
		return err
	}
	return f.Close()
}

func runIndexImport(cmd *cobra.Command, args []string) error {
	idx, closeIdx, err := openIndex(cmd)
	if err != nil {
		return err
	}
	defer closeIdx()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	n, err := dedup.Import(idx, f)
	if err != nil {
		return err
	}
	fmt.Printf("imported %d fingerprint(s)\n", n)
	return nil
}
