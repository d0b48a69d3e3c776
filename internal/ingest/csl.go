// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest converts external bibliographic formats to and from
// evaluation records. CSL (Citation Style Language) is the interchange
// format used by Pandoc and reference managers, so batches exported by
// discovery tools can be fed to the engine directly, and admitted
// records can be written back out as a bibliography.
// Implements: prd007-curation R7.4-R7.6.
package ingest

import (
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/curation-engine/pkg/types"
)

// CSLItem is one bibliographic entry in CSL-YAML/CSL-JSON form. Field
// names follow the CSL schema; fields the engine does not score are
// not carried.
type CSLItem struct {
	ID             string    `yaml:"id" json:"id"`
	Type           string    `yaml:"type" json:"type"`
	Title          string    `yaml:"title" json:"title"`
	Author         []CSLName `yaml:"author,omitempty" json:"author,omitempty"`
	Abstract       string    `yaml:"abstract,omitempty" json:"abstract,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty" json:"container-title,omitempty"`
	Publisher      string    `yaml:"publisher,omitempty" json:"publisher,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty" json:"issued,omitempty"`
	DOI            string    `yaml:"DOI,omitempty" json:"DOI,omitempty"`
	Keyword        string    `yaml:"keyword,omitempty" json:"keyword,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty" json:"family,omitempty"`
	Given   string `yaml:"given,omitempty" json:"given,omitempty"`
	Literal string `yaml:"literal,omitempty" json:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts" json:"date-parts"`
}

// DecodeCSL reads a CSL-YAML (or CSL-JSON, a YAML subset) item list and
// converts each entry to an evaluation record.
func DecodeCSL(r io.Reader) ([]types.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading CSL input: %w", err)
	}
	var items []CSLItem
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing CSL input: %w", err)
	}
	records := make([]types.Record, len(items))
	for i, item := range items {
		records[i] = fromCSLItem(item)
	}
	return records, nil
}

// EncodeCSL writes records as a CSL-YAML list to w.
func EncodeCSL(records []types.Record, w io.Writer) error {
	items := make([]CSLItem, len(records))
	for i, rec := range records {
		items[i] = toCSLItem(rec)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// fromCSLItem converts a CSL entry to an evaluation record.
func fromCSLItem(item CSLItem) types.Record {
	rec := types.Record{
		Title:      item.Title,
		Abstract:   item.Abstract,
		Venue:      item.ContainerTitle,
		Publisher:  item.Publisher,
		Identifier: item.DOI,
		VenueType:  venueTypeFromCSL(item.Type),
	}
	if rec.Identifier == "" {
		rec.Identifier = item.ID
	}

	for _, a := range item.Author {
		rec.Authors = append(rec.Authors, formatAuthorName(a))
	}

	if item.Issued != nil && len(item.Issued.DateParts) > 0 && len(item.Issued.DateParts[0]) > 0 {
		rec.Year = item.Issued.DateParts[0][0]
	}

	if item.Keyword != "" {
		for _, kw := range strings.Split(item.Keyword, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				rec.Keywords = append(rec.Keywords, kw)
			}
		}
	}

	return rec
}

// toCSLItem converts an evaluation record to a CSL entry.
func toCSLItem(rec types.Record) CSLItem {
	item := CSLItem{
		ID:             rec.Identifier,
		Type:           venueTypeToCSL(rec.VenueType),
		Title:          rec.Title,
		Abstract:       rec.Abstract,
		ContainerTitle: rec.Venue,
		Publisher:      rec.Publisher,
		Keyword:        strings.Join(rec.Keywords, ", "),
	}

	for _, a := range rec.Authors {
		item.Author = append(item.Author, parseAuthorName(a))
	}

	if rec.Year != types.YearUnknown {
		item.Issued = &CSLDate{DateParts: [][]int{{rec.Year}}}
	}

	// Set DOI when the identifier looks like one.
	if strings.HasPrefix(rec.Identifier, "10.") {
		item.DOI = rec.Identifier
	}

	return item
}

// venueTypeFromCSL maps a CSL entry type to a venue classification.
// Unrecognized types map to journal, the most common case.
func venueTypeFromCSL(cslType string) types.VenueType {
	switch cslType {
	case "paper-conference":
		return types.VenueConference
	case "article", "manuscript":
		return types.VenuePreprint
	default:
		return types.VenueJournal
	}
}

// venueTypeToCSL maps a venue classification back to a CSL entry type.
func venueTypeToCSL(vt types.VenueType) string {
	switch vt {
	case types.VenueConference:
		return "paper-conference"
	case types.VenuePreprint:
		return "article"
	default:
		return "article-journal"
	}
}

// formatAuthorName joins CSL family/given parts into a display name.
func formatAuthorName(n CSLName) string {
	if n.Literal != "" {
		return n.Literal
	}
	if n.Given == "" {
		return n.Family
	}
	return n.Given + " " + n.Family
}

// parseAuthorName splits a full name string into CSL family/given parts.
// It splits on the last space: everything before is given, the last token
// is family. Single-token names use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Given:  name[:idx],
		Family: name[idx+1:],
	}
}
