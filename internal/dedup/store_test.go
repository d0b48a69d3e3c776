package dedup

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/curation-engine/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreLookupMissing(t *testing.T) {
	s := testStore(t)

	_, ok, err := s.Lookup("id:10.1016/absent")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreInsertAndLookup(t *testing.T) {
	s := testStore(t)

	entry := types.IndexEntry{
		Title:         "Deep Learning for Bearing Fault Diagnosis",
		FirstAuthor:   "Jane Smith",
		Year:          2024,
		Venue:         "Mechanical Systems and Signal Processing",
		Identifier:    "10.1016/x",
		CitationCount: 50,
		Keywords:      []string{"bearing", "deep learning"},
	}
	require.NoError(t, s.Insert("id:10.1016/x", entry))

	got, ok, err := s.Lookup("id:10.1016/x")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entry, got)
}

func TestStoreInsertUpdatesExisting(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.Insert("wk:abc", types.IndexEntry{Title: "T", CitationCount: 5}))
	require.NoError(t, s.Insert("wk:abc", types.IndexEntry{Title: "T", CitationCount: 9}))

	got, ok, err := s.Lookup("wk:abc")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 9, got.CitationCount)

	entries, err := s.Entries()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Insert("id:10.1109/p", types.IndexEntry{Title: "Persistent"}))
	require.NoError(t, s.Close())

	s2, err := NewStore(dir)
	require.NoError(t, err)
	defer s2.Close()

	got, ok, err := s2.Lookup("id:10.1109/p")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Persistent", got.Title)
}

func TestExportImportRoundTrip(t *testing.T) {
	src := NewMemoryIndex()
	require.NoError(t, src.Insert("id:10.1016/x", types.IndexEntry{Title: "A", Year: 2024, CitationCount: 50}))
	require.NoError(t, src.Insert("wk:deadbeef", types.IndexEntry{Title: "B", Keywords: []string{"gear", "cnn"}}))

	var buf bytes.Buffer
	require.NoError(t, Export(src, &buf))

	dst := NewMemoryIndex()
	n, err := Import(dst, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	srcEntries, err := src.Entries()
	require.NoError(t, err)
	dstEntries, err := dst.Entries()
	require.NoError(t, err)
	assert.Equal(t, srcEntries, dstEntries)
}

func TestExportImportAcrossBackends(t *testing.T) {
	// A memory export imports cleanly into a SQLite store and back.
	mem := NewMemoryIndex()
	require.NoError(t, mem.Insert("id:10.1038/n", types.IndexEntry{Title: "Nature Paper", Year: 2023}))

	var buf bytes.Buffer
	require.NoError(t, Export(mem, &buf))

	s := testStore(t)
	_, err := Import(s, &buf)
	require.NoError(t, err)

	var back bytes.Buffer
	require.NoError(t, Export(s, &back))

	rt := NewMemoryIndex()
	_, err = Import(rt, &back)
	require.NoError(t, err)

	memEntries, _ := mem.Entries()
	rtEntries, _ := rt.Entries()
	assert.Equal(t, memEntries, rtEntries)
}
