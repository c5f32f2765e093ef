package archive

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/docarchive-cli/internal/document"
	"github.com/KaramelBytes/docarchive-cli/internal/retrieval"
)

func TestSnapshotSaveAndOpen(t *testing.T) {
	dir := t.TempDir()
	a := New()
	md := (&document.MetadataDraft{Author: "Ann", Category: "legal", Tags: []string{"nda"}}).SetReadingTime(2).Build()
	d := document.New("1", "Mutual NDA", "Confidential agreement between parties", md, "")
	d.CreatedAt = time.Date(2022, 11, 3, 8, 0, 0, 0, time.UTC)
	a.Add(d)

	require.NoError(t, SnapshotOf(a).Save(dir))
	_, err := os.Stat(SnapshotPath(dir))
	require.NoError(t, err)

	b, err := Open(dir)
	require.NoError(t, err)
	got, ok := b.Get("1")
	require.True(t, ok)
	assert.True(t, d.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, 2, got.Metadata.ReadingTime)
	assert.Len(t, b.Search("nda", retrieval.Filters{DateRange: &retrieval.DateRange{Start: "2022-11-03", End: "2022-11-03"}}), 1)
}

func TestLoadSnapshotMissingIsEmpty(t *testing.T) {
	s, err := LoadSnapshot(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, s.Documents)
	assert.Equal(t, snapshotVersion, s.Version)
}

func TestLoadSnapshotCorrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(SnapshotPath(dir), []byte("{not json"), 0o644))
	_, err := LoadSnapshot(dir)
	assert.Error(t, err)
}

func TestLoadSnapshotFutureVersion(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(SnapshotPath(dir), []byte(`{"version": 99, "documents": []}`), 0o644))
	_, err := LoadSnapshot(dir)
	assert.Error(t, err)
}

func TestSnapshotOfOrdersByCreation(t *testing.T) {
	a := New()
	late := document.New("b", "Late", "x", (&document.MetadataDraft{}).Build(), "")
	late.CreatedAt = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	early := document.New("a", "Early", "x", (&document.MetadataDraft{}).Build(), "")
	early.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a.Add(late)
	a.Add(early)

	s := SnapshotOf(a)
	require.Len(t, s.Documents, 2)
	assert.Equal(t, "a", s.Documents[0].ID)
	assert.Equal(t, "b", s.Documents[1].ID)
}
