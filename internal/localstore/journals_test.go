package localstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook/internal/model"
)

func newTestStore() *Store {
	s := New(NewMemoryKV())
	s.Now = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestJournalsEmptyDate(t *testing.T) {
	s := newTestStore()
	list, err := s.Journals("2024-01-01")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestLegacyJournalMigration(t *testing.T) {
	s := newTestStore()
	require.NoError(t, s.kv.Set(LegacyJournalKey("2024-01-01"), "<p>hi</p>"))

	list, err := s.Journals("2024-01-01")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Journal 1", list[0].Title)

	content, err := s.JournalContent(list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", content)

	_, ok, err := s.kv.Get(LegacyJournalKey("2024-01-01"))
	require.NoError(t, err)
	assert.False(t, ok, "legacy key must be removed after migration")

	// Idempotent: a second read returns the migrated list unchanged.
	again, err := s.Journals("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, list, again)
}

func TestMigrationSkippedWhenNewFormatExists(t *testing.T) {
	s := newTestStore()
	meta, err := s.AddJournal("2024-01-01", "Kept")
	require.NoError(t, err)
	// A stale legacy key alongside the new format is left untouched and
	// the new-format list wins.
	require.NoError(t, s.kv.Set(LegacyJournalKey("2024-01-01"), "stale"))

	list, err := s.Journals("2024-01-01")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, meta.ID, list[0].ID)

	_, ok, _ := s.kv.Get(LegacyJournalKey("2024-01-01"))
	assert.True(t, ok)
}

func TestAddJournalTitleSequence(t *testing.T) {
	s := newTestStore()
	j1, err := s.AddJournal("2024-02-02", "")
	require.NoError(t, err)
	j2, err := s.AddJournal("2024-02-02", "")
	require.NoError(t, err)
	assert.Equal(t, "Journal 1", j1.Title)
	assert.Equal(t, "Journal 2", j2.Title)
	assert.NotEqual(t, j1.ID, j2.ID)
}

func TestDeleteJournalRemovesBothRecords(t *testing.T) {
	s := newTestStore()
	meta, err := s.AddJournal("2024-03-03", "Doomed")
	require.NoError(t, err)
	require.NoError(t, s.SaveJournalContent("2024-03-03", meta.ID, "body"))

	remaining, err := s.DeleteJournal("2024-03-03", meta.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	content, err := s.JournalContent(meta.ID)
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestSaveJournalContentLazyBody(t *testing.T) {
	s := newTestStore()
	meta, err := s.AddJournal("2024-04-04", "Sparse")
	require.NoError(t, err)

	// No body until the first non-empty save.
	_, ok, _ := s.kv.Get(JournalContentKey(meta.ID))
	assert.False(t, ok)

	require.NoError(t, s.SaveJournalContent("2024-04-04", meta.ID, "words"))
	_, ok, _ = s.kv.Get(JournalContentKey(meta.ID))
	assert.True(t, ok)

	// Emptying the body removes the key again.
	require.NoError(t, s.SaveJournalContent("2024-04-04", meta.ID, ""))
	_, ok, _ = s.kv.Get(JournalContentKey(meta.ID))
	assert.False(t, ok)
}

func TestSaveJournalUpdatesExisting(t *testing.T) {
	s := newTestStore()
	meta, err := s.AddJournal("2024-05-05", "Before")
	require.NoError(t, err)

	s.Now = func() time.Time { return time.Date(2024, 5, 5, 8, 0, 0, 0, time.UTC) }
	list, err := s.SaveJournal("2024-05-05", model.JournalMeta{ID: meta.ID, Title: "After"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "After", list[0].Title)
	assert.Equal(t, s.Now().UnixMilli(), list[0].UpdatedAt)
	assert.Equal(t, meta.CreatedAt, list[0].CreatedAt)
}
