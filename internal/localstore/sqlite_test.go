package localstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook/internal/model"
)

func TestSqliteKVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.db")
	kv, err := OpenSqliteKV(path)
	require.NoError(t, err)
	defer kv.Close()

	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("k", "v1"))
	require.NoError(t, kv.Set("k", "v2")) // upsert
	v, ok, err := kv.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)

	require.NoError(t, kv.Delete("k"))
	_, ok, err = kv.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSqliteKVSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.db")
	kv, err := OpenSqliteKV(path)
	require.NoError(t, err)

	s := New(kv)
	todos := []model.Todo{
		{ID: "1", Text: "walk", Schedule: model.ScheduleAt(7), SubTasks: []model.SubTask{{ID: "1a", Text: "shoes"}}},
		{ID: "2", Text: "read"},
	}
	require.NoError(t, s.SaveTodos("2024-01-02", todos))
	require.NoError(t, s.Close())

	kv2, err := OpenSqliteKV(path)
	require.NoError(t, err)
	s2 := New(kv2)
	defer s2.Close()

	got, err := s2.Todos("2024-01-02")
	require.NoError(t, err)
	assert.Equal(t, todos, got)
}
