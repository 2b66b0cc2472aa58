package todo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook/internal/localstore"
	"github.com/daybook-app/daybook/internal/model"
)

const day = "2024-01-01"

func newList() *List {
	return NewList(localstore.New(localstore.NewMemoryKV()))
}

func TestAddAndToggle(t *testing.T) {
	l := newList()

	_, err := l.Add(day, "", model.Schedule{})
	assert.ErrorIs(t, err, model.ErrValidation)

	td, err := l.Add(day, "water plants", model.ScheduleAt(9))
	require.NoError(t, err)
	assert.False(t, td.Completed)

	toggled, err := l.Toggle(day, td.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	_, err = l.Toggle(day, "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestDelete(t *testing.T) {
	l := newList()
	td, err := l.Add(day, "doomed", model.Schedule{})
	require.NoError(t, err)

	require.NoError(t, l.Delete(day, td.ID))
	require.NoError(t, l.Delete(day, td.ID)) // unknown id is a no-op

	todos, err := l.Todos(day)
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestSubTasks(t *testing.T) {
	l := newList()
	td, err := l.Add(day, "pack", model.Schedule{})
	require.NoError(t, err)

	_, err = l.AddSubTask(day, td.ID, "")
	assert.ErrorIs(t, err, model.ErrValidation)

	sub, err := l.AddSubTask(day, td.ID, "socks")
	require.NoError(t, err)

	require.NoError(t, l.ToggleSubTask(day, td.ID, sub.ID))
	todos, err := l.Todos(day)
	require.NoError(t, err)
	require.Len(t, todos[0].SubTasks, 1)
	assert.True(t, todos[0].SubTasks[0].Completed)

	require.NoError(t, l.DeleteSubTask(day, td.ID, sub.ID))
	todos, err = l.Todos(day)
	require.NoError(t, err)
	assert.Empty(t, todos[0].SubTasks)

	err = l.ToggleSubTask(day, td.ID, "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestForHour(t *testing.T) {
	l := newList()
	a, err := l.Add(day, "at nine", model.ScheduleAt(9))
	require.NoError(t, err)
	_, err = l.Add(day, "at ten", model.ScheduleAt(10))
	require.NoError(t, err)
	_, err = l.Add(day, "sometime", model.Schedule{})
	require.NoError(t, err)

	todos, err := l.Todos(day)
	require.NoError(t, err)
	nine := ForHour(todos, 9)
	require.Len(t, nine, 1)
	assert.Equal(t, a.ID, nine[0].ID)
	assert.Empty(t, ForHour(todos, 8))
}

func TestRangeFromSlots(t *testing.T) {
	sched := RangeFromSlots([]string{"15-2", "15-0", "15-1"})
	assert.Equal(t, model.TimeRange, sched.Kind)
	assert.Equal(t, "15:00 - 15:36", sched.Label)
	assert.Equal(t, []string{"15-0", "15-1", "15-2"}, sched.SlotKeys)

	// Discontiguous selections span first to last.
	sched = RangeFromSlots([]string{"16-4", "15-0"})
	assert.Equal(t, "15:00 - 17:00", sched.Label)

	// Invalid keys are dropped; nothing valid means unscheduled.
	assert.Equal(t, model.Unscheduled, RangeFromSlots([]string{"bogus"}).Kind)
	assert.Equal(t, model.Unscheduled, RangeFromSlots(nil).Kind)
}

func TestStorageRoundTripPreservesOrderAndSubtasks(t *testing.T) {
	kv := localstore.NewMemoryKV()
	l := NewList(localstore.New(kv))

	first, err := l.Add(day, "first", model.ScheduleAt(8))
	require.NoError(t, err)
	_, err = l.AddSubTask(day, first.ID, "step one")
	require.NoError(t, err)
	_, err = l.Add(day, "second", RangeFromSlots([]string{"9-0", "9-1"}))
	require.NoError(t, err)
	_, err = l.Add(day, "third", model.Schedule{})
	require.NoError(t, err)

	before, err := l.Todos(day)
	require.NoError(t, err)

	// Reload through a fresh store over the same backend.
	reloaded := NewList(localstore.New(kv))
	after, err := reloaded.Todos(day)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, []string{"first", "second", "third"},
		[]string{after[0].Text, after[1].Text, after[2].Text})
}

func TestScheduleWireShapes(t *testing.T) {
	// The persisted "hour" field keeps its historical duck-typed shape.
	raw, err := json.Marshal(model.Todo{ID: "1", Text: "a", Schedule: model.ScheduleAt(9)})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"hour":9`)

	raw, err = json.Marshal(model.Todo{ID: "2", Text: "b"})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"hour":null`)

	raw, err = json.Marshal(model.Todo{ID: "3", Text: "c", Schedule: RangeFromSlots([]string{"9-0"})})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"timeRange":"09:00 - 09:12"`)

	var td model.Todo
	require.NoError(t, json.Unmarshal([]byte(`{"id":"4","text":"d","hour":{"timeRange":"10:00 - 10:24","slotKeys":["10-0","10-1"]}}`), &td))
	assert.Equal(t, model.TimeRange, td.Schedule.Kind)
	assert.Equal(t, []string{"10-0", "10-1"}, td.Schedule.SlotKeys)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"5","text":"e","hour":7}`), &td))
	assert.Equal(t, model.HourOnly, td.Schedule.Kind)
	assert.Equal(t, 7, td.Schedule.Hour)
}
