package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook/internal/model"
)

func TestMergeHabitHistoriesKeepsServerHistory(t *testing.T) {
	local := []model.Habit{
		{ID: "h1", Name: "Read", M: 1, Goal: 30, X: 12},
		{ID: "h2", Name: "Run", M: 2, Goal: 40},
	}
	remote := []model.ConfigHabit{
		{Habit: model.Habit{ID: "h1", Name: "Read", M: 1, Goal: 30, X: 10}, History: []string{"2024-01-10", "2024-01-11"}},
		{Habit: model.Habit{ID: "gone"}, History: []string{"2024-01-01"}},
	}

	merged := mergeHabitHistories(local, remote)
	require.Len(t, merged, 2)

	// Pushing a day must not wipe the histories already on the server.
	assert.Equal(t, []string{"2024-01-10", "2024-01-11"}, merged[0].History)
	assert.Equal(t, 12, merged[0].X, "local definition wins")

	// A habit the server has never seen simply has no history yet.
	assert.Equal(t, "h2", merged[1].ID)
	assert.Empty(t, merged[1].History)

	// Habits deleted locally drop out of the pushed document.
	for _, h := range merged {
		assert.NotEqual(t, "gone", h.ID)
	}
}

func TestMergeHabitHistoriesEmptyInputs(t *testing.T) {
	assert.Empty(t, mergeHabitHistories(nil, nil))

	merged := mergeHabitHistories([]model.Habit{{ID: "h1"}}, nil)
	require.Len(t, merged, 1)
	assert.Empty(t, merged[0].History)
}
