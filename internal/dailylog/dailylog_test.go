package dailylog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook/internal/localstore"
	"github.com/daybook-app/daybook/internal/model"
)

func newLog() *Log {
	return New(localstore.New(localstore.NewMemoryKV()))
}

func TestDefineVariable(t *testing.T) {
	l := newLog()

	_, err := l.DefineVariable("", model.VariableBoolean)
	assert.ErrorIs(t, err, model.ErrValidation)
	_, err = l.DefineVariable("Mood", "enum")
	assert.ErrorIs(t, err, model.ErrValidation)

	v, err := l.DefineVariable("Slept well", model.VariableBoolean)
	require.NoError(t, err)
	vars, err := l.Variables()
	require.NoError(t, err)
	require.Len(t, vars, 1)
	assert.Equal(t, v, vars[0])
}

func TestSetValueTypeChecks(t *testing.T) {
	l := newLog()
	boolVar, err := l.DefineVariable("Slept well", model.VariableBoolean)
	require.NoError(t, err)
	scaleVar, err := l.DefineVariable("Energy", model.VariableScale)
	require.NoError(t, err)
	strVar, err := l.DefineVariable("Note", model.VariableString)
	require.NoError(t, err)

	assert.ErrorIs(t, l.SetValue("2024-01-01", boolVar, "yes"), model.ErrValidation)
	assert.ErrorIs(t, l.SetValue("2024-01-01", scaleVar, "0"), model.ErrValidation)
	assert.ErrorIs(t, l.SetValue("2024-01-01", scaleVar, "11"), model.ErrValidation)

	require.NoError(t, l.SetValue("2024-01-01", boolVar, "true"))
	require.NoError(t, l.SetValue("2024-01-01", scaleVar, "7"))
	require.NoError(t, l.SetValue("2024-01-01", strVar, "long day"))
	// Overwrite wins.
	require.NoError(t, l.SetValue("2024-01-01", scaleVar, "4"))

	vals, err := l.Values("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "true", vals[boolVar.ID])
	assert.Equal(t, "4", vals[scaleVar.ID])
	assert.Equal(t, "long day", vals[strVar.ID])
}

func TestDeleteVariableLeavesValues(t *testing.T) {
	l := newLog()
	v, err := l.DefineVariable("Energy", model.VariableScale)
	require.NoError(t, err)
	require.NoError(t, l.SetValue("2024-01-01", v, "5"))

	require.NoError(t, l.DeleteVariable(v.ID))
	vars, err := l.Variables()
	require.NoError(t, err)
	assert.Empty(t, vars)

	// Orphaned value stays; it is only ever read via the definition list.
	vals, err := l.Values("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "5", vals[v.ID])
}

func TestFeed(t *testing.T) {
	l := newLog()

	_, err := l.AddEntry("t0", " ", "details", model.SentimentNeutral)
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = l.AddEntry("t1", "first", "one", model.SentimentPositive)
	require.NoError(t, err)
	_, err = l.AddEntry("t2", "second", "two", model.SentimentNegative)
	require.NoError(t, err)
	_, err = l.AddEntry("t3", "third", "three", model.SentimentNeutral)
	require.NoError(t, err)

	entries, err := l.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	// Newest first, headings upper-cased.
	assert.Equal(t, "THIRD", entries[0].Heading)
	assert.Equal(t, "FIRST", entries[2].Heading)

	st, err := l.FeedStats()
	require.NoError(t, err)
	assert.Equal(t, Stats{Positive: 1, Negative: 1, Neutral: 1}, st)

	require.NoError(t, l.ClearEntries())
	entries, err = l.Entries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}
