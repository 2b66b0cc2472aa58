package timegrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook/internal/localstore"
	"github.com/daybook-app/daybook/internal/model"
)

func newBoard() *Board {
	return NewBoard(localstore.New(localstore.NewMemoryKV()))
}

func TestSlotKeyRoundTrip(t *testing.T) {
	assert.Equal(t, "9-2", SlotKey(9, 2))

	h, s, ok := ParseSlotKey("9-2")
	require.True(t, ok)
	assert.Equal(t, 9, h)
	assert.Equal(t, 2, s)

	_, _, ok = ParseSlotKey("junk")
	assert.False(t, ok)
	_, _, ok = ParseSlotKey("24-0")
	assert.False(t, ok)
	_, _, ok = ParseSlotKey("3-5")
	assert.False(t, ok)
}

func TestSlotStartMinutes(t *testing.T) {
	assert.Equal(t, 0, SlotStartMinutes(0, 0))
	assert.Equal(t, 24, SlotStartMinutes(0, 2))
	assert.Equal(t, 588, SlotStartMinutes(9, 4))
}

func TestToggleSetAndClear(t *testing.T) {
	grid := map[string]string{}

	Toggle(grid, 5, 2, "t1")
	assert.Equal(t, "t1", grid["5-2"])

	// Painting the same tag again clears the slot entirely.
	Toggle(grid, 5, 2, "t1")
	_, present := grid["5-2"]
	assert.False(t, present)

	// Painting a different tag replaces.
	Toggle(grid, 5, 2, "t1")
	Toggle(grid, 5, 2, "t2")
	assert.Equal(t, "t2", grid["5-2"])

	// Empty tag id clears; no null-valued entry survives.
	Toggle(grid, 5, 2, "")
	assert.Empty(t, grid)
}

func TestPaintDayAndTemplateAreIndependent(t *testing.T) {
	b := newBoard()

	day, err := b.PaintDay("2024-01-01", 9, 0, "t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", day["9-0"])

	tpl, err := b.TemplateGrid()
	require.NoError(t, err)
	assert.Empty(t, tpl)

	tpl, err = b.PaintTemplate(9, 0, "t2")
	require.NoError(t, err)
	assert.Equal(t, "t2", tpl["9-0"])

	day, err = b.DayGrid("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "t1", day["9-0"])
}

func TestTagCRUD(t *testing.T) {
	b := newBoard()

	_, err := b.CreateTag("", "#000000", false)
	assert.ErrorIs(t, err, model.ErrValidation)

	tag, err := b.CreateTag("Sleep", "#000000", false)
	require.NoError(t, err)

	flipped, err := b.ToggleNotify(tag.ID)
	require.NoError(t, err)
	assert.True(t, flipped.Notify)

	_, err = b.ToggleNotify("missing")
	assert.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, b.DeleteTag(tag.ID))
	tags, err := b.Tags()
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestDeletedTagOrphansGridEntries(t *testing.T) {
	b := newBoard()
	tag, err := b.CreateTag("Focus", "#FF9500", false)
	require.NoError(t, err)
	_, err = b.PaintDay("2024-01-01", 10, 0, tag.ID)
	require.NoError(t, err)

	require.NoError(t, b.DeleteTag(tag.ID))

	grid, err := b.DayGrid("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, tag.ID, grid["10-0"], "grid entry survives tag deletion")

	tags, err := b.Tags()
	require.NoError(t, err)
	_, ok := ResolveTag(tags, grid["10-0"])
	assert.False(t, ok, "orphaned id resolves to no tag, not an error")
}
