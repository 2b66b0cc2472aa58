package timegrid

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollerTickEmits(t *testing.T) {
	grid := map[string]string{SlotKey(2, 0): "sleep"}
	source := func() (map[string]string, []TagLookup, error) {
		return grid, sleepTags(), nil
	}

	var got []Notification
	p := NewPoller(NewScanner(), source, func(n Notification) { got = append(got, n) }, zerolog.Nop())
	p.NowMinutes = func() int { return 100 }

	p.tick()
	require.Len(t, got, 1)
	assert.Equal(t, "Sleep starts in 20 minutes", got[0].Message)

	// Second tick in the same window is deduplicated.
	p.tick()
	assert.Len(t, got, 1)
}
