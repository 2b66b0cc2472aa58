package timegrid

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sleepTags() []TagLookup {
	return []TagLookup{{ID: "sleep", Name: "Sleep", Notify: true}}
}

// Hours 0-1 fully painted: one contiguous block starting at minute 0.
func sleepBlock() map[string]string {
	grid := map[string]string{}
	for hour := 0; hour < 2; hour++ {
		for slot := 0; slot < SlotsPerHour; slot++ {
			grid[SlotKey(hour, slot)] = "sleep"
		}
	}
	return grid
}

func TestScanIdentifiesTrueBlockStartOnly(t *testing.T) {
	s := NewScanner()
	// 100 minutes into the day the block start (minute 0) is in the past;
	// the interior slots must not be treated as starts.
	got := s.Scan(sleepBlock(), sleepTags(), 120-20)
	assert.Empty(t, got)
}

func TestScanFiresAtLeadTimes(t *testing.T) {
	grid := map[string]string{SlotKey(2, 0): "sleep"} // block starts at minute 120

	s := NewScanner()
	got := s.Scan(grid, sleepTags(), 100)
	require.Len(t, got, 1)
	assert.Equal(t, "Sleep starts in 20 minutes", got[0].Message)
	assert.Equal(t, 2, got[0].Hour)
	assert.Equal(t, 0, got[0].Slot)

	// Same window: already fired, stays quiet.
	assert.Empty(t, s.Scan(grid, sleepTags(), 101))

	// The 5-minute window fires independently.
	got = s.Scan(grid, sleepTags(), 115)
	require.Len(t, got, 1)
	assert.Equal(t, "Sleep starts in 5 minutes", got[0].Message)

	// Nothing once the block has started.
	assert.Empty(t, s.Scan(grid, sleepTags(), 120))
}

func TestScanFiresOnMissedExactTick(t *testing.T) {
	grid := map[string]string{SlotKey(2, 0): "sleep"}

	// First poll lands inside the 20-minute window but past the exact
	// mark; it must still fire once.
	s := NewScanner()
	got := s.Scan(grid, sleepTags(), 103)
	require.Len(t, got, 1)
	assert.Equal(t, 17, got[0].Minutes)
}

func TestScanLateFirstPollFiresOnce(t *testing.T) {
	grid := map[string]string{SlotKey(2, 0): "sleep"}

	// A first poll landing inside both lead windows at once consumes
	// both but produces a single notification, not one per window.
	s := NewScanner()
	got := s.Scan(grid, sleepTags(), 117)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Minutes)

	assert.Empty(t, s.Scan(grid, sleepTags(), 118))
}

func TestScanIgnoresNonNotifyTags(t *testing.T) {
	grid := map[string]string{SlotKey(2, 0): "sleep"}
	s := NewScanner()
	assert.Empty(t, s.Scan(grid, []TagLookup{{ID: "sleep", Name: "Sleep", Notify: false}}, 100))
}

func TestScanInteriorSlotNotABlockStart(t *testing.T) {
	grid := sleepBlock()
	s := NewScanner()
	// 20 minutes before hour 1 (minute 60): slot 1-0 is tagged but its
	// predecessor 0-4 carries the same tag, so it is not a block start.
	assert.Empty(t, s.Scan(grid, sleepTags(), 40))
}

func TestScanHourBoundaryPredecessor(t *testing.T) {
	// Block genuinely starting at 1-0 (0-4 untagged) must fire.
	grid := map[string]string{SlotKey(1, 0): "sleep", SlotKey(1, 1): "sleep"}
	s := NewScanner()
	got := s.Scan(grid, sleepTags(), 40)
	require.Len(t, got, 1)
	assert.Equal(t, 20, got[0].Minutes)
}

func TestScannerReset(t *testing.T) {
	grid := map[string]string{SlotKey(2, 0): "sleep"}
	s := NewScanner()
	require.Len(t, s.Scan(grid, sleepTags(), 100), 1)
	s.Reset()
	require.Len(t, s.Scan(grid, sleepTags(), 100), 1)
}

func TestPollerClearsFiredSetOnDayChange(t *testing.T) {
	grid := map[string]string{SlotKey(2, 0): "sleep"}
	source := func() (map[string]string, []TagLookup, error) {
		return grid, sleepTags(), nil
	}

	var got []Notification
	p := NewPoller(NewScanner(), source, func(n Notification) { got = append(got, n) }, zerolog.Nop())
	p.NowMinutes = func() int { return 100 }

	day := "2024-01-01"
	p.Day = func() string { return day }

	p.tick()
	require.Len(t, got, 1)
	p.tick()
	require.Len(t, got, 1, "same day, same window stays quiet")

	// A watch running past midnight sees the new day's grid at the same
	// wall-clock minute and must notify again.
	day = "2024-01-02"
	p.tick()
	require.Len(t, got, 2)
}
