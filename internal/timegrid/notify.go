package timegrid

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/daybook-app/daybook/internal/datekey"
)

// DefaultLeadTimes are the minutes-before-start marks at which an upcoming
// tagged block triggers a notification.
var DefaultLeadTimes = []int{20, 5}

// Notification announces that a notify-enabled tag's block is about to
// start.
type Notification struct {
	TagID   string
	TagName string
	Hour    int
	Slot    int
	Minutes int
	Message string
}

// Scanner finds upcoming block starts for notify-enabled tags. A block
// start is a slot whose predecessor (previous slot of the same hour, or
// slot 4 of the previous hour) does not carry the same tag.
//
// Firing uses a <=-lead-time window with a per-(slot, lead) fired set
// rather than exact equality, so a poll tick that lands past the exact
// mark still fires once instead of skipping the notification.
type Scanner struct {
	leadTimes []int
	fired     map[string]struct{}
}

func NewScanner(leadTimes ...int) *Scanner {
	if len(leadTimes) == 0 {
		leadTimes = DefaultLeadTimes
	}
	return &Scanner{leadTimes: leadTimes, fired: make(map[string]struct{})}
}

// Reset clears the fired set; call it when the active day or grid changes.
func (s *Scanner) Reset() { s.fired = make(map[string]struct{}) }

// Scan evaluates the grid at nowMinutes (minute of day) and returns the
// notifications due, at most one per (block start, lead time).
func (s *Scanner) Scan(grid map[string]string, tags []TagLookup, nowMinutes int) []Notification {
	notify := make(map[string]string, len(tags)) // tag id -> name
	for _, t := range tags {
		if t.Notify {
			notify[t.ID] = t.Name
		}
	}
	if len(notify) == 0 {
		return nil
	}

	var out []Notification
	for key, tagID := range grid {
		name, wants := notify[tagID]
		if !wants {
			continue
		}
		hour, slot, ok := ParseSlotKey(key)
		if !ok || !isBlockStart(grid, hour, slot, tagID) {
			continue
		}
		diff := SlotStartMinutes(hour, slot) - nowMinutes
		if diff <= 0 {
			continue
		}
		// A late first scan can land inside several lead windows at
		// once; consume every covered lead but emit a single
		// notification for the block.
		due := false
		for _, lead := range s.leadTimes {
			if diff > lead {
				continue
			}
			dedup := fmt.Sprintf("%s@%d", key, lead)
			if _, done := s.fired[dedup]; done {
				continue
			}
			s.fired[dedup] = struct{}{}
			due = true
		}
		if due {
			out = append(out, Notification{
				TagID:   tagID,
				TagName: name,
				Hour:    hour,
				Slot:    slot,
				Minutes: diff,
				Message: fmt.Sprintf("%s starts in %d minutes", name, diff),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Hour != out[j].Hour {
			return out[i].Hour < out[j].Hour
		}
		return out[i].Slot < out[j].Slot
	})
	return out
}

// TagLookup is the subset of a tag the scanner needs.
type TagLookup struct {
	ID     string
	Name   string
	Notify bool
}

func isBlockStart(grid map[string]string, hour, slot int, tagID string) bool {
	ph, ps := hour, slot-1
	if ps < 0 {
		ph, ps = hour-1, SlotsPerHour-1
	}
	if ph < 0 {
		return true
	}
	return grid[SlotKey(ph, ps)] != tagID
}

// GridSource supplies the active grid and tag definitions for a poll tick.
type GridSource func() (map[string]string, []TagLookup, error)

// Poller re-evaluates the scanner on a fixed interval. The interval should
// stay at or below one minute so no lead-time window is skipped entirely.
type Poller struct {
	scanner *Scanner
	source  GridSource
	emit    func(Notification)
	log     zerolog.Logger
	lastDay string

	// NowMinutes returns the current minute of day; overridable in tests.
	NowMinutes func() int
	// Day identifies the day the grid belongs to; when it changes between
	// ticks the scanner's fired set is cleared so the new day's blocks can
	// notify again. Overridable in tests.
	Day func() string
}

func NewPoller(scanner *Scanner, source GridSource, emit func(Notification), log zerolog.Logger) *Poller {
	return &Poller{
		scanner: scanner,
		source:  source,
		emit:    emit,
		log:     log,
		NowMinutes: func() int {
			now := time.Now()
			return now.Hour()*60 + now.Minute()
		},
		Day: func() string {
			return datekey.FromTime(time.Now())
		},
	}
}

// Start polls until ctx is cancelled.
func (p *Poller) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick()
		}
	}
}

func (p *Poller) tick() {
	if day := p.Day(); day != p.lastDay {
		if p.lastDay != "" {
			p.scanner.Reset()
		}
		p.lastDay = day
	}
	grid, tags, err := p.source()
	if err != nil {
		p.log.Error().Err(err).Msg("notification scan: grid read failed")
		return
	}
	for _, n := range p.scanner.Scan(grid, tags, p.NowMinutes()) {
		p.log.Info().Str("tag", n.TagName).Int("minutes", n.Minutes).Msg("block starting soon")
		p.emit(n)
	}
}
