package model

import (
	"encoding/json"
	"fmt"
)

// ScheduleKind discriminates the todo scheduling variants.
type ScheduleKind int

const (
	Unscheduled ScheduleKind = iota
	HourOnly
	TimeRange
)

// Schedule is the scheduling of a Todo: none, a plain hour of day, or a
// slot-level time range. On the wire it keeps the historical "hour" shape:
// null, an integer, or {"timeRange": "...", "slotKeys": [...]}.
type Schedule struct {
	Kind     ScheduleKind `json:"-"`
	Hour     int          `json:"-"`
	Label    string       `json:"-"`
	SlotKeys []string     `json:"-"`
}

// ScheduleAt returns an hour-of-day schedule.
func ScheduleAt(hour int) Schedule { return Schedule{Kind: HourOnly, Hour: hour} }

// ScheduleRange returns a slot-range schedule.
func ScheduleRange(label string, slotKeys []string) Schedule {
	return Schedule{Kind: TimeRange, Label: label, SlotKeys: slotKeys}
}

type scheduleRangeJSON struct {
	TimeRange string   `json:"timeRange"`
	SlotKeys  []string `json:"slotKeys,omitempty"`
}

func (s Schedule) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case HourOnly:
		return json.Marshal(s.Hour)
	case TimeRange:
		return json.Marshal(scheduleRangeJSON{TimeRange: s.Label, SlotKeys: s.SlotKeys})
	default:
		return []byte("null"), nil
	}
}

func (s *Schedule) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*s = Schedule{}
		return nil
	case float64:
		*s = ScheduleAt(int(v))
		return nil
	case map[string]interface{}:
		var r scheduleRangeJSON
		if err := json.Unmarshal(data, &r); err != nil {
			return err
		}
		*s = ScheduleRange(r.TimeRange, r.SlotKeys)
		return nil
	default:
		return fmt.Errorf("schedule: unsupported hour value %T", raw)
	}
}
