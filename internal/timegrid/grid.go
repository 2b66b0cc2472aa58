// Package timegrid implements the two-level time-tagging grid: 24 hours
// split into five 12-minute slots, each slot carrying at most one tag.
// Two independent grids exist, a date-independent template ("typical day")
// and a specific-day override; only one is active at a time and they never
// merge.
package timegrid

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/daybook-app/daybook/internal/localstore"
	"github.com/daybook-app/daybook/internal/model"
)

const (
	// SlotsPerHour subdivides an hour into 12-minute slots.
	SlotsPerHour = 5
	// SlotMinutes is the length of one slot.
	SlotMinutes = 60 / SlotsPerHour
)

// SlotKey formats the grid address of (hour, slot), e.g. "9-2".
func SlotKey(hour, slot int) string { return fmt.Sprintf("%d-%d", hour, slot) }

// ParseSlotKey splits a slot key back into (hour, slot). Malformed or
// out-of-range keys report ok = false.
func ParseSlotKey(key string) (hour, slot int, ok bool) {
	if _, err := fmt.Sscanf(key, "%d-%d", &hour, &slot); err != nil {
		return 0, 0, false
	}
	if hour < 0 || hour > 23 || slot < 0 || slot >= SlotsPerHour {
		return 0, 0, false
	}
	return hour, slot, true
}

// SlotStartMinutes returns the minute of day a slot begins at.
func SlotStartMinutes(hour, slot int) int { return hour*60 + slot*SlotMinutes }

// Toggle applies click-to-paint semantics to a grid in place: painting an
// empty or differently-tagged slot sets the tag, painting a slot that
// already carries the same tag clears it. An empty tag id clears
// unconditionally; a cleared slot is represented by key absence, never by
// an empty value.
func Toggle(grid map[string]string, hour, slot int, tagID string) {
	key := SlotKey(hour, slot)
	if tagID == "" || grid[key] == tagID {
		delete(grid, key)
		return
	}
	grid[key] = tagID
}

// Board owns the tag definitions and both grid layers in the local store.
type Board struct {
	store *localstore.Store
}

func NewBoard(s *localstore.Store) *Board { return &Board{store: s} }

// Tags returns the user-global tag definitions.
func (b *Board) Tags() ([]model.Tag, error) { return b.store.Tags() }

// CreateTag defines a new tag. An empty name is rejected.
func (b *Board) CreateTag(name, color string, notify bool) (model.Tag, error) {
	if name == "" {
		return model.Tag{}, fmt.Errorf("tag name: %w", model.ErrValidation)
	}
	tag := model.Tag{ID: uuid.New().String(), Name: name, Color: color, Notify: notify}
	tags, err := b.store.Tags()
	if err != nil {
		return model.Tag{}, err
	}
	if err := b.store.SaveTags(append(tags, tag)); err != nil {
		return model.Tag{}, err
	}
	return tag, nil
}

// DeleteTag removes a tag definition. Grid entries referencing it are left
// in place and simply stop resolving; lookups treat them as untagged.
func (b *Board) DeleteTag(id string) error {
	tags, err := b.store.Tags()
	if err != nil {
		return err
	}
	filtered := tags[:0]
	for _, t := range tags {
		if t.ID != id {
			filtered = append(filtered, t)
		}
	}
	return b.store.SaveTags(filtered)
}

// ToggleNotify flips a tag's notification flag.
func (b *Board) ToggleNotify(id string) (model.Tag, error) {
	tags, err := b.store.Tags()
	if err != nil {
		return model.Tag{}, err
	}
	for i := range tags {
		if tags[i].ID == id {
			tags[i].Notify = !tags[i].Notify
			if err := b.store.SaveTags(tags); err != nil {
				return model.Tag{}, err
			}
			return tags[i], nil
		}
	}
	return model.Tag{}, fmt.Errorf("tag %s: %w", id, model.ErrNotFound)
}

// ResolveTag looks a tag id up in a definition list. Unresolved ids (a
// deleted tag still referenced by a grid) report ok = false.
func ResolveTag(tags []model.Tag, id string) (model.Tag, bool) {
	for _, t := range tags {
		if t.ID == id {
			return t, true
		}
	}
	return model.Tag{}, false
}

// PaintDay toggles a tag on the specific-day grid and returns the updated
// grid.
func (b *Board) PaintDay(dateKey string, hour, slot int, tagID string) (map[string]string, error) {
	grid, err := b.store.DayGrid(dateKey)
	if err != nil {
		return nil, err
	}
	Toggle(grid, hour, slot, tagID)
	if err := b.store.SaveDayGrid(dateKey, grid); err != nil {
		return nil, err
	}
	return grid, nil
}

// PaintTemplate toggles a tag on the recurring template grid and returns
// the updated grid.
func (b *Board) PaintTemplate(hour, slot int, tagID string) (map[string]string, error) {
	grid, err := b.store.TemplateGrid()
	if err != nil {
		return nil, err
	}
	Toggle(grid, hour, slot, tagID)
	if err := b.store.SaveTemplateGrid(grid); err != nil {
		return nil, err
	}
	return grid, nil
}

// DayGrid returns the specific-day grid for a date.
func (b *Board) DayGrid(dateKey string) (map[string]string, error) {
	return b.store.DayGrid(dateKey)
}

// TemplateGrid returns the recurring template grid.
func (b *Board) TemplateGrid() (map[string]string, error) {
	return b.store.TemplateGrid()
}
