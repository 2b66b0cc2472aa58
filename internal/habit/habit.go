// Package habit implements the linear-progression habit tracker: progress
// is modeled as y = m*x + b where x counts recorded day-steps, and the
// forecast is the calendar date the line crosses the goal.
package habit

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/daybook-app/daybook/internal/localstore"
	"github.com/daybook-app/daybook/internal/model"
)

// Tracker owns the habit list in the local store.
type Tracker struct {
	store *localstore.Store
}

func NewTracker(s *localstore.Store) *Tracker { return &Tracker{store: s} }

// List returns all habits in insertion order.
func (t *Tracker) List() ([]model.Habit, error) { return t.store.Habits() }

// Create adds a habit starting at x = 0. An empty name is rejected.
func (t *Tracker) Create(name string, m, b, goal float64) (model.Habit, error) {
	if name == "" {
		return model.Habit{}, fmt.Errorf("habit name: %w", model.ErrValidation)
	}
	h := model.Habit{ID: uuid.New().String(), Name: name, M: m, B: b, Goal: goal}
	habits, err := t.store.Habits()
	if err != nil {
		return model.Habit{}, err
	}
	habits = append(habits, h)
	if err := t.store.SaveHabits(habits); err != nil {
		return model.Habit{}, err
	}
	return h, nil
}

// RecordStep increments a habit's step counter. Once the goal is met the
// habit is terminal: further steps are a no-op even if a caller skips the
// UI-level guard. x never decreases.
func (t *Tracker) RecordStep(id string) (model.Habit, error) {
	habits, err := t.store.Habits()
	if err != nil {
		return model.Habit{}, err
	}
	for i := range habits {
		if habits[i].ID != id {
			continue
		}
		if habits[i].GoalMet() {
			return habits[i], nil
		}
		habits[i].X++
		if err := t.store.SaveHabits(habits); err != nil {
			return model.Habit{}, err
		}
		return habits[i], nil
	}
	return model.Habit{}, fmt.Errorf("habit %s: %w", id, model.ErrNotFound)
}

// Delete removes a habit. Unknown ids are a no-op.
func (t *Tracker) Delete(id string) error {
	habits, err := t.store.Habits()
	if err != nil {
		return err
	}
	filtered := habits[:0]
	for _, h := range habits {
		if h.ID != id {
			filtered = append(filtered, h)
		}
	}
	return t.store.SaveHabits(filtered)
}

// Project derives the current value and completion forecast for a habit as
// of today. A non-positive velocity has no defined crossing point, so the
// forecast is reported unavailable rather than propagating an infinity.
func Project(h model.Habit, today time.Time) (model.HabitProjection, error) {
	if h.M <= 0 {
		return model.HabitProjection{}, fmt.Errorf("habit %s (m=%v): %w", h.Name, h.M, model.ErrForecastUnavailable)
	}
	total := int(math.Ceil((h.Goal - h.B) / h.M))
	daysLeft := total - h.X
	if daysLeft < 0 {
		daysLeft = 0
	}
	return model.HabitProjection{
		CurrentY:        h.M*float64(h.X) + h.B,
		TotalDaysNeeded: total,
		DaysLeft:        daysLeft,
		FinishDate:      today.AddDate(0, 0, daysLeft),
	}, nil
}
