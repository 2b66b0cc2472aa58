// Package todo implements the per-day task list with one level of
// subtasks and optional hour or slot-range scheduling.
package todo

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/daybook-app/daybook/internal/localstore"
	"github.com/daybook-app/daybook/internal/model"
	"github.com/daybook-app/daybook/internal/timegrid"
)

// List owns the todo records of the local store.
type List struct {
	store *localstore.Store
}

func NewList(s *localstore.Store) *List { return &List{store: s} }

// Todos returns the list for a date in insertion order.
func (l *List) Todos(dateKey string) ([]model.Todo, error) {
	return l.store.Todos(dateKey)
}

// Add appends a task. Empty text is rejected.
func (l *List) Add(dateKey, text string, sched model.Schedule) (model.Todo, error) {
	if text == "" {
		return model.Todo{}, fmt.Errorf("todo text: %w", model.ErrValidation)
	}
	todos, err := l.store.Todos(dateKey)
	if err != nil {
		return model.Todo{}, err
	}
	td := model.Todo{ID: uuid.New().String(), Text: text, Schedule: sched}
	if err := l.store.SaveTodos(dateKey, append(todos, td)); err != nil {
		return model.Todo{}, err
	}
	return td, nil
}

// Toggle flips a task's completed flag.
func (l *List) Toggle(dateKey, id string) (model.Todo, error) {
	var out model.Todo
	err := l.mutate(dateKey, id, func(td *model.Todo) error {
		td.Completed = !td.Completed
		out = *td
		return nil
	})
	return out, err
}

// Delete removes a task and its subtasks. Unknown ids are a no-op.
func (l *List) Delete(dateKey, id string) error {
	todos, err := l.store.Todos(dateKey)
	if err != nil {
		return err
	}
	filtered := todos[:0]
	for _, td := range todos {
		if td.ID != id {
			filtered = append(filtered, td)
		}
	}
	return l.store.SaveTodos(dateKey, filtered)
}

// AddSubTask appends a subtask to a task. Empty text is rejected; subtasks
// never nest further.
func (l *List) AddSubTask(dateKey, parentID, text string) (model.SubTask, error) {
	if text == "" {
		return model.SubTask{}, fmt.Errorf("subtask text: %w", model.ErrValidation)
	}
	sub := model.SubTask{ID: uuid.New().String(), Text: text}
	err := l.mutate(dateKey, parentID, func(td *model.Todo) error {
		td.SubTasks = append(td.SubTasks, sub)
		return nil
	})
	if err != nil {
		return model.SubTask{}, err
	}
	return sub, nil
}

// ToggleSubTask flips a subtask's completed flag.
func (l *List) ToggleSubTask(dateKey, parentID, subID string) error {
	return l.mutate(dateKey, parentID, func(td *model.Todo) error {
		for i := range td.SubTasks {
			if td.SubTasks[i].ID == subID {
				td.SubTasks[i].Completed = !td.SubTasks[i].Completed
				return nil
			}
		}
		return fmt.Errorf("subtask %s: %w", subID, model.ErrNotFound)
	})
}

// DeleteSubTask removes a subtask from its parent.
func (l *List) DeleteSubTask(dateKey, parentID, subID string) error {
	return l.mutate(dateKey, parentID, func(td *model.Todo) error {
		filtered := td.SubTasks[:0]
		for _, st := range td.SubTasks {
			if st.ID != subID {
				filtered = append(filtered, st)
			}
		}
		td.SubTasks = filtered
		return nil
	})
}

func (l *List) mutate(dateKey, id string, fn func(*model.Todo) error) error {
	todos, err := l.store.Todos(dateKey)
	if err != nil {
		return err
	}
	for i := range todos {
		if todos[i].ID != id {
			continue
		}
		if err := fn(&todos[i]); err != nil {
			return err
		}
		return l.store.SaveTodos(dateKey, todos)
	}
	return fmt.Errorf("todo %s: %w", id, model.ErrNotFound)
}

// ForHour filters tasks scheduled to a plain hour; the hour cell's count
// badge is the length of the result.
func ForHour(todos []model.Todo, hour int) []model.Todo {
	var out []model.Todo
	for _, td := range todos {
		if td.Schedule.Kind == model.HourOnly && td.Schedule.Hour == hour {
			out = append(out, td)
		}
	}
	return out
}

// RangeFromSlots builds a time-range schedule from a set of selected slot
// keys, contiguous or not: the label runs from the earliest slot's start
// to the latest slot's end. Invalid keys are dropped; an empty selection
// yields an unscheduled value.
func RangeFromSlots(slotKeys []string) model.Schedule {
	type slot struct {
		key   string
		start int
	}
	var slots []slot
	for _, key := range slotKeys {
		if hour, s, ok := timegrid.ParseSlotKey(key); ok {
			slots = append(slots, slot{key: key, start: timegrid.SlotStartMinutes(hour, s)})
		}
	}
	if len(slots) == 0 {
		return model.Schedule{}
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].start < slots[j].start })

	keys := make([]string, len(slots))
	for i, s := range slots {
		keys[i] = s.key
	}
	start := slots[0].start
	end := slots[len(slots)-1].start + timegrid.SlotMinutes
	label := fmt.Sprintf("%02d:%02d - %02d:%02d", start/60, start%60, end/60, end%60)
	return model.ScheduleRange(label, keys)
}
