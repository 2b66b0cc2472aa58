package localstore

import "github.com/daybook-app/daybook/internal/model"

// Typed accessors for the non-journal record families. Each reads the
// whole record and each save is a single-key replacement (last write
// wins); there is no cross-key transaction.

func (s *Store) Todos(dateKey string) ([]model.Todo, error) {
	var todos []model.Todo
	if _, err := s.getJSON(TodosKey(dateKey), &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (s *Store) SaveTodos(dateKey string, todos []model.Todo) error {
	return s.setJSON(TodosKey(dateKey), todos)
}

func (s *Store) Tags() ([]model.Tag, error) {
	var tags []model.Tag
	if _, err := s.getJSON(UserTagsKey, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *Store) SaveTags(tags []model.Tag) error {
	return s.setJSON(UserTagsKey, tags)
}

func (s *Store) Habits() ([]model.Habit, error) {
	var habits []model.Habit
	if _, err := s.getJSON(HabitsKey, &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

func (s *Store) SaveHabits(habits []model.Habit) error {
	return s.setJSON(HabitsKey, habits)
}

// DayGrid returns the specific-day time-grid (slot key -> tag id).
func (s *Store) DayGrid(dateKey string) (map[string]string, error) {
	grid := map[string]string{}
	if _, err := s.getJSON(DayTagsKey(dateKey), &grid); err != nil {
		return nil, err
	}
	return grid, nil
}

func (s *Store) SaveDayGrid(dateKey string, grid map[string]string) error {
	return s.setJSON(DayTagsKey(dateKey), grid)
}

// TemplateGrid returns the recurring ("typical day") time-grid.
func (s *Store) TemplateGrid() (map[string]string, error) {
	grid := map[string]string{}
	if _, err := s.getJSON(TemplateTagsKey, &grid); err != nil {
		return nil, err
	}
	return grid, nil
}

func (s *Store) SaveTemplateGrid(grid map[string]string) error {
	return s.setJSON(TemplateTagsKey, grid)
}

func (s *Store) Logs() ([]model.LogEntry, error) {
	var logs []model.LogEntry
	if _, err := s.getJSON(DailyLogsKey, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *Store) SaveLogs(logs []model.LogEntry) error {
	return s.setJSON(DailyLogsKey, logs)
}

func (s *Store) Variables() ([]model.LogVariable, error) {
	var vars []model.LogVariable
	if _, err := s.getJSON(VariablesKey, &vars); err != nil {
		return nil, err
	}
	return vars, nil
}

func (s *Store) SaveVariables(vars []model.LogVariable) error {
	return s.setJSON(VariablesKey, vars)
}

// Values returns the per-day variable values (variable id -> raw value).
func (s *Store) Values(dateKey string) (map[string]string, error) {
	vals := map[string]string{}
	if _, err := s.getJSON(ValuesKey(dateKey), &vals); err != nil {
		return nil, err
	}
	return vals, nil
}

func (s *Store) SaveValues(dateKey string, vals map[string]string) error {
	return s.setJSON(ValuesKey(dateKey), vals)
}
