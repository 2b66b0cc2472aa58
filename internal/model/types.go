package model

import "time"

// User represents an account in the system. The password hash never leaves
// the server.
type User struct {
	UserID         string     `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"`
	CreationTime   time.Time  `json:"creationTime"`
	LastActiveTime *time.Time `json:"lastActiveTime,omitempty"`
}

// Journal is a server-side journal document scoped to a user and a date.
type Journal struct {
	JournalID string    `json:"id"`
	UserID    string    `json:"userId"`
	Date      string    `json:"date"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// JournalMeta is the per-day journal list entry kept in the local store.
// Body text is stored separately under the journal id. Timestamps are unix
// milliseconds to stay byte-compatible with previously written records.
type JournalMeta struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// SubTask is owned by exactly one Todo; no further nesting.
type SubTask struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Todo is a task on a day's list, optionally scheduled to an hour or a
// slot-level time range.
type Todo struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	Schedule  Schedule  `json:"hour"`
	SubTasks  []SubTask `json:"subTasks,omitempty"`
}

// Tag is a user-global time-grid label.
type Tag struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	Notify bool   `json:"notify,omitempty"`
}

// Habit is a linear-progression tracker: progress after x recorded steps is
// y = m*x + b, aiming for goal.
type Habit struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	M    float64 `json:"m"`
	B    float64 `json:"b"`
	Goal float64 `json:"goal"`
	X    int     `json:"x"`
}

// GoalMet reports whether the habit has reached its goal value.
func (h Habit) GoalMet() bool { return h.M*float64(h.X)+h.B >= h.Goal }

// HabitProjection is the derived forecast for a habit.
type HabitProjection struct {
	CurrentY        float64   `json:"currentY"`
	TotalDaysNeeded int       `json:"totalDaysNeeded"`
	DaysLeft        int       `json:"daysLeft"`
	FinishDate      time.Time `json:"finishDate"`
}

// VariableType enumerates daily-log variable kinds.
type VariableType string

const (
	VariableBoolean VariableType = "boolean"
	VariableScale   VariableType = "scale"
	VariableString  VariableType = "string"
)

// LogVariable is a user-global daily-log variable definition.
type LogVariable struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Type VariableType `json:"type"`
}

// Sentiment classifies a system-log entry.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// LogEntry is one record in the free-form system-log feed.
type LogEntry struct {
	ID          string    `json:"id"`
	Time        string    `json:"time"`
	Heading     string    `json:"heading"`
	Description string    `json:"description"`
	Type        Sentiment `json:"type"`
}

// DayEntry bundles the server-mirrored per-day state. Uniqueness is
// enforced on (user, date).
type DayEntry struct {
	UserID         string            `json:"userId,omitempty"`
	Date           string            `json:"date"`
	Todos          []Todo            `json:"todos"`
	TagAllocations map[string]string `json:"tagAllocations"`
	VariableValues map[string]string `json:"variableValues"`
}

// ConfigHabit is the server-side habit record; it also carries the
// completion-date history list.
type ConfigHabit struct {
	Habit
	History []string `json:"history,omitempty"`
}

// UserConfig is the per-user server-mirrored configuration document.
type UserConfig struct {
	UserID    string        `json:"userId,omitempty"`
	Tags      []Tag         `json:"tags"`
	Variables []LogVariable `json:"variables"`
	Habits    []ConfigHabit `json:"habits"`
}
