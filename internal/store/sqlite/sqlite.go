// Package sqlite implements store.Store on modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daybook-app/daybook/internal/model"
	"github.com/daybook-app/daybook/internal/store"
)

// New opens the database at path, ensures the schema and returns the
// store.
func New(path string) (store.Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewWithDB(db)
}

// NewWithDB wires an existing connection (used by tests and the factory).
func NewWithDB(db *sql.DB) (store.Store, error) {
	if err := Bootstrap(db); err != nil {
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

type sqliteStore struct{ db *sql.DB }

func (s *sqliteStore) Users() store.Users           { return &users{db: s.db} }
func (s *sqliteStore) DayEntries() store.DayEntries { return &dayEntries{db: s.db} }
func (s *sqliteStore) Journals() store.Journals     { return &journals{db: s.db} }
func (s *sqliteStore) Configs() store.Configs       { return &configs{db: s.db} }

func (s *sqliteStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

// --- Users ---

type users struct{ db *sql.DB }

func (u *users) Create(ctx context.Context, m *model.User) (*model.User, error) {
	out := *m
	if out.UserID == "" {
		out.UserID = uuid.New().String()
	}
	out.CreationTime = time.Now().UTC()
	_, err := u.db.ExecContext(ctx,
		`INSERT INTO users (user_id, username, email, password_hash, creation_time) VALUES (?,?,?,?,?)`,
		out.UserID, out.Username, out.Email, out.PasswordHash, out.CreationTime)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return nil, fmt.Errorf("email %s: %w", m.Email, model.ErrConflict)
		}
		return nil, err
	}
	return &out, nil
}

func (u *users) GetByID(ctx context.Context, userID string) (*model.User, error) {
	row := u.db.QueryRowContext(ctx,
		`SELECT user_id, username, email, password_hash, creation_time FROM users WHERE user_id = ?`, userID)
	return scanUser(row)
}

func (u *users) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row := u.db.QueryRowContext(ctx,
		`SELECT user_id, username, email, password_hash, creation_time FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (u *users) UpdateUsername(ctx context.Context, userID, username string) (*model.User, error) {
	res, err := u.db.ExecContext(ctx, `UPDATE users SET username = ? WHERE user_id = ?`, username, userID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("user %s: %w", userID, model.ErrNotFound)
	}
	return u.GetByID(ctx, userID)
}

func scanUser(row *sql.Row) (*model.User, error) {
	var out model.User
	err := row.Scan(&out.UserID, &out.Username, &out.Email, &out.PasswordHash, &out.CreationTime)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Day entries ---

type dayEntries struct{ db *sql.DB }

func (d *dayEntries) Get(ctx context.Context, userID, date string) (*model.DayEntry, error) {
	var todosRaw, tagsRaw, valsRaw string
	row := d.db.QueryRowContext(ctx,
		`SELECT todos, tag_allocations, variable_values FROM day_entries WHERE user_id = ? AND date = ?`,
		userID, date)
	err := row.Scan(&todosRaw, &tagsRaw, &valsRaw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	out := model.DayEntry{UserID: userID, Date: date}
	if err := json.Unmarshal([]byte(todosRaw), &out.Todos); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(tagsRaw), &out.TagAllocations); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(valsRaw), &out.VariableValues); err != nil {
		return nil, err
	}
	return &out, nil
}

func (d *dayEntries) Upsert(ctx context.Context, e *model.DayEntry) (*model.DayEntry, error) {
	todosRaw, tagsRaw, valsRaw, err := encodeDayEntry(e)
	if err != nil {
		return nil, err
	}
	_, err = d.db.ExecContext(ctx,
		`INSERT INTO day_entries (user_id, date, todos, tag_allocations, variable_values)
         VALUES (?,?,?,?,?)
         ON CONFLICT(user_id, date) DO UPDATE SET
             todos = excluded.todos,
             tag_allocations = excluded.tag_allocations,
             variable_values = excluded.variable_values`,
		e.UserID, e.Date, todosRaw, tagsRaw, valsRaw)
	if err != nil {
		return nil, err
	}
	return d.Get(ctx, e.UserID, e.Date)
}

func encodeDayEntry(e *model.DayEntry) (todos, tags, vals string, err error) {
	todosV := e.Todos
	if todosV == nil {
		todosV = []model.Todo{}
	}
	tagsV := e.TagAllocations
	if tagsV == nil {
		tagsV = map[string]string{}
	}
	valsV := e.VariableValues
	if valsV == nil {
		valsV = map[string]string{}
	}
	raw, err := json.Marshal(todosV)
	if err != nil {
		return "", "", "", err
	}
	todos = string(raw)
	if raw, err = json.Marshal(tagsV); err != nil {
		return "", "", "", err
	}
	tags = string(raw)
	if raw, err = json.Marshal(valsV); err != nil {
		return "", "", "", err
	}
	vals = string(raw)
	return todos, tags, vals, nil
}

// --- Journals ---

type journals struct{ db *sql.DB }

func (j *journals) Create(ctx context.Context, m *model.Journal) (*model.Journal, error) {
	out := *m
	if out.JournalID == "" {
		out.JournalID = uuid.New().String()
	}
	now := time.Now().UTC()
	out.CreatedAt = now
	out.UpdatedAt = now
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO journals (journal_id, user_id, date, title, content, created_at, updated_at)
         VALUES (?,?,?,?,?,?,?)`,
		out.JournalID, out.UserID, out.Date, out.Title, out.Content, out.CreatedAt, out.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (j *journals) Get(ctx context.Context, journalID string) (*model.Journal, error) {
	row := j.db.QueryRowContext(ctx,
		`SELECT journal_id, user_id, date, title, content, created_at, updated_at
         FROM journals WHERE journal_id = ?`, journalID)
	var out model.Journal
	err := row.Scan(&out.JournalID, &out.UserID, &out.Date, &out.Title, &out.Content, &out.CreatedAt, &out.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (j *journals) Update(ctx context.Context, m *model.Journal) (*model.Journal, error) {
	now := time.Now().UTC()
	res, err := j.db.ExecContext(ctx,
		`UPDATE journals SET title = ?, content = ?, updated_at = ? WHERE journal_id = ?`,
		m.Title, m.Content, now, m.JournalID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("journal %s: %w", m.JournalID, model.ErrNotFound)
	}
	return j.Get(ctx, m.JournalID)
}

func (j *journals) ListByDate(ctx context.Context, userID, date string) ([]*model.Journal, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT journal_id, user_id, date, title, content, created_at, updated_at
         FROM journals WHERE user_id = ? AND date = ? ORDER BY created_at`, userID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Journal
	for rows.Next() {
		var m model.Journal
		if err := rows.Scan(&m.JournalID, &m.UserID, &m.Date, &m.Title, &m.Content, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (j *journals) Delete(ctx context.Context, journalID string) error {
	_, err := j.db.ExecContext(ctx, `DELETE FROM journals WHERE journal_id = ?`, journalID)
	return err
}

// --- User configs ---

type configs struct{ db *sql.DB }

func (c *configs) Get(ctx context.Context, userID string) (*model.UserConfig, error) {
	var tagsRaw, varsRaw, habitsRaw string
	row := c.db.QueryRowContext(ctx,
		`SELECT tags, variables, habits FROM user_configs WHERE user_id = ?`, userID)
	err := row.Scan(&tagsRaw, &varsRaw, &habitsRaw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	out := model.UserConfig{UserID: userID}
	if err := json.Unmarshal([]byte(tagsRaw), &out.Tags); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(varsRaw), &out.Variables); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(habitsRaw), &out.Habits); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *configs) Upsert(ctx context.Context, cfg *model.UserConfig) (*model.UserConfig, error) {
	tagsRaw, err := json.Marshal(orEmptyTags(cfg.Tags))
	if err != nil {
		return nil, err
	}
	varsRaw, err := json.Marshal(orEmptyVars(cfg.Variables))
	if err != nil {
		return nil, err
	}
	habitsRaw, err := json.Marshal(orEmptyHabits(cfg.Habits))
	if err != nil {
		return nil, err
	}
	_, err = c.db.ExecContext(ctx,
		`INSERT INTO user_configs (user_id, tags, variables, habits) VALUES (?,?,?,?)
         ON CONFLICT(user_id) DO UPDATE SET
             tags = excluded.tags,
             variables = excluded.variables,
             habits = excluded.habits`,
		cfg.UserID, string(tagsRaw), string(varsRaw), string(habitsRaw))
	if err != nil {
		return nil, err
	}
	return c.Get(ctx, cfg.UserID)
}

func orEmptyTags(v []model.Tag) []model.Tag {
	if v == nil {
		return []model.Tag{}
	}
	return v
}

func orEmptyVars(v []model.LogVariable) []model.LogVariable {
	if v == nil {
		return []model.LogVariable{}
	}
	return v
}

func orEmptyHabits(v []model.ConfigHabit) []model.ConfigHabit {
	if v == nil {
		return []model.ConfigHabit{}
	}
	return v
}
