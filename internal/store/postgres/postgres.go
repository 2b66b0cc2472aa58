// Package postgres implements store.Store on PostgreSQL via the pgx
// stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/daybook-app/daybook/internal/model"
	"github.com/daybook-app/daybook/internal/store"
)

// Open opens a PostgreSQL connection and verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// New opens the database at dsn, ensures the schema and returns the store.
func New(dsn string) (store.Store, error) {
	db, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	if err := Bootstrap(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewWithDB(db), nil
}

// NewWithDB constructs a Postgres store over an existing connection.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

const schema = `
CREATE TABLE IF NOT EXISTS users (
    user_id       TEXT PRIMARY KEY,
    username      TEXT NOT NULL,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    creation_time TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS day_entries (
    user_id         TEXT NOT NULL,
    date            TEXT NOT NULL,
    todos           JSONB NOT NULL DEFAULT '[]',
    tag_allocations JSONB NOT NULL DEFAULT '{}',
    variable_values JSONB NOT NULL DEFAULT '{}',
    PRIMARY KEY (user_id, date)
);
CREATE TABLE IF NOT EXISTS journals (
    journal_id TEXT PRIMARY KEY,
    user_id    TEXT NOT NULL,
    date       TEXT NOT NULL,
    title      TEXT NOT NULL DEFAULT '',
    content    TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_journals_user_date ON journals (user_id, date);
CREATE TABLE IF NOT EXISTS user_configs (
    user_id   TEXT PRIMARY KEY,
    tags      JSONB NOT NULL DEFAULT '[]',
    variables JSONB NOT NULL DEFAULT '[]',
    habits    JSONB NOT NULL DEFAULT '[]'
);
`

// Bootstrap creates the schema when missing.
func Bootstrap(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}

type pgStore struct{ db *sql.DB }

func (s *pgStore) Users() store.Users           { return &users{db: s.db} }
func (s *pgStore) DayEntries() store.DayEntries { return &dayEntries{db: s.db} }
func (s *pgStore) Journals() store.Journals     { return &journals{db: s.db} }
func (s *pgStore) Configs() store.Configs       { return &configs{db: s.db} }

func (s *pgStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --- Users ---

type users struct{ db *sql.DB }

func (u *users) Create(ctx context.Context, m *model.User) (*model.User, error) {
	out := *m
	if out.UserID == "" {
		out.UserID = uuid.New().String()
	}
	out.CreationTime = time.Now().UTC()
	_, err := u.db.ExecContext(ctx, `
        INSERT INTO users (user_id, username, email, password_hash, creation_time)
        VALUES ($1,$2,$3,$4,$5)
    `, out.UserID, out.Username, out.Email, out.PasswordHash, out.CreationTime)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("email %s: %w", m.Email, model.ErrConflict)
		}
		return nil, err
	}
	return &out, nil
}

func (u *users) GetByID(ctx context.Context, userID string) (*model.User, error) {
	row := u.db.QueryRowContext(ctx, `
        SELECT user_id, username, email, password_hash, creation_time
        FROM users WHERE user_id=$1
    `, userID)
	return scanUser(row)
}

func (u *users) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row := u.db.QueryRowContext(ctx, `
        SELECT user_id, username, email, password_hash, creation_time
        FROM users WHERE email=$1
    `, email)
	return scanUser(row)
}

func (u *users) UpdateUsername(ctx context.Context, userID, username string) (*model.User, error) {
	res, err := u.db.ExecContext(ctx, `UPDATE users SET username=$1 WHERE user_id=$2`, username, userID)
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
	var todosRaw, tagsRaw, valsRaw []byte
	row := d.db.QueryRowContext(ctx, `
        SELECT todos, tag_allocations, variable_values
        FROM day_entries WHERE user_id=$1 AND date=$2
    `, userID, date)
	err := row.Scan(&todosRaw, &tagsRaw, &valsRaw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	out := model.DayEntry{UserID: userID, Date: date}
	if err := json.Unmarshal(todosRaw, &out.Todos); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tagsRaw, &out.TagAllocations); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(valsRaw, &out.VariableValues); err != nil {
		return nil, err
	}
	return &out, nil
}

func (d *dayEntries) Upsert(ctx context.Context, e *model.DayEntry) (*model.DayEntry, error) {
	todos := e.Todos
	if todos == nil {
		todos = []model.Todo{}
	}
	tags := e.TagAllocations
	if tags == nil {
		tags = map[string]string{}
	}
	vals := e.VariableValues
	if vals == nil {
		vals = map[string]string{}
	}
	todosRaw, err := json.Marshal(todos)
	if err != nil {
		return nil, err
	}
	tagsRaw, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	valsRaw, err := json.Marshal(vals)
	if err != nil {
		return nil, err
	}
	_, err = d.db.ExecContext(ctx, `
        INSERT INTO day_entries (user_id, date, todos, tag_allocations, variable_values)
        VALUES ($1,$2,$3,$4,$5)
        ON CONFLICT (user_id, date) DO UPDATE SET
            todos = EXCLUDED.todos,
            tag_allocations = EXCLUDED.tag_allocations,
            variable_values = EXCLUDED.variable_values
    `, e.UserID, e.Date, todosRaw, tagsRaw, valsRaw)
	if err != nil {
		return nil, err
	}
	return d.Get(ctx, e.UserID, e.Date)
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
	_, err := j.db.ExecContext(ctx, `
        INSERT INTO journals (journal_id, user_id, date, title, content, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
    `, out.JournalID, out.UserID, out.Date, out.Title, out.Content, out.CreatedAt, out.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (j *journals) Get(ctx context.Context, journalID string) (*model.Journal, error) {
	row := j.db.QueryRowContext(ctx, `
        SELECT journal_id, user_id, date, title, content, created_at, updated_at
        FROM journals WHERE journal_id=$1
    `, journalID)
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
	res, err := j.db.ExecContext(ctx, `
        UPDATE journals SET title=$1, content=$2, updated_at=$3 WHERE journal_id=$4
    `, m.Title, m.Content, time.Now().UTC(), m.JournalID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("journal %s: %w", m.JournalID, model.ErrNotFound)
	}
	return j.Get(ctx, m.JournalID)
}

func (j *journals) ListByDate(ctx context.Context, userID, date string) ([]*model.Journal, error) {
	rows, err := j.db.QueryContext(ctx, `
        SELECT journal_id, user_id, date, title, content, created_at, updated_at
        FROM journals WHERE user_id=$1 AND date=$2 ORDER BY created_at
    `, userID, date)
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
	_, err := j.db.ExecContext(ctx, `DELETE FROM journals WHERE journal_id=$1`, journalID)
	return err
}

// --- User configs ---

type configs struct{ db *sql.DB }

func (c *configs) Get(ctx context.Context, userID string) (*model.UserConfig, error) {
	var tagsRaw, varsRaw, habitsRaw []byte
	row := c.db.QueryRowContext(ctx, `
        SELECT tags, variables, habits FROM user_configs WHERE user_id=$1
    `, userID)
	err := row.Scan(&tagsRaw, &varsRaw, &habitsRaw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	out := model.UserConfig{UserID: userID}
	if err := json.Unmarshal(tagsRaw, &out.Tags); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(varsRaw, &out.Variables); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(habitsRaw, &out.Habits); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *configs) Upsert(ctx context.Context, cfg *model.UserConfig) (*model.UserConfig, error) {
	tags := cfg.Tags
	if tags == nil {
		tags = []model.Tag{}
	}
	vars := cfg.Variables
	if vars == nil {
		vars = []model.LogVariable{}
	}
	habits := cfg.Habits
	if habits == nil {
		habits = []model.ConfigHabit{}
	}
	tagsRaw, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	varsRaw, err := json.Marshal(vars)
	if err != nil {
		return nil, err
	}
	habitsRaw, err := json.Marshal(habits)
	if err != nil {
		return nil, err
	}
	_, err = c.db.ExecContext(ctx, `
        INSERT INTO user_configs (user_id, tags, variables, habits)
        VALUES ($1,$2,$3,$4)
        ON CONFLICT (user_id) DO UPDATE SET
            tags = EXCLUDED.tags,
            variables = EXCLUDED.variables,
            habits = EXCLUDED.habits
    `, cfg.UserID, tagsRaw, varsRaw, habitsRaw)
	if err != nil {
		return nil, err
	}
	return c.Get(ctx, cfg.UserID)
}
