// Package store defines the persistence contract of the daybook service.
// Implementations live under internal/store/<driver>/ (sqlite, postgres).
package store

import (
	"context"

	"github.com/daybook-app/daybook/internal/model"
)

// Store exposes persistence operations required by services.
type Store interface {
	Users() Users
	DayEntries() DayEntries
	Journals() Journals
	Configs() Configs

	// Ping reports backend reachability for health checks.
	Ping(ctx context.Context) error
}

type Users interface {
	// Create inserts a user; the email must be unique.
	Create(ctx context.Context, u *model.User) (*model.User, error)
	GetByID(ctx context.Context, userID string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// UpdateUsername returns model.ErrNotFound for unknown users.
	UpdateUsername(ctx context.Context, userID, username string) (*model.User, error)
}

type DayEntries interface {
	// Get returns model.ErrNotFound when no entry exists for the date.
	Get(ctx context.Context, userID, date string) (*model.DayEntry, error)
	// Upsert replaces the (user, date) row, creating it when absent.
	Upsert(ctx context.Context, e *model.DayEntry) (*model.DayEntry, error)
}

type Journals interface {
	Create(ctx context.Context, j *model.Journal) (*model.Journal, error)
	Get(ctx context.Context, journalID string) (*model.Journal, error)
	Update(ctx context.Context, j *model.Journal) (*model.Journal, error)
	ListByDate(ctx context.Context, userID, date string) ([]*model.Journal, error)
	Delete(ctx context.Context, journalID string) error
}

type Configs interface {
	// Get returns model.ErrNotFound when the user has no config yet.
	Get(ctx context.Context, userID string) (*model.UserConfig, error)
	Upsert(ctx context.Context, c *model.UserConfig) (*model.UserConfig, error)
}
