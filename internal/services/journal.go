package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/daybook-app/daybook/internal/model"
	"github.com/daybook-app/daybook/internal/store"
)

// JournalService manages the server-side journal documents.
type JournalService struct {
	store store.Store
}

func NewJournalService(s store.Store) *JournalService { return &JournalService{store: s} }

// Save creates the journal when id is empty or unknown, otherwise
// updates it. Updating a journal owned by another user returns
// model.ErrUnauthorized.
func (s *JournalService) Save(ctx context.Context, userID string, j *model.Journal) (*model.Journal, error) {
	j.UserID = userID
	if j.JournalID == "" {
		return s.store.Journals().Create(ctx, j)
	}

	existing, err := s.store.Journals().Get(ctx, j.JournalID)
	if errors.Is(err, model.ErrNotFound) {
		return s.store.Journals().Create(ctx, j)
	}
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, fmt.Errorf("journal %s: %w", j.JournalID, model.ErrUnauthorized)
	}
	return s.store.Journals().Update(ctx, j)
}

// ListByDate returns the user's journals for a date, oldest first.
func (s *JournalService) ListByDate(ctx context.Context, userID, date string) ([]*model.Journal, error) {
	return s.store.Journals().ListByDate(ctx, userID, date)
}

// Delete removes a journal after an ownership check.
func (s *JournalService) Delete(ctx context.Context, userID, journalID string) error {
	existing, err := s.store.Journals().Get(ctx, journalID)
	if errors.Is(err, model.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return fmt.Errorf("journal %s: %w", journalID, model.ErrUnauthorized)
	}
	return s.store.Journals().Delete(ctx, journalID)
}
