package services

import (
	"context"
	"errors"

	"github.com/daybook-app/daybook/internal/model"
	"github.com/daybook-app/daybook/internal/store"
)

// DayService reads and merges per-day records.
type DayService struct {
	store store.Store
}

func NewDayService(s store.Store) *DayService { return &DayService{store: s} }

// GetDay returns the stored entry for the date, or an empty entry when
// the user has written nothing for it yet.
func (s *DayService) GetDay(ctx context.Context, userID, date string) (*model.DayEntry, error) {
	e, err := s.store.DayEntries().Get(ctx, userID, date)
	if errors.Is(err, model.ErrNotFound) {
		return &model.DayEntry{
			UserID:         userID,
			Date:           date,
			Todos:          []model.Todo{},
			TagAllocations: map[string]string{},
			VariableValues: map[string]string{},
		}, nil
	}
	return e, err
}

// DayPatch carries the fields of a day entry a client wants to change.
// Nil fields are left as stored.
type DayPatch struct {
	Todos          []model.Todo      `json:"todos"`
	TagAllocations map[string]string `json:"tagAllocations"`
	VariableValues map[string]string `json:"variableValues"`
}

// SaveDay merges the patch over the current entry and upserts the
// result, creating the row when the date has no entry yet.
func (s *DayService) SaveDay(ctx context.Context, userID, date string, patch DayPatch) (*model.DayEntry, error) {
	cur, err := s.GetDay(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if patch.Todos != nil {
		cur.Todos = patch.Todos
	}
	if patch.TagAllocations != nil {
		cur.TagAllocations = patch.TagAllocations
	}
	if patch.VariableValues != nil {
		cur.VariableValues = patch.VariableValues
	}
	return s.store.DayEntries().Upsert(ctx, cur)
}
