package localstore

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/daybook-app/daybook/internal/model"
)

// NewJournalID mints a journal id in the historical shape
// journal_<unix-ms>_<suffix>; content keys are derived from it.
func (s *Store) NewJournalID() string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
	return fmt.Sprintf("journal_%d_%s", s.Now().UnixMilli(), suffix)
}

// Journals returns the journal list for a date. On first read of a date
// that only has a legacy single-journal record, the record is migrated in
// place: a one-element list is synthesized, the body moves under the new
// per-journal key, and the legacy key is removed. Re-reading after
// migration is a no-op since the legacy key no longer exists.
func (s *Store) Journals(dateKey string) ([]model.JournalMeta, error) {
	var list []model.JournalMeta
	ok, err := s.getJSON(JournalsListKey(dateKey), &list)
	if err != nil {
		return nil, err
	}
	if ok {
		return list, nil
	}

	legacy, ok, err := s.kv.Get(LegacyJournalKey(dateKey))
	if err != nil || !ok {
		return nil, err
	}

	now := s.Now().UnixMilli()
	meta := model.JournalMeta{
		ID:        s.NewJournalID(),
		Title:     "Journal 1",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.setJSON(JournalsListKey(dateKey), []model.JournalMeta{meta}); err != nil {
		return nil, err
	}
	if err := s.kv.Set(JournalContentKey(meta.ID), legacy); err != nil {
		return nil, err
	}
	if err := s.kv.Delete(LegacyJournalKey(dateKey)); err != nil {
		return nil, err
	}
	return []model.JournalMeta{meta}, nil
}

// SaveJournal inserts or updates a journal's metadata in the date's list
// and returns the updated list. Updates touch UpdatedAt.
func (s *Store) SaveJournal(dateKey string, meta model.JournalMeta) ([]model.JournalMeta, error) {
	list, err := s.Journals(dateKey)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range list {
		if list[i].ID == meta.ID {
			if meta.Title != "" {
				list[i].Title = meta.Title
			}
			list[i].UpdatedAt = s.Now().UnixMilli()
			found = true
			break
		}
	}
	if !found {
		list = append(list, meta)
	}
	if err := s.setJSON(JournalsListKey(dateKey), list); err != nil {
		return nil, err
	}
	return list, nil
}

// AddJournal creates a fresh journal on the date. An empty title gets the
// next "Journal N" in sequence.
func (s *Store) AddJournal(dateKey, title string) (model.JournalMeta, error) {
	list, err := s.Journals(dateKey)
	if err != nil {
		return model.JournalMeta{}, err
	}
	if title == "" {
		title = fmt.Sprintf("Journal %d", len(list)+1)
	}
	now := s.Now().UnixMilli()
	meta := model.JournalMeta{ID: s.NewJournalID(), Title: title, CreatedAt: now, UpdatedAt: now}
	list = append(list, meta)
	if err := s.setJSON(JournalsListKey(dateKey), list); err != nil {
		return model.JournalMeta{}, err
	}
	return meta, nil
}

// DeleteJournal removes a journal's metadata and its body in one call so
// neither is ever orphaned. Unknown ids are a no-op.
func (s *Store) DeleteJournal(dateKey, journalID string) ([]model.JournalMeta, error) {
	list, err := s.Journals(dateKey)
	if err != nil {
		return nil, err
	}
	filtered := list[:0]
	for _, m := range list {
		if m.ID != journalID {
			filtered = append(filtered, m)
		}
	}
	if err := s.setJSON(JournalsListKey(dateKey), filtered); err != nil {
		return nil, err
	}
	if err := s.kv.Delete(JournalContentKey(journalID)); err != nil {
		return nil, err
	}
	return filtered, nil
}

// JournalContent returns a journal body, or "" when none has been saved.
func (s *Store) JournalContent(journalID string) (string, error) {
	v, _, err := s.kv.Get(JournalContentKey(journalID))
	return v, err
}

// SaveJournalContent stores a journal body and touches the owning
// metadata record. Bodies are lazy: saving empty content removes the key.
func (s *Store) SaveJournalContent(dateKey, journalID, content string) error {
	if content == "" {
		if err := s.kv.Delete(JournalContentKey(journalID)); err != nil {
			return err
		}
	} else if err := s.kv.Set(JournalContentKey(journalID), content); err != nil {
		return err
	}

	list, err := s.Journals(dateKey)
	if err != nil {
		return err
	}
	for _, m := range list {
		if m.ID == journalID {
			_, err := s.SaveJournal(dateKey, model.JournalMeta{ID: journalID})
			return err
		}
	}
	return nil
}
