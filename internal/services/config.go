package services

import (
	"context"
	"errors"

	"github.com/daybook-app/daybook/internal/model"
	"github.com/daybook-app/daybook/internal/store"
)

// ConfigService reads and replaces the per-user configuration document
// (tags, log variables, habits).
type ConfigService struct {
	store store.Store
}

func NewConfigService(s store.Store) *ConfigService { return &ConfigService{store: s} }

// Get returns the user's config, or an empty one when none is stored.
func (s *ConfigService) Get(ctx context.Context, userID string) (*model.UserConfig, error) {
	cfg, err := s.store.Configs().Get(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return &model.UserConfig{
			UserID:    userID,
			Tags:      []model.Tag{},
			Variables: []model.LogVariable{},
			Habits:    []model.ConfigHabit{},
		}, nil
	}
	return cfg, err
}

// Save replaces the user's config document.
func (s *ConfigService) Save(ctx context.Context, userID string, cfg *model.UserConfig) (*model.UserConfig, error) {
	cfg.UserID = userID
	return s.store.Configs().Upsert(ctx, cfg)
}
