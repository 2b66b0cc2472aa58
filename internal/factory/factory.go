// Package factory builds configured backend adapters.
package factory

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/daybook-app/daybook/internal/config"
	"github.com/daybook-app/daybook/internal/store"
	"github.com/daybook-app/daybook/internal/store/postgres"
	"github.com/daybook-app/daybook/internal/store/sqlite"
)

// NewStore returns the store adapter selected by cfg.DBDriver.
func NewStore(cfg *config.Config, log zerolog.Logger) (store.Store, error) {
	switch cfg.DBDriver {
	case "sqlite":
		log.Info().Str("path", cfg.SQLitePath).Msg("using sqlite store")
		return sqlite.New(cfg.SQLitePath)
	case "postgres":
		log.Info().Msg("using postgres store")
		return postgres.New(cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}
}
