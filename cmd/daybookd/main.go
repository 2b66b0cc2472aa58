package main

import (
	"os"

	"github.com/daybook-app/daybook/daybookservice"
	"github.com/daybook-app/daybook/internal/logger"
)

func main() {
	if err := daybookservice.Run(); err != nil {
		log := logger.New("daybookd")
		log.Error().Err(err).Msg("service exited with error")
		os.Exit(1)
	}
}
