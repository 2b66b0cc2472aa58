package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/daybook-app/daybook/internal/config"
	"github.com/daybook-app/daybook/internal/datekey"
	"github.com/daybook-app/daybook/internal/localstore"
)

var (
	dateFlag string
	rootCmd  = &cobra.Command{
		Use:   "daybookctl",
		Short: "Local-first daybook CLI: journals, todos, habits, time grid and daily log",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&dateFlag, "date", "d", "", "Date key (YYYY-MM-DD), defaults to today")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// dateKey returns the --date flag or today's key.
func dateKey() string {
	if dateFlag != "" {
		return dateFlag
	}
	return datekey.FromTime(time.Now())
}

// openStore opens the local key-value database configured via the
// environment.
func openStore() (*localstore.Store, *config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, err
	}
	kv, err := localstore.OpenSqliteKV(cfg.LocalStorePath)
	if err != nil {
		return nil, nil, err
	}
	return localstore.New(kv), cfg, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
