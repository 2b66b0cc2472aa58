package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daybook-app/daybook/client"
	"github.com/daybook-app/daybook/internal/config"
	"github.com/daybook-app/daybook/internal/dailylog"
	"github.com/daybook-app/daybook/internal/habit"
	"github.com/daybook-app/daybook/internal/localstore"
	"github.com/daybook-app/daybook/internal/model"
	"github.com/daybook-app/daybook/internal/timegrid"
	"github.com/daybook-app/daybook/internal/todo"
)

func sessionPath(cfg *config.Config) string {
	return filepath.Join(cfg.DataDir, "session")
}

// newRemoteClient builds a client for the configured API and loads the
// saved session token when one exists.
func newRemoteClient(cfg *config.Config) *client.Client {
	c := client.New(cfg.APIBaseURL)
	if raw, err := os.ReadFile(sessionPath(cfg)); err == nil {
		c.SetToken(strings.TrimSpace(string(raw)))
	}
	return c
}

func saveSession(cfg *config.Config, token string) error {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(sessionPath(cfg), []byte(token), 0o600)
}

func init() {
	remoteCmd := &cobra.Command{Use: "remote", Short: "Talk to a daybookd server"}

	var username, email, password string
	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and save the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			c := client.New(cfg.APIBaseURL)
			sess, err := c.Register(cmd.Context(), username, email, password)
			if err != nil {
				return err
			}
			if err := saveSession(cfg, sess.Token); err != nil {
				return err
			}
			return printJSON(sess.User)
		},
	}
	registerCmd.Flags().StringVarP(&username, "username", "u", "", "Username (required)")
	registerCmd.Flags().StringVarP(&email, "email", "e", "", "Email (required)")
	registerCmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	_ = registerCmd.MarkFlagRequired("username")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
	remoteCmd.AddCommand(registerCmd)

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and save the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			c := client.New(cfg.APIBaseURL)
			sess, err := c.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if err := saveSession(cfg, sess.Token); err != nil {
				return err
			}
			return printJSON(sess.User)
		},
	}
	loginCmd.Flags().StringVarP(&email, "email", "e", "", "Email (required)")
	loginCmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
	remoteCmd.AddCommand(loginCmd)

	pushCmd := &cobra.Command{
		Use:   "push",
		Short: "Upload the day's local records and the user config",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, cfg, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			return pushDay(cmd, st, cfg)
		},
	}
	remoteCmd.AddCommand(pushCmd)

	pullCmd := &cobra.Command{
		Use:   "pull",
		Short: "Replace the day's local records with the server copy",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, cfg, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			return pullDay(cmd, st, cfg)
		},
	}
	remoteCmd.AddCommand(pullCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Check server reachability",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			c := newRemoteClient(cfg)
			status, err := c.Health(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, status)
			return nil
		},
	}
	remoteCmd.AddCommand(statusCmd)

	rootCmd.AddCommand(remoteCmd)
}

func pushDay(cmd *cobra.Command, st *localstore.Store, cfg *config.Config) error {
	c := newRemoteClient(cfg)
	date := dateKey()

	todos, err := todo.NewList(st).Todos(date)
	if err != nil {
		return err
	}
	grid, err := timegrid.NewBoard(st).DayGrid(date)
	if err != nil {
		return err
	}
	values, err := dailylog.New(st).Values(date)
	if err != nil {
		return err
	}
	entry, err := c.SaveDay(cmd.Context(), date, client.DayPatch{
		Todos:          todos,
		TagAllocations: grid,
		VariableValues: values,
	})
	if err != nil {
		return err
	}

	tags, err := timegrid.NewBoard(st).Tags()
	if err != nil {
		return err
	}
	vars, err := dailylog.New(st).Variables()
	if err != nil {
		return err
	}
	habits, err := habit.NewTracker(st).List()
	if err != nil {
		return err
	}
	// Config save replaces the whole document; the completion histories
	// live only server-side, so carry them over from the remote copy.
	remoteCfg, err := c.GetConfig(cmd.Context())
	if err != nil {
		return err
	}
	if _, err := c.SaveConfig(cmd.Context(), &model.UserConfig{
		Tags:      tags,
		Variables: vars,
		Habits:    mergeHabitHistories(habits, remoteCfg.Habits),
	}); err != nil {
		return err
	}
	return printJSON(entry)
}

// mergeHabitHistories pairs the local habit definitions with the completion
// histories already recorded on the server, matched by habit id.
func mergeHabitHistories(local []model.Habit, remote []model.ConfigHabit) []model.ConfigHabit {
	histories := make(map[string][]string, len(remote))
	for _, h := range remote {
		histories[h.ID] = h.History
	}
	merged := make([]model.ConfigHabit, 0, len(local))
	for _, h := range local {
		merged = append(merged, model.ConfigHabit{Habit: h, History: histories[h.ID]})
	}
	return merged
}

func pullDay(cmd *cobra.Command, st *localstore.Store, cfg *config.Config) error {
	c := newRemoteClient(cfg)
	date := dateKey()

	entry, err := c.GetDay(cmd.Context(), date)
	if err != nil {
		return err
	}
	if err := st.SaveTodos(date, entry.Todos); err != nil {
		return err
	}
	if err := st.SaveDayGrid(date, entry.TagAllocations); err != nil {
		return err
	}
	if err := st.SaveValues(date, entry.VariableValues); err != nil {
		return err
	}

	remoteCfg, err := c.GetConfig(cmd.Context())
	if err != nil {
		return err
	}
	if err := st.SaveTags(remoteCfg.Tags); err != nil {
		return err
	}
	if err := st.SaveVariables(remoteCfg.Variables); err != nil {
		return err
	}
	habits := make([]model.Habit, 0, len(remoteCfg.Habits))
	for _, h := range remoteCfg.Habits {
		habits = append(habits, h.Habit)
	}
	if err := st.SaveHabits(habits); err != nil {
		return err
	}
	return printJSON(entry)
}
