package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/daybook-app/daybook/internal/config"
	"github.com/daybook-app/daybook/internal/localstore"
	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/internal/timegrid"
)

func init() {
	tagCmd := &cobra.Command{Use: "tag", Short: "Time-grid tag operations"}

	tagListCmd := &cobra.Command{
		Use:   "list",
		Short: "List user-defined tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			tags, err := timegrid.NewBoard(st).Tags()
			if err != nil {
				return err
			}
			return printJSON(tags)
		},
	}
	tagCmd.AddCommand(tagListCmd)

	var color string
	var notify bool
	tagAddCmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			tag, err := timegrid.NewBoard(st).CreateTag(args[0], color, notify)
			if err != nil {
				return err
			}
			return printJSON(tag)
		},
	}
	tagAddCmd.Flags().StringVarP(&color, "color", "c", "#8884d8", "Display color")
	tagAddCmd.Flags().BoolVarP(&notify, "notify", "n", false, "Notify before blocks of this tag start")
	tagCmd.AddCommand(tagAddCmd)

	tagNotifyCmd := &cobra.Command{
		Use:   "notify TAG_ID",
		Short: "Toggle a tag's notification flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			tag, err := timegrid.NewBoard(st).ToggleNotify(args[0])
			if err != nil {
				return err
			}
			return printJSON(tag)
		},
	}
	tagCmd.AddCommand(tagNotifyCmd)

	tagRmCmd := &cobra.Command{
		Use:   "rm TAG_ID",
		Short: "Delete a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			return timegrid.NewBoard(st).DeleteTag(args[0])
		},
	}
	tagCmd.AddCommand(tagRmCmd)

	rootCmd.AddCommand(tagCmd)

	gridCmd := &cobra.Command{Use: "grid", Short: "Time-grid operations"}

	var template bool
	gridShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the day grid (or the template grid)",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			board := timegrid.NewBoard(st)
			var grid map[string]string
			if template {
				grid, err = board.TemplateGrid()
			} else {
				grid, err = board.DayGrid(dateKey())
			}
			if err != nil {
				return err
			}
			return printJSON(grid)
		},
	}
	gridShowCmd.Flags().BoolVarP(&template, "template", "t", false, "Operate on the template grid")
	gridCmd.AddCommand(gridShowCmd)

	gridPaintCmd := &cobra.Command{
		Use:   "paint HOUR SLOT TAG_ID",
		Short: "Toggle a tag on a slot; painting the same tag again clears it",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var hour, slot int
			if _, err := fmt.Sscanf(args[0]+" "+args[1], "%d %d", &hour, &slot); err != nil {
				return fmt.Errorf("invalid hour/slot: %w", err)
			}
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			board := timegrid.NewBoard(st)
			var grid map[string]string
			if template {
				grid, err = board.PaintTemplate(hour, slot, args[2])
			} else {
				grid, err = board.PaintDay(dateKey(), hour, slot, args[2])
			}
			if err != nil {
				return err
			}
			return printJSON(grid)
		},
	}
	gridPaintCmd.Flags().BoolVarP(&template, "template", "t", false, "Operate on the template grid")
	gridCmd.AddCommand(gridPaintCmd)

	gridWatchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the day grid and print upcoming-block notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, cfg, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return watchGrid(ctx, st, cfg)
		},
	}
	gridCmd.AddCommand(gridWatchCmd)

	rootCmd.AddCommand(gridCmd)
}

func watchGrid(ctx context.Context, st *localstore.Store, cfg *config.Config) error {
	log := logger.New("daybookctl")
	board := timegrid.NewBoard(st)

	source := func() (map[string]string, []timegrid.TagLookup, error) {
		grid, err := board.DayGrid(dateKey())
		if err != nil {
			return nil, nil, err
		}
		tags, err := board.Tags()
		if err != nil {
			return nil, nil, err
		}
		lookups := make([]timegrid.TagLookup, 0, len(tags))
		for _, t := range tags {
			lookups = append(lookups, timegrid.TagLookup{ID: t.ID, Name: t.Name, Notify: t.Notify})
		}
		return grid, lookups, nil
	}

	scanner := timegrid.NewScanner(timegrid.DefaultLeadTimes...)
	poller := timegrid.NewPoller(scanner, source, func(n timegrid.Notification) {
		_, _ = fmt.Fprintln(os.Stdout, n.Message)
	}, log)
	// Track the watched day, not the wall clock, so a watch left running
	// past midnight starts a fresh fired set for the new day's grid.
	poller.Day = dateKey

	poller.Start(ctx, cfg.NotifyInterval)
	return nil
}
