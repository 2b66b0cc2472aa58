package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/daybook-app/daybook/internal/habit"
)

func init() {
	habitCmd := &cobra.Command{Use: "habit", Short: "Habit tracker operations"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			habits, err := habit.NewTracker(st).List()
			if err != nil {
				return err
			}
			return printJSON(habits)
		},
	}
	habitCmd.AddCommand(listCmd)

	var m, b, goal float64
	addCmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a habit with linear progression y = m*x + b",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			h, err := habit.NewTracker(st).Create(args[0], m, b, goal)
			if err != nil {
				return err
			}
			return printJSON(h)
		},
	}
	addCmd.Flags().Float64Var(&m, "m", 1, "Progress gained per completed day")
	addCmd.Flags().Float64Var(&b, "b", 0, "Starting progress")
	addCmd.Flags().Float64Var(&goal, "goal", 1, "Target progress value")
	habitCmd.AddCommand(addCmd)

	stepCmd := &cobra.Command{
		Use:   "step HABIT_ID",
		Short: "Record a completed day for a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			h, err := habit.NewTracker(st).RecordStep(args[0])
			if err != nil {
				return err
			}
			return printJSON(h)
		},
	}
	habitCmd.AddCommand(stepCmd)

	forecastCmd := &cobra.Command{
		Use:   "forecast HABIT_ID",
		Short: "Project when a habit reaches its goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			tracker := habit.NewTracker(st)
			habits, err := tracker.List()
			if err != nil {
				return err
			}
			for _, h := range habits {
				if h.ID != args[0] {
					continue
				}
				proj, err := habit.Project(h, time.Now())
				if err != nil {
					return err
				}
				return printJSON(proj)
			}
			return fmt.Errorf("habit %s not found", args[0])
		},
	}
	habitCmd.AddCommand(forecastCmd)

	rmCmd := &cobra.Command{
		Use:   "rm HABIT_ID",
		Short: "Delete a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			if err := habit.NewTracker(st).Delete(args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, "deleted")
			return nil
		},
	}
	habitCmd.AddCommand(rmCmd)

	rootCmd.AddCommand(habitCmd)
}
