package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/daybook-app/daybook/internal/dailylog"
	"github.com/daybook-app/daybook/internal/model"
)

func init() {
	logCmd := &cobra.Command{Use: "log", Short: "Daily log operations"}

	varCmd := &cobra.Command{Use: "var", Short: "Log variable operations"}

	varListCmd := &cobra.Command{
		Use:   "list",
		Short: "List defined variables",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			vars, err := dailylog.New(st).Variables()
			if err != nil {
				return err
			}
			return printJSON(vars)
		},
	}
	varCmd.AddCommand(varListCmd)

	var varType string
	varAddCmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Define a tracked variable (boolean, scale or string)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			v, err := dailylog.New(st).DefineVariable(args[0], model.VariableType(varType))
			if err != nil {
				return err
			}
			return printJSON(v)
		},
	}
	varAddCmd.Flags().StringVarP(&varType, "type", "t", "boolean", "Variable type: boolean, scale or string")
	varCmd.AddCommand(varAddCmd)

	varRmCmd := &cobra.Command{
		Use:   "rm VAR_ID",
		Short: "Delete a variable definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			return dailylog.New(st).DeleteVariable(args[0])
		},
	}
	varCmd.AddCommand(varRmCmd)

	logCmd.AddCommand(varCmd)

	valuesCmd := &cobra.Command{
		Use:   "values",
		Short: "Show the day's variable values",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			vals, err := dailylog.New(st).Values(dateKey())
			if err != nil {
				return err
			}
			return printJSON(vals)
		},
	}
	logCmd.AddCommand(valuesCmd)

	setCmd := &cobra.Command{
		Use:   "set VAR_ID VALUE",
		Short: "Record a variable value for the day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			lg := dailylog.New(st)
			vars, err := lg.Variables()
			if err != nil {
				return err
			}
			for _, v := range vars {
				if v.ID == args[0] {
					return lg.SetValue(dateKey(), v, args[1])
				}
			}
			return model.ErrNotFound
		},
	}
	logCmd.AddCommand(setCmd)

	feedCmd := &cobra.Command{
		Use:   "feed",
		Short: "Print the system-log feed, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			entries, err := dailylog.New(st).Entries()
			if err != nil {
				return err
			}
			return printJSON(entries)
		},
	}
	logCmd.AddCommand(feedCmd)

	var sentiment string
	noteCmd := &cobra.Command{
		Use:   "note HEADING DESCRIPTION",
		Short: "Append an entry to the system-log feed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			ts := time.Now().Format("15:04:05")
			entry, err := dailylog.New(st).AddEntry(ts, args[0], args[1], model.Sentiment(sentiment))
			if err != nil {
				return err
			}
			return printJSON(entry)
		},
	}
	noteCmd.Flags().StringVarP(&sentiment, "sentiment", "s", "neutral", "Entry sentiment: positive, negative or neutral")
	logCmd.AddCommand(noteCmd)

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the system-log feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			return dailylog.New(st).ClearEntries()
		},
	}
	logCmd.AddCommand(clearCmd)

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Sentiment counts for the feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			stats, err := dailylog.New(st).FeedStats()
			if err != nil {
				return err
			}
			return printJSON(stats)
		},
	}
	logCmd.AddCommand(statsCmd)

	rootCmd.AddCommand(logCmd)
}
