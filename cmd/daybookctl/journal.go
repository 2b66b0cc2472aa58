package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	journalCmd := &cobra.Command{Use: "journal", Short: "Journal operations"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the day's journals",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			journals, err := st.Journals(dateKey())
			if err != nil {
				return err
			}
			return printJSON(journals)
		},
	}
	journalCmd.AddCommand(listCmd)

	var title string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a journal to the day",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			meta, err := st.AddJournal(dateKey(), title)
			if err != nil {
				return err
			}
			return printJSON(meta)
		},
	}
	addCmd.Flags().StringVarP(&title, "title", "t", "", "Journal title (defaults to the next \"Journal N\")")
	journalCmd.AddCommand(addCmd)

	showCmd := &cobra.Command{
		Use:   "show JOURNAL_ID",
		Short: "Print a journal's content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			content, err := st.JournalContent(args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, content)
			return nil
		},
	}
	journalCmd.AddCommand(showCmd)

	writeCmd := &cobra.Command{
		Use:   "write JOURNAL_ID CONTENT",
		Short: "Replace a journal's content",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			return st.SaveJournalContent(dateKey(), args[0], args[1])
		},
	}
	journalCmd.AddCommand(writeCmd)

	rmCmd := &cobra.Command{
		Use:   "rm JOURNAL_ID",
		Short: "Delete a journal and its content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			journals, err := st.DeleteJournal(dateKey(), args[0])
			if err != nil {
				return err
			}
			return printJSON(journals)
		},
	}
	journalCmd.AddCommand(rmCmd)

	rootCmd.AddCommand(journalCmd)
}
