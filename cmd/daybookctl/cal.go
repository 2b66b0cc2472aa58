package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/daybook-app/daybook/internal/datekey"
)

func init() {
	calCmd := &cobra.Command{
		Use:   "cal",
		Short: "Print the month calendar for the active date",
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, _, err := datekey.Parse(dateKey())
			if err != nil {
				return err
			}
			printMonth(os.Stdout, year, month)
			return nil
		},
	}
	rootCmd.AddCommand(calCmd)
}

func printMonth(w *os.File, year, month int) {
	grid := datekey.MonthGrid(year, month)
	name := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.Local).Format("January 2006")

	_, _ = fmt.Fprintf(w, "%s\nSu Mo Tu We Th Fr Sa\n", name)
	var line strings.Builder
	line.WriteString(strings.Repeat("   ", grid.FirstWeekday))
	weekday := grid.FirstWeekday
	for day := 1; day <= grid.DaysInMonth; day++ {
		line.WriteString(fmt.Sprintf("%2d ", day))
		weekday++
		if weekday == 7 {
			_, _ = fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
			line.Reset()
			weekday = 0
		}
	}
	if line.Len() > 0 {
		_, _ = fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}
}
