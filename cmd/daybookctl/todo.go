package main

import (
	"github.com/spf13/cobra"

	"github.com/daybook-app/daybook/internal/model"
	"github.com/daybook-app/daybook/internal/todo"
)

func init() {
	todoCmd := &cobra.Command{Use: "todo", Short: "Todo operations"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the day's todos",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			todos, err := todo.NewList(st).Todos(dateKey())
			if err != nil {
				return err
			}
			return printJSON(todos)
		},
	}
	todoCmd.AddCommand(listCmd)

	var hour int
	var slots []string
	addCmd := &cobra.Command{
		Use:   "add TEXT",
		Short: "Add a todo, optionally scheduled to an hour or slot range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			sched := model.Schedule{}
			if len(slots) > 0 {
				sched = todo.RangeFromSlots(slots)
			} else if cmd.Flags().Changed("hour") {
				sched = model.ScheduleAt(hour)
			}
			t, err := todo.NewList(st).Add(dateKey(), args[0], sched)
			if err != nil {
				return err
			}
			return printJSON(t)
		},
	}
	addCmd.Flags().IntVar(&hour, "hour", 0, "Schedule to an hour (0-23)")
	addCmd.Flags().StringSliceVar(&slots, "slots", nil, "Schedule to slot keys like 9-0,9-1")
	todoCmd.AddCommand(addCmd)

	toggleCmd := &cobra.Command{
		Use:   "toggle TODO_ID",
		Short: "Toggle a todo's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			t, err := todo.NewList(st).Toggle(dateKey(), args[0])
			if err != nil {
				return err
			}
			return printJSON(t)
		},
	}
	todoCmd.AddCommand(toggleCmd)

	rmCmd := &cobra.Command{
		Use:   "rm TODO_ID",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			return todo.NewList(st).Delete(dateKey(), args[0])
		},
	}
	todoCmd.AddCommand(rmCmd)

	subCmd := &cobra.Command{Use: "sub", Short: "Subtask operations"}

	subAddCmd := &cobra.Command{
		Use:   "add TODO_ID TEXT",
		Short: "Add a subtask to a todo",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			sub, err := todo.NewList(st).AddSubTask(dateKey(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(sub)
		},
	}
	subCmd.AddCommand(subAddCmd)

	subToggleCmd := &cobra.Command{
		Use:   "toggle TODO_ID SUB_ID",
		Short: "Toggle a subtask's completion",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			return todo.NewList(st).ToggleSubTask(dateKey(), args[0], args[1])
		},
	}
	subCmd.AddCommand(subToggleCmd)

	subRmCmd := &cobra.Command{
		Use:   "rm TODO_ID SUB_ID",
		Short: "Delete a subtask",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			return todo.NewList(st).DeleteSubTask(dateKey(), args[0], args[1])
		},
	}
	subCmd.AddCommand(subRmCmd)

	todoCmd.AddCommand(subCmd)
	rootCmd.AddCommand(todoCmd)
}
