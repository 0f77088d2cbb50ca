package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wbartel/todobar/internal/ops"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>...",
	Short: "Mark task(s) as done",
	Long: `Mark one or more tasks as done.

Multiple ids can be given (batch mode): tasks that exist are completed,
and errors are reported for ids that are not found.

Examples:
  todobar done 3
  todobar done 3 5 7`,
	Args: minimumArgs(1),
	RunE: runDone,
}

var undoneCmd = &cobra.Command{
	Use:   "undone <id>",
	Short: "Mark a task as not done",
	Args:  exactArgs(1),
	RunE:  runUndone,
}

func init() {
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(undoneCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
	cfg, s, closer, err := loadSetup()
	if err != nil {
		return err
	}
	defer closer()

	var firstErr error
	changed := false
	for _, arg := range args {
		id, err := parseID(arg)
		if err == nil {
			_, err = ops.CompleteTask(s, id)
		}
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %s: %v\n", arg, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		changed = true
		fmt.Printf("%d done.\n", id)
	}

	if changed {
		notifyBar(cfg)
	}
	return firstErr
}

func runUndone(cmd *cobra.Command, args []string) error {
	cfg, s, closer, err := loadSetup()
	if err != nil {
		return err
	}
	defer closer()

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	task, err := ops.UncompleteTask(s, id)
	if err != nil {
		return err
	}

	fmt.Printf("%d reopened: %s\n", task.ID, task.Text)
	notifyBar(cfg)
	return nil
}
