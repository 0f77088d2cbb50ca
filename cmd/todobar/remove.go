package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wbartel/todobar/internal/ops"
)

var removeCmd = &cobra.Command{
	Use:     "remove <id>...",
	Aliases: []string{"rm"},
	Short:   "Delete task(s)",
	Long: `Delete one or more tasks permanently.

The ids of the remaining tasks are unchanged, and a deleted id is never
handed out again.

Examples:
  todobar remove 2
  todobar rm 2 6`,
	Args: minimumArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
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
			err = ops.RemoveTask(s, id)
		}
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %s: %v\n", arg, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		changed = true
		fmt.Printf("%d removed.\n", id)
	}

	if changed {
		notifyBar(cfg)
	}
	return firstErr
}
