package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wbartel/todobar/internal/cli"
	"github.com/wbartel/todobar/internal/ops"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a task's text or priority",
	Long: `Update an existing task. Only the given flags change.

Examples:
  todobar edit 4 --text "buy oat milk"
  todobar edit 4 --priority 1`,
	Args: exactArgs(1),
	RunE: runEdit,
}

var (
	editText     string
	editPriority int
)

func init() {
	editCmd.Flags().StringVar(&editText, "text", "", "new task text")
	editCmd.Flags().IntVar(&editPriority, "priority", 0, "new priority (1-5)")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	var changes ops.TaskChanges
	if cmd.Flags().Changed("text") {
		changes.Text = &editText
	}
	if cmd.Flags().Changed("priority") {
		changes.Priority = &editPriority
	}
	if changes.Text == nil && changes.Priority == nil {
		return &cli.ValidationError{Message: "nothing to change (use --text and/or --priority)"}
	}

	cfg, s, closer, err := loadSetup()
	if err != nil {
		return err
	}
	defer closer()

	task, err := ops.EditTask(s, id, changes)
	if err != nil {
		return err
	}

	fmt.Printf("%d P%d %s\n", task.ID, task.Priority, task.Text)
	notifyBar(cfg)
	return nil
}
