package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wbartel/todobar/internal/ops"
)

var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a new task",
	Long: `Add a new task to the list.

If --priority is not specified, uses default_priority from the config
file (3 unless overridden). 1 is the most urgent, 5 the least.

Examples:
  todobar add "buy milk"
  todobar add "file taxes" --priority 1`,
	Args: exactArgs(1),
	RunE: runAdd,
}

var addPriority int

func init() {
	addCmd.Flags().IntVar(&addPriority, "priority", 0, "task priority (1-5)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, s, closer, err := loadSetup()
	if err != nil {
		return err
	}
	defer closer()

	priority := addPriority
	if priority == 0 {
		priority = cfg.DefaultPriority
	}

	task, err := ops.AddTask(s, args[0], priority)
	if err != nil {
		return err
	}

	fmt.Printf("%d %s\n", task.ID, task.Text)
	notifyBar(cfg)
	return nil
}
