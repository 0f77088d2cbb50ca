package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wbartel/todobar/internal/cli"
	"github.com/wbartel/todobar/internal/ops"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks in insertion order, one per line.

  --filter all       every task (default)
  --filter pending   only tasks not yet done
  --filter done      only completed tasks`,
	RunE: runList,
}

var listFilter string

func init() {
	listCmd.Flags().StringVar(&listFilter, "filter", "all", "filter tasks (all|pending|done)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	filter, err := ops.ParseFilter(listFilter)
	if err != nil {
		return err
	}

	cfg, s, closer, err := loadSetup()
	if err != nil {
		return err
	}
	defer closer()

	tasks, err := ops.ListTasks(s, filter)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	table := cli.NewTable()
	for _, t := range tasks {
		glyph := cfg.PendingGlyph
		text := t.Text
		if t.Done {
			glyph = cfg.DoneGlyph
			text = cli.Gray(text)
		}
		table.AddRow(
			fmt.Sprintf("%d", t.ID),
			glyph,
			cli.PriorityColor(t.Priority, fmt.Sprintf("P%d", t.Priority)),
			text,
		)
	}
	table.Render(os.Stdout)
	return nil
}
