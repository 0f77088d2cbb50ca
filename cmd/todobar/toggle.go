package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wbartel/todobar/internal/cli"
	"github.com/wbartel/todobar/internal/model"
	"github.com/wbartel/todobar/internal/ops"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle [<id>]",
	Short: "Flip a task between done and pending",
	Long: `Flip the done flag of a task.

With --top, toggles the task currently shown in the status bar instead
of taking an id. This is the left-click handler for the bar module.

Examples:
  todobar toggle 4
  todobar toggle --top`,
	RunE: runToggle,
}

var toggleTop bool

func init() {
	toggleCmd.Flags().BoolVar(&toggleTop, "top", false, "toggle the task currently on the bar")
	rootCmd.AddCommand(toggleCmd)
}

func runToggle(cmd *cobra.Command, args []string) error {
	if toggleTop == (len(args) == 1) {
		return &cli.ValidationError{Message: "toggle takes either an id or --top"}
	}

	cfg, s, closer, err := loadSetup()
	if err != nil {
		return err
	}
	defer closer()

	var task model.Task
	if toggleTop {
		rotation := time.Duration(cfg.RotationSeconds) * time.Second
		task, err = ops.ToggleTop(s, rotation, time.Now())
	} else {
		var id int
		id, err = parseID(args[0])
		if err == nil {
			task, err = ops.ToggleTask(s, id)
		}
	}
	if err != nil {
		return err
	}

	state := "pending"
	if task.Done {
		state = "done"
	}
	fmt.Printf("%d %s: %s\n", task.ID, state, task.Text)
	notifyBar(cfg)
	return nil
}
