package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wbartel/todobar/internal/ops"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all completed tasks",
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	cfg, s, closer, err := loadSetup()
	if err != nil {
		return err
	}
	defer closer()

	removed, err := ops.ClearDone(s)
	if err != nil {
		return err
	}

	switch removed {
	case 0:
		fmt.Println("Nothing to clear.")
	case 1:
		fmt.Println("Cleared 1 task.")
	default:
		fmt.Printf("Cleared %d tasks.\n", removed)
	}
	if removed > 0 {
		notifyBar(cfg)
	}
	return nil
}
