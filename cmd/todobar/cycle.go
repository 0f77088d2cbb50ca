package main

import (
	"github.com/spf13/cobra"

	"github.com/wbartel/todobar/internal/ops"
)

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Advance the status-bar rotation to the next pending task",
	RunE:  runCycle,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the status-bar rotation to the first pending task",
	RunE:  runReset,
}

func init() {
	rootCmd.AddCommand(cycleCmd)
	rootCmd.AddCommand(resetCmd)
}

func runCycle(cmd *cobra.Command, args []string) error {
	cfg, s, closer, err := loadSetup()
	if err != nil {
		return err
	}
	defer closer()

	if err := ops.CycleView(s); err != nil {
		return err
	}
	notifyBar(cfg)
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	cfg, s, closer, err := loadSetup()
	if err != nil {
		return err
	}
	defer closer()

	if err := ops.ResetView(s); err != nil {
		return err
	}
	notifyBar(cfg)
	return nil
}
