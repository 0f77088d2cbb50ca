package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wbartel/todobar/internal/statusbar"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print a one-line pending count",
	Long: `Print the pending-task count as plain text, for bars that render a
raw string instead of waybar's JSON protocol.`,
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	_, s, closer, err := loadSetup()
	if err != nil {
		return err
	}
	defer closer()

	st, err := s.Load()
	if err != nil {
		return err
	}
	fmt.Println(statusbar.Summary(st))
	return nil
}
