package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wbartel/todobar/internal/statusbar"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the waybar JSON payload",
	Long: `Print the JSON object waybar expects from a custom module:
{"text": ..., "tooltip": ..., "class": "todo"}.

The text is the currently rotated pending task; the tooltip lists every
task. Wire it up as the module's exec command.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, s, closer, err := loadSetup()
	if err != nil {
		return err
	}
	defer closer()

	st, err := s.Load()
	if err != nil {
		return err
	}
	payload := statusbar.Render(st, cfg, time.Now())
	return payload.WriteJSON(os.Stdout)
}
