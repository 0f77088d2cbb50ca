package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wbartel/todobar/internal/cli"
	"github.com/wbartel/todobar/internal/ops"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the wofi/rofi management menu",
	Long: `Open an interactive menu (wofi or rofi, whichever is installed) to
toggle tasks, add a new one, clear completed tasks, or reset the bar
rotation. This is the right-click handler for the bar module.

Without a menu program, falls back to prompting on the terminal.`,
	Args: exactArgs(0),
	RunE: runMenuCommand,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

// Menu action rows appended after the task list.
const (
	menuAddRow   = "[+] Add task"
	menuClearRow = "[!] Clear completed"
	menuResetRow = "[0] Reset view"
)

func runMenuCommand(cmd *cobra.Command, args []string) error {
	cfg, s, closer, err := loadSetup()
	if err != nil {
		return err
	}
	defer closer()

	st, err := s.Load()
	if err != nil {
		return err
	}

	var options []string
	for _, t := range ops.SortTasks(st.Tasks) {
		mark := "[ ]"
		if t.Done {
			mark = "[x]"
		}
		options = append(options, fmt.Sprintf("%s P%d %s  #%d", mark, t.Priority, t.Text, t.ID))
	}
	if len(options) > 0 {
		options = append(options, "---")
	}
	options = append(options, menuAddRow, menuClearRow, menuResetRow)

	choice, err := runMenu(options, "Todo")
	if err != nil {
		return err
	}
	if choice == "" {
		return nil // dismissed
	}

	changed := false
	switch {
	case choice == menuAddRow:
		changed, err = menuAdd(s, cfg.DefaultPriority)
	case choice == menuClearRow:
		_, err = ops.ClearDone(s)
		changed = err == nil
	case choice == menuResetRow:
		err = ops.ResetView(s)
		changed = err == nil
	case strings.Contains(choice, "#"):
		raw := strings.TrimSpace(choice[strings.LastIndex(choice, "#")+1:])
		id, perr := parseID(raw)
		if perr != nil {
			return perr
		}
		_, err = ops.ToggleTask(s, id)
		if err == nil {
			err = ops.ResetView(s)
		}
		changed = err == nil
	}
	if err != nil {
		return err
	}

	if changed {
		notifyBar(cfg)
	}
	return nil
}

// menuAdd prompts for a title and priority and creates the task.
func menuAdd(s ops.Store, defaultPriority int) (bool, error) {
	title, err := promptInput("New todo")
	if err != nil || title == "" {
		return false, err
	}

	priority := defaultPriority
	if raw, err := promptInput("Priority 1-5 (1=high)"); err == nil && raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			priority = n
		}
	}

	if _, err := ops.AddTask(s, title, priority); err != nil {
		return false, err
	}
	return true, nil
}

// detectMenu returns the first available menu program, or "".
func detectMenu() string {
	for _, candidate := range []string{"wofi", "rofi"} {
		if _, err := exec.LookPath(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// menuCommand builds the dmenu-mode invocation for the given program.
func menuCommand(program, prompt string) *exec.Cmd {
	if program == "wofi" {
		return exec.Command("wofi", "--dmenu", "--prompt", prompt)
	}
	return exec.Command("rofi", "-dmenu", "-p", prompt)
}

// runMenu shows the options and returns the chosen line, or "" when the
// menu was dismissed.
func runMenu(options []string, prompt string) (string, error) {
	program := detectMenu()
	if program == "" {
		return "", &cli.ValidationError{Message: "no menu program found (install wofi or rofi)"}
	}

	cmd := menuCommand(program, prompt)
	cmd.Stdin = strings.NewReader(strings.Join(options, "\n"))
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		// Non-zero exit means the user dismissed the menu.
		if _, ok := err.(*exec.ExitError); ok {
			return "", nil
		}
		return "", fmt.Errorf("failed to run %s: %w", program, err)
	}
	return strings.TrimSpace(out.String()), nil
}

// promptInput asks for a free-form line, via the menu program when one
// exists, else on the terminal.
func promptInput(prompt string) (string, error) {
	if program := detectMenu(); program != "" {
		cmd := menuCommand(program, prompt)
		cmd.Stdin = strings.NewReader("")
		var out bytes.Buffer
		cmd.Stdout = &out
		if err := cmd.Run(); err != nil {
			if _, ok := err.(*exec.ExitError); ok {
				return "", nil
			}
			return "", fmt.Errorf("failed to run %s: %w", program, err)
		}
		return strings.TrimSpace(out.String()), nil
	}

	fmt.Printf("%s: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", nil
	}
	return strings.TrimSpace(line), nil
}
