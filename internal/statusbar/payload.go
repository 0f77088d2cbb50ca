// Package statusbar renders store state for the status-bar module.
package statusbar

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/wbartel/todobar/internal/model"
	"github.com/wbartel/todobar/internal/ops"
	"github.com/wbartel/todobar/internal/storage"
)

// Payload is the JSON document waybar expects from a custom module.
type Payload struct {
	Text    string `json:"text"`
	Tooltip string `json:"tooltip"`
	Class   string `json:"class"`
}

// moduleClass is the CSS class the bar stylesheet targets.
const moduleClass = "todo"

// tooltipHint is appended below the task list in the tooltip.
const tooltipHint = "Left click: cycle | Right click: manage | Middle click: reset view"

// Line returns the single-line bar text: the currently rotated pending
// task, or a placeholder when the list is empty or fully done.
func Line(st *model.State, cfg *storage.Config, now time.Time) string {
	rotation := time.Duration(cfg.RotationSeconds) * time.Second
	task := ops.DisplayTask(st, rotation, now)
	if task == nil {
		return cfg.PendingGlyph + " No todos"
	}
	return fmt.Sprintf("%s P%d %s", cfg.PendingGlyph, task.Priority, task.Text)
}

// Tooltip returns the multi-line hover text: every task in sort order
// with a done/pending glyph, then the click hints.
func Tooltip(st *model.State, cfg *storage.Config) string {
	var lines []string
	tasks := ops.SortTasks(st.Tasks)
	if len(tasks) == 0 {
		lines = append(lines, "No todos yet. Right click to add one.")
	} else {
		for _, t := range tasks {
			glyph := cfg.PendingGlyph
			if t.Done {
				glyph = cfg.DoneGlyph
			}
			lines = append(lines, fmt.Sprintf("%s P%d %s", glyph, t.Priority, t.Text))
		}
	}
	lines = append(lines, "", tooltipHint)
	return strings.Join(lines, "\n")
}

// Render builds the waybar payload for the current state. Side-effect-free.
func Render(st *model.State, cfg *storage.Config, now time.Time) Payload {
	return Payload{
		Text:    Line(st, cfg, now),
		Tooltip: Tooltip(st, cfg),
		Class:   moduleClass,
	}
}

// WriteJSON writes the payload to w as a single JSON object, the format
// waybar reads from a custom module's stdout.
func (p Payload) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	return enc.Encode(p)
}

// Summary returns the plain one-line pending count for bars that take
// raw text instead of JSON.
func Summary(st *model.State) string {
	n := len(ops.Pending(st.Tasks))
	switch n {
	case 0:
		return "0 pending"
	case 1:
		return "1 pending"
	default:
		return fmt.Sprintf("%d pending", n)
	}
}
