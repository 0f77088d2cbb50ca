package statusbar

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbartel/todobar/internal/model"
	"github.com/wbartel/todobar/internal/storage"
)

func testState() *model.State {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	st := model.NewState()
	st.Tasks = []model.Task{
		{ID: st.AllocateID(), Text: "buy milk", Priority: 1, CreatedAt: now},
		{ID: st.AllocateID(), Text: "file taxes", Priority: 3, Done: true, CreatedAt: now},
	}
	return st
}

func TestLine(t *testing.T) {
	cfg := storage.DefaultConfig()
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("shows the rotated pending task", func(t *testing.T) {
		line := Line(testState(), cfg, now)
		assert.Equal(t, "☐ P1 buy milk", line)
	})

	t.Run("placeholder when nothing pending", func(t *testing.T) {
		st := model.NewState()
		assert.Equal(t, "☐ No todos", Line(st, cfg, now))
	})
}

func TestTooltip(t *testing.T) {
	cfg := storage.DefaultConfig()

	t.Run("lists every task with glyphs", func(t *testing.T) {
		tooltip := Tooltip(testState(), cfg)
		lines := strings.Split(tooltip, "\n")
		require.GreaterOrEqual(t, len(lines), 4)
		assert.Equal(t, "☐ P1 buy milk", lines[0])
		assert.Equal(t, "☑ P3 file taxes", lines[1])
		assert.Equal(t, "", lines[2])
		assert.Contains(t, lines[3], "Left click")
	})

	t.Run("empty store shows the getting-started hint", func(t *testing.T) {
		tooltip := Tooltip(model.NewState(), cfg)
		assert.Contains(t, tooltip, "No todos yet")
	})

	t.Run("custom glyphs from config", func(t *testing.T) {
		custom := storage.DefaultConfig()
		custom.PendingGlyph = "-"
		custom.DoneGlyph = "+"
		tooltip := Tooltip(testState(), custom)
		assert.Contains(t, tooltip, "- P1 buy milk")
		assert.Contains(t, tooltip, "+ P3 file taxes")
	})
}

func TestRenderWriteJSON(t *testing.T) {
	cfg := storage.DefaultConfig()
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	payload := Render(testState(), cfg, now)
	assert.Equal(t, "todo", payload.Class)

	var buf bytes.Buffer
	require.NoError(t, payload.WriteJSON(&buf))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, payload.Text, decoded["text"])
	assert.Equal(t, payload.Tooltip, decoded["tooltip"])
	assert.Equal(t, "todo", decoded["class"])
}

func TestSummary(t *testing.T) {
	st := model.NewState()
	assert.Equal(t, "0 pending", Summary(st))

	st = testState()
	assert.Equal(t, "1 pending", Summary(st))

	st.Tasks = append(st.Tasks, model.Task{ID: st.AllocateID(), Text: "water plants", Priority: 3})
	assert.Equal(t, "2 pending", Summary(st))
}
