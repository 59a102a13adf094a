package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"typetrainer/internal/keyboard"
	"typetrainer/internal/ui/input/types"
)

// EditingMode turns keystrokes into buffer edits and submission attempts.
// Typed characters are remapped through the active layout before insertion;
// space never reaches the buffer.
type EditingMode struct{}

func NewEditingMode() *EditingMode {
	return &EditingMode{}
}

func (m *EditingMode) Name() string {
	return "editing"
}

func (m *EditingMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *EditingMode) Exit(ctx types.Context) []types.Action {
	return nil // the buffer survives leaving the mode
}

func (m *EditingMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, types.Keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, types.Keys.Back):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case key.Matches(msg, types.Keys.Submit):
		return []types.Action{types.SubmitAction{}}, true

	case key.Matches(msg, types.Keys.Erase):
		return []types.Action{types.DeleteCharAction{}}, true

	case key.Matches(msg, types.Keys.Left):
		return []types.Action{types.MoveCursorAction{Direction: "left"}}, true

	case key.Matches(msg, types.Keys.Right):
		return []types.Action{types.MoveCursorAction{Direction: "right"}}, true
	}

	if msg.Type != tea.KeyRunes || msg.Alt {
		return nil, false
	}

	// Pasted text arrives as several runes in one message
	actions := make([]types.Action, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		if r == ' ' {
			actions = append(actions, types.SubmitAction{})
			continue
		}
		actions = append(actions, types.InsertCharAction{Char: keyboard.MapKey(ctx.Layout(), r)})
	}
	return actions, len(actions) > 0
}
