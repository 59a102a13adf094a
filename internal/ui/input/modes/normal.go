package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"typetrainer/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, types.Keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, types.Keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true

	case key.Matches(msg, types.Keys.Edit):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeEditing}}, true

	case key.Matches(msg, types.Keys.CycleLayout):
		return []types.Action{types.CycleLayoutAction{}}, true
	}

	return nil, false
}
