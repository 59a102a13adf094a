package commands

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typetrainer/internal/keyboard"
	"typetrainer/internal/ui/input/types"
	"typetrainer/internal/ui/state"
)

func typeActions(s string) []types.Action {
	var actions []types.Action
	for _, r := range s {
		actions = append(actions, types.InsertCharAction{Char: r})
	}
	return actions
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestExecuteTypingAndSubmit(t *testing.T) {
	s := state.NewAppState([]string{"cat", "dog"}, keyboard.Qwerty)
	e := NewExecutor(s)

	assert.Nil(t, e.ExecuteAll(typeActions("cat")))
	assert.Equal(t, "cat", s.Buffer.Text())

	assert.Nil(t, e.Execute(types.SubmitAction{}))
	assert.Equal(t, "dog", s.Prompts.Current())
	assert.Equal(t, "", s.Buffer.Text())
	assert.Equal(t, []string{"cat"}, s.Prompts.History())
}

func TestExecuteEditing(t *testing.T) {
	s := state.NewAppState([]string{"cat"}, keyboard.Qwerty)
	e := NewExecutor(s)

	e.ExecuteAll(typeActions("ct"))
	e.Execute(types.MoveCursorAction{Direction: "left"})
	e.Execute(types.InsertCharAction{Char: 'a'})
	assert.Equal(t, "cat", s.Buffer.Text())
	assert.Equal(t, 2, s.Buffer.Cursor())

	e.Execute(types.MoveCursorAction{Direction: "right"})
	e.Execute(types.DeleteCharAction{})
	assert.Equal(t, "ca", s.Buffer.Text())
	assert.Equal(t, 2, s.Buffer.Cursor())
}

func TestExecuteCycleLayout(t *testing.T) {
	s := state.NewAppState([]string{"cat"}, keyboard.Qwerty)
	e := NewExecutor(s)

	e.Execute(types.CycleLayoutAction{})
	assert.Equal(t, keyboard.Azerty, s.Layout)
}

func TestExecuteQuit(t *testing.T) {
	s := state.NewAppState([]string{"cat"}, keyboard.Qwerty)
	e := NewExecutor(s)

	assert.True(t, isQuit(e.Execute(types.QuitAction{})))
	assert.True(t, isQuit(e.Execute(types.QuitAction{Force: true})))
}

func TestExecuteLastSubmitQuits(t *testing.T) {
	s := state.NewAppState([]string{"ok"}, keyboard.Qwerty)
	e := NewExecutor(s)

	actions := append(typeActions("ok"), types.SubmitAction{}, types.InsertCharAction{Char: 'z'})
	cmd := e.ExecuteAll(actions)

	require.True(t, isQuit(cmd))
	assert.True(t, s.Finished)
	assert.Equal(t, "", s.Buffer.Text(), "keystrokes after the last prompt are dropped")
}
