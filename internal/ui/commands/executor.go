package commands

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"typetrainer/internal/ui/input/types"
	"typetrainer/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State: state,
		},
	}
}

// Execute runs the command for action and returns its follow-up, if any
func (e *Executor) Execute(action types.Action) tea.Cmd {
	var cmd Command
	switch a := action.(type) {
	case types.InsertCharAction:
		cmd = NewInsertCharCommand(e.ctx, a.Char)
	case types.SubmitAction:
		cmd = NewSubmitCommand(e.ctx)
	case types.DeleteCharAction:
		cmd = NewDeleteCharCommand(e.ctx)
	case types.MoveCursorAction:
		cmd = NewMoveCursorCommand(e.ctx, a.Direction)
	case types.CycleLayoutAction:
		cmd = NewCycleLayoutCommand(e.ctx)
	case types.QuitAction:
		log.Printf("Quit requested (force=%t)", a.Force)
		return tea.Quit
	default:
		log.Printf("Unhandled action: %s", action.Type())
		return nil
	}
	return cmd.Execute()
}

// ExecuteAll runs actions in order, stopping early once one asks to quit
// so no further keystroke is applied after the session ended.
func (e *Executor) ExecuteAll(actions []types.Action) tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		cmd := e.Execute(action)
		if cmd == nil {
			continue
		}
		cmds = append(cmds, cmd)
		if _, quit := action.(types.QuitAction); quit || e.ctx.State.Finished {
			break
		}
	}

	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}
