package commands

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"typetrainer/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State *state.AppState
}

// InsertCharCommand inserts an already remapped character at the cursor
type InsertCharCommand struct {
	ctx  *CommandContext
	char rune
}

// NewInsertCharCommand creates a new insert command
func NewInsertCharCommand(ctx *CommandContext, char rune) *InsertCharCommand {
	return &InsertCharCommand{
		ctx:  ctx,
		char: char,
	}
}

// Execute performs the insertion
func (c *InsertCharCommand) Execute() tea.Cmd {
	c.ctx.State.Buffer.Insert(c.char)
	return nil
}

// SubmitCommand offers the typed text to the prompt queue
type SubmitCommand struct {
	ctx *CommandContext
}

// NewSubmitCommand creates a new submit command
func NewSubmitCommand(ctx *CommandContext) *SubmitCommand {
	return &SubmitCommand{ctx: ctx}
}

// Execute attempts the submission. It ends the program once the last
// prompt has been typed.
func (c *SubmitCommand) Execute() tea.Cmd {
	candidate := c.ctx.State.Buffer.Text()
	if !c.ctx.State.Submit() {
		return nil
	}
	log.Printf("Prompt completed: %q (%d left)", candidate, c.ctx.State.Prompts.Len())

	if c.ctx.State.Finished {
		log.Printf("All prompts completed")
		return tea.Quit
	}
	return nil
}

// DeleteCharCommand removes the character before the cursor
type DeleteCharCommand struct {
	ctx *CommandContext
}

// NewDeleteCharCommand creates a new delete command
func NewDeleteCharCommand(ctx *CommandContext) *DeleteCharCommand {
	return &DeleteCharCommand{ctx: ctx}
}

// Execute performs the deletion
func (c *DeleteCharCommand) Execute() tea.Cmd {
	c.ctx.State.Buffer.DeleteBeforeCursor()
	return nil
}

// MoveCursorCommand moves the cursor one character
type MoveCursorCommand struct {
	ctx       *CommandContext
	direction string
}

// NewMoveCursorCommand creates a new cursor movement command
func NewMoveCursorCommand(ctx *CommandContext, direction string) *MoveCursorCommand {
	return &MoveCursorCommand{
		ctx:       ctx,
		direction: direction,
	}
}

// Execute performs the movement
func (c *MoveCursorCommand) Execute() tea.Cmd {
	switch c.direction {
	case "left":
		c.ctx.State.Buffer.MoveLeft()
	case "right":
		c.ctx.State.Buffer.MoveRight()
	}
	return nil
}

// CycleLayoutCommand switches to the next keyboard layout
type CycleLayoutCommand struct {
	ctx *CommandContext
}

// NewCycleLayoutCommand creates a new layout command
func NewCycleLayoutCommand(ctx *CommandContext) *CycleLayoutCommand {
	return &CycleLayoutCommand{ctx: ctx}
}

// Execute performs the layout change
func (c *CycleLayoutCommand) Execute() tea.Cmd {
	layout := c.ctx.State.CycleLayout()
	log.Printf("Keyboard layout changed to %s", layout)
	return nil
}
