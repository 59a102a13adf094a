package types

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }

// Layout actions
type CycleLayoutAction struct{}

func (a CycleLayoutAction) Type() string { return "cycle_layout" }

// Text input actions
type InsertCharAction struct {
	Char rune // already remapped to the active layout
}

func (a InsertCharAction) Type() string { return "insert_char" }

type SubmitAction struct{}

func (a SubmitAction) Type() string { return "submit" }

type DeleteCharAction struct{}

func (a DeleteCharAction) Type() string { return "delete_char" }

type MoveCursorAction struct {
	Direction string // "left" or "right"
}

func (a MoveCursorAction) Type() string { return "move_cursor" }
