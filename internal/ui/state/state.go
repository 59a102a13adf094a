package state

import (
	"typetrainer/internal/domain"
	"typetrainer/internal/keyboard"
)

// AppState contains all the session state
type AppState struct {
	Layout  keyboard.Layout     // active keyboard layout
	Buffer  *domain.InputBuffer // text typed for the current prompt
	Prompts *domain.PromptQueue // current and upcoming prompts

	// UI state
	Width    int
	Height   int
	Finished bool // every prompt has been submitted
}

// NewAppState creates the state for a session over prompts
func NewAppState(prompts []string, layout keyboard.Layout) *AppState {
	return &AppState{
		Layout:  layout,
		Buffer:  domain.NewInputBuffer(),
		Prompts: domain.NewPromptQueue(prompts),
	}
}

// CycleLayout advances to the next keyboard layout and returns it
func (s *AppState) CycleLayout() keyboard.Layout {
	s.Layout = s.Layout.Next()
	return s.Layout
}

// Submit offers the buffer to the prompt queue and clears the buffer
// when it is accepted.
func (s *AppState) Submit() bool {
	if !s.Prompts.TrySubmit(s.Buffer.Text()) {
		return false
	}
	s.Buffer.Clear()
	if s.Prompts.Empty() {
		s.Finished = true
	}
	return true
}
