package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"typetrainer/internal/config"
	"typetrainer/internal/keyboard"
	"typetrainer/internal/ui/commands"
	"typetrainer/internal/ui/input"
	inputtypes "typetrainer/internal/ui/input/types"
	"typetrainer/internal/ui/logic"
	"typetrainer/internal/ui/state"
	"typetrainer/internal/ui/views"
)

// Model is the typing session. It owns all session state and handles one
// message at a time: keys go through the input handler, the resulting
// actions through the executor, and View renders the outcome.
type Model struct {
	config *config.Config
	state  *state.AppState

	help help.Model

	// Handlers
	renderer     *views.Renderer    // view renderer
	cmdExecutor  *commands.Executor // command executor
	inputHandler *input.Handler     // input handling
}

// NewModel creates a session over prompts, starting in the configured layout
func NewModel(cfg *config.Config, prompts []string) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	layout, err := keyboard.ParseLayout(cfg.Layout)
	if err != nil {
		log.Printf("Falling back to %s: %v", layout, err)
	}

	appState := state.NewAppState(prompts, layout)
	return &Model{
		config:       cfg,
		state:        appState,
		help:         help.New(),
		renderer:     views.NewRenderer(),
		cmdExecutor:  commands.NewExecutor(appState),
		inputHandler: input.New(),
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if m.state.Finished {
			return m, nil
		}
		actions := m.inputHandler.HandleKey(msg, m)
		return m, m.cmdExecutor.ExecuteAll(actions)
	}

	return m, nil
}

// View renders the session
func (m *Model) View() string {
	if m.state.Finished {
		return "All prompts completed.\n"
	}

	editing := m.inputHandler.CurrentMode() == inputtypes.ModeEditing
	return m.renderer.Render(views.ViewState{
		Width:     m.state.Width,
		Height:    m.state.Height,
		Editing:   editing,
		Layout:    m.state.Layout,
		Segments:  m.segments(),
		Cursor:    m.state.Buffer.Cursor(),
		Completed: len(m.state.Prompts.History()),
		HelpModel: m.help,
		Bindings:  inputtypes.Keys.HelpFor(m.inputHandler.CurrentMode()),
	})
}

func (m *Model) segments() []logic.Segment {
	prompts := m.state.Prompts
	return logic.CollectSegments(prompts.Current(), m.state.Buffer.Text(), prompts.Peek(logic.MaxPreview))
}

// Layout returns the active keyboard layout
func (m *Model) Layout() keyboard.Layout {
	return m.state.Layout
}

// Mode returns the current input mode
func (m *Model) Mode() inputtypes.Mode {
	return m.inputHandler.CurrentMode()
}

// Input returns the text typed so far for the current prompt
func (m *Model) Input() string {
	return m.state.Buffer.Text()
}

// Cursor returns the cursor offset into the typed text
func (m *Model) Cursor() int {
	return m.state.Buffer.Cursor()
}

// CurrentPrompt returns the prompt being typed
func (m *Model) CurrentPrompt() string {
	return m.state.Prompts.Current()
}

// History returns the completed prompts in order
func (m *Model) History() []string {
	return m.state.Prompts.History()
}

// Finished reports whether every prompt has been typed
func (m *Model) Finished() bool {
	return m.state.Finished
}

// ReviewOnExit reports whether completed prompts should be paged after quitting
func (m *Model) ReviewOnExit() bool {
	return m.config.UISettings.ReviewOnExit && len(m.History()) > 0
}
