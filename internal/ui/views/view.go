package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"typetrainer/internal/keyboard"
	"typetrainer/internal/ui/logic"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width     int
	Height    int
	Editing   bool
	Layout    keyboard.Layout
	Segments  []logic.Segment
	Cursor    int // rune offset into the current prompt, used while editing
	Completed int
	HelpModel help.Model
	Bindings  []key.Binding
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{
		styles: NewStyles(),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80 // Default terminal width
	}
	columnWidth := width / 2
	if columnWidth < 30 {
		columnWidth = width - 4
	}

	var blocks []string
	blocks = append(blocks, r.styles.Title.Render("typetrainer"))
	blocks = append(blocks, r.RenderStatus(state.Editing, state.Layout, state.Completed))
	blocks = append(blocks, r.styles.PromptBox.Width(columnWidth).Render(r.RenderPrompt(state.Segments, state.Cursor, state.Editing)))
	blocks = append(blocks, r.RenderKeyboard(state.Layout))
	blocks = append(blocks, r.styles.Help.Render(state.HelpModel.ShortHelpView(state.Bindings)))

	column := lipgloss.JoinVertical(lipgloss.Left, blocks...)
	content := lipgloss.PlaceHorizontal(width-4, lipgloss.Center, column)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content)
}

// RenderStatus renders the mode and layout line
func (r *Renderer) RenderStatus(editing bool, layout keyboard.Layout, completed int) string {
	if editing {
		return r.styles.StatusEdit.Render(fmt.Sprintf("Editing: Current layout: %s", layout)) +
			r.styles.Help.Render(fmt.Sprintf("  (%d done)", completed))
	}
	return r.styles.StatusView.Render(fmt.Sprintf("Viewing: Current layout: %s", layout)) +
		r.styles.Help.Render(fmt.Sprintf("  (%d done)", completed))
}

// RenderPrompt styles the diff segments. While editing, the character at
// the cursor is highlighted, or a blank cell after the prompt when the
// cursor sits past its end.
func (r *Renderer) RenderPrompt(segments []logic.Segment, cursor int, editing bool) string {
	var b strings.Builder
	position := 0
	cursorShown := !editing

	for _, seg := range segments {
		if seg.Kind == logic.Preview {
			if !cursorShown {
				b.WriteString(r.styles.Cursor.Render(" "))
				cursorShown = true
			}
			b.WriteString(r.styles.ForSegment(seg.Kind).Render(seg.Text))
			continue
		}

		style := r.styles.ForSegment(seg.Kind)
		if !cursorShown && position == cursor {
			style = style.Inherit(r.styles.Cursor)
			cursorShown = true
		}
		b.WriteString(style.Render(seg.Text))
		position++
	}

	if !cursorShown {
		b.WriteString(r.styles.Cursor.Render(" "))
	}
	return b.String()
}

// RenderKeyboard draws the unshifted rows of the active layout
func (r *Renderer) RenderKeyboard(layout keyboard.Layout) string {
	rows := keyboard.Rows(layout)
	lines := make([]string, 0, len(rows))
	for i, row := range rows {
		caps := make([]string, 0, len(row))
		for _, c := range row {
			caps = append(caps, string(c))
		}
		// stagger rows like a physical board
		lines = append(lines, strings.Repeat(" ", i)+r.styles.KeyCap.Render(strings.Join(caps, " ")))
	}

	box := r.styles.KeyboardBox.Render(strings.Join(lines, "\n"))
	title := r.styles.Help.Render(layout.String())
	return lipgloss.JoinVertical(lipgloss.Left, title, box)
}
