package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// RenderReview formats the completed prompts, numbered in completion order
func RenderReview(history []string) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	numberStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	var review strings.Builder
	review.WriteString(titleStyle.Render(fmt.Sprintf("Session review: %d prompts completed", len(history))))
	review.WriteString("\n\n")

	width := len(fmt.Sprint(len(history)))
	for i, prompt := range history {
		review.WriteString(fmt.Sprintf("  %s  %s\n", numberStyle.Render(fmt.Sprintf("%*d", width, i+1)), prompt))
	}

	return review.String()
}

// ShowReviewInPager shows the completed prompts using the ov pager. It
// takes over the terminal, so it must only run after the program exits.
func ShowReviewInPager(history []string) error {
	root, err := oviewer.NewRoot(strings.NewReader(RenderReview(history)))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with the shell)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
