package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"adminsearch/internal/search"
)

// MisconfiguredText is shown instead of results when no sections exist
const MisconfiguredText = "No sections provided"

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Provider      string
	Input         string // rendered text input
	Query         string // query the options were built for
	HasInput      bool
	Loading       bool
	Spinner       string
	Options       []search.Option
	Cursor        int
	Misconfigured bool
	StatusMessage string
	StatusIsError bool
	Help          string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	if styles == nil {
		styles = NewStyles()
	}
	return &Renderer{styles: styles}
}

// Styles returns the renderer styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.titleLine(state))
	content.WriteString("\n")
	content.WriteString(r.styles.Input.Render(state.Input))
	content.WriteString("\n")

	if dropdown := r.renderDropdown(state); dropdown != "" {
		content.WriteString(r.styles.Dropdown.Render(dropdown))
		content.WriteString("\n")
	}

	if state.StatusMessage != "" {
		style := r.styles.StatusMessage
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		content.WriteString(style.Render(state.StatusMessage))
		content.WriteString("\n")
	}

	// Push help to the bottom
	if state.Help != "" {
		currentLines := strings.Count(content.String(), "\n") + 1
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22
		}
		if padding := availableLines - currentLines - 1; padding > 0 {
			content.WriteString(strings.Repeat("\n", padding))
		}
		content.WriteString(r.styles.Help.Render(state.Help))
	}

	return r.styles.Main.Render(content.String())
}

// titleLine renders the title with the provider and loading indicator
// right-aligned
func (r *Renderer) titleLine(state ViewState) string {
	logo := r.styles.Title.Render("adminsearch")

	var indicators []string
	if state.Loading {
		indicators = append(indicators, fmt.Sprintf("%s Searching", state.Spinner))
	}
	if state.Provider != "" {
		indicators = append(indicators, r.styles.Provider.Render("["+state.Provider+"]"))
	}
	if len(indicators) == 0 {
		return logo
	}

	rightContent := r.styles.Dim.Render(strings.Join(indicators, "  "))
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	availableWidth := termWidth - 4 // main container padding
	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + rightContent
	}
	return logo + "  " + rightContent
}

// renderDropdown renders the result list, or a one-line notice when there
// is nothing to list. Empty when the dropdown should be hidden.
func (r *Renderer) renderDropdown(state ViewState) string {
	switch {
	case state.Misconfigured:
		return r.styles.Placeholder.Render(MisconfiguredText)
	case !state.HasInput:
		return ""
	case len(state.Options) == 0 && state.Loading:
		return r.styles.Dim.Render("Searching...")
	case len(state.Options) == 0:
		if state.Query == "" {
			return ""
		}
		return r.styles.Dim.Render(fmt.Sprintf("No results for %q", state.Query))
	}

	lines := make([]string, 0, len(state.Options))
	cursorLine := 0
	for i, opt := range state.Options {
		if !opt.Selectable() {
			// Header labels may carry their own leading spacing
			lines = append(lines, strings.Split(opt.Label, "\n")...)
			continue
		}
		if i == state.Cursor {
			cursorLine = len(lines)
			lines = append(lines, r.styles.Selected.Render("> "+opt.Label))
		} else {
			lines = append(lines, r.styles.Item.Render("  "+opt.Label))
		}
	}

	return strings.Join(visibleWindow(lines, cursorLine, r.maxRows(state.Height)), "\n")
}

func (r *Renderer) maxRows(height int) int {
	// title, input box, dropdown border, status and help
	rows := height - 12
	if rows < 5 {
		rows = 5
	}
	return rows
}

// visibleWindow keeps the cursor line in view when the list is too long
func visibleWindow(lines []string, cursor, maxRows int) []string {
	if len(lines) <= maxRows {
		return lines
	}
	start := cursor - maxRows/2
	if start < 0 {
		start = 0
	}
	if start+maxRows > len(lines) {
		start = len(lines) - maxRows
	}
	return lines[start : start+maxRows]
}
