package ui

import (
	"adminsearch/internal/eventbus"
	"adminsearch/internal/search"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// SearchStateMsg carries a controller state snapshot into the program
type SearchStateMsg struct {
	State search.State
}

// detailPagerMsg contains the result of showing a detail page
type detailPagerMsg struct {
	path string
	err  error
}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
