package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// Pager shows long text outside the search bar
type Pager interface {
	Show(content string) error
}

// OvPager shows content in the ov pager
type OvPager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewOvPager creates a pager bound to the running program
func NewOvPager(program *tea.Program) *OvPager {
	return &OvPager{program: program}
}

// Show releases the terminal, runs ov on content and restores the terminal
func (o *OvPager) Show(content string) error {
	if o.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := o.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = o.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
