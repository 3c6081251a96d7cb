package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"adminsearch/internal/eventbus"
	"adminsearch/internal/logging"
	"adminsearch/internal/router"
	"adminsearch/internal/search"
	"adminsearch/internal/ui/views"
)

// Options wires the model to the search core
type Options struct {
	Controller  *search.Controller
	Dispatcher  *search.Dispatcher
	Pages       *router.Pages
	Renderer    *views.Renderer // nil uses default styles
	Placeholder string
	InputWidth  int
	Provider    string // name shown in the title bar
}

// Model represents the UI state
type Model struct {
	controller *search.Controller
	dispatcher *search.Dispatcher
	pages      *router.Pages
	renderer   *views.Renderer
	pager      Pager
	log        *logrus.Entry

	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	state    search.State
	cursor   int // index into state.Options, -1 when nothing is selectable
	provider string

	width         int
	height        int
	statusMessage string
	statusIsError bool
	inPagerMode   bool

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	ti := textinput.New()
	ti.Placeholder = opts.Placeholder
	ti.Prompt = "🔍 "
	if opts.InputWidth > 0 {
		ti.Width = opts.InputWidth
	}
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	renderer := opts.Renderer
	if renderer == nil {
		renderer = views.NewRenderer(nil)
	}

	return &Model{
		controller: opts.Controller,
		dispatcher: opts.Dispatcher,
		pages:      opts.Pages,
		renderer:   renderer,
		log:        logging.NewLogger("ui"),
		input:      ti,
		spinner:    sp,
		help:       help.New(),
		keys:       newKeyMap(),
		state:      opts.Controller.State(),
		cursor:     -1,
		provider:   opts.Provider,
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	if m.pager == nil {
		m.pager = NewOvPager(p)
	}
}

// SetPager replaces the detail page pager
func (m *Model) SetPager(p Pager) {
	m.pager = p
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		return m.handleKey(msg)

	case SearchStateMsg:
		// A snapshot taken before the latest keystroke is stale
		if msg.State.Seq < m.state.Seq {
			return m, nil
		}
		m.applyState(msg.State)
		return m, nil

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case detailPagerMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).WithField("path", msg.path).Warn("Detail pager failed")
			return m, m.setStatus(fmt.Sprintf("Failed to open %s: %v", msg.path, msg.err), true)
		}
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		m.statusIsError = false
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.controller.Dispose()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Clear):
		if m.input.Value() != "" {
			m.input.SetValue("")
			m.onInput("")
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Select):
		m.selectCurrent()
		return m, nil
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != prev {
		m.onInput(value)
	}
	return m, cmd
}

// onInput hands the text to the controller and applies the immediate state
func (m *Model) onInput(text string) {
	m.controller.OnInput(text)
	m.applyState(m.controller.State())
}

func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.NavigationRequestedEvent:
		return m.openDetail(e.Path)
	case eventbus.ProviderSelectedEvent:
		m.provider = e.Name
		return nil
	case eventbus.ErrorEvent:
		return m.setStatus(e.Message, true)
	}
	return nil
}

// applyState replaces the displayed state. The cursor is kept on the same
// option when it is still present, otherwise it moves to the first
// selectable option.
func (m *Model) applyState(s search.State) {
	var current search.OptionValue
	hadCursor := m.cursor >= 0 && m.cursor < len(m.state.Options)
	if hadCursor {
		current = m.state.Options[m.cursor].Value
	}

	m.state = s
	m.cursor = -1
	for i, opt := range s.Options {
		if !opt.Selectable() {
			continue
		}
		if m.cursor < 0 {
			m.cursor = i
		}
		if hadCursor && opt.Value == current {
			m.cursor = i
			break
		}
	}
}

// moveCursor moves to the next selectable option in direction dir,
// skipping headers
func (m *Model) moveCursor(dir int) {
	for i := m.cursor + dir; i >= 0 && i < len(m.state.Options); i += dir {
		if m.state.Options[i].Selectable() {
			m.cursor = i
			return
		}
	}
}

func (m *Model) selectCurrent() {
	if m.cursor < 0 || m.cursor >= len(m.state.Options) {
		return
	}
	opt := m.state.Options[m.cursor]
	n := m.dispatcher.Select(opt.Value)
	m.log.WithFields(logrus.Fields{
		"value":     opt.Value.String(),
		"callbacks": n,
	}).Debug("Option selected")
}

// openDetail renders the page for path and shows it in the pager
func (m *Model) openDetail(path string) tea.Cmd {
	if m.pages == nil || m.pager == nil {
		return nil
	}
	pages, pager, program := m.pages, m.pager, m.program
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		content := pages.Render(ctx, path)

		if program != nil {
			program.Send(pauseRenderingMsg{})
		}
		err := pager.Show(content)
		if program != nil {
			program.Send(resumeRenderingMsg{})
		}
		return detailPagerMsg{path: path, err: err}
	}
}

func (m *Model) setStatus(text string, isError bool) tea.Cmd {
	m.statusMessage = text
	m.statusIsError = isError
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// State returns the state currently displayed
func (m *Model) State() search.State {
	return m.state
}

// Cursor returns the index of the highlighted option, -1 if none
func (m *Model) Cursor() int {
	return m.cursor
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	return m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Provider:      m.provider,
		Input:         m.input.View(),
		Query:         m.state.Query,
		HasInput:      m.input.Value() != "",
		Loading:       m.state.Loading,
		Spinner:       m.spinner.View(),
		Options:       m.state.Options,
		Cursor:        m.cursor,
		Misconfigured: m.state.Misconfigured,
		StatusMessage: m.statusMessage,
		StatusIsError: m.statusIsError,
		Help:          m.help.View(m.keys),
	})
}
