package search

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"adminsearch/internal/domain"
	"adminsearch/internal/logging"
)

// DefaultDebounce is the quiet period before a query is executed
const DefaultDebounce = 300 * time.Millisecond

// Provider turns a query into grouped results
type Provider interface {
	Search(ctx context.Context, query string) (domain.SearchResponse, error)
}

// Publisher receives controller events. eventbus.EventBus satisfies it.
type Publisher interface {
	Publish(event domain.DomainEvent)
}

// Timer is a pending scheduled call
type Timer interface {
	Stop() bool
}

// Clock schedules delayed calls
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// State is a snapshot of the search bar state
type State struct {
	Input         string   // raw text as typed
	Query         string   // query the current options were built for
	Loading       bool     // a provider call is outstanding
	Options       []Option // composed rows, never nil
	Misconfigured bool     // sections are missing or invalid
	Seq           uint64   // sequence number of the latest scheduled query
}

// Config configures a Controller
type Config struct {
	Sections []Section
	Provider Provider
	Debounce time.Duration // zero uses DefaultDebounce
	Clock    Clock         // nil uses the real clock
	Composer *Composer     // nil uses plain renderers

	// Normalize rewrites the trimmed query before it reaches the provider
	Normalize func(string) string
	// OnChange is called with a fresh snapshot after every state change.
	// Calls are serialized.
	OnChange  func(State)
	Publisher Publisher
}

// Controller owns the input, loading and option state. It debounces input,
// runs the provider and discards results that are no longer current.
type Controller struct {
	cfg     Config
	log     *logrus.Entry
	misconf bool

	mu       sync.Mutex
	state    State
	seq      uint64
	timer    Timer
	cancel   context.CancelFunc // in-flight provider call
	disposed bool

	ctx     context.Context
	stop    context.CancelFunc
	notifyM sync.Mutex
}

// NewController creates a controller. A configuration without sections, or
// one that fails ValidateSections, produces a misconfigured controller that
// never queries the provider.
func NewController(cfg Config) *Controller {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.Clock == nil {
		cfg.Clock = realClock{}
	}
	if cfg.Composer == nil {
		cfg.Composer = NewComposer(Renderers{})
	}

	log := logging.NewLogger("search")
	ctx, stop := context.WithCancel(context.Background())
	c := &Controller{
		cfg:  cfg,
		log:  log,
		ctx:  ctx,
		stop: stop,
	}

	warnings, err := ValidateSections(cfg.Sections)
	if err != nil {
		log.WithError(err).Warn("Search bar misconfigured")
		c.misconf = true
	}
	for _, w := range warnings {
		log.Warn(w)
	}

	c.state = State{Options: []Option{}, Misconfigured: c.misconf}
	return c
}

// Sections returns the configured sections
func (c *Controller) Sections() []Section {
	return c.cfg.Sections
}

// State returns a snapshot of the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Controller) snapshot() State {
	s := c.state
	s.Options = append([]Option(nil), c.state.Options...)
	if s.Options == nil {
		s.Options = []Option{}
	}
	return s
}

// OnInput records new input. Blank input clears the results immediately;
// anything else replaces the pending query and schedules it after the
// debounce interval.
func (c *Controller) OnInput(text string) {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}

	c.state.Input = text
	c.stopPendingLocked()
	c.seq++
	c.state.Seq = c.seq

	if strings.TrimSpace(text) == "" || c.misconf {
		c.state.Options = []Option{}
		c.state.Query = ""
		c.state.Loading = false
		c.mu.Unlock()
		c.notify()
		return
	}

	// Anything in flight was cancelled above
	c.state.Loading = false
	seq := c.seq
	c.timer = c.cfg.Clock.AfterFunc(c.cfg.Debounce, func() {
		c.fire(seq, text)
	})
	c.mu.Unlock()
	c.notify()
}

// Clear resets input and results
func (c *Controller) Clear() {
	c.OnInput("")
}

// Dispose stops all pending and in-flight work. Later input and late
// results are ignored.
func (c *Controller) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}
	c.disposed = true
	c.stopPendingLocked()
	c.stop()
}

func (c *Controller) stopPendingLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// fire runs the query scheduled with seq
func (c *Controller) fire(seq uint64, text string) {
	c.mu.Lock()
	if c.disposed || seq != c.seq {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	ctx, cancel := context.WithCancel(c.ctx)
	c.cancel = cancel
	c.state.Loading = true
	c.mu.Unlock()
	c.notify()
	defer cancel()

	query := strings.TrimSpace(text)
	if c.cfg.Normalize != nil {
		query = c.cfg.Normalize(query)
	}

	start := time.Now()
	resp, err := c.search(ctx, query)
	failed := err != nil

	var options []Option
	if failed {
		c.log.WithFields(logrus.Fields{
			"query": query,
			"seq":   seq,
		}).WithError(err).Warn("Search failed")
		options = []Option{}
	} else {
		options = c.cfg.Composer.Compose(c.cfg.Sections, query, resp)
	}

	c.mu.Lock()
	if c.disposed || seq != c.seq {
		c.mu.Unlock()
		c.log.WithField("seq", seq).Debug("Discarding stale search result")
		return
	}
	c.cancel = nil
	c.state.Options = options
	c.state.Query = query
	c.state.Loading = false
	c.mu.Unlock()

	c.log.WithFields(logrus.Fields{
		"query":   query,
		"seq":     seq,
		"options": len(options),
		"took":    time.Since(start),
	}).Debug("Search applied")

	c.notify()
	if c.cfg.Publisher != nil {
		c.cfg.Publisher.Publish(domain.SearchCompletedEvent{
			Query:   query,
			Seq:     seq,
			Options: len(options),
			Failed:  failed,
		})
	}
}

// search calls the provider, turning panics into errors. Sections that all
// carry static items need no provider call.
func (c *Controller) search(ctx context.Context, query string) (resp domain.SearchResponse, err error) {
	if !needsProvider(c.cfg.Sections) {
		return domain.SearchResponse{}, nil
	}
	if c.cfg.Provider == nil {
		return nil, fmt.Errorf("no search provider configured")
	}

	defer func() {
		if r := recover(); r != nil {
			c.log.Errorf("Search provider panic: %v\nStack: %s", r, debug.Stack())
			resp, err = nil, fmt.Errorf("search provider panic: %v", r)
		}
	}()

	resp, err = c.cfg.Provider.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	if resp == nil {
		resp = domain.SearchResponse{}
	}
	return resp, nil
}

// notify delivers the current snapshot. Serialized so the last delivered
// snapshot is always the latest state.
func (c *Controller) notify() {
	if c.cfg.OnChange == nil {
		return
	}
	c.notifyM.Lock()
	defer c.notifyM.Unlock()
	c.cfg.OnChange(c.State())
}
