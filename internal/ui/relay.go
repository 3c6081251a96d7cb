package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"adminsearch/internal/search"
)

// StateRelay forwards controller snapshots to the program without blocking
// the caller. Snapshots are complete, so only the latest pending one is
// delivered.
type StateRelay struct {
	mu      sync.Mutex
	latest  search.State
	pending bool
	signal  chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewStateRelay creates a relay. Start it once the program exists.
func NewStateRelay() *StateRelay {
	return &StateRelay{
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Push stores s as the latest snapshot. Use it as the controller OnChange.
func (r *StateRelay) Push(s search.State) {
	r.mu.Lock()
	r.latest = s
	r.pending = true
	r.mu.Unlock()

	select {
	case r.signal <- struct{}{}:
	default:
	}
}

// Start forwards snapshots to p until Stop is called
func (r *StateRelay) Start(p *tea.Program) {
	go func() {
		for {
			select {
			case <-r.signal:
				r.mu.Lock()
				s, ok := r.latest, r.pending
				r.pending = false
				r.mu.Unlock()
				if ok {
					p.Send(SearchStateMsg{State: s})
				}
			case <-r.done:
				return
			}
		}
	}()
}

// Stop ends forwarding
func (r *StateRelay) Stop() {
	r.once.Do(func() { close(r.done) })
}
