package search

import (
	"runtime/debug"

	"github.com/sirupsen/logrus"

	"adminsearch/internal/logging"
)

// Dispatcher routes an activated option to the global and section callbacks
type Dispatcher struct {
	sections     []Section
	onItemSelect SelectFunc
	log          *logrus.Entry
}

// NewDispatcher creates a dispatcher. onItemSelect may be nil.
func NewDispatcher(sections []Section, onItemSelect SelectFunc) *Dispatcher {
	return &Dispatcher{
		sections:     sections,
		onItemSelect: onItemSelect,
		log:          logging.NewLogger("dispatcher"),
	}
}

// Select invokes the callbacks for v and returns how many ran. Headers are
// inert. When several sections share the item type, only the first one in
// configuration order is notified.
func (d *Dispatcher) Select(v OptionValue) int {
	if v.Header || v.ItemType == "" || v.ItemID == "" {
		return 0
	}

	invoked := 0
	if d.onItemSelect != nil {
		d.call("global", d.onItemSelect, v)
		invoked++
	}

	for _, s := range d.sections {
		if s.ItemType != v.ItemType {
			continue
		}
		if s.OnSelect != nil {
			d.call(s.Key, s.OnSelect, v)
			invoked++
		}
		break
	}

	return invoked
}

// SelectString parses the wire form and dispatches it. Malformed values are
// ignored.
func (d *Dispatcher) SelectString(s string) int {
	v, ok := ParseOptionValue(s)
	if !ok {
		d.log.Debugf("Ignoring malformed option value %q", s)
		return 0
	}
	return d.Select(v)
}

func (d *Dispatcher) call(origin string, fn SelectFunc, v OptionValue) {
	defer func() {
		if r := recover(); r != nil {
			d.log.WithFields(logrus.Fields{
				"callback":  origin,
				"item_id":   v.ItemID,
				"item_type": v.ItemType,
			}).Errorf("Select callback panic: %v\nStack: %s", r, debug.Stack())
		}
	}()
	fn(v.ItemID, v.ItemType)
}
