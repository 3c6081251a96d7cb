// Package router maps selected items to detail page paths and renders the
// detail pages.
package router

import (
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"adminsearch/internal/domain"
	"adminsearch/internal/eventbus"
	"adminsearch/internal/logging"
)

// Path returns the detail page path of an item
func Path(itemType, id string) string {
	escaped := url.PathEscape(id)
	switch itemType {
	case domain.TypeProduct:
		return "/products/" + escaped
	case domain.TypeCategory:
		return "/categories/" + escaped
	default:
		return "/" + url.PathEscape(itemType) + "s/" + escaped
	}
}

// ParsePath splits a detail path into its item type and id
func ParsePath(path string) (itemType, id string, ok bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}

	id, err := url.PathUnescape(parts[1])
	if err != nil {
		return "", "", false
	}
	collection, err := url.PathUnescape(parts[0])
	if err != nil {
		return "", "", false
	}

	switch collection {
	case "products":
		return domain.TypeProduct, id, true
	case "categories":
		return domain.TypeCategory, id, true
	}
	if t, found := strings.CutSuffix(collection, "s"); found && t != "" {
		return t, id, true
	}
	return "", "", false
}

// Router turns selections into navigation requests on the event bus
type Router struct {
	bus eventbus.EventBus
	log *logrus.Entry
}

// New creates a router publishing on bus
func New(bus eventbus.EventBus) *Router {
	return &Router{
		bus: bus,
		log: logging.NewLogger("router"),
	}
}

// Navigate requests the detail page of an item. Its signature matches
// search.SelectFunc so it can be used as a section callback.
func (r *Router) Navigate(itemID, itemType string) {
	path := Path(itemType, itemID)
	r.log.WithField("path", path).Debug("Navigation requested")
	r.bus.Publish(eventbus.NavigationRequestedEvent{
		Path:     path,
		ItemID:   itemID,
		ItemType: itemType,
	})
}
