package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventConfigLoaded        EventType = "ConfigLoaded"
	EventConfigSaved         EventType = "ConfigSaved"
	EventProviderSelected    EventType = "ProviderSelected"
	EventSearchCompleted     EventType = "SearchCompleted"
	EventItemSelected        EventType = "ItemSelected"
	EventNavigationRequested EventType = "NavigationRequested"
	EventError               EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path     string
	Sections int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted after the configuration is written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ProviderSelectedEvent is emitted once the health check picked a provider
type ProviderSelectedEvent struct {
	Name      string // "remote" or "local"
	Available bool   // result of the remote health check
}

func (e ProviderSelectedEvent) Type() EventType { return EventProviderSelected }

// SearchCompletedEvent is emitted when a query resolved and was applied
type SearchCompletedEvent struct {
	Query   string
	Seq     uint64
	Options int
	Failed  bool
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// ItemSelectedEvent is emitted when the user activates a selectable option
type ItemSelectedEvent struct {
	ItemID   string
	ItemType string
}

func (e ItemSelectedEvent) Type() EventType { return EventItemSelected }

// NavigationRequestedEvent asks the UI to open a detail page
type NavigationRequestedEvent struct {
	Path     string
	ItemID   string
	ItemType string
}

func (e NavigationRequestedEvent) Type() EventType { return EventNavigationRequested }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
