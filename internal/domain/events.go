package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchStarted     EventType = "SearchStarted"
	EventResultsUpdated    EventType = "ResultsUpdated"
	EventSearchFailed      EventType = "SearchFailed"
	EventPageRequested     EventType = "PageRequested"
	EventPanelsInitialized EventType = "PanelsInitialized"
	EventViewportChanged   EventType = "ViewportChanged"
	EventConfigReloaded    EventType = "ConfigReloaded"
	EventError             EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchStartedEvent is emitted when a request is issued to the backend
type SearchStartedEvent struct {
	Query     string
	Page      int
	Signature QuerySignature
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// ResultsUpdatedEvent is emitted when a response has been applied
type ResultsUpdatedEvent struct {
	Signature QuerySignature
	Page      int
	NbHits    int
	Loaded    int
}

func (e ResultsUpdatedEvent) Type() EventType { return EventResultsUpdated }

// SearchFailedEvent is emitted when the backend returned an error
type SearchFailedEvent struct {
	Signature QuerySignature
	Err       error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// PageRequestedEvent is emitted when pagination decided to load another page
type PageRequestedEvent struct {
	Signature QuerySignature
	Manual    bool
}

func (e PageRequestedEvent) Type() EventType { return EventPageRequested }

// PanelsInitializedEvent is emitted when the panel registry was replaced
type PanelsInitializedEvent struct {
	Panels []PanelID
	Wide   bool
}

func (e PanelsInitializedEvent) Type() EventType { return EventPanelsInitialized }

// ViewportChangedEvent is emitted when the wide/narrow class flips
type ViewportChangedEvent struct {
	Width int
	Wide  bool
}

func (e ViewportChangedEvent) Type() EventType { return EventViewportChanged }

// ConfigReloadedEvent is emitted when the config file changed on disk
type ConfigReloadedEvent struct {
	Path string
}

func (e ConfigReloadedEvent) Type() EventType { return EventConfigReloaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
