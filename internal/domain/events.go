package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventNoticesLoaded     EventType = "NoticesLoaded"
	EventQueryChanged      EventType = "QueryChanged"
	EventLoadMoreStarted   EventType = "LoadMoreStarted"
	EventPageLoaded        EventType = "PageLoaded"
	EventLoadMoreCancelled EventType = "LoadMoreCancelled"
	EventLoadMoreFailed    EventType = "LoadMoreFailed"
	EventNoticeOpened      EventType = "NoticeOpened"
	EventError             EventType = "Error"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// NoticesLoadedEvent is emitted when a screen reads its notices from the source
type NoticesLoadedEvent struct {
	Category string
	Count    int
}

func (e NoticesLoadedEvent) Type() EventType { return EventNoticesLoaded }

// QueryChangedEvent is emitted when the search query changes
type QueryChangedEvent struct {
	Query   string
	Matches int
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// LoadMoreStartedEvent is emitted when a load-more cycle is accepted
type LoadMoreStartedEvent struct {
	Page int // page count the load will reveal
}

func (e LoadMoreStartedEvent) Type() EventType { return EventLoadMoreStarted }

// PageLoadedEvent is emitted when a load-more cycle completes
type PageLoadedEvent struct {
	PageCount int
	Visible   int
	Total     int
}

func (e PageLoadedEvent) Type() EventType { return EventPageLoaded }

// LoadMoreCancelledEvent is emitted when an in-flight load is discarded
type LoadMoreCancelledEvent struct {
	Reason string
}

func (e LoadMoreCancelledEvent) Type() EventType { return EventLoadMoreCancelled }

// LoadMoreFailedEvent is emitted when a load-more cycle fails
type LoadMoreFailedEvent struct {
	Page int
	Err  error
}

func (e LoadMoreFailedEvent) Type() EventType { return EventLoadMoreFailed }

// NoticeOpenedEvent is emitted when the user opens a notice
type NoticeOpenedEvent struct {
	ID string
}

func (e NoticeOpenedEvent) Type() EventType { return EventNoticeOpened }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path     string
	Category string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
