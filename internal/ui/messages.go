package ui

import (
	"time"

	"facetgrip/internal/config"
	"facetgrip/internal/eventbus"
	"facetgrip/internal/search"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// ConfigReloadedMsg carries a configuration re-read from disk
type ConfigReloadedMsg struct {
	Config *config.Config
}

// frameMsg drives panel animations
type frameMsg time.Time

// searchResultMsg contains the outcome of one issued query
type searchResultMsg struct {
	query search.Query
	resp  search.Response
	err   error
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals that an external pager owns the terminal
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals that the pager returned the terminal
type resumeRenderingMsg struct{}
