package main

import (
	"sync"
	"time"
)

// LiveRegion is the persistent, visually hidden announcement sink for
// assistive technology. It is created once and reused; every
// state-changing gallery operation writes a complete sentence here.
// It is never drawn.
type LiveRegion struct {
	mu      sync.Mutex
	text    string
	updated time.Time
	history []string
}

// NewLiveRegion creates the single live region for the page.
func NewLiveRegion() *LiveRegion {
	return &LiveRegion{}
}

// Announce replaces the region's text. Assistive tooling observes the
// change; visual focus never moves.
func (lr *LiveRegion) Announce(text string) {
	lr.mu.Lock()
	lr.text = text
	lr.updated = time.Now()
	lr.history = append(lr.history, text)
	lr.mu.Unlock()
	debugLog("announce: %s", text)
}

// Text returns the current announcement.
func (lr *LiveRegion) Text() string {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	return lr.text
}

// History returns all announcements since creation, oldest first.
func (lr *LiveRegion) History() []string {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	out := make([]string, len(lr.history))
	copy(out, lr.history)
	return out
}
