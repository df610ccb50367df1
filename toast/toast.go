// Package toast holds the latest short-lived notification. It is the
// only feedback channel for store operations; nothing here is persisted.
package toast

import (
	"sync"
	"time"
)

// Level classifies a notification.
type Level string

const (
	Success Level = "success"
	Error   Level = "error"
	Warning Level = "warning"
	Info    Level = "info"
)

// Duration a toast stays visible before auto-dismissing.
const Duration = 3 * time.Second

// Toast is the current notification state.
type Toast struct {
	Show    bool   `json:"show"`
	Message string `json:"message"`
	Type    Level  `json:"type"`
}

// Center keeps the most recent toast. Expiry is checked lazily on read
// against an injectable clock, so no timer goroutine is needed.
type Center struct {
	mu      sync.Mutex
	current Toast
	shownAt time.Time
	now     func() time.Time
}

func NewCenter() *Center {
	return &Center{now: time.Now}
}

// NewCenterWithClock lets tests control expiry.
func NewCenterWithClock(now func() time.Time) *Center {
	return &Center{now: now}
}

// Notify replaces the current toast. A newer toast supersedes an older
// one immediately, matching the single-slot UI behavior.
func (c *Center) Notify(message string, level Level) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = Toast{Show: true, Message: message, Type: level}
	c.shownAt = c.now()
}

// Current returns the active toast, or a dismissed zero toast once
// Duration has elapsed.
func (c *Center) Current() Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.current.Show || c.now().Sub(c.shownAt) >= Duration {
		return Toast{Type: Success}
	}
	return c.current
}
