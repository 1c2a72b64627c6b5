// Package notify carries the dashboard's transient notices ("saved",
// "digest generated", ...). A notice auto-dismisses after a fixed delay
// unless replaced first; connected websocket clients receive every push.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notice is a single transient message.
type Notice struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Center owns the current notice and its dismiss timer.
type Center struct {
	mu      sync.Mutex
	current *Notice
	timer   *time.Timer
	ttl     time.Duration
	closed  bool

	broadcast func(Notice)
}

func NewCenter(ttl time.Duration) *Center {
	return &Center{ttl: ttl}
}

// SetBroadcast installs the fan-out hook (the websocket server).
func (c *Center) SetBroadcast(fn func(Notice)) {
	c.mu.Lock()
	c.broadcast = fn
	c.mu.Unlock()
}

// Push replaces the current notice, cancelling the previous dismiss
// timer, and schedules the new notice's auto-dismiss.
func (c *Center) Push(level Level, message string) Notice {
	n := Notice{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return n
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.current = &n
	c.timer = time.AfterFunc(c.ttl, func() { c.dismiss(n.ID) })
	fn := c.broadcast
	c.mu.Unlock()

	if fn != nil {
		fn(n)
	}
	return n
}

func (c *Center) dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// A replacement may have landed between the timer firing and now.
	if c.current != nil && c.current.ID == id {
		c.current = nil
	}
}

// Current returns the active notice, or nil once dismissed.
func (c *Center) Current() *Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	n := *c.current
	return &n
}

// Close cancels any pending dismiss timer and drops the current notice.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.current = nil
	c.closed = true
}
