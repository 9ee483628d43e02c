package widget

import (
	"sync"

	"github.com/kurihiro0119/github-user-finder/internal/render"
)

// Level is the severity of a notification
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

// Notifier displays transient messages to the user
type Notifier interface {
	Notify(level Level, message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(level Level, message string)

func (f NotifierFunc) Notify(level Level, message string) { f(level, message) }

// FlashNotifier collects notifications so they can be rendered with the
// next page.
type FlashNotifier struct {
	mu       sync.Mutex
	messages []render.Notification
}

func (n *FlashNotifier) Notify(level Level, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, render.Notification{Level: string(level), Message: message})
}

// Messages returns the collected notifications in the order they were sent.
func (n *FlashNotifier) Messages() []render.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]render.Notification, len(n.messages))
	copy(out, n.messages)
	return out
}
