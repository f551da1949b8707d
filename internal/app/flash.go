package app

import (
	"sync"
	"time"
)

// Level tells the status bar how to colour a flash message.
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

// Flash is the notice shown in the status bar until it expires. Bus events
// arrive on other goroutines, hence the lock.
type Flash struct {
	mu      sync.Mutex
	ttl     time.Duration
	text    string
	level   Level
	expires time.Time
}

// NewFlash creates a flash whose notices last ttl.
func NewFlash(ttl time.Duration) *Flash {
	return &Flash{ttl: ttl}
}

// Info shows text as an informational notice.
func (f *Flash) Info(text string) { f.show(text, LevelInfo) }

// Error shows text as an error notice.
func (f *Flash) Error(text string) { f.show(text, LevelError) }

func (f *Flash) show(text string, level Level) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.text = text
	f.level = level
	f.expires = time.Now().Add(f.ttl)
}

// Current returns the live notice. ok is false once it has expired.
func (f *Flash) Current() (text string, level Level, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.text == "" || !time.Now().Before(f.expires) {
		return "", LevelInfo, false
	}
	return f.text, f.level, true
}
