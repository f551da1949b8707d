// Package host runs controls inside a tview application. It is the windowing
// layer controls are created in: it places them, owns keyboard focus,
// translates tcell events and schedules repaints.
package host

import "github.com/rivo/tview"

// Scheduler runs f on the UI goroutine and redraws afterwards.
type Scheduler interface {
	Schedule(f func())
}

// AppScheduler schedules through a tview application.
type AppScheduler struct {
	App *tview.Application
}

// Schedule queues f and a redraw on the application's event loop.
func (s AppScheduler) Schedule(f func()) {
	s.App.QueueUpdateDraw(f)
}
