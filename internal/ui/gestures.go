package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"

	"github.com/ytget/swipetodo/internal/gesture"
)

// SwipeHandler feeds touch and drag events from task rows into one shared
// gesture tracker, so only one row can be swiped at a time.
type SwipeHandler struct {
	tracker  *gesture.Tracker
	onScroll func(dy float32)
}

// NewSwipeHandler creates a handler. onRemove receives the row key of a swipe
// that passed the threshold; onScroll receives the vertical part of drags.
func NewSwipeHandler(onRemove func(key string), onScroll func(dy float32)) *SwipeHandler {
	return &SwipeHandler{
		tracker:  gesture.New(onRemove),
		onScroll: onScroll,
	}
}

// Offset returns the live horizontal offset for the row
func (sh *SwipeHandler) Offset(key string) float32 {
	return sh.tracker.Offset(key)
}

// Opacity returns the rendered opacity for the row
func (sh *SwipeHandler) Opacity(key string) float32 {
	return gesture.Opacity(sh.tracker.Offset(key))
}

// TouchDown starts tracking the row on touch start
func (sh *SwipeHandler) TouchDown(key string, event *mobile.TouchEvent) {
	sh.tracker.Begin(key, event.AbsolutePosition.X)
}

// Dragged handles drag movement. A drag that arrives without a touch start
// (pointer drags on desktop) begins tracking at its origin.
func (sh *SwipeHandler) Dragged(key string, event *fyne.DragEvent) {
	if sh.tracker.State() == gesture.StateIdle {
		sh.tracker.Begin(key, event.AbsolutePosition.X-event.Dragged.DX)
	}
	sh.tracker.Move(key, event.AbsolutePosition.X)

	if sh.onScroll != nil && abs32(event.Dragged.DY) > abs32(event.Dragged.DX) {
		sh.onScroll(event.Dragged.DY)
	}
}

// Release ends the gesture on touch up or drag end
func (sh *SwipeHandler) Release() {
	release, ok := sh.tracker.End()
	if !ok {
		return
	}
	if release.Committed {
		log.Printf("Swipe committed: key=%s distance=%.0f", release.Key, release.Distance)
	}
}

// Cancel drops the gesture on touch cancel
func (sh *SwipeHandler) Cancel() {
	sh.tracker.Cancel()
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
