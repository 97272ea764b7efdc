package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swipetodo/internal/model"
	"github.com/ytget/swipetodo/internal/store"
)

// TaskList renders the store's tasks and turns taps and swipes on rows into
// toggle and remove calls. Rows are addressed by task ID, never by text.
type TaskList struct {
	store *store.Store
	swipe *SwipeHandler
	list  *widget.List
	tasks []model.Task

	paddingX float32
	paddingY float32
}

// NewTaskList creates the list view and subscribes it to the store
func NewTaskList(taskStore *store.Store, mobileUI *MobileUI) *TaskList {
	tl := &TaskList{
		store: taskStore,
		tasks: taskStore.Tasks(),
	}
	tl.paddingX, tl.paddingY = mobileUI.GetRowPadding()
	tl.swipe = NewSwipeHandler(tl.onSwipeRemove, tl.onScroll)

	tl.list = widget.NewList(
		func() int {
			return len(tl.tasks)
		},
		func() fyne.CanvasObject {
			return NewTaskRow(tl.swipe, tl.paddingX, tl.paddingY, tl.onToggle)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) { tl.updateItem(id, obj) },
	)

	// Store mutations originate from UI events, so the callback already runs on the UI goroutine
	taskStore.Subscribe(tl.setTasks)
	return tl
}

// Widget returns the list widget
func (tl *TaskList) Widget() fyne.CanvasObject {
	return tl.list
}

// Tasks returns the snapshot currently rendered
func (tl *TaskList) Tasks() []model.Task {
	return tl.tasks
}

func (tl *TaskList) setTasks(tasks []model.Task) {
	tl.tasks = tasks
	tl.list.Refresh()
}

func (tl *TaskList) updateItem(id widget.ListItemID, obj fyne.CanvasObject) {
	row, ok := obj.(*TaskRow)
	if !ok {
		log.Printf("Warning: unexpected list item type %T", obj)
		return
	}
	if id < 0 || id >= len(tl.tasks) {
		return
	}
	row.SetTask(tl.tasks[id])
}

// onToggle handles a tap on a row
func (tl *TaskList) onToggle(key string) {
	index, ok := tl.store.IndexOf(key)
	if !ok {
		log.Printf("Toggle for unknown task %s ignored", key)
		return
	}
	tl.store.Toggle(index)
}

// onSwipeRemove handles a swipe that passed the delete threshold
func (tl *TaskList) onSwipeRemove(key string) {
	index, ok := tl.store.IndexOf(key)
	if !ok {
		log.Printf("Remove for unknown task %s ignored", key)
		return
	}
	tl.store.Remove(index)
}

// onScroll scrolls the list by the vertical part of a row drag
func (tl *TaskList) onScroll(dy float32) {
	offset := tl.list.GetScrollOffset() - dy
	if offset < 0 {
		offset = 0
	}
	tl.list.ScrollToOffset(offset)
}
