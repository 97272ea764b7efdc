package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swipetodo/internal/store"
)

// InputForm is the entry and submit button that add tasks
type InputForm struct {
	store     *store.Store
	entry     *widget.Entry
	submitBtn *widget.Button
	content   *fyne.Container
}

// NewInputForm creates the form. Pressing Enter in the entry submits it.
func NewInputForm(taskStore *store.Store, mobileUI *MobileUI) *InputForm {
	f := &InputForm{store: taskStore}

	f.entry = mobileUI.CreateMobileEntry(taskStore.Placeholder())
	f.entry.OnSubmitted = func(string) {
		f.Submit()
	}
	f.submitBtn = mobileUI.CreateMobileButton(IconSubmit, f.Submit)

	f.content = container.NewPadded(container.NewBorder(nil, nil, nil, f.submitBtn, f.entry))
	return f
}

// Container returns the form layout
func (f *InputForm) Container() fyne.CanvasObject {
	return f.content
}

// Entry returns the text entry
func (f *InputForm) Entry() *widget.Entry {
	return f.entry
}

// Submit adds the entered text as a task, then clears the entry and shows the
// next placeholder. Empty text is added as an empty task.
func (f *InputForm) Submit() {
	f.store.Add(f.entry.Text)
	f.entry.SetText("")
	f.entry.SetPlaceHolder(f.store.Placeholder())
}
