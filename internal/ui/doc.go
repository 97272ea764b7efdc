// Package ui contains the Fyne user interface: the entry form that adds tasks,
// the task list with tap-to-complete and swipe-to-delete rows, and the window
// chrome around them. All UI strings are localized via Localization.
package ui
