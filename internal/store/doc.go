// Package store owns the ordered to-do list. It applies add, toggle and remove
// mutations, persists the whole list after every change and notifies the UI
// through subscription callbacks.
package store
