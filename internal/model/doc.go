// Package model defines the to-do task record shared by the store and the UI,
// together with its completion status and the legacy "+text"/"-text" string
// encoding used by older saved lists.
package model
