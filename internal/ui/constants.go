package ui

import "image/color"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSubmit = "✔︎"
	IconClose  = "×"
)

// Text fragments
const (
	Ellipsis = "…"
)

// Palette
var (
	ColorPrimary       = color.NRGBA{R: 0xfc, G: 0x5b, B: 0x39, A: 0xff}
	ColorBackground    = color.NRGBA{R: 0xfc, G: 0xf1, B: 0xee, A: 0xff}
	ColorTextPrimary   = color.NRGBA{R: 0x45, G: 0x45, B: 0x45, A: 0xff}
	ColorTextSecondary = color.NRGBA{R: 0xca, G: 0xca, B: 0xca, A: 0xff}
)

// Layout sizing (TaskRow / lists)
const (
	RowPaddingX float32 = 32
	RowPaddingY float32 = 16

	// Mobile-specific sizing
	MobileRowPaddingX float32 = 24
	MobileRowPaddingY float32 = 20

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44

	StrikeThickness float32 = 1.5
	BorderThickness float32 = 1
)

// Window defaults
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 640
)
