package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// TodoTheme applies the task list palette with a larger body text
type TodoTheme struct{}

// NewTodoTheme creates a new theme
func NewTodoTheme() fyne.Theme {
	return &TodoTheme{}
}

// Color returns theme colors
func (t *TodoTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return ColorPrimary
	case theme.ColorNameButton:
		return ColorPrimary
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 0x26, G: 0x20, B: 0x1e, A: 0xff}
		}
		return ColorBackground
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
		}
		return ColorTextPrimary
	case theme.ColorNamePlaceHolder, theme.ColorNameSeparator:
		return ColorTextSecondary
	case theme.ColorNameInputBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 0x3a, G: 0x33, B: 0x31, A: 0xff}
		}
		return color.White
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *TodoTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *TodoTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *TodoTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 20 // Up from default 14
	case theme.SizeNameInputRadius, theme.SizeNameSelectionRadius:
		return 5
	case theme.SizeNameInputBorder:
		return 0
	case theme.SizeNameInnerPadding:
		return 12
	}

	return theme.DefaultTheme().Size(name)
}
