package config

import (
	"maps"
	"slices"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage = "app_language"
	KeyTasks    = "tasks"
)

// Default values
const (
	DefaultLanguage = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// Preferences returns the preferences store shared by settings and the task list
func (s *Settings) Preferences() fyne.Preferences {
	return s.app.Preferences()
}

// GetTasksKey returns the preferences key holding the saved task list
func (s *Settings) GetTasksKey() string {
	return KeyTasks
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	if lang == "" {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetLanguageCodes returns the language option codes in menu order:
// the system default first, then the rest sorted by code
func (s *Settings) GetLanguageCodes() []string {
	codes := []string{DefaultLanguage}
	for _, code := range slices.Sorted(maps.Keys(s.GetLanguageOptions())) {
		if code != DefaultLanguage {
			codes = append(codes, code)
		}
	}
	return codes
}
