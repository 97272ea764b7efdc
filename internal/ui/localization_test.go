package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/swipetodo/internal/config"
)

func TestLocalization_Defaults(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}
	if l.GetText(KeyAppTitle) != "Tasks" {
		t.Errorf("Expected English title, got %s", l.GetText(KeyAppTitle))
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	tests := []struct {
		lang     string
		expected string
	}{
		{"ru", "ru"},
		{"pt", "pt"},
		{"system", "en"},
		{"xx", "en"},
	}

	for _, tc := range tests {
		l := NewLocalization()
		l.SetLanguage(tc.lang)
		if l.GetCurrentLanguage() != tc.expected {
			t.Errorf("SetLanguage(%s): current = %s, expected %s", tc.lang, l.GetCurrentLanguage(), tc.expected)
		}
	}
}

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("pt")
	delete(l.texts["pt"], KeySaveFailed)

	if text := l.GetText(KeySaveFailed); text != "Could not save tasks" {
		t.Errorf("Expected English fallback for missing translation, got %s", text)
	}
	if text := l.GetText("unknown_key"); text != "unknown_key" {
		t.Errorf("Expected key fallback, got %s", text)
	}
}

func TestLocalization_AvailableLanguagesTranslated(t *testing.T) {
	l := NewLocalization()
	settings := config.NewSettings(test.NewApp())
	for _, code := range settings.GetLanguageCodes() {
		if code == config.DefaultLanguage {
			continue
		}
		if _, ok := l.texts[code]; !ok {
			t.Errorf("Language %s is offered but has no texts", code)
		}
	}
}
