package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle   = "app_title"
	KeyLanguage   = "language"
	KeySaveFailed = "save_failed"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:   "Tasks",
		KeyLanguage:   "Language",
		KeySaveFailed: "Could not save tasks",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:   "Задачи",
		KeyLanguage:   "Язык",
		KeySaveFailed: "Не удалось сохранить задачи",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:   "Tarefas",
		KeyLanguage:   "Idioma",
		KeySaveFailed: "Não foi possível salvar as tarefas",
	}
}
