package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage      = "app_language"
	KeyShowEstimates = "show_estimates"
)

// Default values
const (
	DefaultLanguage      = "system"
	DefaultShowEstimates = true
)

// Settings manages user preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
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
	if _, ok := s.GetLanguageOptions()[lang]; !ok {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetShowEstimates returns whether the placeholder prep/difficulty/servings cards are shown
func (s *Settings) GetShowEstimates() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowEstimates, DefaultShowEstimates)
}

// SetShowEstimates toggles the placeholder cards
func (s *Settings) SetShowEstimates(show bool) {
	s.app.Preferences().SetBool(KeyShowEstimates, show)
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
