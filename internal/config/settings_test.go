package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("ru")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "ru" {
		t.Errorf("Expected language 'ru', got %s", retrievedLang)
	}

	// Unsupported codes fall back to the default
	settings.SetLanguage("xx")
	if settings.GetLanguage() != DefaultLanguage {
		t.Errorf("Unsupported language should fall back to %s, got %s", DefaultLanguage, settings.GetLanguage())
	}
}

func TestShowEstimates(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetShowEstimates() != DefaultShowEstimates {
		t.Errorf("Expected default show estimates %v, got %v", DefaultShowEstimates, settings.GetShowEstimates())
	}

	settings.SetShowEstimates(false)
	if settings.GetShowEstimates() {
		t.Error("Expected show estimates to be false after SetShowEstimates(false)")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
