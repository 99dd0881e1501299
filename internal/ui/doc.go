package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the recipe fetcher and the session state, and
// renders the current recipe, the favorites/shopping/meal-plan tabs and
// settings. All UI strings are localized via Localization.
