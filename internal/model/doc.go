package model

// Package model defines domain data structures used across the app: normalized
// recipes, the weekday enum, the cuisine catalog and the in-memory collections
// (favorites, shopping list, meal plan) the UI renders.
