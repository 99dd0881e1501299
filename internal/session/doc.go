package session

// Package session holds the explicit application state owned by the UI: the
// recipe currently on screen plus favorites, shopping list and meal plan. It
// also turns filter selections into mealdb queries.
