package mealdb

// Package mealdb is the recipe fetch and normalize core. It issues one
// synchronous GET per query against TheMealDB, parses the {"meals": [...]}
// envelope and maps raw records into model.Recipe. Country and category
// filters resolve to a full record through a follow-up lookup of a randomly
// picked match. Nothing is cached and nothing is retried.
