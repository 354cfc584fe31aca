package domain

import "errors"

// ErrUnknownRecipe is returned when a recipe ID cannot be found in the catalog.
var ErrUnknownRecipe = errors.New("unknown recipe")

// ErrUnknownStep is returned when a run references a step the recipe does not
// define. This indicates a malformed recipe definition and is fatal for the run.
var ErrUnknownStep = errors.New("unknown step")

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")
