package recipe

import "errors"

// Domain errors for recipe operations

var (
	// Payload validation errors
	ErrEmptyPayload    = errors.New("recipe payload is empty")
	ErrMissingID       = errors.New("recipe id is required")
	ErrMissingName     = errors.New("recipe name is required")
	ErrInvalidServings = errors.New("servings must be greater than 0")

	// Scaling errors
	ErrInvalidScaleFactor = errors.New("scale factor must be greater than 0")
)
