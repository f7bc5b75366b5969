package generation

import "errors"

// Common errors returned by the generation package and its adapters.
// None of them is retried: a failed generation aborts the command.
var (
	// ErrGenerationFailed is returned when the model could not be reached or
	// rejected the request (authentication, quota, network).
	ErrGenerationFailed = errors.New("failed to generate document")

	// ErrInvalidResponse is returned when the model reply carries no text
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the chat model configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
