package llm

import "errors"

var (
	// ErrDisabled indicates no API key is configured, so AI enrichment
	// is switched off entirely.
	ErrDisabled = errors.New("ai suggestions disabled")

	// ErrUnavailable indicates the completion API could not be reached
	// or refused the credentials.
	ErrUnavailable = errors.New("completion service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("ai request timed out")

	// ErrInvalidOutput indicates the model response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid model output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("ai retry attempts exhausted")
)
