package llm

import "errors"

var (
	// ErrDisabled indicates no API key is configured; AI features are off.
	ErrDisabled = errors.New("ai features disabled, no api key configured")

	// ErrUnavailable indicates the generation API could not be reached.
	ErrUnavailable = errors.New("generation api unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("generation request timed out")

	// ErrInvalidOutput indicates the model response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid model output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("generation retry attempts exhausted")
)
