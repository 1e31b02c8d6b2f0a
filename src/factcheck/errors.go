package factcheck

import "fmt"

// ExtractionError means no claim could be produced; the request cannot
// proceed without one.
type ExtractionError struct {
	Reason string
	Cause  error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("claim extraction failed: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("claim extraction failed: %s", e.Reason)
}

func (e *ExtractionError) Unwrap() error { return e.Cause }

// SynthesisError means the verdict model call failed or its output survived
// neither direct nor repaired JSON parsing.
type SynthesisError struct {
	Reason string
	Cause  error
}

func (e *SynthesisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("verdict synthesis failed: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("verdict synthesis failed: %s", e.Reason)
}

func (e *SynthesisError) Unwrap() error { return e.Cause }
