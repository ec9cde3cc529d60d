package gateway

import (
	"fmt"
	"strings"
)

// ErrorKind classifies every failure the gateway can return, so callers
// apply one handling policy instead of ad hoc null checks.
type ErrorKind string

const (
	MissingCredential ErrorKind = "missing_credential"
	NetworkFailure    ErrorKind = "network_failure"
	MalformedResponse ErrorKind = "malformed_response"
	QuotaExceeded     ErrorKind = "quota_exceeded"
)

// Error is the single error type returned by gateway operations.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gateway %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("gateway %s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the ErrorKind from err, defaulting to NetworkFailure for
// anything that did not originate here.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	if ge, ok := err.(*Error); ok {
		return ge.Kind
	}
	return NetworkFailure
}

func errMissingCredential(op string) *Error {
	return &Error{Kind: MissingCredential, Op: op,
		Err: fmt.Errorf("GEMINI_API_KEY is not configured")}
}

func errMalformed(op string, err error) *Error {
	return &Error{Kind: MalformedResponse, Op: op, Err: err}
}

// classify maps a genai transport error onto quota vs. network failure.
// Quota sniffing mirrors what the model API actually returns for 429s.
func classify(op string, err error) *Error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "429") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "exhausted") {
		return &Error{Kind: QuotaExceeded, Op: op, Err: err}
	}
	return &Error{Kind: NetworkFailure, Op: op, Err: err}
}
