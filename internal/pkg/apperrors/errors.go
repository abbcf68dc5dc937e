// Package apperrors is the typed failure taxonomy shared by the RAG pipeline
// and the HTTP boundary. Callers branch on kind instead of string-matching
// log output, and the server middleware maps kinds to HTTP statuses.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	// KindUpstream: the vector store or the chat model returned an error or a
	// malformed payload. Surfaced to callers as a generic internal failure.
	KindUpstream Kind = iota
	// KindConfiguration: a required endpoint or credential is missing. Fatal
	// for the operation that needed it; never silently became an empty result.
	KindConfiguration
	// KindEmptyInput: the caller supplied no question text.
	KindEmptyInput
	// KindInvalidInput: the request body failed validation.
	KindInvalidInput
	// KindTimeout: the retrieval or model step exceeded its bound. Kept
	// distinct from KindUpstream so operators can tell a slow dependency from
	// a broken one.
	KindTimeout
	// KindNotFound: the addressed resource does not exist.
	KindNotFound
)

// Error carries the failure class, the pipeline stage it happened in, and an
// operator-facing message. The wrapped cause is logged, never returned to the
// caller.
type Error struct {
	Kind    Kind
	Stage   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Stage, e.Message, e.Err)
	}
	if e.Stage != "" {
		return fmt.Sprintf("%s: %s", e.Stage, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Configuration(stage, message string) *Error {
	return &Error{Kind: KindConfiguration, Stage: stage, Message: message}
}

func EmptyInput(message string) *Error {
	return &Error{Kind: KindEmptyInput, Message: message}
}

func InvalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Timeout(stage string, err error) *Error {
	return &Error{Kind: KindTimeout, Stage: stage, Message: "deadline exceeded", Err: err}
}

func Upstream(stage string, err error) *Error {
	return &Error{Kind: KindUpstream, Stage: stage, Message: "upstream call failed", Err: err}
}

// KindOf extracts the failure class, defaulting to KindUpstream for untyped
// errors so nothing internal leaks.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUpstream
}

func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// HTTPStatus maps a failure class to the status the chat API contract
// promises: 400 bad input, 504 timeout, 500 everything else.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindEmptyInput, KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is what the caller sees. Bad-input errors carry their own
// message; everything else gets a fixed text so internals never leak.
func PublicMessage(err error) string {
	switch KindOf(err) {
	case KindEmptyInput, KindInvalidInput, KindNotFound:
		var e *Error
		if errors.As(err, &e) {
			return e.Message
		}
		return "invalid request"
	case KindTimeout:
		return "Request timed out. Please try again."
	default:
		return "Error generating response."
	}
}
