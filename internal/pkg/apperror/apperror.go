package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	// KindGeneration covers LLM failures and provider misconfiguration.
	KindGeneration Kind = "generation"
	KindTimeout    Kind = "timeout"
	KindScrape     Kind = "scrape"
	KindValidation Kind = "validation"
	// KindParse is recovered locally and never reaches a client.
	KindParse    Kind = "parse"
	KindInternal Kind = "internal"
)

// Error is the single error type crossing service boundaries.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Generation(err error, message string) *Error { return Wrap(KindGeneration, err, message) }
func Timeout(err error, message string) *Error    { return Wrap(KindTimeout, err, message) }
func Scrape(err error, message string) *Error     { return Wrap(KindScrape, err, message) }
func Validation(message string) *Error            { return New(KindValidation, message) }

// KindOf reports the kind of the first *Error in the chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// HTTPStatus maps an error kind onto the response status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
