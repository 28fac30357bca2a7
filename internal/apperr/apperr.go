// Package apperr defines the error kinds every endpoint reports and the
// single place where storage failures are mapped onto them.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindInvalidQuery
	KindInvalidPagination
	KindMissingField
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindInvalidQuery:
		return "invalid_query"
	case KindInvalidPagination:
		return "invalid_pagination"
	case KindMissingField:
		return "missing_field"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Status is the HTTP status code the kind is rendered with.
func (k Kind) Status() int {
	switch k {
	case KindBadRequest, KindInvalidQuery, KindInvalidPagination, KindMissingField:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified failure. Subject names the field or reference the
// error is about ("article_id", "username", "inc_votes") and is empty for
// kinds whose message does not depend on it.
type Error struct {
	Kind    Kind
	Subject string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message(), e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message())
}

func (e *Error) Unwrap() error { return e.Err }

// Message is the client facing text. It never includes the wrapped error.
func (e *Error) Message() string {
	switch e.Kind {
	case KindBadRequest:
		return "Bad Request!"
	case KindInvalidQuery:
		return "Invalid sort_by or order!"
	case KindInvalidPagination:
		return "limit and p must be greater than or equal to 1!"
	case KindMissingField:
		return fmt.Sprintf("Missing required field: %s!", e.Subject)
	case KindNotFound:
		if e.Subject == "" {
			return "Not Found!"
		}
		return e.Subject + " Not Found!"
	case KindConflict:
		return e.Subject + " already exists!"
	default:
		return "Internal Server Error!"
	}
}

func (e *Error) Status() int { return e.Kind.Status() }

func BadRequest(err error) *Error { return &Error{Kind: KindBadRequest, Err: err} }

func InvalidQuery() *Error { return &Error{Kind: KindInvalidQuery} }

func InvalidPagination() *Error { return &Error{Kind: KindInvalidPagination} }

func MissingField(field string) *Error { return &Error{Kind: KindMissingField, Subject: field} }

func NotFound(subject string) *Error { return &Error{Kind: KindNotFound, Subject: subject} }

func Conflict(subject string, err error) *Error {
	return &Error{Kind: KindConflict, Subject: subject, Err: err}
}

func Internal(err error) *Error { return &Error{Kind: KindInternal, Err: err} }

// KindOf reports the kind of err, KindInternal when err is unclassified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
