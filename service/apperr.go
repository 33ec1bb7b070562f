package service

import "fmt"

type ErrorKind string

const (
	KindNotFound     ErrorKind = "NotFound"
	KindValidation   ErrorKind = "ValidationError"
	KindConflict     ErrorKind = "Conflict"
	KindUnauthorized ErrorKind = "Unauthorized"
	KindForbidden    ErrorKind = "Forbidden"
	KindServer       ErrorKind = "ServerError"
)

// Error carries a stable machine-readable kind plus a human message and,
// where useful, the offending identifier.
type Error struct {
	Kind    ErrorKind
	Message string
	Detail  string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NotFound(message, detail string) *Error {
	return &Error{Kind: KindNotFound, Message: message, Detail: detail}
}

func Validation(message, detail string) *Error {
	return &Error{Kind: KindValidation, Message: message, Detail: detail}
}

func Conflict(message, detail string) *Error {
	return &Error{Kind: KindConflict, Message: message, Detail: detail}
}
