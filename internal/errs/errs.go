package errs

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type Kind int

const (
	Internal Kind = iota
	NotFound
	Unauthorized
	StateConflict
	InvalidArgument
	UpstreamFailure
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "NOT_FOUND"
	case Unauthorized:
		return "UNAUTHORIZED"
	case StateConflict:
		return "STATE_CONFLICT"
	case InvalidArgument:
		return "INVALID_ARGUMENT"
	case UpstreamFailure:
		return "UPSTREAM_FAILURE"
	default:
		return "INTERNAL"
	}
}

// Error is the typed, user-facing error returned by every core operation.
// Message is safe to show to the caller; Err carries the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

func NotFoundf(format string, args ...any) *Error {
	return New(NotFound, fmt.Sprintf(format, args...))
}

func Unauthorizedf(format string, args ...any) *Error {
	return New(Unauthorized, fmt.Sprintf(format, args...))
}

func Conflictf(format string, args ...any) *Error {
	return New(StateConflict, fmt.Sprintf(format, args...))
}

func Invalidf(format string, args ...any) *Error {
	return New(InvalidArgument, fmt.Sprintf(format, args...))
}

func Upstream(msg string, err error) *Error {
	return Wrap(UpstreamFailure, msg, err)
}

// KindOf reports the Kind of the first *Error in err's chain, or Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Message returns the user-facing text of err, falling back to fallback for
// errors that did not originate in the core.
func Message(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return fallback
}

func HTTPStatus(kind Kind) int {
	switch kind {
	case NotFound:
		return fiber.StatusNotFound
	case Unauthorized:
		return fiber.StatusForbidden
	case StateConflict:
		return fiber.StatusConflict
	case InvalidArgument:
		return fiber.StatusBadRequest
	case UpstreamFailure:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
