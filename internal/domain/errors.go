package domain

// Sentinel error kinds. Services wrap them with a caller-facing message via
// the helpers below; the HTTP layer maps each kind to a status code.
import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnsupported  = errors.New("unsupported")
)

type apiError struct {
	kind error
	msg  string
}

func (e *apiError) Error() string { return e.msg }
func (e *apiError) Unwrap() error { return e.kind }

func NotFound(msg string) error     { return &apiError{kind: ErrNotFound, msg: msg} }
func Conflict(msg string) error     { return &apiError{kind: ErrConflict, msg: msg} }
func Unauthorized(msg string) error { return &apiError{kind: ErrUnauthorized, msg: msg} }
func Unsupported(msg string) error  { return &apiError{kind: ErrUnsupported, msg: msg} }

// ValidationError rejects one input field. Message is safe to return to the
// caller verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
