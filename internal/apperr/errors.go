package apperr

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// NotFoundError signals a missing resource at the HTTP edge. The storage layer
// reports absence with a nil result instead.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFound(msg string) *NotFoundError {
	return &NotFoundError{Message: msg}
}

// InternalError carries a user-facing message and the underlying cause, which
// is exposed to clients as "details".
type InternalError struct {
	Message string
	Err     error
}

func (e *InternalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

func (e *InternalError) Details() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func NewInternal(msg string, err error) *InternalError {
	return &InternalError{Message: msg, Err: err}
}
