package apperror

// Kind is a machine-readable error category, stable across message changes.
type Kind string

const (
	KindInvalidInput       Kind = "invalid_input"
	KindInvalidRange       Kind = "invalid_range"
	KindInvalidPeriod      Kind = "invalid_period"
	KindConflictDetected   Kind = "conflict_detected"
	KindNotFound           Kind = "not_found"
	KindIntegrityViolation Kind = "integrity_violation"
)

// AppError is a custom error type that includes an HTTP status code and a
// machine-readable kind callers can branch on.
type AppError struct {
	Code    int    // HTTP Status Code (e.g., 400, 404)
	Kind    Kind   // Error category
	Message string // User-facing error message
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match a wrapped AppError against its sentinel: two
// AppErrors are the same error when kind and message agree.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// New creates a new AppError with a status code, kind and message.
func New(code int, kind Kind, message string) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, code int, kind Kind, message string) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}
