// backend/shared/go-utils/errors.go
package utils

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Domain-level sentinel errors.
var (
	ErrStoreUnavailable  = errors.New("store_unavailable")
	ErrInvalidPropertyID = errors.New("invalid_property_id")
	ErrMissingUserID     = errors.New("missing_user_id")

	// For concurrency conflicts
	ErrRowVersionConflict = errors.New("row_version_conflict")

	// For external service failures (SendGrid, Twilio)
	ErrExternalServiceFailure = errors.New("external_service_failure")
)

// ErrorKind classifies a failure. The zero value is KindInternal so an
// unclassified AppError always reports 500.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindNotFound
	KindValidation
	KindAuthentication
	KindAuthorization
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	default:
		return "internal"
	}
}

// StatusCode is the HTTP status a failure of this kind is reported with.
func (k ErrorKind) StatusCode() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// ErrCode is the public error code carried in JSON error bodies.
func (k ErrorKind) ErrCode() string {
	switch k {
	case KindNotFound:
		return ErrCodeNotFound
	case KindValidation:
		return ErrCodeValidation
	case KindAuthentication:
		return ErrCodeUnauthorized
	case KindAuthorization:
		return ErrCodeForbidden
	default:
		return ErrCodeInternal
	}
}

// AppError is the single typed failure passed from the gateway and services
// up to the controllers.
type AppError struct {
	Kind       ErrorKind
	StatusCode int
	Code       string
	Message    string
	Details    any
	Err        error

	stack error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StackTrace renders the stack captured when the error was built.
func (e *AppError) StackTrace() string {
	if e.stack == nil {
		return ""
	}
	return fmt.Sprintf("%+v", e.stack)
}

func newAppError(kind ErrorKind, status int, message string, details any, cause error) *AppError {
	if status == 0 {
		status = kind.StatusCode()
	}
	return &AppError{
		Kind:       kind,
		StatusCode: status,
		Code:       kind.ErrCode(),
		Message:    message,
		Details:    details,
		Err:        cause,
		stack:      pkgerrors.New(message),
	}
}

// NewAppError builds an error with an explicit status. A zero status means 500.
func NewAppError(message string, status int, cause error) *AppError {
	kind := KindInternal
	switch status {
	case http.StatusNotFound:
		kind = KindNotFound
	case http.StatusBadRequest:
		kind = KindValidation
	case http.StatusUnauthorized:
		kind = KindAuthentication
	case http.StatusForbidden:
		kind = KindAuthorization
	}
	return newAppError(kind, status, message, nil, cause)
}

func NewNotFoundError(message string) *AppError {
	if message == "" {
		message = "Resource not found"
	}
	return newAppError(KindNotFound, 0, message, nil, nil)
}

func NewValidationError(message string, details any) *AppError {
	return newAppError(KindValidation, 0, message, details, nil)
}

func NewAuthenticationError(message string) *AppError {
	if message == "" {
		message = "Authentication required"
	}
	return newAppError(KindAuthentication, 0, message, nil, nil)
}

func NewAuthorizationError(message string) *AppError {
	if message == "" {
		message = "Permission denied"
	}
	return newAppError(KindAuthorization, 0, message, nil, nil)
}

// WrapInternal classifies err as a generic 500 while keeping it as the cause.
func WrapInternal(message string, cause error) *AppError {
	var details any
	if cause != nil {
		details = cause.Error()
	}
	return newAppError(KindInternal, 0, message, details, cause)
}

// NewErrorOfKind is used by the store error mapping table.
func NewErrorOfKind(kind ErrorKind, message string, cause error) *AppError {
	return newAppError(kind, 0, message, nil, cause)
}

// IsAppError reports whether err (or anything it wraps) is already typed.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr != nil
}

// AsAppError returns the typed error in err's chain, if any.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr != nil {
		return appErr, true
	}
	return nil, false
}

// KindOf returns the kind of a typed error and KindInternal for anything else.
func KindOf(err error) ErrorKind {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Kind
	}
	return KindInternal
}

// ErrorReport is the uniform, client-safe shape of any failure.
type ErrorReport struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Details    any    `json:"details,omitempty"`
	Stack      string `json:"stack,omitempty"`
}

const unknownErrorMessage = "An unknown error occurred"

// NormalizeError turns any value into an ErrorReport and logs it. It never
// panics: nil, typed nil pointers and values whose Error method panics all
// collapse to the generic 500 report.
func NormalizeError(v any, devMode bool) (report ErrorReport) {
	defer func() {
		if r := recover(); r != nil {
			report = ErrorReport{Message: unknownErrorMessage, StatusCode: http.StatusInternalServerError}
		}
	}()

	if isNil(v) {
		return ErrorReport{Message: unknownErrorMessage, StatusCode: http.StatusInternalServerError}
	}

	var (
		message string
		status  = http.StatusInternalServerError
		details any
		stack   string
		name    = fmt.Sprintf("%T", v)
	)

	switch val := v.(type) {
	case error:
		message = val.Error()
		if appErr, ok := AsAppError(val); ok {
			status = appErr.StatusCode
			details = appErr.Details
			stack = appErr.StackTrace()
		} else {
			stack = fmt.Sprintf("%+v", pkgerrors.WithStack(val))
		}
	case string:
		message = val
	case fmt.Stringer:
		message = val.String()
	default:
		message = fmt.Sprint(val)
	}
	if message == "" {
		message = "An unexpected error occurred"
	}
	if status == 0 {
		status = http.StatusInternalServerError
	}

	Logger.WithFields(logrus.Fields{
		"name":    name,
		"status":  status,
		"details": details,
	}).Error(message)

	report = ErrorReport{Message: message, StatusCode: status}
	if devMode {
		report.Details = details
		report.Stack = stack
	}
	return report
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// HandleAppError centralizes responding to errors on JSON endpoints.
func HandleAppError(w http.ResponseWriter, err error, devMode bool) {
	if appErr, ok := AsAppError(err); ok {
		var details any
		if devMode || appErr.Kind == KindValidation {
			details = appErr.Details
		}
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, details, appErr.Err)
		return
	}
	// Fallback for unexpected error types
	RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
}
