package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies business-rule failures so callers switch on the kind
// instead of matching message strings.
type ErrorKind string

const (
	KindValidation        ErrorKind = "validation"
	KindReferential       ErrorKind = "referential"
	KindConflict          ErrorKind = "conflict"
	KindNotFound          ErrorKind = "not_found"
	KindInsufficientStock ErrorKind = "insufficient_stock"
	KindUnexpected        ErrorKind = "unexpected"
)

// HTTPStatus maps the kind to the response status code.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindValidation, KindReferential, KindConflict, KindInsufficientStock:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error // underlying cause, server-side detail only
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func AsAppError(err error) (*AppError, bool) {
	var ae *AppError
	ok := errors.As(err, &ae)
	return ae, ok
}

func Validationf(format string, args ...interface{}) error {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Referentialf(format string, args ...interface{}) error {
	return &AppError{Kind: KindReferential, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...interface{}) error {
	return &AppError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...interface{}) error {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func InsufficientStockf(format string, args ...interface{}) error {
	return &AppError{Kind: KindInsufficientStock, Message: fmt.Sprintf(format, args...)}
}

// Unexpected wraps a storage or infrastructure failure. The cause stays
// server-side; callers only ever see the generic message.
func Unexpected(err error) error {
	return &AppError{Kind: KindUnexpected, Message: "internal error", Err: err}
}
