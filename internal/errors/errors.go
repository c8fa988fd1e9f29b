// Package errors defines AppError, the error type returned by services and
// rendered by handlers. Handlers only expose Code and Message; Internal is logged.
package errors

import (
	"errors"
	"net/http"
)

// AppError is an error with a stable code and the HTTP status it maps to.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Internal }

// Is matches any AppError with the same code, so copies made by Wrap and
// WithMessage still satisfy errors.Is against their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// Wrap copies sentinel and attaches internal as the cause.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage copies sentinel with a caller-facing message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// StatusCode returns the HTTP status for err: the AppError's own status, or
// 500 for anything else.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Asset type errors.
var (
	ErrAssetTypeNotFound  = &AppError{Code: "ASSET_TYPE_NOT_FOUND", Message: "Asset type not found", StatusCode: http.StatusNotFound}
	ErrDuplicateAssetType = &AppError{Code: "DUPLICATE_ASSET_TYPE", Message: "An asset type with this name already exists", StatusCode: http.StatusConflict}
	ErrAssetTypeInUse     = &AppError{Code: "ASSET_TYPE_IN_USE", Message: "Asset type is used by existing assets", StatusCode: http.StatusConflict}
)

// Asset errors.
var (
	ErrAssetNotFound  = &AppError{Code: "ASSET_NOT_FOUND", Message: "Asset not found", StatusCode: http.StatusNotFound}
	ErrDuplicateAsset = &AppError{Code: "DUPLICATE_ASSET", Message: "An asset with this ticker already exists", StatusCode: http.StatusConflict}
	ErrAssetInUse     = &AppError{Code: "ASSET_IN_USE", Message: "Asset is used by existing transactions", StatusCode: http.StatusConflict}
)

// Broker errors.
var (
	ErrBrokerNotFound     = &AppError{Code: "BROKER_NOT_FOUND", Message: "Broker not found", StatusCode: http.StatusNotFound}
	ErrDuplicateBroker    = &AppError{Code: "DUPLICATE_BROKER", Message: "A broker with this name already exists", StatusCode: http.StatusConflict}
	ErrDuplicateBrokerTax = &AppError{Code: "DUPLICATE_BROKER_TAX_ID", Message: "A broker with this tax ID already exists", StatusCode: http.StatusConflict}
	ErrBrokerInUse        = &AppError{Code: "BROKER_IN_USE", Message: "Broker is used by existing transactions", StatusCode: http.StatusConflict}
)

// Transaction errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrInvalidQuantity     = &AppError{Code: "INVALID_QUANTITY", Message: "Quantity must be greater than zero", StatusCode: http.StatusBadRequest}
	ErrInvalidUnitPrice    = &AppError{Code: "INVALID_UNIT_PRICE", Message: "Unit price must be greater than zero", StatusCode: http.StatusBadRequest}
	ErrInvalidOperation    = &AppError{Code: "INVALID_OPERATION", Message: "Operation must be buy or sell", StatusCode: http.StatusBadRequest}
)
