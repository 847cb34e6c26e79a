package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest       = 4000
	CodeInvalidPaymentMethod = 4001
	CodeMissingCardData      = 4002
	CodePaymentDeclined      = 4003
	CodeConstraintViolation  = 4005
	CodeTokenMissing         = 4010
	CodeInvalidToken         = 4011
	CodeInvalidCredentials   = 4012
	CodeForbidden            = 4013
	CodeUserNotFound         = 4040
	CodePaymentNotFound      = 4041

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5001
)

// Base error types
var (
	// ErrTokenMissing is returned when a protected route is called without an access token
	ErrTokenMissing = errors.New("Token is missing!")

	// ErrInvalidToken is returned when the access token cannot be verified or no longer maps to a user
	ErrInvalidToken = errors.New("Token is invalid!")

	// ErrInvalidCredentials is returned when basic-auth login fails for any reason
	ErrInvalidCredentials = errors.New("Could not verify")

	// ErrForbidden is returned when a non-admin caller reaches an admin-only operation
	ErrForbidden = errors.New("You are not allowed to perform that function!")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("No user found!")

	// ErrPaymentNotFound is returned when the payment doesn't exist or isn't visible to the caller
	ErrPaymentNotFound = errors.New("No payment found!")

	// ErrInvalidPaymentMethod is returned for any payment_method other than bank slip or credit card
	ErrInvalidPaymentMethod = errors.New("Invalid payment method!")

	// ErrMissingCardData is returned when a credit card payment arrives without complete card fields
	ErrMissingCardData = errors.New("Credit card data is required for credit card payments!")

	// ErrPaymentDeclined is returned when the card authorization is refused
	ErrPaymentDeclined = errors.New("Unsuccessful payment... Please, enter a valid card!")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidPaymentMethod):
		return CodeInvalidPaymentMethod
	case errors.Is(err, ErrMissingCardData):
		return CodeMissingCardData
	case errors.Is(err, ErrPaymentDeclined):
		return CodePaymentDeclined
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrTokenMissing):
		return CodeTokenMissing
	case errors.Is(err, ErrInvalidToken):
		return CodeInvalidToken
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrPaymentNotFound):
		return CodePaymentNotFound
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps a domain error onto the status code the API answers with.
// Forbidden shares 401 with the authentication failures; clients tell them apart by code.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrTokenMissing),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrForbidden):
		return http.StatusUnauthorized
	case IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrInvalidPaymentMethod),
		errors.Is(err, ErrMissingCardData),
		errors.Is(err, ErrPaymentDeclined),
		errors.Is(err, ErrConstraintViolation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message safe to send back to a client.
// Server-side failures collapse to a generic text so driver details never leak.
func PublicMessage(err error) string {
	if HTTPStatus(err) == http.StatusInternalServerError {
		return "Internal server error"
	}
	for _, known := range []error{
		ErrTokenMissing, ErrInvalidToken, ErrInvalidCredentials, ErrForbidden,
		ErrUserNotFound, ErrPaymentNotFound, ErrInvalidPaymentMethod,
		ErrMissingCardData, ErrPaymentDeclined, ErrConstraintViolation,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return err.Error()
}

// PaymentError carries the context of a failed payment operation for logging
type PaymentError struct {
	PaymentID uint64
	OwnerID   uint64
	Method    string
	Reason    string
	Err       error
}

// Error implements the error interface for PaymentError
func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment error for ID %d (owner: %d, method: %s): %s - %v",
		e.PaymentID, e.OwnerID, e.Method, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PaymentError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "payment_error",
		"payment_id": e.PaymentID,
		"owner_id":   e.OwnerID,
		"method":     e.Method,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewPaymentError creates a detailed payment error
func NewPaymentError(paymentID, ownerID uint64, method, reason string, err error) error {
	return &PaymentError{
		PaymentID: paymentID,
		OwnerID:   ownerID,
		Method:    method,
		Reason:    reason,
		Err:       err,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrPaymentNotFound)
}
