package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	// Messages double as API response bodies, so they must not drift
	if ErrTokenMissing.Error() != "Token is missing!" {
		t.Errorf("ErrTokenMissing has unexpected message: %s", ErrTokenMissing.Error())
	}
	if ErrInvalidToken.Error() != "Token is invalid!" {
		t.Errorf("ErrInvalidToken has unexpected message: %s", ErrInvalidToken.Error())
	}
	if ErrForbidden.Error() != "You are not allowed to perform that function!" {
		t.Errorf("ErrForbidden has unexpected message: %s", ErrForbidden.Error())
	}
	if ErrPaymentNotFound.Error() != "No payment found!" {
		t.Errorf("ErrPaymentNotFound has unexpected message: %s", ErrPaymentNotFound.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidRequest", ErrInvalidRequest, 4000},
		{"InvalidPaymentMethod", ErrInvalidPaymentMethod, 4001},
		{"MissingCardData", ErrMissingCardData, 4002},
		{"PaymentDeclined", ErrPaymentDeclined, 4003},
		{"TokenMissing", ErrTokenMissing, 4010},
		{"InvalidToken", ErrInvalidToken, 4011},
		{"InvalidCredentials", ErrInvalidCredentials, 4012},
		{"Forbidden", ErrForbidden, 4013},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"PaymentNotFound", ErrPaymentNotFound, 4041},
		{"DatabaseConnection", ErrDatabaseConnection, 5001},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrPaymentNotFound), 4041},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"TokenMissing", ErrTokenMissing, http.StatusUnauthorized},
		{"InvalidToken", ErrInvalidToken, http.StatusUnauthorized},
		{"Forbidden", ErrForbidden, http.StatusUnauthorized},
		{"UserNotFound", ErrUserNotFound, http.StatusNotFound},
		{"PaymentNotFound", fmt.Errorf("lookup: %w", ErrPaymentNotFound), http.StatusNotFound},
		{"InvalidPaymentMethod", ErrInvalidPaymentMethod, http.StatusBadRequest},
		{"PaymentDeclined", ErrPaymentDeclined, http.StatusBadRequest},
		{"DatabaseConnection", ErrDatabaseConnection, http.StatusInternalServerError},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HTTPStatus(tc.err); got != tc.expected {
				t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.expected)
			}
		})
	}
}

func TestPublicMessage(t *testing.T) {
	wrapped := fmt.Errorf("%w: connection refused on 10.0.0.3", ErrDatabaseConnection)
	if got := PublicMessage(wrapped); got != "Internal server error" {
		t.Errorf("PublicMessage(db error) = %q, want generic message", got)
	}

	declined := NewPaymentError(0, 7, "credit card", "issuer refused", ErrPaymentDeclined)
	if got := PublicMessage(declined); got != ErrPaymentDeclined.Error() {
		t.Errorf("PublicMessage(declined) = %q, want %q", got, ErrPaymentDeclined.Error())
	}
}

func TestPaymentError(t *testing.T) {
	err := NewPaymentError(12, 3, "boleto", "insert failed", ErrDatabaseConnection)

	expectedErrMsg := "payment error for ID 12 (owner: 3, method: boleto): insert failed - database connection error"
	if err.Error() != expectedErrMsg {
		t.Errorf("PaymentError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrDatabaseConnection) {
		t.Errorf("errors.Is(err, ErrDatabaseConnection) = false, want true")
	}

	var paymentErr *PaymentError
	if !errors.As(err, &paymentErr) {
		t.Fatalf("errors.As failed: not a *PaymentError")
	}

	fields := paymentErr.LogFields()
	if fields["owner_id"] != uint64(3) {
		t.Errorf("LogFields owner_id = %v, want 3", fields["owner_id"])
	}
	if fields["error_code"] != CodeDatabaseConnection {
		t.Errorf("LogFields error_code = %v, want %d", fields["error_code"], CodeDatabaseConnection)
	}
}

func TestErrorHelperFunctions(t *testing.T) {
	if IsNotFoundError(ErrInvalidToken) {
		t.Errorf("IsNotFoundError(ErrInvalidToken) = true, want false")
	}

	if !IsNotFoundError(fmt.Errorf("wrapped: %w", ErrUserNotFound)) {
		t.Errorf("IsNotFoundError(wrapped user not found) = false, want true")
	}
}
