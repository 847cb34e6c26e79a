package dto

import domainerr "github.com/leoandrade/payment-api/internal/domain/error"

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MessageResponse is the body of plain confirmation replies
type MessageResponse struct {
	Message string `json:"message"`
}

// NewErrorResponse builds the client-facing body for a domain error
func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: domainerr.PublicMessage(err),
	}
}
