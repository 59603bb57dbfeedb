package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
)

// Authentication error codes
const (
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	// ErrCodeForbidden is used when the user lacks permission
	ErrCodeForbidden = "ERR_FORBIDDEN"
	// ErrCodeTokenInvalid is used when the auth token is invalid or expired
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
	// ErrCodeConcurrencyConflict is used when optimistic locking fails
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeBusinessRule is used for generic business rule violations
	ErrCodeBusinessRule = "ERR_BUSINESS_RULE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeTokenInvalid: http.StatusUnauthorized,

	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConflict:            http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,

	ErrCodeInvalidState: http.StatusUnprocessableEntity,
	ErrCodeBusinessRule: http.StatusUnprocessableEntity,
}

// DomainErrorCodeMapping maps domain error codes to API error codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":      ErrCodeNotFound,
	"NO_VOUCHER":     ErrCodeNotFound,
	"ALREADY_EXISTS": ErrCodeAlreadyExists,

	"APARTMENT_OCCUPIED":   ErrCodeConflict,
	"CONCURRENCY_CONFLICT": ErrCodeConcurrencyConflict,

	"UNAUTHORIZED":        ErrCodeUnauthorized,
	"INVALID_CREDENTIALS": ErrCodeUnauthorized,
	"INVALID_TOKEN":       ErrCodeTokenInvalid,
	"FORBIDDEN":           ErrCodeForbidden,

	"INVALID_STATE":       ErrCodeInvalidState,
	"RECEIPT_NOT_PAYABLE": ErrCodeBusinessRule,

	"INVALID_INPUT":          ErrCodeInvalidInput,
	"INVALID_EMAIL":          ErrCodeInvalidInput,
	"INVALID_RESIDENT_NAME":  ErrCodeInvalidInput,
	"INVALID_ROLE":           ErrCodeInvalidInput,
	"INVALID_SERVICE":        ErrCodeInvalidInput,
	"INVALID_APARTMENT_NAME": ErrCodeInvalidInput,
	"INVALID_RENT":           ErrCodeInvalidInput,
	"INVALID_ALLOCATION":     ErrCodeInvalidInput,
	"INVALID_RESIDENT":       ErrCodeInvalidInput,
	"INVALID_APARTMENT":      ErrCodeInvalidInput,
	"INVALID_PRICE":          ErrCodeInvalidInput,
	"INVALID_PRICES":         ErrCodeInvalidInput,
	"INVALID_MONTH":          ErrCodeInvalidInput,
	"INVALID_USAGE":          ErrCodeInvalidInput,
	"INVALID_AMOUNT":         ErrCodeInvalidInput,
	"INVALID_VOUCHER":        ErrCodeInvalidInput,

	"INTERNAL_ERROR": ErrCodeInternal,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes default to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// NormalizeErrorCode converts a domain error code to the API format.
// Codes already in the API format or unknown are returned as-is.
func NormalizeErrorCode(code string) string {
	if apiCode, ok := DomainErrorCodeMapping[code]; ok {
		return apiCode
	}
	return code
}
