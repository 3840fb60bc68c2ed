package dto

import "net/http"

// API error codes, formatted ERR_<CATEGORY>
const (
	ErrCodeInternal         = "ERR_INTERNAL"
	ErrCodeValidation       = "ERR_VALIDATION"
	ErrCodeInvalidInput     = "ERR_INVALID_INPUT"
	ErrCodeInvalidJSON      = "ERR_INVALID_JSON"
	ErrCodeUnauthorized     = "ERR_UNAUTHORIZED"
	ErrCodeTokenExpired     = "ERR_TOKEN_EXPIRED"
	ErrCodeTokenInvalid     = "ERR_TOKEN_INVALID"
	ErrCodeNotFound         = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists    = "ERR_ALREADY_EXISTS"
	ErrCodeConflict         = "ERR_CONFLICT"
	ErrCodeExtractionFailed = "ERR_EXTRACTION_FAILED"
	ErrCodeUnavailable      = "ERR_UNAVAILABLE"
	ErrCodeRenderTimeout    = "ERR_RENDER_TIMEOUT"
	ErrCodeRenderFailed     = "ERR_RENDER_FAILED"
	ErrCodeRequestTooLarge  = "ERR_REQUEST_TOO_LARGE"
	ErrCodeRateLimited      = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps API error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:         http.StatusInternalServerError,
	ErrCodeValidation:       http.StatusBadRequest,
	ErrCodeInvalidInput:     http.StatusBadRequest,
	ErrCodeInvalidJSON:      http.StatusBadRequest,
	ErrCodeUnauthorized:     http.StatusUnauthorized,
	ErrCodeTokenExpired:     http.StatusUnauthorized,
	ErrCodeTokenInvalid:     http.StatusUnauthorized,
	ErrCodeNotFound:         http.StatusNotFound,
	ErrCodeAlreadyExists:    http.StatusConflict,
	ErrCodeConflict:         http.StatusConflict,
	ErrCodeExtractionFailed: http.StatusUnprocessableEntity,
	ErrCodeUnavailable:      http.StatusServiceUnavailable,
	ErrCodeRenderTimeout:    http.StatusServiceUnavailable,
	ErrCodeRenderFailed:     http.StatusInternalServerError,
	ErrCodeRequestTooLarge:  http.StatusRequestEntityTooLarge,
	ErrCodeRateLimited:      http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status for code, 500 when unknown
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// domainErrorCodes maps domain and renderer codes onto API codes
var domainErrorCodes = map[string]string{
	"NOT_FOUND":         ErrCodeNotFound,
	"ALREADY_EXISTS":    ErrCodeAlreadyExists,
	"CONFLICT":          ErrCodeConflict,
	"INVALID_INPUT":     ErrCodeInvalidInput,
	"INVALID_MARGINS":   ErrCodeInvalidInput,
	"UNAUTHORIZED":      ErrCodeUnauthorized,
	"EXTRACTION_FAILED": ErrCodeExtractionFailed,
	"UNAVAILABLE":       ErrCodeUnavailable,
	"TIMEOUT":           ErrCodeRenderTimeout,
	"BROWSER_ERROR":     ErrCodeRenderFailed,
	"TEMPLATE_ERROR":    ErrCodeRenderFailed,
}

// NormalizeErrorCode converts a domain code to its API code. Codes that are
// already API codes pass through; anything else becomes ERR_INTERNAL.
func NormalizeErrorCode(code string) string {
	if c, ok := domainErrorCodes[code]; ok {
		return c
	}
	if _, ok := ErrorCodeHTTPStatus[code]; ok {
		return code
	}
	return ErrCodeInternal
}
