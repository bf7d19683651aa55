package errors

import "net/http"

// ErrorResp is the typed failure raised by usecases and repositories.
// Handlers never inspect messages, only the carried HTTP code.
type ErrorResp struct {
	HttpCode int
	Code     string
	Message  string
}

func (e *ErrorResp) Error() string {
	return e.Message
}

func BadRequest(message string) error {
	return &ErrorResp{HttpCode: http.StatusBadRequest, Code: "INVALID_ARGUMENT", Message: message}
}

func NotFound(message string) error {
	return &ErrorResp{HttpCode: http.StatusNotFound, Code: "NOT_FOUND", Message: message}
}

func Conflict(message string) error {
	return &ErrorResp{HttpCode: http.StatusConflict, Code: "CONFLICT", Message: message}
}

// UnprocessableEntity marks an illegal state transition or an
// ownership/state mismatch.
func UnprocessableEntity(message string) error {
	return &ErrorResp{HttpCode: http.StatusUnprocessableEntity, Code: "INVALID_STATE", Message: message}
}

func UnauthorizedError(message string) error {
	return &ErrorResp{HttpCode: http.StatusUnauthorized, Code: "UNAUTHENTICATED", Message: message}
}

func ForbiddenError(message string) error {
	return &ErrorResp{HttpCode: http.StatusForbidden, Code: "FORBIDDEN", Message: message}
}

// PartialSuccess reports that a write committed but a dependent write
// did not, leaving records to be reconciled asynchronously.
func PartialSuccess(message string) error {
	return &ErrorResp{HttpCode: http.StatusInternalServerError, Code: "PARTIAL_SUCCESS", Message: message}
}

func InternalServerError(message string) error {
	return &ErrorResp{HttpCode: http.StatusInternalServerError, Code: "INTERNAL_SERVER_ERROR", Message: message}
}

func HttpCode(err error) int {
	if e, ok := err.(*ErrorResp); ok {
		return e.HttpCode
	}
	return http.StatusInternalServerError
}

func ErrorCode(err error) string {
	if e, ok := err.(*ErrorResp); ok {
		return e.Code
	}
	return "INTERNAL_SERVER_ERROR"
}
