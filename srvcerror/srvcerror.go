package srvcerror

import "net/http"

// Error is the service-layer error: a stable machine code, a message
// that is safe to show to the user, and optional debug context that
// stays in the logs.
type Error struct {
	code      string
	msgToUser string
	dbgErr    error

	httpStatus int
}

func New(code string, msgToUser string) *Error {
	return &Error{code: code, msgToUser: msgToUser}
}

func (e *Error) Error() string {
	return e.msgToUser
}

func (e *Error) ErrorCode() string {
	return e.code
}

func (e *Error) DebugInfo() error {
	return e.dbgErr
}

func (e *Error) Unwrap() error {
	return e.dbgErr
}

func (e *Error) SetDebug(err error) *Error {
	e.dbgErr = err
	return e
}

func (e *Error) HttpStatusCode() int {
	if e.httpStatus == 0 {
		return http.StatusInternalServerError
	}
	return e.httpStatus
}

func (e *Error) SetHttpStatusCode(code int) *Error {
	e.httpStatus = code
	return e
}

const ErrCodeInternalServerError = "internal_server_error"

func ErrInternalSE() *Error {
	return New(
		ErrCodeInternalServerError,
		"שגיאה פנימית בשרת",
	).SetHttpStatusCode(http.StatusInternalServerError)
}
