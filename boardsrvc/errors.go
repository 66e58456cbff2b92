package boardsrvc

import (
	"net/http"

	"github.com/gemarathon/backend/srvcerror"
)

const ErrCodeClassNotFound = "class_not_found"

func newErrClassNotFound(grade string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeClassNotFound,
		"לא נמצא גיליון לכיתה: "+grade,
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeStudentNotFound = "student_not_found"

func newErrStudentNotFound(name string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeStudentNotFound,
		"תלמיד לא נמצא: "+name,
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeValidation = "validation_error"

func newErrValidation(msg string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeValidation,
		msg,
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeTransport = "transport_error"

func newErrTransport() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTransport,
		"הגיליון אינו זמין כרגע",
	).SetHttpStatusCode(http.StatusBadGateway)
}
