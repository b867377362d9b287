package errors

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound   = fmt.Errorf("record not found")
	ErrBadRequest = fmt.Errorf("bad request")

	ErrEquipmentNotFound   = fmt.Errorf("equipment not found")
	ErrTeamNotFound        = fmt.Errorf("team not found")
	ErrUserNotFound        = fmt.Errorf("user not found")
	ErrRequestNotFound     = fmt.Errorf("maintenance request not found")
	ErrInvalidTransition   = fmt.Errorf("status transition is not allowed")
	ErrDurationRequired    = fmt.Errorf("duration (hours spent) must be recorded before completing a repair")
	ErrTechnicianNotInTeam = fmt.Errorf("assigned technician does not belong to the equipment's maintenance team")
)

// HttpError carries the status code and a user-facing message alongside the
// underlying cause. Controllers build these; ErrorResponse renders them.
type HttpError struct {
	Code    int                    `json:"-"`
	Message string                 `json:"message"`
	Err     error                  `json:"-"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// StatusCodes maps sentinel errors to HTTP status codes for responses.
var StatusCodes = map[error]int{
	ErrNotFound:            http.StatusNotFound,
	ErrEquipmentNotFound:   http.StatusNotFound,
	ErrTeamNotFound:        http.StatusNotFound,
	ErrUserNotFound:        http.StatusNotFound,
	ErrRequestNotFound:     http.StatusNotFound,
	ErrBadRequest:          http.StatusBadRequest,
	ErrInvalidTransition:   http.StatusUnprocessableEntity,
	ErrDurationRequired:    http.StatusUnprocessableEntity,
	ErrTechnicianNotInTeam: http.StatusUnprocessableEntity,
}
