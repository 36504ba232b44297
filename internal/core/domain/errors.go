package domain

import (
	"fmt"
	"net/http"
)

// Error names as they appear in the error envelope.
const (
	NameNotFound           = "NotFoundError"
	NameEmailAlreadyTaken  = "EmailAlreadyTakenError"
	NameEmailNotRegistered = "EmailNotRegisteredError"
	NameWrongPassword      = "WrongPasswordError"
	NameInvalidToken       = "InvalidTokenError"
	NameInsufficientAccess = "InsufficientAccessError"
	NameCarAlreadyRented   = "CarAlreadyRentedError"
)

// Error is the API error carried across layers. It serializes to the inner
// object of the {"error":{"name","message","details"}} envelope; Details is
// rendered as JSON null when absent.
type Error struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Details any    `json:"details"`

	status int
}

func (e *Error) Error() string { return e.Message }

// Status returns the HTTP status code associated with the error.
func (e *Error) Status() int {
	if e.status == 0 {
		return http.StatusInternalServerError
	}
	return e.status
}

// IsError reports whether err is a domain *Error with the given name.
func IsError(err error, name string) bool {
	e, ok := err.(*Error)
	return ok && e.Name == name
}

func NewNotFoundError(message string) *Error {
	if message == "" {
		message = "Not found!"
	}
	return &Error{Name: NameNotFound, Message: message, status: http.StatusNotFound}
}

func NewEmailAlreadyTakenError(email string) *Error {
	return &Error{
		Name:    NameEmailAlreadyTaken,
		Message: fmt.Sprintf("Email %s is already taken!", email),
		Details: map[string]string{"email": email},
		status:  http.StatusUnprocessableEntity,
	}
}

func NewEmailNotRegisteredError(email string) *Error {
	return &Error{
		Name:    NameEmailNotRegistered,
		Message: fmt.Sprintf("Email %s is not registered!", email),
		Details: map[string]string{"email": email},
		status:  http.StatusNotFound,
	}
}

func NewWrongPasswordError() *Error {
	return &Error{Name: NameWrongPassword, Message: "Wrong password!", status: http.StatusUnauthorized}
}

func NewInvalidTokenError(reason string) *Error {
	e := &Error{Name: NameInvalidToken, Message: "Invalid token!", status: http.StatusUnauthorized}
	if reason != "" {
		e.Details = map[string]string{"reason": reason}
	}
	return e
}

func NewInsufficientAccessError(actualRole string) *Error {
	return &Error{
		Name:    NameInsufficientAccess,
		Message: "Access forbidden!",
		Details: map[string]string{"role": actualRole},
		status:  http.StatusUnauthorized,
	}
}

func NewCarAlreadyRentedError(car *Car) *Error {
	e := &Error{Name: NameCarAlreadyRented, status: http.StatusUnprocessableEntity}
	if car != nil {
		e.Message = fmt.Sprintf("%s is already rented!", car.Name)
		e.Details = map[string]string{"carId": car.ID, "name": car.Name}
	} else {
		e.Message = "Car is already rented!"
	}
	return e
}
