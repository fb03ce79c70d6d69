package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user id does not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when registering with an email that already has an account.
	ErrEmailTaken = errors.New("you've already signed up with this email, please log in instead")
	// ErrNoSuchEmail is returned at login when no account matches the email.
	ErrNoSuchEmail = errors.New("there's no user with that email, please try again")
	// ErrWrongPassword is returned at login when the password does not match.
	ErrWrongPassword = errors.New("wrong password, please try again")
	// ErrTaskNotFound is returned when a task id does not resolve.
	ErrTaskNotFound = errors.New("task not found")
	// ErrNotTaskOwner is returned when a user acts on a task they do not own.
	ErrNotTaskOwner = errors.New("task belongs to another user")
	// ErrInvalidTag is returned when a tag is outside the closed set.
	ErrInvalidTag = errors.New("unknown tag")
	// ErrMailDelivery is returned when the contact message could not be sent.
	ErrMailDelivery = errors.New("could not deliver message")
)

// HTTPError carries a deterministic status, user-facing message, and machine code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors so every handler resolves
// failures to the same status and message.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrTaskNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TASK_NOT_FOUND")
	case errors.Is(err, ErrNotTaskOwner):
		return NewHTTPError(http.StatusNotFound, ErrTaskNotFound.Error(), "TASK_NOT_FOUND")
	case errors.Is(err, ErrInvalidTag):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_TAG")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrNoSuchEmail):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "NO_SUCH_EMAIL")
	case errors.Is(err, ErrWrongPassword):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "WRONG_PASSWORD")
	case errors.Is(err, ErrMailDelivery):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "MAIL_DELIVERY_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
