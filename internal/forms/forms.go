package forms

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"taskdeck/internal/model"
)

// Each form declares the shape of one submission: bind tags for the request
// body, validate tags for the constraints. Handlers bind + validate before
// any business logic runs.

// RegisterForm is the /register submission.
type RegisterForm struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// LoginForm is the /login submission.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// TaskForm is the /create_task and /edit-task submission. EndDate stays a
// string at the boundary; the wire format is day-month-year.
type TaskForm struct {
	Title       string `form:"task" validate:"required"`
	EndDate     string `form:"end_date" validate:"required,datetime=02-01-2006"`
	Description string `form:"description"`
	Tag         string `form:"tag" validate:"required,oneof=Birthday None Personal Urgent Work"`
}

// DueDate parses the submitted end date. Call only after validation.
func (f *TaskForm) DueDate() (time.Time, error) {
	return time.Parse(model.DueDateFormat, f.EndDate)
}

// FromTask pre-populates the form from an existing record for editing.
func FromTask(t *model.Task) *TaskForm {
	return &TaskForm{
		Title:       t.Title,
		EndDate:     t.DueDate(),
		Description: t.Description,
		Tag:         t.Tag.String(),
	}
}

// ContactForm is the /contact submission.
type ContactForm struct {
	Email   string `form:"email" validate:"required,email"`
	Message string `form:"message" validate:"required"`
}

// Errors flattens a validator error into field name -> message for inline
// feedback when re-rendering a form.
func Errors(err error) map[string]string {
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = "invalid submission"
		return out
	}
	for _, fe := range verrs {
		out[fieldName(fe)] = message(fe)
	}
	return out
}

func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "Title":
		return "task"
	case "EndDate":
		return "end_date"
	default:
		return strings.ToLower(fe.Field())
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must be provided"
	case "email":
		return "must be a valid email address"
	case "datetime":
		return "must be a date in dd-mm-yyyy format"
	case "oneof":
		return fmt.Sprintf("must be one of %s", strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return "is invalid"
	}
}
