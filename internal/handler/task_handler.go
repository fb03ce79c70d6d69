package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "taskdeck/internal/errors"
	"taskdeck/internal/forms"
	"taskdeck/internal/model"
	"taskdeck/internal/service"
	"taskdeck/internal/session"
)

// TaskHandler handles the dashboard and task CRUD pages. Every route here
// sits behind the session guard, so session.FromContext is always populated.
type TaskHandler struct {
	taskService service.TaskService
	sessions    *session.Manager
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(taskService service.TaskService, sessions *session.Manager) *TaskHandler {
	return &TaskHandler{taskService: taskService, sessions: sessions}
}

// Dashboard lists the user's tasks. A session user may only view their own
// dashboard; a mismatched path id redirects to it with a notice.
func (h *TaskHandler) Dashboard(c echo.Context) error {
	sess := session.FromContext(c)

	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		return renderError(c, sess, apperrors.ErrUserNotFound)
	}
	if uint(userID) != sess.UserID {
		h.sessions.AddFlash(c.Request().Context(), sess.ID, "That dashboard belongs to another user.")
		return c.Redirect(http.StatusSeeOther, dashboardPath(sess.UserID))
	}

	tasks, err := h.taskService.ListByOwner(c.Request().Context(), sess.UserID)
	if err != nil {
		return renderError(c, sess, err)
	}

	flashes := h.sessions.PopFlashes(c.Request().Context(), sess.ID)
	return render(c, http.StatusOK, "dashboard", sess, flashes, echo.Map{
		"Title": "Dashboard",
		"Tasks": tasks,
	})
}

// ShowCreate renders an empty task form.
func (h *TaskHandler) ShowCreate(c echo.Context) error {
	sess := session.FromContext(c)
	flashes := h.sessions.PopFlashes(c.Request().Context(), sess.ID)
	return render(c, http.StatusOK, "task_form", sess, flashes, echo.Map{
		"Title":  "New task",
		"Form":   &forms.TaskForm{Tag: model.TagNone.String()},
		"Tags":   model.Tags(),
		"Action": "/create_task",
	})
}

// Create persists a task owned by the session user. Invalid input re-renders
// the form with field errors and persists nothing.
func (h *TaskHandler) Create(c echo.Context) error {
	sess := session.FromContext(c)

	var form forms.TaskForm
	if err := c.Bind(&form); err != nil {
		return renderError(c, sess, err)
	}
	if err := c.Validate(&form); err != nil {
		return h.renderTaskForm(c, sess, &form, forms.Errors(err), "New task", "/create_task", false)
	}

	input, err := taskInput(&form)
	if err != nil {
		return renderError(c, sess, err)
	}
	if _, err := h.taskService.Create(c.Request().Context(), sess.UserID, input); err != nil {
		return renderError(c, sess, err)
	}
	return c.Redirect(http.StatusSeeOther, dashboardPath(sess.UserID))
}

// ShowEdit renders the task form pre-populated from the stored record. An
// unknown id is an explicit not-found page, and tasks owned by someone else
// look the same.
func (h *TaskHandler) ShowEdit(c echo.Context) error {
	sess := session.FromContext(c)

	taskID, err := parseTaskID(c)
	if err != nil {
		return renderError(c, sess, apperrors.ErrTaskNotFound)
	}
	task, err := h.taskService.Get(c.Request().Context(), taskID, sess.UserID)
	if err != nil {
		return renderError(c, sess, err)
	}

	flashes := h.sessions.PopFlashes(c.Request().Context(), sess.ID)
	return render(c, http.StatusOK, "task_form", sess, flashes, echo.Map{
		"Title":  "Edit task",
		"Form":   forms.FromTask(task),
		"Tags":   model.Tags(),
		"Action": "/edit-task/" + c.Param("task_id"),
		"IsEdit": true,
	})
}

// Edit overwrites the four mutable fields and returns to the dashboard.
func (h *TaskHandler) Edit(c echo.Context) error {
	sess := session.FromContext(c)

	taskID, err := parseTaskID(c)
	if err != nil {
		return renderError(c, sess, apperrors.ErrTaskNotFound)
	}

	var form forms.TaskForm
	if err := c.Bind(&form); err != nil {
		return renderError(c, sess, err)
	}
	if err := c.Validate(&form); err != nil {
		return h.renderTaskForm(c, sess, &form, forms.Errors(err), "Edit task", "/edit-task/"+c.Param("task_id"), true)
	}

	input, err := taskInput(&form)
	if err != nil {
		return renderError(c, sess, err)
	}
	if _, err := h.taskService.Update(c.Request().Context(), taskID, sess.UserID, input); err != nil {
		return renderError(c, sess, err)
	}
	return c.Redirect(http.StatusSeeOther, dashboardPath(sess.UserID))
}

// Delete removes a task permanently and returns to the dashboard. Deleting
// an unknown id is an explicit not-found page.
func (h *TaskHandler) Delete(c echo.Context) error {
	sess := session.FromContext(c)

	taskID, err := parseTaskID(c)
	if err != nil {
		return renderError(c, sess, apperrors.ErrTaskNotFound)
	}
	if err := h.taskService.Delete(c.Request().Context(), taskID, sess.UserID); err != nil {
		return renderError(c, sess, err)
	}
	return c.Redirect(http.StatusSeeOther, dashboardPath(sess.UserID))
}

func (h *TaskHandler) renderTaskForm(c echo.Context, sess *session.Session, form *forms.TaskForm, fieldErrors map[string]string, title, action string, isEdit bool) error {
	return render(c, http.StatusBadRequest, "task_form", sess, nil, echo.Map{
		"Title":  title,
		"Form":   form,
		"Tags":   model.Tags(),
		"Action": action,
		"IsEdit": isEdit,
		"Errors": fieldErrors,
	})
}

// taskInput converts a validated form into service input. The datetime
// validator already vouched for the date format.
func taskInput(form *forms.TaskForm) (service.TaskInput, error) {
	due, err := form.DueDate()
	if err != nil {
		return service.TaskInput{}, err
	}
	return service.TaskInput{
		Title:       form.Title,
		EndDate:     due,
		Description: form.Description,
		Tag:         model.Tag(form.Tag),
	}, nil
}

func parseTaskID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("task_id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
