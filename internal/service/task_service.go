package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "taskdeck/internal/errors"
	"taskdeck/internal/model"
	"taskdeck/internal/repository"
)

// TaskInput carries the four mutable task fields from a validated form.
type TaskInput struct {
	Title       string
	EndDate     time.Time
	Description string
	Tag         model.Tag
}

// TaskService handles task CRUD. The owner is always the session user:
// creation forces it, and reads and mutations by non-owners report not-found
// rather than leaking that the task exists.
type TaskService interface {
	Create(ctx context.Context, ownerID uint, in TaskInput) (*model.Task, error)
	Get(ctx context.Context, id, callerID uint) (*model.Task, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]model.Task, error)
	Update(ctx context.Context, id, callerID uint, in TaskInput) (*model.Task, error)
	Delete(ctx context.Context, id, callerID uint) error
}

type taskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new task service.
func NewTaskService(taskRepo repository.TaskRepository) TaskService {
	return &taskService{taskRepo: taskRepo}
}

// Create persists a task owned by ownerID. Any owner value a client may have
// smuggled into the request never reaches this point.
func (s *taskService) Create(ctx context.Context, ownerID uint, in TaskInput) (*model.Task, error) {
	if !in.Tag.Valid() {
		return nil, apperrors.ErrInvalidTag
	}
	task := &model.Task{
		AuthorID:    ownerID,
		Title:       in.Title,
		EndDate:     in.EndDate,
		Description: in.Description,
		Tag:         in.Tag,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// Get loads a task for its owner.
func (s *taskService) Get(ctx context.Context, id, callerID uint) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	if task.AuthorID != callerID {
		return nil, apperrors.ErrNotTaskOwner
	}
	return task, nil
}

func (s *taskService) ListByOwner(ctx context.Context, ownerID uint) ([]model.Task, error) {
	tasks, err := s.taskRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Update overwrites the four mutable fields in place. Last write wins under
// concurrent edits; there is no conflict detection.
func (s *taskService) Update(ctx context.Context, id, callerID uint, in TaskInput) (*model.Task, error) {
	if !in.Tag.Valid() {
		return nil, apperrors.ErrInvalidTag
	}
	task, err := s.Get(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	task.Title = in.Title
	task.EndDate = in.EndDate
	task.Description = in.Description
	task.Tag = in.Tag
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

// Delete removes a task permanently. No soft-delete, no recovery.
func (s *taskService) Delete(ctx context.Context, id, callerID uint) error {
	if _, err := s.Get(ctx, id, callerID); err != nil {
		return err
	}
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTaskNotFound
		}
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
