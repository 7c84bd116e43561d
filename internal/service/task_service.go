package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"taskboard/internal/models"
	"taskboard/internal/repository"
)

// Domain errors for task flows.
var (
	ErrTitleRequired = errors.New("title is required")
	ErrTaskNotFound  = errors.New("task not found")
	// ErrTaskForbidden: the task exists but belongs to another user.
	// Existence is checked first, so a probe can tell 404 from 403.
	ErrTaskForbidden = errors.New("no permission for this task")
)

type TaskService struct {
	taskRepo repository.Tasks
}

func NewTaskService(repo repository.Tasks) *TaskService {
	return &TaskService{taskRepo: repo}
}

// TaskUpdate is a partial overwrite: nil fields keep the stored value.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *string
}

// List returns all tasks owned by userID, never another user's.
func (s *TaskService) List(ctx context.Context, userID int) ([]models.Task, error) {
	return s.taskRepo.ListByUser(ctx, userID)
}

// Create persists a new task owned by userID with the default status
// and the current time, returning the new ID.
func (s *TaskService) Create(ctx context.Context, userID int, title, description string) (int, error) {
	if strings.TrimSpace(title) == "" {
		return 0, ErrTitleRequired
	}
	return s.taskRepo.Create(ctx, models.Task{
		Title:       title,
		Description: description,
		Status:      models.StatusPending,
		CreatedAt:   time.Now().UTC(),
		UserID:      userID,
	})
}

// ownedTask loads taskID and checks existence before ownership.
func (s *TaskService) ownedTask(ctx context.Context, userID, taskID int) (*models.Task, error) {
	t, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTaskNotFound
	}
	if t.UserID != userID {
		return nil, ErrTaskForbidden
	}
	return t, nil
}

// Update applies a partial overwrite to a task owned by userID.
func (s *TaskService) Update(ctx context.Context, userID, taskID int, upd TaskUpdate) error {
	t, err := s.ownedTask(ctx, userID, taskID)
	if err != nil {
		return err
	}

	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.Description != nil {
		t.Description = *upd.Description
	}
	if upd.Status != nil {
		t.Status = *upd.Status
	}

	return s.taskRepo.Update(ctx, *t)
}

// Delete removes a task owned by userID permanently.
func (s *TaskService) Delete(ctx context.Context, userID, taskID int) error {
	if _, err := s.ownedTask(ctx, userID, taskID); err != nil {
		return err
	}
	return s.taskRepo.Delete(ctx, taskID)
}
