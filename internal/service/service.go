package service

import (
	"context"

	"taskboard/internal/models"
	"taskboard/internal/repository"
)

type Authorization interface {
	Register(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Tasks exposes per-user CRUD. Every mutation re-checks that the task
// belongs to the calling user.
type Tasks interface {
	List(ctx context.Context, userID int) ([]models.Task, error)
	Create(ctx context.Context, userID int, title, description string) (int, error)
	Update(ctx context.Context, userID, taskID int, upd TaskUpdate) error
	Delete(ctx context.Context, userID, taskID int) error
}

// Service aggregates all sub-services behind a single handle for the
// HTTP layer.
type Service struct {
	Authorization
	Tasks
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, auth AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, auth),
		Tasks:         NewTaskService(repos.Tasks),
	}
}
