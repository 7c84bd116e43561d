package repository

import (
	"context"
	"database/sql"

	"taskboard/internal/models"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// Tasks is the data-access contract for task rows. Ownership is not
// enforced here; the service layer checks it on every mutation.
type Tasks interface {
	Create(ctx context.Context, t models.Task) (int, error)
	ListByUser(ctx context.Context, userID int) ([]models.Task, error)
	GetByID(ctx context.Context, id int) (*models.Task, error)
	Update(ctx context.Context, t models.Task) error
	Delete(ctx context.Context, id int) error
}

type Repository struct {
	Auth  Authorization
	Tasks Tasks
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:  NewUserRepository(db),
		Tasks: NewTaskRepository(db),
	}
}
