package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"taskboard/internal/models"
)

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

var _ Tasks = (*TaskRepository)(nil)

const (
	insertTaskSQL = `
		INSERT INTO tasks (title, description, status, created_at, user_id)
		VALUES (?, ?, ?, ?, ?)
	`

	selectTasksByUserSQL = `
		SELECT id, title, description, status, created_at, user_id
		FROM tasks WHERE user_id = ?
	`

	selectTaskByIDSQL = `
		SELECT id, title, description, status, created_at, user_id
		FROM tasks WHERE id = ?
	`

	updateTaskSQL = `
		UPDATE tasks SET title = ?, description = ?, status = ? WHERE id = ?
	`

	deleteTaskSQL = `DELETE FROM tasks WHERE id = ?`
)

// Create inserts a new task row and returns its ID. CreatedAt is
// persisted as UTC; a zero value is filled with the current time.
func (r *TaskRepository) Create(ctx context.Context, t models.Task) (int, error) {
	tsUTC := t.CreatedAt
	if tsUTC.IsZero() {
		tsUTC = time.Now().UTC()
	} else {
		tsUTC = tsUTC.UTC()
	}

	res, err := r.db.ExecContext(ctx, insertTaskSQL,
		t.Title,
		t.Description,
		t.Status,
		tsUTC,
		t.UserID,
	)
	if err != nil {
		return 0, fmt.Errorf("insert task for user %d: %w", t.UserID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for task: %w", err)
	}
	return int(lastID), nil
}

// ListByUser fetches all tasks owned by userID in store-native order.
// Returns an empty (non-nil) slice when the user has no tasks.
func (r *TaskRepository) ListByUser(ctx context.Context, userID int) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, selectTasksByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select tasks for user %d: %w", userID, err)
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.CreatedAt, &t.UserID); err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		t.CreatedAt = t.CreatedAt.UTC()
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task rows: %w", err)
	}
	return tasks, nil
}

// GetByID fetches a task by primary key. Returns (nil, nil) if not found.
func (r *TaskRepository) GetByID(ctx context.Context, id int) (*models.Task, error) {
	var t models.Task
	err := r.db.QueryRowContext(ctx, selectTaskByIDSQL, id).
		Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.CreatedAt, &t.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select task %d: %w", id, err)
	}
	t.CreatedAt = t.CreatedAt.UTC()
	return &t, nil
}

// Update overwrites the mutable columns of an existing task row.
func (r *TaskRepository) Update(ctx context.Context, t models.Task) error {
	if _, err := r.db.ExecContext(ctx, updateTaskSQL, t.Title, t.Description, t.Status, t.ID); err != nil {
		return fmt.Errorf("update task %d: %w", t.ID, err)
	}
	return nil
}

// Delete removes a task row permanently.
func (r *TaskRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, deleteTaskSQL, id); err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}
