package models

import "time"

// Default status assigned to tasks created without one.
const StatusPending = "pending"

// Task is a single to-do item owned by exactly one user. Status is a
// free-form label; no transition rules are enforced.
type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      int       `json:"user_id"`
}
