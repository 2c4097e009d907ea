package todo

import (
	"context"
	"time"
)

const (
	EventCreate = "create"
	EventDelete = "delete"
)

type Todo struct {
	Id          uint64    `json:"id" example:"1"`
	Title       string    `json:"title" example:"my note"`
	Description string    `json:"description" example:""`
	CreatedAt   time.Time `json:"created_at" example:"2006-01-02T15:04:05Z"`
}

type NewTodo struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type Deleted struct {
	Id uint64 `json:"id"`
}

// Table is the remote table created notes are mirrored into
type Table interface {
	FindAll(ctx context.Context) ([]Todo, error)
	Insert(ctx context.Context, title string) error
	Delete(ctx context.Context, id uint64) error
}
