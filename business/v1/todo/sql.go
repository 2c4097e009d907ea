package todo

import (
	"context"

	"github.com/ribgsilva/note-keeper/persistence/v1/todo"
)

// SQLTable uses the todo table of the service database
type SQLTable struct{}

func (SQLTable) FindAll(ctx context.Context) ([]Todo, error) {
	found, err := todo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	todos := make([]Todo, len(found))
	for i, t := range found {
		todos[i] = Todo(t)
	}
	return todos, nil
}

func (SQLTable) Insert(ctx context.Context, title string) error {
	return todo.Insert(ctx, todo.NewTodo{Title: title})
}

func (SQLTable) Delete(ctx context.Context, id uint64) error {
	return todo.Delete(ctx, id)
}

// Create stores a new row, used by the messaging consumer
func Create(ctx context.Context, newT NewTodo) error {
	return todo.Insert(ctx, todo.NewTodo(newT))
}
