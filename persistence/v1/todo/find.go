package todo

import (
	"context"
	"fmt"

	"github.com/ribgsilva/note-keeper/sys"
)

// FindAll returns every row of the todo table, oldest first
func FindAll(ctx context.Context) ([]Todo, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	rows, err := db.QueryContext(dbCtx, "SELECT id, title, description, createdAt FROM todo ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query find all stmt: %w", err)
	}
	defer rows.Close()

	todos := []Todo{}
	for rows.Next() {
		var t Todo
		if err := rows.Scan(&t.Id, &t.Title, &t.Description, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return todos, nil
}
