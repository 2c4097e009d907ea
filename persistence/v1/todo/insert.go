package todo

import (
	"context"
	"fmt"
	"time"

	"github.com/ribgsilva/note-keeper/sys"
)

func Insert(ctx context.Context, newT NewTodo) error {
	db := sys.R.Database

	n := time.Now().UTC()

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "INSERT INTO todo (title, description, createdAt) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert stmt: %w", err)
	}
	defer stmt.Close()

	if _, err = stmt.ExecContext(dbCtx, newT.Title, newT.Description, n); err != nil {
		return fmt.Errorf("failed to exec insert stmt: %w", err)
	}
	return nil
}
