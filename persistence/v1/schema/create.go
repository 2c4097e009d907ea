package schema

import (
	"context"
	"fmt"

	"github.com/ribgsilva/note-keeper/sys"
)

// Create creates the todo table notes are mirrored into
func Create(ctx context.Context) error {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	if _, err := db.ExecContext(dbCtx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	return nil
}
