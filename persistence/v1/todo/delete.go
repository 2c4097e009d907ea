package todo

import (
	"context"
	"fmt"

	"github.com/ribgsilva/note-keeper/sys"
)

func Delete(ctx context.Context, id uint64) error {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "DELETE FROM todo WHERE id = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare delete stmt: %w", err)
	}
	defer stmt.Close()

	if _, err = stmt.ExecContext(dbCtx, id); err != nil {
		return fmt.Errorf("failed to exec delete stmt: %w", err)
	}
	return nil
}
