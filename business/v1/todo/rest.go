package todo

import (
	"context"
	"strconv"

	"github.com/ribgsilva/note-keeper/platform/postgrest"
)

// RESTTable uses a table served over PostgREST
type RESTTable struct {
	client *postgrest.Client
	table  string
}

func NewRESTTable(client *postgrest.Client, table string) *RESTTable {
	return &RESTTable{client: client, table: table}
}

func (r *RESTTable) FindAll(ctx context.Context) ([]Todo, error) {
	todos := []Todo{}
	if err := r.client.Select(ctx, r.table, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *RESTTable) Insert(ctx context.Context, title string) error {
	return r.client.Insert(ctx, r.table, NewTodo{Title: title})
}

func (r *RESTTable) Delete(ctx context.Context, id uint64) error {
	return r.client.Delete(ctx, r.table, "id", strconv.FormatUint(id, 10))
}
