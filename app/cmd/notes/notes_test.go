package notes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ribgsilva/note-keeper/business/v1/note"
	notestore "github.com/ribgsilva/note-keeper/persistence/v1/note"
)

func TestExportImport(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop().Sugar()
	slot := notestore.NewFileSlot(filepath.Join(t.TempDir(), "notes.json"))
	store := note.NewStore(ctx, log, slot)

	_, _, err := store.Add(ctx, "exported", "body")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Export(store, &out))

	var exported []note.Note
	require.NoError(t, json.Unmarshal(out.Bytes(), &exported))
	assert.Equal(t, store.Notes(), exported)

	other := note.NewStore(ctx, log, notestore.NewFileSlot(filepath.Join(t.TempDir(), "other.json")))
	n, err := Import(ctx, other, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, exported, other.Notes())
}

func TestImportValidates(t *testing.T) {
	ctx := context.Background()
	store := note.NewStore(ctx, zap.NewNop().Sugar(), notestore.NewFileSlot(filepath.Join(t.TempDir(), "notes.json")))

	_, err := Import(ctx, store, strings.NewReader(`[{"title":"no id"}]`))
	assert.True(t, errors.Is(err, note.ErrMissingId))

	_, err = Import(ctx, store, strings.NewReader(`[{"id":"1","color":"magenta"}]`))
	assert.True(t, errors.Is(err, note.ErrInvalidColor))

	n, err := Import(ctx, store, strings.NewReader(`[{"id":"1","title":"plain"}]`))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	got, found := store.Find("1")
	require.True(t, found)
	assert.Equal(t, note.ColorDefault, got.Color)
}
