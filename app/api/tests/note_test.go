package tests

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/note-keeper/app/api/handlers"
	"github.com/ribgsilva/note-keeper/business/v1/note"
	"github.com/ribgsilva/note-keeper/business/v1/todo"
	notestore "github.com/ribgsilva/note-keeper/persistence/v1/note"
	"github.com/ribgsilva/note-keeper/persistence/v1/schema"
	"github.com/ribgsilva/note-keeper/platform/env"
	"github.com/ribgsilva/note-keeper/platform/logger"
	"github.com/ribgsilva/note-keeper/sys"

	_ "github.com/proullon/ramsql/driver"
)

type NoteTests struct {
	app    http.Handler
	cache  *miniredis.Miniredis
	mirror *note.Mirror
}

func TestNote(t *testing.T) {
	log, err := logger.New("Note-API-Tests")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	// =======================================================================================================
	// Mocks

	// miniredis
	s := miniredis.RunT(t)

	// =======================================================================================================
	// Setup configs
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
	sys.Configs.Cache.ConnectionURL = s.Addr()
	sys.Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")

	// =======================================================================================================
	// Setup resources

	// logger
	sys.R.Log = log

	// sql
	var db *sql.DB
	if err := func() error {
		ramDb, err := sql.Open("ramsql", "NoteApiTest")
		if err != nil {
			return fmt.Errorf("error to connect to database: %w", err)
		}
		dbCtx, dbCancel := context.WithTimeout(context.Background(), sys.Configs.Database.PingTimeout)
		defer dbCancel()
		if err := ramDb.PingContext(dbCtx); err != nil {
			return fmt.Errorf("could not connect to database: %w", err)
		}
		db = ramDb
		return nil
	}(); err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = db.Close()
	}()
	sys.R.Database = db

	// redis
	// doing in a func, so I can use defer to cancel the contexts
	var rdb *redis.Client
	if err := func() error {
		rdb = redis.NewClient(&redis.Options{
			Addr: sys.Configs.Cache.ConnectionURL,
		})
		rdsCtx, rdsCancel := context.WithTimeout(context.Background(), sys.Configs.Cache.PingTimeout)
		defer rdsCancel()
		if err := rdb.Ping(rdsCtx).Err(); err != nil {
			return fmt.Errorf("could not connect to redis: %w", err)
		}
		return nil
	}(); err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = rdb.Close()
	}()

	sys.R.Cache = rdb

	// =======================================================================================================
	// Database setup

	if err := schema.Create(context.Background()); err != nil {
		t.Fatalf("sql.Exec: Error: %s\n", err)
	}
	defer func() {
		_ = schema.Drop(context.Background())
	}()

	// =======================================================================================================
	// Setup router
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	table := todo.SQLTable{}
	mirror := note.NewMirror(log, table, 5*time.Second, 16)
	store := note.NewStore(context.Background(), log,
		notestore.NewRedisSlot(rdb, note.SlotKey, sys.Configs.Cache.OperationTimeout),
		note.WithCreations(mirror))

	handlers.MapDefaults(engine)
	handlers.MapApi(engine, store, table)

	tests := NoteTests{
		app:    engine,
		cache:  s,
		mirror: mirror,
	}

	// =======================================================================================================
	// Run tests

	tests.healthcheck200(t)
	tests.createBlank204(t)
	first := tests.create201(t, "first", "buy milk")
	second := tests.create201(t, "second", "")
	if !s.Exists(note.SlotKey) {
		t.Fatalf("notes not saved in cache")
	}
	tests.getNote200(t, first)
	tests.getNote404(t)
	tests.pinAndList(t, first, second)
	tests.invalidColor400(t, first)
	tests.editAndSearch(t, second)
	tests.archiveTrashRestore(t, first)
	tests.unknownId204(t)
	tests.permanentDelete(t, second)
	tests.refresh(t)
	tests.replace(t)
	tests.todos(t)
}

func (nt *NoteTests) do(method, target string, body any) *httptest.ResponseRecorder {
	var r *http.Request
	if body != nil {
		b, _ := json.Marshal(body)
		r = httptest.NewRequest(method, target, bytes.NewReader(b))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	nt.app.ServeHTTP(w, r)
	return w
}

func (nt *NoteTests) list(t *testing.T, query string) note.Visible {
	w := nt.do(http.MethodGet, "/v1/notes"+query, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test list: Should receive a status code of 200 for the response : %v", w.Code)
	}
	var v note.Visible
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("Test list: Should be able to unmarshal the response : %v", err)
	}
	return v
}

func (nt *NoteTests) find(t *testing.T, id string) note.Note {
	w := nt.do(http.MethodGet, "/v1/notes/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test find: Should receive a status code of 200 for the response : %v", w.Code)
	}
	var n note.Note
	if err := json.NewDecoder(w.Body).Decode(&n); err != nil {
		t.Fatalf("Test find: Should be able to unmarshal the response : %v", err)
	}
	return n
}

func ids(notes []note.Note) []string {
	out := []string{}
	for _, n := range notes {
		out = append(out, n.Id)
	}
	return out
}

func sameIds(got []note.Note, want ...string) bool {
	g := ids(got)
	if len(g) != len(want) {
		return false
	}
	for i := range g {
		if g[i] != want[i] {
			return false
		}
	}
	return true
}

func (nt *NoteTests) healthcheck200(t *testing.T) {
	w := nt.do(http.MethodGet, "/v1/healthcheck", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test healthcheck200: Should receive a status code of 200 for the response : %v", w.Code)
	}
}

func (nt *NoteTests) createBlank204(t *testing.T) {
	w := nt.do(http.MethodPost, "/v1/notes", note.NewNote{Title: " ", Content: ""})
	if w.Code != http.StatusNoContent {
		t.Fatalf("Test createBlank204: Should receive a status code of 204 for the response : %v", w.Code)
	}
	if v := nt.list(t, ""); len(v.Pinned)+len(v.Unpinned) != 0 {
		t.Fatalf("Test createBlank204: Should not have created a note: %v", v)
	}
}

func (nt *NoteTests) create201(t *testing.T, title, content string) note.Note {
	w := nt.do(http.MethodPost, "/v1/notes", note.NewNote{Title: title, Content: content})
	if w.Code != http.StatusCreated {
		t.Fatalf("Test create201: Should receive a status code of 201 for the response : %v", w.Code)
	}

	var resp note.Note
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test create201: Should be able to unmarshal the response : %v", err)
	}
	if resp.Id == "" || resp.Title != title || resp.Content != content || resp.Color != note.ColorDefault {
		t.Fatalf("Test create201: Should have received the created note in the response: %v", resp)
	}
	if resp.IsPinned || resp.IsArchived || resp.IsDeleted {
		t.Fatalf("Test create201: Should have received a note with every flag off: %v", resp)
	}
	return resp
}

func (nt *NoteTests) getNote200(t *testing.T, want note.Note) {
	got := nt.find(t, want.Id)
	if got != want {
		t.Fatalf("Test getNote200: Should have received %v in the response: %v", want, got)
	}
}

func (nt *NoteTests) getNote404(t *testing.T) {
	w := nt.do(http.MethodGet, "/v1/notes/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Test getNote404: Should receive a status code of 404 for the response : %v", w.Code)
	}
}

func (nt *NoteTests) pinAndList(t *testing.T, first, second note.Note) {
	if w := nt.do(http.MethodPost, "/v1/notes/"+first.Id+"/pin", nil); w.Code != http.StatusNoContent {
		t.Fatalf("Test pinAndList: Should receive a status code of 204 for the response : %v", w.Code)
	}

	v := nt.list(t, "")
	if !sameIds(v.Pinned, first.Id) || !sameIds(v.Unpinned, second.Id) {
		t.Fatalf("Test pinAndList: Should have first pinned and second unpinned: %v", v)
	}

	v = nt.list(t, "?view=labels")
	if len(v.Pinned) != 0 || !sameIds(v.Unpinned, second.Id, first.Id) {
		t.Fatalf("Test pinAndList: Should not split pinned notes in labels: %v", v)
	}

	if w := nt.do(http.MethodGet, "/v1/notes?view=inbox", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("Test pinAndList: Should receive a status code of 400 for an unknown view : %v", w.Code)
	}
}

func (nt *NoteTests) invalidColor400(t *testing.T, n note.Note) {
	w := nt.do(http.MethodPut, "/v1/notes/"+n.Id+"/color", map[string]string{"color": "magenta"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Test invalidColor400: Should receive a status code of 400 for the response : %v", w.Code)
	}

	w = nt.do(http.MethodPut, "/v1/notes/"+n.Id+"/color", map[string]string{"color": "blue"})
	if w.Code != http.StatusNoContent {
		t.Fatalf("Test invalidColor400: Should receive a status code of 204 for the response : %v", w.Code)
	}
	if got := nt.find(t, n.Id); got.Color != note.ColorBlue || got.UpdatedAt <= n.UpdatedAt {
		t.Fatalf("Test invalidColor400: Should have changed the color: %v", got)
	}
}

func (nt *NoteTests) editAndSearch(t *testing.T, n note.Note) {
	w := nt.do(http.MethodPatch, "/v1/notes/"+n.Id, map[string]string{"content": "Call the Plumber"})
	if w.Code != http.StatusNoContent {
		t.Fatalf("Test editAndSearch: Should receive a status code of 204 for the response : %v", w.Code)
	}
	got := nt.find(t, n.Id)
	if got.Title != "second" || got.Content != "Call the Plumber" {
		t.Fatalf("Test editAndSearch: Should have merged the content: %v", got)
	}

	v := nt.list(t, "?q=plumb")
	if len(v.Pinned) != 0 || !sameIds(v.Unpinned, n.Id) {
		t.Fatalf("Test editAndSearch: Should have found only the edited note: %v", v)
	}
}

func (nt *NoteTests) archiveTrashRestore(t *testing.T, n note.Note) {
	if w := nt.do(http.MethodPost, "/v1/notes/"+n.Id+"/archive", nil); w.Code != http.StatusNoContent {
		t.Fatalf("Test archiveTrashRestore: Should receive a status code of 204 for the response : %v", w.Code)
	}
	if got := nt.find(t, n.Id); !got.IsArchived || got.IsPinned {
		t.Fatalf("Test archiveTrashRestore: Should be archived and unpinned: %v", got)
	}
	if v := nt.list(t, "?view=archive"); !sameIds(v.Unpinned, n.Id) {
		t.Fatalf("Test archiveTrashRestore: Should be listed in the archive: %v", v)
	}

	if w := nt.do(http.MethodDelete, "/v1/notes/"+n.Id, nil); w.Code != http.StatusNoContent {
		t.Fatalf("Test archiveTrashRestore: Should receive a status code of 204 for the response : %v", w.Code)
	}
	if v := nt.list(t, "?view=archive"); len(v.Unpinned) != 0 {
		t.Fatalf("Test archiveTrashRestore: Should not be listed in the archive once deleted: %v", v)
	}
	if v := nt.list(t, "?view=trash"); !sameIds(v.Unpinned, n.Id) {
		t.Fatalf("Test archiveTrashRestore: Should be listed in the trash: %v", v)
	}

	if w := nt.do(http.MethodPost, "/v1/notes/"+n.Id+"/restore", nil); w.Code != http.StatusNoContent {
		t.Fatalf("Test archiveTrashRestore: Should receive a status code of 204 for the response : %v", w.Code)
	}
	if got := nt.find(t, n.Id); got.IsArchived || got.IsDeleted {
		t.Fatalf("Test archiveTrashRestore: Should be back in notes: %v", got)
	}
}

func (nt *NoteTests) unknownId204(t *testing.T) {
	before, _ := nt.cache.Get(note.SlotKey)

	for _, r := range []struct{ method, target string }{
		{http.MethodPost, "/v1/notes/missing/pin"},
		{http.MethodPost, "/v1/notes/missing/archive"},
		{http.MethodPost, "/v1/notes/missing/restore"},
		{http.MethodDelete, "/v1/notes/missing"},
		{http.MethodDelete, "/v1/notes/missing/permanent?confirm=true"},
	} {
		if w := nt.do(r.method, r.target, nil); w.Code != http.StatusNoContent {
			t.Fatalf("Test unknownId204: Should receive a status code of 204 for %s %s: %v", r.method, r.target, w.Code)
		}
	}

	after, _ := nt.cache.Get(note.SlotKey)
	if before != after {
		t.Fatalf("Test unknownId204: Should not have changed the saved notes")
	}
}

func (nt *NoteTests) permanentDelete(t *testing.T, n note.Note) {
	w := nt.do(http.MethodDelete, "/v1/notes/"+n.Id+"/permanent", nil)
	if w.Code != http.StatusPreconditionFailed {
		t.Fatalf("Test permanentDelete: Should receive a status code of 412 without confirmation : %v", w.Code)
	}
	nt.find(t, n.Id)

	w = nt.do(http.MethodDelete, "/v1/notes/"+n.Id+"/permanent?confirm=true", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("Test permanentDelete: Should receive a status code of 204 for the response : %v", w.Code)
	}
	if w := nt.do(http.MethodGet, "/v1/notes/"+n.Id, nil); w.Code != http.StatusNotFound {
		t.Fatalf("Test permanentDelete: Should not find the note anymore : %v", w.Code)
	}
}

func (nt *NoteTests) refresh(t *testing.T) {
	external := []note.Note{{Id: "ext", Title: "from another tab", Color: note.ColorGreen, CreatedAt: 1, UpdatedAt: 1}}
	data, _ := json.Marshal(external)
	if err := nt.cache.Set(note.SlotKey, string(data)); err != nil {
		t.Fatal(err)
	}

	if w := nt.do(http.MethodPost, "/v1/refresh", nil); w.Code != http.StatusNoContent {
		t.Fatalf("Test refresh: Should receive a status code of 204 for the response : %v", w.Code)
	}
	if v := nt.list(t, ""); !sameIds(v.Unpinned, "ext") {
		t.Fatalf("Test refresh: Should have loaded the external notes: %v", v)
	}
}

func (nt *NoteTests) replace(t *testing.T) {
	w := nt.do(http.MethodPut, "/v1/notes", []map[string]any{{"id": "imp", "title": "no color"}})
	if w.Code != http.StatusNoContent {
		t.Fatalf("Test replace: Should receive a status code of 204 for the response : %v", w.Code)
	}
	if got := nt.find(t, "imp"); got.Color != note.ColorDefault {
		t.Fatalf("Test replace: Should have defaulted the color: %v", got)
	}

	w = nt.do(http.MethodPut, "/v1/notes", []map[string]any{{"title": "no id"}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Test replace: Should receive a status code of 400 for the response : %v", w.Code)
	}
	w = nt.do(http.MethodPut, "/v1/notes", []map[string]any{{"id": "imp", "color": "magenta"}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Test replace: Should receive a status code of 400 for the response : %v", w.Code)
	}
	nt.find(t, "imp")
}

func (nt *NoteTests) todos(t *testing.T) {
	nt.mirror.Wait()

	w := nt.do(http.MethodGet, "/v1/todos", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test todos: Should receive a status code of 200 for the response : %v", w.Code)
	}
	var found []todo.Todo
	if err := json.NewDecoder(w.Body).Decode(&found); err != nil {
		t.Fatalf("Test todos: Should be able to unmarshal the response : %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("Test todos: Should have mirrored the two created notes: %v", found)
	}

	if w := nt.do(http.MethodDelete, fmt.Sprintf("/v1/todos/%d", found[0].Id), nil); w.Code != http.StatusNoContent {
		t.Fatalf("Test todos: Should receive a status code of 204 for the response : %v", w.Code)
	}
	if w := nt.do(http.MethodDelete, "/v1/todos/abc", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("Test todos: Should receive a status code of 400 for the response : %v", w.Code)
	}

	remaining, err := (todo.SQLTable{}).FindAll(context.Background())
	if err != nil || len(remaining) != 1 {
		t.Fatalf("Test todos: Should have one mirrored note left: %v %v", remaining, err)
	}
}
