package notes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/note-keeper/business/v1/note"
	notestore "github.com/ribgsilva/note-keeper/persistence/v1/note"
	"github.com/ribgsilva/note-keeper/platform/env"
	"github.com/ribgsilva/note-keeper/sys"
	"go.uber.org/zap"
)

func ListCommands() {
	println("Notes Commands")
	println("\texport\t\t\t- Print the saved notes as json")
	println("\timport <file>\t\t- Replace the saved notes with the ones in file")
	println("\thelp\t\t\t- Print the commands available")
}

func Run(options []string) {
	if len(options) == 0 {
		ListCommands()
		return
	}
	// empty logger
	log := zap.NewNop().Sugar()
	slot, closer, err := openSlot(log)
	if err != nil {
		println("error:", err.Error())
		return
	}
	defer closer()

	store := note.NewStore(context.Background(), log, slot)
	switch options[0] {
	case "export":
		if err := Export(store, os.Stdout); err != nil {
			println("failed to export notes:", err.Error())
		}
	case "import":
		if len(options) < 2 {
			ListCommands()
			return
		}
		f, err := os.Open(options[1])
		if err != nil {
			println("failed to open file:", err.Error())
			return
		}
		defer f.Close()
		n, err := Import(context.Background(), store, f)
		if err != nil {
			println("failed to import notes:", err.Error())
			return
		}
		println("imported", n, "notes")
	case "help":
		fallthrough
	default:
		ListCommands()
	}
}

// Export writes every note as an indented json array
func Export(store *note.Store, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(store.Notes())
}

// Import replaces the collection with the json array read from r
func Import(ctx context.Context, store *note.Store, r io.Reader) (int, error) {
	var notes []note.Note
	if err := json.NewDecoder(r).Decode(&notes); err != nil {
		return 0, fmt.Errorf("decode notes: %w", err)
	}
	if err := note.Prepare(notes); err != nil {
		return 0, err
	}
	if err := store.Replace(ctx, notes); err != nil {
		return 0, err
	}
	return len(notes), nil
}

func openSlot(log *zap.SugaredLogger) (note.Slot, func(), error) {
	sys.Configs.Storage.Driver = env.OrDefault(log, "STORAGE_DRIVER", "redis")
	sys.Configs.Storage.FilePath = env.OrDefault(log, "STORAGE_FILE_PATH", "data/"+note.SlotKey+".json")
	sys.Configs.Storage.Key = env.OrDefault(log, "STORAGE_KEY", note.SlotKey)
	sys.Configs.Cache.ConnectionURL = env.OrDefault(log, "CACHE_CONNECTION_URL", "localhost:6379")
	sys.Configs.Cache.User = env.OrDefault(log, "CACHE_USER", "")
	sys.Configs.Cache.Pass = env.OrDefault(log, "CACHE_PASS", "")
	sys.Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")

	switch sys.Configs.Storage.Driver {
	case "file":
		return notestore.NewFileSlot(sys.Configs.Storage.FilePath), func() {}, nil
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     sys.Configs.Cache.ConnectionURL,
			Username: sys.Configs.Cache.User,
			Password: sys.Configs.Cache.Pass,
		})
		rdsCtx, rdsCancel := context.WithTimeout(context.Background(), sys.Configs.Cache.PingTimeout)
		defer rdsCancel()
		if err := rdb.Ping(rdsCtx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("could not connect to redis: %w", err)
		}
		closer := func() {
			_ = rdb.Close()
		}
		return notestore.NewRedisSlot(rdb, sys.Configs.Storage.Key, sys.Configs.Cache.OperationTimeout), closer, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", sys.Configs.Storage.Driver)
	}
}
