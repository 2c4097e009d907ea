package todos

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ribgsilva/note-keeper/business/v1/todo"
	"github.com/ribgsilva/note-keeper/sys"
	"gocloud.dev/pubsub"
)

// Consume applies todo events from the subscription until ctx is canceled,
// running at most maxWorkers events at the same time. At least one worker always runs.
func Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	logger := sys.R.Log
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	workers := make(chan int, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- 1
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			defer m.Ack()

			logger.Infof("message received: %s", string(m.Body))
			var e struct {
				Type string          `json:"type"`
				Data json.RawMessage `json:"data"`
			}
			if err := json.Unmarshal(m.Body, &e); err != nil {
				logger.Error("failed to parse body: ", err)
				return
			}

			switch e.Type {
			case todo.EventCreate:
				var c todo.NewTodo
				if err := json.Unmarshal(e.Data, &c); err != nil {
					logger.Errorf("failed to parse create event %s: err: %s", e.Data, err)
					return
				}
				if err := todo.Create(ctx, c); err != nil {
					logger.Errorf("failed to create event %+v: err: %s", c, err)
				}
			case todo.EventDelete:
				var d todo.Deleted
				if err := json.Unmarshal(e.Data, &d); err != nil {
					logger.Errorf("failed to parse delete event %s: err: %s", e.Data, err)
					return
				}
				if err := (todo.SQLTable{}).Delete(ctx, d.Id); err != nil {
					logger.Errorf("failed to delete event %+v: err: %s", d, err)
				}
			default:
				logger.Error("unknown event type: ", e.Type)
			}
		}(message)
	}

	// wait for the running workers
	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
