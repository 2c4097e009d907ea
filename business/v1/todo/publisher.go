package todo

import (
	"context"
	"encoding/json"
	"fmt"

	"gocloud.dev/pubsub"
)

// Publisher sends writes as events to a topic, the messaging worker applies
// them. Reads go to the table the worker writes into.
type Publisher struct {
	topic *pubsub.Topic
	reads Table
}

func NewPublisher(topic *pubsub.Topic, reads Table) *Publisher {
	return &Publisher{topic: topic, reads: reads}
}

func (p *Publisher) FindAll(ctx context.Context) ([]Todo, error) {
	return p.reads.FindAll(ctx)
}

func (p *Publisher) Insert(ctx context.Context, title string) error {
	return p.send(ctx, Event{Type: EventCreate, Data: NewTodo{Title: title}})
}

func (p *Publisher) Delete(ctx context.Context, id uint64) error {
	return p.send(ctx, Event{Type: EventDelete, Data: Deleted{Id: id}})
}

func (p *Publisher) send(ctx context.Context, e Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to parse %s event: %w", e.Type, err)
	}
	if err := p.topic.Send(ctx, &pubsub.Message{Body: body}); err != nil {
		return fmt.Errorf("failed to send %s event: %w", e.Type, err)
	}
	return nil
}
