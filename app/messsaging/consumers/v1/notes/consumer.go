package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/ribgsilva/note-crud/business/v1/note"
	"github.com/ribgsilva/note-crud/sys"
	"gocloud.dev/pubsub"
	"sync"
)

// event types carried by the topic
const (
	TypeCreate = "create"
	TypeUpdate = "update"
	TypeDelete = "delete"
)

// ErrUnknownType is returned for an event whose type has no operation
var ErrUnknownType = errors.New("unknown event type")

type incoming struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Consume receives note events until ctx is done, running at most maxWorkers at once.
// Every message is acked, a failed event is logged and dropped.
func Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	logger := sys.R.Log
	workers := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	var err error
	for {
		var m *pubsub.Message
		m, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- struct{}{}
		wg.Add(1)
		go func(m *pubsub.Message) {
			defer wg.Done()
			defer func() { <-workers }()
			defer m.Ack()

			logger.Infow("message received", "body", string(m.Body))
			if err := Handle(ctx, m.Body); err != nil {
				logger.Errorw("message dropped", "body", string(m.Body), "ERROR", err)
			}
		}(m)
	}

	wg.Wait()

	if errors.Is(err, context.Canceled) || ctx.Err() != nil {
		return nil
	}
	return err
}

// Handle applies one event to the notes
func Handle(ctx context.Context, body []byte) error {
	var e incoming
	if err := json.Unmarshal(body, &e); err != nil {
		return fmt.Errorf("failed to parse body: %w", err)
	}

	switch e.Type {
	case TypeCreate:
		var c note.NewNote
		if err := json.Unmarshal(e.Data, &c); err != nil {
			return fmt.Errorf("failed to parse create data: %w", err)
		}
		_, err := note.Create(ctx, c)
		return err
	case TypeUpdate:
		var u note.Edit
		if err := json.Unmarshal(e.Data, &u); err != nil {
			return fmt.Errorf("failed to parse update data: %w", err)
		}
		_, err := note.Update(ctx, u.Id, u.UpdateNote)
		return err
	case TypeDelete:
		var r note.Ref
		if err := json.Unmarshal(e.Data, &r); err != nil {
			return fmt.Errorf("failed to parse delete data: %w", err)
		}
		return note.Delete(ctx, r.Id)
	default:
		return fmt.Errorf("%q: %w", e.Type, ErrUnknownType)
	}
}
