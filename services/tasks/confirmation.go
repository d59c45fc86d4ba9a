package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"weddingplanner/models"
	"weddingplanner/services/notification"

	"github.com/hibiken/asynq"
)

const TypeBookingConfirmation = "booking:confirmation"

// NewConfirmationTask wraps p in an asynq task.
func NewConfirmationTask(p models.ConfirmationPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingConfirmation, b)
	opts := []asynq.Option{
		asynq.MaxRetry(5),
		asynq.Timeout(30 * time.Second),
	}
	return task, opts, nil
}

// ParseConfirmationTask decodes the payload of a confirmation task.
func ParseConfirmationTask(task *asynq.Task) (models.ConfirmationPayload, error) {
	var p models.ConfirmationPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid %s payload: %w", TypeBookingConfirmation, err)
	}
	return p, nil
}

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqDispatcher queues confirmation notices for the worker.
type AsynqDispatcher struct {
	client enqueuer
}

func NewAsynqDispatcher(client *asynq.Client) *AsynqDispatcher {
	return &AsynqDispatcher{client: client}
}

func (d *AsynqDispatcher) DispatchConfirmation(ctx context.Context, p models.ConfirmationPayload) error {
	task, opts, err := NewConfirmationTask(p)
	if err != nil {
		return err
	}
	if _, err := d.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueue confirmation for session %s: %w", p.SessionID, err)
	}
	return nil
}

// InlineDispatcher hands notices straight to a notifier. It is used when the
// task queue is disabled.
type InlineDispatcher struct {
	Notifier notification.Notifier
}

func (d InlineDispatcher) DispatchConfirmation(ctx context.Context, p models.ConfirmationPayload) error {
	return d.Notifier.NotifyBookingConfirmed(ctx, p)
}
