package tasks

import (
	"context"
	"errors"
	"testing"

	"weddingplanner/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnqueuer struct {
	tasks []*asynq.Task
	opts  [][]asynq.Option
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	f.opts = append(f.opts, opts)
	return &asynq.TaskInfo{ID: "t1", Type: task.Type()}, nil
}

type recordingNotifier struct {
	got []models.ConfirmationPayload
}

func (r *recordingNotifier) NotifyBookingConfirmed(_ context.Context, p models.ConfirmationPayload) error {
	r.got = append(r.got, p)
	return nil
}

func TestConfirmationTaskRoundTrip(t *testing.T) {
	p := models.ConfirmationPayload{SessionID: "s1", Locale: "es", BookingID: "bk-1"}
	task, opts, err := NewConfirmationTask(p)
	require.NoError(t, err)
	assert.Equal(t, TypeBookingConfirmation, task.Type())
	assert.NotEmpty(t, opts)

	back, err := ParseConfirmationTask(task)
	require.NoError(t, err)
	assert.Equal(t, "bk-1", back.BookingID)

	_, err = ParseConfirmationTask(asynq.NewTask(TypeBookingConfirmation, []byte("{")))
	assert.Error(t, err)
}

func TestAsynqDispatcher(t *testing.T) {
	q := &fakeEnqueuer{}
	d := &AsynqDispatcher{client: q}

	require.NoError(t, d.DispatchConfirmation(context.Background(), models.ConfirmationPayload{SessionID: "s1"}))
	require.Len(t, q.tasks, 1)
	assert.Equal(t, TypeBookingConfirmation, q.tasks[0].Type())

	q.err = errors.New("redis down")
	err := d.DispatchConfirmation(context.Background(), models.ConfirmationPayload{SessionID: "s2"})
	assert.ErrorContains(t, err, "s2")
}

func TestInlineDispatcher(t *testing.T) {
	n := &recordingNotifier{}
	require.NoError(t, InlineDispatcher{Notifier: n}.DispatchConfirmation(context.Background(), models.ConfirmationPayload{SessionID: "s1"}))
	assert.Len(t, n.got, 1)
}
