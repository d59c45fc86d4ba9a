package directory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"weddingplanner/models"
	"weddingplanner/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeDirectory struct {
	mu        sync.Mutex
	listCalls int
	failLists int
	users     []models.DirectoryUser
	writeErr  error
}

func (f *fakeDirectory) List(context.Context) ([]models.DirectoryUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.failLists > 0 {
		f.failLists--
		return nil, errors.New("connection refused")
	}
	return f.users, nil
}

func (f *fakeDirectory) Create(_ context.Context, in models.DirectoryUserInput) (*models.DirectoryUser, error) {
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	return &models.DirectoryUser{ID: "9", Name: in.Name, Email: in.Email}, nil
}

func (f *fakeDirectory) Update(_ context.Context, id string, in models.DirectoryUserInput) (*models.DirectoryUser, error) {
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	return &models.DirectoryUser{ID: id, Name: in.Name, Email: in.Email}, nil
}

func (f *fakeDirectory) Delete(context.Context, string) error {
	return f.writeErr
}

func newService(t *testing.T, dir Directory) *DefaultUserService {
	return &DefaultUserService{
		Directory: dir,
		Retries:   2,
		Logger:    zaptest.NewLogger(t),
	}
}

func TestListUsers_Live(t *testing.T) {
	dir := &fakeDirectory{users: []models.DirectoryUser{{ID: "7", Name: "Eva", Email: "eva@example.com"}}}
	got := newService(t, dir).ListUsers(context.Background())

	require.NoError(t, got.Err)
	assert.False(t, got.Placeholder)
	assert.Equal(t, dir.users, got.Users)
	assert.Equal(t, 1, dir.listCalls)
}

func TestListUsers_RecoversWithinRetries(t *testing.T) {
	dir := &fakeDirectory{failLists: 2, users: []models.DirectoryUser{{ID: "7", Name: "Eva"}}}
	got := newService(t, dir).ListUsers(context.Background())

	require.NoError(t, got.Err)
	assert.False(t, got.Placeholder)
	assert.Equal(t, 3, dir.listCalls)
}

func TestListUsers_FallsBackThenRecovers(t *testing.T) {
	dir := &fakeDirectory{failLists: 3, users: []models.DirectoryUser{{ID: "7", Name: "Eva"}}}
	svc := newService(t, dir)

	got := svc.ListUsers(context.Background())
	assert.ErrorIs(t, got.Err, ErrDirectoryUnavailable)
	assert.True(t, got.Placeholder)
	assert.Equal(t, DefaultPlaceholders, got.Users)
	assert.Equal(t, 3, dir.listCalls)

	got = svc.ListUsers(context.Background())
	require.NoError(t, got.Err)
	assert.False(t, got.Placeholder)
	assert.Equal(t, "Eva", got.Users[0].Name)
}

func TestListUsers_ConfiguredPlaceholders(t *testing.T) {
	dir := &fakeDirectory{failLists: 10}
	svc := newService(t, dir)
	svc.Retries = 0
	svc.Placeholders = []models.DirectoryUser{{ID: "x", Name: "Demo"}}

	got := svc.ListUsers(context.Background())
	assert.True(t, got.Placeholder)
	assert.Equal(t, svc.Placeholders, got.Users)
	assert.Equal(t, 1, dir.listCalls)
}

func TestListUsers_EmptyDirectoryIsNotNil(t *testing.T) {
	got := newService(t, &fakeDirectory{}).ListUsers(context.Background())
	require.NoError(t, got.Err)
	assert.NotNil(t, got.Users)
	assert.Empty(t, got.Users)
}

func TestWrites_WrapFailures(t *testing.T) {
	boom := errors.New("boom")
	svc := newService(t, &fakeDirectory{writeErr: boom})
	ctx := context.Background()
	in := models.DirectoryUserInput{Name: "Eva", Email: "eva@example.com"}

	_, err := svc.CreateUser(ctx, in)
	var we *utils.WriteError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, "create", we.Op)
	assert.ErrorIs(t, err, boom)

	_, err = svc.UpdateUser(ctx, "7", in)
	require.ErrorAs(t, err, &we)
	assert.Equal(t, "update", we.Op)

	err = svc.DeleteUser(ctx, "7")
	require.ErrorAs(t, err, &we)
	assert.Equal(t, "delete", we.Op)
}

func TestWrites_Succeed(t *testing.T) {
	svc := newService(t, &fakeDirectory{})
	u, err := svc.UpdateUser(context.Background(), "7", models.DirectoryUserInput{Name: "Eva", Email: "eva@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "7", u.ID)
	assert.NoError(t, svc.DeleteUser(context.Background(), "7"))
}
