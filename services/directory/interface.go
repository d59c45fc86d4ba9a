package directory

import (
	"context"
	"time"

	"weddingplanner/models"

	"go.uber.org/zap"
)

// Directory is the remote user directory.
type Directory interface {
	List(ctx context.Context) ([]models.DirectoryUser, error)
	Create(ctx context.Context, input models.DirectoryUserInput) (*models.DirectoryUser, error)
	Update(ctx context.Context, id string, input models.DirectoryUserInput) (*models.DirectoryUser, error)
	Delete(ctx context.Context, id string) error
}

// UserService is what the admin dashboard talks to.
type UserService interface {
	ListUsers(ctx context.Context) UserList
	CreateUser(ctx context.Context, input models.DirectoryUserInput) (*models.DirectoryUser, error)
	UpdateUser(ctx context.Context, id string, input models.DirectoryUserInput) (*models.DirectoryUser, error)
	DeleteUser(ctx context.Context, id string) error
}

// UserList is the outcome of a list call. When the directory could not be
// reached Users holds the placeholder dataset and Err is set.
type UserList struct {
	Users       []models.DirectoryUser
	Placeholder bool
	Err         error
}

// DefaultUserService retries list calls and falls back to placeholders.
type DefaultUserService struct {
	Directory    Directory
	Retries      int
	RetryDelay   time.Duration
	Placeholders []models.DirectoryUser
	Logger       *zap.Logger
}

// DefaultPlaceholders is the demo dataset shown while the directory is down.
var DefaultPlaceholders = []models.DirectoryUser{
	{ID: "1", Name: "John Doe", Email: "john@example.com"},
	{ID: "2", Name: "Jane Smith", Email: "jane@example.com"},
	{ID: "3", Name: "Alice Johnson", Email: "alice@example.com"},
}
