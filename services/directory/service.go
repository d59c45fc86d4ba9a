package directory

import (
	"context"
	"fmt"

	"weddingplanner/models"
	"weddingplanner/utils"

	"go.uber.org/zap"
)

func (s *DefaultUserService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}

// ListUsers returns live users, retrying failed calls. Once the retries are
// spent the placeholder dataset is returned with ErrDirectoryUnavailable.
func (s *DefaultUserService) ListUsers(ctx context.Context) UserList {
	var users []models.DirectoryUser
	err := utils.RetryFixed(ctx, s.Retries, s.RetryDelay, func(attempt int) error {
		var err error
		users, err = s.Directory.List(ctx)
		if err != nil {
			s.logger().Warn("user directory list failed",
				zap.Int("attempt", attempt+1),
				zap.Error(err))
		}
		return err
	})
	if err == nil {
		if users == nil {
			users = []models.DirectoryUser{}
		}
		return UserList{Users: users}
	}

	placeholders := s.Placeholders
	if len(placeholders) == 0 {
		placeholders = DefaultPlaceholders
	}
	s.logger().Error("user directory unavailable, serving placeholders", zap.Error(err))
	return UserList{
		Users:       append([]models.DirectoryUser(nil), placeholders...),
		Placeholder: true,
		Err:         fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err),
	}
}

func (s *DefaultUserService) CreateUser(ctx context.Context, input models.DirectoryUserInput) (*models.DirectoryUser, error) {
	u, err := s.Directory.Create(ctx, input)
	if err != nil {
		s.logger().Error("failed to create user", zap.Error(err))
		return nil, &utils.WriteError{Resource: "user", Op: "create", Err: err}
	}
	return u, nil
}

func (s *DefaultUserService) UpdateUser(ctx context.Context, id string, input models.DirectoryUserInput) (*models.DirectoryUser, error) {
	u, err := s.Directory.Update(ctx, id, input)
	if err != nil {
		s.logger().Error("failed to update user", zap.String("userID", id), zap.Error(err))
		return nil, &utils.WriteError{Resource: "user", Op: "update", Err: err}
	}
	return u, nil
}

func (s *DefaultUserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.Directory.Delete(ctx, id); err != nil {
		s.logger().Error("failed to delete user", zap.String("userID", id), zap.Error(err))
		return &utils.WriteError{Resource: "user", Op: "delete", Err: err}
	}
	return nil
}
