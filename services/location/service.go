package location

import (
	"context"
	"strconv"
	"strings"

	"weddingplanner/models"
	"weddingplanner/utils"

	"go.uber.org/zap"
)

func (s *DefaultLocationService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}

func (s *DefaultLocationService) ListLocations(ctx context.Context) ([]models.Location, error) {
	locs, err := s.Directory.List(ctx)
	if err != nil {
		s.logger().Error("failed to load locations", zap.Error(err))
		return nil, err
	}
	return locs, nil
}

// CreateLocation requires a name and an integer province id.
func (s *DefaultLocationService) CreateLocation(ctx context.Context, name, provinceID string) (*models.Location, error) {
	fields := map[string]string{}
	name = strings.TrimSpace(name)
	if name == "" {
		fields["location_name"] = "required"
	}
	province, err := strconv.Atoi(strings.TrimSpace(provinceID))
	if err != nil {
		fields["province_id"] = "must be an integer"
	}
	if len(fields) > 0 {
		return nil, &utils.ValidationError{Fields: fields}
	}

	loc, err := s.Directory.Create(ctx, name, province)
	if err != nil {
		s.logger().Error("failed to create location", zap.String("name", name), zap.Error(err))
		return nil, &utils.WriteError{Resource: "location", Op: "create", Err: err}
	}
	return loc, nil
}
