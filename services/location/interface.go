package location

import (
	"context"

	"weddingplanner/models"

	"go.uber.org/zap"
)

// Directory reads and creates event locations.
type Directory interface {
	List(ctx context.Context) ([]models.Location, error)
	Create(ctx context.Context, name string, provinceID int) (*models.Location, error)
}

// LocationService validates admin input before reaching the directory.
type LocationService interface {
	ListLocations(ctx context.Context) ([]models.Location, error)
	CreateLocation(ctx context.Context, name, provinceID string) (*models.Location, error)
}

type DefaultLocationService struct {
	Directory Directory
	Logger    *zap.Logger
}
