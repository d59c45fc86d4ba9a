package catalog

import (
	"context"
	"strings"

	"weddingplanner/models"
	"weddingplanner/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AdminService backs the service-management dashboard.
type AdminService struct {
	Registry *Registry
	Loader   *Loader
	Logger   *zap.Logger
}

func (s *AdminService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}

// ListAll loads all four categories with the same partial-failure rules as
// the checkout screen.
func (s *AdminService) ListAll(ctx context.Context) Result {
	return s.Loader.Load(ctx)
}

func validateOffering(name *string, price *decimal.Decimal, requireAll bool) error {
	fields := map[string]string{}
	if name != nil && strings.TrimSpace(*name) == "" || name == nil && requireAll {
		fields["name"] = "required"
	}
	switch {
	case price == nil && requireAll:
		fields["price"] = "required"
	case price != nil && price.IsNegative():
		fields["price"] = "must not be negative"
	}
	if len(fields) > 0 {
		return &utils.ValidationError{Fields: fields}
	}
	return nil
}

// Create adds an offering to category.
func (s *AdminService) Create(ctx context.Context, category models.Category, name string, price *decimal.Decimal) (models.ServiceOffering, error) {
	if err := validateOffering(&name, price, true); err != nil {
		return models.ServiceOffering{}, err
	}
	w, err := s.Registry.Writer(category)
	if err != nil {
		return models.ServiceOffering{}, err
	}
	o, err := w.Create(ctx, strings.TrimSpace(name), *price)
	if err != nil {
		s.logger().Error("failed to create offering", zap.Stringer("category", category), zap.Error(err))
		return models.ServiceOffering{}, &utils.WriteError{Resource: category.String(), Op: "create", Err: err}
	}
	return o, nil
}

// Update changes the provided fields of an offering.
func (s *AdminService) Update(ctx context.Context, category models.Category, id string, fields models.OfferingFields) (models.ServiceOffering, error) {
	if fields.Name == nil && fields.Price == nil {
		return models.ServiceOffering{}, utils.NewValidationError("name", "nothing to update")
	}
	if err := validateOffering(fields.Name, fields.Price, false); err != nil {
		return models.ServiceOffering{}, err
	}
	w, err := s.Registry.Writer(category)
	if err != nil {
		return models.ServiceOffering{}, err
	}
	o, err := w.Update(ctx, id, fields)
	if err != nil {
		s.logger().Error("failed to update offering",
			zap.Stringer("category", category), zap.String("id", id), zap.Error(err))
		return models.ServiceOffering{}, &utils.WriteError{Resource: category.String(), Op: "update", Err: err}
	}
	return o, nil
}

// Delete removes an offering.
func (s *AdminService) Delete(ctx context.Context, category models.Category, id string) error {
	w, err := s.Registry.Writer(category)
	if err != nil {
		return err
	}
	if err := w.Delete(ctx, id); err != nil {
		s.logger().Error("failed to delete offering",
			zap.Stringer("category", category), zap.String("id", id), zap.Error(err))
		return &utils.WriteError{Resource: category.String(), Op: "delete", Err: err}
	}
	return nil
}
