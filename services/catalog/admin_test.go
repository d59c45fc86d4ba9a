package catalog

import (
	"context"
	"errors"
	"testing"

	"weddingplanner/models"
	"weddingplanner/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeWriter struct {
	category models.Category
	err      error
	deleted  []string
}

func (f *fakeWriter) Category() models.Category { return f.category }

func (f *fakeWriter) Create(_ context.Context, name string, price decimal.Decimal) (models.ServiceOffering, error) {
	if f.err != nil {
		return models.ServiceOffering{}, f.err
	}
	return models.ServiceOffering{ID: "new", Name: name, Price: price, Category: f.category}, nil
}

func (f *fakeWriter) Update(_ context.Context, id string, fields models.OfferingFields) (models.ServiceOffering, error) {
	if f.err != nil {
		return models.ServiceOffering{}, f.err
	}
	o := models.ServiceOffering{ID: id, Category: f.category}
	if fields.Name != nil {
		o.Name = *fields.Name
	}
	return o, nil
}

func (f *fakeWriter) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func adminWith(t *testing.T, w *fakeWriter) *AdminService {
	reg := NewRegistry(nil, []Writer{w})
	return &AdminService{Registry: reg, Loader: &Loader{Registry: reg}, Logger: zaptest.NewLogger(t)}
}

func TestAdminService_Create(t *testing.T) {
	svc := adminWith(t, &fakeWriter{category: models.CategoryMusic})
	price := decimal.RequireFromString("250.75")

	o, err := svc.Create(context.Background(), models.CategoryMusic, " Mariachi ", &price)
	require.NoError(t, err)
	assert.Equal(t, "Mariachi", o.Name)
	assert.True(t, price.Equal(o.Price))
}

func TestAdminService_CreateValidation(t *testing.T) {
	svc := adminWith(t, &fakeWriter{category: models.CategoryMusic})
	negative := decimal.NewFromInt(-1)

	_, err := svc.Create(context.Background(), models.CategoryMusic, "", nil)
	ve, ok := utils.IsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "name")
	assert.Contains(t, ve.Fields, "price")

	_, err = svc.Create(context.Background(), models.CategoryMusic, "DJ", &negative)
	ve, ok = utils.IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "must not be negative", ve.Fields["price"])
}

func TestAdminService_Update(t *testing.T) {
	svc := adminWith(t, &fakeWriter{category: models.CategoryMusic})
	name := "Banda"

	o, err := svc.Update(context.Background(), models.CategoryMusic, "m1", models.OfferingFields{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Banda", o.Name)

	_, err = svc.Update(context.Background(), models.CategoryMusic, "m1", models.OfferingFields{})
	_, ok := utils.IsValidation(err)
	assert.True(t, ok)
}

func TestAdminService_WriteFailures(t *testing.T) {
	boom := errors.New("boom")
	svc := adminWith(t, &fakeWriter{category: models.CategoryMusic, err: boom})
	price := decimal.NewFromInt(10)

	_, err := svc.Create(context.Background(), models.CategoryMusic, "DJ", &price)
	var we *utils.WriteError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, "create", we.Op)
	assert.Equal(t, "music", we.Resource)

	err = svc.Delete(context.Background(), models.CategoryMusic, "m1")
	require.ErrorAs(t, err, &we)
	assert.Equal(t, "delete", we.Op)
	assert.ErrorIs(t, err, boom)
}

func TestAdminService_UnknownCategory(t *testing.T) {
	svc := adminWith(t, &fakeWriter{category: models.CategoryMusic})

	err := svc.Delete(context.Background(), models.CategoryCatering, "c1")
	var ue *UnknownCategoryError
	require.ErrorAs(t, err, &ue)
}
