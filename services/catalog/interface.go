package catalog

import (
	"context"

	"weddingplanner/models"

	"github.com/shopspring/decimal"
)

// Reader lists every offering of one category.
type Reader interface {
	Category() models.Category
	ListAll(ctx context.Context) ([]models.ServiceOffering, error)
}

// Writer manages the offerings of one category.
type Writer interface {
	Category() models.Category
	Create(ctx context.Context, name string, price decimal.Decimal) (models.ServiceOffering, error)
	Update(ctx context.Context, id string, fields models.OfferingFields) (models.ServiceOffering, error)
	Delete(ctx context.Context, id string) error
}

// Registry indexes readers and writers by category.
type Registry struct {
	readers map[models.Category]Reader
	writers map[models.Category]Writer
}

// NewRegistry builds a registry from the given readers and writers.
func NewRegistry(readers []Reader, writers []Writer) *Registry {
	r := &Registry{
		readers: make(map[models.Category]Reader, len(readers)),
		writers: make(map[models.Category]Writer, len(writers)),
	}
	for _, rd := range readers {
		r.readers[rd.Category()] = rd
	}
	for _, w := range writers {
		r.writers[w.Category()] = w
	}
	return r
}

// Reader returns the reader for category.
func (r *Registry) Reader(category models.Category) (Reader, error) {
	rd, ok := r.readers[category]
	if !ok {
		return nil, &UnknownCategoryError{Category: category}
	}
	return rd, nil
}

// Writer returns the writer for category.
func (r *Registry) Writer(category models.Category) (Writer, error) {
	w, ok := r.writers[category]
	if !ok {
		return nil, &UnknownCategoryError{Category: category}
	}
	return w, nil
}
