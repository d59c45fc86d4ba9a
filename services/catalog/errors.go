package catalog

import (
	"fmt"

	"weddingplanner/models"
)

// CategoryFailure records a category whose read failed and was replaced by an
// empty list.
type CategoryFailure struct {
	Category models.Category
	Err      error
}

func (f CategoryFailure) Error() string {
	return fmt.Sprintf("%s catalog unavailable: %v", f.Category, f.Err)
}

func (f CategoryFailure) Unwrap() error {
	return f.Err
}

// UnknownCategoryError is returned when no reader or writer serves a category.
type UnknownCategoryError struct {
	Category models.Category
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("no catalog backend for category %q", e.Category)
}
