package catalog

import (
	"context"
	"time"

	"weddingplanner/models"
	"weddingplanner/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result is the settled outcome of one catalog load.
type Result struct {
	Catalog  models.Catalog
	Failures []CategoryFailure
}

// FailedCategories lists the categories that fell back to an empty list.
func (r Result) FailedCategories() []models.Category {
	if len(r.Failures) == 0 {
		return nil
	}
	out := make([]models.Category, 0, len(r.Failures))
	for _, f := range r.Failures {
		out = append(out, f.Category)
	}
	return out
}

// Loader fans out one read per category.
type Loader struct {
	Registry   *Registry
	Logger     *zap.Logger
	Retries    int
	RetryDelay time.Duration
}

// Load reads all four categories concurrently and waits for every read to
// settle. A failed category yields an empty list without affecting the others.
func (l *Loader) Load(ctx context.Context) Result {
	logger := l.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	lists := make([][]models.ServiceOffering, len(models.Categories))
	errs := make([]error, len(models.Categories))

	// Reads never return their error to the group so one failure cannot
	// cancel or short-circuit the others.
	var g errgroup.Group
	for i, category := range models.Categories {
		i, category := i, category
		g.Go(func() error {
			reader, err := l.Registry.Reader(category)
			if err != nil {
				errs[i] = err
				return nil
			}
			err = utils.RetryFixed(ctx, l.Retries, l.RetryDelay, func(attempt int) error {
				offerings, err := reader.ListAll(ctx)
				if err != nil {
					logger.Debug("catalog read attempt failed",
						zap.String("category", category.String()),
						zap.Int("attempt", attempt+1),
						zap.Error(err))
					return err
				}
				lists[i] = offerings
				return nil
			})
			errs[i] = err
			return nil
		})
	}
	_ = g.Wait()

	res := Result{Catalog: models.NewCatalog()}
	for i, category := range models.Categories {
		if errs[i] != nil {
			logger.Warn("catalog category unavailable, using empty list",
				zap.String("category", category.String()),
				zap.Error(errs[i]))
			res.Failures = append(res.Failures, CategoryFailure{Category: category, Err: errs[i]})
			continue
		}
		res.Catalog.Set(category, lists[i])
	}
	return res
}
