package catalog

import (
	"fmt"
	"net/http"

	"weddingplanner/config"
	"weddingplanner/models"
)

// NewRegistryFromConfig wires one GraphQL reader and one REST writer per
// category from the configured endpoints.
func NewRegistryFromConfig(cfg config.Config, httpClient *http.Client) (*Registry, error) {
	readers := make([]Reader, 0, len(models.Categories))
	writers := make([]Writer, 0, len(models.Categories))
	for _, category := range models.Categories {
		ep, ok := cfg.Catalog(string(category))
		if !ok || ep.ReadURL == "" {
			return nil, fmt.Errorf("catalog endpoint for %s is not configured", category)
		}
		readers = append(readers, NewGraphQLReader(category, ep.ReadURL, ep.QueryField, ep.IDField, httpClient))
		writers = append(writers, NewRESTWriter(category, ep.IDField, ep.CreateURL, ep.UpdateURL, ep.DeleteURL, httpClient))
	}
	return NewRegistry(readers, writers), nil
}
