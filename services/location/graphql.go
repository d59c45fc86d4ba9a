package location

import (
	"context"
	"fmt"
	"net/http"

	"weddingplanner/models"
	"weddingplanner/utils"
)

const (
	listQuery = `query { getLocations { location_id location_name province_id } }`

	createMutation = `mutation createLocation($input: LocationInput!) {
  createLocation(input: $input) {
    location_id
    location_name
    province_id
  }
}`
)

// GraphQLDirectory reads from one GraphQL service and writes to another.
type GraphQLDirectory struct {
	read  *utils.GraphQLClient
	write *utils.GraphQLClient
}

func NewGraphQLDirectory(readURL, writeURL string, httpClient *http.Client) *GraphQLDirectory {
	return &GraphQLDirectory{
		read:  &utils.GraphQLClient{URL: readURL, HTTP: httpClient},
		write: &utils.GraphQLClient{URL: writeURL, HTTP: httpClient},
	}
}

type wireLocation struct {
	ID         utils.FlexString `json:"location_id"`
	Name       string           `json:"location_name"`
	ProvinceID int              `json:"province_id"`
}

func (l wireLocation) model() models.Location {
	return models.Location{ID: string(l.ID), Name: l.Name, ProvinceID: l.ProvinceID}
}

func (d *GraphQLDirectory) List(ctx context.Context) ([]models.Location, error) {
	var data struct {
		GetLocations []wireLocation `json:"getLocations"`
	}
	if err := d.read.Do(ctx, listQuery, nil, &data); err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	out := make([]models.Location, 0, len(data.GetLocations))
	for _, l := range data.GetLocations {
		out = append(out, l.model())
	}
	return out, nil
}

func (d *GraphQLDirectory) Create(ctx context.Context, name string, provinceID int) (*models.Location, error) {
	vars := map[string]any{
		"input": map[string]any{
			"location_name": name,
			"province_id":   provinceID,
		},
	}
	var data struct {
		CreateLocation *wireLocation `json:"createLocation"`
	}
	if err := d.write.Do(ctx, createMutation, vars, &data); err != nil {
		return nil, fmt.Errorf("create location: %w", err)
	}
	if data.CreateLocation == nil {
		return &models.Location{Name: name, ProvinceID: provinceID}, nil
	}
	loc := data.CreateLocation.model()
	return &loc, nil
}
