package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"weddingplanner/models"
	"weddingplanner/utils"

	"github.com/shopspring/decimal"
)

// GraphQLReader reads a category through its getAll<Category> query.
type GraphQLReader struct {
	category   models.Category
	queryField string
	idField    string
	client     *utils.GraphQLClient
}

// NewGraphQLReader returns a reader for one category endpoint. queryField is
// the root field (for example getAllCatering) and idField the name the
// upstream uses for the identifier (for example id_catering).
func NewGraphQLReader(category models.Category, url, queryField, idField string, httpClient *http.Client) *GraphQLReader {
	return &GraphQLReader{
		category:   category,
		queryField: queryField,
		idField:    idField,
		client:     &utils.GraphQLClient{URL: url, HTTP: httpClient},
	}
}

func (r *GraphQLReader) Category() models.Category {
	return r.category
}

// ListAll fetches every offering of the category.
func (r *GraphQLReader) ListAll(ctx context.Context) ([]models.ServiceOffering, error) {
	query := fmt.Sprintf("query { %s { %s name price } }", r.queryField, r.idField)

	var data map[string][]map[string]json.RawMessage
	if err := r.client.Do(ctx, query, nil, &data); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.category, err)
	}

	rows := data[r.queryField]
	out := make([]models.ServiceOffering, 0, len(rows))
	for i, row := range rows {
		o, err := decodeOffering(r.category, r.idField, row)
		if err != nil {
			return nil, fmt.Errorf("list %s: row %d: %w", r.category, i, err)
		}
		out = append(out, o)
	}
	return out, nil
}

func decodeOffering(category models.Category, idField string, row map[string]json.RawMessage) (models.ServiceOffering, error) {
	o := models.ServiceOffering{Category: category}

	rawID, ok := row[idField]
	if !ok {
		rawID, ok = row["id"]
	}
	if ok {
		var id utils.FlexString
		if err := json.Unmarshal(rawID, &id); err != nil {
			return o, fmt.Errorf("decode %s: %w", idField, err)
		}
		o.ID = string(id)
	}
	if raw, ok := row["name"]; ok {
		if err := json.Unmarshal(raw, &o.Name); err != nil {
			return o, fmt.Errorf("decode name: %w", err)
		}
	}
	if raw, ok := row["price"]; ok && string(raw) != "null" {
		var p decimal.Decimal
		if err := json.Unmarshal(raw, &p); err != nil {
			return o, fmt.Errorf("decode price: %w", err)
		}
		o.Price = p
	}
	if o.Price.IsNegative() {
		return o, fmt.Errorf("negative price %s", o.Price)
	}
	return o, nil
}
