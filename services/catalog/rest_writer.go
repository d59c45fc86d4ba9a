package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"weddingplanner/models"
	"weddingplanner/utils"

	"github.com/shopspring/decimal"
)

// RESTWriter manages one category through its create/update/delete endpoints.
type RESTWriter struct {
	category  models.Category
	idField   string
	createURL string
	updateURL string
	deleteURL string
	http      *http.Client
}

// NewRESTWriter returns a writer. updateURL and deleteURL are prefixes the
// offering id is appended to.
func NewRESTWriter(category models.Category, idField, createURL, updateURL, deleteURL string, httpClient *http.Client) *RESTWriter {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &RESTWriter{
		category:  category,
		idField:   idField,
		createURL: createURL,
		updateURL: updateURL,
		deleteURL: deleteURL,
		http:      httpClient,
	}
}

func (w *RESTWriter) Category() models.Category {
	return w.category
}

// Upstreams expect price as a JSON number, not the quoted form
// decimal.Decimal marshals to.
type offeringBody struct {
	Name  *string      `json:"name,omitempty"`
	Price *json.Number `json:"price,omitempty"`
}

func wirePrice(price *decimal.Decimal) *json.Number {
	if price == nil {
		return nil
	}
	n := json.Number(price.String())
	return &n
}

// Create adds an offering.
func (w *RESTWriter) Create(ctx context.Context, name string, price decimal.Decimal) (models.ServiceOffering, error) {
	fallback := models.ServiceOffering{Name: name, Price: price, Category: w.category}
	return w.send(ctx, http.MethodPost, w.createURL, offeringBody{Name: &name, Price: wirePrice(&price)}, fallback)
}

// Update changes the given fields of an offering.
func (w *RESTWriter) Update(ctx context.Context, id string, fields models.OfferingFields) (models.ServiceOffering, error) {
	fallback := models.ServiceOffering{ID: id, Category: w.category}
	if fields.Name != nil {
		fallback.Name = *fields.Name
	}
	if fields.Price != nil {
		fallback.Price = *fields.Price
	}
	return w.send(ctx, http.MethodPut, joinID(w.updateURL, id), offeringBody{Name: fields.Name, Price: wirePrice(fields.Price)}, fallback)
}

// Delete removes an offering.
func (w *RESTWriter) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, joinID(w.deleteURL, id), nil)
	if err != nil {
		return err
	}
	resp, err := w.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return &utils.HTTPStatusError{URL: req.URL.String(), StatusCode: resp.StatusCode, Body: string(body)}
	}
	return nil
}

// send issues a JSON write and decodes the offering echoed back. Upstreams
// that reply without a body yield fallback.
func (w *RESTWriter) send(ctx context.Context, method, target string, body offeringBody, fallback models.ServiceOffering) (models.ServiceOffering, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return models.ServiceOffering{}, err
	}
	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(payload))
	if err != nil {
		return models.ServiceOffering{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.http.Do(req)
	if err != nil {
		return models.ServiceOffering{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return models.ServiceOffering{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.ServiceOffering{}, &utils.HTTPStatusError{URL: target, StatusCode: resp.StatusCode, Body: string(raw)}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return fallback, nil
	}

	var row map[string]json.RawMessage
	if err := json.Unmarshal(raw, &row); err != nil {
		return fallback, nil
	}
	o, err := decodeOffering(w.category, w.idField, row)
	if err != nil {
		return models.ServiceOffering{}, fmt.Errorf("decode %s response: %w", w.category, err)
	}
	if o.ID == "" {
		o.ID = fallback.ID
	}
	if o.Name == "" {
		o.Name = fallback.Name
	}
	if _, ok := row["price"]; !ok {
		o.Price = fallback.Price
	}
	return o, nil
}

func joinID(prefix, id string) string {
	return strings.TrimRight(prefix, "/") + "/" + url.PathEscape(id)
}
