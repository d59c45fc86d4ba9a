package directory

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
)

// RESTDirectory talks to the user service under baseURL (".../api").
type RESTDirectory struct {
	baseURL string
	http    *http.Client
}

// NewRESTDirectory returns a client for the user service.
func NewRESTDirectory(baseURL string, httpClient *http.Client) *RESTDirectory {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &RESTDirectory{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// wireUser accepts numeric or string ids.
type wireUser struct {
	ID    utils.FlexString `json:"id"`
	Name  string           `json:"name"`
	Email string           `json:"email"`
}

func (u wireUser) model() models.DirectoryUser {
	return models.DirectoryUser{ID: string(u.ID), Name: u.Name, Email: u.Email}
}

func (d *RESTDirectory) usersURL() string {
	return d.baseURL + "/users"
}

func (d *RESTDirectory) userURL(id string) string {
	return d.usersURL() + "/" + url.PathEscape(id)
}

func (d *RESTDirectory) List(ctx context.Context) ([]models.DirectoryUser, error) {
	var rows []wireUser
	if err := d.do(ctx, http.MethodGet, d.usersURL(), nil, &rows); err != nil {
		return nil, err
	}
	users := make([]models.DirectoryUser, 0, len(rows))
	for _, r := range rows {
		users = append(users, r.model())
	}
	return users, nil
}

func (d *RESTDirectory) Create(ctx context.Context, input models.DirectoryUserInput) (*models.DirectoryUser, error) {
	var row wireUser
	if err := d.do(ctx, http.MethodPost, d.usersURL(), input, &row); err != nil {
		return nil, err
	}
	u := row.model()
	if u.Name == "" {
		u.Name, u.Email = input.Name, input.Email
	}
	return &u, nil
}

func (d *RESTDirectory) Update(ctx context.Context, id string, input models.DirectoryUserInput) (*models.DirectoryUser, error) {
	var row wireUser
	if err := d.do(ctx, http.MethodPut, d.userURL(id), input, &row); err != nil {
		return nil, err
	}
	u := row.model()
	if u.ID == "" {
		u.ID = id
	}
	if u.Name == "" {
		u.Name, u.Email = input.Name, input.Email
	}
	return &u, nil
}

func (d *RESTDirectory) Delete(ctx context.Context, id string) error {
	return d.do(ctx, http.MethodDelete, d.userURL(id), nil, nil)
}

// do sends body as JSON and decodes a non-empty response into out.
func (d *RESTDirectory) do(ctx context.Context, method, target string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := d.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &utils.HTTPStatusError{URL: target, StatusCode: resp.StatusCode, Body: string(raw)}
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, target, err)
	}
	return nil
}
