// Package client is a Go SDK for the intern tracker API plus the dashboard
// state controller that drives list, stat, and form views.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type Intern struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type ListResponse struct {
	Data       []Intern   `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type StatsResponse struct {
	Total        int64   `json:"total"`
	Hired        int64   `json:"hired"`
	Interviewing int64   `json:"interviewing"`
	AvgScore     float64 `json:"avgScore"`
}

// Fields is one form submission; the form always sends every field.
type Fields struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
	Score  int    `json:"score"`
}

type ListQuery struct {
	Q      string
	Status string
	Role   string
	Page   int
	Limit  int
}

// APIError is a decoded error body from the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%s, http %d)", e.Message, e.Code, e.StatusCode)
}

type Client struct {
	base string
	hc   *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		hc:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) List(ctx context.Context, q ListQuery) (*ListResponse, error) {
	out := &ListResponse{}
	if err := c.do(ctx, http.MethodGet, "", q.values(), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Stats(ctx context.Context, q ListQuery) (*StatsResponse, error) {
	out := &StatsResponse{}
	v := q.values()
	v.Del("page")
	v.Del("limit")
	if err := c.do(ctx, http.MethodGet, "/stats", v, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, id string) (*Intern, error) {
	out := &Intern{}
	if err := c.do(ctx, http.MethodGet, "/"+id, nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Create(ctx context.Context, f Fields) (*Intern, error) {
	out := &Intern{}
	if err := c.do(ctx, http.MethodPost, "", nil, f, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Update(ctx context.Context, id string, f Fields) (*Intern, error) {
	out := &Intern{}
	if err := c.do(ctx, http.MethodPatch, "/"+id, nil, f, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/"+id, nil, nil, nil)
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	if q.Q != "" {
		v.Set("q", q.Q)
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Role != "" {
		v.Set("role", q.Role)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.base + "/api/interns" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: res.StatusCode, Code: "SERVER_ERROR", Message: res.Status}
		var eb struct {
			Error struct {
				Message string `json:"message"`
				Code    string `json:"code"`
			} `json:"error"`
		}
		if json.NewDecoder(res.Body).Decode(&eb) == nil && eb.Error.Code != "" {
			apiErr.Code = eb.Error.Code
			apiErr.Message = eb.Error.Message
		}
		return apiErr
	}
	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
