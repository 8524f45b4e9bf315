// Package api is the HTTP client for the Wastra marketplace API.
// It wraps every endpoint the repositories consume and classifies failures
// into the transport/server/auth taxonomy in errors.go.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout bounds each request end to end.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit is requests per minute against the API.
	DefaultRateLimit = 60
)

// Client issues typed requests against the marketplace API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a client for the given base URL. The bearer token may be
// empty for unauthenticated endpoints.
func NewClient(baseURL, token string, rateLimit int) *Client {
	if rateLimit <= 0 {
		rateLimit = DefaultRateLimit
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: DefaultTimeout},
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(rateLimit)), rateLimit),
	}
}

// SetToken replaces the bearer token, e.g. after a re-login.
func (c *Client) SetToken(token string) {
	c.token = token
}

// do executes a request and decodes the JSON response into out (when out is
// non-nil). Non-2xx statuses become *ServerError, 401 becomes ErrAuthExpired,
// and anything that never produced a response becomes *TransportError.
func (c *Client) do(ctx context.Context, method, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &TransportError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrAuthExpired
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		serr := &ServerError{StatusCode: resp.StatusCode}
		// Body decode is best effort; the status alone is enough.
		var body struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			serr.Code = body.Code
			serr.Message = body.Message
		}
		return serr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var resp listResponse[T]
	if err := c.do(ctx, http.MethodGet, path, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Courses fetches the full course catalog.
func (c *Client) Courses(ctx context.Context) ([]Course, error) {
	return getList[Course](ctx, c, "/courses")
}

// Materials fetches all materials for a course.
func (c *Client) Materials(ctx context.Context, courseID int) ([]Material, error) {
	return getList[Material](ctx, c, fmt.Sprintf("/courses/%d/materials", courseID))
}

// Enrollments fetches a user's enrollments.
func (c *Client) Enrollments(ctx context.Context, userID int) ([]Enrollment, error) {
	return getList[Enrollment](ctx, c, fmt.Sprintf("/users/%d/enrollments", userID))
}

// KaryaAll fetches the public gallery.
func (c *Client) KaryaAll(ctx context.Context) ([]Karya, error) {
	return getList[Karya](ctx, c, "/karya")
}

// KaryaByUser fetches a single user's gallery.
func (c *Client) KaryaByUser(ctx context.Context, userID int) ([]Karya, error) {
	return getList[Karya](ctx, c, fmt.Sprintf("/users/%d/karya", userID))
}

// DeleteKarya deletes a gallery item on the server.
func (c *Client) DeleteKarya(ctx context.Context, id int) (*DeleteResult, error) {
	var result DeleteResult
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/karya/%d", id), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Questions fetches the forum feed, newest first.
func (c *Client) Questions(ctx context.Context) ([]Question, error) {
	return getList[Question](ctx, c, "/forum/questions")
}

// DeleteQuestion deletes a forum question on the server.
func (c *Client) DeleteQuestion(ctx context.Context, id int) (*DeleteResult, error) {
	var result DeleteResult
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/forum/questions/%d", id), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetMeta fetches server-side client requirements.
func (c *Client) GetMeta(ctx context.Context) (*Meta, error) {
	var meta Meta
	if err := c.do(ctx, http.MethodGet, "/meta", &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}
