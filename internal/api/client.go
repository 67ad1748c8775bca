// Package api is the thin HTTP client for the TaskFlow backend. It attaches
// the session's bearer token and a request ID to every call and translates
// non-2xx responses into typed errors; it holds no entity state of its own.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskflow/internal/model"
)

// TokenSource supplies the current bearer token, or "" when logged out.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed TokenSource, handy for tests and one-shot calls.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

// Client talks to the backend API rooted at baseURL (e.g.
// "http://localhost:8000/api").
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
	}
}

// TaskCreate is the body of POST /tasks.
type TaskCreate struct {
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Status      model.Status   `json:"status,omitempty"`
	CategoryID  uint           `json:"category_id"`
	Priority    model.Priority `json:"priority,omitempty"`
	DueDate     *time.Time     `json:"due_date,omitempty"`
}

// TaskPatch is the body of PUT /tasks/{id}; nil fields are left unchanged.
type TaskPatch struct {
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Status      *model.Status   `json:"status,omitempty"`
	Priority    *model.Priority `json:"priority,omitempty"`
	CategoryID  *uint           `json:"category_id,omitempty"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
}

// CategoryCreate is the body of POST /categories.
type CategoryCreate struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// CategoryPatch is the body of PUT /categories/{id}.
type CategoryPatch struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

// RegisterRequest is the body of POST /users/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the body returned by POST /users/token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates an account. It needs no token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodPost, "/users/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for a bearer token. The endpoint is
// form-encoded, unlike the JSON bodies everywhere else.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{"username": {username}, "password": {password}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", decodeError(resp)
	}
	var tok TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("decode token: %w", err)
	}
	return tok.AccessToken, nil
}

// Me returns the authenticated user.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListCategories fetches all categories with their rollup counts.
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategory fetches one category.
func (c *Client) GetCategory(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	if err := c.do(ctx, http.MethodGet, "/categories/"+itoa(id), nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, req CategoryCreate) (*model.Category, error) {
	var category model.Category
	if err := c.do(ctx, http.MethodPost, "/categories", req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory renames or recolors a category.
func (c *Client) UpdateCategory(ctx context.Context, id uint, patch CategoryPatch) (*model.Category, error) {
	var category model.Category
	if err := c.do(ctx, http.MethodPut, "/categories/"+itoa(id), patch, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory deletes a category; the server cascades to its tasks.
func (c *Client) DeleteCategory(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+itoa(id), nil, nil)
}

// ListTasks fetches tasks, optionally restricted to one category.
func (c *Client) ListTasks(ctx context.Context, categoryID *uint) ([]model.Task, error) {
	path := "/tasks"
	if categoryID != nil {
		path += "?category_id=" + itoa(*categoryID)
	}
	var tasks []model.Task
	if err := c.do(ctx, http.MethodGet, path, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a task.
func (c *Client) CreateTask(ctx context.Context, req TaskCreate) (*model.Task, error) {
	var task model.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask applies a partial update to a task.
func (c *Client) UpdateTask(ctx context.Context, id uint, patch TaskPatch) (*model.Task, error) {
	var task model.Task
	if err := c.do(ctx, http.MethodPut, "/tasks/"+itoa(id), patch, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTaskStatus moves a task to a new board column.
func (c *Client) UpdateTaskStatus(ctx context.Context, id uint, status model.Status) (*model.Task, error) {
	var task model.Task
	body := struct {
		Status model.Status `json:"status"`
	}{Status: status}
	if err := c.do(ctx, http.MethodPatch, "/tasks/"+itoa(id)+"/status", body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+itoa(id), nil, nil)
}

// Insights fetches the dashboard insights report.
func (c *Client) Insights(ctx context.Context) (*model.InsightsReport, error) {
	var report model.InsightsReport
	if err := c.do(ctx, http.MethodGet, "/insights", nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		apiErr.Message = payload.Error
	}
	return apiErr
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
