// Package client is the Go SDK for the daybook HTTP API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/daybook-app/daybook/internal/model"
)

// Client talks to a daybookd instance. After Register or Login the
// session token is attached to every subsequent request.
type Client struct {
	http  *resty.Client
	token string
}

// New creates a client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)
	return &Client{http: c}
}

// SetToken installs a previously obtained session token.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the current session token, empty when not logged in.
func (c *Client) Token() string { return c.token }

// Session mirrors the server's register/login response.
type Session struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

type apiError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func (c *Client) req(ctx context.Context) *resty.Request {
	r := c.http.R().SetContext(ctx)
	if c.token != "" {
		r.SetHeader("Authorization", "Bearer "+c.token)
	}
	return r
}

func checkStatus(resp *resty.Response, want int) error {
	if resp.StatusCode() == want {
		return nil
	}
	var apiErr apiError
	if err := json.Unmarshal(resp.Body(), &apiErr); err == nil && apiErr.Message != "" {
		return fmt.Errorf("%s (status %d)", apiErr.Message, resp.StatusCode())
	}
	return fmt.Errorf("unexpected status %d: %s", resp.StatusCode(), resp.String())
}

// Register creates an account and stores the returned token.
func (c *Client) Register(ctx context.Context, username, email, password string) (*Session, error) {
	var sess Session
	resp, err := c.req(ctx).
		SetBody(map[string]string{"username": username, "email": email, "password": password}).
		SetResult(&sess).
		Post("/api/auth/register")
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp, http.StatusCreated); err != nil {
		return nil, err
	}
	c.token = sess.Token
	return &sess, nil
}

// Login authenticates and stores the returned token.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var sess Session
	resp, err := c.req(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&sess).
		Post("/api/auth/login")
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp, http.StatusOK); err != nil {
		return nil, err
	}
	c.token = sess.Token
	return &sess, nil
}

// UpdateUsername changes the logged-in user's display name.
func (c *Client) UpdateUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	resp, err := c.req(ctx).
		SetBody(map[string]string{"username": username}).
		SetResult(&u).
		Put("/api/auth/update")
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetDay fetches the day entry for a date key like "2024-01-15".
func (c *Client) GetDay(ctx context.Context, date string) (*model.DayEntry, error) {
	var e model.DayEntry
	resp, err := c.req(ctx).SetResult(&e).Get("/api/data/day/" + date)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &e, nil
}

// DayPatch carries the day-entry fields to change; nil fields stay as
// stored on the server.
type DayPatch struct {
	Todos          []model.Todo      `json:"todos,omitempty"`
	TagAllocations map[string]string `json:"tagAllocations,omitempty"`
	VariableValues map[string]string `json:"variableValues,omitempty"`
}

// SaveDay merges the patch into the server-side entry for the date.
func (c *Client) SaveDay(ctx context.Context, date string, patch DayPatch) (*model.DayEntry, error) {
	var e model.DayEntry
	resp, err := c.req(ctx).SetBody(patch).SetResult(&e).Post("/api/data/day/" + date)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &e, nil
}

// SaveJournal creates (empty id) or updates a journal document.
func (c *Client) SaveJournal(ctx context.Context, j *model.Journal) (*model.Journal, error) {
	var out model.Journal
	resp, err := c.req(ctx).
		SetBody(map[string]string{"id": j.JournalID, "date": j.Date, "title": j.Title, "content": j.Content}).
		SetResult(&out).
		Post("/api/data/journal")
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListJournals returns the journals for a date, oldest first.
func (c *Client) ListJournals(ctx context.Context, date string) ([]*model.Journal, error) {
	var out []*model.Journal
	resp, err := c.req(ctx).SetResult(&out).Get("/api/data/journal/day/" + date)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteJournal removes a journal by id.
func (c *Client) DeleteJournal(ctx context.Context, journalID string) error {
	resp, err := c.req(ctx).Delete("/api/data/journal/" + journalID)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusOK)
}

// GetConfig fetches the user's configuration document.
func (c *Client) GetConfig(ctx context.Context) (*model.UserConfig, error) {
	var cfg model.UserConfig
	resp, err := c.req(ctx).SetResult(&cfg).Get("/api/data/config")
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig replaces the user's configuration document.
func (c *Client) SaveConfig(ctx context.Context, cfg *model.UserConfig) (*model.UserConfig, error) {
	var out model.UserConfig
	resp, err := c.req(ctx).SetBody(cfg).SetResult(&out).Post("/api/data/config")
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health reports whether the service and its store are reachable.
func (c *Client) Health(ctx context.Context) (string, error) {
	var body struct {
		Status string `json:"status"`
	}
	resp, err := c.req(ctx).SetResult(&body).Get("/api/health")
	if err != nil {
		return "", err
	}
	if err := checkStatus(resp, http.StatusOK); err != nil {
		return "", err
	}
	return body.Status, nil
}
