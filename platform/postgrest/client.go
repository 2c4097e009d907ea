// Package postgrest is a small client for tables served by a PostgREST endpoint
// (as exposed under /rest/v1 by hosted backends).
package postgrest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

var ErrUnauthorized = errors.New("postgrest unauthorized")

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	client *resty.Client
}

func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/") + "/rest/v1").
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	if cfg.APIKey != "" {
		cli.SetHeader("apikey", cfg.APIKey).
			SetAuthToken(cfg.APIKey)
	}

	return &Client{client: cli}
}

// Select reads every row of the table into out
func (c *Client) Select(ctx context.Context, table string, out any) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("select", "*").
		Get("/" + table)
	if err != nil {
		return fmt.Errorf("select %s request: %w", table, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode select %s response: %w", table, err)
	}
	return nil
}

func (c *Client) Insert(ctx context.Context, table string, row any) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=minimal").
		SetBody(row).
		Post("/" + table)
	if err != nil {
		return fmt.Errorf("insert %s request: %w", table, err)
	}
	return mapHTTPError(resp)
}

// Delete removes the rows where column equals value
func (c *Client) Delete(ctx context.Context, table, column, value string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam(column, "eq."+value).
		Delete("/" + table)
	if err != nil {
		return fmt.Errorf("delete %s request: %w", table, err)
	}
	return mapHTTPError(resp)
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
