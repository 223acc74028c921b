package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-dashboard/internal/config"
	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
)

// Client fetches ticket, category and project collections from the remote
// helpdesk API with bearer-token auth.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *zap.Logger
}

// New constructs the API client.
func New(cfg config.UpstreamConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.APIToken,
		http:    &http.Client{Timeout: cfg.Timeout()},
		logger:  logger,
	}
}

// ListTickets fetches the full ticket collection.
func (c *Client) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	page, err := c.getPage(ctx, "/tickets")
	if err != nil {
		return nil, err
	}
	return decodeItems[domain.Ticket](page), nil
}

// ListCategories fetches ticket categories.
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	page, err := c.getPage(ctx, "/ticket-categories")
	if err != nil {
		return nil, err
	}
	return decodeItems[domain.Category](page), nil
}

// ListProjects fetches projects.
func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	page, err := c.getPage(ctx, "/projects")
	if err != nil {
		return nil, err
	}
	return decodeItems[domain.Project](page), nil
}

func (c *Client) getPage(ctx context.Context, path string) (Page, error) {
	start := time.Now()
	body, err := c.get(ctx, path)
	if err != nil {
		return Page{}, err
	}
	page := NormalizePage(body)
	c.logger.Debug("upstream fetch",
		zap.String("path", path),
		zap.Int("items", len(page.Items)),
		zap.Duration("duration", time.Since(start)),
	)
	return page, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("upstream %s: unexpected status %d", path, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("upstream %s: read body: %w", path, err)
	}
	return body, nil
}
