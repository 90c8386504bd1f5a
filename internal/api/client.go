// Package api is the HTTP client for the portfolio backend. Read paths
// return projects in the internal shape directly; write paths go through the
// snake_case payload in wire.go.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"portfolio-cli/internal/model"
)

// DefaultBaseURL is where the backend listens in a local setup.
const DefaultBaseURL = "http://localhost:8005"

// Client talks to the portfolio backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for the given base URL, or DefaultBaseURL when
// empty.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// BaseURL returns the configured backend address.
func (c *Client) BaseURL() string { return c.baseURL }

// ListProjects fetches every project.
func (c *Client) ListProjects(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := c.getJSON(ctx, "/projects", &projects); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	for i := range projects {
		Normalize(&projects[i])
	}
	return projects, nil
}

// CreateProject sends the project to the backend and returns the stored
// record, including the server-assigned id.
func (c *Client) CreateProject(ctx context.Context, p model.Project) (model.Project, error) {
	var created model.Project
	if err := c.writeJSON(ctx, http.MethodPost, "/projects", ToWire(p), &created); err != nil {
		return model.Project{}, fmt.Errorf("create project: %w", err)
	}
	Normalize(&created)
	return created, nil
}

// UpdateProject replaces the project with the given id and returns the
// stored record.
func (c *Client) UpdateProject(ctx context.Context, id string, p model.Project) (model.Project, error) {
	var updated model.Project
	path := "/projects/" + url.PathEscape(id)
	if err := c.writeJSON(ctx, http.MethodPut, path, ToWire(p), &updated); err != nil {
		return model.Project{}, fmt.Errorf("update project: %w", err)
	}
	Normalize(&updated)
	return updated, nil
}

// AnalyticsOverview is the portfolio-wide rollup served by the backend.
type AnalyticsOverview struct {
	TotalProjects    int `json:"totalProjects"`
	ActiveMilestones int `json:"activeMilestones"`

	ProjectsByStatus     []StatusCount   `json:"projectsByStatus"`
	ProjectsByFunction   []FunctionCount `json:"projectsByFunction"`
	ProjectsByBenefits   []CategoryCount `json:"projectsByBenefits"`
	ProjectsByAIBenefits []CategoryCount `json:"projectsByAIBenefits"`
	TopTags              []TagCount      `json:"topTags"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type FunctionCount struct {
	Function string `json:"function"`
	Count    int    `json:"count"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// TimelineAnalytics reports per-project milestone progress.
type TimelineAnalytics struct {
	ProjectProgress    []ProjectProgress `json:"projectProgress"`
	TotalTimelineItems int               `json:"totalTimelineItems"`
}

type ProjectProgress struct {
	ProjectID           string  `json:"projectId"`
	ProjectTitle        string  `json:"projectTitle"`
	Status              string  `json:"status"`
	TotalMilestones     int     `json:"totalMilestones"`
	ActiveMilestones    int     `json:"activeMilestones"`
	CompletedMilestones int     `json:"completedMilestones"`
	ProgressPercentage  float64 `json:"progressPercentage"`
}

// FetchAnalyticsOverview fetches the portfolio rollup.
func (c *Client) FetchAnalyticsOverview(ctx context.Context) (AnalyticsOverview, error) {
	var out AnalyticsOverview
	if err := c.getJSON(ctx, "/analytics/overview", &out); err != nil {
		return AnalyticsOverview{}, fmt.Errorf("fetch analytics overview: %w", err)
	}
	return out, nil
}

// FetchTimelineAnalytics fetches per-project progress numbers.
func (c *Client) FetchTimelineAnalytics(ctx context.Context) (TimelineAnalytics, error) {
	var out TimelineAnalytics
	if err := c.getJSON(ctx, "/analytics/timeline", &out); err != nil {
		return TimelineAnalytics{}, fmt.Errorf("fetch timeline analytics: %w", err)
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) writeJSON(ctx context.Context, method, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
