package todoist

import (
	"context"
	"net/http"
	"net/url"
)

// CreateSectionRequest holds the fields accepted when creating a section.
type CreateSectionRequest struct {
	Name      string `json:"name"`
	ProjectID string `json:"project_id"`
	Order     int    `json:"order,omitempty"`
}

// ListSections returns all sections, optionally limited to one project.
func (c *Client) ListSections(ctx context.Context, projectID string) ([]Section, error) {
	query := url.Values{}
	if projectID != "" {
		query.Set("project_id", projectID)
	}

	var sections []Section
	if err := c.do(ctx, http.MethodGet, "/sections", query, nil, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// CreateSection creates a section inside a project.
func (c *Client) CreateSection(ctx context.Context, req CreateSectionRequest) (*Section, error) {
	var section Section
	if err := c.do(ctx, http.MethodPost, "/sections", nil, req, &section); err != nil {
		return nil, err
	}
	return &section, nil
}

// DeleteSection deletes a section and all of its tasks.
func (c *Client) DeleteSection(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/sections/"+id, nil, nil, nil)
}
