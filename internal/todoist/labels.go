package todoist

import (
	"context"
	"net/http"
)

// CreateLabelRequest holds the fields accepted when creating a label.
type CreateLabelRequest struct {
	Name       string `json:"name"`
	Color      string `json:"color,omitempty"`
	Order      int    `json:"order,omitempty"`
	IsFavorite bool   `json:"is_favorite,omitempty"`
}

// ListLabels returns all personal labels.
func (c *Client) ListLabels(ctx context.Context) ([]Label, error) {
	var labels []Label
	if err := c.do(ctx, http.MethodGet, "/labels", nil, nil, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

// CreateLabel creates a new personal label.
func (c *Client) CreateLabel(ctx context.Context, req CreateLabelRequest) (*Label, error) {
	var label Label
	if err := c.do(ctx, http.MethodPost, "/labels", nil, req, &label); err != nil {
		return nil, err
	}
	return &label, nil
}

// DeleteLabel deletes a personal label. Instances of the label are removed
// from tasks.
func (c *Client) DeleteLabel(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/labels/"+id, nil, nil, nil)
}
