package todoist

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// CreateCommentRequest holds the fields accepted when creating a comment.
// Exactly one of TaskID or ProjectID must be set.
type CreateCommentRequest struct {
	Content   string `json:"content"`
	TaskID    string `json:"task_id,omitempty"`
	ProjectID string `json:"project_id,omitempty"`
}

// ErrCommentTarget is returned when a comment operation does not name
// exactly one of a task or a project.
var ErrCommentTarget = errors.New("exactly one of task_id or project_id must be set")

// ListComments returns comments for a task or a project.
func (c *Client) ListComments(ctx context.Context, taskID, projectID string) ([]Comment, error) {
	if (taskID == "") == (projectID == "") {
		return nil, ErrCommentTarget
	}

	query := url.Values{}
	if taskID != "" {
		query.Set("task_id", taskID)
	} else {
		query.Set("project_id", projectID)
	}

	var comments []Comment
	if err := c.do(ctx, http.MethodGet, "/comments", query, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateComment attaches a comment to a task or a project.
func (c *Client) CreateComment(ctx context.Context, req CreateCommentRequest) (*Comment, error) {
	if (req.TaskID == "") == (req.ProjectID == "") {
		return nil, ErrCommentTarget
	}

	var comment Comment
	if err := c.do(ctx, http.MethodPost, "/comments", nil, req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}
