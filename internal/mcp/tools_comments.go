package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cloudrumbles/todoist-mcp/internal/todoist"
)

// registerCommentTools adds the comment tools to the server and registry.
func registerCommentTools(server *mcp.Server, reg *Registry, client *todoist.Client) {
	register(server, reg, &mcp.Tool{
		Name:        "list_comments",
		Description: "List comments on a task or a project. Provide exactly one of task_id or project_id.",
		Annotations: readOnlyAnnotations(),
	}, handleListComments(client))

	register(server, reg, &mcp.Tool{
		Name:        "create_comment",
		Description: "Add a comment to a task or a project. Provide exactly one of task_id or project_id.",
		Annotations: writeAnnotations(),
	}, handleCreateComment(client))
}

// --- List comments ---

// ListCommentsInput names the comment target. Exactly one of TaskID or
// ProjectID must be set.
type ListCommentsInput struct {
	TaskID    string `json:"task_id,omitempty"    jsonschema:"task to list comments for"`
	ProjectID string `json:"project_id,omitempty" jsonschema:"project to list comments for"`
}

// ListCommentsOutput is the result of the list_comments tool.
type ListCommentsOutput struct {
	Count    int               `json:"count"              jsonschema:"number of comments"`
	Comments []todoist.Comment `json:"comments,omitempty" jsonschema:"comments on the target"`
	Message  string            `json:"message,omitempty"  jsonschema:"set when the target has no comments"`
}

func handleListComments(client *todoist.Client) mcp.ToolHandlerFor[ListCommentsInput, ListCommentsOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListCommentsInput) (*mcp.CallToolResult, ListCommentsOutput, error) {
		comments, err := client.ListComments(ctx, input.TaskID, input.ProjectID)
		if err != nil {
			return nil, ListCommentsOutput{}, fmt.Errorf("listing comments: %w", err)
		}

		out := ListCommentsOutput{Count: len(comments), Comments: comments}
		if len(comments) == 0 {
			out.Message = "no comments found"
		}
		return nil, out, nil
	}
}

// --- Create comment ---

// CreateCommentInput holds a new comment and its target. Exactly one of
// TaskID or ProjectID must be set.
type CreateCommentInput struct {
	Content   string `json:"content"              jsonschema:"comment text, may use Todoist markdown"`
	TaskID    string `json:"task_id,omitempty"    jsonschema:"task to comment on"`
	ProjectID string `json:"project_id,omitempty" jsonschema:"project to comment on"`
}

// CreateCommentOutput is the result of the create_comment tool.
type CreateCommentOutput struct {
	Comment *todoist.Comment `json:"comment" jsonschema:"the created comment"`
}

func handleCreateComment(client *todoist.Client) mcp.ToolHandlerFor[CreateCommentInput, CreateCommentOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateCommentInput) (*mcp.CallToolResult, CreateCommentOutput, error) {
		if input.Content == "" {
			return nil, CreateCommentOutput{}, errors.New("content is required")
		}

		comment, err := client.CreateComment(ctx, todoist.CreateCommentRequest{
			Content:   input.Content,
			TaskID:    input.TaskID,
			ProjectID: input.ProjectID,
		})
		if err != nil {
			return nil, CreateCommentOutput{}, fmt.Errorf("creating comment: %w", err)
		}
		return nil, CreateCommentOutput{Comment: comment}, nil
	}
}
