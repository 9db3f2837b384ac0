package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cloudrumbles/todoist-mcp/internal/todoist"
)

// registerLabelTools adds the label tools to the server and registry.
func registerLabelTools(server *mcp.Server, reg *Registry, client *todoist.Client) {
	register(server, reg, &mcp.Tool{
		Name:        "list_labels",
		Description: "List all personal labels.",
		Annotations: readOnlyAnnotations(),
	}, handleListLabels(client))

	register(server, reg, &mcp.Tool{
		Name:        "create_label",
		Description: "Create a new personal label.",
		Annotations: writeAnnotations(),
	}, handleCreateLabel(client))

	register(server, reg, &mcp.Tool{
		Name:        "delete_label",
		Description: "Permanently delete a personal label and remove it from all tasks. This cannot be undone.",
		Annotations: destructiveAnnotations(),
	}, handleDeleteLabel(client))
}

// --- List labels ---

// ListLabelsInput has no parameters.
type ListLabelsInput struct{}

// ListLabelsOutput is the result of the list_labels tool.
type ListLabelsOutput struct {
	Count   int             `json:"count"             jsonschema:"number of labels"`
	Labels  []todoist.Label `json:"labels,omitempty"  jsonschema:"all personal labels"`
	Message string          `json:"message,omitempty" jsonschema:"set when no labels exist"`
}

func handleListLabels(client *todoist.Client) mcp.ToolHandlerFor[ListLabelsInput, ListLabelsOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ListLabelsInput) (*mcp.CallToolResult, ListLabelsOutput, error) {
		labels, err := client.ListLabels(ctx)
		if err != nil {
			return nil, ListLabelsOutput{}, fmt.Errorf("listing labels: %w", err)
		}

		out := ListLabelsOutput{Count: len(labels), Labels: labels}
		if len(labels) == 0 {
			out.Message = "no labels found"
		}
		return nil, out, nil
	}
}

// --- Create label ---

// CreateLabelInput holds the fields for a new label. Name is required.
type CreateLabelInput struct {
	Name       string `json:"name"                  jsonschema:"label name"`
	Color      string `json:"color,omitempty"       jsonschema:"Todoist color name, e.g. 'lavender'"`
	Order      int    `json:"order,omitempty"       jsonschema:"position in the label list"`
	IsFavorite bool   `json:"is_favorite,omitempty" jsonschema:"mark the label as a favorite"`
}

// CreateLabelOutput is the result of the create_label tool.
type CreateLabelOutput struct {
	Label *todoist.Label `json:"label" jsonschema:"the created label"`
}

func handleCreateLabel(client *todoist.Client) mcp.ToolHandlerFor[CreateLabelInput, CreateLabelOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateLabelInput) (*mcp.CallToolResult, CreateLabelOutput, error) {
		if input.Name == "" {
			return nil, CreateLabelOutput{}, errors.New("name is required")
		}

		label, err := client.CreateLabel(ctx, todoist.CreateLabelRequest{
			Name:       input.Name,
			Color:      input.Color,
			Order:      input.Order,
			IsFavorite: input.IsFavorite,
		})
		if err != nil {
			return nil, CreateLabelOutput{}, fmt.Errorf("creating label: %w", err)
		}
		return nil, CreateLabelOutput{Label: label}, nil
	}
}

// --- Delete label ---

// LabelIDInput identifies a label by ID.
type LabelIDInput struct {
	ID string `json:"id" jsonschema:"label ID"`
}

func handleDeleteLabel(client *todoist.Client) mcp.ToolHandlerFor[LabelIDInput, ActionOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input LabelIDInput) (*mcp.CallToolResult, ActionOutput, error) {
		if input.ID == "" {
			return nil, ActionOutput{}, errors.New("id is required")
		}
		if err := client.DeleteLabel(ctx, input.ID); err != nil {
			return nil, ActionOutput{}, fmt.Errorf("deleting label: %w", err)
		}
		return nil, ActionOutput{ID: input.ID, Result: "deleted"}, nil
	}
}
