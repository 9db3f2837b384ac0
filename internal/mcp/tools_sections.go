package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cloudrumbles/todoist-mcp/internal/todoist"
)

// registerSectionTools adds the section tools to the server and registry.
func registerSectionTools(server *mcp.Server, reg *Registry, client *todoist.Client) {
	register(server, reg, &mcp.Tool{
		Name:        "list_sections",
		Description: "List sections, optionally limited to a single project.",
		Annotations: readOnlyAnnotations(),
	}, handleListSections(client))

	register(server, reg, &mcp.Tool{
		Name:        "create_section",
		Description: "Create a section inside a project.",
		Annotations: writeAnnotations(),
	}, handleCreateSection(client))

	register(server, reg, &mcp.Tool{
		Name:        "delete_section",
		Description: "Permanently delete a section and all of its tasks. This cannot be undone.",
		Annotations: destructiveAnnotations(),
	}, handleDeleteSection(client))
}

// --- List sections ---

// ListSectionsInput optionally limits sections to one project.
type ListSectionsInput struct {
	ProjectID string `json:"project_id,omitempty" jsonschema:"only sections in this project"`
}

// ListSectionsOutput is the result of the list_sections tool.
type ListSectionsOutput struct {
	Count    int               `json:"count"              jsonschema:"number of sections"`
	Sections []todoist.Section `json:"sections,omitempty" jsonschema:"matching sections"`
	Message  string            `json:"message,omitempty"  jsonschema:"set when no sections match"`
}

func handleListSections(client *todoist.Client) mcp.ToolHandlerFor[ListSectionsInput, ListSectionsOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListSectionsInput) (*mcp.CallToolResult, ListSectionsOutput, error) {
		sections, err := client.ListSections(ctx, input.ProjectID)
		if err != nil {
			return nil, ListSectionsOutput{}, fmt.Errorf("listing sections: %w", err)
		}

		out := ListSectionsOutput{Count: len(sections), Sections: sections}
		if len(sections) == 0 {
			out.Message = "no sections found"
		}
		return nil, out, nil
	}
}

// --- Create section ---

// CreateSectionInput holds the fields for a new section.
type CreateSectionInput struct {
	Name      string `json:"name"            jsonschema:"section name"`
	ProjectID string `json:"project_id"      jsonschema:"project the section belongs to"`
	Order     int    `json:"order,omitempty" jsonschema:"position among the project's sections"`
}

// CreateSectionOutput is the result of the create_section tool.
type CreateSectionOutput struct {
	Section *todoist.Section `json:"section" jsonschema:"the created section"`
}

func handleCreateSection(client *todoist.Client) mcp.ToolHandlerFor[CreateSectionInput, CreateSectionOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateSectionInput) (*mcp.CallToolResult, CreateSectionOutput, error) {
		if input.Name == "" {
			return nil, CreateSectionOutput{}, errors.New("name is required")
		}
		if input.ProjectID == "" {
			return nil, CreateSectionOutput{}, errors.New("project_id is required")
		}

		section, err := client.CreateSection(ctx, todoist.CreateSectionRequest{
			Name:      input.Name,
			ProjectID: input.ProjectID,
			Order:     input.Order,
		})
		if err != nil {
			return nil, CreateSectionOutput{}, fmt.Errorf("creating section: %w", err)
		}
		return nil, CreateSectionOutput{Section: section}, nil
	}
}

// --- Delete section ---

// SectionIDInput identifies a section by ID.
type SectionIDInput struct {
	ID string `json:"id" jsonschema:"section ID"`
}

func handleDeleteSection(client *todoist.Client) mcp.ToolHandlerFor[SectionIDInput, ActionOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SectionIDInput) (*mcp.CallToolResult, ActionOutput, error) {
		if input.ID == "" {
			return nil, ActionOutput{}, errors.New("id is required")
		}
		if err := client.DeleteSection(ctx, input.ID); err != nil {
			return nil, ActionOutput{}, fmt.Errorf("deleting section: %w", err)
		}
		return nil, ActionOutput{ID: input.ID, Result: "deleted"}, nil
	}
}
