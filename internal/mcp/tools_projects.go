package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cloudrumbles/todoist-mcp/internal/todoist"
)

// registerProjectTools adds the project tools to the server and registry.
func registerProjectTools(server *mcp.Server, reg *Registry, client *todoist.Client) {
	register(server, reg, &mcp.Tool{
		Name:        "list_projects",
		Description: "List all active projects with their IDs, names, and hierarchy.",
		Annotations: readOnlyAnnotations(),
	}, handleListProjects(client))

	register(server, reg, &mcp.Tool{
		Name:        "create_project",
		Description: "Create a new project, optionally nested under a parent project.",
		Annotations: writeAnnotations(),
	}, handleCreateProject(client))

	register(server, reg, &mcp.Tool{
		Name:        "update_project",
		Description: "Update a project's name, color, favorite flag, or view style.",
		Annotations: writeAnnotations(),
	}, handleUpdateProject(client))

	register(server, reg, &mcp.Tool{
		Name:        "delete_project",
		Description: "Permanently delete a project along with all of its sections and tasks. This cannot be undone.",
		Annotations: destructiveAnnotations(),
	}, handleDeleteProject(client))
}

// --- List projects ---

// ListProjectsInput has no parameters.
type ListProjectsInput struct{}

// ListProjectsOutput is the result of the list_projects tool.
type ListProjectsOutput struct {
	Count    int               `json:"count"              jsonschema:"number of projects"`
	Projects []todoist.Project `json:"projects,omitempty" jsonschema:"all active projects"`
	Message  string            `json:"message,omitempty"  jsonschema:"set when no projects exist"`
}

func handleListProjects(client *todoist.Client) mcp.ToolHandlerFor[ListProjectsInput, ListProjectsOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ListProjectsInput) (*mcp.CallToolResult, ListProjectsOutput, error) {
		projects, err := client.ListProjects(ctx)
		if err != nil {
			return nil, ListProjectsOutput{}, fmt.Errorf("listing projects: %w", err)
		}

		out := ListProjectsOutput{Count: len(projects), Projects: projects}
		if len(projects) == 0 {
			out.Message = "no projects found"
		}
		return nil, out, nil
	}
}

// --- Create project ---

// CreateProjectInput holds the fields for a new project. Name is required.
type CreateProjectInput struct {
	Name       string `json:"name"                  jsonschema:"project name"`
	ParentID   string `json:"parent_id,omitempty"   jsonschema:"parent project ID for nesting"`
	Color      string `json:"color,omitempty"       jsonschema:"Todoist color name, e.g. 'berry_red'"`
	IsFavorite bool   `json:"is_favorite,omitempty" jsonschema:"mark the project as a favorite"`
	ViewStyle  string `json:"view_style,omitempty"  jsonschema:"'list' or 'board'"`
}

// CreateProjectOutput is the result of the create_project tool.
type CreateProjectOutput struct {
	Project *todoist.Project `json:"project" jsonschema:"the created project"`
}

func handleCreateProject(client *todoist.Client) mcp.ToolHandlerFor[CreateProjectInput, CreateProjectOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateProjectInput) (*mcp.CallToolResult, CreateProjectOutput, error) {
		if input.Name == "" {
			return nil, CreateProjectOutput{}, errors.New("name is required")
		}

		project, err := client.CreateProject(ctx, todoist.CreateProjectRequest{
			Name:       input.Name,
			ParentID:   input.ParentID,
			Color:      input.Color,
			IsFavorite: input.IsFavorite,
			ViewStyle:  input.ViewStyle,
		})
		if err != nil {
			return nil, CreateProjectOutput{}, fmt.Errorf("creating project: %w", err)
		}
		return nil, CreateProjectOutput{Project: project}, nil
	}
}

// --- Update project ---

// UpdateProjectInput identifies a project and the fields to change.
type UpdateProjectInput struct {
	ID         string `json:"id"                    jsonschema:"project ID"`
	Name       string `json:"name,omitempty"        jsonschema:"new project name"`
	Color      string `json:"color,omitempty"       jsonschema:"new Todoist color name"`
	IsFavorite bool   `json:"is_favorite,omitempty" jsonschema:"mark or unmark as favorite"`
	ViewStyle  string `json:"view_style,omitempty"  jsonschema:"'list' or 'board'"`
}

// UpdateProjectOutput is the result of the update_project tool.
type UpdateProjectOutput struct {
	Project *todoist.Project `json:"project" jsonschema:"the updated project"`
}

func handleUpdateProject(client *todoist.Client) mcp.ToolHandlerFor[UpdateProjectInput, UpdateProjectOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UpdateProjectInput) (*mcp.CallToolResult, UpdateProjectOutput, error) {
		if input.ID == "" {
			return nil, UpdateProjectOutput{}, errors.New("id is required")
		}

		project, err := client.UpdateProject(ctx, input.ID, todoist.UpdateProjectRequest{
			Name:       input.Name,
			Color:      input.Color,
			IsFavorite: input.IsFavorite,
			ViewStyle:  input.ViewStyle,
		})
		if err != nil {
			return nil, UpdateProjectOutput{}, fmt.Errorf("updating project: %w", err)
		}
		return nil, UpdateProjectOutput{Project: project}, nil
	}
}

// --- Delete project ---

// ProjectIDInput identifies a project by ID.
type ProjectIDInput struct {
	ID string `json:"id" jsonschema:"project ID"`
}

func handleDeleteProject(client *todoist.Client) mcp.ToolHandlerFor[ProjectIDInput, ActionOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProjectIDInput) (*mcp.CallToolResult, ActionOutput, error) {
		if input.ID == "" {
			return nil, ActionOutput{}, errors.New("id is required")
		}
		if err := client.DeleteProject(ctx, input.ID); err != nil {
			return nil, ActionOutput{}, fmt.Errorf("deleting project: %w", err)
		}
		return nil, ActionOutput{ID: input.ID, Result: "deleted"}, nil
	}
}
