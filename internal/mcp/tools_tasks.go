package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cloudrumbles/todoist-mcp/internal/todoist"
)

// registerTaskTools adds the task tools to the server and registry.
func registerTaskTools(server *mcp.Server, reg *Registry, client *todoist.Client) {
	register(server, reg, &mcp.Tool{
		Name:        "list_tasks",
		Description: "List active tasks, optionally filtered by project, section, label, or a Todoist filter query like 'today | overdue'.",
		Annotations: readOnlyAnnotations(),
	}, handleListTasks(client))

	register(server, reg, &mcp.Tool{
		Name:        "get_task",
		Description: "Get a single active task by its ID, including due date, priority, and labels.",
		Annotations: readOnlyAnnotations(),
	}, handleGetTask(client))

	register(server, reg, &mcp.Tool{
		Name:        "create_task",
		Description: "Create a new task. Supports natural language due dates via due_string, e.g. 'tomorrow at 9am' or 'every monday'.",
		Annotations: writeAnnotations(),
	}, handleCreateTask(client))

	register(server, reg, &mcp.Tool{
		Name:        "update_task",
		Description: "Update an existing task's content, description, priority, labels, or due date. Only the fields provided are changed.",
		Annotations: writeAnnotations(),
	}, handleUpdateTask(client))

	register(server, reg, &mcp.Tool{
		Name:        "complete_task",
		Description: "Mark a task as completed. Recurring tasks advance to their next occurrence instead of completing.",
		Annotations: writeAnnotations(),
	}, handleCompleteTask(client))

	register(server, reg, &mcp.Tool{
		Name:        "reopen_task",
		Description: "Reopen a completed task, restoring it to the active list.",
		Annotations: writeAnnotations(),
	}, handleReopenTask(client))

	register(server, reg, &mcp.Tool{
		Name:        "delete_task",
		Description: "Permanently delete a task. This cannot be undone.",
		Annotations: destructiveAnnotations(),
	}, handleDeleteTask(client))
}

// --- List tasks ---

// ListTasksInput filters the task listing. All fields are optional.
type ListTasksInput struct {
	ProjectID string `json:"project_id,omitempty" jsonschema:"only tasks in this project"`
	SectionID string `json:"section_id,omitempty" jsonschema:"only tasks in this section"`
	Label     string `json:"label,omitempty"      jsonschema:"only tasks carrying this label name"`
	Filter    string `json:"filter,omitempty"     jsonschema:"Todoist filter query, e.g. 'today | overdue'"`
}

// ListTasksOutput is the result of the list_tasks tool.
type ListTasksOutput struct {
	Count   int            `json:"count"             jsonschema:"number of matching tasks"`
	Tasks   []todoist.Task `json:"tasks,omitempty"   jsonschema:"matching tasks"`
	Message string         `json:"message,omitempty" jsonschema:"set when no tasks match"`
}

func handleListTasks(client *todoist.Client) mcp.ToolHandlerFor[ListTasksInput, ListTasksOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListTasksInput) (*mcp.CallToolResult, ListTasksOutput, error) {
		tasks, err := client.ListTasks(ctx, todoist.TaskFilter{
			ProjectID: input.ProjectID,
			SectionID: input.SectionID,
			Label:     input.Label,
			Filter:    input.Filter,
		})
		if err != nil {
			return nil, ListTasksOutput{}, fmt.Errorf("listing tasks: %w", err)
		}

		out := ListTasksOutput{Count: len(tasks), Tasks: tasks}
		if len(tasks) == 0 {
			out.Message = "no tasks found"
		}
		return nil, out, nil
	}
}

// --- Get task ---

// GetTaskInput identifies the task to fetch.
type GetTaskInput struct {
	ID string `json:"id" jsonschema:"task ID"`
}

// GetTaskOutput is the result of the get_task tool.
type GetTaskOutput struct {
	Task *todoist.Task `json:"task" jsonschema:"the requested task"`
}

func handleGetTask(client *todoist.Client) mcp.ToolHandlerFor[GetTaskInput, GetTaskOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetTaskInput) (*mcp.CallToolResult, GetTaskOutput, error) {
		if input.ID == "" {
			return nil, GetTaskOutput{}, errors.New("id is required")
		}
		task, err := client.GetTask(ctx, input.ID)
		if err != nil {
			return nil, GetTaskOutput{}, fmt.Errorf("getting task: %w", err)
		}
		return nil, GetTaskOutput{Task: task}, nil
	}
}

// --- Create task ---

// CreateTaskInput holds the fields for a new task. Content is required.
type CreateTaskInput struct {
	Content     string   `json:"content"                jsonschema:"task text, may use Todoist markdown"`
	Description string   `json:"description,omitempty"  jsonschema:"longer free-form description"`
	ProjectID   string   `json:"project_id,omitempty"   jsonschema:"project to create the task in; defaults to Inbox"`
	SectionID   string   `json:"section_id,omitempty"   jsonschema:"section within the project"`
	ParentID    string   `json:"parent_id,omitempty"    jsonschema:"parent task ID for subtasks"`
	Labels      []string `json:"labels,omitempty"       jsonschema:"label names to attach"`
	Priority    int      `json:"priority,omitempty"     jsonschema:"priority 1 (normal) to 4 (urgent)"`
	DueString   string   `json:"due_string,omitempty"   jsonschema:"natural language due date, e.g. 'tomorrow at 9am'"`
	DueDate     string   `json:"due_date,omitempty"     jsonschema:"due date in YYYY-MM-DD format"`
	DueDatetime string   `json:"due_datetime,omitempty" jsonschema:"due datetime in RFC 3339 format"`
}

// CreateTaskOutput is the result of the create_task tool.
type CreateTaskOutput struct {
	Task *todoist.Task `json:"task" jsonschema:"the created task"`
}

func handleCreateTask(client *todoist.Client) mcp.ToolHandlerFor[CreateTaskInput, CreateTaskOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateTaskInput) (*mcp.CallToolResult, CreateTaskOutput, error) {
		if input.Content == "" {
			return nil, CreateTaskOutput{}, errors.New("content is required")
		}
		if !validPriority(input.Priority) {
			return nil, CreateTaskOutput{}, fmt.Errorf("priority must be between 1 and 4, got %d", input.Priority)
		}

		task, err := client.CreateTask(ctx, todoist.CreateTaskRequest{
			Content:     input.Content,
			Description: input.Description,
			ProjectID:   input.ProjectID,
			SectionID:   input.SectionID,
			ParentID:    input.ParentID,
			Labels:      input.Labels,
			Priority:    input.Priority,
			DueString:   input.DueString,
			DueDate:     input.DueDate,
			DueDatetime: input.DueDatetime,
		})
		if err != nil {
			return nil, CreateTaskOutput{}, fmt.Errorf("creating task: %w", err)
		}
		return nil, CreateTaskOutput{Task: task}, nil
	}
}

// --- Update task ---

// UpdateTaskInput identifies a task and the fields to change.
type UpdateTaskInput struct {
	ID          string   `json:"id"                     jsonschema:"task ID"`
	Content     string   `json:"content,omitempty"      jsonschema:"new task text"`
	Description string   `json:"description,omitempty"  jsonschema:"new description"`
	Labels      []string `json:"labels,omitempty"       jsonschema:"replacement label names"`
	Priority    int      `json:"priority,omitempty"     jsonschema:"new priority 1 (normal) to 4 (urgent)"`
	DueString   string   `json:"due_string,omitempty"   jsonschema:"new natural language due date"`
	DueDate     string   `json:"due_date,omitempty"     jsonschema:"new due date in YYYY-MM-DD format"`
	DueDatetime string   `json:"due_datetime,omitempty" jsonschema:"new due datetime in RFC 3339 format"`
}

// UpdateTaskOutput is the result of the update_task tool.
type UpdateTaskOutput struct {
	Task *todoist.Task `json:"task" jsonschema:"the updated task"`
}

func handleUpdateTask(client *todoist.Client) mcp.ToolHandlerFor[UpdateTaskInput, UpdateTaskOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UpdateTaskInput) (*mcp.CallToolResult, UpdateTaskOutput, error) {
		if input.ID == "" {
			return nil, UpdateTaskOutput{}, errors.New("id is required")
		}
		if !validPriority(input.Priority) {
			return nil, UpdateTaskOutput{}, fmt.Errorf("priority must be between 1 and 4, got %d", input.Priority)
		}

		empty := input.Content == "" && input.Description == "" && input.Labels == nil &&
			input.Priority == 0 && input.DueString == "" && input.DueDate == "" && input.DueDatetime == ""
		if empty {
			return nil, UpdateTaskOutput{}, errors.New("nothing to update: provide at least one field besides id")
		}

		req := todoist.UpdateTaskRequest{
			Content:     input.Content,
			Description: input.Description,
			Labels:      input.Labels,
			Priority:    input.Priority,
			DueString:   input.DueString,
			DueDate:     input.DueDate,
			DueDatetime: input.DueDatetime,
		}

		task, err := client.UpdateTask(ctx, input.ID, req)
		if err != nil {
			return nil, UpdateTaskOutput{}, fmt.Errorf("updating task: %w", err)
		}
		return nil, UpdateTaskOutput{Task: task}, nil
	}
}

// --- Complete, reopen, delete ---

// TaskIDInput identifies a task by ID.
type TaskIDInput struct {
	ID string `json:"id" jsonschema:"task ID"`
}

func handleCompleteTask(client *todoist.Client) mcp.ToolHandlerFor[TaskIDInput, ActionOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TaskIDInput) (*mcp.CallToolResult, ActionOutput, error) {
		if input.ID == "" {
			return nil, ActionOutput{}, errors.New("id is required")
		}
		if err := client.CloseTask(ctx, input.ID); err != nil {
			return nil, ActionOutput{}, fmt.Errorf("completing task: %w", err)
		}
		return nil, ActionOutput{ID: input.ID, Result: "completed"}, nil
	}
}

func handleReopenTask(client *todoist.Client) mcp.ToolHandlerFor[TaskIDInput, ActionOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TaskIDInput) (*mcp.CallToolResult, ActionOutput, error) {
		if input.ID == "" {
			return nil, ActionOutput{}, errors.New("id is required")
		}
		if err := client.ReopenTask(ctx, input.ID); err != nil {
			return nil, ActionOutput{}, fmt.Errorf("reopening task: %w", err)
		}
		return nil, ActionOutput{ID: input.ID, Result: "reopened"}, nil
	}
}

func handleDeleteTask(client *todoist.Client) mcp.ToolHandlerFor[TaskIDInput, ActionOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TaskIDInput) (*mcp.CallToolResult, ActionOutput, error) {
		if input.ID == "" {
			return nil, ActionOutput{}, errors.New("id is required")
		}
		if err := client.DeleteTask(ctx, input.ID); err != nil {
			return nil, ActionOutput{}, fmt.Errorf("deleting task: %w", err)
		}
		return nil, ActionOutput{ID: input.ID, Result: "deleted"}, nil
	}
}
