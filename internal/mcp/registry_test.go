package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strings"
	"testing"
)

var wantTools = []string{
	"complete_task",
	"create_comment",
	"create_label",
	"create_project",
	"create_section",
	"create_task",
	"delete_label",
	"delete_project",
	"delete_section",
	"delete_task",
	"get_task",
	"list_comments",
	"list_labels",
	"list_projects",
	"list_sections",
	"list_tasks",
	"reopen_task",
	"update_project",
	"update_task",
}

func TestNewServer_RegistersAllTools(t *testing.T) {
	client := newTestClient(t, jsonHandler(t, "/", `{}`))
	server, registry := NewServer("test-version", client)
	if server == nil {
		t.Fatal("NewServer returned nil server")
	}

	defs := registry.Tools()
	if len(defs) != len(wantTools) {
		t.Fatalf("len(Tools()) = %d, want %d", len(defs), len(wantTools))
	}
	if !sort.SliceIsSorted(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name }) {
		t.Error("Tools() is not sorted by name")
	}
	for i, def := range defs {
		if def.Name != wantTools[i] {
			t.Errorf("Tools()[%d].Name = %q, want %q", i, def.Name, wantTools[i])
		}
		if def.Description == "" {
			t.Errorf("tool %s has empty description", def.Name)
		}
		if len(def.InputSchema) == 0 {
			t.Errorf("tool %s has empty input schema", def.Name)
		}
	}
}

func TestRegistry_InputSchemaIsObject(t *testing.T) {
	client := newTestClient(t, jsonHandler(t, "/", `{}`))
	_, registry := NewServer("test-version", client)

	for _, def := range registry.Tools() {
		var schema struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(def.InputSchema, &schema); err != nil {
			t.Fatalf("tool %s schema is not valid JSON: %v", def.Name, err)
		}
		if schema.Type != "object" {
			t.Errorf("tool %s schema type = %q, want object", def.Name, schema.Type)
		}
	}
}

func TestRegistry_CallUnknownTool(t *testing.T) {
	client := newTestClient(t, jsonHandler(t, "/", `{}`))
	_, registry := NewServer("test-version", client)

	_, err := registry.Call(context.Background(), "frobnicate", nil)
	if !errors.Is(err, ErrUnknownTool) {
		t.Errorf("error = %v, want ErrUnknownTool", err)
	}
}

func TestRegistry_CallInvalidArguments(t *testing.T) {
	client := newTestClient(t, jsonHandler(t, "/", `{}`))
	_, registry := NewServer("test-version", client)

	_, err := registry.Call(context.Background(), "get_task", json.RawMessage(`{"id":123}`))
	if !errors.Is(err, ErrInvalidArguments) {
		t.Errorf("error = %v, want ErrInvalidArguments", err)
	}
}

func TestRegistry_CallSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects" {
			t.Errorf("path = %q, want /projects", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"id":"7","name":"Inbox","is_inbox_project":true}]`))
	})
	_, registry := NewServer("test-version", client)

	text, err := registry.Call(context.Background(), "list_projects", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, `"Inbox"`) {
		t.Errorf("result = %s, want to contain project name", text)
	}
}

func TestRegistry_CallHandlerErrorPassesThrough(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})
	_, registry := NewServer("test-version", client)

	_, err := registry.Call(context.Background(), "list_labels", nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(err, ErrUnknownTool) || errors.Is(err, ErrInvalidArguments) {
		t.Errorf("handler error should not match registry sentinels, got %v", err)
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error = %v, want to mention status 429", err)
	}
}
