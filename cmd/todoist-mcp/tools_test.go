package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestTools_Table(t *testing.T) {
	clearServerEnv(t)

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"tools"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"NAME", "DESCRIPTION", "create_task", "list_projects", "tools registered"} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q:\n%s", want, output)
		}
	}
}

func TestTools_JSON(t *testing.T) {
	clearServerEnv(t)

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"tools", "--json"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var defs []struct {
		Name        string          `json:"name"`
		Description string          `json:"description"`
		InputSchema json.RawMessage `json:"inputSchema"`
	}
	if err := json.Unmarshal(buf.Bytes(), &defs); err != nil {
		t.Fatalf("output should be valid JSON: %v\nOutput: %s", err, buf.String())
	}
	if len(defs) != 19 {
		t.Errorf("got %d tools, want 19", len(defs))
	}
	for _, def := range defs {
		if def.Name == "" || def.Description == "" || len(def.InputSchema) == 0 {
			t.Errorf("tool %+v has empty fields", def)
		}
	}
}
