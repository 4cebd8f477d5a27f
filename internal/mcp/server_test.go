package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/uchiverify/site/internal/content"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store, err := content.Load(content.Options{})
	if err != nil {
		t.Fatalf("loading content: %v", err)
	}
	return NewServer(store)
}

func callText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	var sb strings.Builder
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			sb.WriteString(tc.Text)
		}
	}
	return sb.String()
}

func request(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func TestToolDefinitions(t *testing.T) {
	// Verify tool names and required properties.
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"search_entries", searchEntriesTool, "search_entries"},
		{"get_entry", getEntryTool, "get_entry"},
		{"list_entries", listEntriesTool, "list_entries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := newTestServer(t)
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.store == nil {
		t.Error("store not set")
	}
}

func TestHandleSearchEntries(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		args    map[string]any
		isError bool
		want    []string
		notWant []string
	}{
		{
			name: "both sections",
			args: map[string]any{"query": "setchannel"},
			want: []string{"/setchannel (commands, id setchannel)", "(faq, id setchannel-error)"},
		},
		{
			name:    "one section",
			args:    map[string]any{"query": "setchannel", "section": "faq"},
			want:    []string{"(faq, id setchannel-error)"},
			notWant: []string{"(commands,"},
		},
		{
			name: "limit",
			args: map[string]any{"query": "", "limit": 2},
			want: []string{"Found 2 result(s)"},
		},
		{
			name: "no match",
			args: map[string]any{"query": "zzz_no_match"},
			want: []string{"No entries match"},
		},
		{
			name:    "bad section",
			args:    map[string]any{"query": "x", "section": "blog"},
			isError: true,
		},
		{
			name:    "missing query",
			args:    map[string]any{},
			isError: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := srv.handleSearchEntries(ctx, request(tt.args))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.IsError != tt.isError {
				t.Fatalf("IsError = %v, want %v: %s", result.IsError, tt.isError, callText(t, result))
			}
			text := callText(t, result)
			for _, w := range tt.want {
				if !strings.Contains(text, w) {
					t.Errorf("result missing %q:\n%s", w, text)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(text, w) {
					t.Errorf("result should not contain %q:\n%s", w, text)
				}
			}
		})
	}
}

func TestHandleGetEntry(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	t.Run("by fragment", func(t *testing.T) {
		result, err := srv.handleGetEntry(ctx, request(map[string]any{"id": "command-setchannel"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		text := callText(t, result)
		for _, want := range []string{"# /setchannel", "Required Permissions: Administrator", "Fragment: #command-setchannel"} {
			if !strings.Contains(text, want) {
				t.Errorf("result missing %q:\n%s", want, text)
			}
		}
	})

	t.Run("by section", func(t *testing.T) {
		result, err := srv.handleGetEntry(ctx, request(map[string]any{"id": "data-storage", "section": "faq"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if text := callText(t, result); strings.Contains(text, "<") {
			t.Errorf("body should be plain text:\n%s", text)
		}
	})

	for name, args := range map[string]map[string]any{
		"unknown id":      {"id": "nope"},
		"wrong section":   {"id": "setchannel", "section": "faq"},
		"unknown section": {"id": "setchannel", "section": "blog"},
		"missing id":      {},
	} {
		t.Run(name, func(t *testing.T) {
			result, err := srv.handleGetEntry(ctx, request(args))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !result.IsError {
				t.Errorf("expected tool error, got %s", callText(t, result))
			}
		})
	}
}

func TestHandleListEntries(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	result, err := srv.handleListEntries(ctx, request(map[string]any{"section": "commands"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := callText(t, result)
	if !strings.HasPrefix(text, "7 commands entries:") {
		t.Errorf("unexpected header:\n%s", text)
	}
	if !strings.Contains(text, "- setchannel: /setchannel\n") {
		t.Errorf("missing setchannel:\n%s", text)
	}

	result, err = srv.handleListEntries(ctx, request(map[string]any{"section": "blog"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("expected error for unknown section")
	}
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"  spaced\n\tout  ", 20, "spaced out"},
		{"one two three four", 10, "one two..."},
		{"unbroken", 4, "unbr..."},
	}
	for _, tt := range tests {
		if got := excerpt(tt.in, tt.n); got != tt.want {
			t.Errorf("excerpt(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
