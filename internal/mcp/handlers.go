package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/uchiverify/site/internal/browser"
	"github.com/uchiverify/site/internal/content"
)

// handleSearchEntries runs the sidebar filter over one or both sections.
func (s *Server) handleSearchEntries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}

	kinds := []content.Kind{content.KindCommand, content.KindFAQ}
	if sec := request.GetString("section", ""); sec != "" {
		kind := content.Kind(sec)
		if !kind.Valid() {
			return mcp.NewToolResultError(fmt.Sprintf("unknown section %q", sec)), nil
		}
		kinds = []content.Kind{kind}
	}

	var results []content.Entry
	for _, kind := range kinds {
		c := s.store.Collection(kind)
		for _, id := range browser.Search(c, query) {
			if len(results) >= limit {
				break
			}
			e, _ := c.Lookup(id)
			results = append(results, e)
		}
	}

	if len(results) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No entries match %q.", query)), nil
	}

	return mcp.NewToolResultText(formatResults(results)), nil
}

// handleGetEntry returns one entry in full.
func (s *Server) handleGetEntry(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	var (
		e  content.Entry
		ok bool
	)
	if sec := request.GetString("section", ""); sec != "" {
		c := s.store.Collection(content.Kind(sec))
		if c == nil {
			return mcp.NewToolResultError(fmt.Sprintf("unknown section %q", sec)), nil
		}
		e, ok = c.Lookup(id)
	} else {
		e, ok = browser.Resolve(s.store, id)
	}
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf(
			"No entry %q. Use list_entries to see the available ids.", id,
		)), nil
	}

	return mcp.NewToolResultText(formatEntry(e)), nil
}

// handleListEntries lists every entry of a section.
func (s *Server) handleListEntries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sec, err := request.RequireString("section")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: section"), nil
	}
	c := s.store.Collection(content.Kind(sec))
	if c == nil {
		return mcp.NewToolResultError(fmt.Sprintf("unknown section %q", sec)), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d %s entr%s:\n", c.Len(), sec, plural(c.Len())))
	for _, e := range c.All() {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", e.ID, e.Label))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func plural(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

// formatEntry renders an entry as plain text for agent consumption.
func formatEntry(e content.Entry) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n", e.Label))
	sb.WriteString(fmt.Sprintf("Section: %s\n", e.Kind))
	sb.WriteString(fmt.Sprintf("Fragment: #%s\n", browser.Fragment(e.Kind, e.ID)))
	if e.Description != "" {
		sb.WriteString(fmt.Sprintf("Description: %s\n", e.Description))
	}
	if e.Permissions != "" {
		sb.WriteString(fmt.Sprintf("Required Permissions: %s\n", e.Permissions))
	}
	sb.WriteString("\n")
	sb.WriteString(e.Text)
	sb.WriteString("\n")
	return sb.String()
}

// formatResults lists search hits with a short excerpt each.
func formatResults(results []content.Entry) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d result(s):\n", len(results)))

	for i, e := range results {
		sb.WriteString(fmt.Sprintf("\n--- Result %d ---\n", i+1))
		sb.WriteString(fmt.Sprintf("%s (%s, id %s)\n", e.Label, e.Kind, e.ID))
		if e.Description != "" {
			sb.WriteString(e.Description)
			sb.WriteString("\n")
		} else {
			sb.WriteString(excerpt(e.Text, 200))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// excerpt shortens text to at most n runes on a word boundary.
func excerpt(text string, n int) string {
	text = strings.Join(strings.Fields(text), " ")
	r := []rune(text)
	if len(r) <= n {
		return text
	}
	cut := string(r[:n])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}
