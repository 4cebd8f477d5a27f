package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchEntriesTool defines the search_entries MCP tool.
var searchEntriesTool = mcp.NewTool("search_entries",
	mcp.WithDescription("Search the UChiVerify FAQ and bot command reference. Matching is a case-insensitive substring match on titles, descriptions and bodies."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Text to look for"),
	),
	mcp.WithString("section",
		mcp.Description("Restrict the search to one section"),
		mcp.Enum("faq", "commands"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 10)"),
	),
)

// getEntryTool defines the get_entry MCP tool.
var getEntryTool = mcp.NewTool("get_entry",
	mcp.WithDescription("Get one FAQ article or bot command. Without a section the id is read as a page fragment: \"command-<id>\" for commands, anything else for FAQ articles."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Entry id or page fragment"),
	),
	mcp.WithString("section",
		mcp.Description("Section the id belongs to"),
		mcp.Enum("faq", "commands"),
	),
)

// listEntriesTool defines the list_entries MCP tool.
var listEntriesTool = mcp.NewTool("list_entries",
	mcp.WithDescription("List the ids and titles of every FAQ article or bot command."),
	mcp.WithString("section",
		mcp.Required(),
		mcp.Description("Section to list"),
		mcp.Enum("faq", "commands"),
	),
)
