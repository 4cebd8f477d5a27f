// Package browser implements the content browser shared by the FAQ and
// Commands sections: sidebar list rendering, article display, search
// filtering and deep-link routing. It never touches a real page; every visual
// effect goes through a Target so the same logic can drive a live websocket
// session, a static pre-render or a test recorder.
package browser

import "github.com/uchiverify/site/internal/content"

// NoResultsText is the placeholder shown when a search hides every entry.
const NoResultsText = "No results found"

// ListItem is one sidebar entry.
type ListItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Href  string `json:"href"`
	// Code renders the label as inline code (commands).
	Code bool `json:"code,omitempty"`
}

// Detail is the content of the detail pane for one entry.
type Detail struct {
	Kind        content.Kind `json:"kind"`
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Permissions string       `json:"permissions,omitempty"`
	Body        string       `json:"body"`
}

// Target is the render surface of the browser.
type Target interface {
	// RenderList replaces the whole sidebar list of a section.
	RenderList(kind content.Kind, items []ListItem)
	// RenderDetail replaces the detail pane of a section.
	RenderDetail(kind content.Kind, d Detail)
	// SetActive marks id as the only active sidebar item of the section.
	SetActive(kind content.Kind, id string)
	// SetHidden toggles the visibility of one sidebar item.
	SetHidden(kind content.Kind, id string, hidden bool)
	ShowPlaceholder(kind content.Kind, text string)
	RemovePlaceholder(kind content.Kind)
	// ScrollIntoView brings the detail pane into view on compact layouts.
	ScrollIntoView(kind content.Kind)
	// ShowSection switches the visible tab.
	ShowSection(kind content.Kind)
}

// History is the browser location history.
type History interface {
	// PushFragment adds a history entry for the fragment without reloading.
	PushFragment(fragment string)
}
