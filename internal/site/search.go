package site

import (
	"encoding/json"
	"os"

	"github.com/uchiverify/site/internal/browser"
	"github.com/uchiverify/site/internal/content"
)

// SearchEntry is one searchable entry in search-index.json. The client uses
// it to filter the sidebars when no live session is available.
type SearchEntry struct {
	Section     content.Kind `json:"section"`
	ID          string       `json:"id"`
	Fragment    string       `json:"fragment"`
	Path        string       `json:"path"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Content     string       `json:"content"`
}

// BuildSearchIndex lists every FAQ article and command in display order.
func BuildSearchIndex(store *content.Store) []SearchEntry {
	var entries []SearchEntry
	for _, c := range []*content.Collection{store.Commands, store.FAQ} {
		for _, e := range c.All() {
			entries = append(entries, SearchEntry{
				Section:     e.Kind,
				ID:          e.ID,
				Fragment:    browser.Fragment(e.Kind, e.ID),
				Path:        EntryPath(e.Kind, e.ID),
				Title:       e.Label,
				Description: e.Description,
				Content:     e.Text,
			})
		}
	}
	return entries
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
