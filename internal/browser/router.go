package browser

import (
	"strings"

	"github.com/uchiverify/site/internal/content"
)

// Link addresses one entry of one section.
type Link struct {
	Kind content.Kind
	ID   string
}

// Fragment returns the location fragment (without '#') for an entry.
// Commands carry content.CommandPrefix; FAQ articles use their bare id.
func Fragment(kind content.Kind, id string) string {
	if kind == content.KindCommand {
		return content.CommandPrefix + id
	}
	return id
}

// Fragment returns the location fragment of the link.
func (l Link) Fragment() string { return Fragment(l.Kind, l.ID) }

// ParseFragment splits a location fragment into a section and an id. A leading
// '#' is ignored. It does not check that the id exists.
func ParseFragment(fragment string) (Link, bool) {
	fragment = strings.TrimPrefix(fragment, "#")
	if fragment == "" {
		return Link{}, false
	}
	if id, ok := strings.CutPrefix(fragment, content.CommandPrefix); ok {
		if id == "" {
			return Link{}, false
		}
		return Link{Kind: content.KindCommand, ID: id}, true
	}
	return Link{Kind: content.KindFAQ, ID: fragment}, true
}

// Resolve parses the fragment and looks the entry up in the store.
func Resolve(store *content.Store, fragment string) (content.Entry, bool) {
	link, ok := ParseFragment(fragment)
	if !ok {
		return content.Entry{}, false
	}
	return store.Collection(link.Kind).Lookup(link.ID)
}
