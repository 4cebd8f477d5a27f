package content

import (
	"fmt"
	"regexp"
)

// idPattern is the shape of every entry id. Ids end up in location
// fragments and in file names of the static build.
var idPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Collection is an ordered, immutable set of entries of one kind, indexed by id.
type Collection struct {
	kind    Kind
	entries []Entry
	index   map[string]int
}

func newCollection(kind Kind, entries []Entry) (*Collection, error) {
	c := &Collection{
		kind:    kind,
		entries: entries,
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("%s entry %d (%q): empty id", kind, i, e.Label)
		}
		if !idPattern.MatchString(e.ID) {
			return nil, fmt.Errorf("%s %q: %w", kind, e.ID, ErrInvalidID)
		}
		if _, dup := c.index[e.ID]; dup {
			return nil, fmt.Errorf("%s %q: %w", kind, e.ID, ErrDuplicateID)
		}
		c.index[e.ID] = i
	}
	return c, nil
}

// Kind returns the section the collection belongs to.
func (c *Collection) Kind() Kind { return c.kind }

// Len returns the number of entries.
func (c *Collection) Len() int { return len(c.entries) }

// All returns the entries in authoring order. The slice must not be modified.
func (c *Collection) All() []Entry { return c.entries }

// Lookup returns the entry with the given id.
func (c *Collection) Lookup(id string) (Entry, bool) {
	i, ok := c.index[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Get is Lookup with an error for callers that report missing ids.
func (c *Collection) Get(id string) (Entry, error) {
	e, ok := c.Lookup(id)
	if !ok {
		return Entry{}, fmt.Errorf("%s %q: %w", c.kind, id, ErrNotFound)
	}
	return e, nil
}

// IDs returns all ids in authoring order.
func (c *Collection) IDs() []string {
	ids := make([]string, len(c.entries))
	for i, e := range c.entries {
		ids[i] = e.ID
	}
	return ids
}

// Store holds every content collection of the site. It is built once by Load
// and never mutated afterwards, so it may be shared between sessions.
type Store struct {
	FAQ      *Collection
	Commands *Collection
	Showcase []ShowcaseExample
}

// Collection returns the collection for a section, or nil for an unknown kind.
func (s *Store) Collection(kind Kind) *Collection {
	switch kind {
	case KindFAQ:
		return s.FAQ
	case KindCommand:
		return s.Commands
	default:
		return nil
	}
}
