package browser

import "github.com/uchiverify/site/internal/content"

// SectionState is the mutable view state of one section. It lives for as
// long as the owning Browser.
type SectionState struct {
	// Current is the id of the displayed entry, "" before the first selection.
	Current string
	// Query is the last normalized search query.
	Query string

	hidden      map[string]bool
	placeholder bool
}

// Section couples one content collection with its view state and renders it
// through the shared Target.
type Section struct {
	entries *content.Collection
	target  Target
	history History
	compact func() bool
	state   SectionState
}

func newSection(entries *content.Collection, target Target, history History, compact func() bool) *Section {
	return &Section{
		entries: entries,
		target:  target,
		history: history,
		compact: compact,
		state:   SectionState{hidden: make(map[string]bool)},
	}
}

// Kind returns the section's kind.
func (s *Section) Kind() content.Kind { return s.entries.Kind() }

// Entries returns the backing collection.
func (s *Section) Entries() *content.Collection { return s.entries }

// State returns a copy of the section state.
func (s *Section) State() SectionState {
	st := s.state
	st.hidden = nil
	return st
}

// Render clears and rebuilds the sidebar list. Rebuilt items are all visible
// and the placeholder is gone; the active item, if any, is marked again.
func (s *Section) Render() {
	kind := s.Kind()
	items := make([]ListItem, 0, s.entries.Len())
	for _, e := range s.entries.All() {
		items = append(items, ListItem{
			ID:    e.ID,
			Label: e.Label,
			Href:  "#" + Fragment(kind, e.ID),
			Code:  kind == content.KindCommand,
		})
	}
	s.target.RenderList(kind, items)

	s.state.hidden = make(map[string]bool)
	s.state.placeholder = false
	s.state.Query = ""
	if s.state.Current != "" {
		s.target.SetActive(kind, s.state.Current)
	}
}

// Select handles a click on the sidebar item for id: the entry is displayed
// and its fragment pushed to history. Unknown ids are ignored.
func (s *Section) Select(id string) bool {
	e, ok := s.entries.Lookup(id)
	if !ok {
		return false
	}
	s.Display(e)
	s.history.PushFragment(Fragment(s.Kind(), e.ID))
	return true
}

// Display shows e in the detail pane and makes it the active sidebar item.
func (s *Section) Display(e content.Entry) {
	kind := s.Kind()
	s.state.Current = e.ID
	s.target.RenderDetail(kind, detailOf(e))
	s.target.SetActive(kind, e.ID)
	if s.compact() {
		s.target.ScrollIntoView(kind)
	}
}

// Current returns the displayed entry.
func (s *Section) Current() (content.Entry, bool) {
	if s.state.Current == "" {
		return content.Entry{}, false
	}
	return s.entries.Lookup(s.state.Current)
}

// Filter applies a raw search query to the sidebar. Only visibility changes
// are sent to the target, so repeating a query is a no-op.
func (s *Section) Filter(query string) {
	kind := s.Kind()
	q := NormalizeQuery(query)
	s.state.Query = q

	visible := 0
	for _, e := range s.entries.All() {
		hide := !Matches(e, q)
		if s.state.hidden[e.ID] != hide {
			s.state.hidden[e.ID] = hide
			s.target.SetHidden(kind, e.ID, hide)
		}
		if !hide {
			visible++
		}
	}

	want := q != "" && visible == 0
	switch {
	case want && !s.state.placeholder:
		s.target.ShowPlaceholder(kind, NoResultsText)
		s.state.placeholder = true
	case !want && s.state.placeholder:
		s.target.RemovePlaceholder(kind)
		s.state.placeholder = false
	}
}

// Visible returns the ids of the sidebar items that are currently shown.
func (s *Section) Visible() []string {
	ids := []string{}
	for _, e := range s.entries.All() {
		if !s.state.hidden[e.ID] {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// HasPlaceholder reports whether the "no results" item is shown.
func (s *Section) HasPlaceholder() bool { return s.state.placeholder }

func detailOf(e content.Entry) Detail {
	return Detail{
		Kind:        e.Kind,
		ID:          e.ID,
		Title:       e.Label,
		Description: e.Description,
		Permissions: e.Permissions,
		Body:        e.HTML,
	}
}
