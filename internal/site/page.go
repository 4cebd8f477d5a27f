package site

import (
	"io"

	"github.com/uchiverify/site/internal/browser"
	"github.com/uchiverify/site/internal/content"
	"github.com/uchiverify/site/internal/showcase"
)

// Prerender drives the browser core against a Snapshot the same way a
// freshly loaded page with fragment would be driven.
func Prerender(store *content.Store, fragment string) *Snapshot {
	snap := NewSnapshot()
	b := browser.New(store, snap, snap, browser.Options{})
	b.Load(fragment, 0)
	if conv, ok := showcase.First(store.Showcase); ok {
		snap.RenderConversation(conv)
	}
	return snap
}

// RenderPage writes the page as it looks right after loading fragment.
func (v *Views) RenderPage(w io.Writer, store *content.Store, fragment, base string, static bool) error {
	return v.Page(w, Prerender(store, fragment), base, static)
}
