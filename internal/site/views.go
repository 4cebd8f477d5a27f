package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/uchiverify/site/internal/browser"
	"github.com/uchiverify/site/internal/content"
	"github.com/uchiverify/site/internal/demo"
	"github.com/uchiverify/site/internal/showcase"
)

// DefaultDescription is used when no site description is configured.
const DefaultDescription = "UChiVerify links Discord accounts to UChicago CNetIDs so your server knows who is a real student."

// ViewOptions configures Views.
type ViewOptions struct {
	Title       string
	Description string
	// BaseURL is the public address of the site, used for the canonical link.
	BaseURL string
	Meta    showcase.Meta
	// Breakpoint and Threshold are handed to the client script.
	Breakpoint int
	Threshold  float64
}

// Views renders the page and the HTML fragments sent to live sessions.
type Views struct {
	tmpl *template.Template
	opts ViewOptions
}

// NewViews parses the templates.
func NewViews(opts ViewOptions) (*Views, error) {
	if opts.Title == "" {
		opts.Title = "UChiVerify"
	}
	if opts.Description == "" {
		opts.Description = DefaultDescription
	}
	if opts.Meta == (showcase.Meta{}) {
		opts.Meta = showcase.DefaultMeta()
	}
	if opts.Breakpoint <= 0 {
		opts.Breakpoint = browser.DefaultCompactBreakpoint
	}
	if opts.Threshold <= 0 {
		opts.Threshold = demo.DefaultVisibilityThreshold
	}

	tmpl := template.New("page").Funcs(template.FuncMap{
		"safe":  func(s string) template.HTML { return template.HTML(s) },
		"asset": asset,
	})
	for _, src := range []string{listTemplate, detailTemplate, emptyDetailTemplate, conversationTemplate, sectionTemplate, pageTemplate} {
		var err error
		if tmpl, err = tmpl.Parse(src); err != nil {
			return nil, fmt.Errorf("parsing templates: %w", err)
		}
	}
	return &Views{tmpl: tmpl, opts: opts}, nil
}

// Options returns the options the views were built with.
func (v *Views) Options() ViewOptions { return v.opts }

// SectionData is the state of one docs tab.
type SectionData struct {
	Kind        content.Kind
	Items       []browser.ListItem
	Hidden      map[string]bool
	Active      string
	Placeholder string
	Query       string
	Detail      *browser.Detail
	Shown       bool
}

// ConversationData is the input of the conversation fragment.
type ConversationData struct {
	Conv *showcase.Conversation
	Meta showcase.Meta
	Base string
}

// PageData is the input of the full page.
type PageData struct {
	Title       string
	Heading     string
	Description string
	Canonical   string
	// Base prefixes every local link: "/" when served, relative when built.
	Base       string
	Static     bool
	Breakpoint int
	Threshold  float64
	Commands   SectionData
	FAQ        SectionData
	Chat       ConversationData
	Scene      demo.Scene
}

// List renders the sidebar items of a freshly built list.
func (v *Views) List(kind content.Kind, items []browser.ListItem) (string, error) {
	return v.fragment("list", SectionData{Kind: kind, Items: items})
}

// Detail renders the detail pane for one entry.
func (v *Views) Detail(d browser.Detail) (string, error) {
	return v.fragment("detail", d)
}

// Conversation renders the showcase chat.
func (v *Views) Conversation(c showcase.Conversation, base string) (string, error) {
	return v.fragment("conversation", ConversationData{Conv: &c, Meta: v.opts.Meta, Base: base})
}

// Page renders the full page for a snapshot of the view state.
func (v *Views) Page(w io.Writer, snap *Snapshot, base string, static bool) error {
	data := PageData{
		Title:       v.opts.Title,
		Description: v.opts.Description,
		Canonical:   v.opts.BaseURL,
		Base:        base,
		Static:      static,
		Breakpoint:  v.opts.Breakpoint,
		Threshold:   v.opts.Threshold,
		Commands:    snap.section(content.KindCommand),
		FAQ:         snap.section(content.KindFAQ),
		Chat:        ConversationData{Conv: snap.Conversation, Meta: v.opts.Meta, Base: base},
		Scene:       snap.Scene,
	}
	if data.Commands.Shown == data.FAQ.Shown {
		data.Commands.Shown = true
		data.FAQ.Shown = false
	}
	if d := snap.Shown(); d != nil {
		data.Heading = d.Title
	}
	if static {
		data.Commands.Items = staticLinks(data.Commands.Items, content.KindCommand, base)
		data.FAQ.Items = staticLinks(data.FAQ.Items, content.KindFAQ, base)
	}
	return v.tmpl.ExecuteTemplate(w, "page", data)
}

func (v *Views) fragment(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := v.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}

// asset resolves a site-absolute path against base.
func asset(base, p string) string {
	if !strings.HasPrefix(p, "/") {
		return p
	}
	if p == "/" {
		if base == "" {
			return "./"
		}
		return base
	}
	return base + strings.TrimPrefix(p, "/")
}

// EntryPath is the pre-rendered page of an entry, relative to the site root.
func EntryPath(kind content.Kind, id string) string {
	return string(kind) + "/" + id + ".html"
}

// staticLinks points list items at the pre-rendered entry pages.
func staticLinks(items []browser.ListItem, kind content.Kind, base string) []browser.ListItem {
	out := make([]browser.ListItem, len(items))
	for i, it := range items {
		it.Href = base + EntryPath(kind, it.ID)
		out[i] = it
	}
	return out
}
