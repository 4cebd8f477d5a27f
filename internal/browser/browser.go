package browser

import (
	"go.uber.org/zap"

	"github.com/uchiverify/site/internal/content"
)

// DefaultCompactBreakpoint is the widest viewport, in CSS pixels, that still
// counts as a compact layout.
const DefaultCompactBreakpoint = 1024

// Options configures a Browser.
type Options struct {
	// CompactBreakpoint: viewports at most this wide scroll the detail pane
	// into view on selection. Zero means DefaultCompactBreakpoint.
	CompactBreakpoint int
	Logger            *zap.Logger
}

// Browser owns the FAQ and Commands sections of one page view.
type Browser struct {
	faq        *Section
	commands   *Section
	target     Target
	breakpoint int
	width      int
	shown      content.Kind
	log        *zap.Logger
}

// New creates a Browser over the store. Nothing is rendered until Init.
func New(store *content.Store, target Target, history History, opts Options) *Browser {
	b := &Browser{
		target:     target,
		breakpoint: opts.CompactBreakpoint,
		log:        opts.Logger,
	}
	if b.breakpoint <= 0 {
		b.breakpoint = DefaultCompactBreakpoint
	}
	if b.log == nil {
		b.log = zap.NewNop()
	}
	b.faq = newSection(store.FAQ, target, history, b.compact)
	b.commands = newSection(store.Commands, target, history, b.compact)
	return b
}

// compact reports whether the last known viewport is a compact layout. An
// unknown width counts as desktop.
func (b *Browser) compact() bool {
	return b.width > 0 && b.width <= b.breakpoint
}

// Section returns the section for kind, or nil.
func (b *Browser) Section(kind content.Kind) *Section {
	switch kind {
	case content.KindFAQ:
		return b.faq
	case content.KindCommand:
		return b.commands
	default:
		return nil
	}
}

// Init renders both sidebars.
func (b *Browser) Init() {
	b.faq.Render()
	b.commands.Render()
}

// Resize records the viewport width.
func (b *Browser) Resize(width int) {
	if width > 0 {
		b.width = width
	}
}

// Width returns the last known viewport width.
func (b *Browser) Width() int { return b.width }

// Shown returns the section whose tab is visible, "" before any switch.
func (b *Browser) Shown() content.Kind { return b.shown }

// ShowSection switches the visible tab.
func (b *Browser) ShowSection(kind content.Kind) bool {
	if !kind.Valid() {
		return false
	}
	b.shown = kind
	b.target.ShowSection(kind)
	return true
}

// Load renders the sidebars and resolves the initial location fragment.
func (b *Browser) Load(fragment string, width int) bool {
	b.Resize(width)
	b.Init()
	return b.Navigate(fragment)
}

// Navigate resolves a location fragment, switches to its section and displays
// the entry. It is used on initial load and on every history navigation and
// never pushes history itself. Unknown fragments leave the view untouched.
func (b *Browser) Navigate(fragment string) bool {
	link, ok := ParseFragment(fragment)
	if !ok {
		return false
	}
	s := b.Section(link.Kind)
	e, ok := s.Entries().Lookup(link.ID)
	if !ok {
		b.log.Debug("fragment does not resolve", zap.String("fragment", fragment))
		return false
	}
	b.ShowSection(link.Kind)
	s.Display(e)
	return true
}

// Select handles a sidebar click.
func (b *Browser) Select(kind content.Kind, id string) bool {
	s := b.Section(kind)
	if s == nil {
		return false
	}
	return s.Select(id)
}

// Search filters one section's sidebar.
func (b *Browser) Search(kind content.Kind, query string) bool {
	s := b.Section(kind)
	if s == nil {
		return false
	}
	s.Filter(query)
	return true
}
