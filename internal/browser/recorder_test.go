package browser

import (
	"fmt"

	"github.com/uchiverify/site/internal/content"
)

// pane is what the recorder knows about one section of the page.
type pane struct {
	items       []ListItem
	detail      *Detail
	active      string
	hidden      map[string]bool
	placeholder int
	scrolls     int
}

// recorder is an in-memory Target and History.
type recorder struct {
	panes  map[content.Kind]*pane
	shown  content.Kind
	pushes []string
	calls  []string
}

func newRecorder() *recorder {
	return &recorder{panes: map[content.Kind]*pane{
		content.KindFAQ:     {hidden: map[string]bool{}},
		content.KindCommand: {hidden: map[string]bool{}},
	}}
}

func (r *recorder) log(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) RenderList(kind content.Kind, items []ListItem) {
	p := r.panes[kind]
	p.items = items
	p.hidden = map[string]bool{}
	p.placeholder = 0
	p.active = ""
	r.log("list %s %d", kind, len(items))
}

func (r *recorder) RenderDetail(kind content.Kind, d Detail) {
	r.panes[kind].detail = &d
	r.log("detail %s %s", kind, d.ID)
}

func (r *recorder) SetActive(kind content.Kind, id string) {
	r.panes[kind].active = id
	r.log("active %s %s", kind, id)
}

func (r *recorder) SetHidden(kind content.Kind, id string, hidden bool) {
	r.panes[kind].hidden[id] = hidden
	r.log("hidden %s %s %v", kind, id, hidden)
}

func (r *recorder) ShowPlaceholder(kind content.Kind, text string) {
	r.panes[kind].placeholder++
	r.log("placeholder %s", kind)
}

func (r *recorder) RemovePlaceholder(kind content.Kind) {
	r.panes[kind].placeholder--
	r.log("noplaceholder %s", kind)
}

func (r *recorder) ScrollIntoView(kind content.Kind) {
	r.panes[kind].scrolls++
	r.log("scroll %s", kind)
}

func (r *recorder) ShowSection(kind content.Kind) {
	r.shown = kind
	r.log("section %s", kind)
}

func (r *recorder) PushFragment(fragment string) {
	r.pushes = append(r.pushes, fragment)
	r.log("push %s", fragment)
}

// visible returns the ids the page shows for a section.
func (r *recorder) visible(kind content.Kind) []string {
	p := r.panes[kind]
	ids := []string{}
	for _, it := range p.items {
		if !p.hidden[it.ID] {
			ids = append(ids, it.ID)
		}
	}
	return ids
}
