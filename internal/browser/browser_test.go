package browser

import (
	"slices"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/uchiverify/site/internal/content"
)

var kinds = []content.Kind{content.KindFAQ, content.KindCommand}

func loadStore(t testing.TB) *content.Store {
	t.Helper()
	s, err := content.Load(content.Options{})
	if err != nil {
		t.Fatalf("loading content: %v", err)
	}
	return s
}

func newTestBrowser(t testing.TB, width int) (*Browser, *recorder, *content.Store) {
	t.Helper()
	store := loadStore(t)
	rec := newRecorder()
	b := New(store, rec, rec, Options{})
	b.Resize(width)
	b.Init()
	return b, rec, store
}

func TestRenderList(t *testing.T) {
	_, rec, store := newTestBrowser(t, 1280)

	faq := rec.panes[content.KindFAQ].items
	if len(faq) != store.FAQ.Len() {
		t.Fatalf("faq items = %d, want %d", len(faq), store.FAQ.Len())
	}
	if faq[0].ID != "setting-up" || faq[0].Href != "#setting-up" || faq[0].Code {
		t.Errorf("first faq item = %+v", faq[0])
	}

	cmds := rec.panes[content.KindCommand].items
	if cmds[0].ID != "setchannel" || cmds[0].Label != "/setchannel" {
		t.Errorf("first command item = %+v", cmds[0])
	}
	if cmds[0].Href != "#command-setchannel" || !cmds[0].Code {
		t.Errorf("command item should link with prefix and render as code: %+v", cmds[0])
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	b, rec, _ := newTestBrowser(t, 1280)
	b.Search(content.KindFAQ, "zzz_no_match")
	b.Select(content.KindFAQ, "add-bot")

	s := b.Section(content.KindFAQ)
	s.Render()
	first := slices.Clone(rec.panes[content.KindFAQ].items)
	s.Render()

	if !slices.Equal(first, rec.panes[content.KindFAQ].items) {
		t.Error("re-rendering should produce the same items")
	}
	if s.HasPlaceholder() {
		t.Error("rebuilt list should not keep the placeholder")
	}
	if got := len(s.Visible()); got != len(first) {
		t.Errorf("visible after rebuild = %d, want %d", got, len(first))
	}
	if rec.panes[content.KindFAQ].active != "add-bot" {
		t.Errorf("active after rebuild = %q, want add-bot", rec.panes[content.KindFAQ].active)
	}
}

func TestSelectDisplaysEntryAndOneActive(t *testing.T) {
	b, rec, store := newTestBrowser(t, 1280)

	for _, kind := range kinds {
		for _, e := range store.Collection(kind).All() {
			if !b.Select(kind, e.ID) {
				t.Fatalf("Select(%s, %s) = false", kind, e.ID)
			}
			p := rec.panes[kind]
			if p.detail == nil || p.detail.ID != e.ID || p.detail.Body != e.HTML {
				t.Errorf("%s/%s: detail = %+v", kind, e.ID, p.detail)
			}
			if p.active != e.ID {
				t.Errorf("%s/%s: active = %q", kind, e.ID, p.active)
			}
			if cur, _ := b.Section(kind).Current(); cur.ID != e.ID {
				t.Errorf("%s/%s: current = %q", kind, e.ID, cur.ID)
			}
		}
	}
}

func TestSelectUnknownIsIgnored(t *testing.T) {
	b, rec, _ := newTestBrowser(t, 1280)
	before := len(rec.calls)

	if b.Select(content.KindFAQ, "nope") {
		t.Error("Select of unknown id should report false")
	}
	if b.Select("blog", "x") {
		t.Error("Select of unknown section should report false")
	}
	if len(rec.calls) != before {
		t.Errorf("unexpected target calls: %v", rec.calls[before:])
	}
}

func TestSelectSetchannel(t *testing.T) {
	b, rec, _ := newTestBrowser(t, 1280)
	b.Select(content.KindCommand, "setchannel")

	if len(rec.pushes) != 1 || rec.pushes[0] != "command-setchannel" {
		t.Fatalf("pushes = %v, want [command-setchannel]", rec.pushes)
	}

	// Reload with that fragment.
	store := loadStore(t)
	rec2 := newRecorder()
	b2 := New(store, rec2, rec2, Options{})
	if !b2.Load("#"+rec.pushes[0], 1280) {
		t.Fatal("Load should resolve the pushed fragment")
	}
	d := rec2.panes[content.KindCommand].detail
	if d == nil || d.Title != "/setchannel" || d.Permissions != "Administrator" {
		t.Fatalf("detail after reload = %+v", d)
	}
	if rec2.shown != content.KindCommand {
		t.Errorf("shown section = %q, want commands", rec2.shown)
	}
	if len(rec2.pushes) != 0 {
		t.Errorf("loading must not push history, got %v", rec2.pushes)
	}
}

func TestNavigateMatchesClick(t *testing.T) {
	store := loadStore(t)
	for _, kind := range kinds {
		for _, e := range store.Collection(kind).All() {
			clicked := newRecorder()
			b := New(store, clicked, clicked, Options{})
			b.Load("", 1280)
			b.Select(kind, e.ID)

			loaded := newRecorder()
			b2 := New(store, loaded, loaded, Options{})
			if !b2.Load(clicked.pushes[0], 1280) {
				t.Fatalf("%s: fragment %q did not resolve", e.ID, clicked.pushes[0])
			}

			if *clicked.panes[kind].detail != *loaded.panes[kind].detail {
				t.Errorf("%s: loaded detail differs from clicked detail", e.ID)
			}
			if clicked.panes[kind].active != loaded.panes[kind].active {
				t.Errorf("%s: active differs", e.ID)
			}
		}
	}
}

func TestNavigateUnknownIsNoop(t *testing.T) {
	b, rec, _ := newTestBrowser(t, 1280)
	b.Select(content.KindFAQ, "add-bot")
	before := len(rec.calls)

	for _, f := range []string{"", "#", "no-such-article", "command-", "command-nope", "#command-nope"} {
		if b.Navigate(f) {
			t.Errorf("Navigate(%q) = true, want false", f)
		}
	}
	if len(rec.calls) != before {
		t.Errorf("unknown fragments touched the view: %v", rec.calls[before:])
	}
	if cur, _ := b.Section(content.KindFAQ).Current(); cur.ID != "add-bot" {
		t.Errorf("current = %q, want add-bot", cur.ID)
	}
}

func TestNavigateReadsFragmentEachTime(t *testing.T) {
	b, rec, _ := newTestBrowser(t, 1280)

	b.Navigate("#data-storage")
	if rec.shown != content.KindFAQ || rec.panes[content.KindFAQ].active != "data-storage" {
		t.Fatalf("after first navigation: shown=%q active=%q", rec.shown, rec.panes[content.KindFAQ].active)
	}
	b.Navigate("#command-help")
	if rec.shown != content.KindCommand || rec.panes[content.KindCommand].active != "help" {
		t.Fatalf("after second navigation: shown=%q active=%q", rec.shown, rec.panes[content.KindCommand].active)
	}
	b.Navigate("#setting-up")
	if rec.shown != content.KindFAQ || rec.panes[content.KindFAQ].active != "setting-up" {
		t.Fatalf("after third navigation: shown=%q active=%q", rec.shown, rec.panes[content.KindFAQ].active)
	}
	if len(rec.pushes) != 0 {
		t.Errorf("history navigation must not push, got %v", rec.pushes)
	}
}

func TestCompactLayoutScrolls(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 0},
		{1280, 0},
		{1025, 0},
		{1024, 1},
		{375, 1},
	}
	for _, tt := range tests {
		b, rec, _ := newTestBrowser(t, tt.width)
		b.Select(content.KindFAQ, "add-bot")
		if got := rec.panes[content.KindFAQ].scrolls; got != tt.want {
			t.Errorf("width %d: scrolls = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestCustomBreakpoint(t *testing.T) {
	store := loadStore(t)
	rec := newRecorder()
	b := New(store, rec, rec, Options{CompactBreakpoint: 600})
	b.Load("#add-bot", 800)
	if rec.panes[content.KindFAQ].scrolls != 0 {
		t.Error("800px should be desktop with a 600px breakpoint")
	}
	b.Resize(600)
	b.Select(content.KindFAQ, "setting-up")
	if rec.panes[content.KindFAQ].scrolls != 1 {
		t.Error("600px should be compact with a 600px breakpoint")
	}
}

func TestNoResultsPlaceholder(t *testing.T) {
	for _, kind := range kinds {
		b, rec, store := newTestBrowser(t, 1280)
		s := b.Section(kind)

		b.Search(kind, "zzz_no_match")
		if !s.HasPlaceholder() || rec.panes[kind].placeholder != 1 {
			t.Fatalf("%s: placeholder not shown", kind)
		}
		if len(rec.visible(kind)) != 0 {
			t.Errorf("%s: visible = %v, want none", kind, rec.visible(kind))
		}

		b.Search(kind, "zzz_no_match_at_all")
		if rec.panes[kind].placeholder != 1 {
			t.Errorf("%s: placeholder created more than once", kind)
		}

		b.Search(kind, "")
		if s.HasPlaceholder() || rec.panes[kind].placeholder != 0 {
			t.Errorf("%s: placeholder not removed", kind)
		}
		if got := len(rec.visible(kind)); got != store.Collection(kind).Len() {
			t.Errorf("%s: visible after clearing = %d, want all", kind, got)
		}
	}
}

func TestFilterTrimsAndIgnoresCase(t *testing.T) {
	b, rec, _ := newTestBrowser(t, 1280)
	b.Search(content.KindCommand, "   SETCHANNEL  ")
	if got := rec.visible(content.KindCommand); !slices.Equal(got, []string{"setchannel"}) {
		t.Errorf("visible = %v, want [setchannel]", got)
	}
	if q := b.Section(content.KindCommand).State().Query; q != "setchannel" {
		t.Errorf("query state = %q", q)
	}
}

func TestFilterMatchesDescriptionAndBody(t *testing.T) {
	b, rec, _ := newTestBrowser(t, 1280)

	// Only in the description of /daysinquarter.
	b.Search(content.KindCommand, "how many days are left")
	if got := rec.visible(content.KindCommand); !slices.Equal(got, []string{"daysinquarter"}) {
		t.Errorf("description match: visible = %v", got)
	}

	// Only in the stripped body of the data-storage article.
	b.Search(content.KindFAQ, "america/chicago")
	if got := rec.visible(content.KindFAQ); !slices.Equal(got, []string{"data-storage"}) {
		t.Errorf("body match: visible = %v", got)
	}

	// Markup is not searchable.
	b.Search(content.KindFAQ, "<code>")
	if got := rec.visible(content.KindFAQ); len(got) != 0 {
		t.Errorf("markup match: visible = %v, want none", got)
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	b, rec, _ := newTestBrowser(t, 1280)
	b.Search(content.KindFAQ, "bot")
	first := rec.visible(content.KindFAQ)
	calls := len(rec.calls)

	b.Search(content.KindFAQ, "bot")
	if !slices.Equal(first, rec.visible(content.KindFAQ)) {
		t.Error("second pass changed the visible set")
	}
	if len(rec.calls) != calls {
		t.Errorf("second pass emitted %v", rec.calls[calls:])
	}
}

func TestFilterNeverReordersOrRemoves(t *testing.T) {
	b, rec, _ := newTestBrowser(t, 1280)
	before := slices.Clone(rec.panes[content.KindFAQ].items)
	b.Search(content.KindFAQ, "role")
	if !slices.Equal(before, rec.panes[content.KindFAQ].items) {
		t.Error("filtering must not change the rendered items")
	}
}

func TestMatchesMissingDescription(t *testing.T) {
	e := content.Entry{ID: "x", Label: "Title", Text: "body text"}
	if Matches(e, "nothing") {
		t.Error("absent description should not match")
	}
	if !Matches(e, "body") || !Matches(e, "title") || !Matches(e, "") {
		t.Error("label, body and empty query should match")
	}
}

func TestSearchHelper(t *testing.T) {
	store := loadStore(t)
	if got := Search(store.Commands, "administrator"); !slices.Equal(got, []string{"setchannel"}) {
		t.Errorf("Search = %v, want [setchannel]", got)
	}
	if got := Search(store.FAQ, ""); len(got) != store.FAQ.Len() {
		t.Errorf("empty Search = %d ids, want all", len(got))
	}
}

func TestParseFragment(t *testing.T) {
	tests := []struct {
		in   string
		want Link
		ok   bool
	}{
		{"setting-up", Link{content.KindFAQ, "setting-up"}, true},
		{"#setting-up", Link{content.KindFAQ, "setting-up"}, true},
		{"command-setchannel", Link{content.KindCommand, "setchannel"}, true},
		{"#command-help", Link{content.KindCommand, "help"}, true},
		{"command-", Link{}, false},
		{"", Link{}, false},
		{"#", Link{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseFragment(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseFragment(%q) = %+v, %v; want %+v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestResolve(t *testing.T) {
	store := loadStore(t)
	if e, ok := Resolve(store, "#command-scav"); !ok || e.Label != "/scav" {
		t.Errorf("Resolve(command-scav) = %+v, %v", e, ok)
	}
	if _, ok := Resolve(store, "#command-setting-up"); ok {
		t.Error("faq id with command prefix should not resolve")
	}
}

func TestFragmentRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		kind := rapid.SampledFrom(kinds).Draw(rt, "kind")
		id := rapid.StringMatching(`[a-z0-9][a-z0-9-]{0,20}`).Draw(rt, "id")
		if kind == content.KindFAQ && strings.HasPrefix(id, content.CommandPrefix) {
			rt.Skip("faq ids may not carry the command prefix")
		}
		link, ok := ParseFragment(Fragment(kind, id))
		if !ok || link.Kind != kind || link.ID != id {
			rt.Fatalf("round trip of %s/%s gave %+v, %v", kind, id, link, ok)
		}
	})
}

func TestFilterMatchesFormula(t *testing.T) {
	store := loadStore(t)
	rapid.Check(t, func(rt *rapid.T) {
		kind := rapid.SampledFrom(kinds).Draw(rt, "kind")
		coll := store.Collection(kind)
		query := rapid.OneOf(
			rapid.StringMatching(`[ a-zA-Z/_-]{0,6}`),
			rapid.Custom(func(rt *rapid.T) string {
				e := rapid.SampledFrom(coll.All()).Draw(rt, "entry")
				src := []rune(rapid.SampledFrom([]string{e.Label, e.Description, e.Text}).Draw(rt, "field"))
				if len(src) == 0 {
					return ""
				}
				i := rapid.IntRange(0, len(src)-1).Draw(rt, "start")
				j := rapid.IntRange(i, min(len(src), i+12)).Draw(rt, "end")
				return string(src[i:j])
			}),
		).Draw(rt, "query")

		rec := newRecorder()
		b := New(store, rec, rec, Options{})
		b.Init()
		b.Search(kind, query)
		once := rec.visible(kind)
		b.Search(kind, query)
		twice := rec.visible(kind)

		q := strings.ToLower(strings.TrimSpace(query))
		want := []string{}
		for _, e := range coll.All() {
			if q == "" ||
				strings.Contains(strings.ToLower(e.Label), q) ||
				(e.Description != "" && strings.Contains(strings.ToLower(e.Description), q)) ||
				strings.Contains(strings.ToLower(e.Text), q) {
				want = append(want, e.ID)
			}
		}

		if !slices.Equal(once, want) {
			rt.Fatalf("query %q: visible %v, want %v", query, once, want)
		}
		if !slices.Equal(once, twice) {
			rt.Fatalf("query %q: not idempotent: %v then %v", query, once, twice)
		}
		placeholder := rec.panes[kind].placeholder == 1
		if placeholder != (q != "" && len(want) == 0) {
			rt.Fatalf("query %q: placeholder=%v with %d matches", query, placeholder, len(want))
		}
	})
}
