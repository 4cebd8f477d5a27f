package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadBuiltin(t *testing.T) {
	s, err := Load(Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.FAQ.Len() != 7 {
		t.Errorf("faq entries = %d, want 7", s.FAQ.Len())
	}
	if s.Commands.Len() != 7 {
		t.Errorf("command entries = %d, want 7", s.Commands.Len())
	}
	if len(s.Showcase) != 5 {
		t.Errorf("showcase examples = %d, want 5", len(s.Showcase))
	}

	cmd, ok := s.Commands.Lookup("setchannel")
	if !ok {
		t.Fatal("setchannel command not found")
	}
	if cmd.Label != "/setchannel" {
		t.Errorf("label = %q, want /setchannel", cmd.Label)
	}
	if cmd.Permissions != "Administrator" {
		t.Errorf("permissions = %q, want Administrator", cmd.Permissions)
	}
	if !strings.Contains(cmd.HTML, "<h3>Usage</h3>") {
		t.Errorf("usage HTML missing heading: %s", cmd.HTML)
	}
	if strings.Contains(cmd.Text, "<") {
		t.Errorf("stripped text still has markup: %q", cmd.Text)
	}
}

func TestBuiltinFAQKeepsRawLinks(t *testing.T) {
	s, err := Load(Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	a, err := s.FAQ.Get("add-bot")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !strings.Contains(a.HTML, `target="_blank"`) {
		t.Error("raw HTML link attributes should be kept")
	}
	if !strings.Contains(a.Text, "Add UChiVerify to Discord") {
		t.Errorf("text = %q, want link text", a.Text)
	}
	if a.Description != "" || a.Permissions != "" {
		t.Error("faq entries carry no description or permissions")
	}
}

func TestCollectionLookup(t *testing.T) {
	c, err := newCollection(KindFAQ, []Entry{{ID: "a", Label: "A"}, {ID: "b", Label: "B"}})
	if err != nil {
		t.Fatalf("newCollection: %v", err)
	}
	if got := c.IDs(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("IDs = %v, want [a b]", got)
	}
	if _, ok := c.Lookup("missing"); ok {
		t.Error("Lookup(missing) should fail")
	}
	if _, err := c.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) err = %v, want ErrNotFound", err)
	}
}

func TestDuplicateIDRejected(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte("faq:\n  - id: x\n    title: One\n    content: one\n")},
		"b.yaml": {Data: []byte("faq:\n  - id: x\n    title: Two\n    content: two\n")},
	}
	_, err := LoadFS(fsys, nil)
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("err = %v, want ErrDuplicateID", err)
	}
}

func TestEmptyIDRejected(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte("commands:\n  - command: /x\n")},
	}
	if _, err := LoadFS(fsys, nil); err == nil {
		t.Fatal("expected error for empty id")
	}
}

func TestNonSlugIDRejected(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"faq parent dir", "faq:\n  - id: ../x\n    title: T\n    content: x\n"},
		{"faq nested path", "faq:\n  - id: ../../escaped\n    title: T\n    content: x\n"},
		{"faq space", "faq:\n  - id: a b\n    title: T\n    content: x\n"},
		{"faq uppercase", "faq:\n  - id: Setup\n    title: T\n    content: x\n"},
		{"command hash", "commands:\n  - id: \"a#b\"\n    command: /x\n"},
		{"command percent", "commands:\n  - id: a%20b\n    command: /x\n"},
		{"command leading hyphen", "commands:\n  - id: -x\n    command: /x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"a.yaml": {Data: []byte(tt.yaml)}}
			_, err := LoadFS(fsys, nil)
			if !errors.Is(err, ErrInvalidID) {
				t.Fatalf("err = %v, want ErrInvalidID", err)
			}
		})
	}
}

func TestFAQIDWithCommandPrefixRejected(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte("faq:\n  - id: command-help\n    title: Clash\n    content: x\n")},
	}
	if _, err := LoadFS(fsys, nil); err == nil {
		t.Fatal("expected error for faq id with command prefix")
	}
}

func TestUnknownFieldRejected(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte("faq:\n  - id: a\n    titel: typo\n")},
	}
	if _, err := LoadFS(fsys, nil); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestShowcaseValidation(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte("showcase:\n  - command: /x\n")},
	}
	if _, err := LoadFS(fsys, nil); err == nil {
		t.Fatal("expected error for showcase example without response title")
	}
}

func TestLoadDirWithInclude(t *testing.T) {
	dir := t.TempDir()
	write := func(rel, body string) {
		t.Helper()
		p := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("faq/one.yaml", "faq:\n  - id: one\n    title: One\n    content: first *body*\n")
	write("faq/two.yaml", "faq:\n  - id: two\n    title: Two\n    content: second\n")
	write("drafts/three.yaml", "faq:\n  - id: three\n    title: Three\n    content: draft\n")
	write("notes.txt", "not yaml")
	write("commands.yml", "commands:\n  - id: ping\n    command: /ping\n    usage: pong\n    permissions: None\n")

	s, err := Load(Options{Dir: dir, Include: []string{"faq/*.yaml", "commands.yml"}})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := s.FAQ.IDs(); len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Errorf("faq ids = %v, want [one two]", got)
	}
	if s.Commands.Len() != 1 {
		t.Errorf("commands = %d, want 1", s.Commands.Len())
	}
	if len(s.Showcase) != 0 {
		t.Errorf("showcase = %d, want 0", len(s.Showcase))
	}
	one, _ := s.FAQ.Lookup("one")
	if !strings.Contains(one.HTML, "<em>body</em>") {
		t.Errorf("markdown not rendered: %s", one.HTML)
	}
}

func TestLoadMissingDir(t *testing.T) {
	if _, err := Load(Options{Dir: filepath.Join(t.TempDir(), "nope")}); err == nil {
		t.Fatal("expected error for missing dir")
	}
}

func TestLoadEmptyDir(t *testing.T) {
	if _, err := Load(Options{Dir: t.TempDir()}); err == nil {
		t.Fatal("expected error for dir without content files")
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"<p>Hello <strong>world</strong></p>", "Hello world"},
		{"<h3>Usage</h3>\n<ul>\n<li>a</li>\n<li>b</li>\n</ul>", "Usage a b"},
		{"plain text", "plain text"},
		{"", ""},
		{"<a href=\"x\">link</a> &amp; more", "link & more"},
	}
	for _, tt := range tests {
		if got := StripHTML(tt.input); got != tt.want {
			t.Errorf("StripHTML(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestMatchesInclude(t *testing.T) {
	tests := []struct {
		path     string
		patterns []string
		want     bool
	}{
		{"faq.yaml", nil, true},
		{"nested/dir/faq.yml", nil, true},
		{"faq.json", nil, false},
		{"faq/one.yaml", []string{"faq/*.yaml"}, true},
		{"other/one.yaml", []string{"faq/*.yaml"}, false},
		{"deep/commands.yaml", []string{"commands.yaml"}, true},
	}
	for _, tt := range tests {
		if got := matchesInclude(tt.path, tt.patterns); got != tt.want {
			t.Errorf("matchesInclude(%q, %v) = %v, want %v", tt.path, tt.patterns, got, tt.want)
		}
	}
}

func TestKindValid(t *testing.T) {
	if !KindFAQ.Valid() || !KindCommand.Valid() {
		t.Error("known kinds should be valid")
	}
	if Kind("blog").Valid() {
		t.Error("unknown kind should be invalid")
	}
}
