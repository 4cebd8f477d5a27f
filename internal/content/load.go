package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var builtin embed.FS

// CommandPrefix marks a location fragment that refers to a command rather
// than a FAQ article. FAQ ids may not start with it.
const CommandPrefix = "command-"

// Options controls where content is read from.
type Options struct {
	// Dir replaces the built-in content with the YAML files found under it.
	Dir string
	// Include selects files under Dir; see DefaultInclude.
	Include []string
}

// bundle is the top-level shape of every content file. A file may carry any
// subset of the three lists.
type bundle struct {
	FAQ      []FAQArticle      `yaml:"faq"`
	Commands []Command         `yaml:"commands"`
	Showcase []ShowcaseExample `yaml:"showcase"`
}

// Load reads and validates all content. With an empty Options.Dir the
// embedded content shipped with the binary is used.
func Load(opts Options) (*Store, error) {
	var fsys fs.FS
	include := opts.Include
	if opts.Dir == "" {
		sub, err := fs.Sub(builtin, "data")
		if err != nil {
			return nil, err
		}
		fsys = sub
		include = nil
	} else {
		info, err := os.Stat(opts.Dir)
		if err != nil {
			return nil, fmt.Errorf("accessing content dir %s: %w", opts.Dir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("content dir %s is not a directory", opts.Dir)
		}
		fsys = os.DirFS(opts.Dir)
	}
	return LoadFS(fsys, include)
}

// LoadFS reads every matching YAML file in fsys, in lexical path order, and
// merges them into one Store.
func LoadFS(fsys fs.FS, include []string) (*Store, error) {
	var merged bundle
	files := 0

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && shouldSkipDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if !matchesInclude(p, include) {
			return nil
		}
		b, err := decodeBundle(fsys, p)
		if err != nil {
			return err
		}
		merged.FAQ = append(merged.FAQ, b.FAQ...)
		merged.Commands = append(merged.Commands, b.Commands...)
		merged.Showcase = append(merged.Showcase, b.Showcase...)
		files++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading content: %w", err)
	}
	if files == 0 {
		return nil, errors.New("no content files found")
	}

	return build(merged)
}

func decodeBundle(fsys fs.FS, p string) (bundle, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return bundle{}, err
	}
	defer f.Close()

	var b bundle
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil {
		return bundle{}, fmt.Errorf("parsing %s: %w", p, err)
	}
	return b, nil
}

func build(b bundle) (*Store, error) {
	md := newMarkdown()

	faq := make([]Entry, 0, len(b.FAQ))
	for _, a := range b.FAQ {
		if strings.HasPrefix(a.ID, CommandPrefix) {
			return nil, fmt.Errorf("faq %q: id may not start with %q", a.ID, CommandPrefix)
		}
		e, err := a.entry(md)
		if err != nil {
			return nil, err
		}
		faq = append(faq, e)
	}

	commands := make([]Entry, 0, len(b.Commands))
	for _, c := range b.Commands {
		e, err := c.entry(md)
		if err != nil {
			return nil, err
		}
		commands = append(commands, e)
	}

	for i, ex := range b.Showcase {
		if ex.Command == "" || ex.Response.Title == "" {
			return nil, fmt.Errorf("showcase example %d: command and response title are required", i)
		}
	}

	s := &Store{Showcase: b.Showcase}
	var err error
	if s.FAQ, err = newCollection(KindFAQ, faq); err != nil {
		return nil, err
	}
	if s.Commands, err = newCollection(KindCommand, commands); err != nil {
		return nil, err
	}
	return s, nil
}

func (a FAQArticle) entry(md goldmark.Markdown) (Entry, error) {
	body, err := renderMarkdown(md, a.Content)
	if err != nil {
		return Entry{}, fmt.Errorf("faq %q: %w", a.ID, err)
	}
	return Entry{
		Kind:  KindFAQ,
		ID:    a.ID,
		Label: a.Title,
		HTML:  body,
		Text:  StripHTML(body),
	}, nil
}

func (c Command) entry(md goldmark.Markdown) (Entry, error) {
	body, err := renderMarkdown(md, c.Usage)
	if err != nil {
		return Entry{}, fmt.Errorf("command %q: %w", c.ID, err)
	}
	return Entry{
		Kind:        KindCommand,
		ID:          c.ID,
		Label:       c.Command,
		Description: c.Description,
		Permissions: c.Permissions,
		HTML:        body,
		Text:        StripHTML(body),
	}, nil
}
