package content

import "errors"

// Kind identifies one of the two browsable sections of the site.
type Kind string

const (
	KindFAQ     Kind = "faq"
	KindCommand Kind = "commands"
)

// Valid reports whether k names a known section.
func (k Kind) Valid() bool {
	return k == KindFAQ || k == KindCommand
}

var (
	// ErrDuplicateID is returned when two records in one collection share an id.
	ErrDuplicateID = errors.New("duplicate entry id")
	// ErrInvalidID is returned for ids that are not lowercase slugs.
	ErrInvalidID = errors.New("id must be lowercase letters, digits and hyphens")
	// ErrNotFound is returned by lookups for ids that are not in a collection.
	ErrNotFound = errors.New("entry not found")
)

// FAQArticle is the authoring record for one FAQ article, as written in faq.yaml.
type FAQArticle struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

// Command is the authoring record for one bot command, as written in commands.yaml.
type Command struct {
	ID          string `yaml:"id"`
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
	Usage       string `yaml:"usage"`
	Permissions string `yaml:"permissions"`
}

// Entry is the normalized, render-ready form of a FAQ article or a command.
// Both variants share it so that list, detail and search code has one shape
// to deal with; Permissions is only ever set for commands.
type Entry struct {
	Kind        Kind   `json:"kind"`
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Permissions string `json:"permissions,omitempty"`
	HTML        string `json:"html"`
	// Text is HTML with all markup stripped, used for search matching.
	Text string `json:"-"`
}

// Field is one name/value row of a showcase response embed.
type Field struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

// Response is the bot reply shown for a showcase command.
type Response struct {
	Title       string  `yaml:"title" json:"title"`
	Description string  `yaml:"description" json:"description,omitempty"`
	Fields      []Field `yaml:"fields" json:"fields,omitempty"`
	Image       string  `yaml:"image" json:"image,omitempty"`
}

// ShowcaseExample is one command/response pair of the showcase carousel.
type ShowcaseExample struct {
	Command  string   `yaml:"command" json:"command"`
	Response Response `yaml:"response" json:"response"`
}
