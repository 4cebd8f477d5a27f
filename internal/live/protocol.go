package live

import (
	"github.com/uchiverify/site/internal/content"
	"github.com/uchiverify/site/internal/demo"
)

// Event types sent by the client.
const (
	EventLoad       = "load"
	EventPopState   = "popstate"
	EventSelect     = "select"
	EventSearch     = "search"
	EventResize     = "resize"
	EventTab        = "tab"
	EventVisibility = "visibility"
	EventReplay     = "replay"
	EventCarousel   = "carousel"
)

// Event is one message from the client.
type Event struct {
	Type      string       `json:"type"`
	Fragment  string       `json:"fragment,omitempty"`
	Width     int          `json:"width,omitempty"`
	Section   content.Kind `json:"section,omitempty"`
	ID        string       `json:"id,omitempty"`
	Query     string       `json:"query,omitempty"`
	Fraction  float64      `json:"fraction,omitempty"`
	Direction string       `json:"direction,omitempty"`
}

// Op names sent to the client.
const (
	OpList        = "list"
	OpDetail      = "detail"
	OpActive      = "active"
	OpHidden      = "hidden"
	OpPlaceholder = "placeholder"
	OpScroll      = "scroll"
	OpSection     = "section"
	OpPush        = "push"
	OpDemo        = "demo"
	OpCarousel    = "carousel"
	OpError       = "error"
)

// Op is one view operation. Ops produced while handling a single event are
// sent together as a JSON array.
type Op struct {
	Op       string       `json:"op"`
	Section  content.Kind `json:"section,omitempty"`
	ID       string       `json:"id,omitempty"`
	HTML     string       `json:"html,omitempty"`
	Hidden   bool         `json:"hidden,omitempty"`
	Show     bool         `json:"show,omitempty"`
	Text     string       `json:"text,omitempty"`
	Fragment string       `json:"fragment,omitempty"`
	Scene    *demo.Scene  `json:"scene,omitempty"`
	Message  string       `json:"message,omitempty"`
}
