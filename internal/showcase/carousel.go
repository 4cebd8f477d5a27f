// Package showcase cycles through example bot commands in a mock chat: the
// command is typed out one character at a time and the bot's embed response
// appears after a short pause.
package showcase

import (
	"time"

	"go.uber.org/zap"

	"github.com/uchiverify/site/internal/content"
	"github.com/uchiverify/site/internal/timeline"
)

// Defaults for Options.
const (
	DefaultTypeInterval  = 80 * time.Millisecond
	DefaultResponsePause = 500 * time.Millisecond
)

// Direction of an advance.
type Direction int

const (
	Prev Direction = -1
	Next Direction = 1
)

// ParseDirection maps "next" and "prev" to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "next":
		return Next, true
	case "prev":
		return Prev, true
	}
	return 0, false
}

// Conversation is what the chat shows: the (partially) typed command and,
// once it has arrived, the bot response.
type Conversation struct {
	Index    int
	Command  string
	Response *content.Response
	// Animated is false for the initial, fully formed conversation.
	Animated bool
}

// Renderer receives the conversation after every change.
type Renderer interface {
	RenderConversation(c Conversation)
}

// Options configures a Carousel.
type Options struct {
	TypeInterval  time.Duration
	ResponsePause time.Duration
	Logger        *zap.Logger
}

// Carousel holds the current example and plays transitions between them.
// Advances requested while a transition is playing are dropped.
type Carousel struct {
	examples []content.ShowcaseExample
	runner   *timeline.Runner
	render   Renderer
	interval time.Duration
	pause    time.Duration
	log      *zap.Logger

	index int
	conv  Conversation
}

// New returns a carousel positioned on the first example.
func New(examples []content.ShowcaseExample, sched timeline.Scheduler, r Renderer, opts Options) *Carousel {
	c := &Carousel{
		examples: examples,
		runner:   timeline.NewRunner(sched),
		render:   r,
		interval: opts.TypeInterval,
		pause:    opts.ResponsePause,
		log:      opts.Logger,
	}
	if c.interval <= 0 {
		c.interval = DefaultTypeInterval
	}
	if c.pause <= 0 {
		c.pause = DefaultResponsePause
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	return c
}

// Len returns the number of examples.
func (c *Carousel) Len() int { return len(c.examples) }

// Index returns the current example.
func (c *Carousel) Index() int { return c.index }

// Animating reports whether a transition is playing.
func (c *Carousel) Animating() bool { return c.runner.Running() }

// Conversation returns what the chat currently shows.
func (c *Carousel) Conversation() Conversation { return c.conv }

// Init shows the first example without animation. It does nothing when there
// are no examples.
func (c *Carousel) Init() {
	c.runner.Cancel()
	if len(c.examples) == 0 {
		return
	}
	c.index = 0
	c.conv, _ = First(c.examples)
	c.render.RenderConversation(c.conv)
}

// First is the fully formed conversation of the first example.
func First(examples []content.ShowcaseExample) (Conversation, bool) {
	if len(examples) == 0 {
		return Conversation{}, false
	}
	resp := examples[0].Response
	return Conversation{Command: examples[0].Command, Response: &resp}, true
}

// Stop cancels a running transition and leaves the chat as it is.
func (c *Carousel) Stop() { c.runner.Cancel() }

// Next advances to the following example, wrapping at the end.
func (c *Carousel) Next() bool { return c.Advance(Next) }

// Prev goes back one example, wrapping at the start.
func (c *Carousel) Prev() bool { return c.Advance(Prev) }

// Advance moves one example in direction d and plays the transition. It
// returns false without doing anything while a transition is playing or when
// there are no examples.
func (c *Carousel) Advance(d Direction) bool {
	n := len(c.examples)
	if n == 0 || c.runner.Running() {
		return false
	}
	c.index = ((c.index+int(d))%n + n) % n
	c.log.Debug("showcase advance", zap.Int("index", c.index))
	c.runner.Play(c.script(c.index), nil)
	return true
}

// script clears the chat, types the command and then shows the response.
func (c *Carousel) script(index int) timeline.Script {
	ex := c.examples[index]
	cmd := []rune(ex.Command)
	steps := []timeline.Step{c.step(0, "clear", func(cv *Conversation) {
		*cv = Conversation{Index: index, Animated: true}
	})}
	for i := range cmd {
		typed := string(cmd[:i+1])
		steps = append(steps, c.step(time.Duration(i)*c.interval, "type", func(cv *Conversation) {
			cv.Command = typed
		}))
	}
	resp := ex.Response
	steps = append(steps, c.step(time.Duration(len(cmd))*c.interval+c.pause, "respond", func(cv *Conversation) {
		cv.Response = &resp
	}))
	return timeline.NewScript(steps...)
}

func (c *Carousel) step(at time.Duration, name string, apply func(*Conversation)) timeline.Step {
	return timeline.Step{At: at, Name: name, Do: func() {
		apply(&c.conv)
		c.render.RenderConversation(c.conv)
	}}
}
