// Package live runs one server-side session per browser tab. The session
// owns the content browser, the demo sequencer and the showcase carousel for
// that tab and acts as their render target: every visual change becomes an
// Op sent over the tab's websocket.
//
// All session state is touched by a single goroutine. Client events, timer
// callbacks and writes are serialized through the session's event loop.
package live

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/uchiverify/site/internal/browser"
	"github.com/uchiverify/site/internal/content"
	"github.com/uchiverify/site/internal/demo"
	"github.com/uchiverify/site/internal/showcase"
	"github.com/uchiverify/site/internal/site"
	"github.com/uchiverify/site/internal/timeline"
)

// Conn is the part of a websocket connection a session needs.
type Conn interface {
	ReadJSON(v any) error
	WriteJSON(v any) error
	Close() error
}

// Options configures the components of every session.
type Options struct {
	Browser  browser.Options
	Demo     demo.Options
	Showcase showcase.Options
	Logger   *zap.Logger
}

// Session is the live state of one browser tab.
type Session struct {
	id      string
	created time.Time
	conn    Conn
	views   *site.Views
	log     *zap.Logger

	browser  *browser.Browser
	demo     *demo.Sequencer
	carousel *showcase.Carousel

	tasks     chan func()
	done      chan struct{}
	closeOnce sync.Once
	pending   []Op
}

// NewSession wires a session to conn. Nothing happens until Run.
func NewSession(conn Conn, store *content.Store, views *site.Views, opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		id:      uuid.NewString(),
		created: time.Now(),
		conn:    conn,
		views:   views,
		tasks:   make(chan func()),
		done:    make(chan struct{}),
	}
	s.log = log.With(zap.String("session", s.id))

	sched := timeline.NewLoopScheduler(s.post)

	bo := opts.Browser
	bo.Logger = s.log
	s.browser = browser.New(store, s, s, bo)

	do := opts.Demo
	do.Logger = s.log
	s.demo = demo.New(sched, s, do)

	so := opts.Showcase
	so.Logger = s.log
	s.carousel = showcase.New(store.Showcase, sched, s, so)
	return s
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Age returns how long the session has existed.
func (s *Session) Age() time.Duration { return time.Since(s.created) }

// incoming is one read from the connection. bad is set when the message
// could not be decoded; the connection is still usable.
type incoming struct {
	ev  Event
	bad error
}

// Run processes events until the connection fails, the client goes away or
// ctx is cancelled. A normal close by the client returns nil.
func (s *Session) Run(ctx context.Context) error {
	events := make(chan incoming)
	readErr := make(chan error, 1)
	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		readErr <- s.readLoop(events)
	}()
	defer func() {
		s.shutdown()
		<-readerDone
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		case in := <-events:
			if in.bad != nil {
				s.fail("invalid message format: %v", in.bad)
			} else {
				s.handle(in.ev)
			}
			s.flush()
		case f := <-s.tasks:
			f()
			s.flush()
		}
	}
}

// Close ends the session from outside the loop.
func (s *Session) Close() error {
	return s.conn.Close()
}

func (s *Session) readLoop(events chan<- incoming) error {
	for {
		var ev Event
		err := s.conn.ReadJSON(&ev)
		in := incoming{ev: ev}
		if err != nil {
			if !isDecodeError(err) {
				return err
			}
			in.bad = err
		}
		select {
		case events <- in:
		case <-s.done:
			return nil
		}
	}
}

func isDecodeError(err error) bool {
	var syntax *json.SyntaxError
	var typ *json.UnmarshalTypeError
	return errors.As(err, &syntax) || errors.As(err, &typ) || errors.Is(err, io.ErrUnexpectedEOF)
}

// post hands f to the event loop. It gives up once the session is over.
func (s *Session) post(f func()) {
	select {
	case s.tasks <- f:
	case <-s.done:
	}
}

func (s *Session) shutdown() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.demo.Stop()
		s.carousel.Stop()
		_ = s.conn.Close()
	})
}

func (s *Session) handle(ev Event) {
	s.log.Debug("event", zap.String("type", ev.Type))
	switch ev.Type {
	case EventLoad:
		s.browser.Load(ev.Fragment, ev.Width)
		s.carousel.Init()
		s.RenderDemo(s.demo.Scene())
	case EventPopState:
		s.browser.Navigate(ev.Fragment)
	case EventSelect:
		if !ev.Section.Valid() {
			s.fail("unknown section %q", ev.Section)
			return
		}
		s.browser.Select(ev.Section, ev.ID)
	case EventSearch:
		if !s.browser.Search(ev.Section, ev.Query) {
			s.fail("unknown section %q", ev.Section)
		}
	case EventResize:
		s.browser.Resize(ev.Width)
	case EventTab:
		if !s.browser.ShowSection(ev.Section) {
			s.fail("unknown section %q", ev.Section)
		}
	case EventVisibility:
		s.demo.Observe(ev.Fraction)
	case EventReplay:
		s.demo.Replay()
	case EventCarousel:
		d, ok := showcase.ParseDirection(ev.Direction)
		if !ok {
			s.fail("unknown direction %q", ev.Direction)
			return
		}
		s.carousel.Advance(d)
	default:
		s.fail("unknown event type %q", ev.Type)
	}
}

func (s *Session) emit(op Op) {
	s.pending = append(s.pending, op)
}

func (s *Session) fail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	s.log.Debug("client error", zap.String("message", msg))
	s.emit(Op{Op: OpError, Message: msg})
}

// flush sends the ops produced by one event or timer as a single message.
func (s *Session) flush() {
	if len(s.pending) == 0 {
		return
	}
	ops := s.pending
	s.pending = nil
	if err := s.conn.WriteJSON(ops); err != nil {
		s.log.Debug("websocket write", zap.Error(err))
		_ = s.conn.Close()
	}
}

func (s *Session) RenderList(kind content.Kind, items []browser.ListItem) {
	html, err := s.views.List(kind, items)
	if err != nil {
		s.renderError(err)
		return
	}
	s.emit(Op{Op: OpList, Section: kind, HTML: html})
}

func (s *Session) RenderDetail(kind content.Kind, d browser.Detail) {
	html, err := s.views.Detail(d)
	if err != nil {
		s.renderError(err)
		return
	}
	s.emit(Op{Op: OpDetail, Section: kind, HTML: html})
}

func (s *Session) SetActive(kind content.Kind, id string) {
	s.emit(Op{Op: OpActive, Section: kind, ID: id})
}

func (s *Session) SetHidden(kind content.Kind, id string, hidden bool) {
	s.emit(Op{Op: OpHidden, Section: kind, ID: id, Hidden: hidden})
}

func (s *Session) ShowPlaceholder(kind content.Kind, text string) {
	s.emit(Op{Op: OpPlaceholder, Section: kind, Show: true, Text: text})
}

func (s *Session) RemovePlaceholder(kind content.Kind) {
	s.emit(Op{Op: OpPlaceholder, Section: kind})
}

func (s *Session) ScrollIntoView(kind content.Kind) {
	s.emit(Op{Op: OpScroll, Section: kind})
}

func (s *Session) ShowSection(kind content.Kind) {
	s.emit(Op{Op: OpSection, Section: kind})
}

func (s *Session) PushFragment(fragment string) {
	s.emit(Op{Op: OpPush, Fragment: fragment})
}

func (s *Session) RenderDemo(scene demo.Scene) {
	s.emit(Op{Op: OpDemo, Scene: &scene})
}

func (s *Session) RenderConversation(c showcase.Conversation) {
	html, err := s.views.Conversation(c, "/")
	if err != nil {
		s.renderError(err)
		return
	}
	s.emit(Op{Op: OpCarousel, HTML: html})
}

func (s *Session) renderError(err error) {
	s.log.Error("render", zap.Error(err))
	s.emit(Op{Op: OpError, Message: "render failed"})
}
