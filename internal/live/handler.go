package live

import (
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/uchiverify/site/internal/content"
	"github.com/uchiverify/site/internal/site"
)

// maxMessageSize bounds a single client event.
const maxMessageSize = 64 << 10

// Registry tracks open sessions so the server can close them on shutdown.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

func (r *Registry) add(s *Session) {
	r.mu.Lock()
	r.sessions[s.ID()] = s
	r.mu.Unlock()
}

func (r *Registry) remove(s *Session) {
	r.mu.Lock()
	delete(r.sessions, s.ID())
	r.mu.Unlock()
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// CloseAll closes every open session's connection. The sessions unregister
// themselves as their loops exit.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	open := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		open = append(open, s)
	}
	r.mu.Unlock()
	for _, s := range open {
		_ = s.Close()
	}
}

// HandlerOptions configures the websocket endpoint.
type HandlerOptions struct {
	Session Options
	// AllowAllOrigins accepts upgrades from any origin. Otherwise only
	// same-host origins are accepted.
	AllowAllOrigins bool
	Registry        *Registry
	Logger          *zap.Logger
}

// Handler upgrades requests to websockets and runs one session per
// connection.
type Handler struct {
	store    *content.Store
	views    *site.Views
	opts     Options
	upgrader websocket.Upgrader
	sessions *Registry
	log      *zap.Logger
}

// NewHandler returns the websocket endpoint.
func NewHandler(store *content.Store, views *site.Views, opts HandlerOptions) *Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = NewRegistry()
	}
	so := opts.Session
	if so.Logger == nil {
		so.Logger = log
	}
	allowAll := opts.AllowAllOrigins
	return &Handler{
		store: store,
		views: views,
		opts:  so,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return allowAll || sameOrigin(r)
			},
		},
		sessions: reg,
		log:      log,
	}
}

// Sessions returns the registry of open sessions.
func (h *Handler) Sessions() *Registry { return h.sessions }

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	conn.SetReadLimit(maxMessageSize)

	s := NewSession(conn, h.store, h.views, h.opts)
	h.sessions.add(s)
	defer h.sessions.remove(s)

	h.log.Info("session opened",
		zap.String("session", s.ID()),
		zap.String("remote", r.RemoteAddr))

	err = s.Run(r.Context())
	if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
		h.log.Warn("session ended", zap.String("session", s.ID()), zap.Error(err))
	}
	h.log.Info("session closed",
		zap.String("session", s.ID()),
		zap.Duration("age", s.Age()))
}

// sameOrigin accepts requests without an Origin header and those whose
// origin host matches the request host.
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}
