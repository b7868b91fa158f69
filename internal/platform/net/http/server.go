package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"sync"
	"time"

	"lunacycle/internal/platform/config"
	"lunacycle/internal/platform/logger"
	"lunacycle/internal/platform/net/listen"

	"github.com/go-chi/chi/v5"
	"golang.org/x/net/netutil"
)

// Defaults for the CORE_API_* knobs read by NewServer
const (
	DefaultPortAttempts  = 20
	DefaultMaxConns      = 32
	DefaultShutdownGrace = 10 * time.Second
)

// Server is a thin wrapper over chi + stdlib http.Server that owns its listener
type Server struct {
	lc       listen.Config
	maxConns int
	grace    time.Duration
	mux      *chi.Mux
	srv      *stdhttp.Server

	mu    sync.Mutex
	addr  string
	ready chan struct{}
}

// NewServer builds a server that will start binding at port.
// cfg is the service scope (e.g. CORE_API_) and supplies HOST, PORT_ATTEMPTS,
// MAX_CONNS and SHUTDOWN_GRACE. opts receive the *chi.Mux before any route exists
func NewServer(cfg config.Conf, port int, opts ...func(*chi.Mux)) *Server {
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		lc: listen.Config{
			Host:        cfg.MayString("HOST", ""),
			Port:        port,
			MaxAttempts: cfg.MayPositiveInt("PORT_ATTEMPTS", DefaultPortAttempts),
		},
		maxConns: cfg.MayPositiveInt("MAX_CONNS", DefaultMaxConns),
		grace:    cfg.MayDuration("SHUTDOWN_GRACE", DefaultShutdownGrace),
		mux:      m,
		srv: &stdhttp.Server{
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
		},
		ready: make(chan struct{}),
	}
}

// Router returns a Router facade over the internal chi mux
func (s *Server) Router() Router {
	return AdaptChi(s.mux)
}

// Addr returns the bound address, empty until Ready is closed
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Ready is closed once the listener is bound
func (s *Server) Ready() <-chan struct{} { return s.ready }

// Run binds the listener, serves at most maxConns connections at a time and
// blocks until ctx is cancelled or the server fails. Cancellation drains
// in-flight requests for up to the shutdown grace
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")

	l, err := listen.Bind(ctx, s.lc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.addr = l.Addr().String()
	s.mu.Unlock()
	close(s.ready)

	log.Info().
		Str("addr", s.addr).
		Int("port", listen.Port(l)).
		Int("max_conns", s.maxConns).
		Msg("http listening")

	errc := make(chan error, 1)
	go func() { errc <- s.srv.Serve(netutil.LimitListener(l, s.maxConns)) }()

	select {
	case err := <-errc:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("grace", s.grace).Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
