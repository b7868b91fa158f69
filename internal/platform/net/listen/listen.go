// Package listen resolves the API port and binds it, walking to successor
// ports while the requested one is taken
package listen

import (
	"context"
	stderrs "errors"
	"net"
	"strconv"
	"strings"
	"syscall"

	"lunacycle/internal/platform/logger"
)

// MaxPort is the highest TCP port Bind will try
const MaxPort = 65535

// Config says where Bind should start and how far it may walk
type Config struct {
	Host        string // empty binds every interface
	Port        int    // first port tried, 0 asks the OS for any free port
	MaxAttempts int    // consecutive ports tried before falling back to 0
}

// listen is swapped in tests
var listen = func(ctx context.Context, addr string) (net.Listener, error) {
	var lc net.ListenConfig
	return lc.Listen(ctx, "tcp", addr)
}

// ResolvePort returns the first candidate that parses as a port in 1..65535,
// or def when none does. Candidates are ordered by precedence
func ResolvePort(def int, candidates ...string) int {
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		p, err := strconv.Atoi(c)
		if err != nil || p < 1 || p > MaxPort {
			logger.Named("listen").Warn().Str("value", c).Msg("ignoring invalid port")
			continue
		}
		return p
	}
	return def
}

// AddrInUse reports whether err means the port is already taken
func AddrInUse(err error) bool { return stderrs.Is(err, syscall.EADDRINUSE) }

// Bind listens on cfg.Port, walking upward one port at a time while the
// address is in use. Once MaxAttempts ports are exhausted it binds port 0.
// Any other listen error is returned as is
func Bind(ctx context.Context, cfg Config) (net.Listener, error) {
	log := logger.Named("listen")
	attempts := max(cfg.MaxAttempts, 1)

	if cfg.Port > 0 {
		for i := 0; i < attempts && cfg.Port+i <= MaxPort; i++ {
			port := cfg.Port + i
			l, err := listen(ctx, hostPort(cfg.Host, port))
			if err == nil {
				if i > 0 {
					log.Warn().Int("requested", cfg.Port).Int("port", port).Msg("requested port busy; bound successor")
				}
				return l, nil
			}
			if !AddrInUse(err) {
				return nil, err
			}
			log.Debug().Int("port", port).Msg("port in use")
		}
		log.Warn().Int("requested", cfg.Port).Int("attempts", attempts).Msg("no free port in range; asking the OS")
	}
	return listen(ctx, hostPort(cfg.Host, 0))
}

// Port reports the TCP port l is bound to, or 0 for non-TCP listeners
func Port(l net.Listener) int {
	if a, ok := l.Addr().(*net.TCPAddr); ok {
		return a.Port
	}
	return 0
}

func hostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
