package http_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"lunacycle/internal/platform/config"
	phttp "lunacycle/internal/platform/net/http"
	"lunacycle/internal/platform/net/listen"

	"github.com/go-chi/chi/v5"
)

func waitReady(t *testing.T, srv *phttp.Server, done <-chan error) {
	t.Helper()
	select {
	case <-srv.Ready():
	case err := <-done:
		t.Fatalf("Run returned before ready: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("server never became ready")
	}
}

func TestServer_RunServesAndStopsOnCancel(t *testing.T) {
	t.Setenv("TSRV_HOST", "127.0.0.1")
	t.Setenv("TSRV_SHUTDOWN_GRACE", "2s")

	optCalled := false
	srv := phttp.NewServer(config.New().Prefix("TSRV_"), 0, func(*chi.Mux) { optCalled = true })
	if !optCalled {
		t.Fatalf("expected NewServer option to be called")
	}
	if srv.Addr() != "" {
		t.Fatalf("Addr before Run = %q", srv.Addr())
	}

	slow := make(chan struct{})
	r := srv.Router()
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "pong") })
	r.Get("/slow", func(w http.ResponseWriter, _ *http.Request) {
		close(slow)
		time.Sleep(150 * time.Millisecond)
		_, _ = io.WriteString(w, "done")
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	waitReady(t, srv, done)

	base := "http://" + srv.Addr()
	resp, err := http.Get(base + "/ping")
	if err != nil {
		t.Fatalf("GET /ping: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != 200 || string(body) != "pong" {
		t.Fatalf("GET /ping => %d %q", resp.StatusCode, body)
	}

	// cancel while a request is in flight; it must still complete
	slowBody := make(chan string, 1)
	go func() {
		resp, err := http.Get(base + "/slow")
		if err != nil {
			slowBody <- "err: " + err.Error()
			return
		}
		b, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		slowBody <- string(b)
	}()
	<-slow
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
	if got := <-slowBody; got != "done" {
		t.Fatalf("in-flight request = %q, want done", got)
	}
}

func TestServer_BindsSuccessorWhenPortBusy(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("occupy: %v", err)
	}
	defer busy.Close()
	taken := busy.Addr().(*net.TCPAddr).Port
	if taken+phttp.DefaultPortAttempts > listen.MaxPort {
		t.Skip("successor range runs past the top of the port space")
	}

	t.Setenv("TSRV2_HOST", "127.0.0.1")
	srv := phttp.NewServer(config.New().Prefix("TSRV2_"), taken)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	waitReady(t, srv, done)

	_, portStr, _ := net.SplitHostPort(srv.Addr())
	if port, _ := strconv.Atoi(portStr); port <= taken || port >= taken+phttp.DefaultPortAttempts {
		t.Fatalf("bound %s, want a successor of %d within %d attempts", srv.Addr(), taken, phttp.DefaultPortAttempts)
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestServer_ShutdownReturnsNil(t *testing.T) {
	t.Setenv("TSRV3_HOST", "127.0.0.1")
	srv := phttp.NewServer(config.New().Prefix("TSRV3_"), 0)

	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background()) }()
	waitReady(t, srv, done)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("Run after Shutdown = %v", err)
	}
}

func TestServer_Run_ReturnsBindError(t *testing.T) {
	t.Setenv("TSRV4_HOST", "192.0.2.1") // TEST-NET-1, never a local address
	srv := phttp.NewServer(config.New().Prefix("TSRV4_"), 8000)
	if err := srv.Run(context.Background()); err == nil {
		t.Fatalf("expected bind error")
	}
}
