// Package tests holds cross-package integration tests.
package tests

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/edgerelay/edgerelay-go/internal/admin"
	"github.com/edgerelay/edgerelay-go/internal/cli/connection"
	"github.com/edgerelay/edgerelay-go/internal/server/config"
	"github.com/edgerelay/edgerelay-go/internal/server/httpserver"
	"github.com/edgerelay/edgerelay-go/internal/server/localserver"
	"github.com/edgerelay/edgerelay-go/internal/stats"
	"github.com/edgerelay/edgerelay-go/internal/upstream"
)

// adminHarness wires the admin surface the way edgerelay-server does:
// policy, TCP listener, and local socket over the same handler.
type adminHarness struct {
	store    *stats.Store
	addr     string
	socket   string
	quits    chan struct{}
	shutdown func()
}

func startHarness(t *testing.T) *adminHarness {
	t.Helper()

	store := stats.NewStore()
	clusters := upstream.NewMemoryManager()
	clusters.Put(upstream.ClusterSnapshot{
		Name:  "backend",
		Hosts: []upstream.HostHealth{{Address: "10.0.0.1:8080", Healthy: true, Weight: 1}},
	})

	quits := make(chan struct{}, 1)
	adm := admin.New(admin.Options{
		Stats:    store,
		Clusters: clusters,
		Quit:     func() { quits <- struct{}{} },
	})

	handler := admin.NewPolicy(admin.PolicyConfig{Stats: store}, adm)

	cfg := config.Default().Admin
	srv := httpserver.New(cfg, handler)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	go srv.Serve(ln)

	socket := filepath.Join(t.TempDir(), "admin.sock")
	local := localserver.New(socket, adm)
	go local.ListenAndServe()

	// Wait for the socket to come up.
	deadline := time.Now().Add(2 * time.Second)
	for {
		if conn, err := net.Dial("unix", socket); err == nil {
			conn.Close()
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("local socket never came up")
		}
		time.Sleep(10 * time.Millisecond)
	}

	h := &adminHarness{
		store:  store,
		addr:   ln.Addr().String(),
		socket: socket,
		quits:  quits,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			srv.Shutdown(ctx)
			local.Shutdown(ctx)
		},
	}
	t.Cleanup(h.shutdown)
	return h
}

func (h *adminHarness) get(t *testing.T, pathAndQuery string) (int, string) {
	t.Helper()
	resp, err := http.Get("http://" + h.addr + pathAndQuery)
	if err != nil {
		t.Fatalf("GET %s: %v", pathAndQuery, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestAdminSurfaceOverTCP(t *testing.T) {
	h := startHarness(t)

	h.store.Counter("relay.rq_total").Add(11)
	h.store.Gauge("relay.active_connections").Set(2)

	status, body := h.get(t, "/server_info")
	if status != http.StatusOK {
		t.Fatalf("/server_info status = %d", status)
	}
	var info map[string]any
	if err := json.Unmarshal([]byte(body), &info); err != nil {
		t.Fatalf("/server_info not JSON: %v", err)
	}
	if info["state"] != "live" {
		t.Errorf("state = %v", info["state"])
	}

	status, body = h.get(t, "/stats")
	if status != http.StatusOK || !strings.Contains(body, "relay.rq_total: 11") {
		t.Errorf("/stats = %d %q", status, body)
	}

	status, body = h.get(t, "/stats/prometheus")
	if status != http.StatusOK || !strings.Contains(body, "edgerelay_relay_rq_total{} 11") {
		t.Errorf("/stats/prometheus = %d %q", status, body)
	}

	status, body = h.get(t, "/clusters")
	if status != http.StatusOK || !strings.Contains(body, "backend::10.0.0.1:8080::healthy::true") {
		t.Errorf("/clusters = %d %q", status, body)
	}

	// Reset zeroes counters but not gauges.
	h.get(t, "/reset_counters")
	_, body = h.get(t, "/stats")
	if !strings.Contains(body, "relay.rq_total: 0") || !strings.Contains(body, "relay.active_connections: 2") {
		t.Errorf("stats after reset: %q", body)
	}

	if status, _ := h.get(t, "/nonexistent"); status != http.StatusNotFound {
		t.Errorf("unknown path status = %d", status)
	}
}

func TestAdminSurfaceOverSocket(t *testing.T) {
	h := startHarness(t)

	c := connection.NewSocket(h.socket, 5*time.Second)
	body, err := c.Command(context.Background(), "/help")
	if err != nil {
		t.Fatalf("socket /help: %v", err)
	}
	if !strings.Contains(string(body), "/quitquitquit") {
		t.Errorf("help over socket = %q", string(body))
	}
}

func TestQuitReachesShutdown(t *testing.T) {
	h := startHarness(t)

	status, body := h.get(t, "/quitquitquit")
	if status != http.StatusOK || body != "OK\n" {
		t.Fatalf("/quitquitquit = %d %q", status, body)
	}

	select {
	case <-h.quits:
	case <-time.After(time.Second):
		t.Fatal("quit handler did not trigger shutdown")
	}
}

func TestAdminRequestCounters(t *testing.T) {
	h := startHarness(t)

	h.get(t, "/help")
	h.get(t, "/help")

	if v := h.store.Counter("admin.rq_total").Value(); v < 2 {
		t.Errorf("admin.rq_total = %d, want at least 2", v)
	}
}
