package command

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/edgerelay/edgerelay-go/internal/admin"
	"github.com/edgerelay/edgerelay-go/internal/stats"
)

// runCLI runs the app against a live admin endpoint and returns what
// the command printed.
func runCLI(t *testing.T, store *stats.Store, args ...string) (string, error) {
	t.Helper()

	a := admin.New(admin.Options{Stats: store})
	srv := httptest.NewServer(a)
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	app := App()
	app.Writer = &out

	argv := append([]string{"edgerelay-cli", "--server", strings.TrimPrefix(srv.URL, "http://")}, args...)
	err := app.Run(argv)
	return out.String(), err
}

func TestStatsList(t *testing.T) {
	store := stats.NewStore()
	store.Counter("relay.rq_total").Add(3)

	out, err := runCLI(t, store, "stats", "list")
	if err != nil {
		t.Fatalf("stats list: %v", err)
	}
	if !strings.Contains(out, "relay.rq_total: 3") {
		t.Errorf("output = %q", out)
	}
}

func TestStatsListJSON(t *testing.T) {
	store := stats.NewStore()
	store.Counter("relay.rq_total").Add(3)

	out, err := runCLI(t, store, "-o", "json", "stats", "list")
	if err != nil {
		t.Fatalf("stats list -o json: %v", err)
	}
	if !strings.Contains(out, `"name": "relay.rq_total"`) {
		t.Errorf("json output = %q", out)
	}
}

func TestStatsPrometheus(t *testing.T) {
	store := stats.NewStore()
	store.Counter("relay.rq_total").Inc()

	out, err := runCLI(t, store, "stats", "prometheus")
	if err != nil {
		t.Fatalf("stats prometheus: %v", err)
	}
	if !strings.Contains(out, "# TYPE edgerelay_relay_rq_total counter") {
		t.Errorf("output = %q", out)
	}
}

func TestStatsReset(t *testing.T) {
	store := stats.NewStore()
	store.Counter("relay.rq_total").Add(5)

	if _, err := runCLI(t, store, "stats", "reset"); err != nil {
		t.Fatalf("stats reset: %v", err)
	}
	if v := store.Counter("relay.rq_total").Value(); v != 0 {
		t.Errorf("counter = %d after reset", v)
	}
}

func TestSystemInfo(t *testing.T) {
	out, err := runCLI(t, stats.NewStore(), "-o", "json", "system", "info")
	if err != nil {
		t.Fatalf("system info: %v", err)
	}
	if !strings.Contains(out, `"state"`) {
		t.Errorf("output = %q", out)
	}
}

func TestSystemHealthUsage(t *testing.T) {
	if _, err := runCLI(t, stats.NewStore(), "system", "health", "sideways"); err == nil {
		t.Error("bad health argument should fail")
	}
}

func TestLoggingSetBadLevel(t *testing.T) {
	_, err := runCLI(t, stats.NewStore(), "logging", "set", "shout")
	if err == nil {
		t.Fatal("bad level should surface the server's 400")
	}
	if !strings.Contains(err.Error(), "unknown log level") {
		t.Errorf("error = %v", err)
	}
}

func TestLoggingList(t *testing.T) {
	out, err := runCLI(t, stats.NewStore(), "logging", "list")
	if err != nil {
		t.Fatalf("logging list: %v", err)
	}
	if !strings.Contains(out, "active loggers:") {
		t.Errorf("output = %q", out)
	}
}

func TestStateConfigDumpYAML(t *testing.T) {
	out, err := runCLI(t, stats.NewStore(), "-o", "yaml", "state", "config-dump")
	if err != nil {
		t.Fatalf("state config-dump: %v", err)
	}
	if !strings.Contains(out, "configs:") {
		t.Errorf("yaml output = %q", out)
	}
}

func TestBadOutputFormat(t *testing.T) {
	if _, err := runCLI(t, stats.NewStore(), "-o", "xml", "stats", "list"); err == nil {
		t.Error("unknown output format should fail")
	}
}
