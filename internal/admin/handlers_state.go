package admin

import (
	"bytes"
	"fmt"
	"net/http"

	"gopkg.in/yaml.v3"

	"github.com/edgerelay/edgerelay-go/internal/telemetry/logger"
)

func (a *Admin) handleConfigDump(q Query, headers http.Header, body *bytes.Buffer) int {
	dump, err := a.configDump.Dump()
	if err != nil {
		a.log.Error("config dump failed", "error", err)
		body.WriteString("internal error building config dump\n")
		return http.StatusInternalServerError
	}

	wrapped := map[string]any{"configs": dump}

	switch q.Get("format") {
	case "", "json":
		return a.writeJSON(headers, body, wrapped)

	case "yaml":
		data, err := yaml.Marshal(wrapped)
		if err != nil {
			a.log.Error("config dump yaml render failed", "error", err)
			body.WriteString("internal error building config dump\n")
			return http.StatusInternalServerError
		}
		headers.Set("Content-Type", "text/x-yaml; charset=utf-8")
		body.Write(data)
		return http.StatusOK

	default:
		body.WriteString("usage: /config_dump?format=<json|yaml>\n")
		return http.StatusBadRequest
	}
}

func (a *Admin) handleRuntime(q Query, headers http.Header, body *bytes.Buffer) int {
	entries := a.runtime.Snapshot()

	if q.Get("format") == "json" {
		return a.writeJSON(headers, body, map[string]any{"entries": entries})
	}

	for _, e := range entries {
		fmt.Fprintf(body, "%s: %s\n", e.Key, e.Value)
	}
	return http.StatusOK
}

// handleLogging gets or sets logger verbosity. With no parameters it
// lists the active loggers. ?level=<lvl> changes every logger;
// ?<name>=<lvl> changes one component. Changes across multiple keys
// are not atomic; last write wins.
func (a *Admin) handleLogging(q Query, headers http.Header, body *bytes.Buffer) int {
	for key, value := range q {
		lvl, err := logger.ParseLevel(value)
		if err != nil {
			fmt.Fprintf(body, "unknown log level %q\nusage: /logging?level=<level> or /logging?<name>=<level>\n", value)
			return http.StatusBadRequest
		}

		if key == "level" {
			logger.SetAllLevels(lvl)
			continue
		}
		if !logger.SetLevel(key, lvl) {
			fmt.Fprintf(body, "unknown logger %q\n", key)
			return http.StatusBadRequest
		}
	}

	body.WriteString("active loggers:\n")
	for _, cl := range logger.Levels() {
		fmt.Fprintf(body, "  %s: %s\n", cl.Name, cl.Level)
	}
	return http.StatusOK
}

func (a *Admin) handleHealthcheckFail(q Query, headers http.Header, body *bytes.Buffer) int {
	a.health.Fail()
	body.WriteString("OK\n")
	return http.StatusOK
}

func (a *Admin) handleHealthcheckOK(q Query, headers http.Header, body *bytes.Buffer) int {
	a.health.OK()
	body.WriteString("OK\n")
	return http.StatusOK
}

func (a *Admin) handleCPUProfiler(q Query, headers http.Header, body *bytes.Buffer) int {
	if a.profiler == nil {
		body.WriteString("profiling is not configured\n")
		return http.StatusInternalServerError
	}

	switch q.Get("enable") {
	case "y":
		if err := a.profiler.Start(); err != nil {
			a.log.Error("cpu profiler start failed", "error", err)
			fmt.Fprintf(body, "failed to start profiler: %v\n", err)
			return http.StatusInternalServerError
		}
		body.WriteString("OK\n")
		return http.StatusOK

	case "n":
		a.profiler.Stop()
		body.WriteString("OK\n")
		return http.StatusOK

	default:
		body.WriteString("usage: /cpuprofiler?enable=<y|n>\n")
		return http.StatusBadRequest
	}
}

func (a *Admin) handleQuit(q Query, headers http.Header, body *bytes.Buffer) int {
	a.log.Info("graceful shutdown requested via admin endpoint")
	a.quit()
	body.WriteString("OK\n")
	return http.StatusOK
}
