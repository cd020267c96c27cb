package admin

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/edgerelay/edgerelay-go/internal/telemetry/metric"
)

// prometheusContentType is the Prometheus text exposition format.
const prometheusContentType = "text/plain; version=0.0.4; charset=utf-8"

func (a *Admin) handleStats(q Query, headers http.Header, body *bytes.Buffer) int {
	snapshot := a.stats.Snapshot()

	switch q.Get("format") {
	case "":
		for _, s := range snapshot {
			fmt.Fprintf(body, "%s: %d\n", s.Name, s.Value)
		}
		return http.StatusOK

	case "json":
		data, err := metric.StatsAsJSON(snapshot)
		if err != nil {
			a.log.Error("stats json render failed", "error", err)
			body.WriteString("internal error\n")
			return http.StatusInternalServerError
		}
		headers.Set("Content-Type", "application/json")
		body.Write(data)
		body.WriteByte('\n')
		return http.StatusOK

	case "prometheus":
		return a.handleStatsPrometheus(q, headers, body)

	default:
		body.WriteString("usage: /stats?format=<json|prometheus>\n")
		return http.StatusBadRequest
	}
}

func (a *Admin) handleStatsPrometheus(q Query, headers http.Header, body *bytes.Buffer) int {
	headers.Set("Content-Type", prometheusContentType)

	if n := metric.StatsAsPrometheus(a.stats.Snapshot(), body); n == 0 {
		body.WriteString("# no metrics recorded\n")
	}
	return http.StatusOK
}

func (a *Admin) handleResetCounters(q Query, headers http.Header, body *bytes.Buffer) int {
	a.stats.ResetCounters()
	body.WriteString("OK\n")
	return http.StatusOK
}
