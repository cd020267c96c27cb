package admin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const homeHead = `<!DOCTYPE html>
<html>
<head><title>EdgeRelay Admin</title></head>
<body>
<h1>EdgeRelay Admin</h1>
<table border="1">
<tr><th>Command</th><th>Description</th></tr>
`

const homeFoot = `</table>
</body>
</html>
`

func (a *Admin) handleHome(q Query, headers http.Header, body *bytes.Buffer) int {
	headers.Set("Content-Type", "text/html; charset=utf-8")

	body.WriteString(homeHead)
	for _, e := range a.registry.sorted() {
		if e.Prefix == "/" {
			continue
		}
		fmt.Fprintf(body, "<tr><td><a href=%q>%s</a></td><td>%s</td></tr>\n",
			e.Prefix, e.Prefix, e.HelpText)
	}
	body.WriteString(homeFoot)
	return http.StatusOK
}

func (a *Admin) handleHelp(q Query, headers http.Header, body *bytes.Buffer) int {
	body.WriteString("admin commands are:\n")
	for _, e := range a.registry.sorted() {
		fmt.Fprintf(body, "  %s: %s\n", e.Prefix, e.HelpText)
	}
	return http.StatusOK
}

func (a *Admin) handleServerInfo(q Query, headers http.Header, body *bytes.Buffer) int {
	state := "live"
	if a.health.Failed() {
		state = "healthcheck_failed"
	}

	info := map[string]any{
		"version":             a.build.Version,
		"commit":              a.build.Commit,
		"go_version":          a.build.GoVersion,
		"state":               state,
		"run_id":              a.runID,
		"uptime_seconds":      int64(time.Since(a.startTime).Seconds()),
		"hot_restart_version": hotRestartVersion,
	}

	return a.writeJSON(headers, body, info)
}

func (a *Admin) handleListeners(q Query, headers http.Header, body *bytes.Buffer) int {
	listeners := a.listeners()

	if q.Get("format") == "json" {
		return a.writeJSON(headers, body, map[string]any{"listeners": listeners})
	}

	for _, l := range listeners {
		fmt.Fprintf(body, "%s::%s\n", l.Name, l.Addr)
	}
	return http.StatusOK
}

func (a *Admin) handleClusters(q Query, headers http.Header, body *bytes.Buffer) int {
	for _, c := range a.clusters.Clusters() {
		fmt.Fprintf(body, "%s::added_via_api::%t\n", c.Name, c.AddedViaAPI)

		if c.Outlier != nil {
			fmt.Fprintf(body, "%s::outlier::success_rate_average::%g\n",
				c.Name, c.Outlier.SuccessRateAverage)
			fmt.Fprintf(body, "%s::outlier::success_rate_ejection_threshold::%g\n",
				c.Name, c.Outlier.SuccessRateEjectionThresh)
		}

		for _, l := range c.CircuitLimits {
			fmt.Fprintf(body, "%s::%s::max_connections::%d\n", c.Name, l.Priority, l.MaxConnections)
			fmt.Fprintf(body, "%s::%s::max_pending_requests::%d\n", c.Name, l.Priority, l.MaxPendingRequests)
			fmt.Fprintf(body, "%s::%s::max_requests::%d\n", c.Name, l.Priority, l.MaxRequests)
			fmt.Fprintf(body, "%s::%s::max_retries::%d\n", c.Name, l.Priority, l.MaxRetries)
		}

		for _, h := range c.Hosts {
			fmt.Fprintf(body, "%s::%s::weight::%d\n", c.Name, h.Address, h.Weight)
			fmt.Fprintf(body, "%s::%s::healthy::%t\n", c.Name, h.Address, h.Healthy)
		}
	}
	return http.StatusOK
}

func (a *Admin) handleCerts(q Query, headers http.Header, body *bytes.Buffer) int {
	return a.writeJSON(headers, body, map[string]any{
		"certificates": a.certs.Snapshot(),
	})
}

// hotRestartVersion is what /hot_restart_version reports. EdgeRelay
// does not implement hot restart; the endpoint exists so orchestration
// probing it gets a stable answer instead of a 404.
const hotRestartVersion = "disabled"

func (a *Admin) handleHotRestartVersion(q Query, headers http.Header, body *bytes.Buffer) int {
	body.WriteString(hotRestartVersion + "\n")
	return http.StatusOK
}

// writeJSON marshals v into the response body with a JSON content
// type. Marshal failure becomes a 500.
func (a *Admin) writeJSON(headers http.Header, body *bytes.Buffer, v any) int {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		a.log.Error("admin response marshal failed", "error", err)
		body.Reset()
		body.WriteString("internal error\n")
		return http.StatusInternalServerError
	}

	headers.Set("Content-Type", "application/json")
	body.Write(data)
	body.WriteByte('\n')
	return http.StatusOK
}
