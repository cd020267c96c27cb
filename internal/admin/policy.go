package admin

import (
	"net"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/edgerelay/edgerelay-go/internal/stats"
	"github.com/edgerelay/edgerelay-go/pkg/cmap"
)

// Client-identity headers the admin listener never trusts from the
// wire. They are stripped before dispatch.
var strippedClientHeaders = []string{
	"X-Forwarded-Client-Cert",
	"X-Client-Cert",
	"X-Forwarded-For",
}

// PolicyConfig is the fixed connection policy of the admin listener.
type PolicyConfig struct {
	// RateLimit is requests per second per client address; zero
	// disables limiting. RateBurst is the burst allowance.
	RateLimit float64
	RateBurst int

	// Stats receives admin request counters when set.
	Stats *stats.Store
}

// Policy wraps the admin handler with the listener's connection
// policy: per-client rate limiting and client-cert header stripping.
// Route configuration and tracing are deliberately absent here; the
// admin surface never joins the data-path routing engine.
type Policy struct {
	next    http.Handler
	cfg     PolicyConfig
	clients *cmap.Map[*rate.Limiter]
}

// NewPolicy wraps next with the admin connection policy.
func NewPolicy(cfg PolicyConfig, next http.Handler) *Policy {
	return &Policy{
		next:    next,
		cfg:     cfg,
		clients: cmap.New[*rate.Limiter](),
	}
}

// ServeHTTP implements http.Handler.
func (p *Policy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if p.cfg.Stats != nil {
		p.cfg.Stats.Counter("admin.rq_total").Inc()
	}

	for _, h := range strippedClientHeaders {
		r.Header.Del(h)
	}

	if p.cfg.RateLimit > 0 && !p.allow(r.RemoteAddr) {
		if p.cfg.Stats != nil {
			p.cfg.Stats.Counter("admin.rq_rate_limited").Inc()
		}
		w.Header().Set("Content-Type", defaultContentType)
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("rate limit exceeded\n"))
		return
	}

	p.next.ServeHTTP(w, r)
}

func (p *Policy) allow(remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}

	limiter, _ := p.clients.GetOrSet(host, rate.NewLimiter(rate.Limit(p.cfg.RateLimit), p.cfg.RateBurst))
	return limiter.Allow()
}
