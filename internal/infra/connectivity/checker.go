// Package connectivity answers the single question the resolution pipeline
// asks before going remote: is the network usable right now?
package connectivity

import (
	"net/http"
	"sync"
	"time"
)

// Checker is the connectivity oracle consulted before every remote call.
type Checker interface {
	IsOnline() bool
}

// Static is a fixed-answer checker, used in tests and for forced-offline
// runs.
type Static bool

func (s Static) IsOnline() bool { return bool(s) }

// Probe checks reachability of a well-known endpoint with a HEAD request
// and caches the answer for a short window so hot resolution paths do not
// stack probe requests.
type Probe struct {
	url      string
	interval time.Duration
	client   *http.Client

	mu        sync.Mutex
	online    bool
	lastCheck time.Time
}

// NewProbe creates a probe-based checker. interval bounds how often the
// endpoint is actually contacted.
func NewProbe(url string, interval time.Duration) *Probe {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Probe{
		url:      url,
		interval: interval,
		client: &http.Client{
			Timeout: 3 * time.Second,
		},
		online: true, // assume online until a probe says otherwise
	}
}

// IsOnline returns the cached probe answer, refreshing it when the window
// has elapsed. The HTTP request runs outside the lock; claiming the window
// first means concurrent callers keep getting the cached answer instead of
// queueing behind one slow probe.
func (p *Probe) IsOnline() bool {
	p.mu.Lock()
	if time.Since(p.lastCheck) < p.interval {
		online := p.online
		p.mu.Unlock()
		return online
	}
	p.lastCheck = time.Now()
	p.mu.Unlock()

	online := p.probe()
	p.mu.Lock()
	p.online = online
	p.mu.Unlock()
	return online
}

func (p *Probe) probe() bool {
	req, err := http.NewRequest(http.MethodHead, p.url, nil)
	if err != nil {
		return false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}
