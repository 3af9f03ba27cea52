package middleware

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const visitorIdleTimeout = 3 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitManager keeps one token bucket per client IP and evicts idle ones
// until its context is cancelled.
type RateLimitManager struct {
	requestsPerWindow int
	windowSeconds     int
	burst             int

	visitors   map[string]*visitor
	visitorsMu sync.Mutex

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRateLimitManager(ctx context.Context, requestsPerWindow, windowSeconds, burst int) *RateLimitManager {
	managerCtx, cancel := context.WithCancel(ctx)

	m := &RateLimitManager{
		requestsPerWindow: requestsPerWindow,
		windowSeconds:     windowSeconds,
		burst:             burst,
		visitors:          make(map[string]*visitor),
		ctx:               managerCtx,
		cancel:            cancel,
	}

	m.wg.Add(1)
	go m.cleanupLoop()

	return m
}

// GetVisitor retrieves or creates the limiter for ip. It returns nil when
// rate limiting is disabled.
func (m *RateLimitManager) GetVisitor(ip string) *rate.Limiter {
	if m == nil || m.requestsPerWindow <= 0 {
		return nil
	}

	m.visitorsMu.Lock()
	defer m.visitorsMu.Unlock()

	if v, exists := m.visitors[ip]; exists {
		v.lastSeen = time.Now()
		return v.limiter
	}

	windowSeconds := m.windowSeconds
	if windowSeconds <= 0 {
		windowSeconds = 60
	}

	burst := m.burst
	if burst < m.requestsPerWindow {
		burst = m.requestsPerWindow
	}

	limiter := rate.NewLimiter(rate.Limit(float64(m.requestsPerWindow)/float64(windowSeconds)), burst)
	m.visitors[ip] = &visitor{limiter: limiter, lastSeen: time.Now()}
	return limiter
}

func (m *RateLimitManager) cleanupLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.cleanup(time.Now())
		}
	}
}

func (m *RateLimitManager) cleanup(now time.Time) {
	m.visitorsMu.Lock()
	defer m.visitorsMu.Unlock()

	for ip, v := range m.visitors {
		if now.Sub(v.lastSeen) > visitorIdleTimeout {
			delete(m.visitors, ip)
		}
	}
}

// Shutdown stops the cleanup goroutine and waits for it to finish
func (m *RateLimitManager) Shutdown() {
	if m == nil {
		return
	}
	m.cancel()
	m.wg.Wait()
}
