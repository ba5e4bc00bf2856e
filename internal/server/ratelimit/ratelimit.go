// Package ratelimit budgets API requests per client with token buckets.
// Tailoring is generation-backed and gets a small hourly budget; the pure
// scoring endpoints refill fast; the health check is exempt.
package ratelimit

import (
	"math"
	"sync"
	"time"
)

// Info reports the outcome of one budget check. Limit 0 means the request
// was exempt from limiting, and callers should emit no rate headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// bucket tracks one client's remaining budget within a tier. Tokens refill
// lazily on access.
type bucket struct {
	tokens   float64
	lastSeen time.Time
}

// Limiter applies per-client token buckets, one bucket per (client, tier)
// pair so a client exhausting its tailoring budget can still score.
type Limiter struct {
	cfg      *Config
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once

	mu      sync.Mutex
	buckets map[string]*bucket
}

// NewLimiter creates a limiter for the given config and starts the idle
// bucket sweeper. Call Stop when done.
func NewLimiter(cfg *Config) *Limiter {
	if cfg == nil {
		cfg = LoadConfig()
	}
	l := &Limiter{
		cfg:     cfg,
		now:     time.Now,
		stop:    make(chan struct{}),
		buckets: make(map[string]*bucket),
	}
	if cfg.Enabled && cfg.SweepInterval > 0 {
		go l.sweep(cfg.SweepInterval)
	}
	return l
}

// Allow checks whether clientID may issue one more request to the given
// endpoint, debiting the matching bucket when it may.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.cfg.Enabled {
		return true, Info{Allowed: true}
	}
	tier, limited := l.cfg.TierFor(method, path)
	if !limited {
		return true, Info{Allowed: true}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	key := tier.Name + "|" + clientID
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: tier.capacity()}
		l.buckets[key] = b
	} else {
		elapsed := now.Sub(b.lastSeen).Seconds()
		b.tokens = math.Min(tier.capacity(), b.tokens+elapsed*tier.refillRate())
	}
	b.lastSeen = now

	info := Info{Limit: int(tier.capacity())}
	if b.tokens >= 1 {
		b.tokens--
		info.Allowed = true
	}
	info.Remaining = int(b.tokens)
	info.ResetTime = resetAt(now, tier, b.tokens)
	if !info.Allowed {
		if rate := tier.refillRate(); rate > 0 {
			info.RetryAfter = time.Duration((1 - b.tokens) / rate * float64(time.Second))
		}
	}
	return info.Allowed, info
}

// Stop terminates the background sweeper. Safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// sweep drops buckets idle for at least one interval; an idle bucket has
// refilled enough that recreating it fresh loses nothing material.
func (l *Limiter) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			cutoff := l.now().Add(-interval)
			l.mu.Lock()
			for key, b := range l.buckets {
				if b.lastSeen.Before(cutoff) {
					delete(l.buckets, key)
				}
			}
			l.mu.Unlock()
		}
	}
}

// capacity is the number of tokens a full bucket holds.
func (t Tier) capacity() float64 {
	if t.Burst > 0 {
		return float64(t.Burst)
	}
	return float64(t.Limit)
}

// refillRate is the steady token income in tokens per second.
func (t Tier) refillRate() float64 {
	if t.Window <= 0 {
		return 0
	}
	return float64(t.Limit) / t.Window.Seconds()
}

// resetAt is when the bucket would be full again at the steady refill rate.
func resetAt(now time.Time, tier Tier, tokens float64) time.Time {
	missing := tier.capacity() - tokens
	rate := tier.refillRate()
	if missing <= 0 || rate <= 0 {
		return now
	}
	return now.Add(time.Duration(missing / rate * float64(time.Second)))
}
