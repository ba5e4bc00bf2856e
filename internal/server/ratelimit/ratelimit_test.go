package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig uses small budgets so exhaustion is cheap. SweepInterval 0
// keeps the sweeper goroutine out of the tests.
func testConfig() *Config {
	return &Config{
		Enabled: true,
		Tailor:  Tier{Name: "tailor", Limit: 2, Window: time.Hour, Burst: 2},
		Scoring: Tier{Name: "scoring", Limit: 60, Window: time.Minute, Burst: 3},
		Batch:   Tier{Name: "batch", Limit: 60, Window: time.Minute, Burst: 2},
		Default: Tier{Name: "default", Limit: 5, Window: time.Minute},
	}
}

// frozenLimiter pins the limiter clock so refill is driven by the test.
func frozenLimiter(cfg *Config) (*Limiter, *time.Time) {
	l := NewLimiter(cfg)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }
	return l, &clock
}

func TestAllowWithinBurst(t *testing.T) {
	l, _ := frozenLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		allowed, info := l.Allow("client-a", "/tailor", "POST")
		require.True(t, allowed, "request %d should fit the burst", i+1)
		assert.Equal(t, 2, info.Limit)
	}

	allowed, info := l.Allow("client-a", "/tailor", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestRefillRestoresBudget(t *testing.T) {
	l, clock := frozenLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		l.Allow("client-a", "/tailor", "POST")
	}
	allowed, _ := l.Allow("client-a", "/tailor", "POST")
	require.False(t, allowed)

	// 2 per hour refills one token every 30 minutes.
	*clock = clock.Add(31 * time.Minute)
	allowed, info := l.Allow("client-a", "/tailor", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 0, info.Remaining)
}

func TestScoringEndpointsShareBucket(t *testing.T) {
	l, _ := frozenLimiter(testConfig())
	defer l.Stop()

	paths := []string{"/analyze", "/arbitrate", "/analyze"}
	for _, path := range paths {
		allowed, _ := l.Allow("client-a", path, "POST")
		require.True(t, allowed)
	}

	// Burst of 3 is spent regardless of which scoring endpoint spent it.
	allowed, _ := l.Allow("client-a", "/arbitrate", "POST")
	assert.False(t, allowed)
}

func TestTiersIsolated(t *testing.T) {
	l, _ := frozenLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		l.Allow("client-a", "/tailor", "POST")
	}
	allowed, _ := l.Allow("client-a", "/tailor", "POST")
	require.False(t, allowed, "tailor budget should be exhausted")

	allowed, _ = l.Allow("client-a", "/analyze", "POST")
	assert.True(t, allowed, "scoring budget is separate from tailoring")

	allowed, _ = l.Allow("client-a", "/batch", "POST")
	assert.True(t, allowed, "batch budget is separate from tailoring")
}

func TestClientsIsolated(t *testing.T) {
	l, _ := frozenLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		l.Allow("client-a", "/tailor", "POST")
	}
	allowed, _ := l.Allow("client-a", "/tailor", "POST")
	require.False(t, allowed)

	allowed, _ = l.Allow("client-b", "/tailor", "POST")
	assert.True(t, allowed, "one client's exhaustion must not starve another")
}

func TestHealthCheckExempt(t *testing.T) {
	l, _ := frozenLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, info := l.Allow("client-a", "/health", "GET")
		require.True(t, allowed)
		assert.Equal(t, 0, info.Limit, "exempt requests carry no limit")
	}
}

func TestDefaultTierCoversReads(t *testing.T) {
	l, _ := frozenLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 5; i++ {
		allowed, info := l.Allow("client-a", "/profiles", "GET")
		require.True(t, allowed)
		assert.Equal(t, 5, info.Limit)
	}
	allowed, _ := l.Allow("client-a", "/profiles", "GET")
	assert.False(t, allowed)
}

func TestDisabledPassesEverything(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 50; i++ {
		allowed, info := l.Allow("client-a", "/tailor", "POST")
		require.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestRetryAfterMatchesRefillRate(t *testing.T) {
	l, _ := frozenLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		l.Allow("client-a", "/tailor", "POST")
	}
	allowed, info := l.Allow("client-a", "/tailor", "POST")
	require.False(t, allowed)

	// Next token arrives in 30 minutes at 2 per hour.
	assert.InDelta(t, (30 * time.Minute).Seconds(), info.RetryAfter.Seconds(), 1.0)
	assert.False(t, info.ResetTime.Before(l.now()))
}

func TestStopIsIdempotent(t *testing.T) {
	cfg := testConfig()
	cfg.SweepInterval = time.Millisecond
	l := NewLimiter(cfg)
	l.Stop()
	l.Stop()
}

func TestTierFor(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name    string
		method  string
		path    string
		tier    string
		limited bool
	}{
		{name: "tailor", method: "POST", path: "/tailor", tier: "tailor", limited: true},
		{name: "analyze", method: "POST", path: "/analyze", tier: "scoring", limited: true},
		{name: "arbitrate", method: "POST", path: "/arbitrate", tier: "scoring", limited: true},
		{name: "batch", method: "POST", path: "/batch", tier: "batch", limited: true},
		{name: "profiles", method: "GET", path: "/profiles", tier: "default", limited: true},
		{name: "unknown post", method: "POST", path: "/nope", tier: "default", limited: true},
		{name: "health", method: "GET", path: "/health", limited: false},
		{name: "health post is limited", method: "POST", path: "/health", tier: "default", limited: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, limited := cfg.TierFor(tt.method, tt.path)
			assert.Equal(t, tt.limited, limited)
			if tt.limited {
				assert.Equal(t, tt.tier, tier.Name)
			}
		})
	}
}
