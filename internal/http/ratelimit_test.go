package httpapi

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLimiter_AllowsUpToLimit(t *testing.T) {
	l := NewLimiter(3, time.Minute)

	require.True(t, l.Allow("1.2.3.4"))
	require.True(t, l.Allow("1.2.3.4"))
	require.True(t, l.Allow("1.2.3.4"))
	require.False(t, l.Allow("1.2.3.4"))

	// Other keys have their own windows.
	require.True(t, l.Allow("5.6.7.8"))
}

func TestLimiter_WindowReset(t *testing.T) {
	l := NewLimiter(1, time.Minute)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }

	require.True(t, l.Allow("1.2.3.4"))
	require.False(t, l.Allow("1.2.3.4"))

	clock = clock.Add(61 * time.Second)
	require.True(t, l.Allow("1.2.3.4"))
}

func TestLimiter_SweepsExpiredWindows(t *testing.T) {
	l := NewLimiter(1, time.Minute)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }

	require.True(t, l.Allow("1.2.3.4"))
	require.True(t, l.Allow("5.6.7.8"))
	require.Len(t, l.entries, 2)

	clock = clock.Add(2 * time.Minute)
	require.True(t, l.Allow("9.9.9.9"))
	require.Len(t, l.entries, 1)
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/users", nil)
	r.RemoteAddr = "10.0.0.1:54321"
	require.Equal(t, "10.0.0.1", clientIP(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	require.Equal(t, "203.0.113.7", clientIP(r))

	r.Header.Set("X-Real-IP", "198.51.100.2")
	require.Equal(t, "198.51.100.2", clientIP(r))
}
