package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/jaev1996/atria-fitness/internal/config"
)

func testCacheConfig() config.CacheConfig {
	return config.CacheConfig{
		Enabled:      true,
		Methods:      map[string]bool{http.MethodGet: true},
		TTL:          time.Minute,
		Prefix:       "atria:cache",
		MaxBodyBytes: 1 << 20,
	}
}

// routedContext builds an echo context the way the router would hand it to
// the middleware: concrete URL on the request, pattern on the context.
func routedContext(target, pattern string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath(pattern)
	return c
}

func TestCacheKeySeparatesRecordsOnParamRoutes(t *testing.T) {
	cfg := testCacheConfig()

	k1 := cacheKeyFrom(cfg, routedContext("/v1/students/1", "/v1/students/:id"))
	k2 := cacheKeyFrom(cfg, routedContext("/v1/students/2", "/v1/students/:id"))
	if k1 == k2 {
		t.Fatalf("students 1 and 2 share cache key %s", k1)
	}

	// Same query window for two instructors must not collide either.
	p1 := cacheKeyFrom(cfg, routedContext("/v1/instructors/i1/payroll?from=2025-03-01&to=2025-03-31", "/v1/instructors/:id/payroll"))
	p2 := cacheKeyFrom(cfg, routedContext("/v1/instructors/i2/payroll?from=2025-03-01&to=2025-03-31", "/v1/instructors/:id/payroll"))
	if p1 == p2 {
		t.Fatalf("payroll views for different instructors share cache key %s", p1)
	}
}

func TestCacheKeyStableAndQuerySensitive(t *testing.T) {
	cfg := testCacheConfig()

	a := cacheKeyFrom(cfg, routedContext("/v1/sessions?date=2025-03-10", "/v1/sessions"))
	b := cacheKeyFrom(cfg, routedContext("/v1/sessions?date=2025-03-10", "/v1/sessions"))
	if a != b {
		t.Fatalf("same request hashed to different keys: %s vs %s", a, b)
	}

	c := cacheKeyFrom(cfg, routedContext("/v1/sessions?date=2025-03-11", "/v1/sessions"))
	if a == c {
		t.Fatalf("different query strings share cache key %s", a)
	}

	if !strings.HasPrefix(a, cfg.Prefix+":") {
		t.Fatalf("key %s does not carry prefix %s", a, cfg.Prefix)
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{}
	hdr.Set("Content-Type", "application/json")
	body := []byte(`{"id":"1","name":"Juana Pérez"}`)

	raw, err := encodePayload(http.StatusOK, hdr, body)
	if err != nil {
		t.Fatalf("encodePayload: %v", err)
	}
	status, gotHdr, gotBody, ok := decodePayload(raw)
	if !ok {
		t.Fatal("decodePayload rejected a fresh payload")
	}
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if got := gotHdr.Get("Content-Type"); got != "application/json" {
		t.Fatalf("Content-Type = %q", got)
	}
	if string(gotBody) != string(body) {
		t.Fatalf("body = %q, want %q", gotBody, body)
	}
}

func TestDecodePayloadRejectsTruncated(t *testing.T) {
	raw, err := encodePayload(http.StatusOK, http.Header{"X-A": {"b"}}, []byte("abc"))
	if err != nil {
		t.Fatalf("encodePayload: %v", err)
	}
	for _, bad := range [][]byte{nil, raw[:3], raw[:7]} {
		if _, _, _, ok := decodePayload(bad); ok {
			t.Fatalf("decodePayload accepted %d truncated bytes", len(bad))
		}
	}
}

func TestCachePassThroughWhenDisabledOrNilClient(t *testing.T) {
	next := func(c echo.Context) error {
		return c.String(http.StatusOK, "live")
	}

	cases := []struct {
		name string
		cfg  config.CacheConfig
		rdb  *redis.Client
	}{
		{"nil client", testCacheConfig(), nil},
		{"disabled", config.CacheConfig{Enabled: false}, redis.NewClient(&redis.Options{Addr: "localhost:0"})},
	}
	for _, tc := range cases {
		mw := NewRedisCache(tc.cfg, tc.rdb)
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/v1/students", nil)
		rec := httptest.NewRecorder()
		if err := mw(next)(e.NewContext(req, rec)); err != nil {
			t.Fatalf("%s: middleware returned %v", tc.name, err)
		}
		if rec.Body.String() != "live" {
			t.Fatalf("%s: handler did not run, body %q", tc.name, rec.Body.String())
		}
		if got := rec.Header().Get("X-Cache"); got != "" {
			t.Fatalf("%s: pass-through set X-Cache %q", tc.name, got)
		}
	}
}

type fakeDeleter struct {
	failing map[string]bool
	calls   []string
}

func (f *fakeDeleter) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.calls = append(f.calls, keys...)
	if f.failing[keys[0]] {
		return redis.NewIntResult(0, errors.New("connection reset"))
	}
	return redis.NewIntResult(1, nil)
}

func TestDeleteKeysContinuesPastFailures(t *testing.T) {
	f := &fakeDeleter{failing: map[string]bool{"atria:cache:b": true}}
	keys := []string{"atria:cache:a", "atria:cache:b", "atria:cache:c"}

	deleted := deleteKeys(context.Background(), f, keys)
	if deleted != 2 {
		t.Fatalf("deleted = %d, want 2", deleted)
	}
	if len(f.calls) != 3 {
		t.Fatalf("sweep attempted %d keys, want all 3: %v", len(f.calls), f.calls)
	}
}
