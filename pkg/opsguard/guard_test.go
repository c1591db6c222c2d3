package opsguard

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(g *Guard, remoteAddr string, header http.Header) int {
	req := httptest.NewRequest("GET", "/metrics", nil)
	req.RemoteAddr = remoteAddr
	if header != nil {
		req.Header = header
	}
	rec := httptest.NewRecorder()
	g.Wrap(okHandler()).ServeHTTP(rec, req)
	return rec.Code
}

func TestGuardDisabledPassesThrough(t *testing.T) {
	t.Setenv("OPS_GUARD_ENABLE", "")
	g := NewFromEnv(testLogger())
	if code := doRequest(g, "203.0.113.9:4000", nil); code != http.StatusOK {
		t.Errorf("code = %d, want 200", code)
	}
}

func TestGuardAllowsLocalByDefault(t *testing.T) {
	t.Setenv("OPS_GUARD_ENABLE", "true")
	g := NewFromEnv(testLogger())
	if code := doRequest(g, "127.0.0.1:5000", nil); code != http.StatusOK {
		t.Errorf("local code = %d, want 200", code)
	}
	if code := doRequest(g, "203.0.113.9:4000", nil); code != http.StatusForbidden {
		t.Errorf("remote code = %d, want 403", code)
	}
}

func TestGuardAllowList(t *testing.T) {
	t.Setenv("OPS_GUARD_ENABLE", "true")
	t.Setenv("OPS_ALLOW_IPS", "203.0.113.9, 198.51.100.7")
	t.Setenv("OPS_ALLOW_LOCAL", "false")
	g := NewFromEnv(testLogger())

	if code := doRequest(g, "203.0.113.9:4000", nil); code != http.StatusOK {
		t.Errorf("allowed ip code = %d, want 200", code)
	}
	if code := doRequest(g, "127.0.0.1:5000", nil); code != http.StatusForbidden {
		t.Errorf("local code = %d, want 403 with OPS_ALLOW_LOCAL=false", code)
	}
}

func TestGuardCIDR(t *testing.T) {
	t.Setenv("OPS_GUARD_ENABLE", "true")
	t.Setenv("OPS_ALLOW_CIDRS", "10.0.0.0/8")
	t.Setenv("OPS_ALLOW_LOCAL", "false")
	g := NewFromEnv(testLogger())

	if code := doRequest(g, "10.42.1.1:9000", nil); code != http.StatusOK {
		t.Errorf("in-cidr code = %d, want 200", code)
	}
	if code := doRequest(g, "11.0.0.1:9000", nil); code != http.StatusForbidden {
		t.Errorf("out-of-cidr code = %d, want 403", code)
	}
}

func TestGuardRealIPHeader(t *testing.T) {
	t.Setenv("OPS_GUARD_ENABLE", "true")
	t.Setenv("OPS_ALLOW_IPS", "198.51.100.7")
	t.Setenv("OPS_ALLOW_LOCAL", "false")
	t.Setenv("OPS_REAL_IP_HEADER", "X-Forwarded-For")
	g := NewFromEnv(testLogger())

	h := http.Header{}
	h.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	if code := doRequest(g, "203.0.113.9:4000", h); code != http.StatusOK {
		t.Errorf("header ip code = %d, want 200", code)
	}
}
