package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func ipSeenBy(t *testing.T, trusted []string, remoteAddr string, headers map[string]string) string {
	t.Helper()

	var seen string
	handler := TrustedRealIP(trusted)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.RemoteAddr
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return seen
}

func TestTrustedRealIP_TrustedProxy(t *testing.T) {
	got := ipSeenBy(t, []string{"10.0.0.0/8"}, "10.1.2.3:4567",
		map[string]string{"X-Real-IP": "203.0.113.9"})
	if got != "203.0.113.9" {
		t.Errorf("RemoteAddr = %q, want %q", got, "203.0.113.9")
	}
}

func TestTrustedRealIP_ForwardedForChain(t *testing.T) {
	got := ipSeenBy(t, []string{"10.0.0.0/8"}, "10.1.2.3:4567",
		map[string]string{"X-Forwarded-For": "198.51.100.7, 10.1.2.3"})
	if got != "198.51.100.7" {
		t.Errorf("RemoteAddr = %q, want %q", got, "198.51.100.7")
	}
}

func TestTrustedRealIP_UntrustedSourceKeepsRemoteAddr(t *testing.T) {
	got := ipSeenBy(t, []string{"10.0.0.0/8"}, "192.0.2.5:1234",
		map[string]string{"X-Real-IP": "203.0.113.9"})
	if got != "192.0.2.5:1234" {
		t.Errorf("RemoteAddr = %q, want original %q", got, "192.0.2.5:1234")
	}
}

func TestTrustedRealIP_InvalidHeaderIgnored(t *testing.T) {
	got := ipSeenBy(t, []string{"10.0.0.0/8"}, "10.1.2.3:4567",
		map[string]string{"X-Real-IP": "not-an-ip"})
	if got != "10.1.2.3:4567" {
		t.Errorf("RemoteAddr = %q, want original %q", got, "10.1.2.3:4567")
	}
}

func TestTrustedRealIP_BareIPTrustEntry(t *testing.T) {
	got := ipSeenBy(t, []string{"127.0.0.1"}, "127.0.0.1:9999",
		map[string]string{"X-Real-IP": "203.0.113.9"})
	if got != "203.0.113.9" {
		t.Errorf("RemoteAddr = %q, want %q", got, "203.0.113.9")
	}
}
