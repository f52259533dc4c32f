package httpd

import (
	"errors"
	"strings"
	"testing"

	"dqx0.com/go/staticd/httpd/internal/http1"
)

func TestReadRequest(t *testing.T) {
	raw := "GET /a/b.html HTTP/1.1\r\nHost: localhost\r\nX-A: 1\r\nX-A: 2\r\n\r\n"
	req, err := ReadRequest(http1.NewReader(strings.NewReader(raw), 0))
	if err != nil {
		t.Fatalf("ReadRequest error: %v", err)
	}
	if req.Method != "GET" || req.Target != "/a/b.html" || req.Proto != HTTP11 {
		t.Fatalf("head = %q %q %v", req.Method, req.Target, req.Proto)
	}
	if got := req.Header.Get("Host"); got != "localhost" {
		t.Fatalf("Host=%q", got)
	}
	if got := req.Header.Get("X-A"); got != "1,2" {
		t.Fatalf("X-A=%q", got)
	}
}

func TestReadRequest_UnsupportedVersionStopsBeforeHeaders(t *testing.T) {
	// The header block of a non-1.1 request is deliberately left unread:
	// its framing cannot be assumed known. A malformed header line after
	// the request line must therefore not surface.
	raw := "GET / HTTP/1.0\r\nnot a header\r\n\r\n"
	r := http1.NewReader(strings.NewReader(raw), 0)
	_, err := ReadRequest(r)
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("err=%v, want ErrUnsupportedVersion", err)
	}
}

func TestReadRequest_MalformedVersion(t *testing.T) {
	raw := "GET / HTTP/1.1.1\r\n\r\n"
	_, err := ReadRequest(http1.NewReader(strings.NewReader(raw), 0))
	if !errors.Is(err, ErrMalformedVersion) {
		t.Fatalf("err=%v, want ErrMalformedVersion", err)
	}
}

func TestReadRequest_PeerGonePropagates(t *testing.T) {
	_, err := ReadRequest(http1.NewReader(strings.NewReader(""), 0))
	if !errors.Is(err, http1.ErrPeerGone) {
		t.Fatalf("err=%v, want ErrPeerGone", err)
	}
}
