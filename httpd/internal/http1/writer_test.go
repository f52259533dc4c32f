package http1

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func render(t *testing.T, code int, fields []Field, body []byte) string {
	t.Helper()
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	if err := WriteResponse(bw, code, fields, body); err != nil {
		t.Fatalf("WriteResponse error: %v", err)
	}
	return buf.String()
}

func TestWriteResponse(t *testing.T) {
	got := render(t, 200, []Field{
		{Name: "Content-Type", Value: "text/html"},
		{Name: "Content-Length", Value: "5"},
	}, []byte("hello"))
	want := "HTTP/1.1 200 OK\r\nContent-Type: text/html\r\nContent-Length: 5\r\n\r\nhello"
	if got != want {
		t.Fatalf("rendered %q, want %q", got, want)
	}
}

func TestWriteResponse_EmptyBody(t *testing.T) {
	got := render(t, 404, nil, nil)
	want := "HTTP/1.1 404 Not Found\r\n\r\n"
	if got != want {
		t.Fatalf("rendered %q, want %q", got, want)
	}
}

func TestWriteResponse_HeaderOrder(t *testing.T) {
	got := render(t, 301, []Field{
		{Name: "Location", Value: "/dir/"},
		{Name: "Connection", Value: "close"},
	}, nil)
	if !strings.HasPrefix(got, "HTTP/1.1 301 Moved Permanently\r\nLocation: /dir/\r\nConnection: close\r\n") {
		t.Fatalf("rendered %q", got)
	}
}

func TestWriteResponse_SanitizesHeaderValues(t *testing.T) {
	got := render(t, 200, []Field{{Name: "X-A", Value: "a\r\nInjected: b"}}, nil)
	want := "HTTP/1.1 200 OK\r\nX-A: aInjected: b\r\n\r\n"
	if got != want {
		t.Fatalf("rendered %q, want %q", got, want)
	}
}

func TestStatusText(t *testing.T) {
	cases := map[int]string{
		200: "OK",
		301: "Moved Permanently",
		400: "Bad Request",
		404: "Not Found",
		405: "Method Not Allowed",
		500: "Internal Server Error",
		505: "HTTP Version Not Supported",
	}
	for code, want := range cases {
		if got := StatusText(code); got != want {
			t.Fatalf("StatusText(%d)=%q, want %q", code, got, want)
		}
	}
}

func TestStatusText_UnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown status code")
		}
	}()
	StatusText(418)
}
