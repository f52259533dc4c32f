package httpd

import (
	"dqx0.com/go/staticd/httpd/internal/http1"
)

// Response is one response, built by the resolver, finalized by the
// server (Connection and Date), rendered, then discarded.
type Response struct {
	Code   int
	Header Header
	Body   []byte
}

// NewResponse returns an empty response with the given status code.
func NewResponse(code int) *Response {
	return &Response{Code: code}
}

// StatusText returns the reason phrase for code. It panics for a code
// outside the fixed status set (200, 301, 400, 404, 405, 500, 505).
func StatusText(code int) string {
	return http1.StatusText(code)
}
