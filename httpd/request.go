package httpd

import (
	"dqx0.com/go/staticd/httpd/internal/http1"
)

// Request is one parsed request head. It is built once per connection
// and never mutated afterwards.
type Request struct {
	Method string
	// Target is the raw request target as received, with no decoding or
	// normalization applied.
	Target string
	Proto  Version
	Header Header
}

// ReadRequest parses a request head from r.
//
// The header block is parsed only when the version is exactly HTTP/1.1;
// for any other well-formed version the header framing cannot be assumed
// known, so parsing stops at the request line and ErrUnsupportedVersion
// is returned for the caller to answer with a 505.
func ReadRequest(r *http1.Reader) (*Request, error) {
	method, target, proto, err := r.ReadRequestLine()
	if err != nil {
		return nil, err
	}
	ver, err := ParseVersion(proto)
	if err != nil {
		return nil, err
	}
	if ver != HTTP11 {
		return nil, ErrUnsupportedVersion
	}
	fields, err := r.ReadHeaderBlock()
	if err != nil {
		return nil, err
	}
	req := &Request{Method: method, Target: target, Proto: ver}
	for _, f := range fields {
		req.Header.Set(f.Name, f.Value)
	}
	return req, nil
}
