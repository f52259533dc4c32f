package httpd

import "errors"

var (
	// ErrMalformedVersion reports a request-line version token that does
	// not have the literal HTTP/<maj>.<min> form.
	ErrMalformedVersion = errors.New("httpd: malformed http version")
	// ErrUnsupportedVersion reports a well-formed version other than
	// HTTP/1.1. The header block is left unparsed in that case and the
	// caller answers 505.
	ErrUnsupportedVersion = errors.New("httpd: http version not supported")
)
