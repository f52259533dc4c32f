package httpd

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is an HTTP protocol version such as HTTP/1.1. The zero value is
// HTTP/0.0. Versions compare structurally.
type Version struct {
	Major int
	Minor int
}

// HTTP11 is the only version the server speaks.
var HTTP11 = Version{Major: 1, Minor: 1}

// ParseVersion parses a version token of the literal form "HTTP/<maj>.<min>".
// The prefix is case-sensitive and both components must be non-negative
// base-10 integers; anything else is ErrMalformedVersion.
func ParseVersion(s string) (Version, error) {
	rest, ok := strings.CutPrefix(s, "HTTP/")
	if !ok {
		return Version{}, ErrMalformedVersion
	}
	parts := strings.Split(rest, ".")
	if len(parts) != 2 {
		return Version{}, ErrMalformedVersion
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil || major < 0 {
		return Version{}, ErrMalformedVersion
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil || minor < 0 {
		return Version{}, ErrMalformedVersion
	}
	return Version{Major: major, Minor: minor}, nil
}

func (v Version) String() string {
	return fmt.Sprintf("HTTP/%d.%d", v.Major, v.Minor)
}
