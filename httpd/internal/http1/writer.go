package http1

import (
	"bufio"
	"fmt"
	"strings"
)

// StatusText returns the reason phrase for the fixed status set this
// server produces. An unknown code is a programming error and panics.
func StatusText(code int) string {
	switch code {
	case 200:
		return "OK"
	case 301:
		return "Moved Permanently"
	case 400:
		return "Bad Request"
	case 404:
		return "Not Found"
	case 405:
		return "Method Not Allowed"
	case 500:
		return "Internal Server Error"
	case 505:
		return "HTTP Version Not Supported"
	}
	panic(fmt.Sprintf("http1: no reason phrase for status %d", code))
}

// WriteResponse renders a complete single-shot response: status line,
// headers in order, blank line, body. The buffered writer is flushed.
func WriteResponse(bw *bufio.Writer, code int, fields []Field, body []byte) error {
	if _, err := fmt.Fprintf(bw, "HTTP/1.1 %d %s\r\n", code, StatusText(code)); err != nil {
		return err
	}
	for _, f := range fields {
		if _, err := fmt.Fprintf(bw, "%s: %s\r\n", f.Name, sanitizeHeaderValue(f.Value)); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("\r\n"); err != nil {
		return err
	}
	if len(body) > 0 {
		if _, err := bw.Write(body); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func sanitizeHeaderValue(v string) string {
	if v == "" {
		return v
	}
	// Remove CR/LF and other control chars except HTAB
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c == '\r' || c == '\n' || c == 0x7f {
			continue
		}
		if c < 0x20 && c != '\t' {
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
