package httpd

import (
	"bufio"
	"context"
	"errors"
	"net"
	"strconv"
	"sync"
	"time"

	"dqx0.com/go/staticd/httpd/internal/http1"
	"dqx0.com/go/staticd/internal/obs"
)

// Date headers carry an RFC-1123 timestamp pinned to GMT.
const dateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

// Server accepts connections and serves exactly one request on each
// before closing it. Every response carries Connection: close and a Date
// header. Connections are handled on their own goroutines; the pipeline
// underneath holds no shared mutable state.
type Server struct {
	Addr string
	// Root is the web root directory requests are confined to.
	Root string
	// FS overrides the filesystem collaborator. Defaults to OSFileSystem.
	FS FileSystem
	// ReadTimeout bounds reading the request head. Zero means no bound;
	// a stalled peer then holds its goroutine indefinitely.
	ReadTimeout time.Duration
	// MaxLineBytes bounds a single request head line. <= 0 uses 8 KiB.
	MaxLineBytes int

	Logger obs.Logger
	Meter  obs.Meter

	mu     sync.Mutex
	ln     net.Listener
	closed bool
	active sync.WaitGroup
}

func (s *Server) ListenAndServe() error {
	addr := s.Addr
	if addr == "" {
		addr = ":8080"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on l until l fails or Shutdown is called.
// After Shutdown it returns nil.
func (s *Server) Serve(l net.Listener) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = l.Close()
		return nil
	}
	s.ln = l
	s.mu.Unlock()
	defer l.Close()
	for {
		c, err := l.Accept()
		if err != nil {
			s.mu.Lock()
			closed := s.closed
			s.mu.Unlock()
			if closed {
				return nil
			}
			return err
		}
		s.active.Add(1)
		go func() {
			defer s.active.Done()
			s.serveConn(c)
		}()
	}
}

// Shutdown closes the listener and waits for in-flight connections,
// giving up when ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	ln := s.ln
	s.mu.Unlock()
	if ln != nil {
		_ = ln.Close()
	}
	done := make(chan struct{})
	go func() {
		s.active.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Server) serveConn(c net.Conn) {
	defer c.Close()
	start := time.Now()
	ctx := WithRequestID(context.Background(), newRequestID())

	if s.ReadTimeout > 0 {
		_ = c.SetReadDeadline(time.Now().Add(s.ReadTimeout))
	}

	r := http1.NewReader(c, s.lineLimit())
	req, err := ReadRequest(r)

	var resp *Response
	method, target := "-", "-"
	switch {
	case err == nil:
		method, target = req.Method, req.Target
		resp = s.respond(ctx, req)
	case errors.Is(err, http1.ErrPeerGone):
		// Nothing was sent; nothing is owed.
		return
	case errors.Is(err, ErrUnsupportedVersion):
		resp = NewResponse(505)
	default:
		s.logf(obs.Warn, "%s parse failure from %s: %v", requestID(ctx), c.RemoteAddr(), err)
		resp = NewResponse(400)
	}

	resp.Header.Set("Connection", "close")
	resp.Header.Set("Date", time.Now().UTC().Format(dateLayout))

	bw := bufio.NewWriter(c)
	fields := make([]http1.Field, 0, resp.Header.Len())
	for _, f := range resp.Header.Fields() {
		fields = append(fields, http1.Field{Name: f.Name, Value: f.Value})
	}
	if err := http1.WriteResponse(bw, resp.Code, fields, resp.Body); err != nil {
		s.logf(obs.Warn, "%s write to %s: %v", requestID(ctx), c.RemoteAddr(), err)
		return
	}

	status := strconv.Itoa(resp.Code)
	s.meter().Counter("httpd_requests_total", 1, obs.Label{Key: "status", Value: status})
	s.meter().Histogram("httpd_request_duration_seconds", time.Since(start).Seconds())
	s.logf(obs.Info, "%s %s %s -> %d %dB (%s)",
		requestID(ctx), method, target, resp.Code, len(resp.Body), c.RemoteAddr())
}

// respond runs the resolver, turning a panic into a best-effort 500 so a
// bug in resolution cannot take the process down with the connection.
func (s *Server) respond(ctx context.Context, req *Request) (resp *Response) {
	defer func() {
		if v := recover(); v != nil {
			s.logf(obs.Error, "%s panic serving %s %s: %v", requestID(ctx), req.Method, req.Target, v)
			resp = NewResponse(500)
		}
	}()
	rs := &Resolver{Root: s.Root, FS: s.FS}
	return rs.Resolve(req.Method, req.Target)
}

func (s *Server) lineLimit() int {
	if s.MaxLineBytes <= 0 {
		return 8 << 10
	}
	return s.MaxLineBytes
}

func (s *Server) logf(level obs.Level, format string, args ...interface{}) {
	if s.Logger == nil {
		return
	}
	s.Logger.Logf(level, format, args...)
}

func (s *Server) meter() obs.Meter {
	if s.Meter == nil {
		return obs.NopMeter{}
	}
	return s.Meter
}

func requestID(ctx context.Context) string {
	id, _ := RequestIDFrom(ctx)
	return id
}
