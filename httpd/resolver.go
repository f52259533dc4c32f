package httpd

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
)

// FileStat is the subset of file metadata resolution needs.
type FileStat struct {
	IsDir bool
	Size  int64
}

// FileSystem is the filesystem collaborator: directory test, existence
// test and whole-file read, on paths already joined under the web root.
// Stat reports a missing path with an error matching fs.ErrNotExist.
type FileSystem interface {
	Stat(name string) (FileStat, error)
	ReadFile(name string) ([]byte, error)
}

// OSFileSystem serves straight from the host filesystem.
type OSFileSystem struct{}

func (OSFileSystem) Stat(name string) (FileStat, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return FileStat{}, err
	}
	return FileStat{IsDir: fi.IsDir(), Size: fi.Size()}, nil
}

func (OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Resolver maps request targets to files under Root. It holds no mutable
// state and is safe for concurrent use.
type Resolver struct {
	Root string
	// FS defaults to OSFileSystem.
	FS FileSystem
}

// Resolve maps method+target to a response. Not-found and
// method-not-allowed are ordinary outcomes, never errors; only an I/O
// fault on a path that was just stat'ed surfaces as a 500.
//
// Targets are confined to Root lexically: the target is stripped of its
// leading slash, cleaned, and rejected with a 404 before any filesystem
// access if the cleaned form is absolute or still climbs out with "..".
func (rs *Resolver) Resolve(method, target string) *Response {
	if method != "GET" && method != "HEAD" {
		resp := NewResponse(405)
		resp.Header.Set("Allow", "GET, HEAD")
		return resp
	}
	if !strings.HasPrefix(target, "/") {
		// Only absolute local targets are served.
		return NewResponse(404)
	}
	candidate := path.Clean(strings.TrimPrefix(target, "/"))
	if strings.HasPrefix(candidate, "/") || candidate == ".." || strings.HasPrefix(candidate, "../") {
		return NewResponse(404)
	}
	name := filepath.Join(rs.Root, filepath.FromSlash(candidate))

	fsys := rs.fsys()
	st, err := fsys.Stat(name)
	if err != nil {
		return statusForStatErr(err)
	}
	if st.IsDir {
		if !strings.HasSuffix(target, "/") {
			// Redirect to the canonical directory form.
			resp := NewResponse(301)
			resp.Header.Set("Location", target+"/")
			return resp
		}
		name = filepath.Join(name, "index.html")
		st, err = fsys.Stat(name)
		if err != nil {
			return statusForStatErr(err)
		}
		if st.IsDir {
			return NewResponse(404)
		}
	}

	resp := NewResponse(200)
	resp.Header.Set("Content-Type", contentType(name))
	if method == "HEAD" {
		// Content-Length advertises the size a GET body would have had;
		// the body itself is omitted. See DESIGN.md.
		resp.Header.Set("Content-Length", strconv.FormatInt(st.Size, 10))
		return resp
	}
	body, err := fsys.ReadFile(name)
	if err != nil {
		// The file vanished between Stat and read.
		return NewResponse(500)
	}
	resp.Body = body
	resp.Header.Set("Content-Length", strconv.Itoa(len(body)))
	return resp
}

func (rs *Resolver) fsys() FileSystem {
	if rs.FS != nil {
		return rs.FS
	}
	return OSFileSystem{}
}

func statusForStatErr(err error) *Response {
	if errors.Is(err, fs.ErrNotExist) {
		return NewResponse(404)
	}
	return NewResponse(500)
}

// contentType infers a type from the file name suffix alone. No charset,
// no sniffing, no MIME database.
func contentType(name string) string {
	switch {
	case strings.HasSuffix(name, ".html"):
		return "text/html"
	case strings.HasSuffix(name, ".css"):
		return "text/css"
	default:
		return "text/plain"
	}
}
