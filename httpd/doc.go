// Package httpd is a small HTTP/1.1 static file server built directly on
// a byte stream, aimed at learning, control, and embeddability.
//
// Highlights
//   - Request head parsed from raw lines: request line, header block with
//     obs-fold continuations and duplicate-name merging, strict failure
//     modes for malformed input.
//   - Resolver that confines every request target to a web root, with
//     directory redirect and index.html semantics.
//   - One request per connection, then Connection: close. The pipeline
//     holds no shared mutable state and is safe to run from concurrent
//     connection goroutines.
//   - Observability: plug-in Logger and Meter interfaces.
//
// Quick start:
//
//	s := &httpd.Server{Addr: ":8080", Root: "./www"}
//	if err := s.ListenAndServe(); err != nil { log.Fatal(err) }
package httpd
