package http1

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Parse failures. The server maps every one of them except ErrPeerGone to
// a 400 response.
var (
	ErrMalformedRequestLine = errors.New("http1: malformed request line")
	ErrMalformedHeaderLine  = errors.New("http1: malformed header line")
	ErrOrphanContinuation   = errors.New("http1: continuation before any header")
	ErrUnexpectedEOF        = errors.New("http1: unexpected end of stream")
	ErrLineTooLong          = errors.New("http1: line exceeds limit")

	// ErrPeerGone reports that the peer closed the connection before
	// sending a single byte. No response is owed.
	ErrPeerGone = errors.New("http1: peer closed connection")
)

// Field is one parsed header with continuation folding and duplicate-name
// merging already applied. Order matches the first appearance of each name
// on the wire; names keep their received case.
type Field struct {
	Name  string
	Value string
}

// LineReader yields decoded text lines with the terminator stripped.
// io.EOF is returned only at a clean line boundary; end of stream in the
// middle of a line is io.ErrUnexpectedEOF.
type LineReader interface {
	ReadLine() (string, error)
}

// Reader parses a request head from a line source.
type Reader struct {
	Lines LineReader

	read bool // at least one line consumed
}

// NewReader wraps r in a buffered line source. Lines longer than
// maxLineBytes fail with ErrLineTooLong; maxLineBytes <= 0 means no limit.
func NewReader(r io.Reader, maxLineBytes int) *Reader {
	return &Reader{Lines: &lineReader{br: bufio.NewReader(r), max: maxLineBytes}}
}

// ReadRequestLine consumes leading blank lines, then splits the first
// non-blank line on single spaces into method, target and version token.
// Exactly three fields are required. End of stream before any byte is
// ErrPeerGone; after that it is ErrUnexpectedEOF.
func (r *Reader) ReadRequestLine() (method, target, proto string, err error) {
	var line string
	for {
		line, err = r.readLine()
		if err != nil {
			return "", "", "", err
		}
		if strings.TrimSpace(line) != "" {
			break
		}
	}
	parts := strings.Split(line, " ")
	if len(parts) != 3 {
		return "", "", "", ErrMalformedRequestLine
	}
	return parts[0], parts[1], parts[2], nil
}

// ReadHeaderBlock reads lines until a blank line, which ends the block.
//
// A line starting with a space or tab folds into the most recently seen
// header, joined with a single space. Other lines split on the first
// colon; the value is whitespace-trimmed. A name seen before merges as
// old + "," + new with no added space, and the merged entry becomes the
// fold target for subsequent continuations. The comma/space asymmetry is
// observable wire behavior and is kept exactly.
func (r *Reader) ReadHeaderBlock() ([]Field, error) {
	var fields []Field
	index := make(map[string]int)
	last := -1
	for {
		line, err := r.readLine()
		if err != nil {
			return nil, err
		}
		if line == "" {
			return fields, nil
		}
		if line[0] == ' ' || line[0] == '\t' {
			if last < 0 {
				return nil, ErrOrphanContinuation
			}
			fields[last].Value += " " + strings.TrimSpace(line)
			continue
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, ErrMalformedHeaderLine
		}
		value = strings.TrimSpace(value)
		if i, ok := index[name]; ok {
			fields[i].Value += "," + value
			last = i
			continue
		}
		index[name] = len(fields)
		last = len(fields)
		fields = append(fields, Field{Name: name, Value: value})
	}
}

func (r *Reader) readLine() (string, error) {
	line, err := r.Lines.ReadLine()
	if err != nil {
		if err == io.EOF && !r.read {
			return "", ErrPeerGone
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return "", ErrUnexpectedEOF
		}
		return "", err
	}
	r.read = true
	return line, nil
}

// lineReader decodes LF-terminated lines, dropping CR bytes so both CRLF
// and bare LF terminators work.
type lineReader struct {
	br  *bufio.Reader
	max int
}

func (l *lineReader) ReadLine() (string, error) {
	var sb strings.Builder
	for {
		b, err := l.br.ReadByte()
		if err != nil {
			if err == io.EOF {
				if sb.Len() == 0 {
					return "", io.EOF
				}
				return "", io.ErrUnexpectedEOF
			}
			return "", err
		}
		if b == '\n' {
			break
		}
		if b != '\r' {
			sb.WriteByte(b)
		}
		if l.max > 0 && sb.Len() > l.max {
			return "", ErrLineTooLong
		}
	}
	return sb.String(), nil
}
