package domtree

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hesusruiz/domtree/sliceedit"
	"golang.org/x/net/html"
)

// maxLineSize is the longest line a ScannerSource accepts.
const maxLineSize = 1024 * 1024

// A LineSource delivers the document one line at a time.
// NextLine returns io.EOF when there are no more lines.
type LineSource interface {
	NextLine() (string, error)
}

// A named source is used to qualify syntax errors with a file name.
type namedSource interface {
	Name() string
}

// ScannerSource reads lines from a bufio.Scanner.
type ScannerSource struct {
	name       string
	s          *bufio.Scanner
	lineNumber int
}

// NewScannerSource returns a source reading lines from linescanner.
// name is for error messages only.
func NewScannerSource(name string, linescanner *bufio.Scanner) *ScannerSource {
	linescanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &ScannerSource{
		name: name,
		s:    linescanner,
	}
}

// NewBytesSource returns a source over src after normalising line endings.
func NewBytesSource(name string, src []byte) *ScannerSource {
	clean := sliceedit.Normalize(src)
	return NewScannerSource(name, bufio.NewScanner(bytes.NewReader(clean)))
}

// OpenFile reads the whole file into memory and returns a source over its lines.
func OpenFile(fileName string) (*ScannerSource, error) {
	src, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	return NewBytesSource(fileName, src), nil
}

// NextLine returns the next raw line, without its line terminator.
func (s *ScannerSource) NextLine() (string, error) {
	if s.s.Scan() {
		s.lineNumber++
		return s.s.Text(), nil
	}

	// Check if there were other errors apart from EOF
	if err := s.s.Err(); err != nil {
		return "", fmt.Errorf("reading %s after line %d: %w", s.name, s.lineNumber, err)
	}
	return "", io.EOF
}

// Name returns the name given to the source, normally the file name.
func (s *ScannerSource) Name() string {
	return s.name
}

var voidElements = []string{
	"area", "base", "br", "col", "embed", "hr", "img", "input", "link", "meta", "source", "track", "wbr",
}

// isVoidElement returns true if the tag is in the set of 'void' tags
func isVoidElement(tagName string) bool {
	for _, el := range voidElements {
		if tagName == el {
			return true
		}
	}
	return false
}

// HTMLSource converts ordinary HTML into the one-token-per-line grammar.
// Attributes are dropped, text is split on newlines and trimmed, and
// comments, doctypes, self-closing tags and void elements are skipped.
// A text line that would read as a tag keeps its entities escaped.
type HTMLSource struct {
	name    string
	z       *html.Tokenizer
	pending []string
	err     error
}

// NewHTMLSource returns a source tokenizing the HTML read from r.
func NewHTMLSource(name string, r io.Reader) *HTMLSource {
	return &HTMLSource{
		name: name,
		z:    html.NewTokenizer(r),
	}
}

// Name returns the name given to the source.
func (h *HTMLSource) Name() string {
	return h.name
}

// NextLine returns the next line of the converted document.
func (h *HTMLSource) NextLine() (string, error) {
	for len(h.pending) == 0 {
		if h.err != nil {
			return "", h.err
		}
		h.fill()
	}
	line := h.pending[0]
	h.pending = h.pending[1:]
	return line, nil
}

// fill consumes one HTML token, queueing zero or more lines.
func (h *HTMLSource) fill() {
	switch h.z.Next() {
	case html.ErrorToken:
		h.err = h.z.Err()
		if h.err == nil {
			h.err = io.EOF
		}
		if h.err != io.EOF {
			h.err = fmt.Errorf("tokenizing %s: %w", h.name, h.err)
		}

	case html.StartTagToken:
		name, _ := h.z.TagName()
		if isVoidElement(string(name)) {
			return
		}
		h.pending = append(h.pending, "<"+string(name)+">")

	case html.EndTagToken:
		name, _ := h.z.TagName()
		if isVoidElement(string(name)) {
			return
		}
		h.pending = append(h.pending, "</"+string(name)+">")

	case html.TextToken:
		for _, line := range strings.Split(string(h.z.Text()), "\n") {
			line = strings.TrimSpace(line)
			if len(line) == 0 {
				continue
			}
			// Unescaped text like "&lt;b&gt;" would read back as a tag
			if typ, _ := Classify(line); typ != TextToken {
				line = html.EscapeString(line)
			}
			h.pending = append(h.pending, line)
		}
	}
}
