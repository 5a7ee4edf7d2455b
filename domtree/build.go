package domtree

import (
	"errors"
	"io"

	"go.uber.org/zap"
)

// A TokenType is the type of an input line.
type TokenType uint32

const (
	// TextToken means a line of literal text.
	TextToken TokenType = iota
	// A StartTagToken looks like <a>.
	StartTagToken
	// An EndTagToken looks like </a>.
	EndTagToken
)

// Classify returns the type of a line and, for tags, the bare tag name.
// For text lines the data is the line itself.
func Classify(line string) (TokenType, string) {
	if len(line) < 2 || line[0] != '<' || line[len(line)-1] != '>' {
		return TextToken, line
	}
	if line[1] == '/' {
		return EndTagToken, line[2 : len(line)-1]
	}
	return StartTagToken, line[1 : len(line)-1]
}

// Tree is a document held as a first-child / next-sibling tree.
// A Tree is not safe for concurrent use.
type Tree struct {
	root *Node
	log  *zap.SugaredLogger
}

// New returns a tree with the given root, which may be nil.
func New(root *Node) *Tree {
	return &Tree{
		root: root,
		log:  zap.NewNop().Sugar(),
	}
}

// Root returns the outermost element.
func (t *Tree) Root() *Node {
	return t.root
}

// SetLogger sets the logger used to trace the operations applied to the tree.
func (t *Tree) SetLogger(logger *zap.SugaredLogger) {
	t.log = logger
}

// An open element during construction. last caches the tail of the child
// list so appending is O(1).
type frame struct {
	node *Node
	last *Node
}

// Build reads lines from src until the element opened by the first line is closed.
// Lines after that closing tag are not read.
func Build(src LineSource) (*Tree, error) {
	var fileName string
	if ns, ok := src.(namedSource); ok {
		fileName = ns.Name()
	}

	lineNumber := 0
	malformed := func(msg string) error {
		return &SyntaxError{Filename: fileName, Line: lineNumber, Msg: msg}
	}

	line, err := src.NextLine()
	if errors.Is(err, io.EOF) {
		return nil, malformed("empty document")
	}
	if err != nil {
		return nil, err
	}
	lineNumber++

	typ, data := Classify(line)
	if typ != StartTagToken {
		return nil, malformed("document must start with an opening tag, found " + line)
	}

	root := NewElement(data)
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		line, err = src.NextLine()
		if errors.Is(err, io.EOF) {
			return nil, malformed("unexpected end of document, <" + stack[len(stack)-1].node.Label + "> not closed")
		}
		if err != nil {
			return nil, err
		}
		lineNumber++

		typ, data = Classify(line)
		if typ == EndTagToken {
			stack = stack[:len(stack)-1]
			continue
		}

		var n *Node
		if typ == StartTagToken {
			n = NewElement(data)
		} else {
			n = NewText(data)
		}

		// Append as the last child of the currently open element
		top := &stack[len(stack)-1]
		if top.last == nil {
			top.node.FirstChild = n
		} else {
			top.last.NextSibling = n
		}
		top.last = n

		if typ == StartTagToken {
			stack = append(stack, frame{node: n})
		}
	}

	return New(root), nil
}

// BuildFromBytes builds a tree from a document held in memory.
// fileName is for error messages only.
func BuildFromBytes(fileName string, src []byte) (*Tree, error) {
	return Build(NewBytesSource(fileName, src))
}

// BuildFromFile reads and builds the tree for a document in the line grammar.
func BuildFromFile(fileName string) (*Tree, error) {
	src, err := OpenFile(fileName)
	if err != nil {
		return nil, err
	}
	return Build(src)
}
