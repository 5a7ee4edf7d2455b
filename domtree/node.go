package domtree

import (
	"strconv"
)

// A NodeType is the type of a Node.
type NodeType uint32

const (
	ErrorNode NodeType = iota
	ElementNode
	TextNode
)

// String returns a string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case ErrorNode:
		return "Error Node"
	case ElementNode:
		return "Element Node"
	case TextNode:
		return "Text Node"
	}
	return "Invalid Node (" + strconv.Itoa(int(t)) + ")"
}

// A Node is either an element, with a tag name in Label and its children
// reachable from FirstChild, or a leaf holding literal text in Label.
//
// Children form a singly linked list: FirstChild, then NextSibling until nil.
type Node struct {
	Type        NodeType
	Label       string
	FirstChild  *Node
	NextSibling *Node
}

// NewElement returns a detached element node.
func NewElement(tag string) *Node {
	return &Node{Type: ElementNode, Label: tag}
}

// NewText returns a detached text leaf.
func NewText(text string) *Node {
	return &Node{Type: TextNode, Label: text}
}

// IsElement reports whether n is an element with the given tag name.
func (n *Node) IsElement(tag string) bool {
	return n != nil && n.Type == ElementNode && n.Label == tag
}

// String returns a string representation of the Node.
func (n Node) String() string {
	switch n.Type {
	case ErrorNode:
		return "ErrorNode"
	case ElementNode:
		return "<" + n.Label + ">"
	case TextNode:
		return strconv.Quote(n.Label)
	}
	return "Invalid(" + strconv.Itoa(int(n.Type)) + ")"
}
