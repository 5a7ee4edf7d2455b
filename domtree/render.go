package domtree

import (
	"bufio"
	"io"
	"strings"
)

// Serialize returns the document in the one-token-per-line grammar.
// A tree built from a well formed document serializes back to that document.
func (t *Tree) Serialize() string {
	var sb strings.Builder
	serialize(&sb, t.root)
	return sb.String()
}

func serialize(sb *strings.Builder, n *Node) {
	for ; n != nil; n = n.NextSibling {
		if n.Type == TextNode {
			sb.WriteString(n.Label)
			sb.WriteByte('\n')
			continue
		}
		sb.WriteString("<" + n.Label + ">\n")
		serialize(sb, n.FirstChild)
		sb.WriteString("</" + n.Label + ">\n")
	}
}

// Print writes an indented dump of the tree, one node per line.
func (t *Tree) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	t.print(bw, t.root, 1)
	return bw.Flush()
}

// The indentation string for one level
const levelIndent = "      "

func (t *Tree) print(w *bufio.Writer, n *Node, level int) {
	for ; n != nil; n = n.NextSibling {
		w.WriteString(strings.Repeat(levelIndent, level-1))
		if level > 1 {
			w.WriteString("|----")
		} else {
			w.WriteString("     ")
		}
		w.WriteString(n.Label)
		w.WriteByte('\n')
		if n.FirstChild != nil {
			t.print(w, n.FirstChild, level+1)
		}
	}
}
