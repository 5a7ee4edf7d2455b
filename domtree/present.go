package domtree

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"oss.terrastruct.com/d2/d2graph"
	"oss.terrastruct.com/d2/d2layouts/d2dagrelayout"
	"oss.terrastruct.com/d2/d2lib"
	"oss.terrastruct.com/d2/d2renderers/d2svg"
	"oss.terrastruct.com/d2/d2themes/d2themescatalog"
	"oss.terrastruct.com/d2/lib/textmeasure"
)

// Highlight writes src to w coloured as HTML for a 256 colour terminal,
// using the named chroma style.
func Highlight(w io.Writer, src string, styleName string) error {
	l := lexers.Get("html")
	if l == nil {
		l = lexers.Fallback
	}
	l = chroma.Coalesce(l)

	s := styles.Get(styleName)
	f := formatters.Get("terminal256")

	it, err := l.Tokenise(nil, src)
	if err != nil {
		return fmt.Errorf("tokenising output: %w", err)
	}
	return f.Format(w, s, it)
}

// DiagramSource describes the tree in the D2 language: one shape per node
// and one connection from each element to each of its children.
func (t *Tree) DiagramSource() string {
	var buf bytes.Buffer
	if t.root == nil {
		return ""
	}

	ids := 0
	var walk func(n *Node, parent string)
	walk = func(n *Node, parent string) {
		for ; n != nil; n = n.NextSibling {
			id := "n" + strconv.Itoa(ids)
			ids++

			fmt.Fprintf(&buf, "%s: %s\n", id, strconv.Quote(n.Label))
			if n.Type == TextNode {
				fmt.Fprintf(&buf, "%s.shape: text\n", id)
			}
			if len(parent) > 0 {
				fmt.Fprintf(&buf, "%s -> %s\n", parent, id)
			}
			walk(n.FirstChild, id)
		}
	}
	walk(t.root, "")

	return buf.String()
}

// RenderDiagram lays out the tree with dagre and renders it as SVG.
func (t *Tree) RenderDiagram(ctx context.Context) ([]byte, error) {
	ruler, err := textmeasure.NewRuler()
	if err != nil {
		return nil, fmt.Errorf("creating text ruler: %w", err)
	}

	defaultLayout := func(ctx context.Context, g *d2graph.Graph) error {
		return d2dagrelayout.Layout(ctx, g, nil)
	}
	diagram, _, err := d2lib.Compile(ctx, t.DiagramSource(), &d2lib.CompileOptions{
		Layout: defaultLayout,
		Ruler:  ruler,
	})
	if err != nil {
		return nil, fmt.Errorf("compiling diagram: %w", err)
	}

	body, err := d2svg.Render(diagram, &d2svg.RenderOpts{
		Pad:     d2svg.DEFAULT_PADDING,
		ThemeID: d2themescatalog.NeutralDefault.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering diagram: %w", err)
	}

	t.log.Debugw("rendered diagram", "bytes", len(body))
	return body, nil
}
