package domtree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiagramSource(t *testing.T) {
	tree := mustBuild(t, lines("<p>", "say \"hi\"", "<em>", "there", "</em>", "</p>"))

	want := strings.Join([]string{
		`n0: "p"`,
		`n1: "say \"hi\""`,
		`n1.shape: text`,
		`n0 -> n1`,
		`n2: "em"`,
		`n0 -> n2`,
		`n3: "there"`,
		`n3.shape: text`,
		`n2 -> n3`,
	}, "\n") + "\n"
	if diff := cmp.Diff(want, tree.DiagramSource()); diff != "" {
		t.Errorf("DiagramSource() mismatch (-want +got):\n%s", diff)
	}

	if got := New(nil).DiagramSource(); got != "" {
		t.Errorf("DiagramSource() of an empty tree = %q, want empty", got)
	}
}

func TestHighlight(t *testing.T) {
	src := lines("<table>", "<tr>", "</tr>", "</table>")

	var out bytes.Buffer
	if err := Highlight(&out, src, "monokai"); err != nil {
		t.Fatalf("Highlight() error = %v", err)
	}
	if !strings.Contains(out.String(), "table") {
		t.Errorf("Highlight() output %q does not contain the document", out.String())
	}
	if out.String() == src {
		t.Errorf("Highlight() did not colour the output")
	}
}
