package domtree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseOperation(t *testing.T) {
	tests := []struct {
		line    string
		want    Operation
		wantErr bool
	}{
		{line: "replace em b", want: Operation{Kind: OpReplace, Old: "em", New: "b"}},
		{line: "  bold   2 ", want: Operation{Kind: OpBold, Row: 2}},
		{line: "remove ol", want: Operation{Kind: OpRemove, Tag: "ol"}},
		{line: "WRAP cat em", want: Operation{Kind: OpWrap, Word: "cat", Tag: "em"}},
		{line: "", wantErr: true},
		{line: "replace em", wantErr: true},
		{line: "bold two", wantErr: true},
		{line: "bold 0", wantErr: true},
		{line: "remove table", wantErr: true},
		{line: "wrap cat", wantErr: true},
		{line: "shout loud", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseOperation(tt.line)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOperation() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrBadOperation) {
					t.Errorf("ParseOperation() error = %v, want %v", err, ErrBadOperation)
				}
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseOperation() mismatch (-want +got):\n%s", diff)
			}
			// The string form parses back to the same operation
			again, err := ParseOperation(got.String())
			if err != nil || again != got {
				t.Errorf("ParseOperation(%q) = %v, %v, want %v", got.String(), again, err, got)
			}
		})
	}
}

func TestApply(t *testing.T) {
	tree := mustBuild(t, lines("<html>", "<em>", "x", "</em>", "</html>"))

	n, err := tree.Apply(Operation{Kind: OpReplace, Old: "em", New: "b"})
	if err != nil || n != 1 {
		t.Fatalf("Apply(replace) = %d, %v, want 1, nil", n, err)
	}
	n, err = tree.Apply(Operation{Kind: OpRemove, Tag: "b"})
	if err != nil || n != 1 {
		t.Fatalf("Apply(remove) = %d, %v, want 1, nil", n, err)
	}
	if _, err := tree.Apply(Operation{Kind: OpKind(42)}); !errors.Is(err, ErrBadOperation) {
		t.Errorf("Apply(invalid) error = %v, want %v", err, ErrBadOperation)
	}

	want := lines("<html>", "x", "</html>")
	if diff := cmp.Diff(want, tree.Serialize()); diff != "" {
		t.Errorf("Serialize() mismatch (-want +got):\n%s", diff)
	}
}

const testScript = `
domtree:
  codeStyle: monokai
operations:
  - replace td th
  - wrap cat b
  - remove ul
`

func TestParseScript(t *testing.T) {
	script, err := ParseScript(testScript)
	if err != nil {
		t.Fatalf("ParseScript() error = %v", err)
	}

	if got := script.CodeStyle(); got != "monokai" {
		t.Errorf("CodeStyle() = %q, want %q", got, "monokai")
	}

	want := []Operation{
		{Kind: OpReplace, Old: "td", New: "th"},
		{Kind: OpWrap, Word: "cat", Tag: "b"},
		{Kind: OpRemove, Tag: "ul"},
	}
	if diff := cmp.Diff(want, script.Operations); diff != "" {
		t.Errorf("Operations mismatch (-want +got):\n%s", diff)
	}

	tree := mustBuild(t, lines("<table>", "<tr>", "<td>", "<ul>", "<li>", "a cat", "</li>", "</ul>", "</td>", "</tr>", "</table>"))
	if err := script.Run(tree); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	wantDoc := lines("<table>", "<tr>", "<th>", "<p>", "a ", "<b>", "cat", "</b>", "</p>", "</th>", "</tr>", "</table>")
	if diff := cmp.Diff(wantDoc, tree.Serialize()); diff != "" {
		t.Errorf("Serialize() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseScriptBadOperation(t *testing.T) {
	_, err := ParseScript("operations:\n  - bold first\n")
	if !errors.Is(err, ErrBadOperation) {
		t.Errorf("ParseScript() error = %v, want %v", err, ErrBadOperation)
	}
}

func TestNewScriptDefaults(t *testing.T) {
	script := NewScript()
	if got := script.CodeStyle(); got != "github" {
		t.Errorf("CodeStyle() = %q, want %q", got, "github")
	}
	if len(script.Operations) != 0 {
		t.Errorf("Operations = %v, want none", script.Operations)
	}
	if err := script.Run(mustBuild(t, lines("<p>", "</p>"))); err != nil {
		t.Errorf("Run() error = %v", err)
	}
}
