package domtree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hesusruiz/vcutils/yaml"
)

// An OpKind identifies one of the tree mutations.
type OpKind uint32

const (
	OpReplace OpKind = iota
	OpBold
	OpRemove
	OpWrap
)

// String returns the keyword used for the operation in scripts.
func (k OpKind) String() string {
	switch k {
	case OpReplace:
		return "replace"
	case OpBold:
		return "bold"
	case OpRemove:
		return "remove"
	case OpWrap:
		return "wrap"
	}
	return "Invalid(" + strconv.Itoa(int(k)) + ")"
}

// Operation is a parsed mutation, ready to be applied to a Tree.
// Only the fields relevant to Kind are set.
type Operation struct {
	Kind OpKind
	Old  string // replace
	New  string // replace
	Row  int    // bold
	Word string // wrap
	Tag  string // remove, wrap
}

func (op Operation) String() string {
	switch op.Kind {
	case OpReplace:
		return "replace " + op.Old + " " + op.New
	case OpBold:
		return "bold " + strconv.Itoa(op.Row)
	case OpRemove:
		return "remove " + op.Tag
	case OpWrap:
		return "wrap " + op.Word + " " + op.Tag
	}
	return op.Kind.String()
}

// ParseOperation parses one of:
//
//	replace OLD NEW
//	bold ROW
//	remove TAG
//	wrap WORD TAG
func ParseOperation(line string) (Operation, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Operation{}, fmt.Errorf("empty operation: %w", ErrBadOperation)
	}

	arity := func(n int) error {
		if len(fields) != n+1 {
			return fmt.Errorf("%q: %s takes %d arguments: %w", line, fields[0], n, ErrBadOperation)
		}
		return nil
	}

	switch strings.ToLower(fields[0]) {
	case "replace":
		if err := arity(2); err != nil {
			return Operation{}, err
		}
		return Operation{Kind: OpReplace, Old: fields[1], New: fields[2]}, nil

	case "bold":
		if err := arity(1); err != nil {
			return Operation{}, err
		}
		row, err := strconv.Atoi(fields[1])
		if err != nil || row < 1 {
			return Operation{}, fmt.Errorf("%q: row must be a positive number: %w", line, ErrBadOperation)
		}
		return Operation{Kind: OpBold, Row: row}, nil

	case "remove":
		if err := arity(1); err != nil {
			return Operation{}, err
		}
		if !contains(removableTags, fields[1]) {
			return Operation{}, fmt.Errorf("%q: can only remove %s: %w", line, strings.Join(removableTags, ", "), ErrBadOperation)
		}
		return Operation{Kind: OpRemove, Tag: fields[1]}, nil

	case "wrap":
		if err := arity(2); err != nil {
			return Operation{}, err
		}
		return Operation{Kind: OpWrap, Word: fields[1], Tag: fields[2]}, nil
	}

	return Operation{}, fmt.Errorf("%q: unknown operation %s: %w", line, fields[0], ErrBadOperation)
}

// Apply performs the operation on the tree and returns how many places changed.
func (t *Tree) Apply(op Operation) (int, error) {
	switch op.Kind {
	case OpReplace:
		return t.Rename(op.Old, op.New), nil
	case OpBold:
		return t.BoldRow(op.Row), nil
	case OpRemove:
		return t.RemoveTag(op.Tag)
	case OpWrap:
		return t.WrapWord(op.Word, op.Tag), nil
	}
	return 0, fmt.Errorf("%s: %w", op.Kind, ErrBadOperation)
}

// Script is a list of operations plus the settings that came with them.
type Script struct {
	Config     *yaml.YAML
	Operations []Operation
}

// CodeStyle is the chroma style used to highlight output, "github" by default.
func (s *Script) CodeStyle() string {
	return s.Config.String("domtree.codeStyle", "github")
}

// Run applies all the operations of the script in order, stopping at the first error.
func (s *Script) Run(t *Tree) error {
	for _, op := range s.Operations {
		n, err := t.Apply(op)
		if err != nil {
			return err
		}
		t.log.Infow("applied operation", "op", op.String(), "changes", n)
	}
	return nil
}

// NewScript returns an empty script with default settings.
func NewScript() *Script {
	s := &Script{}
	// An empty document always parses
	s.Config, _ = yaml.ParseYaml("")
	return s
}

// ParseScript parses a YAML script like:
//
//	domtree:
//	  codeStyle: monokai
//	operations:
//	  - replace em b
//	  - bold 2
func ParseScript(src string) (*Script, error) {
	cfg, err := yaml.ParseYaml(src)
	if err != nil {
		return nil, fmt.Errorf("malformed script: %w", err)
	}
	return scriptFromYAML(cfg)
}

// LoadScript reads and parses a YAML script file.
func LoadScript(fileName string) (*Script, error) {
	cfg, err := yaml.ParseYamlFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("reading script %s: %w", fileName, err)
	}
	return scriptFromYAML(cfg)
}

func scriptFromYAML(cfg *yaml.YAML) (*Script, error) {
	s := &Script{Config: cfg}

	for i, item := range cfg.List("operations") {
		line, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("operation %d is not a string: %w", i+1, ErrBadOperation)
		}
		op, err := ParseOperation(line)
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", i+1, err)
		}
		s.Operations = append(s.Operations, op)
	}

	return s, nil
}
