package domtree

import (
	"fmt"
)

// Tags that RemoveTag knows how to remove
var removableTags = []string{"p", "em", "b", "ol", "ul"}

func contains(set []string, tagName string) bool {
	for _, el := range set {
		if tagName == el {
			return true
		}
	}
	return false
}

// Rename changes the tag of every element named oldTag to newTag.
// It returns the number of elements renamed.
func (t *Tree) Rename(oldTag, newTag string) int {
	if t.root == nil || oldTag == newTag {
		return 0
	}

	renamed := 0
	stack := []*Node{t.root}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current.IsElement(oldTag) {
			current.Label = newTag
			renamed++
		}

		if current.NextSibling != nil {
			stack = append(stack, current.NextSibling)
		}
		if current.FirstChild != nil {
			stack = append(stack, current.FirstChild)
		}
	}

	t.log.Debugw("rename", "old", oldTag, "new", newTag, "count", renamed)
	return renamed
}

// BoldRow boldfaces every cell of the given row, numbered from 1, by placing
// a new 'b' element directly under each 'td' and moving the cell contents below it.
//
// Rows are counted in document order. The count restarts whenever the traversal
// descends into an element whose first child is a 'tr', so nested tables are
// numbered on their own. It returns the number of cells changed.
func (t *Tree) BoldRow(row int) int {
	if t.root == nil || row < 1 {
		return 0
	}

	bolded := 0
	currentRow := 0
	stack := []*Node{t.root}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current.IsElement("tr") {
			currentRow++
		}

		if current.IsElement("td") && currentRow == row {
			b := NewElement("b")
			b.FirstChild = current.FirstChild
			current.FirstChild = b
			bolded++
		}

		if current.NextSibling != nil {
			stack = append(stack, current.NextSibling)
		}
		if current.FirstChild != nil {
			if current.FirstChild.IsElement("tr") {
				currentRow = 0
			}
			stack = append(stack, current.FirstChild)
		}
	}

	t.log.Debugw("bold row", "row", row, "cells", bolded)
	return bolded
}

// RemoveTag deletes every element with the given tag, putting its children in
// its place. Any 'li' directly under a removed element becomes a 'p'.
// Only p, em, b, ol and ul can be removed. The root element is never removed.
// It returns the number of elements removed.
func (t *Tree) RemoveTag(tag string) (int, error) {
	if !contains(removableTags, tag) {
		return 0, fmt.Errorf("remove <%s>: %w", tag, ErrUnsupportedTag)
	}
	if t.root == nil {
		return 0, nil
	}

	removed := 0
	stack := []*Node{t.root}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// A spliced element may bring up another one with the same tag,
		// but an 'li' that was just turned into a 'p' stays.
		for current.NextSibling.IsElement(tag) {
			next, converted := spliceOut(current.NextSibling)
			current.NextSibling = next
			removed++
			if converted {
				break
			}
		}
		for current.FirstChild.IsElement(tag) {
			first, converted := spliceOut(current.FirstChild)
			current.FirstChild = first
			removed++
			if converted {
				break
			}
		}

		if current.NextSibling != nil {
			stack = append(stack, current.NextSibling)
		}
		if current.FirstChild != nil {
			stack = append(stack, current.FirstChild)
		}
	}

	t.log.Debugw("remove tag", "tag", tag, "count", removed)
	return removed, nil
}

// spliceOut detaches n and returns the node that must take its place in the
// list it belonged to: its first child, or its next sibling if it had no children.
// converted reports whether that node is an 'li' renamed to 'p'.
func spliceOut(n *Node) (head *Node, converted bool) {
	first, next := n.FirstChild, n.NextSibling
	if first == nil {
		n.NextSibling = nil
		return next, false
	}

	converted = first.IsElement("li")
	last := first
	for c := first; c != nil; c = c.NextSibling {
		if c.IsElement("li") {
			c.Label = "p"
		}
		last = c
	}

	last.NextSibling = next
	n.FirstChild = nil
	n.NextSibling = nil
	return first, converted
}
