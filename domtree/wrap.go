package domtree

import (
	"strings"
)

// Tags that WrapWord accepts
var wrapTags = []string{"em", "b"}

// Characters that may end a word
const punctuation = ".,?!:;"

func isPunctuation(c byte) bool {
	return strings.IndexByte(punctuation, c) >= 0
}

// indexFold is strings.Index ignoring case. It compares byte windows as long
// as substr, so folds that change the encoded length, like the Kelvin sign
// and 'k', never match.
func indexFold(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(substr)], substr) {
			return i
		}
	}
	return -1
}

// WrapWord puts every occurrence of word found in the text of the document
// inside a new element with the given tag, which must be 'em' or 'b'.
// Matching ignores case and only accepts whole words: the occurrence must be
// followed by the end of the text, a blank or a punctuation mark.
// A single trailing punctuation mark travels inside the new element.
// It returns the number of occurrences wrapped.
func (t *Tree) WrapWord(word, tag string) int {
	if !contains(wrapTags, tag) || len(word) == 0 || t.root == nil {
		return 0
	}

	w := &wordWrapper{word: word, tag: tag}
	w.scan(t.root)

	t.log.Debugw("wrap word", "word", word, "tag", tag, "count", w.count)
	return w.count
}

type wordWrapper struct {
	word  string
	tag   string
	count int
}

// scan walks a sibling chain, descending into elements.
func (w *wordWrapper) scan(n *Node) {
	for n != nil {
		if n.Type != TextNode {
			w.scan(n.FirstChild)
			n = n.NextSibling
			continue
		}
		n = w.wrapText(n)
	}
}

// wrapText wraps the first occurrence of the word in the text leaf n, splitting n
// into up to three siblings. It returns the node where scanning must resume,
// which is never inside the new element.
func (w *wordWrapper) wrapText(n *Node) *Node {
	next := n.NextSibling
	text := n.Label

	idx := indexFold(text, w.word)
	if idx < 0 {
		return next
	}

	// The whole text is the word
	if len(text) == len(w.word) {
		n.Type = ElementNode
		n.Label = w.tag
		n.FirstChild = NewText(text)
		w.count++
		return next
	}

	end := idx + len(w.word)
	before, match, after := text[:idx], text[idx:end], text[end:]

	// With exactly one punctuation mark before more text, the mark stays with the word
	var suffix string
	if len(after) > 1 && isPunctuation(after[0]) && !isPunctuation(after[1]) {
		suffix = after[:1]
		after = after[1:]
	}

	// Reject occurrences in the middle of a word
	if len(after) > 0 && after[0] != ' ' && !isPunctuation(after[0]) {
		return next
	}

	if len(after) == 1 && isPunctuation(after[0]) {
		match += after
		after = ""
	}

	content := NewText(match + suffix)

	// Link the new siblings before touching n
	tail := next
	if len(after) > 0 {
		tail = NewText(after)
		tail.NextSibling = next
	}

	// n keeps the text before the word, even when that text is empty
	wrapped := NewElement(w.tag)
	wrapped.FirstChild = content
	wrapped.NextSibling = tail
	n.Label = before
	n.NextSibling = wrapped

	w.count++
	return tail
}
