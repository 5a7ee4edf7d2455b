// Copyright 2023 Jesus Ruiz. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package sliceedit queues edits over a byte slice with rsc.io/edit and applies
// them in a single pass. It is used to clean raw documents before they are split in lines.
package sliceedit

import (
	"bytes"

	"rsc.io/edit"
)

// The byte order mark some editors put at the start of UTF-8 files
const utf8BOM = "\uFEFF"

// A Buffer is a queue of edits to apply to a given byte slice.
type Buffer struct {
	ed  *edit.Buffer
	buf []byte
}

// NewBuffer returns a new buffer to accumulate changes to buf.
// The caller must not modify buf until it is done with the Buffer.
func NewBuffer(buf []byte) *Buffer {
	return &Buffer{
		ed:  edit.NewBuffer(buf),
		buf: buf,
	}
}

// FindAll returns the offsets of all non-overlapping instances of item in buf.
func FindAll(buf []byte, item string) []int {
	found := []int{}
	if len(item) == 0 {
		return found
	}

	offset := 0
	for {
		i := bytes.Index(buf[offset:], []byte(item))
		if i == -1 {
			return found
		}
		found = append(found, offset+i)
		offset += i + len(item)
	}
}

// DeleteAll queues the deletion of every instance of s.
// It returns the number of instances found.
func (b *Buffer) DeleteAll(s string) int {
	hits := FindAll(b.buf, s)
	for _, hit := range hits {
		b.ed.Delete(hit, hit+len(s))
	}
	return len(hits)
}

// DeletePrefix queues the deletion of s if buf starts with it.
func (b *Buffer) DeletePrefix(s string) bool {
	if len(s) == 0 || !bytes.HasPrefix(b.buf, []byte(s)) {
		return false
	}
	b.ed.Delete(0, len(s))
	return true
}

// Bytes returns a new byte slice with the queued edits applied.
func (b *Buffer) Bytes() []byte {
	return b.ed.Bytes()
}

// Normalize returns src with a leading byte order mark and all carriage
// returns removed, so CRLF and LF files are split in the same lines.
// src is not modified.
func Normalize(src []byte) []byte {
	b := NewBuffer(src)
	n := 0
	if b.DeletePrefix(utf8BOM) {
		n++
	}
	n += b.DeleteAll("\r")
	if n == 0 {
		return src
	}
	return b.Bytes()
}
