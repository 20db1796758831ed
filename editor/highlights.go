//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	pascal "github.com/pascal-editor/pascal/types"
)

type highlight struct {
	segments []pascal.Segment
	valid    bool
}

// Highlights caches the styled segments of each row of a buffer.
// Entries are index-parallel with the buffer rows: every row insertion or
// removal is mirrored here at the same index. An entry is recomputed only
// after its row changes, and then lazily, the next time it is read.
type Highlights struct {
	lexer   pascal.Lexer
	entries []highlight
}

func NewHighlights(lexer pascal.Lexer) *Highlights {
	if lexer == nil {
		lexer = PlainLexer{}
	}
	return &Highlights{lexer: lexer}
}

// Reset discards every entry and sizes the cache to match b.
func (h *Highlights) Reset(b *Buffer) {
	h.entries = make([]highlight, b.GetRowCount())
}

// SetLexer replaces the lexer and invalidates every entry.
func (h *Highlights) SetLexer(lexer pascal.Lexer, b *Buffer) {
	if lexer == nil {
		lexer = PlainLexer{}
	}
	h.lexer = lexer
	h.Reset(b)
}

func (h *Highlights) Len() int {
	return len(h.entries)
}

// Apply mirrors a buffer change in the cache.
func (h *Highlights) Apply(c Change) {
	switch c.Kind {
	case ChangeText:
		h.invalidate(c.Row)
	case ChangeInsert:
		h.insert(c.Row)
		h.invalidate(c.Row - 1)
	case ChangeRemove:
		h.remove(c.Row)
		h.invalidate(c.Row - 1)
	}
}

// Recompute runs the lexer on text and stores the result for row.
func (h *Highlights) Recompute(row int, text string) {
	if row < 0 || row >= len(h.entries) {
		return
	}
	h.entries[row] = highlight{segments: h.lexer.Highlight(text), valid: true}
}

// Segments returns the segments for row, computing them from text if the
// entry was invalidated.
func (h *Highlights) Segments(row int, text string) []pascal.Segment {
	if row < 0 || row >= len(h.entries) {
		return nil
	}
	if !h.entries[row].valid {
		h.Recompute(row, text)
	}
	return h.entries[row].segments
}

func (h *Highlights) invalidate(row int) {
	if row >= 0 && row < len(h.entries) {
		h.entries[row] = highlight{}
	}
}

func (h *Highlights) insert(row int) {
	if row < 0 || row > len(h.entries) {
		return
	}
	h.entries = append(h.entries, highlight{})
	copy(h.entries[row+1:], h.entries[row:])
	h.entries[row] = highlight{}
}

func (h *Highlights) remove(row int) {
	if row < 0 || row >= len(h.entries) {
		return
	}
	h.entries = append(h.entries[0:row], h.entries[row+1:]...)
}

// GraphemeStyles returns the style of each grapheme: the style of the
// segment holding the grapheme's first byte.
func GraphemeStyles(graphemes []string, segments []pascal.Segment) []pascal.Style {
	styles := make([]pascal.Style, len(graphemes))
	seg := 0
	segEnd := 0
	if len(segments) > 0 {
		segEnd = len(segments[0].Text)
	}
	offset := 0
	for i, g := range graphemes {
		for seg < len(segments) && offset >= segEnd {
			seg++
			if seg < len(segments) {
				segEnd += len(segments[seg].Text)
			}
		}
		if seg < len(segments) {
			styles[i] = segments[seg].Style
		}
		offset += len(g)
	}
	return styles
}
