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
	"path/filepath"
	"strings"

	"github.com/rivo/uniseg"

	pascal "github.com/pascal-editor/pascal/types"
)

// ChangeKind describes what a buffer mutation did to the row sequence.
type ChangeKind int

const (
	ChangeNone   ChangeKind = iota // nothing changed
	ChangeText                     // the text of Row changed
	ChangeInsert                   // Row was inserted; the text of Row-1 changed
	ChangeRemove                   // Row was removed; the text of Row-1 changed
)

// A Change reports the rows affected by a buffer mutation.
type Change struct {
	Kind ChangeKind
	Row  int
}

// A Buffer represents a file being edited. It always holds at least one row.
//
// Every mutator is total: out-of-range coordinates are ignored and reported
// as ChangeNone. Cursors can be stale by the time an edit reaches the buffer
// and that must never bring down the session.
type Buffer struct {
	rows     []*Row
	fileName string
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.rows = []*Row{NewRow("")}
	return b
}

func NewBufferFromLines(lines []string) *Buffer {
	b := NewBuffer()
	b.setLines(lines)
	return b
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

// Extension is the file name extension without the dot, used to pick a lexer.
func (b *Buffer) Extension() string {
	return strings.TrimPrefix(filepath.Ext(b.fileName), ".")
}

// LoadBytes replaces the buffer contents. A trailing line terminator does not
// produce an extra empty row and carriage returns before a newline are dropped.
func (b *Buffer) LoadBytes(bytes []byte) {
	s := string(bytes)
	lines := strings.Split(s, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[0 : len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	b.setLines(lines)
}

func (b *Buffer) setLines(lines []string) {
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
	if len(b.rows) == 0 {
		b.rows = append(b.rows, NewRow(""))
	}
}

// Bytes joins all rows with a single newline and no trailing terminator.
func (b *Buffer) Bytes() []byte {
	return []byte(strings.Join(b.Lines(), "\n"))
}

func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.Text()
	}
	return lines
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

func (b *Buffer) GetRowText(i int) string {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].Text()
	}
	return ""
}

// GetRowGraphemes returns the clusters of row i. Callers must not modify the slice.
func (b *Buffer) GetRowGraphemes(i int) []string {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].Graphemes()
	}
	return nil
}

func (b *Buffer) GetGraphemeAt(p pascal.Point) string {
	if p.Row >= 0 && p.Row < len(b.rows) {
		return b.rows[p.Row].GraphemeAt(p.Col)
	}
	return ""
}

func (b *Buffer) validRow(row int) bool {
	return row >= 0 && row < len(b.rows)
}

// InsertGrapheme inserts g before col. col may equal the row length.
// g must be exactly one grapheme cluster that stays separate from its
// neighbours; line terminators are never stored in a row, use SplitLine.
func (b *Buffer) InsertGrapheme(row, col int, g string) Change {
	if !b.validRow(row) || !isInsertable(g) || uniseg.GraphemeClusterCount(g) != 1 {
		return Change{}
	}
	if !b.rows[row].InsertGrapheme(col, g) {
		return Change{}
	}
	return Change{Kind: ChangeText, Row: row}
}

// InsertText inserts text before col and re-segments the row, so the text may
// combine with the graphemes around it. It returns the column just past the
// inserted text.
func (b *Buffer) InsertText(row, col int, text string) (Change, int) {
	if !b.validRow(row) || !isInsertable(text) {
		return Change{}, col
	}
	next, ok := b.rows[row].InsertText(col, text)
	if !ok {
		return Change{}, col
	}
	return Change{Kind: ChangeText, Row: row}, next
}

func isInsertable(text string) bool {
	return text != "" && !strings.ContainsAny(text, "\r\n")
}

// RemoveGrapheme deletes the grapheme at col. The row is re-segmented, so
// the graphemes on either side may merge.
func (b *Buffer) RemoveGrapheme(row, col int) Change {
	if !b.validRow(row) {
		return Change{}
	}
	if _, ok := b.rows[row].DeleteGrapheme(col); !ok {
		return Change{}
	}
	return Change{Kind: ChangeText, Row: row}
}

// SplitLine moves the graphemes from col onward into a new row below row.
func (b *Buffer) SplitLine(row, col int) Change {
	if !b.validRow(row) || col < 0 || col > b.rows[row].Length() {
		return Change{}
	}
	newRow := b.rows[row].Split(col)
	i := row + 1
	b.rows = append(b.rows, nil)
	// move rows to make room for the one we are adding
	copy(b.rows[i+1:], b.rows[i:])
	b.rows[i] = newRow
	return Change{Kind: ChangeInsert, Row: i}
}

// JoinLine appends row to the row above it and removes row. The graphemes
// meeting at the seam may merge.
func (b *Buffer) JoinLine(row int) Change {
	if row <= 0 || row >= len(b.rows) {
		return Change{}
	}
	b.rows[row-1].Join(b.rows[row])
	b.rows = append(b.rows[0:row], b.rows[row+1:]...)
	return Change{Kind: ChangeRemove, Row: row}
}
