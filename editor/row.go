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

import "slices"

// A row of text in the editor, stored as grapheme clusters.
type Row struct {
	graphemes []string
}

func NewRow(text string) *Row {
	return &Row{graphemes: SplitGraphemes(text)}
}

func (r *Row) Length() int {
	return len(r.graphemes)
}

func (r *Row) Text() string {
	return joinGraphemes(r.graphemes)
}

// Graphemes returns the row contents. Callers must not modify the slice.
func (r *Row) Graphemes() []string {
	return r.graphemes
}

// returns the grapheme at col, or "" if there is none
func (r *Row) GraphemeAt(col int) string {
	if col < 0 || col >= len(r.graphemes) {
		return ""
	}
	return r.graphemes[col]
}

// insert g before col; col may equal the row length. The insert is refused
// when g would merge with its neighbours into a different clustering.
func (r *Row) InsertGrapheme(col int, g string) bool {
	if col < 0 || col > len(r.graphemes) {
		return false
	}
	line := make([]string, 0, len(r.graphemes)+1)
	line = append(line, r.graphemes[0:col]...)
	line = append(line, g)
	line = append(line, r.graphemes[col:]...)
	if !slices.Equal(line, SplitGraphemes(joinGraphemes(line))) {
		return false
	}
	r.graphemes = line
	return true
}

// InsertText inserts text before col and re-segments the row. It returns the
// column just past the inserted text, rounded up to a grapheme boundary.
func (r *Row) InsertText(col int, text string) (int, bool) {
	if col < 0 || col > len(r.graphemes) {
		return 0, false
	}
	before := joinGraphemes(r.graphemes[0:col])
	r.graphemes = SplitGraphemes(before + text + joinGraphemes(r.graphemes[col:]))
	return r.columnAt(len(before) + len(text)), true
}

// delete the grapheme at col and return it
func (r *Row) DeleteGrapheme(col int) (string, bool) {
	if col < 0 || col >= len(r.graphemes) {
		return "", false
	}
	g := r.graphemes[col]
	line := make([]string, 0, len(r.graphemes)-1)
	line = append(line, r.graphemes[0:col]...)
	line = append(line, r.graphemes[col+1:]...)
	r.graphemes = line
	r.resegment()
	return g, true
}

// splits row at col, return a new row containing the remaining text.
func (r *Row) Split(col int) *Row {
	if col < 0 || col >= len(r.graphemes) {
		return &Row{}
	}
	after := make([]string, len(r.graphemes)-col)
	copy(after, r.graphemes[col:])
	r.graphemes = r.graphemes[0:col:col]
	r.resegment()
	return NewRow(joinGraphemes(after))
}

// joins rows by appending the passed-in row to the current row
func (r *Row) Join(other *Row) {
	r.graphemes = append(r.graphemes, other.graphemes...)
	r.resegment()
}

// resegment rebuilds the clusters from the row text. Removing or joining can
// leave neighbours that form a single user-perceived character.
func (r *Row) resegment() {
	r.graphemes = SplitGraphemes(joinGraphemes(r.graphemes))
}

// columnAt returns the first column that starts at or after byte offset.
func (r *Row) columnAt(offset int) int {
	n := 0
	for col, g := range r.graphemes {
		if n >= offset {
			return col
		}
		n += len(g)
	}
	return len(r.graphemes)
}
