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
	"strconv"

	pascal "github.com/pascal-editor/pascal/types"
)

// width of the " │ " separator drawn after the line numbers
const gutterSeparatorWidth = 3

// A Viewport is the visible part of a buffer. Offset.Rows is the first
// visible row and Offset.Cols the first visible grapheme column.
type Viewport struct {
	Offset pascal.Size
	size   pascal.Size // size of the text area, including the gutter
}

func (v *Viewport) SetSize(s pascal.Size) {
	v.size = s
}

func (v *Viewport) GetSize() pascal.Size {
	return v.size
}

// TextRows is the number of rows available for text, never less than one.
func (v *Viewport) TextRows() int {
	return max(v.size.Rows, 1)
}

// TextCols is the number of columns available for text right of the gutter,
// never less than one.
func (v *Viewport) TextCols(gutter int) int {
	return max(v.size.Cols-gutter, 1)
}

// GutterWidth is the width of the line number column for a buffer with
// lineCount rows, including the separator.
func GutterWidth(lineCount int) int {
	return len(strconv.Itoa(max(lineCount, 1))) + gutterSeparatorWidth
}

// ClampCursor keeps a cursor inside the buffer. The column is reduced to the
// length of its row and is not remembered for later moves.
func ClampCursor(cursor pascal.Point, b *Buffer) pascal.Point {
	cursor.Row = clipToRange(cursor.Row, 0, b.GetRowCount()-1)
	cursor.Col = clipToRange(cursor.Col, 0, b.GetRowLength(cursor.Row))
	return cursor
}

// UpdateVerticalOffset scrolls so that the cursor row is visible.
func (v *Viewport) UpdateVerticalOffset(cursor pascal.Point, rows int) {
	if cursor.Row < v.Offset.Rows {
		// scroll up
		v.Offset.Rows = cursor.Row
	} else if cursor.Row >= v.Offset.Rows+rows {
		// scroll down
		v.Offset.Rows = cursor.Row - rows + 1
	}
}

// UpdateHorizontalOffset scrolls so that the cursor column is visible.
// Columns are counted in graphemes.
func (v *Viewport) UpdateHorizontalOffset(cursor pascal.Point, cols int) {
	if cursor.Col < v.Offset.Cols {
		// scroll left
		v.Offset.Cols = cursor.Col
	} else if cursor.Col >= v.Offset.Cols+cols {
		// scroll right
		v.Offset.Cols = cursor.Col - cols + 1
	}
}

// Scroll recomputes both offsets to keep the cursor onscreen.
func (v *Viewport) Scroll(cursor pascal.Point, b *Buffer) {
	v.UpdateVerticalOffset(cursor, v.TextRows())
	v.UpdateHorizontalOffset(cursor, v.TextCols(GutterWidth(b.GetRowCount())))
}

// ScreenPosition is the terminal cell of the cursor. Wide graphemes left of
// the cursor push it right by their full display width.
func (v *Viewport) ScreenPosition(cursor pascal.Point, b *Buffer, gutter int) pascal.Point {
	col := gutter
	graphemes := b.GetRowGraphemes(cursor.Row)
	for i := v.Offset.Cols; i < cursor.Col && i < len(graphemes); i++ {
		col += DisplayWidth(graphemes[i])
	}
	return pascal.Point{Row: cursor.Row - v.Offset.Rows, Col: col}
}

func clipToRange(i, min, max int) int {
	if i > max {
		i = max
	}
	if i < min {
		i = min
	}
	return i
}
