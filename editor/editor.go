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
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pascal-editor/pascal/log"
	pascal "github.com/pascal-editor/pascal/types"
)

// A LexerFunc returns the lexer to use for a file name.
type LexerFunc func(fileName string) pascal.Lexer

// A VisibleRow is one row of text in the viewport, as the renderer needs it.
type VisibleRow struct {
	Row       int
	Text      string
	Graphemes []string
	Segments  []pascal.Segment
}

// The Editor manages the editing of text in a Buffer.
type Editor struct {
	Cursor     pascal.Point // cursor position
	Buffer     *Buffer      // buffer being edited
	viewport   Viewport     // display offset and size
	highlights *Highlights  // styled segments, one entry per row
	lexerFor   LexerFunc
	dirty      bool // true if the buffer has unsaved changes
}

func NewEditor(lexerFor LexerFunc) *Editor {
	e := &Editor{lexerFor: lexerFor}
	e.Buffer = NewBuffer()
	e.highlights = NewHighlights(nil)
	e.reset()
	return e
}

func (e *Editor) reset() {
	e.Cursor = pascal.Point{}
	e.viewport.Offset = pascal.Size{}
	var lexer pascal.Lexer
	if e.lexerFor != nil {
		lexer = e.lexerFor(e.Buffer.GetFileName())
	}
	e.highlights.SetLexer(lexer, e.Buffer)
	e.dirty = false
	e.Scroll()
}

// ReadFile loads path into a new buffer. A missing file gives an empty
// buffer with that name. Any other failure also leaves an empty buffer and
// is returned.
func (e *Editor) ReadFile(path string) error {
	e.Buffer = NewBuffer()
	e.Buffer.SetFileName(path)
	b, err := os.ReadFile(path)
	if err != nil {
		e.reset()
		if errors.Is(err, fs.ErrNotExist) {
			log.Info(log.CatIO, "new file", "path", path)
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	e.Buffer.LoadBytes(b)
	e.reset()
	log.Debug(log.CatIO, "read file", "path", path, "rows", e.Buffer.GetRowCount())
	return nil
}

// LoadBytes replaces the buffer contents, keeping its file name.
func (e *Editor) LoadBytes(b []byte) {
	e.Buffer.LoadBytes(b)
	e.reset()
}

func (e *Editor) Bytes() []byte {
	return e.Buffer.Bytes()
}

// WriteFile saves the buffer to path. The buffer is unchanged if this fails.
func (e *Editor) WriteFile(path string) error {
	if path == "" {
		return errors.New("no file name")
	}
	if err := os.WriteFile(path, e.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if e.Buffer.GetFileName() == "" {
		e.Buffer.SetFileName(path)
	}
	e.dirty = false
	log.Debug(log.CatIO, "wrote file", "path", path, "rows", e.Buffer.GetRowCount())
	return nil
}

func (e *Editor) GetFileName() string {
	return e.Buffer.GetFileName()
}

func (e *Editor) IsDirty() bool {
	return e.dirty
}

// SetSize sets the size of the text area and rescrolls. The cursor and the
// buffer are not changed.
func (e *Editor) SetSize(s pascal.Size) {
	e.viewport.SetSize(s)
	e.Scroll()
}

func (e *Editor) GetSize() pascal.Size {
	return e.viewport.GetSize()
}

// Scroll clamps the cursor and recomputes the display offset to keep it onscreen.
func (e *Editor) Scroll() {
	e.Cursor = ClampCursor(e.Cursor, e.Buffer)
	e.viewport.Scroll(e.Cursor, e.Buffer)
}

func (e *Editor) GetOffset() pascal.Size {
	return e.viewport.Offset
}

func (e *Editor) GetCursor() pascal.Point {
	return e.Cursor
}

func (e *Editor) SetCursor(cursor pascal.Point) {
	e.Cursor = cursor
	e.Scroll()
}

func (e *Editor) GutterWidth() int {
	return GutterWidth(e.Buffer.GetRowCount())
}

func (e *Editor) TextCols() int {
	return e.viewport.TextCols(e.GutterWidth())
}

// ScreenCursor is the terminal position of the cursor relative to the text area.
func (e *Editor) ScreenCursor() pascal.Point {
	return e.viewport.ScreenPosition(e.Cursor, e.Buffer, e.GutterWidth())
}

// Highlights returns the highlight cache.
func (e *Editor) Highlights() *Highlights {
	return e.highlights
}

// VisibleRows returns the rows that fall inside the viewport.
func (e *Editor) VisibleRows() []VisibleRow {
	rows := make([]VisibleRow, 0, e.viewport.TextRows())
	for i := 0; i < e.viewport.TextRows(); i++ {
		row := e.viewport.Offset.Rows + i
		if row >= e.Buffer.GetRowCount() {
			break
		}
		text := e.Buffer.GetRowText(row)
		rows = append(rows, VisibleRow{
			Row:       row,
			Text:      text,
			Graphemes: e.Buffer.GetRowGraphemes(row),
			Segments:  e.highlights.Segments(row, text),
		})
	}
	return rows
}

// Cursor movement never touches the highlight cache.

func (e *Editor) MoveCursor(direction int) {
	e.Cursor = Move(e.Buffer, e.Cursor, direction)
	e.Scroll()
}

func (e *Editor) MoveCursorToNextWord() {
	e.Cursor = NextWord(e.Buffer, e.Cursor)
	e.Scroll()
}

func (e *Editor) MoveCursorToPreviousWord() {
	e.Cursor = PrevWord(e.Buffer, e.Cursor)
	e.Scroll()
}

func (e *Editor) MoveToBeginningOfLine() {
	e.Cursor.Col = 0
	e.Scroll()
}

func (e *Editor) MoveToEndOfLine() {
	e.Cursor.Col = e.Buffer.GetRowLength(e.Cursor.Row)
	e.Scroll()
}

// PageUp moves the cursor up by one screen of rows.
func (e *Editor) PageUp() {
	e.Cursor.Row -= e.viewport.TextRows()
	if e.Cursor.Row < 0 {
		e.Cursor.Row = 0
	}
	e.Scroll()
}

// PageDown moves the cursor down by one screen of rows.
func (e *Editor) PageDown() {
	e.Cursor.Row += e.viewport.TextRows()
	if last := e.Buffer.GetRowCount() - 1; e.Cursor.Row > last {
		e.Cursor.Row = last
	}
	e.Scroll()
}

func (e *Editor) MoveToStartOfDocument() {
	e.Cursor = pascal.Point{}
	e.Scroll()
}

func (e *Editor) MoveToEndOfDocument() {
	row := e.Buffer.GetRowCount() - 1
	e.Cursor = pascal.Point{Row: row, Col: e.Buffer.GetRowLength(row)}
	e.Scroll()
}

// Perform runs an operation, then rescrolls. The highlight cache has already
// been updated by the primitives the operation used.
func (e *Editor) Perform(op pascal.Operation) {
	op.Perform(e)
	e.Scroll()
}

func (e *Editor) apply(c Change) bool {
	if c.Kind == ChangeNone {
		return false
	}
	e.highlights.Apply(c)
	e.dirty = true
	return true
}

// These editor primitives make changes at the cursor and move it past them.

func (e *Editor) InsertChar(c rune) {
	if c == '\n' {
		e.InsertRow()
		return
	}
	// the rune may combine with the grapheme on either side of the cursor
	change, col := e.Buffer.InsertText(e.Cursor.Row, e.Cursor.Col, string(c))
	if e.apply(change) {
		e.Cursor.Col = col
	}
}

func (e *Editor) InsertRow() {
	if e.apply(e.Buffer.SplitLine(e.Cursor.Row, e.Cursor.Col)) {
		e.Cursor.Row++
		e.Cursor.Col = 0
	}
}

func (e *Editor) BackspaceChar() {
	row, col := e.Cursor.Row, e.Cursor.Col
	if col > 0 {
		if e.apply(e.Buffer.RemoveGrapheme(row, col-1)) {
			e.Cursor.Col--
		}
	} else if row > 0 {
		// remove the current row and join it with the previous one
		length := e.Buffer.GetRowLength(row - 1)
		if e.apply(e.Buffer.JoinLine(row)) {
			e.Cursor = ClampCursor(pascal.Point{Row: row - 1, Col: length}, e.Buffer)
		}
	}
}

// DeleteChar removes the grapheme under the cursor. At the end of a row it
// joins the next row onto this one.
func (e *Editor) DeleteChar() {
	row, col := e.Cursor.Row, e.Cursor.Col
	if col < e.Buffer.GetRowLength(row) {
		e.apply(e.Buffer.RemoveGrapheme(row, col))
	} else {
		e.apply(e.Buffer.JoinLine(row + 1))
	}
	e.Cursor = ClampCursor(e.Cursor, e.Buffer)
}
