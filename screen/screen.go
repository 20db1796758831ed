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
package screen

import (
	"fmt"

	"github.com/nsf/termbox-go"

	"github.com/pascal-editor/pascal/commander"
	"github.com/pascal-editor/pascal/editor"
	"github.com/pascal-editor/pascal/log"
	pascal "github.com/pascal-editor/pascal/types"
)

// The Screen draws the state of an Editor.
type Screen struct {
	size    pascal.Size // screen size
	name    string
	version string
}

func NewScreen(name, version string) (*Screen, error) {
	// Open the terminal.
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("opening terminal: %w", err)
	}
	termbox.SetOutputMode(termbox.Output256)
	termbox.SetInputMode(termbox.InputEsc | termbox.InputAlt)
	log.Debug(log.CatScreen, "terminal opened")
	return &Screen{name: name, version: version}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

// Size reads the current terminal size.
func (s *Screen) Size() pascal.Size {
	cols, rows := termbox.Size()
	return pascal.Size{Rows: rows, Cols: cols}
}

func (s *Screen) Render(e *editor.Editor, c *commander.Commander) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	s.size = s.Size()

	// the last two rows hold the status and message bars
	editSize := s.size
	editSize.Rows -= 2
	e.SetSize(editSize)

	s.renderText(e)
	s.renderStatusBar(e, c)
	s.renderMessageBar(c)
	cursor := e.ScreenCursor()
	termbox.SetCursor(cursor.Col, cursor.Row)
	termbox.Flush()
}

func (s *Screen) renderText(e *editor.Editor) {
	rows := s.size.Rows - 2
	lineCount := e.Buffer.GetRowCount()
	gutter := e.GutterWidth()
	visible := e.VisibleRows()
	for i := 0; i < rows; i++ {
		if i >= len(visible) {
			s.setText(0, i, "~", termbox.Attribute(lineNumberColor), termbox.ColorDefault)
			continue
		}
		row := visible[i]
		color := lineNumberColor
		if row.Row == e.Cursor.Row {
			color = currentLineNumberColor
		}
		s.setText(0, i, gutterLabel(row.Row, lineCount), termbox.Attribute(color), termbox.ColorDefault)

		graphemes := row.Graphemes
		styles := editor.GraphemeStyles(graphemes, row.Segments)
		x := gutter
		for j := e.GetOffset().Cols; j < len(graphemes); j++ {
			w := editor.DisplayWidth(graphemes[j])
			if x+w > s.size.Cols {
				break
			}
			ch := []rune(graphemes[j])[0]
			if ch == '\t' {
				ch = ' '
			}
			termbox.SetCell(x, i, ch, attribute(styles[j]), termbox.ColorDefault)
			x += w
		}
	}
	if lineCount == 1 && e.Buffer.GetRowLength(0) == 0 && rows > 2 {
		s.setText(0, rows/3, centered(welcomeMessage(s.name, s.version), s.size.Cols), termbox.ColorDefault, termbox.ColorDefault)
	}
}

func (s *Screen) renderStatusBar(e *editor.Editor, c *commander.Commander) {
	if s.size.Rows < 2 {
		return
	}
	text := statusLine(c.GetMode(), e.GetFileName(), e.IsDirty(), e.GetCursor(), e.Buffer.GetRowCount(), s.size.Cols)
	s.setText(0, s.size.Rows-2, text, termbox.ColorDefault|termbox.AttrReverse, termbox.ColorDefault)
}

func (s *Screen) renderMessageBar(c *commander.Commander) {
	if s.size.Rows < 1 {
		return
	}
	line := fill(c.GetMessage(), "", s.size.Cols)
	s.setText(0, s.size.Rows-1, line, termbox.ColorDefault, termbox.ColorDefault)
}

func (s *Screen) setText(x, y int, text string, fg, bg termbox.Attribute) {
	for _, g := range editor.SplitGraphemes(text) {
		w := editor.DisplayWidth(g)
		if x+w > s.size.Cols {
			return
		}
		termbox.SetCell(x, y, []rune(g)[0], fg, bg)
		x += w
	}
}

func (s *Screen) GetNextEvent() *pascal.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
	}
	if event.Type == termbox.EventError {
		log.ErrorErr(log.CatScreen, "terminal event", event.Err)
	}
	return convertEvent(event)
}
