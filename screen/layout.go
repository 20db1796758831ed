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
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	pascal "github.com/pascal-editor/pascal/types"
)

const gutterSeparator = " │ "

// Gutter colours, as xterm palette entries.
var (
	currentLineNumberColor = pascal.PaletteColor(15)
	lineNumberColor        = pascal.PaletteColor(242)
)

// gutterLabel right-aligns a 1-based line number to the digit width of the
// document and appends the separator.
func gutterLabel(row, lineCount int) string {
	digits := len(fmt.Sprintf("%d", max(lineCount, 1)))
	return fmt.Sprintf("%*d%s", digits, row+1, gutterSeparator)
}

// statusLine fills width cells: mode, file name and dirty marker on the
// left, cursor position and line count on the right.
func statusLine(mode pascal.Mode, fileName string, dirty bool, cursor pascal.Point, lineCount, width int) string {
	if fileName == "" {
		fileName = "[No Name]"
	}
	left := fmt.Sprintf(" %s  %s", mode, fileName)
	if dirty {
		left += " [+]"
	}
	right := fmt.Sprintf("%d:%d  %d lines ", cursor.Row+1, cursor.Col+1, lineCount)
	return fill(left, right, width)
}

func fill(left, right string, width int) string {
	if width <= 0 {
		return ""
	}
	gap := width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if gap < 1 {
		return runewidth.Truncate(left, width, "")
	}
	return left + strings.Repeat(" ", gap) + right
}

// centered pads text on the left so that it sits in the middle of width cells.
func centered(text string, width int) string {
	w := runewidth.StringWidth(text)
	if w >= width {
		return runewidth.Truncate(text, width, "")
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

func welcomeMessage(name, version string) string {
	return fmt.Sprintf("%s version-%s", name, version)
}

func attribute(style pascal.Style) termbox.Attribute {
	a := termbox.Attribute(style.Foreground)
	if style.Bold {
		a |= termbox.AttrBold
	}
	if style.Underline {
		a |= termbox.AttrUnderline
	}
	return a
}

func convertEvent(event termbox.Event) *pascal.Event {
	switch event.Type {
	case termbox.EventKey:
		e := &pascal.Event{Type: pascal.EventKey, Ch: event.Ch}
		if event.Ch == 0 {
			e.Key = key(event.Key)
		}
		if event.Mod&termbox.ModAlt != 0 {
			e.Mod = pascal.ModAlt
		}
		return e
	case termbox.EventResize:
		return &pascal.Event{Type: pascal.EventResize, Width: event.Width, Height: event.Height}
	default:
		return &pascal.Event{Type: pascal.EventNone}
	}
}

// keys maps the termbox keys the editor binds. Ctrl-H, Ctrl-I and Ctrl-M
// share codes with Backspace, Tab and Enter and arrive as those.
var keys = map[termbox.Key]pascal.Key{
	termbox.KeyArrowUp:    pascal.KeyArrowUp,
	termbox.KeyArrowDown:  pascal.KeyArrowDown,
	termbox.KeyArrowLeft:  pascal.KeyArrowLeft,
	termbox.KeyArrowRight: pascal.KeyArrowRight,
	termbox.KeyHome:       pascal.KeyHome,
	termbox.KeyEnd:        pascal.KeyEnd,
	termbox.KeyPgup:       pascal.KeyPgup,
	termbox.KeyPgdn:       pascal.KeyPgdn,
	termbox.KeyEsc:        pascal.KeyEsc,
	termbox.KeyEnter:      pascal.KeyEnter,
	termbox.KeyTab:        pascal.KeyTab,
	termbox.KeySpace:      pascal.KeySpace,
	termbox.KeyBackspace:  pascal.KeyBackspace,
	termbox.KeyBackspace2: pascal.KeyBackspace2,
	termbox.KeyDelete:     pascal.KeyDelete,
	termbox.KeyCtrlQ:      pascal.KeyCtrlQ,
	termbox.KeyCtrlS:      pascal.KeyCtrlS,
}

func key(k termbox.Key) pascal.Key {
	if pk, ok := keys[k]; ok {
		return pk
	}
	return pascal.KeyUnsupported
}
