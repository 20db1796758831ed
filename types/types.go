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
package types

// Mode is the editing mode of a session. There are exactly two.
type Mode int

// Editor modes
const (
	ModeNormal Mode = iota
	ModeInsert
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	default:
		return "UNKNOWN"
	}
}

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// A Point is a document position. Col counts grapheme clusters, not bytes or runes.
type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// Color is a 256-colour palette entry offset by one, so that the zero value
// means "terminal default". This matches termbox's Output256 attributes.
type Color uint16

const ColorDefault Color = 0

// PaletteColor returns the Color for xterm palette index i.
func PaletteColor(i int) Color {
	if i < 0 || i > 255 {
		return ColorDefault
	}
	return Color(i + 1)
}

type Style struct {
	Foreground Color
	Bold       bool
	Italic     bool
	Underline  bool
}

// A Segment is a run of line text drawn with a single style.
type Segment struct {
	Text  string
	Style Style
}

// A Lexer classifies a single line of text. The returned segments must cover
// the text left to right with no gaps or overlaps.
type Lexer interface {
	Highlight(text string) []Segment
}

// Clipboard is the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Editor is the set of editing primitives that operations are built from.
type Editor interface {
	GetCursor() Point
	InsertChar(c rune)
	InsertRow()
	BackspaceChar()
	DeleteChar()
}

// An Operation is a single structural edit.
type Operation interface {
	Perform(e Editor)
}
