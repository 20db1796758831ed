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

// NextWord returns the start of the next word after p. At the end of a row
// it moves to the start of the following row, if there is one.
func NextWord(b *Buffer, p pascal.Point) pascal.Point {
	p = ClampCursor(p, b)
	graphemes := b.GetRowGraphemes(p.Row)
	if p.Col >= len(graphemes) {
		if p.Row+1 < b.GetRowCount() {
			return pascal.Point{Row: p.Row + 1, Col: 0}
		}
		return p
	}
	col := p.Col
	// move past the word we are in
	for col < len(graphemes) && isWordGrapheme(graphemes[col]) {
		col++
	}
	// move past spaces and punctuation
	for col < len(graphemes) && !isWordGrapheme(graphemes[col]) {
		col++
	}
	return pascal.Point{Row: p.Row, Col: col}
}

// PrevWord returns the start of the word before p. At the start of a row it
// moves to the end of the previous row, if there is one.
func PrevWord(b *Buffer, p pascal.Point) pascal.Point {
	p = ClampCursor(p, b)
	if p.Col == 0 {
		if p.Row > 0 {
			return pascal.Point{Row: p.Row - 1, Col: b.GetRowLength(p.Row - 1)}
		}
		return p
	}
	graphemes := b.GetRowGraphemes(p.Row)
	col := p.Col
	for col > 0 && !isWordGrapheme(graphemes[col-1]) {
		col--
	}
	for col > 0 && isWordGrapheme(graphemes[col-1]) {
		col--
	}
	return pascal.Point{Row: p.Row, Col: col}
}

// Move returns p moved one step in direction. Vertical moves clamp the
// column to the length of the destination row.
func Move(b *Buffer, p pascal.Point, direction int) pascal.Point {
	p = ClampCursor(p, b)
	switch direction {
	case pascal.MoveLeft:
		if p.Col > 0 {
			p.Col--
		}
	case pascal.MoveRight:
		if p.Col < b.GetRowLength(p.Row) {
			p.Col++
		}
	case pascal.MoveUp:
		if p.Row > 0 {
			p.Row--
		}
	case pascal.MoveDown:
		if p.Row < b.GetRowCount()-1 {
			p.Row++
		}
	}
	return ClampCursor(p, b)
}
