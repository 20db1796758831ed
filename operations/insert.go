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
package operations

import (
	pascal "github.com/pascal-editor/pascal/types"
)

// InsertCharacter inserts a character at the cursor.
type InsertCharacter struct {
	Character rune
}

func (op *InsertCharacter) Perform(e pascal.Editor) {
	e.InsertChar(op.Character)
}

// InsertTab inserts Width spaces at the cursor.
type InsertTab struct {
	Width int
}

func (op *InsertTab) Perform(e pascal.Editor) {
	for i := 0; i < op.Width; i++ {
		e.InsertChar(' ')
	}
}
