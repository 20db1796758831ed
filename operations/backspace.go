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

// Backspace deletes the grapheme before the cursor. At the start of a line
// it joins the line to the one above.
type Backspace struct{}

func (op *Backspace) Perform(e pascal.Editor) {
	e.BackspaceChar()
}

// Delete removes the grapheme under the cursor. At the end of a line it
// joins the next line onto this one.
type Delete struct{}

func (op *Delete) Perform(e pascal.Editor) {
	e.DeleteChar()
}
