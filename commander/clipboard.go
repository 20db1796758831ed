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
package commander

import (
	"github.com/atotto/clipboard"
)

var clipboardWrite = clipboard.WriteAll

// SystemClipboard writes to the desktop clipboard through xclip, xsel,
// wl-copy, pbcopy or the Windows API, whichever the platform has.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboardWrite(text)
}
