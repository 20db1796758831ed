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
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// SplitGraphemes returns the grapheme clusters of text in order.
func SplitGraphemes(text string) []string {
	if text == "" {
		return nil
	}
	out := make([]string, 0, utf8.RuneCountInString(text))
	state := -1
	for len(text) > 0 {
		var cluster string
		cluster, text, _, state = uniseg.StepString(text, state)
		out = append(out, cluster)
	}
	return out
}

func joinGraphemes(graphemes []string) string {
	var sb strings.Builder
	for _, g := range graphemes {
		sb.WriteString(g)
	}
	return sb.String()
}

// DisplayWidth is the number of terminal cells used to draw a grapheme.
// It is always 1 or 2.
func DisplayWidth(g string) int {
	w := runewidth.StringWidth(g)
	if w == 0 {
		w = uniseg.StringWidth(g)
	}
	if w < 1 {
		return 1
	}
	if w > 2 {
		return 2
	}
	return w
}

// isWordGrapheme classifies a grapheme by its leading code point.
func isWordGrapheme(g string) bool {
	r, _ := utf8.DecodeRuneInString(g)
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
