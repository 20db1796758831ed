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

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/termenv"

	pascal "github.com/pascal-editor/pascal/types"
)

// PlainLexer returns each line as a single unstyled segment.
type PlainLexer struct{}

func (PlainLexer) Highlight(text string) []pascal.Segment {
	if text == "" {
		return nil
	}
	return []pascal.Segment{{Text: text}}
}

// The ChromaHighlighter highlights lines with a chroma lexer chosen by file name.
type ChromaHighlighter struct {
	lexer chroma.Lexer
	style *chroma.Style
	cache map[chroma.TokenType]pascal.Style
}

// NewChromaHighlighter picks a lexer for fileName and colours tokens with the
// named chroma style. Unknown names fall back to plain text and the default style.
func NewChromaHighlighter(fileName, theme string) *ChromaHighlighter {
	var lexer chroma.Lexer
	if fileName != "" {
		lexer = lexers.Match(fileName)
		if lexer == nil {
			if i := strings.LastIndex(fileName, "."); i >= 0 {
				lexer = lexers.Get(fileName[i+1:])
			}
		}
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return &ChromaHighlighter{
		lexer: chroma.Coalesce(lexer),
		style: styles.Get(theme),
		cache: make(map[chroma.TokenType]pascal.Style),
	}
}

// LexerName is the name of the chosen chroma lexer.
func (h *ChromaHighlighter) LexerName() string {
	return h.lexer.Config().Name
}

func (h *ChromaHighlighter) Highlight(text string) []pascal.Segment {
	if text == "" {
		return nil
	}
	iterator, err := h.lexer.Tokenise(nil, text)
	if err != nil {
		return PlainLexer{}.Highlight(text)
	}
	segments := make([]pascal.Segment, 0)
	remaining := text
	for _, token := range iterator.Tokens() {
		value := token.Value
		if len(value) > len(remaining) {
			// lexers may append a newline to the final token
			value = value[:len(remaining)]
		}
		if value == "" {
			continue
		}
		if !strings.HasPrefix(remaining, value) {
			return PlainLexer{}.Highlight(text)
		}
		style := h.styleFor(token.Type)
		if n := len(segments); n > 0 && segments[n-1].Style == style {
			segments[n-1].Text += value
		} else {
			segments = append(segments, pascal.Segment{Text: value, Style: style})
		}
		remaining = remaining[len(value):]
		if remaining == "" {
			break
		}
	}
	if remaining != "" {
		segments = append(segments, pascal.Segment{Text: remaining})
	}
	return segments
}

func (h *ChromaHighlighter) styleFor(t chroma.TokenType) pascal.Style {
	if style, ok := h.cache[t]; ok {
		return style
	}
	entry := h.style.Get(t)
	style := pascal.Style{
		Foreground: paletteColor(entry.Colour),
		Bold:       entry.Bold == chroma.Yes,
		Italic:     entry.Italic == chroma.Yes,
		Underline:  entry.Underline == chroma.Yes,
	}
	h.cache[t] = style
	return style
}

// paletteColor maps a chroma colour onto the xterm 256-colour palette.
func paletteColor(c chroma.Colour) pascal.Color {
	if !c.IsSet() {
		return pascal.ColorDefault
	}
	if ansi, ok := termenv.ANSI256.Color(c.String()).(termenv.ANSI256Color); ok {
		return pascal.PaletteColor(int(ansi))
	}
	return pascal.ColorDefault
}
