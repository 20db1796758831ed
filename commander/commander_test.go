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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/pascal-editor/pascal/editor"
	pascal "github.com/pascal-editor/pascal/types"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func setup(t *testing.T, lines ...string) (*Commander, *editor.Editor, *fakeClipboard) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644))
	e := editor.NewEditor(nil)
	require.NoError(t, e.ReadFile(path))
	e.SetSize(pascal.Size{Rows: 20, Cols: 80})
	clipboard := &fakeClipboard{}
	return NewCommander(e, clipboard, 4), e, clipboard
}

func char(ch rune) *pascal.Event {
	return &pascal.Event{Type: pascal.EventKey, Ch: ch}
}

func key(k pascal.Key) *pascal.Event {
	return &pascal.Event{Type: pascal.EventKey, Key: k}
}

func typeText(t *testing.T, c *Commander, text string) {
	t.Helper()
	for _, ch := range text {
		require.NoError(t, c.ProcessEvent(char(ch)))
	}
}

func TestModeTransitions(t *testing.T) {
	c, e, _ := setup(t, "abc")
	assert.Equal(t, pascal.ModeNormal, c.GetMode())
	assert.True(t, c.IsRunning())

	require.NoError(t, c.ProcessEvent(char('i')))
	assert.Equal(t, pascal.ModeInsert, c.GetMode())

	// in insert mode 'i' is text
	typeText(t, c, "hi")
	assert.Equal(t, []string{"hiabc"}, e.Buffer.Lines())
	assert.Equal(t, pascal.ModeInsert, c.GetMode())

	require.NoError(t, c.ProcessEvent(key(pascal.KeyEsc)))
	assert.Equal(t, pascal.ModeNormal, c.GetMode())

	// in normal mode text keys are commands
	require.NoError(t, c.ProcessEvent(char('h')))
	assert.Equal(t, []string{"hiabc"}, e.Buffer.Lines())
	assert.Equal(t, pascal.Point{Col: 1}, e.GetCursor())
}

func TestNormalModeIgnoresUnmappedInput(t *testing.T) {
	c, e, _ := setup(t, "abc def", "ghi")
	e.SetCursor(pascal.Point{Row: 0, Col: 2})
	events := []*pascal.Event{
		char('z'),
		char('Q'),
		char(' '),
		key(pascal.KeySpace),
		key(pascal.KeyDelete),
		key(pascal.KeyTab),
		key(pascal.KeyEnter),
		key(pascal.KeyBackspace2),
		key(pascal.KeyEsc),
		key(pascal.KeyUnsupported),
		{Type: pascal.EventKey, Ch: 'i', Mod: pascal.ModAlt},
		{Type: pascal.EventKey, Ch: 'g', Mod: pascal.ModAlt},
		{Type: pascal.EventNone},
		nil,
	}
	for _, event := range events {
		require.NoError(t, c.ProcessEvent(event))
		assert.Equal(t, pascal.ModeNormal, c.GetMode())
		assert.Equal(t, pascal.Point{Row: 0, Col: 2}, e.GetCursor())
		assert.Equal(t, []string{"abc def", "ghi"}, e.Buffer.Lines())
		assert.False(t, e.IsDirty())
		assert.True(t, c.IsRunning())
	}
}

func TestNormalModeNavigation(t *testing.T) {
	c, e, _ := setup(t, "a_b c", "longer line", "xy")
	steps := []struct {
		event *pascal.Event
		want  pascal.Point
	}{
		{char('w'), pascal.Point{Row: 0, Col: 4}},
		{char('b'), pascal.Point{Row: 0, Col: 0}},
		{char('$'), pascal.Point{Row: 0, Col: 5}},
		{char('0'), pascal.Point{Row: 0, Col: 0}},
		{char('j'), pascal.Point{Row: 1, Col: 0}},
		{key(pascal.KeyEnd), pascal.Point{Row: 1, Col: 11}},
		{char('j'), pascal.Point{Row: 2, Col: 2}},
		{char('k'), pascal.Point{Row: 1, Col: 2}},
		{char('l'), pascal.Point{Row: 1, Col: 3}},
		{key(pascal.KeyArrowLeft), pascal.Point{Row: 1, Col: 2}},
		{key(pascal.KeyArrowRight), pascal.Point{Row: 1, Col: 3}},
		{key(pascal.KeyArrowUp), pascal.Point{Row: 0, Col: 3}},
		{key(pascal.KeyArrowDown), pascal.Point{Row: 1, Col: 3}},
		{key(pascal.KeyHome), pascal.Point{Row: 1, Col: 0}},
		{char('t'), pascal.Point{Row: 2, Col: 2}},
		{char('g'), pascal.Point{Row: 0, Col: 0}},
	}
	for i, step := range steps {
		require.NoError(t, c.ProcessEvent(step.event))
		assert.Equal(t, step.want, e.GetCursor(), "step %d", i)
	}
	assert.False(t, e.IsDirty())
}

func TestInsertModeEditing(t *testing.T) {
	c, e, _ := setup(t, "abc", "def")
	require.NoError(t, c.ProcessEvent(char('$')))
	require.NoError(t, c.ProcessEvent(char('i')))

	require.NoError(t, c.ProcessEvent(key(pascal.KeyEnter)))
	assert.Equal(t, []string{"abc", "", "def"}, e.Buffer.Lines())
	assert.Equal(t, pascal.Point{Row: 1, Col: 0}, e.GetCursor())

	require.NoError(t, c.ProcessEvent(key(pascal.KeyTab)))
	typeText(t, c, "x")
	require.NoError(t, c.ProcessEvent(key(pascal.KeySpace)))
	assert.Equal(t, "    x ", e.Buffer.GetRowText(1))

	require.NoError(t, c.ProcessEvent(key(pascal.KeyBackspace2)))
	require.NoError(t, c.ProcessEvent(key(pascal.KeyBackspace)))
	assert.Equal(t, "    ", e.Buffer.GetRowText(1))

	require.NoError(t, c.ProcessEvent(key(pascal.KeyHome)))
	require.NoError(t, c.ProcessEvent(key(pascal.KeyBackspace2)))
	assert.Equal(t, []string{"abc    ", "def"}, e.Buffer.Lines())
	assert.Equal(t, pascal.Point{Row: 0, Col: 3}, e.GetCursor())

	require.NoError(t, c.ProcessEvent(key(pascal.KeyArrowDown)))
	require.NoError(t, c.ProcessEvent(key(pascal.KeyEnd)))
	assert.Equal(t, pascal.Point{Row: 1, Col: 3}, e.GetCursor())
	assert.True(t, e.IsDirty())

	// unmapped keys and alt chords do nothing
	require.NoError(t, c.ProcessEvent(key(pascal.KeyUnsupported)))
	require.NoError(t, c.ProcessEvent(&pascal.Event{Type: pascal.EventKey, Ch: 'q', Mod: pascal.ModAlt}))
	require.NoError(t, c.ProcessEvent(char(0x7f)))
	assert.Equal(t, []string{"abc    ", "def"}, e.Buffer.Lines())
	assert.Equal(t, pascal.ModeInsert, c.GetMode())
}

func TestPageMoves(t *testing.T) {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	c, e, _ := setup(t, lines...)
	e.SetSize(pascal.Size{Rows: 5, Cols: 40})

	require.NoError(t, c.ProcessEvent(key(pascal.KeyPgdn)))
	assert.Equal(t, pascal.Point{Row: 5, Col: 0}, e.GetCursor())
	assert.Equal(t, 1, e.GetOffset().Rows)

	require.NoError(t, c.ProcessEvent(char('$')))
	require.NoError(t, c.ProcessEvent(key(pascal.KeyPgdn)))
	require.NoError(t, c.ProcessEvent(key(pascal.KeyPgdn)))
	require.NoError(t, c.ProcessEvent(key(pascal.KeyPgdn)))
	assert.Equal(t, pascal.Point{Row: 19, Col: 6}, e.GetCursor())

	require.NoError(t, c.ProcessEvent(char('i')))
	require.NoError(t, c.ProcessEvent(key(pascal.KeyPgup)))
	assert.Equal(t, pascal.Point{Row: 14, Col: 6}, e.GetCursor())
	require.NoError(t, c.ProcessEvent(key(pascal.KeyPgup)))
	require.NoError(t, c.ProcessEvent(key(pascal.KeyPgup)))
	require.NoError(t, c.ProcessEvent(key(pascal.KeyPgup)))
	assert.Equal(t, pascal.Point{Row: 0, Col: 6}, e.GetCursor())
	assert.Equal(t, 0, e.GetOffset().Rows)
	assert.False(t, e.IsDirty())
}

func TestInsertModeDelete(t *testing.T) {
	c, e, _ := setup(t, "ab", "cd")
	require.NoError(t, c.ProcessEvent(char('i')))
	require.NoError(t, c.ProcessEvent(key(pascal.KeyDelete)))
	assert.Equal(t, []string{"b", "cd"}, e.Buffer.Lines())

	require.NoError(t, c.ProcessEvent(key(pascal.KeyEnd)))
	require.NoError(t, c.ProcessEvent(key(pascal.KeyDelete)))
	assert.Equal(t, []string{"bcd"}, e.Buffer.Lines())
	assert.Equal(t, pascal.Point{Col: 1}, e.GetCursor())

	require.NoError(t, c.ProcessEvent(key(pascal.KeyEnd)))
	require.NoError(t, c.ProcessEvent(key(pascal.KeyDelete)))
	assert.Equal(t, []string{"bcd"}, e.Buffer.Lines())
	assert.Equal(t, 1, e.Highlights().Len())
}

func TestTabWidth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	e := editor.NewEditor(nil)
	require.NoError(t, e.ReadFile(path))
	c := NewCommander(e, nil, 2)
	require.NoError(t, c.ProcessEvent(char('i')))
	require.NoError(t, c.ProcessEvent(key(pascal.KeyTab)))
	assert.Equal(t, "  ", e.Buffer.GetRowText(0))

	c = NewCommander(e, nil, 0)
	require.NoError(t, c.ProcessEvent(char('i')))
	require.NoError(t, c.ProcessEvent(key(pascal.KeyTab)))
	assert.Equal(t, "   ", e.Buffer.GetRowText(0))
}

func TestSave(t *testing.T) {
	c, e, _ := setup(t, "abc")
	typeText(t, c, "ix")
	require.True(t, e.IsDirty())
	require.NoError(t, c.ProcessEvent(key(pascal.KeyEsc)))

	require.NoError(t, c.ProcessEvent(key(pascal.KeyCtrlS)))
	assert.False(t, e.IsDirty())
	assert.Contains(t, c.GetMessage(), "written")
	b, err := os.ReadFile(e.GetFileName())
	require.NoError(t, err)
	assert.Equal(t, "xabc", string(b))
}

func TestSaveFailure(t *testing.T) {
	e := editor.NewEditor(nil)
	missing := filepath.Join(t.TempDir(), "missing", "doc.txt")
	require.NoError(t, e.ReadFile(missing))
	c := NewCommander(e, nil, 4)
	typeText(t, c, "iy")
	require.NoError(t, c.ProcessEvent(key(pascal.KeyEsc)))

	err := c.ProcessEvent(key(pascal.KeyCtrlS))
	require.Error(t, err)
	assert.Equal(t, err.Error(), c.GetMessage())
	assert.True(t, e.IsDirty())
	assert.True(t, c.IsRunning())
	assert.Equal(t, []string{"y"}, e.Buffer.Lines())
}

func TestQuit(t *testing.T) {
	c, _, _ := setup(t, "abc")
	require.NoError(t, c.ProcessEvent(char('i')))
	require.NoError(t, c.ProcessEvent(key(pascal.KeyCtrlQ)))
	assert.True(t, c.IsRunning(), "ctrl-q is not bound in insert mode")

	require.NoError(t, c.ProcessEvent(key(pascal.KeyEsc)))
	require.NoError(t, c.ProcessEvent(key(pascal.KeyCtrlQ)))
	assert.False(t, c.IsRunning())
}

func TestYankLine(t *testing.T) {
	c, e, clipboard := setup(t, "first", "second")
	require.NoError(t, c.ProcessEvent(char('j')))
	require.NoError(t, c.ProcessEvent(char('y')))
	assert.Equal(t, "second", clipboard.text)
	assert.Equal(t, "line copied", c.GetMessage())
	assert.False(t, e.IsDirty())

	clipboard.err = errors.New("no clipboard utilities available")
	err := c.ProcessEvent(char('y'))
	require.Error(t, err)
	assert.ErrorIs(t, err, clipboard.err)
	assert.Equal(t, clipboard.err.Error(), c.GetMessage())
}

func TestResize(t *testing.T) {
	c, e, _ := setup(t, "abc", "def", "ghi", "jkl")
	e.SetCursor(pascal.Point{Row: 3, Col: 2})
	require.NoError(t, c.ProcessEvent(&pascal.Event{Type: pascal.EventResize, Width: 30, Height: 4}))
	assert.Equal(t, pascal.Size{Rows: 2, Cols: 30}, e.GetSize())
	assert.Equal(t, pascal.Point{Row: 3, Col: 2}, e.GetCursor())
	assert.Equal(t, 2, e.GetOffset().Rows)
	assert.Equal(t, pascal.ModeNormal, c.GetMode())

	require.NoError(t, c.ProcessEvent(&pascal.Event{Type: pascal.EventResize, Width: 1, Height: 1}))
	assert.Equal(t, 3, e.GetOffset().Rows)
	assert.Equal(t, []string{"abc", "def", "ghi", "jkl"}, e.Buffer.Lines())
}

func TestModeIsAlwaysKnown(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := editor.NewEditor(nil)
		e.SetSize(pascal.Size{Rows: 5, Cols: 10})
		c := NewCommander(e, &fakeClipboard{}, 4)
		keys := []pascal.Key{
			pascal.KeyNone, pascal.KeyEsc, pascal.KeyEnter, pascal.KeyTab, pascal.KeySpace,
			pascal.KeyBackspace2, pascal.KeyDelete, pascal.KeyArrowLeft, pascal.KeyArrowDown, pascal.KeyHome, pascal.KeyEnd,
			pascal.KeyPgup, pascal.KeyPgdn,
		}
		steps := rapid.IntRange(0, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			event := &pascal.Event{Type: pascal.EventKey, Key: rapid.SampledFrom(keys).Draw(t, "key")}
			if event.Key == pascal.KeyNone {
				event.Ch = rapid.SampledFrom([]rune("ihjklwbgt0$xz e\u0301\u1100\u1161")).Draw(t, "ch")
			}
			_ = c.ProcessEvent(event)
			if mode := c.GetMode(); mode != pascal.ModeNormal && mode != pascal.ModeInsert {
				t.Fatalf("unknown mode %v", mode)
			}
			cursor := e.GetCursor()
			if cursor != editor.ClampCursor(cursor, e.Buffer) {
				t.Fatalf("cursor %+v outside the buffer", cursor)
			}
			if e.Highlights().Len() != e.Buffer.GetRowCount() {
				t.Fatalf("%d highlight entries for %d rows", e.Highlights().Len(), e.Buffer.GetRowCount())
			}
		}
	})
}
