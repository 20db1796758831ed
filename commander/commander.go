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
	"fmt"

	"github.com/pascal-editor/pascal/editor"
	"github.com/pascal-editor/pascal/log"
	"github.com/pascal-editor/pascal/operations"
	pascal "github.com/pascal-editor/pascal/types"
)

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor    *editor.Editor
	mode      pascal.Mode
	running   bool
	message   string // status message
	clipboard pascal.Clipboard
	tabWidth  int // spaces inserted by the Tab key
}

func NewCommander(e *editor.Editor, clipboard pascal.Clipboard, tabWidth int) *Commander {
	if tabWidth < 1 {
		tabWidth = 1
	}
	return &Commander{
		editor:    e,
		mode:      pascal.ModeNormal,
		running:   true,
		clipboard: clipboard,
		tabWidth:  tabWidth,
	}
}

func (c *Commander) IsRunning() bool {
	return c.running
}

func (c *Commander) GetMode() pascal.Mode {
	return c.mode
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) SetMessage(message string) {
	c.message = message
}

func (c *Commander) GetEditor() *editor.Editor {
	return c.editor
}

// ProcessEvent handles one input event. The returned error is for reporting
// only; the session keeps running.
func (c *Commander) ProcessEvent(event *pascal.Event) error {
	if event == nil {
		return nil
	}
	switch event.Type {
	case pascal.EventKey:
		return c.ProcessKey(event)
	case pascal.EventResize:
		return c.ProcessResize(event)
	default:
		return nil
	}
}

// ProcessResize re-clamps the viewport. The text area excludes the status
// and message bars.
func (c *Commander) ProcessResize(event *pascal.Event) error {
	log.Debug(log.CatInput, "resize", "width", event.Width, "height", event.Height)
	c.editor.SetSize(pascal.Size{Rows: event.Height - 2, Cols: event.Width})
	return nil
}

func (c *Commander) ProcessKey(event *pascal.Event) error {
	var err error
	switch c.mode {
	case pascal.ModeNormal:
		err = c.processKeyNormalMode(event)
	case pascal.ModeInsert:
		err = c.processKeyInsertMode(event)
	}
	return err
}

func (c *Commander) processKeyNormalMode(event *pascal.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if event.Mod&pascal.ModAlt != 0 {
		return nil
	}
	if key != pascal.KeyNone {
		switch key {
		case pascal.KeyCtrlQ:
			c.running = false
		case pascal.KeyCtrlS:
			return c.save()
		case pascal.KeyHome:
			e.MoveToBeginningOfLine()
		case pascal.KeyEnd:
			e.MoveToEndOfLine()
		case pascal.KeyPgup:
			e.PageUp()
		case pascal.KeyPgdn:
			e.PageDown()
		case pascal.KeyArrowUp:
			e.MoveCursor(pascal.MoveUp)
		case pascal.KeyArrowDown:
			e.MoveCursor(pascal.MoveDown)
		case pascal.KeyArrowLeft:
			e.MoveCursor(pascal.MoveLeft)
		case pascal.KeyArrowRight:
			e.MoveCursor(pascal.MoveRight)
		}
		return nil
	}
	switch ch {
	case 'i':
		c.mode = pascal.ModeInsert
	//
	// cursor movement never touches the highlight cache
	//
	case 'h':
		e.MoveCursor(pascal.MoveLeft)
	case 'j':
		e.MoveCursor(pascal.MoveDown)
	case 'k':
		e.MoveCursor(pascal.MoveUp)
	case 'l':
		e.MoveCursor(pascal.MoveRight)
	case 'w':
		e.MoveCursorToNextWord()
	case 'b':
		e.MoveCursorToPreviousWord()
	case 'g':
		e.MoveToStartOfDocument()
	case 't':
		e.MoveToEndOfDocument()
	case '0':
		e.MoveToBeginningOfLine()
	case '$':
		e.MoveToEndOfLine()
	case 'y':
		return c.yankLine()
	}
	return nil
}

func (c *Commander) processKeyInsertMode(event *pascal.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if key != pascal.KeyNone {
		switch key {
		case pascal.KeyEsc:
			c.mode = pascal.ModeNormal
		case pascal.KeyEnter:
			e.Perform(&operations.InsertNewline{})
		case pascal.KeyBackspace, pascal.KeyBackspace2:
			e.Perform(&operations.Backspace{})
		case pascal.KeyDelete:
			e.Perform(&operations.Delete{})
		case pascal.KeyTab:
			e.Perform(&operations.InsertTab{Width: c.tabWidth})
		case pascal.KeySpace:
			e.Perform(&operations.InsertCharacter{Character: ' '})
		case pascal.KeyHome:
			e.MoveToBeginningOfLine()
		case pascal.KeyEnd:
			e.MoveToEndOfLine()
		case pascal.KeyPgup:
			e.PageUp()
		case pascal.KeyPgdn:
			e.PageDown()
		case pascal.KeyArrowUp:
			e.MoveCursor(pascal.MoveUp)
		case pascal.KeyArrowDown:
			e.MoveCursor(pascal.MoveDown)
		case pascal.KeyArrowLeft:
			e.MoveCursor(pascal.MoveLeft)
		case pascal.KeyArrowRight:
			e.MoveCursor(pascal.MoveRight)
		}
		return nil
	}
	if event.Mod&pascal.ModAlt != 0 || ch < ' ' || ch == 0x7f {
		return nil
	}
	e.Perform(&operations.InsertCharacter{Character: ch})
	return nil
}

func (c *Commander) save() error {
	e := c.editor
	fileName := e.GetFileName()
	if err := e.WriteFile(fileName); err != nil {
		log.ErrorErr(log.CatIO, "save failed", err, "path", fileName)
		c.message = err.Error()
		return err
	}
	log.Info(log.CatIO, "saved", "path", fileName)
	c.message = fmt.Sprintf("\"%s\" %dL written", fileName, e.Buffer.GetRowCount())
	return nil
}

func (c *Commander) yankLine() error {
	if c.clipboard == nil {
		return nil
	}
	e := c.editor
	if err := c.clipboard.WriteAll(e.Buffer.GetRowText(e.Cursor.Row)); err != nil {
		log.Warn(log.CatEditor, "clipboard write failed", "error", err)
		c.message = err.Error()
		return fmt.Errorf("copying line: %w", err)
	}
	c.message = "line copied"
	return nil
}
