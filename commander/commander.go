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
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/Luukdegram/pit/editor"
	"github.com/Luukdegram/pit/screen"
	"github.com/Luukdegram/pit/terminal"
	pit "github.com/Luukdegram/pit/types"
)

// The Commander converts key events into commands for the Editor. It owns
// the select/insert mode machine; prompts (search, command line, save-as)
// run as synchronous read loops on the message bar.
type Commander struct {
	editor *editor.Editor
	screen *screen.Screen
	input  *terminal.Decoder

	mode        int
	message     string
	prompt      string // active prompt line, empty outside prompt loops
	pending     string // multi-key command in progress
	multiplier  string
	searchText  string // last search, repeatable with n
	quitPending bool
}

func NewCommander(e *editor.Editor, s *screen.Screen, d *terminal.Decoder) *Commander {
	return &Commander{editor: e, screen: s, input: d, mode: pit.ModeSelect}
}

func (c *Commander) IsRunning() bool {
	return c.mode != pit.ModeQuit
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(mode int) {
	c.mode = mode
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) GetPrompt() string {
	return c.prompt
}

func (c *Commander) SetMessage(format string, args ...interface{}) {
	c.message = fmt.Sprintf(format, args...)
}

func (c *Commander) ProcessKey(event pit.Event) error {
	if event.Key != pit.KeyCtrlQ {
		c.quitPending = false
	}
	switch c.mode {
	case pit.ModeSelect:
		return c.processKeySelectMode(event)
	case pit.ModeInsert:
		return c.processKeyInsertMode(event)
	}
	return nil
}

func (c *Commander) processKeySelectMode(event pit.Event) error {
	e := c.editor

	// multi-key commands have highest precedence
	if c.pending != "" {
		pending := c.pending
		c.pending = ""
		if pending == "d" && event.Ch == 'd' {
			for i, n := 0, c.Multiplier(); i < n; i++ {
				e.DeleteRow()
			}
		}
		return nil
	}

	if event.Key != pit.KeyNone {
		switch event.Key {
		case pit.KeyEsc:
			c.multiplier = ""
			c.message = ""
			e.ClearMatch()
		case pit.KeyArrowUp:
			c.move(pit.MoveUp)
		case pit.KeyArrowDown:
			c.move(pit.MoveDown)
		case pit.KeyArrowLeft:
			c.move(pit.MoveLeft)
		case pit.KeyArrowRight:
			c.move(pit.MoveRight)
		case pit.KeyHome:
			e.MoveToBeginningOfLine()
		case pit.KeyEnd:
			e.MoveToEndOfLine()
		case pit.KeyPageUp:
			for i, n := 0, c.Multiplier(); i < n; i++ {
				e.PageUp()
			}
		case pit.KeyPageDown:
			for i, n := 0, c.Multiplier(); i < n; i++ {
				e.PageDown()
			}
		case pit.KeyDelete:
			c.deleteAtCursor()
		case pit.KeyCtrlS:
			c.save()
		case pit.KeyCtrlQ:
			c.quit()
		}
		return nil
	}

	switch event.Ch {
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		c.multiplier += string(event.Ch)
	case '0':
		if c.multiplier == "" {
			e.MoveToBeginningOfLine()
		} else {
			c.multiplier += "0"
		}
	case 'h':
		c.move(pit.MoveLeft)
	case 'j':
		c.move(pit.MoveDown)
	case 'k':
		c.move(pit.MoveUp)
	case 'l':
		c.move(pit.MoveRight)
	case '$':
		e.MoveToEndOfLine()
	case 'i':
		c.enterInsert()
	case 'a':
		if e.Cursor.Col < e.Buffer.RowLength(e.Cursor.Row) {
			e.Cursor.Col++
		}
		c.enterInsert()
	case 'I':
		e.MoveToBeginningOfLine()
		c.enterInsert()
	case 'A':
		e.MoveToEndOfLine()
		c.enterInsert()
	case 'x':
		for i, n := 0, c.Multiplier(); i < n; i++ {
			c.deleteAtCursor()
		}
	case 'd':
		c.pending = "d"
	case '/':
		c.promptSearch()
	case 'n':
		if c.searchText != "" && !e.PerformSearch(c.searchText) {
			c.SetMessage("no match: %s", c.searchText)
		}
	case ':':
		c.promptCommand()
	}
	return nil
}

func (c *Commander) processKeyInsertMode(event pit.Event) error {
	e := c.editor
	if event.Key != pit.KeyNone {
		switch event.Key {
		case pit.KeyEsc:
			c.mode = pit.ModeSelect
			e.KeepCursorInRow()
		case pit.KeyEnter:
			e.InsertNewline()
		case pit.KeyBackspace:
			e.DelChar()
		case pit.KeyTab:
			e.InsertChar('\t')
		case pit.KeyDelete:
			c.deleteAtCursor()
		case pit.KeyArrowUp:
			e.MoveCursor(pit.MoveUp)
		case pit.KeyArrowDown:
			e.MoveCursor(pit.MoveDown)
		case pit.KeyArrowLeft:
			e.MoveCursor(pit.MoveLeft)
		case pit.KeyArrowRight:
			e.MoveCursor(pit.MoveRight)
		}
		return nil
	}
	if event.Ch != 0 && !unicode.IsControl(event.Ch) {
		e.InsertChar(event.Ch)
	}
	return nil
}

func (c *Commander) enterInsert() {
	c.mode = pit.ModeInsert
	c.message = "-- INSERT --"
}

func (c *Commander) move(direction int) {
	for i, n := 0, c.Multiplier(); i < n; i++ {
		c.editor.MoveCursor(direction)
	}
}

// deleteAtCursor removes the character under the cursor.
func (c *Commander) deleteAtCursor() {
	e := c.editor
	if e.Cursor.Row >= e.Buffer.Len() {
		return
	}
	if e.Cursor.Col < e.Buffer.RowLength(e.Cursor.Row) {
		e.Buffer.Get(e.Cursor.Row).Remove(e.Cursor.Col)
		e.KeepCursorInRow()
	}
}

// save writes the buffer, prompting for a destination for pathless buffers
// and retrying until the write succeeds or the user cancels.
func (c *Commander) save() {
	for {
		n, err := c.editor.WriteFile()
		if err == nil {
			c.SetMessage("%d bytes written to %s", n, c.editor.Buffer.Path)
			return
		}
		label := "Save as: "
		if !errors.Is(err, editor.ErrNoPath) {
			label = fmt.Sprintf("Save failed (%v), new path: ", err)
		}
		path, ok := c.readPrompt(label)
		if !ok || path == "" {
			c.message = "save aborted"
			return
		}
		c.editor.Buffer.Path = path
	}
}

func (c *Commander) quit() {
	if c.editor.Buffer.IsDirty() && !c.quitPending {
		c.quitPending = true
		c.message = "unsaved changes; Ctrl-Q again to quit"
		return
	}
	c.mode = pit.ModeQuit
}

func (c *Commander) promptSearch() {
	query, ok := c.readPrompt("/")
	if !ok || query == "" {
		c.editor.ClearMatch()
		return
	}
	c.searchText = query
	if !c.editor.PerformSearch(query) {
		c.SetMessage("no match: %s", query)
	}
}

func (c *Commander) promptCommand() {
	command, ok := c.readPrompt(":")
	if !ok {
		return
	}
	c.performCommand(command)
}

// readPrompt runs a prompt loop on the message bar: printable keys extend
// the text, Backspace trims, Enter accepts, Esc cancels.
func (c *Commander) readPrompt(label string) (string, bool) {
	text := ""
	defer func() { c.prompt = "" }()
	for {
		c.prompt = label + text
		c.screen.Render(c.editor, c)
		event, err := c.input.ReadKey()
		if err != nil {
			if err == io.EOF {
				continue // no input yet
			}
			return "", false
		}
		switch event.Key {
		case pit.KeyEsc:
			return "", false
		case pit.KeyEnter:
			return text, true
		case pit.KeyBackspace:
			if len(text) > 0 {
				text = text[:len(text)-1]
			}
		}
		if event.Ch != 0 && !unicode.IsControl(event.Ch) {
			text += string(event.Ch)
		}
	}
}

func (c *Commander) performCommand(command string) {
	e := c.editor
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return
	}

	if n, err := strconv.ParseInt(parts[0], 10, 64); err == nil {
		row := int(n - 1)
		if row > e.Buffer.Len()-1 {
			row = e.Buffer.Len() - 1
		}
		if row < 0 {
			row = 0
		}
		e.Cursor = pit.Point{Row: row, Col: 0}
		return
	}

	switch parts[0] {
	case "q":
		if e.Buffer.IsDirty() {
			c.message = "unsaved changes; use q! to discard"
			return
		}
		c.mode = pit.ModeQuit
	case "q!":
		c.mode = pit.ModeQuit
	case "w":
		if len(parts) == 2 {
			e.Buffer.Path = parts[1]
		}
		c.save()
	case "wq":
		if len(parts) == 2 {
			e.Buffer.Path = parts[1]
		}
		c.save()
		c.mode = pit.ModeQuit
	case "$":
		row := e.Buffer.Len() - 1
		if row < 0 {
			row = 0
		}
		e.Cursor = pit.Point{Row: row, Col: 0}
	case "eval":
		c.message = c.ParseEval(strings.Join(parts[1:], " "))
	default:
		c.SetMessage("unknown command: %s", parts[0])
	}
}

// Multiplier consumes the pending count prefix, defaulting to one.
func (c *Commander) Multiplier() int {
	if c.multiplier == "" {
		return 1
	}
	i, err := strconv.ParseInt(c.multiplier, 10, 64)
	c.multiplier = ""
	if err != nil {
		return 1
	}
	return int(i)
}
