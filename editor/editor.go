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
	"os"
	"strconv"

	"github.com/Luukdegram/pit/pattern"
	pit "github.com/Luukdegram/pit/types"
)

// The Editor maintains the cursor and viewport against the active buffer.
// Cursor is in raw coordinates; RenderCol and Offset are recomputed by
// Scroll and are only guaranteed consistent after it runs.
type Editor struct {
	Cursor    pit.Point // cursor position, raw coordinates
	RenderCol int       // cursor render column, gutter included
	Offset    pit.Size  // top-left of the visible window
	Buffer    *Buffer

	ShowLineNumbers bool

	size     pit.Size
	gutter   int
	matchRow int // row holding a transient search highlight, -1 if none
}

func NewEditor() *Editor {
	return &Editor{Buffer: NewBuffer(), matchRow: -1}
}

func (e *Editor) SetSize(s pit.Size) {
	e.size = s
}

func (e *Editor) Size() pit.Size {
	return e.size
}

// Gutter is the width of the line-number margin, zero when disabled.
func (e *Editor) Gutter() int {
	return e.gutter
}

// Scroll re-derives the render column and clamps both offsets so the cursor
// stays inside the window. The renderer relies on this running before it
// reads any viewport state.
func (e *Editor) Scroll() {
	e.gutter = 0
	if e.ShowLineNumbers {
		e.gutter = len(strconv.Itoa(e.Buffer.Len()+1)) + 1
	}
	rc := 0
	if e.Cursor.Row < e.Buffer.Len() {
		rc = e.Buffer.Get(e.Cursor.Row).RenderIndex(e.Cursor.Col)
	}
	e.RenderCol = rc + e.gutter
	if e.Cursor.Row < e.Offset.Rows {
		e.Offset.Rows = e.Cursor.Row
	}
	if e.Cursor.Row-e.Offset.Rows >= e.size.Rows {
		e.Offset.Rows = e.Cursor.Row - e.size.Rows + 1
	}
	// Offset.Cols is in render columns without the gutter, which shrinks
	// the usable width on every line.
	textCols := e.size.Cols - e.gutter
	if textCols < 1 {
		textCols = 1
	}
	if rc < e.Offset.Cols {
		e.Offset.Cols = rc
	}
	if rc-e.Offset.Cols >= textCols {
		e.Offset.Cols = rc - textCols + 1
	}
}

// MoveCursor moves one step. Left at column zero wraps to the end of the
// previous row; right at end of row wraps to the start of the next. The
// column is clamped to the new row only after the row changes.
func (e *Editor) MoveCursor(direction int) {
	switch direction {
	case pit.MoveLeft:
		if e.Cursor.Col > 0 {
			e.Cursor.Col--
		} else if e.Cursor.Row > 0 {
			e.Cursor.Row--
			e.Cursor.Col = e.Buffer.RowLength(e.Cursor.Row)
		}
	case pit.MoveRight:
		if e.Cursor.Row < e.Buffer.Len() {
			if e.Cursor.Col < e.Buffer.RowLength(e.Cursor.Row) {
				e.Cursor.Col++
			} else if e.Cursor.Row < e.Buffer.Len()-1 {
				e.Cursor.Row++
				e.Cursor.Col = 0
			}
		}
	case pit.MoveUp:
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
		}
	case pit.MoveDown:
		if e.Cursor.Row < e.Buffer.Len()-1 {
			e.Cursor.Row++
		}
	}
	// don't go past the end of the current row
	if e.Cursor.Col > e.Buffer.RowLength(e.Cursor.Row) {
		e.Cursor.Col = e.Buffer.RowLength(e.Cursor.Row)
	}
}

func (e *Editor) MoveToBeginningOfLine() {
	e.Cursor.Col = 0
}

func (e *Editor) MoveToEndOfLine() {
	e.Cursor.Col = e.Buffer.RowLength(e.Cursor.Row)
}

// PageUp anchors the cursor at the top of the window and steps up one page.
func (e *Editor) PageUp() {
	e.Cursor.Row = e.Offset.Rows
	for i := 0; i < e.size.Rows; i++ {
		e.MoveCursor(pit.MoveUp)
	}
}

// PageDown anchors the cursor at the bottom of the window and steps down
// one page.
func (e *Editor) PageDown() {
	e.Cursor.Row = e.Offset.Rows + e.size.Rows - 1
	if e.Cursor.Row >= e.Buffer.Len() {
		e.Cursor.Row = e.Buffer.Len()
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
		}
	}
	for i := 0; i < e.size.Rows; i++ {
		e.MoveCursor(pit.MoveDown)
	}
}

// KeepCursorInRow revalidates the cursor after row inserts and deletes.
func (e *Editor) KeepCursorInRow() {
	if e.Buffer.Len() == 0 {
		e.Cursor = pit.Point{}
		return
	}
	if e.Cursor.Row >= e.Buffer.Len() {
		e.Cursor.Row = e.Buffer.Len() - 1
	}
	if e.Cursor.Row < 0 {
		e.Cursor.Row = 0
	}
	if e.Cursor.Col > e.Buffer.RowLength(e.Cursor.Row) {
		e.Cursor.Col = e.Buffer.RowLength(e.Cursor.Row)
	}
	if e.Cursor.Col < 0 {
		e.Cursor.Col = 0
	}
}

func (e *Editor) InsertChar(c rune) {
	if c == '\n' {
		e.InsertNewline()
		return
	}
	for e.Cursor.Row >= e.Buffer.Len() {
		e.Buffer.Insert(e.Buffer.Len(), "")
	}
	e.Buffer.Get(e.Cursor.Row).Insert(e.Cursor.Col, c)
	e.Cursor.Col++
}

// InsertNewline splits the current row at the cursor.
func (e *Editor) InsertNewline() {
	if e.Cursor.Row >= e.Buffer.Len() {
		e.Buffer.Insert(e.Buffer.Len(), "")
		e.Cursor.Row = e.Buffer.Len() - 1
	}
	row := e.Buffer.Get(e.Cursor.Row)
	rest := ""
	if e.Cursor.Col < row.Length() {
		rest = string(row.Raw[e.Cursor.Col:])
		row.Resize(e.Cursor.Col)
	}
	e.Buffer.Insert(e.Cursor.Row+1, rest)
	e.Cursor.Row++
	e.Cursor.Col = 0
}

// DelChar deletes the character before the cursor, merging the row into the
// previous one at column zero. At the very start of the buffer it does
// nothing.
func (e *Editor) DelChar() {
	if e.Buffer.Len() == 0 || e.Cursor.Row >= e.Buffer.Len() {
		return
	}
	if e.Cursor.Col == 0 && e.Cursor.Row == 0 {
		return
	}
	if e.Cursor.Col > 0 {
		e.Buffer.Get(e.Cursor.Row).Remove(e.Cursor.Col - 1)
		e.Cursor.Col--
		return
	}
	col := e.Buffer.RowLength(e.Cursor.Row - 1)
	e.Buffer.Delete(e.Cursor.Row)
	e.Cursor.Row--
	e.Cursor.Col = col
}

// DeleteRow removes the row under the cursor outright.
func (e *Editor) DeleteRow() {
	i := e.Cursor.Row
	if i >= e.Buffer.Len() {
		return
	}
	e.Buffer.rows = append(e.Buffer.rows[:i], e.Buffer.rows[i+1:]...)
	if n := e.Buffer.Len(); n > 0 {
		if i >= n {
			i = n - 1
		}
		// the deletion itself must leave the buffer dirty
		e.Buffer.rows[i].dirty = true
	}
	e.KeepCursorInRow()
}

// ReadFile loads path into the buffer, replacing its contents.
func (e *Editor) ReadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	e.Buffer = NewBuffer()
	e.Buffer.Path = path
	e.Cursor = pit.Point{}
	e.Offset = pit.Size{}
	e.matchRow = -1
	return e.Buffer.Load(f)
}

// WriteFile saves the buffer to its path, one line terminator per row. It
// reports the number of bytes written; ErrNoPath surfaces untouched so the
// caller can prompt for a destination and retry.
func (e *Editor) WriteFile() (int, error) {
	if e.Buffer.Path == "" {
		return 0, ErrNoPath
	}
	f, err := os.Create(e.Buffer.Path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	written := 0
	err = e.Buffer.Save(func(line []rune, i int) error {
		n, err := f.WriteString(string(line) + "\n")
		written += n
		return err
	})
	return written, err
}

// PerformSearch finds the next match after the cursor, wrapping around the
// buffer, moves the cursor to it and tags it for highlighting. The previous
// match's highlight is restored first.
func (e *Editor) PerformSearch(query string) bool {
	e.ClearMatch()
	if e.Buffer.Len() == 0 || query == "" {
		return false
	}
	row := e.Cursor.Row
	col := e.Cursor.Col + 1
	for i := 0; i <= e.Buffer.Len(); i++ {
		if row >= e.Buffer.Len() {
			row = 0
			col = 0
		}
		r := e.Buffer.Get(row)
		if col <= r.Length() {
			if off, ok := pattern.Search(query, e.Buffer.TextAfter(row, col)); ok {
				e.Cursor.Row = row
				e.Cursor.Col = col + off
				r.MarkMatch(e.Cursor.Col, len([]rune(query)))
				e.matchRow = row
				return true
			}
		}
		row++
		col = 0
	}
	return false
}

// ClearMatch restores default highlighting on the last search hit.
func (e *Editor) ClearMatch() {
	if e.matchRow >= 0 && e.matchRow < e.Buffer.Len() {
		e.Buffer.Get(e.matchRow).Update()
	}
	e.matchRow = -1
}
