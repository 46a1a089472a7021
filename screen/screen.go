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
package screen

import (
	"bytes"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Luukdegram/pit/editor"
	pit "github.com/Luukdegram/pit/types"
)

var (
	statusStyle = lipgloss.NewStyle().Reverse(true)
	gutterSGR   = "\x1b[90m"
)

// The Screen draws the state of an Editor onto a terminal using ANSI escape
// sequences. Each Render writes one full frame in a single flush.
type Screen struct {
	out  io.Writer
	size pit.Size
}

func NewScreen(out io.Writer, size pit.Size) *Screen {
	return &Screen{out: out, size: size}
}

func (s *Screen) SetSize(size pit.Size) {
	s.size = size
}

func (s *Screen) Size() pit.Size {
	return s.size
}

// Clear wipes the terminal; used on entry and on exit.
func (s *Screen) Clear() {
	io.WriteString(s.out, "\x1b[2J\x1b[H")
}

// Render paints the buffer, the status bar, the message bar, and places the
// terminal cursor. The editor's Scroll runs first so every coordinate read
// here is mutually consistent.
func (s *Screen) Render(e *editor.Editor, c pit.Commander) error {
	editSize := pit.Size{Rows: s.size.Rows - 2, Cols: s.size.Cols}
	e.SetSize(editSize)
	e.Scroll()

	var buf bytes.Buffer
	buf.WriteString("\x1b[?25l") // hide cursor while drawing
	buf.WriteString("\x1b[H")

	s.renderRows(&buf, e, editSize)
	s.renderStatusBar(&buf, e)
	s.renderMessageBar(&buf, c)

	fmt.Fprintf(&buf, "\x1b[%d;%dH",
		e.Cursor.Row-e.Offset.Rows+1,
		e.RenderCol-e.Offset.Cols+1)
	buf.WriteString("\x1b[?25h")

	_, err := s.out.Write(buf.Bytes())
	return err
}

func (s *Screen) renderRows(buf *bytes.Buffer, e *editor.Editor, size pit.Size) {
	gutter := e.Gutter()
	textCols := size.Cols - gutter
	for i := 0; i < size.Rows; i++ {
		fileRow := i + e.Offset.Rows
		buf.WriteString("\x1b[K")
		if fileRow >= e.Buffer.Len() {
			buf.WriteString("~")
			buf.WriteString("\r\n")
			continue
		}
		if gutter > 0 {
			buf.WriteString(gutterSGR)
			fmt.Fprintf(buf, "%*d ", gutter-1, fileRow+1)
			buf.WriteString("\x1b[39m")
		}
		s.renderLine(buf, e.Buffer.Get(fileRow), e.Offset.Cols, textCols)
		buf.WriteString("\r\n")
	}
}

// renderLine writes the visible slice of one row, switching SGR colors at
// highlight boundaries. Columns are visual widths, not rune counts.
func (s *Screen) renderLine(buf *bytes.Buffer, row *editor.Row, colOffset, textCols int) {
	current := -1
	col := 0
	for i, c := range row.Render {
		w := runewidth.RuneWidth(c)
		if w < 1 {
			w = 1
		}
		if col < colOffset {
			col += w
			continue
		}
		if col+w > colOffset+textCols {
			break
		}
		col += w
		if sgr := highlightColor(row.Highlights[i]); sgr != current {
			fmt.Fprintf(buf, "\x1b[%dm", sgr)
			current = sgr
		}
		buf.WriteRune(c)
	}
	if current != -1 {
		buf.WriteString("\x1b[39m")
	}
}

func highlightColor(h pit.Highlight) int {
	switch h {
	case pit.HighlightNumber:
		return 31
	case pit.HighlightPunctuation:
		return 36
	case pit.HighlightMatch:
		return 34
	default:
		return 39
	}
}

func (s *Screen) renderStatusBar(buf *bytes.Buffer, e *editor.Editor) {
	name := e.Buffer.Path
	if name == "" {
		name = "[No Name]"
	}
	dirty := ""
	if e.Buffer.IsDirty() {
		dirty = " (modified)"
	}
	finalText := fmt.Sprintf(" %d/%d ", e.Cursor.Row+1, e.Buffer.Len())
	text := fmt.Sprintf(" %s%s", name, dirty)
	for runewidth.StringWidth(text) < s.size.Cols-runewidth.StringWidth(finalText) {
		text += " "
	}
	text += finalText
	text = runewidth.Truncate(text, s.size.Cols, "")
	buf.WriteString("\x1b[K")
	buf.WriteString(statusStyle.Render(text))
	buf.WriteString("\r\n")
}

func (s *Screen) renderMessageBar(buf *bytes.Buffer, c pit.Commander) {
	line := c.GetMessage()
	if prompt := c.GetPrompt(); prompt != "" {
		line = prompt
	}
	line = runewidth.Truncate(line, s.size.Cols, "")
	buf.WriteString("\x1b[K")
	buf.WriteString(line)
}
