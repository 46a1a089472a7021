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
	"bufio"
	"errors"
	"io"
	"strings"
)

// ErrNoPath is returned by Save when the buffer has no backing path yet.
// Callers are expected to prompt for one and retry.
var ErrNoPath = errors.New("buffer has no backing path")

// A LineSink receives one raw line per call during a save. A non-nil error
// aborts the save.
type LineSink func(line []rune, i int) error

// A Buffer is an ordered sequence of rows, optionally backed by a path.
type Buffer struct {
	rows []*Row
	Path string
}

func NewBuffer() *Buffer {
	return &Buffer{rows: make([]*Row, 0)}
}

func (b *Buffer) Len() int {
	return len(b.rows)
}

// Get returns the row at index i. Callers bounds-check against Len first;
// an out-of-range index is a programming error and panics.
func (b *Buffer) Get(i int) *Row {
	if i < 0 || i >= len(b.rows) {
		panic("editor: row index out of range")
	}
	return b.rows[i]
}

// RowLength returns the raw length of row i, or zero when i is out of range.
func (b *Buffer) RowLength(i int) int {
	if i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

// Insert creates a row from content at index i; i == Len appends.
func (b *Buffer) Insert(i int, content string) {
	row := NewRow(content)
	row.Update()
	if i >= len(b.rows) {
		b.rows = append(b.rows, row)
		return
	}
	b.rows = append(b.rows, nil)
	copy(b.rows[i+1:], b.rows[i:])
	b.rows[i] = row
}

// Delete removes the row at index i, appending its raw content to the row
// above. Deleting at Len is a no-op, and so is deleting row 0: there is no
// previous row to receive the content.
func (b *Buffer) Delete(i int) {
	if i == 0 || i >= len(b.rows) {
		return
	}
	prev := b.rows[i-1]
	prev.AppendSlice(prev.Length(), b.rows[i].Raw)
	prev.dirty = true
	b.rows = append(b.rows[:i], b.rows[i+1:]...)
}

// IsDirty reports whether any row has unsaved changes.
func (b *Buffer) IsDirty() bool {
	for _, row := range b.rows {
		if row.dirty {
			return true
		}
	}
	return false
}

// Load appends rows from a line source, stripping trailing carriage returns.
func (b *Buffer) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		b.Insert(len(b.rows), line)
	}
	return scanner.Err()
}

// Save writes every row to the sink in order. It fails with ErrNoPath when
// the buffer has no destination. A sink failure stops the save; rows not yet
// written keep their dirty flags so a retry rewrites them.
func (b *Buffer) Save(sink LineSink) error {
	if b.Path == "" {
		return ErrNoPath
	}
	for i, row := range b.rows {
		if err := sink(row.Raw, i); err != nil {
			return err
		}
		row.clearDirty()
	}
	return nil
}

// TextAfter returns the raw text of row after column col.
func (b *Buffer) TextAfter(row, col int) string {
	if row >= len(b.rows) {
		return ""
	}
	raw := b.rows[row].Raw
	if col >= len(raw) {
		return ""
	}
	return string(raw[col:])
}
