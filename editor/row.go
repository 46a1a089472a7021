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
	"github.com/mattn/go-runewidth"

	pit "github.com/Luukdegram/pit/types"
)

// Tab characters are rendered as spaces up to the next multiple of TabStop.
const TabStop = 4

// A Row is one line of text. Raw holds the characters as edited; Render and
// Highlights are derived from Raw and rebuilt by Update after every raw
// mutation, never lazily.
type Row struct {
	Raw        []rune
	Render     []rune
	Highlights []pit.Highlight
	dirty      bool
}

func NewRow(content string) *Row {
	r := &Row{Raw: []rune(content)}
	r.Render = append([]rune(nil), r.Raw...)
	r.Highlights = make([]pit.Highlight, len(r.Render))
	return r
}

// Update rebuilds Render from Raw, expanding tabs, and reclassifies
// Highlights. Any transient search-match tags are cleared here.
func (r *Row) Update() {
	render := make([]rune, 0, len(r.Raw))
	col := 0
	for _, c := range r.Raw {
		w := width(c, col)
		if c == '\t' {
			for i := 0; i < w; i++ {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
		col += w
	}
	r.Render = render
	r.Highlights = make([]pit.Highlight, len(r.Render))
	defaultHighlighter.highlight(r)
}

func (r *Row) Length() int {
	return len(r.Raw)
}

func (r *Row) DisplayText() string {
	return string(r.Render)
}

func (r *Row) Dirty() bool {
	return r.dirty
}

func (r *Row) clearDirty() {
	r.dirty = false
}

// Insert places c at index i, appending when i is past the end.
func (r *Row) Insert(i int, c rune) {
	if i > len(r.Raw) {
		i = len(r.Raw)
	}
	r.Raw = append(r.Raw, 0)
	copy(r.Raw[i+1:], r.Raw[i:])
	r.Raw[i] = c
	r.dirty = true
	r.Update()
}

// Replace overwrites the character at index i; out-of-range is a no-op.
func (r *Row) Replace(i int, c rune) {
	if i >= len(r.Raw) {
		return
	}
	r.Raw[i] = c
	r.dirty = true
	r.Update()
}

// Remove deletes the character at index i; out-of-range is a no-op.
func (r *Row) Remove(i int) {
	if i >= len(r.Raw) {
		return
	}
	r.Raw = append(r.Raw[:i], r.Raw[i+1:]...)
	r.dirty = true
	r.Update()
}

// AppendSlice inserts cs at index i. It does not mark the row dirty; callers
// doing user-visible merges set that themselves.
func (r *Row) AppendSlice(i int, cs []rune) {
	if i > len(r.Raw) {
		i = len(r.Raw)
	}
	raw := make([]rune, 0, len(r.Raw)+len(cs))
	raw = append(raw, r.Raw[:i]...)
	raw = append(raw, cs...)
	raw = append(raw, r.Raw[i:]...)
	r.Raw = raw
	r.Update()
}

// Resize truncates Raw to n characters or pads it with zero runes.
func (r *Row) Resize(n int) {
	if n <= len(r.Raw) {
		r.Raw = r.Raw[:n]
	} else {
		for len(r.Raw) < n {
			r.Raw = append(r.Raw, 0)
		}
	}
	r.dirty = true
	r.Update()
}

// width is the rendered width of one raw character at render column col.
func width(c rune, col int) int {
	if c == '\t' {
		return TabStop - col%TabStop
	}
	if w := runewidth.RuneWidth(c); w > 1 {
		return w
	}
	return 1
}

// RenderIndex maps an index into Raw to its render column.
func (r *Row) RenderIndex(rawIdx int) int {
	if rawIdx > len(r.Raw) {
		rawIdx = len(r.Raw)
	}
	col := 0
	for j := 0; j < rawIdx; j++ {
		col += width(r.Raw[j], col)
	}
	return col
}

// RawIndex maps a render column back to an index into Raw. It is the left
// inverse of RenderIndex for columns that do not fall inside a tab's
// expansion span; columns past the last character map to len(Raw).
func (r *Row) RawIndex(renderCol int) int {
	col := 0
	for j, c := range r.Raw {
		col += width(c, col)
		if col > renderCol {
			return j
		}
	}
	return len(r.Raw)
}

// renderElements counts the Render elements produced by the first rawIdx
// raw characters. Tabs expand to one element per column they cover; every
// other rune is a single element regardless of its display width.
func (r *Row) renderElements(rawIdx int) int {
	if rawIdx > len(r.Raw) {
		rawIdx = len(r.Raw)
	}
	n, col := 0, 0
	for j := 0; j < rawIdx; j++ {
		w := width(r.Raw[j], col)
		col += w
		if r.Raw[j] == '\t' {
			n += w
		} else {
			n++
		}
	}
	return n
}

// MarkMatch tags length raw characters starting at rawIdx as a search match.
// The tag persists until the next Update.
func (r *Row) MarkMatch(rawIdx, length int) {
	start := r.renderElements(rawIdx)
	end := r.renderElements(rawIdx + length)
	for k := start; k < end && k < len(r.Highlights); k++ {
		r.Highlights[k] = pit.HighlightMatch
	}
}
