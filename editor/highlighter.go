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
	"regexp"
	"unicode/utf8"

	pit "github.com/Luukdegram/pit/types"
)

// The Highlighter classifies rendered text for display.
type Highlighter struct {
	numberPattern      *regexp.Regexp
	punctuationPattern *regexp.Regexp
}

var defaultHighlighter = NewHighlighter()

func NewHighlighter() *Highlighter {
	h := &Highlighter{}
	h.numberPattern = regexp.MustCompile("[0-9]+")
	h.punctuationPattern = regexp.MustCompile("\\(|\\)|,|:|=|\\[|\\]|\\{|\\}|\\+|-|\\*|<|>|;")
	return h
}

// highlight classifies row.Render into row.Highlights. Both patterns report
// byte ranges, so the ranges are walked rune by rune.
func (h *Highlighter) highlight(r *Row) {
	line := string(r.Render)

	// byte offset -> index into Render
	runeAt := make(map[int]int, len(r.Render))
	b := 0
	for i, c := range r.Render {
		runeAt[b] = i
		b += utf8.RuneLen(c)
	}

	apply := func(matches [][]int, tag pit.Highlight) {
		for _, match := range matches {
			for k := match[0]; k < match[1]; {
				r.Highlights[runeAt[k]] = tag
				_, size := utf8.DecodeRuneInString(line[k:])
				k += size
			}
		}
	}

	apply(h.numberPattern.FindAllStringIndex(line, -1), pit.HighlightNumber)
	apply(h.punctuationPattern.FindAllStringIndex(line, -1), pit.HighlightPunctuation)
}
