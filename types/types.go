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
package types

// Editor modes
const (
	ModeSelect = 0
	ModeInsert = 1
	ModeQuit   = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// A Highlight classifies one rendered character for display.
type Highlight byte

const (
	HighlightNone Highlight = iota
	HighlightNumber
	HighlightPunctuation
	HighlightMatch
)

// A Key identifies a logical, non-character key decoded from the input
// stream. Character keys are carried separately as runes.
type Key int

const (
	KeyNone Key = iota
	KeyEsc
	KeyEnter
	KeyTab
	KeyBackspace
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyCtrlQ
	KeyCtrlS
)

// An Event is one logical key produced by the input decoder. Exactly one
// of Key and Ch is set.
type Event struct {
	Key Key
	Ch  rune
}

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// The Commander reports input-mode state for display.
type Commander interface {
	GetMode() int
	GetMessage() string
	GetPrompt() string
}
