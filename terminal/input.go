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
package terminal

import (
	"bufio"
	"io"

	pit "github.com/Luukdegram/pit/types"
)

const (
	ctrlQ = 0x11
	ctrlS = 0x13
	esc   = 0x1b
)

// A Decoder turns a raw input stream into logical key events, absorbing
// multi-byte escape sequences. Each ReadKey call yields exactly one event;
// a truncated or unrecognized sequence degrades to a bare Escape rather
// than blocking. The unit that follows ESC in an unrecognized sequence is
// dropped, which can lose a legitimate character key.
type Decoder struct {
	r *bufio.Reader
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// ReadKey reads one logical key. io.EOF means no unit was available; a
// caller on a timeout-read terminal treats that as "no input yet" and any
// other error as a hard I/O failure.
func (d *Decoder) ReadKey() (pit.Event, error) {
	c, _, err := d.r.ReadRune()
	if err != nil {
		return pit.Event{}, err
	}
	if c != esc {
		return plainKey(c), nil
	}

	c, _, err = d.r.ReadRune()
	if err != nil {
		// nothing followed the escape unit
		return pit.Event{Key: pit.KeyEsc}, nil
	}
	switch c {
	case '[':
		return d.readBracket(), nil
	case 'O':
		return d.readO(), nil
	default:
		return pit.Event{Key: pit.KeyEsc}, nil
	}
}

// readBracket decodes the tail of an ESC [ sequence.
func (d *Decoder) readBracket() pit.Event {
	c, _, err := d.r.ReadRune()
	if err != nil {
		return pit.Event{Key: pit.KeyEsc}
	}
	if c >= '0' && c <= '9' {
		tilde, _, err := d.r.ReadRune()
		if err != nil || tilde != '~' {
			return pit.Event{Key: pit.KeyEsc}
		}
		switch c {
		case '1', '7':
			return pit.Event{Key: pit.KeyHome}
		case '2':
			return pit.Event{Key: pit.KeyInsert}
		case '3':
			return pit.Event{Key: pit.KeyDelete}
		case '4', '8':
			return pit.Event{Key: pit.KeyEnd}
		case '5':
			return pit.Event{Key: pit.KeyPageUp}
		case '6':
			return pit.Event{Key: pit.KeyPageDown}
		default:
			return pit.Event{Key: pit.KeyEsc}
		}
	}
	switch c {
	case 'A':
		return pit.Event{Key: pit.KeyArrowUp}
	case 'B':
		return pit.Event{Key: pit.KeyArrowDown}
	case 'C':
		return pit.Event{Key: pit.KeyArrowRight}
	case 'D':
		return pit.Event{Key: pit.KeyArrowLeft}
	case 'H':
		return pit.Event{Key: pit.KeyHome}
	case 'F':
		return pit.Event{Key: pit.KeyEnd}
	default:
		return pit.Event{Key: pit.KeyEsc}
	}
}

// readO decodes the tail of an ESC O sequence.
func (d *Decoder) readO() pit.Event {
	c, _, err := d.r.ReadRune()
	if err != nil {
		return pit.Event{Key: pit.KeyEsc}
	}
	switch c {
	case 'H':
		return pit.Event{Key: pit.KeyHome}
	case 'F':
		return pit.Event{Key: pit.KeyEnd}
	default:
		return pit.Event{Key: pit.KeyEsc}
	}
}

func plainKey(c rune) pit.Event {
	switch c {
	case '\r', '\n':
		return pit.Event{Key: pit.KeyEnter}
	case '\t':
		return pit.Event{Key: pit.KeyTab}
	case 0x7f, 0x08:
		return pit.Event{Key: pit.KeyBackspace}
	case ctrlQ:
		return pit.Event{Key: pit.KeyCtrlQ}
	case ctrlS:
		return pit.Event{Key: pit.KeyCtrlS}
	default:
		return pit.Event{Ch: c}
	}
}
