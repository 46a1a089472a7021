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
	"io"
	"strings"
	"testing"

	pit "github.com/Luukdegram/pit/types"
)

func readOne(t *testing.T, input string) pit.Event {
	t.Helper()
	event, err := NewDecoder(strings.NewReader(input)).ReadKey()
	if err != nil {
		t.Fatalf("ReadKey(%q) failed: %+v", input, err)
	}
	return event
}

func TestDecodeCharacters(t *testing.T) {
	d := NewDecoder(strings.NewReader("ab"))
	for _, want := range "ab" {
		event, err := d.ReadKey()
		if err != nil {
			t.Fatalf("ReadKey failed: %+v", err)
		}
		if event.Ch != want {
			t.Errorf("ch = %q, want %q", event.Ch, want)
		}
	}
	if _, err := d.ReadKey(); err != io.EOF {
		t.Errorf("exhausted stream error = %v, want io.EOF", err)
	}
}

func TestDecodeEscapeSequences(t *testing.T) {
	cases := []struct {
		input string
		want  pit.Key
	}{
		{"\x1b[A", pit.KeyArrowUp},
		{"\x1b[B", pit.KeyArrowDown},
		{"\x1b[C", pit.KeyArrowRight},
		{"\x1b[D", pit.KeyArrowLeft},
		{"\x1b[H", pit.KeyHome},
		{"\x1b[F", pit.KeyEnd},
		{"\x1b[1~", pit.KeyHome},
		{"\x1b[2~", pit.KeyInsert},
		{"\x1b[3~", pit.KeyDelete},
		{"\x1b[4~", pit.KeyEnd},
		{"\x1b[5~", pit.KeyPageUp},
		{"\x1b[6~", pit.KeyPageDown},
		{"\x1b[7~", pit.KeyHome},
		{"\x1b[8~", pit.KeyEnd},
		{"\x1bOH", pit.KeyHome},
		{"\x1bOF", pit.KeyEnd},
	}
	for _, c := range cases {
		if event := readOne(t, c.input); event.Key != c.want {
			t.Errorf("decode(%q) = key %d, want %d", c.input, event.Key, c.want)
		}
	}
}

// one sequence yields exactly one key and leaves the decoder idle
func TestDecodeReturnsToIdle(t *testing.T) {
	d := NewDecoder(strings.NewReader("\x1b[Aq"))
	event, err := d.ReadKey()
	if err != nil || event.Key != pit.KeyArrowUp {
		t.Fatalf("first key = %+v, %v, want arrow up", event, err)
	}
	event, err = d.ReadKey()
	if err != nil || event.Ch != 'q' {
		t.Fatalf("second key = %+v, %v, want 'q'", event, err)
	}
}

func TestDecodeBareEscape(t *testing.T) {
	if event := readOne(t, "\x1b"); event.Key != pit.KeyEsc {
		t.Errorf("lone ESC = %+v, want bare escape", event)
	}
}

func TestDecodeMalformedSequences(t *testing.T) {
	// all of these degrade to a bare escape rather than failing
	for _, input := range []string{"\x1bx", "\x1b[", "\x1b[5x", "\x1b[9~", "\x1bOx", "\x1b[5"} {
		if event := readOne(t, input); event.Key != pit.KeyEsc {
			t.Errorf("decode(%q) = %+v, want bare escape", input, event)
		}
	}
}

func TestDecodeControlKeys(t *testing.T) {
	cases := []struct {
		input string
		want  pit.Key
	}{
		{"\r", pit.KeyEnter},
		{"\t", pit.KeyTab},
		{"\x7f", pit.KeyBackspace},
		{"\x11", pit.KeyCtrlQ},
		{"\x13", pit.KeyCtrlS},
	}
	for _, c := range cases {
		if event := readOne(t, c.input); event.Key != c.want {
			t.Errorf("decode(%q) = key %d, want %d", c.input, event.Key, c.want)
		}
	}
}
