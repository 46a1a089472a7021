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
	"errors"
	"strings"
	"testing"
)

func TestBufferInsert(t *testing.T) {
	b := NewBuffer()
	b.Insert(0, "first")
	b.Insert(1, "third")
	b.Insert(1, "second")
	if b.Len() != 3 {
		t.Fatalf("row count = %d, want 3", b.Len())
	}
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if got := string(b.Get(i).Raw); got != w {
			t.Errorf("row %d = %q, want %q", i, got, w)
		}
	}
}

func TestBufferDeleteMerges(t *testing.T) {
	b := NewBuffer()
	b.Insert(0, "ab")
	b.Insert(1, "cd")
	b.Delete(1)
	if b.Len() != 1 {
		t.Fatalf("row count = %d, want 1", b.Len())
	}
	if got := string(b.Get(0).Raw); got != "abcd" {
		t.Errorf("merged row = %q, want %q", got, "abcd")
	}
	if !b.IsDirty() {
		t.Error("merge left the buffer clean")
	}
}

func TestBufferDeletePastEndIsNoop(t *testing.T) {
	b := NewBuffer()
	b.Insert(0, "ab")
	b.Insert(1, "cd")
	b.Delete(2)
	if b.Len() != 2 {
		t.Errorf("row count = %d, want 2", b.Len())
	}
}

func TestBufferDeleteFirstRowIsNoop(t *testing.T) {
	b := NewBuffer()
	b.Insert(0, "only")
	b.Delete(0)
	if b.Len() != 1 {
		t.Errorf("row count = %d, want 1", b.Len())
	}
}

func TestBufferGetPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get out of range did not panic")
		}
	}()
	NewBuffer().Get(0)
}

func TestBufferLoadStripsCarriageReturn(t *testing.T) {
	b := NewBuffer()
	if err := b.Load(strings.NewReader("one\r\ntwo\nthree")); err != nil {
		t.Fatalf("Load failed: %+v", err)
	}
	want := []string{"one", "two", "three"}
	if b.Len() != len(want) {
		t.Fatalf("row count = %d, want %d", b.Len(), len(want))
	}
	for i, w := range want {
		if got := string(b.Get(i).Raw); got != w {
			t.Errorf("row %d = %q, want %q", i, got, w)
		}
	}
}

func TestBufferSaveWithoutPath(t *testing.T) {
	b := NewBuffer()
	b.Insert(0, "x")
	err := b.Save(func(line []rune, i int) error { return nil })
	if !errors.Is(err, ErrNoPath) {
		t.Errorf("Save without path = %v, want ErrNoPath", err)
	}
}

func TestBufferSaveClearsDirtyFlags(t *testing.T) {
	b := NewBuffer()
	b.Insert(0, "one")
	b.Insert(1, "two")
	b.Get(0).Insert(0, 'x')
	b.Path = "somewhere"

	var lines []string
	err := b.Save(func(line []rune, i int) error {
		lines = append(lines, string(line))
		return nil
	})
	if err != nil {
		t.Fatalf("Save failed: %+v", err)
	}
	if len(lines) != 2 || lines[0] != "xone" || lines[1] != "two" {
		t.Errorf("saved lines = %v", lines)
	}
	if b.IsDirty() {
		t.Error("Save left the buffer dirty")
	}
}

func TestBufferSavePartialFailure(t *testing.T) {
	b := NewBuffer()
	b.Insert(0, "one")
	b.Insert(1, "two")
	b.Insert(2, "three")
	for i := 0; i < b.Len(); i++ {
		b.Get(i).Insert(0, '!')
	}
	b.Path = "somewhere"

	sinkErr := errors.New("disk full")
	err := b.Save(func(line []rune, i int) error {
		if i == 1 {
			return sinkErr
		}
		return nil
	})
	if !errors.Is(err, sinkErr) {
		t.Fatalf("Save = %v, want sink error", err)
	}
	if b.Get(0).Dirty() {
		t.Error("written row still dirty")
	}
	if !b.Get(1).Dirty() || !b.Get(2).Dirty() {
		t.Error("unwritten rows lost their dirty flags")
	}
}

// inserting n lines, saving, and reloading yields identical raw content
func TestBufferRoundTrip(t *testing.T) {
	lines := []string{"alpha", "", "beta\tgamma", "delta"}
	b := NewBuffer()
	for _, line := range lines {
		b.Insert(b.Len(), line)
	}
	b.Path = "somewhere"

	var out strings.Builder
	err := b.Save(func(line []rune, i int) error {
		out.WriteString(string(line))
		out.WriteString("\n")
		return nil
	})
	if err != nil {
		t.Fatalf("Save failed: %+v", err)
	}

	reloaded := NewBuffer()
	if err := reloaded.Load(strings.NewReader(out.String())); err != nil {
		t.Fatalf("Load failed: %+v", err)
	}
	if reloaded.Len() != len(lines) {
		t.Fatalf("reloaded %d rows, want %d", reloaded.Len(), len(lines))
	}
	for i, w := range lines {
		if got := string(reloaded.Get(i).Raw); got != w {
			t.Errorf("row %d = %q, want %q", i, got, w)
		}
	}
}
