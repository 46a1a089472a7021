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

//go:build linux || darwin

package terminal

import (
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	pit "github.com/Luukdegram/pit/types"
)

// MakeRaw puts the terminal into non-canonical, non-echoing mode. Reads are
// additionally given a tenth-of-a-second timeout so a lone Escape key does
// not stall the decoder waiting for the rest of a sequence.
func MakeRaw(fd int) (*term.State, error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		term.Restore(fd, state)
		return nil, err
	}
	termios.Cc[unix.VMIN] = 0
	termios.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, termios); err != nil {
		term.Restore(fd, state)
		return nil, err
	}
	return state, nil
}

// Restore returns the terminal to its pre-raw state.
func Restore(fd int, state *term.State) error {
	return term.Restore(fd, state)
}

// Size reports the terminal grid size.
func Size(fd int) (pit.Size, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return pit.Size{}, err
	}
	return pit.Size{Rows: int(ws.Row), Cols: int(ws.Col)}, nil
}
