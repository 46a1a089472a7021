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
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Luukdegram/pit/commander"
	"github.com/Luukdegram/pit/editor"
	"github.com/Luukdegram/pit/screen"
	"github.com/Luukdegram/pit/terminal"
)

func main() {
	var path, script string

	for i := 1; i < len(os.Args); i++ {
		switch os.Args[i] {
		case "--eval": // eval a lisp file and exit
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				fmt.Fprintln(os.Stderr, "No file specified for --eval option")
				os.Exit(1)
			}
		default:
			path = os.Args[i]
		}
	}

	// The editor manages all text manipulation.
	e := editor.NewEditor()
	e.ShowLineNumbers = true

	if path != "" {
		err := e.ReadFile(path)
		if os.IsNotExist(err) {
			// a new file: empty buffer with a destination
			e.Buffer.Path = path
		} else if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if script != "" {
		// Run a script and exit, no terminal needed.
		c := commander.NewCommander(e, nil, nil)
		fmt.Println(c.ParseEvalFile(script))
		return
	}

	// Open a log file.
	f, err := os.OpenFile(os.Getenv("HOME")+"/.pitlog", os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.SetOutput(f)
	defer f.Close()

	// Shutdown is cooperative: cancellation is observed between cycles.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err := run(ctx, e); err != nil {
		log.Output(1, err.Error())
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, e *editor.Editor) error {
	fd := int(os.Stdin.Fd())
	state, err := terminal.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer terminal.Restore(fd, state)

	size, err := terminal.Size(fd)
	if err != nil {
		return err
	}

	s := screen.NewScreen(os.Stdout, size)
	d := terminal.NewDecoder(os.Stdin)
	c := commander.NewCommander(e, s, d)

	// Run the main event loop: render, read one key, dispatch.
	for c.IsRunning() && ctx.Err() == nil {
		if size, err := terminal.Size(fd); err == nil {
			s.SetSize(size)
		}
		if err := s.Render(e, c); err != nil {
			return err
		}
		event, err := d.ReadKey()
		if err != nil {
			if err == io.EOF {
				continue // no input within the read timeout
			}
			return err
		}
		if err := c.ProcessKey(event); err != nil {
			log.Output(1, err.Error())
		}
	}
	s.Clear()
	return nil
}
