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
package commander

import (
	"fmt"
	"os"

	"github.com/steelseries/golisp"

	"github.com/Luukdegram/pit/editor"
)

const version = "0.1.0"

func init() {
	golisp.Global.BindTo(golisp.SymbolWithName("TABSTOP"), golisp.FloatWithValue(float32(editor.TabStop)))
	golisp.MakePrimitiveFunction("pit-version", "0", versionImpl)
}

func versionImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(version), nil
}

// ParseEval evaluates one lisp expression for the :eval command and returns
// a message-bar rendering of the result.
func (c *Commander) ParseEval(command string) string {
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		return fmt.Sprintf("eval error: %v", err)
	}
	if golisp.FloatP(value) {
		return fmt.Sprintf("=> %v", golisp.FloatValue(value))
	}
	return fmt.Sprintf("=> %v", golisp.String(value))
}

// ParseEvalFile evaluates the contents of a lisp file; used by --eval.
func (c *Commander) ParseEvalFile(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return err.Error()
	}
	return c.ParseEval(string(b))
}
