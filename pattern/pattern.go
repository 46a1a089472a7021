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

// Package pattern is a small backtracking matcher over a restricted
// grammar: literals, `.`, `?` and `*` quantifiers, non-nesting `(...)`
// groups with an optional trailing quantifier, and the `^` and `$` anchors.
// It is deliberately not a regular-expression engine.
package pattern

// Match reports whether pattern matches a prefix of text. Trailing text is
// not required to be consumed; use `$` to demand exhaustion.
func Match(pattern, text string) bool {
	return match([]rune(pattern), []rune(text))
}

// Search reports the first offset in text where pattern matches. A leading
// `^` anchors the attempt to offset zero.
func Search(pattern, text string) (int, bool) {
	p := []rune(pattern)
	t := []rune(text)
	if len(p) > 0 && p[0] == '^' {
		if match(p[1:], t) {
			return 0, true
		}
		return 0, false
	}
	for i := 0; i <= len(t); i++ {
		if match(p, t[i:]) {
			return i, true
		}
	}
	return 0, false
}

func match(p, t []rune) bool {
	if len(p) == 0 {
		return true
	}
	if p[0] == '$' && len(p) == 1 {
		return len(t) == 0
	}
	if len(p) >= 2 && p[1] == '?' {
		return matchOptional(p, t)
	}
	if len(p) >= 2 && p[1] == '*' {
		return matchStar(p, t)
	}
	if p[0] == '(' {
		return matchGroup(p, t)
	}
	if len(t) > 0 && matchOne(p[0], t[0]) {
		return match(p[1:], t[1:])
	}
	return false
}

func matchOne(p, c rune) bool {
	return p == '.' || p == c
}

// `x?`: consume-first, then fall back to skipping the unit.
func matchOptional(p, t []rune) bool {
	if len(t) > 0 && matchOne(p[0], t[0]) && match(p[2:], t[1:]) {
		return true
	}
	return match(p[2:], t)
}

// `x*`: greedy; consume one unit and retry the same quantified unit, with
// backtracking depth bounded by the run length.
func matchStar(p, t []rune) bool {
	if len(t) > 0 && matchOne(p[0], t[0]) && matchStar(p, t[1:]) {
		return true
	}
	return match(p[2:], t)
}

// matchGroup handles `(...)` with an optional trailing quantifier. Groups do
// not nest: the first `)` closes the group.
func matchGroup(p, t []rune) bool {
	close := 1
	for close < len(p) && p[close] != ')' {
		close++
	}
	if close == len(p) {
		// unterminated group, treat `(` as a literal
		if len(t) > 0 && t[0] == '(' {
			return match(p[1:], t[1:])
		}
		return false
	}
	content := p[1:close]
	rest := p[close+1:]

	if len(rest) > 0 && rest[0] == '?' {
		if groupOnce(content, t) && match(rest[1:], t[len(content):]) {
			return true
		}
		return match(rest[1:], t)
	}
	if len(rest) > 0 && rest[0] == '*' {
		return matchGroupStar(content, rest[1:], t)
	}
	if groupOnce(content, t) {
		return match(rest, t[len(content):])
	}
	return false
}

// groupOnce matches the group's literal content against a prefix of t.
func groupOnce(content, t []rune) bool {
	if len(content) == 0 || len(t) < len(content) {
		return len(content) == 0
	}
	for i, c := range content {
		if !matchOne(c, t[i]) {
			return false
		}
	}
	return true
}

func matchGroupStar(content, rest, t []rune) bool {
	if len(content) > 0 && groupOnce(content, t) && matchGroupStar(content, rest, t[len(content):]) {
		return true
	}
	return match(rest, t)
}
