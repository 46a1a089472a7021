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
package pattern

import "testing"

func TestMatch(t *testing.T) {
	cases := []struct {
		pattern string
		text    string
		want    bool
	}{
		// empty pattern matches anything
		{"", "", true},
		{"", "anything", true},
		// literals match a prefix, trailing text is fine
		{"ab", "abc", true},
		{"abc", "ab", false},
		// wildcard
		{"a.c", "abc", true},
		{"a.c", "ac", false},
		// optional
		{"a?b?c?", "abc", true},
		{"a?b?c?", "", true},
		{"colou?r", "color", true},
		{"colou?r", "colour", true},
		// star, greedy with backtracking
		{"a*b", "aaaaab", true},
		{"a*b", "b", true},
		{"a*b", "aaaaa", false},
		{".*x", "aaxa", true},
		// groups, first ) closes
		{"(the)?movie", "movie", true},
		{"(the)?movie", "themovie", true},
		{"(the)movie", "movie", false},
		{"(ab)*c", "ababc", true},
		{"(ab)*c", "c", true},
		{"(ab)*c", "abab", false},
		{"(th.)?movie", "thxmovie", true},
		// end anchor requires exhaustion
		{"abc$", "abc", true},
		{"abc$", "abcd", false},
		{"a*$", "aaa", true},
	}
	for _, c := range cases {
		if got := Match(c.pattern, c.text); got != c.want {
			t.Errorf("Match(%q, %q) = %v, want %v", c.pattern, c.text, got, c.want)
		}
	}
}

func TestSearch(t *testing.T) {
	off, ok := Search("abc", "xxabcyy")
	if !ok || off != 2 {
		t.Errorf("Search offset = %d, %v, want 2, true", off, ok)
	}
	off, ok = Search("a$", "bba")
	if !ok || off != 2 {
		t.Errorf("Search anchored-end offset = %d, %v, want 2, true", off, ok)
	}
	if _, ok := Search("zz", "xxabcyy"); ok {
		t.Error("Search found a match that is not there")
	}
}

func TestSearchStartAnchor(t *testing.T) {
	off, ok := Search("^abc", "abcdef")
	if !ok || off != 0 {
		t.Errorf("Search(^abc) = %d, %v, want 0, true", off, ok)
	}
	if _, ok := Search("^abc", "xabc"); ok {
		t.Error("^ anchor matched away from the start")
	}
}
