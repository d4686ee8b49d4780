// Package match evaluates parsed patterns against input strings.
//
// Evaluation is a direct backtracking walk over the syntax tree: each
// subexpression maps a starting position to the set of positions it can
// end at, together with the capture groups recorded on the way there.
package match

import (
	"fmt"
	"sort"

	"github.com/dhamidi/rex/syntax"
)

// Match describes one successful match: the half-open range of runes it
// consumed and the text recorded by each capture group along that path.
// Begin and End index the rune sequence of the input, not its bytes.
type Match struct {
	Begin  int
	End    int
	Groups map[int]string
}

// result is one way a subexpression can finish: an end position plus the
// captures recorded up to that point.
type result struct {
	pos  int
	caps map[int][]rune
}

// MatchString reports whether re matches anywhere in s.
func MatchString(re syntax.Regexp, s string) bool {
	_, ok := Find(re, s)
	return ok
}

// Find returns the leftmost match of re in s, preferring the longest
// result at that position.
func Find(re syntax.Regexp, s string) (Match, bool) {
	runes := []rune(s)
	for start := 0; start <= len(runes); start++ {
		results := matchHere(re, runes, start, nil)
		if len(results) == 0 {
			continue
		}
		best := results[0]
		for _, r := range results[1:] {
			if r.pos > best.pos {
				best = r
			}
		}
		groups := make(map[int]string, len(best.caps))
		for index, text := range best.caps {
			groups[index] = string(text)
		}
		return Match{Begin: start, End: best.pos, Groups: groups}, true
	}
	return Match{}, false
}

func matchHere(re syntax.Regexp, runes []rune, pos int, caps map[int][]rune) []result {
	switch n := re.(type) {
	case syntax.Empty:
		return []result{{pos, caps}}

	case syntax.Literal:
		if pos < len(runes) && runes[pos] == n.Char {
			return []result{{pos + 1, caps}}
		}
		return nil

	case syntax.Concat:
		results := []result{{pos, caps}}
		for _, sub := range n.Subs {
			var next []result
			for _, r := range results {
				next = append(next, matchHere(sub, runes, r.pos, r.caps)...)
			}
			results = unique(next)
			if len(results) == 0 {
				break
			}
		}
		return results

	case syntax.Alternate:
		var all []result
		for _, sub := range n.Subs {
			all = append(all, matchHere(sub, runes, pos, caps)...)
		}
		return unique(all)

	case syntax.Star:
		return matchRepeat(n.Sub, runes, pos, caps, 0, 0, -1)

	case syntax.Plus:
		return matchRepeat(n.Sub, runes, pos, caps, 0, 1, -1)

	case syntax.Quest:
		return matchRepeat(n.Sub, runes, pos, caps, 0, 0, 1)

	case syntax.Capture:
		var out []result
		for _, r := range matchHere(n.Sub, runes, pos, caps) {
			next := make(map[int][]rune, len(r.caps)+1)
			for k, v := range r.caps {
				next[k] = v
			}
			next[n.Index] = append([]rune(nil), runes[pos:r.pos]...)
			out = append(out, result{r.pos, next})
		}
		return unique(out)
	}
	panic(fmt.Sprintf("match: unknown node type %T", re))
}

// matchRepeat expands a repetition between min and max iterations; max < 0
// means unbounded. An iteration that consumes no input counts once toward
// the minimum and is not expanded further, so star-of-empty terminates and
// plus-of-empty can still reach one iteration.
func matchRepeat(sub syntax.Regexp, runes []rune, pos int, caps map[int][]rune, count, min, max int) []result {
	var results []result
	if count >= min {
		results = append(results, result{pos, caps})
	}
	if max >= 0 && count == max {
		return unique(results)
	}
	for _, r := range matchHere(sub, runes, pos, caps) {
		if r.pos == pos {
			if count+1 >= min {
				results = append(results, result{pos, r.caps})
			}
			continue
		}
		results = append(results, matchRepeat(sub, runes, r.pos, r.caps, count+1, min, max)...)
	}
	return unique(results)
}

// unique deduplicates results by end position and capture assignment, which
// keeps the worst case of nested repetition in check.
func unique(results []result) []result {
	seen := make(map[string]bool, len(results))
	var out []result
	for _, r := range results {
		indexes := make([]int, 0, len(r.caps))
		for index := range r.caps {
			indexes = append(indexes, index)
		}
		sort.Ints(indexes)
		sig := fmt.Sprintf("%d:", r.pos)
		for _, index := range indexes {
			sig += fmt.Sprintf("%d=%s|", index, string(r.caps[index]))
		}
		if !seen[sig] {
			seen[sig] = true
			out = append(out, r)
		}
	}
	return out
}
