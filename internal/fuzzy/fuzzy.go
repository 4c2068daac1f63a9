// Package fuzzy implements the pinned fuzzy-match scoring spec.md §4.3
// describes. It is deliberately NOT grounded on github.com/sahilm/fuzzy:
// that library's Sublime-Text-style scoring doesn't reproduce the spec's
// +15/+30/+20/-1 rule, so the algorithm here is written directly against
// the spec and the original_source C++'s filter_demo/test_fuzzy behavior.
// See DESIGN.md's "Dropped teacher dependencies".
package fuzzy

import (
	"unicode"

	"golang.org/x/exp/slices"
)

// Match is the result of matching pattern against a single target string.
type Match struct {
	Matched   bool
	Score     int
	Positions []int // rune indices into target, in match order
}

func fold(r rune, caseSensitive bool) rune {
	if caseSensitive {
		return r
	}
	return unicode.ToLower(r)
}

func isBoundary(runes []rune, idx int) bool {
	if idx == 0 {
		return true
	}
	prev := runes[idx-1]
	return unicode.IsSpace(prev) || unicode.IsPunct(prev)
}

// MatchString scans target left to right, advancing a pointer into pattern
// whenever characters match under the case-fold rule (unless
// caseSensitive). An empty pattern always matches with score 0.
func MatchString(pattern, target string, caseSensitive bool) Match {
	patRunes := []rune(pattern)
	tgtRunes := []rune(target)

	if len(patRunes) == 0 {
		return Match{Matched: true, Score: 0}
	}

	positions := make([]int, 0, len(patRunes))
	pi := 0
	lastMatched := -1
	score := 0
	gapRunes := 0

	for ti := 0; ti < len(tgtRunes) && pi < len(patRunes); ti++ {
		if fold(tgtRunes[ti], caseSensitive) != fold(patRunes[pi], caseSensitive) {
			if len(positions) > 0 {
				gapRunes++
			}
			continue
		}

		score += 15
		if len(positions) > 0 && lastMatched == ti-1 {
			score += 30
		}
		if isBoundary(tgtRunes, ti) {
			score += 20
		}
		if gapRunes > 0 {
			score -= gapRunes
			gapRunes = 0
		}

		positions = append(positions, ti)
		lastMatched = ti
		pi++
	}

	if pi < len(patRunes) {
		return Match{Matched: false}
	}
	return Match{Matched: true, Score: score, Positions: positions}
}

// Item pairs an input index with its match result, used by Filter.
type Item struct {
	Index int
	Match Match
}

// Filter returns, for every string in items that fuzzy-matches query, its
// index and match — sorted by descending score, ties broken by ascending
// index.
func Filter(query string, items []string, caseSensitive bool) []Item {
	var out []Item
	for i, s := range items {
		m := MatchString(query, s, caseSensitive)
		if m.Matched {
			out = append(out, Item{Index: i, Match: m})
		}
	}
	slices.SortFunc(out, func(a, b Item) bool {
		if a.Match.Score != b.Match.Score {
			return a.Match.Score > b.Match.Score
		}
		return a.Index < b.Index
	})
	return out
}
