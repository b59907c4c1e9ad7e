// Package fuzzy scores subsequence matches for the bookmark finder.
package fuzzy

import (
	"sort"
	"strings"
	"unicode"
)

// Result is one ranked record. Field is the index of the record field that
// produced the best score.
type Result struct {
	Index int
	Field int
	Score int
}

// Score rates how well pattern matches text as a case-insensitive
// subsequence, from 0 (no match) to 100 (identical).
func Score(pattern, text string) int {
	if pattern == "" || text == "" {
		return 0
	}

	p := []rune(strings.ToLower(pattern))
	t := []rune(strings.ToLower(text))

	if string(p) == string(t) {
		return 100
	}
	if len(p) > len(t) {
		return 0
	}

	positions := subsequence(p, t)
	if positions == nil {
		return 0
	}

	return clamp(int(rate(len(p), t, positions)))
}

// Rank scores every record by its best field and returns those at or above
// threshold, best first. Ties keep record order.
func Rank(pattern string, records [][]string, threshold int) []Result {
	results := make([]Result, 0, len(records))

	for i, fields := range records {
		best := Result{Index: i, Field: -1}
		for j, field := range fields {
			if s := Score(pattern, field); s > best.Score {
				best.Score = s
				best.Field = j
			}
		}
		if best.Field >= 0 && best.Score >= threshold {
			results = append(results, best)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// subsequence returns the first-fit positions of p in t, or nil.
func subsequence(p, t []rune) []int {
	positions := make([]int, 0, len(p))
	pi := 0
	for ti := 0; ti < len(t) && pi < len(p); ti++ {
		if p[pi] == t[ti] {
			positions = append(positions, ti)
			pi++
		}
	}
	if pi < len(p) {
		return nil
	}
	return positions
}

func rate(patternLen int, text []rune, positions []int) float64 {
	textLen := len(text)
	score := 50.0

	score += float64(patternLen) / float64(textLen) * 25.0

	if positions[0] == 0 {
		score += 12.0
	}

	run := longestRun(positions)
	score += float64(run) / float64(patternLen) * 20.0
	score -= float64(patternLen-run) * 4.0

	var sum int
	for _, pos := range positions {
		sum += pos
	}
	avg := float64(sum) / float64(len(positions))
	score += (1.0 - avg/float64(textLen)) * 10.0

	if boundaryRatio(text, positions) >= 0.3 {
		score += 8.0
	}

	if positions[0] == 0 && run == patternLen {
		score += 5.0
	}

	score -= float64(textLen-patternLen) * 0.5

	return score
}

func longestRun(positions []int) int {
	longest, current := 1, 1
	for i := 1; i < len(positions); i++ {
		if positions[i] == positions[i-1]+1 {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 1
		}
	}
	return longest
}

// share of matched runes that start a word: after a separator or at 0
func boundaryRatio(text []rune, positions []int) float64 {
	hits := 0
	for _, pos := range positions {
		if pos == 0 {
			hits++
			continue
		}
		prev := text[pos-1]
		if !unicode.IsLetter(prev) && !unicode.IsDigit(prev) {
			hits++
		}
	}
	return float64(hits) / float64(len(positions))
}

func clamp(score int) int {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
