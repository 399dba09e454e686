// Package similarity scores recognized text against a reference string.
//
// The metric is the longest-common-contiguous-block ratio: the longest run
// of matching characters is located, the remainders on either side are
// matched the same way, and the ratio is twice the total matched length over
// the combined input length. This rewards matching blocks rather than
// penalizing edits, which suits OCR output where whole words survive or
// vanish together.
package similarity

import "math"

// Ratio returns the similarity of a and b in [0, 1]. It is a total function:
// two empty strings are identical (1), and a non-empty string compared with
// an empty one shares nothing (0).
//
// Complexity is O(len(a)*len(b)) in the worst case, which is acceptable for
// single-document OCR output.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 1
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	type span struct{ aLo, aHi, bLo, bHi int }

	matched := 0
	stack := []span{{0, len(ra), 0, len(rb)}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		ai, bi, n := longestMatch(ra, rb, s.aLo, s.aHi, s.bLo, s.bHi)
		if n == 0 {
			continue
		}
		matched += n

		// Unmatched remainders on each side of the block are matched
		// independently.
		stack = append(stack,
			span{s.aLo, ai, s.bLo, bi},
			span{ai + n, s.aHi, bi + n, s.bHi},
		)
	}

	return 2 * float64(matched) / float64(len(ra)+len(rb))
}

// Percent returns the similarity of a and b as a percentage in [0, 100],
// rounded to two decimal places.
func Percent(a, b string) float64 {
	return math.Round(Ratio(a, b)*10000) / 100
}

// longestMatch finds the longest run of identical runes within a[aLo:aHi]
// and b[bLo:bHi], keeping one row of suffix-match lengths.
func longestMatch(a, b []rune, aLo, aHi, bLo, bHi int) (bestA, bestB, bestN int) {
	bestA, bestB = aLo, bLo
	row := make([]int, bHi-bLo+1)
	for i := aLo; i < aHi; i++ {
		prev := 0
		for j := bLo; j < bHi; j++ {
			cur := row[j-bLo+1]
			if a[i] == b[j] {
				n := prev + 1
				row[j-bLo+1] = n
				if n > bestN {
					bestN = n
					bestA = i - n + 1
					bestB = j - n + 1
				}
			} else {
				row[j-bLo+1] = 0
			}
			prev = cur
		}
	}
	return bestA, bestB, bestN
}
