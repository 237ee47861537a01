// Package textmatch provides the fuzzy string score used to compare
// specimen and procedure descriptions across sources.
package textmatch

import "strings"

// Similarity scores two strings in [0,1], case-insensitively. The score is
// the classic sequence-matcher block ratio: twice the total length of the
// matching blocks divided by the combined length. Returns 0 when either
// input is empty. Pure function.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	matched := 0
	for _, blk := range matchingBlocks(ra, rb) {
		matched += blk.size
	}
	return 2 * float64(matched) / float64(len(ra)+len(rb))
}

type block struct {
	aPos, bPos, size int
}

// matchingBlocks finds non-overlapping matching blocks by recursively
// splitting around the longest match, the same divide-and-conquer used by
// difflib-style sequence matchers.
func matchingBlocks(a, b []rune) []block {
	var blocks []block

	type span struct{ aLo, aHi, bLo, bHi int }
	queue := []span{{0, len(a), 0, len(b)}}
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		m := longestMatch(a, b, s.aLo, s.aHi, s.bLo, s.bHi)
		if m.size == 0 {
			continue
		}
		blocks = append(blocks, m)
		queue = append(queue,
			span{s.aLo, m.aPos, s.bLo, m.bPos},
			span{m.aPos + m.size, s.aHi, m.bPos + m.size, s.bHi},
		)
	}
	return blocks
}

// longestMatch finds the longest matching block in a[aLo:aHi] x b[bLo:bHi].
// On equal lengths the earliest block in a, then in b, wins, which keeps
// the ratio deterministic.
func longestMatch(a, b []rune, aLo, aHi, bLo, bHi int) block {
	b2j := make(map[rune][]int)
	for j := bLo; j < bHi; j++ {
		b2j[b[j]] = append(b2j[b[j]], j)
	}

	best := block{aLo, bLo, 0}
	// lengths[j] = length of the match ending at a[i-1], b[j-1]
	lengths := make(map[int]int)
	for i := aLo; i < aHi; i++ {
		next := make(map[int]int)
		for _, j := range b2j[a[i]] {
			k := lengths[j-1] + 1
			next[j] = k
			if k > best.size {
				best = block{i - k + 1, j - k + 1, k}
			}
		}
		lengths = next
	}
	return best
}
