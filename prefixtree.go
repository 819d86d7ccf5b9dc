package peg

import (
	"cmp"
	"slices"
)

// prefixTree is the internal search structure backing LiteralSet,
// generalized from the teacher's string-only prefix tree to any sequence
// of an ordered element type. Every key it holds has the same width;
// keys of different lengths are partitioned into the "term" (could stop
// here) bucket and recursed into per remaining tail.
type prefixTree[E cmp.Ordered] struct {
	term  bool
	width int
	keys  [][]E
	subs  []prefixTree[E]
}

func sortSeqs[E cmp.Ordered](seqs [][]E) {
	slices.SortFunc(seqs, func(a, b []E) int {
		return slices.Compare(a, b)
	})
}

// buildPrefixTree builds a tree out of sorted, possibly-empty sequences.
func buildPrefixTree[E cmp.Ordered](sorted [][]E) prefixTree[E] {
	tree := prefixTree[E]{}
	var i int
	for ; i < len(sorted) && len(sorted[i]) == 0; i++ {
		tree.term = true
	}
	sorted = sorted[i:]
	if len(sorted) == 0 {
		return tree
	}

	tree.width = len(sorted[0])
	for _, s := range sorted {
		if len(s) < tree.width {
			tree.width = len(s)
		}
	}

	lastPrefix := sorted[0][:tree.width]
	lastTail := sorted[0][tree.width:]
	tails := [][]E{lastTail}
	for _, s := range sorted[1:] {
		prefix, tail := s[:tree.width], s[tree.width:]
		if slices.Equal(prefix, lastPrefix) {
			if !slices.Equal(tail, lastTail) {
				tails = append(tails, tail)
				lastTail = tail
			}
		} else {
			tree.keys = append(tree.keys, lastPrefix)
			tree.subs = append(tree.subs, buildPrefixTree(tails))
			lastPrefix = prefix
			lastTail = tail
			tails = [][]E{lastTail}
		}
	}
	tree.keys = append(tree.keys, lastPrefix)
	tree.subs = append(tree.subs, buildPrefixTree(tails))
	return tree
}

// search tries to match the tree against whatever at(i) returns for
// successive indices starting at 0, returning the length of the longest
// matching key and true on success.
func (tree prefixTree[E]) search(at func(i int) (E, bool)) (int, bool) {
	if tree.width == 0 {
		if tree.term {
			return 0, true
		}
		return 0, false
	}

	prefix := make([]E, tree.width)
	for i := 0; i < tree.width; i++ {
		e, ok := at(i)
		if !ok {
			// Input ran out before a full key width: only a key ending
			// exactly here can still match.
			return 0, tree.term
		}
		prefix[i] = e
	}

	if idx, ok := binarySearchKeys(tree.keys, prefix); ok {
		if n, ok := tree.subs[idx].search(func(i int) (E, bool) {
			return at(tree.width + i)
		}); ok {
			return tree.width + n, true
		}
	}

	// No longer match available through this node's children: fall back
	// to a key that ends exactly here, if one exists.
	if tree.term {
		return 0, true
	}
	return 0, false
}

func binarySearchKeys[E cmp.Ordered](keys [][]E, prefix []E) (int, bool) {
	i, j := 0, len(keys)
	for i < j {
		m := i + (j-i)/2
		c := slices.Compare(prefix, keys[m])
		if c == 0 {
			return m, true
		} else if c > 0 {
			i = m + 1
		} else {
			j = m
		}
	}
	return 0, false
}
