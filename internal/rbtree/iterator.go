package rbtree

import (
	"iter"
)

// InOrder yields keys in ascending order together with their counts.
// The tree must not be modified while the sequence is being consumed.
func (t *Tree) InOrder() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		var stack []*Node
		cur := t.root
		for cur != t.nilNode || len(stack) > 0 {
			for ; cur != t.nilNode; cur = cur.left {
				stack = append(stack, cur)
			}

			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(cur.key, cur.count) {
				return
			}
			cur = cur.right
		}
	}
}
