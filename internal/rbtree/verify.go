package rbtree

import (
	"errors"
	"fmt"
)

// ErrInvariant is wrapped by every error returned from Verify.
var ErrInvariant = errors.New("rbtree: invariant violated")

// Verify walks the whole tree and checks the Red-Black Tree properties:
//  1. the sentinel is black
//  2. the root is black
//  3. red nodes have black children
//  4. every path from a node to its leaves has the same number of black nodes
//  5. keys are unique and in binary search tree order
//
// Parent links, counts and Len are checked as well.
func (t *Tree) Verify() error {
	if t.nilNode.color != black {
		return fmt.Errorf("%w: sentinel is red", ErrInvariant)
	}
	if t.root.color != black {
		return fmt.Errorf("%w: root %q is red", ErrInvariant, t.root.key)
	}
	if t.root != t.nilNode && t.root.parent != t.nilNode {
		return fmt.Errorf("%w: root %q has a parent", ErrInvariant, t.root.key)
	}

	n, _, err := t.verifySubtree(t.root, nil, nil)
	if err != nil {
		return err
	}
	if n != t.size {
		return fmt.Errorf("%w: counted %d nodes, Len reports %d", ErrInvariant, n, t.size)
	}
	return nil
}

// verifySubtree returns the node count and black height of the subtree.
// lo and hi are exclusive key bounds, nil meaning unbounded.
func (t *Tree) verifySubtree(n *Node, lo, hi *string) (int, int, error) {
	if n == t.nilNode {
		return 0, 1, nil
	}

	switch {
	case lo != nil && n.key <= *lo:
		return 0, 0, fmt.Errorf("%w: key %q not greater than %q", ErrInvariant, n.key, *lo)
	case hi != nil && n.key >= *hi:
		return 0, 0, fmt.Errorf("%w: key %q not less than %q", ErrInvariant, n.key, *hi)
	case n.count < 1:
		return 0, 0, fmt.Errorf("%w: key %q has count %d", ErrInvariant, n.key, n.count)
	case n.tree != t:
		return 0, 0, fmt.Errorf("%w: key %q owned by another tree", ErrInvariant, n.key)
	}

	for _, child := range []*Node{n.left, n.right} {
		if child == t.nilNode {
			continue
		}
		if child.parent != n {
			return 0, 0, fmt.Errorf("%w: key %q has a stale parent link", ErrInvariant, child.key)
		}
		if n.color == red && child.color == red {
			return 0, 0, fmt.Errorf("%w: red key %q has red child %q", ErrInvariant, n.key, child.key)
		}
	}

	ln, lh, err := t.verifySubtree(n.left, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rn, rh, err := t.verifySubtree(n.right, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}
	if lh != rh {
		return 0, 0, fmt.Errorf("%w: key %q has black heights %d and %d", ErrInvariant, n.key, lh, rh)
	}

	if n.color == black {
		lh++
	}
	return ln + rn + 1, lh, nil
}
