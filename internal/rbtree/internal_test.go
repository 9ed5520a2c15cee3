package rbtree

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree(keys ...string) *Tree {
	t := New()
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}

// link attaches key as a red leaf without rebalancing.
func link(t *Tree, key string) *Node {
	parent := t.nilNode
	for cur := t.root; cur != t.nilNode; {
		parent = cur
		if key < cur.key {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	n := &Node{key: key, count: 1, color: red, left: t.nilNode, right: t.nilNode, parent: parent, tree: t}
	switch {
	case parent == t.nilNode:
		t.root = n
	case key < parent.key:
		parent.left = n
	default:
		parent.right = n
	}
	t.size++
	return n
}

func (t *Tree) nodes() []*Node {
	var out []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == t.nilNode {
			return
		}
		walk(n.left)
		out = append(out, n)
		walk(n.right)
	}
	walk(t.root)
	return out
}

func TestRotations(t *testing.T) {
	tr := buildTree("b", "a", "c")
	a, _ := tr.Find("a")
	b, _ := tr.Find("b")
	c, _ := tr.Find("c")

	tr.leftRotate(b)
	require.Same(t, c, tr.root)
	assert.Same(t, tr.nilNode, c.parent)
	assert.Same(t, b, c.left)
	assert.Same(t, c, b.parent)
	assert.Same(t, a, b.left)
	assert.Same(t, tr.nilNode, b.right)
	assert.Same(t, tr.nilNode, c.right)

	tr.rightRotate(c)
	require.Same(t, b, tr.root)
	assert.Same(t, a, b.left)
	assert.Same(t, c, b.right)
	assert.Same(t, b, c.parent)
	assert.Same(t, tr.nilNode, c.left)
	require.NoError(t, tr.Verify())
}

func TestRotationMovesInnerSubtree(t *testing.T) {
	tr := buildTree("d", "b", "f", "a", "c", "e", "g")
	b, _ := tr.Find("b")
	c, _ := tr.Find("c")
	d, _ := tr.Find("d")

	tr.rightRotate(d)
	require.Same(t, b, tr.root)
	assert.Same(t, d, b.right)
	assert.Same(t, c, d.left, "inner subtree changes sides")
	assert.Same(t, d, c.parent)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g"}, keys(tr))

	tr.leftRotate(b)
	require.Same(t, d, tr.root)
	assert.Same(t, c, b.right)
	assert.Same(t, b, c.parent)
	require.NoError(t, tr.Verify())
}

func TestRotationBelowRoot(t *testing.T) {
	tr := buildTree("d", "b", "f", "a", "c", "e", "g")
	d, _ := tr.Find("d")
	f, _ := tr.Find("f")
	g, _ := tr.Find("g")

	tr.leftRotate(f)
	assert.Same(t, d, tr.root)
	assert.Same(t, g, d.right)
	assert.Same(t, d, g.parent)
	assert.Same(t, f, g.left)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g"}, keys(tr))
}

func TestMinimum(t *testing.T) {
	tr := buildTree("m", "f", "t", "c", "h", "a")
	assert.Equal(t, "a", tr.minimum(tr.root).key)

	f, _ := tr.Find("f")
	h, _ := tr.Find("h")
	tt, _ := tr.Find("t")
	assert.Equal(t, "a", tr.minimum(f).key)
	assert.Same(t, h, tr.minimum(h))
	assert.Same(t, tt, tr.minimum(tt))
}

func TestTransplant(t *testing.T) {
	t.Run("LeafWithSentinel", func(t *testing.T) {
		tr := buildTree("b", "a", "c")
		a, _ := tr.Find("a")
		tr.transplant(a, tr.nilNode)

		assert.Same(t, tr.nilNode, tr.root.left)
		assert.Same(t, tr.root, tr.nilNode.parent, "sentinel parent is set for fix-up")
	})

	t.Run("Root", func(t *testing.T) {
		tr := buildTree("b", "a", "c")
		b, _ := tr.Find("b")
		c, _ := tr.Find("c")
		tr.transplant(b, c)

		assert.Same(t, c, tr.root)
		assert.Same(t, tr.nilNode, c.parent)
		assert.Same(t, tr.nilNode, c.left, "children of the replacement are untouched")
	})

	t.Run("RightChild", func(t *testing.T) {
		tr := buildTree("b", "a", "c", "d")
		b, _ := tr.Find("b")
		c, _ := tr.Find("c")
		d, _ := tr.Find("d")
		tr.transplant(c, d)

		assert.Same(t, d, b.right)
		assert.Same(t, b, d.parent)
	})
}

func TestFixInsert(t *testing.T) {
	tests := []struct {
		name string
		keys []string
	}{
		{"LeftLine", []string{"c", "b", "a"}},
		{"LeftTriangle", []string{"c", "a", "b"}},
		{"RightLine", []string{"a", "b", "c"}},
		{"RightTriangle", []string{"a", "c", "b"}},
		{"RedUncle", []string{"b", "a", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New()
			for _, k := range tt.keys {
				n := link(tr, k)
				tr.fixInsert(n)
			}
			require.NoError(t, tr.Verify())
			assert.Equal(t, "b", tr.root.key)
		})
	}

	t.Run("Unbalanced", func(t *testing.T) {
		tr := New()
		tr.fixInsert(link(tr, "a"))
		tr.fixInsert(link(tr, "b"))
		n := link(tr, "c")
		require.ErrorIs(t, tr.Verify(), ErrInvariant, "red-red edge before fix-up")

		tr.fixInsert(n)
		require.NoError(t, tr.Verify())
	})
}

func TestFixDelete(t *testing.T) {
	for _, size := range []int{16, 100, 500} {
		t.Run("Size-"+strconv.Itoa(size), func(t *testing.T) {
			tr := New()
			for i := 0; i < size; i++ {
				tr.Insert(strconv.Itoa(1000 + i))
			}

			var leaf *Node
			for _, n := range tr.nodes() {
				if n != tr.root && n.color == black && n.left == tr.nilNode && n.right == tr.nilNode {
					leaf = n
					break
				}
			}
			require.NotNil(t, leaf, "no black leaf in tree of %d", size)

			tr.transplant(leaf, tr.nilNode)
			tr.size--
			require.ErrorIs(t, tr.Verify(), ErrInvariant, "black height is short before fix-up")

			tr.fixDelete(tr.nilNode)
			tr.nilNode.parent = tr.nilNode
			require.NoError(t, tr.Verify())
		})
	}
}

func TestSentinelStaysBlack(t *testing.T) {
	tr := New()
	for i := 0; i < 300; i++ {
		tr.Insert(strconv.Itoa(i))
	}
	for i := 0; i < 300; i += 2 {
		tr.Delete(strconv.Itoa(i))
	}
	for i := 0; i < 300; i++ {
		tr.Delete(strconv.Itoa(i))
	}

	assert.Equal(t, black, tr.nilNode.color)
	assert.Same(t, tr.nilNode, tr.nilNode.parent)
	assert.Same(t, tr.nilNode, tr.root)
	assert.Equal(t, 0, tr.Len())
}

func TestDeleteDetaches(t *testing.T) {
	tr := buildTree("b", "a", "c")
	n, ok := tr.Delete("b")
	require.True(t, ok)

	assert.Nil(t, n.left)
	assert.Nil(t, n.right)
	assert.Nil(t, n.parent)
	assert.Nil(t, n.tree)
	assert.Equal(t, "c", tr.root.key)
	assert.Equal(t, black, tr.root.color)
}

func TestVerifyReportsViolations(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(tr *Tree)
	}{
		{"RedRoot", func(tr *Tree) { tr.root.color = red }},
		{"RedSentinel", func(tr *Tree) { tr.nilNode.color = red }},
		{"ZeroCount", func(tr *Tree) { tr.root.left.count = 0 }},
		{"Order", func(tr *Tree) { tr.root.left.key = "z" }},
		{"StaleParent", func(tr *Tree) { tr.root.right.parent = tr.root.left }},
		{"Size", func(tr *Tree) { tr.size++ }},
		{"BlackHeight", func(tr *Tree) { tr.root.left.color = black }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := buildTree("b", "a", "c")
			require.NoError(t, tr.Verify())
			tt.corrupt(tr)
			assert.ErrorIs(t, tr.Verify(), ErrInvariant)
		})
	}
}

func keys(tr *Tree) []string {
	var out []string
	for _, n := range tr.nodes() {
		out = append(out, n.key)
	}
	return out
}
