// Package rbtree implements a Red-Black Tree keyed by string that keeps
// an occurrence count per key.
//
// Red-Black Tree is a self-balancing binary search tree that guarantees
// O(log n) time complexity for find, insert and delete. A Tree is not safe
// for concurrent use; wrap it with a single lock if several goroutines
// share it.
package rbtree

type color bool

const (
	red   color = true
	black color = false
)

// Node is a word stored in the tree together with its count.
// Nodes are created by Insert and handed back by Delete.
type Node struct {
	key                 string
	count               int
	color               color
	left, right, parent *Node
	tree                *Tree
}

// Key returns the node key.
func (n *Node) Key() string { return n.key }

// Count returns how many times the key was inserted.
func (n *Node) Count() int { return n.count }

// IsRed reports the node color.
func (n *Node) IsRed() bool { return n.color == red }

// Tree represents a Red-Black Tree instance.
// Use New() to create a new tree instance.
type Tree struct {
	root    *Node
	nilNode *Node // Sentinel node, always black
	size    int
}

// New creates and returns a new empty Red-Black Tree.
func New() *Tree {
	nilNode := &Node{color: black}
	nilNode.left, nilNode.right, nilNode.parent = nilNode, nilNode, nilNode
	return &Tree{
		root:    nilNode,
		nilNode: nilNode,
	}
}

// Len returns the number of distinct keys.
func (t *Tree) Len() int { return t.size }

// Find returns the node holding key.
func (t *Tree) Find(key string) (*Node, bool) {
	n := t.findNode(key)
	if n == t.nilNode {
		return nil, false
	}
	return n, true
}

func (t *Tree) findNode(key string) *Node {
	n := t.root
	for n != t.nilNode {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n
		}
	}
	return t.nilNode
}

// Insert adds key with a count of one and rebalances the tree.
// If key is already present its count is incremented instead and
// the existing node is returned with false.
func (t *Tree) Insert(key string) (*Node, bool) {
	parent := t.nilNode
	cur := t.root
	for cur != t.nilNode {
		parent = cur
		switch {
		case key < cur.key:
			cur = cur.left
		case key > cur.key:
			cur = cur.right
		default:
			cur.count++
			return cur, false
		}
	}

	n := &Node{
		key:    key,
		count:  1,
		color:  red,
		left:   t.nilNode,
		right:  t.nilNode,
		parent: parent,
		tree:   t,
	}
	switch {
	case parent == t.nilNode:
		t.root = n
	case key < parent.key:
		parent.left = n
	default:
		parent.right = n
	}
	t.size++

	t.fixInsert(n)
	return n, true
}

// fixInsert restores the red-black properties after n was linked as a red
// leaf. Only a red-red edge between n and its parent can be broken.
func (t *Tree) fixInsert(n *Node) {
	for n.parent.color == red {
		grand := n.parent.parent
		if n.parent == grand.left {
			uncle := grand.right
			if uncle.color == red {
				n.parent.color = black
				uncle.color = black
				grand.color = red
				n = grand
				continue
			}
			if n == n.parent.right {
				n = n.parent
				t.leftRotate(n)
			}
			n.parent.color = black
			grand.color = red
			t.rightRotate(grand)
		} else {
			uncle := grand.left
			if uncle.color == red {
				n.parent.color = black
				uncle.color = black
				grand.color = red
				n = grand
				continue
			}
			if n == n.parent.left {
				n = n.parent
				t.rightRotate(n)
			}
			n.parent.color = black
			grand.color = red
			t.leftRotate(grand)
		}
	}
	t.root.color = black
}

// leftRotate lifts x.right into x's place. x.right must not be the sentinel.
//
//	   p              p
//	   |              |
//	   x              r
//	  / \            / \
//	 a   r    =>    x   c
//	    / \        / \
//	   b   c      a   b
func (t *Tree) leftRotate(x *Node) {
	r := x.right
	x.right = r.left
	if r.left != t.nilNode {
		r.left.parent = x
	}
	t.replaceChild(x, r)
	r.left = x
	x.parent = r
}

// rightRotate is the mirror of leftRotate. x.left must not be the sentinel.
func (t *Tree) rightRotate(x *Node) {
	l := x.left
	x.left = l.right
	if l.right != t.nilNode {
		l.right.parent = x
	}
	t.replaceChild(x, l)
	l.right = x
	x.parent = l
}

// replaceChild points old's parent (or the root) at repl and takes over
// old's parent link.
func (t *Tree) replaceChild(old, repl *Node) {
	p := old.parent
	switch {
	case p == t.nilNode:
		t.root = repl
	case old == p.left:
		p.left = repl
	default:
		p.right = repl
	}
	repl.parent = p
}

// transplant replaces the subtree rooted at old with the one rooted at repl.
// repl may be the sentinel; its parent link is set either way so that
// fixDelete can climb from it. repl's children are left untouched.
func (t *Tree) transplant(old, repl *Node) {
	t.replaceChild(old, repl)
}

func (t *Tree) minimum(n *Node) *Node {
	for n.left != t.nilNode {
		n = n.left
	}
	return n
}

// Delete removes key from the tree and returns the detached node.
func (t *Tree) Delete(key string) (*Node, bool) {
	n := t.findNode(key)
	if n == t.nilNode {
		return nil, false
	}
	return t.DeleteNode(n)
}

// DeleteNode removes n from the tree and returns it detached.
// It reports false if n does not belong to t, which includes nodes that
// were already deleted.
func (t *Tree) DeleteNode(n *Node) (*Node, bool) {
	if n == nil || n.tree != t {
		return nil, false
	}

	var orphan *Node
	removedColor := n.color

	switch {
	case n.left == t.nilNode:
		orphan = n.right
		t.transplant(n, n.right)
	case n.right == t.nilNode:
		orphan = n.left
		t.transplant(n, n.left)
	default:
		succ := t.minimum(n.right)
		removedColor = succ.color
		orphan = succ.right
		if succ.parent == n {
			orphan.parent = succ
		} else {
			t.transplant(succ, succ.right)
			succ.right = n.right
			succ.right.parent = succ
		}
		t.transplant(n, succ)
		succ.left = n.left
		succ.left.parent = succ
		succ.color = n.color
	}

	if removedColor == black {
		t.fixDelete(orphan)
	}
	t.nilNode.parent = t.nilNode
	t.size--

	n.left, n.right, n.parent, n.tree = nil, nil, nil, nil
	return n, true
}

// fixDelete pushes the extra black carried by orphan up the tree until it
// can be absorbed by a red node, a rotation, or the root.
func (t *Tree) fixDelete(orphan *Node) {
	for orphan != t.root && orphan.color == black {
		parent := orphan.parent
		if orphan == parent.left {
			sib := parent.right
			if sib.color == red {
				sib.color = black
				parent.color = red
				t.leftRotate(parent)
				sib = parent.right
			}
			if sib.left.color == black && sib.right.color == black {
				sib.color = red
				orphan = parent
				continue
			}
			if sib.right.color == black {
				t.paint(sib.left, black)
				sib.color = red
				t.rightRotate(sib)
				sib = parent.right
			}
			sib.color = parent.color
			parent.color = black
			t.paint(sib.right, black)
			t.leftRotate(parent)
			orphan = t.root
		} else {
			sib := parent.left
			if sib.color == red {
				sib.color = black
				parent.color = red
				t.rightRotate(parent)
				sib = parent.left
			}
			if sib.left.color == black && sib.right.color == black {
				sib.color = red
				orphan = parent
				continue
			}
			if sib.left.color == black {
				t.paint(sib.right, black)
				sib.color = red
				t.leftRotate(sib)
				sib = parent.left
			}
			sib.color = parent.color
			parent.color = black
			t.paint(sib.left, black)
			t.rightRotate(parent)
			orphan = t.root
		}
	}
	t.paint(orphan, black)
}

// paint colors n unless it is the sentinel.
func (t *Tree) paint(n *Node, c color) {
	if n != t.nilNode {
		n.color = c
	}
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	return t.height(t.root)
}

func (t *Tree) height(n *Node) int {
	if n == t.nilNode {
		return 0
	}
	return 1 + max(t.height(n.left), t.height(n.right))
}
