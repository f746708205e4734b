// Package outline implements the focused-cursor forest ("zipper") that
// backs the editor: a multi-way forest in first-child/next-sibling form,
// decomposed around a single focused node so that navigation and
// restructuring touch only the focus's immediate neighborhood.
//
// Every link below is an exclusive owning pointer. Operations consume
// the cursor they are called on and return its successor; the old value
// must not be reused. No operation copies a subtree: edits rewire links,
// so their cost is bounded by the number of links crossed, never by the
// size of the forest.
package outline

// Node is a subtree plus its following siblings (forward chain).
type Node struct {
	label string
	child *Node
	next  *Node
}

// RevNode is a subtree plus its preceding siblings (backward chain),
// so the immediately preceding sibling is one link away.
type RevNode struct {
	label string
	child *Node
	prev  *RevNode
}

// PathNode is one ancestor on the path from the focus up to a root,
// keeping its own sibling context on both sides.
type PathNode struct {
	label  string
	parent *PathNode
	prev   *RevNode
	next   *Node
}

// Cursor is the focused node: its label, its child subtree, its
// preceding and following siblings, and the ancestor path.
type Cursor struct {
	label  string
	parent *PathNode
	child  *Node
	prev   *RevNode
	next   *Node
}

// New returns a cursor for a fresh outline: a single node with an
// empty label and no links.
func New() *Cursor {
	return &Cursor{}
}

// join replays a backward chain onto the front of a forward chain,
// innermost element first. Cost: length of prev.
func join(prev *RevNode, next *Node) *Node {
	for prev != nil {
		next = &Node{label: prev.label, child: prev.child, next: next}
		prev = prev.prev
	}
	return next
}

// reverse converts a forward chain into a backward chain.
// Cost: length of next.
func reverse(next *Node) *RevNode {
	var rev *RevNode
	for next != nil {
		rev = &RevNode{label: next.label, child: next.child, prev: rev}
		next = next.next
	}
	return rev
}

// Label returns the focused node's label.
func (c *Cursor) Label() string {
	return c.label
}

// SetLabel replaces the focused node's label. No structural change.
func (c *Cursor) SetLabel(label string) *Cursor {
	c.label = label
	return c
}

// FocusParent moves the focus to the parent of the focused node.
// No-op if the focus is a root.
func (c *Cursor) FocusParent() *Cursor {
	if c.parent == nil {
		return c
	}
	p := c.parent
	node := &Node{label: c.label, child: c.child, next: c.next}
	return &Cursor{
		label:  p.label,
		parent: p.parent,
		child:  join(c.prev, node),
		prev:   p.prev,
		next:   p.next,
	}
}

// FocusChild moves the focus to the first child of the focused node.
// No-op if the focus is childless.
func (c *Cursor) FocusChild() *Cursor {
	if c.child == nil {
		return c
	}
	ch := c.child
	parent := &PathNode{label: c.label, parent: c.parent, prev: c.prev, next: c.next}
	return &Cursor{
		label:  ch.label,
		parent: parent,
		child:  ch.child,
		prev:   nil,
		next:   ch.next,
	}
}

// FocusPrev moves the focus to the previous sibling. No-op if the
// focus is a first sibling.
func (c *Cursor) FocusPrev() *Cursor {
	if c.prev == nil {
		return c
	}
	p := c.prev
	next := &Node{label: c.label, child: c.child, next: c.next}
	return &Cursor{
		label:  p.label,
		parent: c.parent,
		child:  p.child,
		prev:   p.prev,
		next:   next,
	}
}

// FocusNext moves the focus to the next sibling. No-op if the focus
// is a last sibling.
func (c *Cursor) FocusNext() *Cursor {
	if c.next == nil {
		return c
	}
	n := c.next
	prev := &RevNode{label: c.label, child: c.child, prev: c.prev}
	return &Cursor{
		label:  n.label,
		parent: c.parent,
		child:  n.child,
		prev:   prev,
		next:   n.next,
	}
}

// Promote moves the focused subtree up one level, making it the
// immediate next sibling of its former parent. The focus's former
// siblings become the former parent's children. No-op on a root.
func (c *Cursor) Promote() *Cursor {
	if c.parent == nil {
		return c
	}
	p := c.parent
	prev := &RevNode{
		label: p.label,
		child: join(c.prev, c.next),
		prev:  p.prev,
	}
	c.parent = p.parent
	c.prev = prev
	c.next = p.next
	return c
}

// Demote moves the focused subtree down one level, making it the last
// child of its previous sibling. No-op if there is no previous sibling.
func (c *Cursor) Demote() *Cursor {
	if c.prev == nil {
		return c
	}
	p := c.prev
	parent := &PathNode{label: p.label, parent: c.parent, prev: p.prev, next: c.next}
	c.parent = parent
	c.prev = reverse(p.child)
	c.next = nil
	return c
}

// SwapPrev exchanges the focused subtree with its previous sibling's.
// No-op if there is no previous sibling.
func (c *Cursor) SwapPrev() *Cursor {
	if c.prev == nil {
		return c
	}
	p := c.prev
	c.prev = p.prev
	c.next = &Node{label: p.label, child: p.child, next: c.next}
	return c
}

// SwapNext exchanges the focused subtree with its next sibling's.
// No-op if there is no next sibling.
func (c *Cursor) SwapNext() *Cursor {
	if c.next == nil {
		return c
	}
	n := c.next
	c.next = n.next
	c.prev = &RevNode{label: n.label, child: n.child, prev: c.prev}
	return c
}

// Nest appends the focused node's following siblings to its children,
// preserving order. Preceding siblings are untouched, so Flatten
// undoes Nest exactly.
func (c *Cursor) Nest() *Cursor {
	c.child = join(reverse(c.child), c.next)
	c.next = nil
	return c
}

// Flatten splices the focused node's children out to become its
// following siblings, in original order, before any existing following
// siblings. The focus becomes childless.
func (c *Cursor) Flatten() *Cursor {
	c.next = join(reverse(c.child), c.next)
	c.child = nil
	return c
}

// InsertParent creates a new node as the sole parent of the focused
// node and focuses it. The old focus keeps its children; its former
// siblings become the new parent's other children.
func (c *Cursor) InsertParent(label string) *Cursor {
	node := &Node{label: c.label, child: c.child, next: c.next}
	return &Cursor{
		label:  label,
		parent: c.parent,
		child:  join(c.prev, node),
		prev:   nil,
		next:   nil,
	}
}

// InsertChild creates a new node above the focused node's existing
// children and focuses it. The old focus becomes its parent.
func (c *Cursor) InsertChild(label string) *Cursor {
	parent := &PathNode{label: c.label, parent: c.parent, prev: c.prev, next: c.next}
	return &Cursor{
		label:  label,
		parent: parent,
		child:  c.child,
		prev:   nil,
		next:   nil,
	}
}

// InsertBefore creates a new node immediately before the focused node
// and focuses it.
func (c *Cursor) InsertBefore(label string) *Cursor {
	node := &Node{label: c.label, child: c.child, next: c.next}
	return &Cursor{
		label:  label,
		parent: c.parent,
		child:  nil,
		prev:   c.prev,
		next:   node,
	}
}

// InsertAfter creates a new node immediately after the focused node
// and focuses it.
func (c *Cursor) InsertAfter(label string) *Cursor {
	prev := &RevNode{label: c.label, child: c.child, prev: c.prev}
	return &Cursor{
		label:  label,
		parent: c.parent,
		child:  nil,
		prev:   prev,
		next:   c.next,
	}
}

// Delete removes the focused node. Its children are first spliced to
// its sibling position (as in Flatten); the new focus is the next
// sibling if one exists, else the previous sibling, else the parent.
// Deleting the last remaining node returns (nil, false): the forest
// is now empty and there is no focus.
func (c *Cursor) Delete() (*Cursor, bool) {
	f := c.Flatten()
	switch {
	case f.next != nil:
		n := f.next
		return &Cursor{
			label:  n.label,
			parent: f.parent,
			child:  n.child,
			prev:   f.prev,
			next:   n.next,
		}, true
	case f.prev != nil:
		p := f.prev
		return &Cursor{
			label:  p.label,
			parent: f.parent,
			child:  p.child,
			prev:   p.prev,
			next:   nil,
		}, true
	case f.parent != nil:
		p := f.parent
		return &Cursor{
			label:  p.label,
			parent: p.parent,
			child:  nil,
			prev:   p.prev,
			next:   p.next,
		}, true
	default:
		return nil, false
	}
}

// Restore folds the ancestor path back up and rewinds to the first
// root, so the cursor represents the whole forest from its start.
// Navigation-only histories restore to an identical forest.
func (c *Cursor) Restore() *Cursor {
	for c.parent != nil {
		c = c.FocusParent()
	}
	for c.prev != nil {
		c = c.FocusPrev()
	}
	return c
}

// Len returns the total number of nodes in the forest the cursor
// represents. Cost: size of the forest.
func (c *Cursor) Len() int {
	n := 1 + countNodes(c.child) + countRev(c.prev) + countNodes(c.next)
	for p := c.parent; p != nil; p = p.parent {
		n += 1 + countRev(p.prev) + countNodes(p.next)
	}
	return n
}

func countNodes(n *Node) int {
	total := 0
	for ; n != nil; n = n.next {
		total += 1 + countNodes(n.child)
	}
	return total
}

func countRev(r *RevNode) int {
	total := 0
	for ; r != nil; r = r.prev {
		total += 1 + countNodes(r.child)
	}
	return total
}
