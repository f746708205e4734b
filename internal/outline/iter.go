package outline

// NodePosition says how a node sits in its sibling chain, which is
// what a renderer needs to pick connector glyphs.
type NodePosition int

const (
	PositionRoot NodePosition = iota
	PositionFirstChild
	PositionLaterSibling
)

func (p NodePosition) String() string {
	switch p {
	case PositionFirstChild:
		return "first-child"
	case PositionLaterSibling:
		return "later-sibling"
	default:
		return "root"
	}
}

// NodeInfo is one pre-order traversal item.
type NodeInfo struct {
	Label         string
	Position      NodePosition
	IsLastSibling bool
	IsFocused     bool
}

type frameKind int

const (
	// frameChain: a forward subtree; following siblings are reached
	// through its next links.
	frameChain frameKind = iota
	// frameSingle: one preceding sibling of a path level, detached from
	// its chain; the level's own frame always follows it on the stack.
	frameSingle
	// frameLevel: the path node (or focus) owning levels[level].
	frameLevel
)

type frame struct {
	kind  frameKind
	node  *Node
	label string
	child *Node
	pos   NodePosition
	level int
}

// level captures one step of the path spine: a path node's own label
// and sibling chains, outermost level first. The innermost level is
// the focus itself.
type level struct {
	label   string
	prev    *RevNode
	next    *Node
	child   *Node
	focused bool
}

// PreOrderIter walks the forest a cursor represents in pre-order
// without rebuilding it: the focus neighborhood is wrapped by each
// ancestor level in turn. Only the path spine and the sibling chains
// on it are walked up front; subtrees unfold lazily as items are
// pulled.
type PreOrderIter struct {
	levels []level
	stack  []frame
}

// Nodes returns a fresh pre-order iterator over the whole forest.
// It never mutates the cursor; call it again to restart.
func (c *Cursor) Nodes() *PreOrderIter {
	var levels []level
	for p := c.parent; p != nil; p = p.parent {
		levels = append(levels, level{label: p.label, prev: p.prev, next: p.next})
	}
	// Collected focus-outward; the iterator wants outermost first.
	for i, j := 0, len(levels)-1; i < j; i, j = i+1, j-1 {
		levels[i], levels[j] = levels[j], levels[i]
	}
	levels = append(levels, level{
		label:   c.label,
		prev:    c.prev,
		next:    c.next,
		child:   c.child,
		focused: true,
	})
	it := &PreOrderIter{levels: levels}
	it.pushLevel(0)
	return it
}

// pushLevel schedules level i: its preceding siblings in original
// order, then the level's own node (which in turn schedules the inner
// level and the following siblings).
func (it *PreOrderIter) pushLevel(i int) {
	lv := it.levels[i]
	first, later := PositionFirstChild, PositionLaterSibling
	if i == 0 {
		first, later = PositionRoot, PositionRoot
	}
	ownerPos := first
	if lv.prev != nil {
		ownerPos = later
	}
	it.stack = append(it.stack, frame{kind: frameLevel, level: i, pos: ownerPos})
	mark := len(it.stack)
	for p := lv.prev; p != nil; p = p.prev {
		it.stack = append(it.stack, frame{kind: frameSingle, label: p.label, child: p.child, pos: later})
	}
	if len(it.stack) > mark {
		// The backward chain's outermost element is the first sibling.
		it.stack[len(it.stack)-1].pos = first
	}
}

// Next returns the next node in pre-order, or ok=false when done.
func (it *PreOrderIter) Next() (NodeInfo, bool) {
	if len(it.stack) == 0 {
		return NodeInfo{}, false
	}
	f := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]

	switch f.kind {
	case frameSingle:
		// A level's preceding sibling: the level owner follows, so it
		// is never the last of its chain.
		if f.child != nil {
			it.stack = append(it.stack, frame{kind: frameChain, node: f.child, pos: PositionFirstChild})
		}
		return NodeInfo{Label: f.label, Position: f.pos, IsLastSibling: false}, true

	case frameLevel:
		lv := it.levels[f.level]
		last := lv.next == nil
		if !last {
			pos := PositionLaterSibling
			if f.level == 0 {
				pos = PositionRoot
			}
			it.stack = append(it.stack, frame{kind: frameChain, node: lv.next, pos: pos})
		}
		if lv.focused {
			if lv.child != nil {
				it.stack = append(it.stack, frame{kind: frameChain, node: lv.child, pos: PositionFirstChild})
			}
		} else {
			it.pushLevel(f.level + 1)
		}
		return NodeInfo{Label: lv.label, Position: f.pos, IsLastSibling: last, IsFocused: lv.focused}, true

	default: // frameChain
		n := f.node
		last := n.next == nil
		if !last {
			pos := PositionLaterSibling
			if f.pos == PositionRoot {
				pos = PositionRoot
			}
			it.stack = append(it.stack, frame{kind: frameChain, node: n.next, pos: pos})
		}
		if n.child != nil {
			it.stack = append(it.stack, frame{kind: frameChain, node: n.child, pos: PositionFirstChild})
		}
		return NodeInfo{Label: n.label, Position: f.pos, IsLastSibling: last}, true
	}
}
