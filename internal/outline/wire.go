package outline

import "encoding/json"

// Wire form of a cursor. The whole cursor value is persisted, focus
// position included, so loading restores the session exactly where it
// was. Collaborators treat the bytes as opaque; only this package
// knows the shape.
//
// Backward chains are stored innermost-first, exactly as held, with
// the link in the Next field.

type wireNode struct {
	Label string    `json:"label"`
	Child *wireNode `json:"child,omitempty"`
	Next  *wireNode `json:"next,omitempty"`
}

type wirePath struct {
	Label  string    `json:"label"`
	Parent *wirePath `json:"parent,omitempty"`
	Prev   *wireNode `json:"prev,omitempty"`
	Next   *wireNode `json:"next,omitempty"`
}

type wireCursor struct {
	Version int       `json:"version"`
	Label   string    `json:"label"`
	Parent  *wirePath `json:"parent,omitempty"`
	Child   *wireNode `json:"child,omitempty"`
	Prev    *wireNode `json:"prev,omitempty"`
	Next    *wireNode `json:"next,omitempty"`
}

func nodeToWire(n *Node) *wireNode {
	var head, tail *wireNode
	for ; n != nil; n = n.next {
		w := &wireNode{Label: n.label, Child: nodeToWire(n.child)}
		if head == nil {
			head = w
		} else {
			tail.Next = w
		}
		tail = w
	}
	return head
}

func revToWire(r *RevNode) *wireNode {
	var head, tail *wireNode
	for ; r != nil; r = r.prev {
		w := &wireNode{Label: r.label, Child: nodeToWire(r.child)}
		if head == nil {
			head = w
		} else {
			tail.Next = w
		}
		tail = w
	}
	return head
}

func pathToWire(p *PathNode) *wirePath {
	if p == nil {
		return nil
	}
	return &wirePath{
		Label:  p.label,
		Parent: pathToWire(p.parent),
		Prev:   revToWire(p.prev),
		Next:   nodeToWire(p.next),
	}
}

func wireToNode(w *wireNode) *Node {
	var head, tail *Node
	for ; w != nil; w = w.Next {
		n := &Node{label: w.Label, child: wireToNode(w.Child)}
		if head == nil {
			head = n
		} else {
			tail.next = n
		}
		tail = n
	}
	return head
}

func wireToRev(w *wireNode) *RevNode {
	var head, tail *RevNode
	for ; w != nil; w = w.Next {
		r := &RevNode{label: w.Label, child: wireToNode(w.Child)}
		if head == nil {
			head = r
		} else {
			tail.prev = r
		}
		tail = r
	}
	return head
}

func wireToPath(w *wirePath) *PathNode {
	if w == nil {
		return nil
	}
	return &PathNode{
		label:  w.Label,
		parent: wireToPath(w.Parent),
		prev:   wireToRev(w.Prev),
		next:   wireToNode(w.Next),
	}
}

func (c *Cursor) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireCursor{
		Version: 1,
		Label:   c.label,
		Parent:  pathToWire(c.parent),
		Child:   nodeToWire(c.child),
		Prev:    revToWire(c.prev),
		Next:    nodeToWire(c.next),
	})
}

func (c *Cursor) UnmarshalJSON(b []byte) error {
	var w wireCursor
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	c.label = w.Label
	c.parent = wireToPath(w.Parent)
	c.child = wireToNode(w.Child)
	c.prev = wireToRev(w.Prev)
	c.next = wireToNode(w.Next)
	return nil
}
