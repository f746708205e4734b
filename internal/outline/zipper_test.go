package outline

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

// sample builds the forest [A, B[C, D], E] focused on B.
func sample() *Cursor {
	c := New().SetLabel("A")
	c = c.InsertAfter("B")
	c = c.InsertChild("C")
	c = c.InsertAfter("D")
	c = c.FocusParent()
	c = c.InsertAfter("E")
	return c.FocusPrev()
}

// clone round-trips the cursor through its wire form so tests can
// snapshot or branch without consuming the original.
func clone(t *testing.T, c *Cursor) *Cursor {
	t.Helper()
	b, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Cursor
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return &out
}

// lines renders the whole forest as indented labels, the focused node
// marked with a trailing *. Depth is recovered from the traversal
// metadata the same way the renderer does.
func lines(c *Cursor) []string {
	var out []string
	var prefix []bool // true = last sibling at that depth
	it := c.Nodes()
	for {
		info, ok := it.Next()
		if !ok {
			return out
		}
		switch info.Position {
		case PositionRoot:
			prefix = prefix[:0]
		case PositionLaterSibling:
			for len(prefix) > 0 && prefix[len(prefix)-1] {
				prefix = prefix[:len(prefix)-1]
			}
			if len(prefix) > 0 {
				prefix = prefix[:len(prefix)-1]
			}
		case PositionFirstChild:
		}
		label := info.Label
		if info.IsFocused {
			label += "*"
		}
		out = append(out, strings.Repeat("  ", len(prefix))+label)
		prefix = append(prefix, info.IsLastSibling)
	}
}

func unmarked(ls []string) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = strings.TrimSuffix(l, "*")
	}
	return out
}

func TestSampleShape(t *testing.T) {
	t.Parallel()

	got := lines(sample())
	want := []string{"A", "B*", "  C", "  D", "E"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("sample shape: got %v, want %v", got, want)
	}
}

func TestNavigationRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		nav  []func(*Cursor) *Cursor
	}{
		{"into children and back", []func(*Cursor) *Cursor{
			(*Cursor).FocusChild, (*Cursor).FocusNext, (*Cursor).FocusParent,
		}},
		{"across roots", []func(*Cursor) *Cursor{
			(*Cursor).FocusPrev, (*Cursor).FocusNext, (*Cursor).FocusNext,
		}},
		{"past every boundary", []func(*Cursor) *Cursor{
			(*Cursor).FocusParent, (*Cursor).FocusPrev, (*Cursor).FocusPrev,
			(*Cursor).FocusChild, (*Cursor).FocusChild, (*Cursor).FocusNext,
			(*Cursor).FocusNext, (*Cursor).FocusNext,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := sample()
			want := unmarked(lines(c))
			for _, nav := range tt.nav {
				c = nav(c)
			}
			if got := unmarked(lines(c)); !reflect.DeepEqual(got, want) {
				t.Fatalf("navigation changed the forest: got %v, want %v", got, want)
			}
			c = c.Restore()
			if c.parent != nil || c.prev != nil {
				t.Fatalf("restore did not reach the first root")
			}
			if got := unmarked(lines(c)); !reflect.DeepEqual(got, want) {
				t.Fatalf("restored forest differs: got %v, want %v", got, want)
			}
		})
	}
}

func TestDeleteSplicesChildrenAndFocusesNext(t *testing.T) {
	t.Parallel()

	c, ok := sample().Delete()
	if !ok {
		t.Fatalf("delete of a non-last node reported an empty forest")
	}
	got := lines(c)
	want := []string{"A", "C*", "D", "E"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("delete at B: got %v, want %v", got, want)
	}
}

func TestDeleteReducesLenByOne(t *testing.T) {
	t.Parallel()

	c := sample()
	before := c.Len()
	c, ok := c.Delete()
	if !ok {
		t.Fatalf("unexpected empty forest")
	}
	if got := c.Len(); got != before-1 {
		t.Fatalf("Len after delete = %d, want %d", got, before-1)
	}
}

func TestDeleteFallbacks(t *testing.T) {
	t.Parallel()

	// Last sibling: focus moves to the previous sibling.
	c := sample().FocusNext() // E
	c, ok := c.Delete()
	if !ok {
		t.Fatalf("unexpected empty forest")
	}
	if c.Label() != "D" {
		t.Fatalf("after deleting E focus = %q, want D", c.Label())
	}

	// Only child: focus moves to the (now childless) parent.
	c = New().SetLabel("p").InsertChild("q")
	c, ok = c.Delete()
	if !ok {
		t.Fatalf("unexpected empty forest")
	}
	if c.Label() != "p" || c.child != nil {
		t.Fatalf("after deleting the only child: focus=%q child=%v", c.Label(), c.child)
	}
}

func TestDeleteLastNodeEmptiesForest(t *testing.T) {
	t.Parallel()

	c := New().SetLabel("only")
	c, ok := c.Delete()
	if ok || c != nil {
		t.Fatalf("deleting the last node: got (%v, %v), want (nil, false)", c, ok)
	}
}

func TestInsertAfterBetweenRoots(t *testing.T) {
	t.Parallel()

	c := sample().FocusPrev() // A
	c = c.InsertAfter("")
	got := lines(c)
	want := []string{"A", "*", "B", "  C", "  D", "E"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("insert after A: got %v, want %v", got, want)
	}
}

func TestInsertBeforeKeepsSubtreeOnOldFocus(t *testing.T) {
	t.Parallel()

	c := sample().InsertBefore("x")
	got := lines(c)
	want := []string{"A", "x*", "B", "  C", "  D", "E"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("insert before B: got %v, want %v", got, want)
	}
}

func TestInsertParentAdoptsSiblings(t *testing.T) {
	t.Parallel()

	c := sample().InsertParent("p")
	got := lines(c)
	want := []string{"p*", "  A", "  B", "    C", "    D", "  E"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("insert parent at B: got %v, want %v", got, want)
	}
}

func TestInsertChildSlotsAboveExistingChildren(t *testing.T) {
	t.Parallel()

	c := sample().InsertChild("n")
	got := lines(c)
	want := []string{"A", "B", "  n*", "    C", "    D", "E"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("insert child at B: got %v, want %v", got, want)
	}
}

func TestPromoteFirstChild(t *testing.T) {
	t.Parallel()

	c := sample().FocusChild() // C
	c = c.Promote()
	got := lines(c)
	want := []string{"A", "B", "  D", "C*", "E"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("promote C: got %v, want %v", got, want)
	}
}

func TestPromoteThenDemoteRestoresParent(t *testing.T) {
	t.Parallel()

	c := sample().FocusChild() // C
	c = c.Promote().Demote()
	if got := lines(c); !reflect.DeepEqual(got, []string{"A", "B", "  D", "  C*", "E"}) {
		t.Fatalf("promote+demote: got %v", got)
	}
	if p := clone(t, c).FocusParent(); p.Label() != "B" {
		t.Fatalf("C's parent after promote+demote = %q, want B", p.Label())
	}
}

func TestDemoteBecomesLastChildOfPrevSibling(t *testing.T) {
	t.Parallel()

	c := sample().FocusNext() // E
	c = c.Demote()
	got := lines(c)
	want := []string{"A", "B", "  C", "  D", "  E*"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("demote E: got %v, want %v", got, want)
	}
}

func TestSwapNextThenSwapPrevRestoresOrder(t *testing.T) {
	t.Parallel()

	c := sample()
	want := lines(c)
	c = c.SwapNext()
	if got := lines(c); !reflect.DeepEqual(got, []string{"A", "E", "B*", "  C", "  D"}) {
		t.Fatalf("swap next: got %v", got)
	}
	c = c.SwapPrev()
	if got := lines(c); !reflect.DeepEqual(got, want) {
		t.Fatalf("swap next then swap prev: got %v, want %v", got, want)
	}
}

func TestNestAppendsFollowingSiblings(t *testing.T) {
	t.Parallel()

	c := sample().Nest()
	got := lines(c)
	want := []string{"A", "B*", "  C", "  D", "  E"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("nest at B: got %v, want %v", got, want)
	}
}

func TestFlattenSplicesChildrenOut(t *testing.T) {
	t.Parallel()

	c := sample().Flatten()
	got := lines(c)
	want := []string{"A", "B*", "C", "D", "E"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("flatten at B: got %v, want %v", got, want)
	}
	if c.child != nil {
		t.Fatalf("flatten left the focus with children")
	}
}

func TestNestFlattenInverse(t *testing.T) {
	t.Parallel()

	// With no children, Nest then Flatten is an exact inverse.
	c := sample().Flatten() // B childless, following siblings C D E
	want := lines(c)
	c = c.Nest().Flatten()
	if got := lines(c); !reflect.DeepEqual(got, want) {
		t.Fatalf("nest then flatten: got %v, want %v", got, want)
	}

	// With no following siblings, Flatten then Nest is an exact inverse.
	c2 := sample().Nest() // children C D E, no siblings after B
	want2 := lines(c2)
	c2 = c2.Flatten().Nest()
	if got := lines(c2); !reflect.DeepEqual(got, want2) {
		t.Fatalf("flatten then nest: got %v, want %v", got, want2)
	}
}

func TestBoundaryNoOps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		op   func(*Cursor) *Cursor
	}{
		{"focus parent at a root", (*Cursor).FocusParent},
		{"promote a root", (*Cursor).Promote},
		{"swap prev on a first sibling", (*Cursor).SwapPrev},
		{"focus prev on a first sibling", (*Cursor).FocusPrev},
		{"demote a first sibling", (*Cursor).Demote},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := sample().FocusPrev() // A: first root, no parent, no prev
			want := lines(c)
			c = tt.op(c)
			if c.Label() != "A" {
				t.Fatalf("focus moved to %q", c.Label())
			}
			if got := lines(c); !reflect.DeepEqual(got, want) {
				t.Fatalf("forest changed: got %v, want %v", got, want)
			}
		})
	}

	t.Run("focus child and swap next on a leaf last sibling", func(t *testing.T) {
		t.Parallel()

		c := sample().FocusNext() // E: childless, last root
		want := lines(c)
		c = c.FocusChild().FocusNext().SwapNext()
		if got := lines(c); !reflect.DeepEqual(got, want) {
			t.Fatalf("forest changed: got %v, want %v", got, want)
		}
	})
}

func TestSetLabel(t *testing.T) {
	t.Parallel()

	c := sample().SetLabel("renamed")
	got := lines(c)
	want := []string{"A", "renamed*", "  C", "  D", "E"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("set label: got %v, want %v", got, want)
	}
}

func TestEditsPreserveLen(t *testing.T) {
	t.Parallel()

	ops := []struct {
		name string
		op   func(*Cursor) *Cursor
	}{
		{"promote", func(c *Cursor) *Cursor { return c.FocusChild().Promote() }},
		{"demote", func(c *Cursor) *Cursor { return c.FocusNext().Demote() }},
		{"swap next", (*Cursor).SwapNext},
		{"swap prev", (*Cursor).SwapPrev},
		{"nest", (*Cursor).Nest},
		{"flatten", (*Cursor).Flatten},
	}
	for _, tt := range ops {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := sample()
			before := c.Len()
			c = tt.op(c)
			if got := c.Len(); got != before {
				t.Fatalf("Len changed from %d to %d", before, got)
			}
		})
	}
}

func TestNewIsSingleEmptyNode(t *testing.T) {
	t.Parallel()

	c := New()
	if c.Label() != "" {
		t.Fatalf("new cursor label = %q, want empty", c.Label())
	}
	if c.Len() != 1 {
		t.Fatalf("new cursor Len = %d, want 1", c.Len())
	}
	if got := lines(c); !reflect.DeepEqual(got, []string{"*"}) {
		t.Fatalf("new cursor render: got %v", got)
	}
}
