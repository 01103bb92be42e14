package widget

// Direction is a movement within the focused group.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// FocusTop focuses the first interactive child of n, descending into it when
// it is itself a container. Nodes without interactive children keep their
// focus unchanged.
func FocusTop(n *Node) {
	if n == nil || !n.IsContainer() {
		return
	}
	for i, child := range n.children {
		if child.Interactive() {
			n.focus = i
			FocusTop(child)
			return
		}
	}
}

// FocusBottom focuses the last interactive child of n, descending into it.
func FocusBottom(n *Node) {
	if n == nil || !n.IsContainer() {
		return
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		child := n.children[i]
		if child.Interactive() {
			n.focus = i
			FocusBottom(child)
			return
		}
	}
}

// FocusNextGroup moves top-level focus to the next interactive child after
// the current one, wrapping around. The current child is the last candidate,
// so with a single interactive group focus returns to its top.
func FocusNextGroup(root *Node) bool {
	return rotate(root, 1)
}

// FocusPrevGroup is FocusNextGroup scanning backwards. The group it lands on
// is entered at its top, like FocusNextGroup.
func FocusPrevGroup(root *Node) bool {
	return rotate(root, -1)
}

func rotate(root *Node, step int) bool {
	if root == nil || !root.IsContainer() {
		return false
	}
	count := len(root.children)
	for offset := 1; offset <= count; offset++ {
		i := ((root.focus+step*offset)%count + count) % count
		child := root.children[i]
		if child.Interactive() {
			root.focus = i
			FocusTop(child)
			return true
		}
	}
	return false
}

// Move offers a movement to the deepest focused container first and lets it
// bubble up until a container on the matching axis can move. The container
// steps to the nearest interactive sibling and enters it from the side the
// movement came from.
func Move(n *Node, dir Direction) bool {
	if n == nil || !n.IsContainer() || len(n.children) == 0 {
		return false
	}
	if Move(n.children[n.focus], dir) {
		return true
	}
	step := axisStep(n.kind, dir)
	if step == 0 {
		return false
	}
	for i := n.focus + step; i >= 0 && i < len(n.children); i += step {
		child := n.children[i]
		if !child.Interactive() {
			continue
		}
		n.focus = i
		if step > 0 {
			FocusTop(child)
		} else {
			FocusBottom(child)
		}
		return true
	}
	return false
}

// Page repeats a vertical Move up to rows times.
func Page(n *Node, dir Direction, rows int) bool {
	if rows < 1 {
		rows = 1
	}
	moved := false
	for i := 0; i < rows; i++ {
		if !Move(n, dir) {
			break
		}
		moved = true
	}
	return moved
}

func axisStep(kind Kind, dir Direction) int {
	switch kind {
	case KindVStack, KindScrollStack:
		switch dir {
		case Up:
			return -1
		case Down:
			return 1
		}
	case KindHStack:
		switch dir {
		case Left:
			return -1
		case Right:
			return 1
		}
	}
	return 0
}

// Focused returns the interactive leaf at the end of the focus chain, or nil
// when the tree has none.
func Focused(root *Node) *Node {
	n := root
	for n != nil && n.IsContainer() {
		if len(n.children) == 0 {
			return nil
		}
		n = n.children[n.focus]
	}
	if n == nil || !n.Interactive() {
		return nil
	}
	return n
}

// FocusPath returns the focus index at each container level, outermost first.
func FocusPath(root *Node) []int {
	path := make([]int, 0, 4)
	for n := root; n != nil && n.IsContainer() && len(n.children) > 0; n = n.children[n.focus] {
		path = append(path, n.focus)
	}
	return path
}

// Activate presses the focused leaf.
func Activate(root *Node) Control {
	leaf := Focused(root)
	if leaf == nil {
		return Continue
	}
	return leaf.press()
}
