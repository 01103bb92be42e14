// Package widget models the form as a tree of tagged nodes and implements the
// focus navigation that runs over it.
//
// A Node is a sum type over static text, buttons, radio leaves, toggle leaves,
// and three container kinds. Navigation is written as plain recursive
// functions that switch on the tag, so the three container kinds share one
// implementation and differ only in which movement keys they answer.
package widget

import "fmt"

// Kind tags the variant a Node holds.
type Kind int

const (
	KindText Kind = iota
	KindButton
	KindRadio
	KindToggle
	KindVStack
	KindHStack
	KindScrollStack
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindButton:
		return "button"
	case KindRadio:
		return "radio"
	case KindToggle:
		return "toggle"
	case KindVStack:
		return "vstack"
	case KindHStack:
		return "hstack"
	case KindScrollStack:
		return "scrollstack"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Control is returned from event handling and tells the host loop whether to
// keep running.
type Control int

const (
	Continue Control = iota
	Confirm
	Cancel
)

func (c Control) String() string {
	switch c {
	case Continue:
		return "continue"
	case Confirm:
		return "confirm"
	case Cancel:
		return "cancel"
	default:
		return fmt.Sprintf("control(%d)", int(c))
	}
}

// Node is one element of the form tree.
type Node struct {
	kind     Kind
	text     string
	width    int
	indent   int
	gap      int
	children []*Node
	focus    int

	on       bool
	radio    *RadioGroup
	onChange func(on bool)
	onPress  func() Control
}

// Container is the capability shared by the stack kinds.
type Container interface {
	Children() []*Node
	Interactive() bool
	Focus() int
	SetFocus(index int) bool
}

// Text returns a static, non-interactive line.
func Text(text string) *Node {
	return &Node{kind: KindText, text: text}
}

// Divider returns an empty text line used to separate groups.
func Divider() *Node {
	return Text("")
}

// Button returns a leaf that runs onPress when activated.
func Button(label string, onPress func() Control) *Node {
	return &Node{kind: KindButton, text: label, onPress: onPress}
}

// RadioGroup couples radio leaves so at most one of them is on.
type RadioGroup struct {
	members []*Node
}

func NewRadioGroup() *RadioGroup {
	return &RadioGroup{}
}

// Active returns the leaf that is currently on, or nil.
func (g *RadioGroup) Active() *Node {
	for _, member := range g.members {
		if member.on {
			return member
		}
	}
	return nil
}

// Radio returns a radio leaf joined to group. onSelect fires once each time
// the leaf goes from off to on; it never fires for the initial state.
func Radio(group *RadioGroup, label string, on bool, onSelect func()) *Node {
	n := &Node{kind: KindRadio, text: label, radio: group}
	if onSelect != nil {
		n.onChange = func(bool) { onSelect() }
	}
	if on {
		if prev := group.Active(); prev != nil {
			prev.on = false
		}
		n.on = true
	}
	group.members = append(group.members, n)
	return n
}

// Toggle returns an independent on/off leaf. onChange receives the new state
// after each activation.
func Toggle(label string, on bool, onChange func(on bool)) *Node {
	return &Node{kind: KindToggle, text: label, on: on, onChange: onChange}
}

// VStack stacks children vertically; it answers up and down.
func VStack(children ...*Node) *Node {
	return newContainer(KindVStack, children)
}

// HStack places children side by side separated by gap columns; it answers
// left and right.
func HStack(gap int, children ...*Node) *Node {
	n := newContainer(KindHStack, children)
	n.gap = gap
	return n
}

// ScrollStack is a vertical stack rendered through a scrolling viewport; it
// answers up, down, and paging.
func ScrollStack(children ...*Node) *Node {
	return newContainer(KindScrollStack, children)
}

func newContainer(kind Kind, children []*Node) *Node {
	n := &Node{kind: kind, children: children}
	for i, child := range children {
		if child.Interactive() {
			n.focus = i
			break
		}
	}
	return n
}

// WithWidth fixes the node's column width inside an HStack.
func (n *Node) WithWidth(width int) *Node {
	n.width = width
	return n
}

// WithIndent pads the node on the left by indent columns.
func (n *Node) WithIndent(indent int) *Node {
	n.indent = indent
	return n
}

func (n *Node) Kind() Kind { return n.kind }
func (n *Node) Label() string { return n.text }
func (n *Node) Width() int { return n.width }
func (n *Node) Indent() int { return n.indent }
func (n *Node) Gap() int { return n.gap }

// On reports the state of a radio or toggle leaf.
func (n *Node) On() bool { return n.on }

// IsContainer reports whether the node is one of the stack kinds.
func (n *Node) IsContainer() bool {
	switch n.kind {
	case KindVStack, KindHStack, KindScrollStack:
		return true
	}
	return false
}

// AsContainer exposes the container capability when the node has it.
func (n *Node) AsContainer() (Container, bool) {
	if n == nil || !n.IsContainer() {
		return nil, false
	}
	return n, true
}

// Children returns the node's children; leaves have none.
func (n *Node) Children() []*Node {
	return n.children
}

// Interactive reports whether the node, or any descendant, accepts focus.
func (n *Node) Interactive() bool {
	switch n.kind {
	case KindButton, KindRadio, KindToggle:
		return true
	case KindVStack, KindHStack, KindScrollStack:
		for _, child := range n.children {
			if child.Interactive() {
				return true
			}
		}
	}
	return false
}

// Focus returns the index of the focused child.
func (n *Node) Focus() int {
	return n.focus
}

// SetFocus moves focus to the child at index. Targets that are not
// interactive are refused so the focus index always names an interactive
// child when one exists.
func (n *Node) SetFocus(index int) bool {
	if index < 0 || index >= len(n.children) {
		panic(fmt.Sprintf("widget: focus index %d out of range for %s with %d children", index, n.kind, len(n.children)))
	}
	if !n.children[index].Interactive() {
		return false
	}
	n.focus = index
	return true
}

// press activates a leaf. Radio activation switches the previously active
// sibling off and this leaf on before the callback runs, so no observer ever
// sees two active leaves.
func (n *Node) press() Control {
	switch n.kind {
	case KindRadio:
		if n.on {
			return Continue
		}
		if prev := n.radio.Active(); prev != nil {
			prev.on = false
		}
		n.on = true
		if n.onChange != nil {
			n.onChange(true)
		}
	case KindToggle:
		n.on = !n.on
		if n.onChange != nil {
			n.onChange(n.on)
		}
	case KindButton:
		if n.onPress != nil {
			return n.onPress()
		}
	}
	return Continue
}
