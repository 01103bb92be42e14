package widget

// Key is a logical key token. Hosts translate raw input into these before
// handing it to Handle.
type Key int

const (
	KeyNone Key = iota
	KeyDown
	KeyUp
	KeyLeft
	KeyRight
	KeyPageDown
	KeyPageUp
	KeyTop
	KeyBottom
	KeyNextGroup
	KeyPrevGroup
	KeyActivate
	KeyCancel
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyDown:      "down",
	KeyUp:        "up",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyPageDown:  "page-down",
	KeyPageUp:    "page-up",
	KeyTop:       "top",
	KeyBottom:    "bottom",
	KeyNextGroup: "next-group",
	KeyPrevGroup: "prev-group",
	KeyActivate:  "activate",
	KeyCancel:    "cancel",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Handle applies one key to the tree rooted at root. page is the number of
// rows a page movement covers.
func Handle(root *Node, key Key, page int) Control {
	switch key {
	case KeyDown:
		Move(root, Down)
	case KeyUp:
		Move(root, Up)
	case KeyLeft:
		Move(root, Left)
	case KeyRight:
		Move(root, Right)
	case KeyPageDown:
		Page(root, Down, page)
	case KeyPageUp:
		Page(root, Up, page)
	case KeyTop:
		FocusTop(root)
	case KeyBottom:
		FocusBottom(root)
	case KeyNextGroup:
		FocusNextGroup(root)
	case KeyPrevGroup:
		FocusPrevGroup(root)
	case KeyActivate:
		return Activate(root)
	case KeyCancel:
		return Cancel
	}
	return Continue
}
