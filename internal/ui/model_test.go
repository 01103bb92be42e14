package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/curselect/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
)

type fakeSession struct {
	root     *widget.Node
	keys     []widget.Key
	pages    []int
	selected []string
}

func newFakeSession() *fakeSession {
	s := &fakeSession{}
	group := widget.NewRadioGroup()
	radios := make([]*widget.Node, 0, 3)
	for i, label := range []string{"red", "green", "blue"} {
		radios = append(radios, widget.Radio(group, label, i == 1, func() {
			s.selected = append(s.selected, label)
		}))
	}
	s.root = widget.ScrollStack(
		widget.HStack(2, widget.Text("color").WithWidth(6), widget.VStack(radios...)),
		widget.Divider(),
		widget.VStack(widget.Text("extras"), widget.VStack(widget.Toggle("gift-wrap", false, nil)).WithIndent(8)),
		widget.Divider(),
		widget.HStack(2,
			widget.Text(""),
			widget.Button("OK", func() widget.Control { return widget.Confirm }).WithWidth(10),
			widget.Text(""),
			widget.Button("Cancel", func() widget.Control { return widget.Cancel }).WithWidth(10),
			widget.Text(""),
		),
	)
	return s
}

func (s *fakeSession) Root() *widget.Node { return s.root }

func (s *fakeSession) Handle(key widget.Key, page int) widget.Control {
	s.keys = append(s.keys, key)
	s.pages = append(s.pages, page)
	return widget.Handle(s.root, key, page)
}

func TestKeyBindingsMapToTokens(t *testing.T) {
	keys := defaultKeyMap()
	cases := map[string]widget.Key{
		"j": widget.KeyDown, "down": widget.KeyDown,
		"k": widget.KeyUp, "up": widget.KeyUp,
		"h": widget.KeyLeft, "left": widget.KeyLeft,
		"l": widget.KeyRight, "right": widget.KeyRight,
		"z": widget.KeyPageDown, "pgdown": widget.KeyPageDown,
		"w": widget.KeyPageUp, "pgup": widget.KeyPageUp,
		"g": widget.KeyTop, "G": widget.KeyBottom,
		"tab": widget.KeyNextGroup, "shift+tab": widget.KeyPrevGroup,
		"enter": widget.KeyActivate, " ": widget.KeyActivate,
		"q": widget.KeyCancel, "Q": widget.KeyCancel, "ctrl+c": widget.KeyCancel,
		"x": widget.KeyNone,
	}
	for name, want := range cases {
		if got := keys.token(keyMsg(name)); got != want {
			t.Fatalf("key %q: expected %s, got %s", name, want, got)
		}
	}
}

func TestHarnessConfirmQuits(t *testing.T) {
	s := newFakeSession()
	h := NewHarness(NewModel(s, Options{}))
	h.SendKeys("j", "j", "enter", "G", "h", "enter")
	if !h.Quit() {
		t.Fatalf("expected program to quit")
	}
	if h.Model().Outcome() != widget.Confirm {
		t.Fatalf("expected confirm outcome, got %s", h.Model().Outcome())
	}
	if len(s.selected) != 1 || s.selected[0] != "blue" {
		t.Fatalf("expected blue selected, got %v", s.selected)
	}
}

func TestHarnessCancelKey(t *testing.T) {
	s := newFakeSession()
	h := NewHarness(NewModel(s, Options{}))
	h.SendKeys("Q")
	if !h.Quit() || h.Model().Outcome() != widget.Cancel {
		t.Fatalf("expected cancel outcome, got %s", h.Model().Outcome())
	}
	h.SendKeys("j")
	if len(s.keys) != 1 {
		t.Fatalf("expected keys after quit to be dropped, got %v", s.keys)
	}
}

func TestUnboundKeysAreIgnored(t *testing.T) {
	s := newFakeSession()
	h := NewHarness(NewModel(s, Options{}))
	h.SendKeys("x", "?")
	if len(s.keys) != 0 || h.Quit() {
		t.Fatalf("expected unbound keys to be ignored")
	}
}

func TestPageUsesVisibleRows(t *testing.T) {
	s := newFakeSession()
	h := NewHarness(NewModel(s, Options{Height: 8, ShowFooter: true}))
	h.SendKeys("z")
	if len(s.pages) != 1 || s.pages[0] != 6 {
		t.Fatalf("expected page of 6 rows, got %v", s.pages)
	}
	s = newFakeSession()
	h = NewHarness(NewModel(s, Options{}))
	h.SendKeys("w")
	if s.pages[0] != defaultRow {
		t.Fatalf("expected default page size, got %v", s.pages)
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	m := NewModel(newFakeSession(), Options{Width: 40})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.width != 40 || m.height != 30 {
		t.Fatalf("expected fixed width and resized height, got %dx%d", m.width, m.height)
	}
}

func TestViewShowsTitleAndFooter(t *testing.T) {
	m := NewModel(newFakeSession(), Options{Title: "Order", Width: 100, ShowFooter: true})
	view := m.View()
	if !strings.Contains(view, "Order") {
		t.Fatalf("expected title in view:\n%s", view)
	}
	if !strings.Contains(view, "cancel") {
		t.Fatalf("expected footer help in view:\n%s", view)
	}
	m = NewModel(newFakeSession(), Options{Width: 100})
	if strings.Contains(m.View(), "cancel") {
		t.Fatalf("expected footer hidden")
	}
}
