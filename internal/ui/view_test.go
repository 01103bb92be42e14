package ui

import (
	"reflect"
	"strings"
	"testing"

	"github.com/atomicstack/curselect/internal/widget"
)

func TestViewRendersMarksAndLabels(t *testing.T) {
	m := NewModel(newFakeSession(), Options{Width: 40})
	view := m.View()
	for _, want := range []string{"color", "red", "green", "(•)", "( )", "[ ]", "gift-wrap", "< OK >", "< Cancel >"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	lines := strings.Split(view, "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 body rows, got %d:\n%s", len(lines), view)
	}
	if !strings.HasPrefix(lines[5], strings.Repeat(" ", 8)) {
		t.Fatalf("expected stacked options indented by 8, got %q", lines[5])
	}
}

func TestViewScrollsToFocus(t *testing.T) {
	s := newFakeSession()
	h := NewHarness(NewModel(s, Options{Width: 40, Height: 4}))
	if view := h.View(); !strings.Contains(view, "red") || strings.Contains(view, "OK") {
		t.Fatalf("expected top of form visible:\n%s", view)
	}
	h.SendKeys("G")
	view := h.View()
	if !strings.Contains(view, "OK") || strings.Contains(view, "red") {
		t.Fatalf("expected viewport to follow focus to the buttons:\n%s", view)
	}
	h.SendKeys("g")
	if view := h.View(); !strings.Contains(view, "red") {
		t.Fatalf("expected viewport back at the top:\n%s", view)
	}
}

func TestViewShowsScrollPosition(t *testing.T) {
	m := NewModel(newFakeSession(), Options{Width: 100, Height: 6, ShowFooter: true})
	if view := m.View(); !strings.Contains(view, "1-4/8") {
		t.Fatalf("expected scroll position in footer:\n%s", view)
	}
}

func TestRenderTruncatesLongOptions(t *testing.T) {
	group := widget.NewRadioGroup()
	n := widget.VStack(widget.Radio(group, "a very long option name", false, nil))
	b := renderNode(n, 12, false)
	if len(b.lines) != 1 || !strings.Contains(b.lines[0], "…") {
		t.Fatalf("expected truncated option, got %q", b.lines)
	}
	if strings.Contains(b.lines[0], "name") {
		t.Fatalf("expected tail of option cut, got %q", b.lines[0])
	}
}

func TestRenderReportsFocusRow(t *testing.T) {
	s := newFakeSession()
	widget.FocusBottom(s.root)
	b := renderNode(s.root, 40, true)
	if b.focusRow != 7 {
		t.Fatalf("expected focus on the button row, got %d", b.focusRow)
	}
	if b := renderNode(s.root, 40, false); b.focusRow != -1 {
		t.Fatalf("expected no focus row for an unfocused tree, got %d", b.focusRow)
	}
}

func TestColumnWidthsSplitFlexSpace(t *testing.T) {
	children := []*widget.Node{
		widget.Text(""),
		widget.Button("OK", nil).WithWidth(10),
		widget.Text(""),
		widget.Button("Cancel", nil).WithWidth(10),
		widget.Text(""),
	}
	got := columnWidths(children, 40, 2)
	if want := []int{4, 10, 4, 10, 4}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := columnWidths(children, 0, 2); !reflect.DeepEqual(got, []int{0, 10, 0, 10, 0}) {
		t.Fatalf("expected flexible columns unsized without a width, got %v", got)
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("abcdef", 4); got != "abc…" {
		t.Fatalf("expected abc…, got %q", got)
	}
	if got := truncateText("abc", 0); got != "abc" {
		t.Fatalf("expected untouched text, got %q", got)
	}
	if got := truncateText("abc", 5); got != "abc" {
		t.Fatalf("expected short text untouched, got %q", got)
	}
}
