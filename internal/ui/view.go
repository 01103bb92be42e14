package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/curselect/internal/widget"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	radioOn    = "(•) "
	radioOff   = "( ) "
	toggleOn   = "[✓] "
	toggleOff  = "[ ] "
	defaultRow = 10
)

// block is a rendered node: its lines and the row holding focus, or -1.
type block struct {
	lines    []string
	focusRow int
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]string, 0, 16)
	if m.title != "" {
		lines = append(lines, styles.Header.Render(truncateText(m.title, m.width)))
	}
	body := renderNode(m.session.Root(), m.width, true)
	maxRows := m.maxVisibleItems()
	m.viewport.EnsureVisible(body.focusRow, len(body.lines), maxRows)
	start, end := m.viewport.Window(len(body.lines), maxRows)
	lines = append(lines, body.lines[start:end]...)
	if m.showFooter {
		footer := m.help.View(m.keys)
		if start > 0 || end < len(body.lines) {
			footer = styles.ScrollHint.Render(fmt.Sprintf("%d-%d/%d", start+1, end, len(body.lines))) + "  " + footer
		}
		lines = append(lines, "", footer)
	}
	return strings.Join(lines, "\n")
}

// maxVisibleItems is the number of body rows that fit, or -1 when the height
// is unknown.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 0
	if m.title != "" {
		used++
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

// pageRows is how far a page key moves.
func (m *Model) pageRows() int {
	if rows := m.maxVisibleItems(); rows > 0 {
		return rows
	}
	return defaultRow
}

func renderNode(n *widget.Node, width int, focused bool) block {
	if n == nil {
		return block{focusRow: -1}
	}
	indent := n.Indent()
	inner := width
	if width > 0 {
		inner = width - indent
		if inner < 1 {
			inner = 1
		}
	}
	var b block
	switch n.Kind() {
	case widget.KindText:
		b = block{lines: []string{styleLine(styles.Label, truncateText(n.Label(), inner))}, focusRow: -1}
	case widget.KindRadio:
		b = renderLeaf(n, radioMark(n.On()), inner, focused)
	case widget.KindToggle:
		b = renderLeaf(n, toggleMark(n.On()), inner, focused)
	case widget.KindButton:
		b = renderButton(n, inner, focused)
	case widget.KindVStack, widget.KindScrollStack:
		b = renderVertical(n, inner, focused)
	case widget.KindHStack:
		b = renderHorizontal(n, inner, focused)
	default:
		b = block{focusRow: -1}
	}
	if indent > 0 {
		pad := strings.Repeat(" ", indent)
		for i := range b.lines {
			b.lines[i] = pad + b.lines[i]
		}
	}
	return b
}

func radioMark(on bool) string {
	if on {
		return radioOn
	}
	return radioOff
}

func toggleMark(on bool) string {
	if on {
		return toggleOn
	}
	return toggleOff
}

func renderLeaf(n *widget.Node, mark string, width int, focused bool) block {
	text := truncateText(n.Label(), width-lipgloss.Width(mark))
	markStyle, textStyle := styles.Mark, styles.Item
	if n.On() {
		textStyle = styles.ItemChecked
	}
	if focused {
		markStyle, textStyle = styles.FocusedMark, styles.FocusedItem
	}
	line := styleLine(markStyle, mark) + styleLine(textStyle, text)
	row := -1
	if focused {
		row = 0
	}
	return block{lines: []string{line}, focusRow: row}
}

func renderButton(n *widget.Node, width int, focused bool) block {
	label := "< " + n.Label() + " >"
	if width > 0 {
		label = truncateText(label, width)
		if gap := width - lipgloss.Width(label); gap > 0 {
			left := gap / 2
			label = strings.Repeat(" ", left) + label + strings.Repeat(" ", gap-left)
		}
	}
	style := styles.Button
	row := -1
	if focused {
		style = styles.FocusedButton
		row = 0
	}
	return block{lines: []string{styleLine(style, label)}, focusRow: row}
}

func renderVertical(n *widget.Node, width int, focused bool) block {
	b := block{focusRow: -1}
	for i, child := range n.Children() {
		cb := renderNode(child, width, focused && i == n.Focus())
		if cb.focusRow >= 0 {
			b.focusRow = len(b.lines) + cb.focusRow
		}
		b.lines = append(b.lines, cb.lines...)
	}
	return b
}

func renderHorizontal(n *widget.Node, width int, focused bool) block {
	children := n.Children()
	if len(children) == 0 {
		return block{focusRow: -1}
	}
	widths := columnWidths(children, width, n.Gap())
	cols := make([]block, len(children))
	height := 0
	for i, child := range children {
		cols[i] = renderNode(child, widths[i], focused && i == n.Focus())
		if len(cols[i].lines) > height {
			height = len(cols[i].lines)
		}
	}
	if width <= 0 {
		for i, col := range cols {
			if widths[i] == 0 {
				widths[i] = blockWidth(col)
			}
		}
	}
	gap := strings.Repeat(" ", n.Gap())
	b := block{lines: make([]string, height), focusRow: -1}
	for row := 0; row < height; row++ {
		parts := make([]string, len(cols))
		for i, col := range cols {
			cell := ""
			if row < len(col.lines) {
				cell = col.lines[row]
			}
			parts[i] = padRight(cell, widths[i])
		}
		b.lines[row] = strings.TrimRight(strings.Join(parts, gap), " ")
	}
	for _, col := range cols {
		if col.focusRow >= 0 {
			b.focusRow = col.focusRow
		}
	}
	return b
}

// columnWidths gives fixed-width children their width and splits what is
// left evenly between the rest. With an unknown total width flexible columns
// report 0 and size to their content.
func columnWidths(children []*widget.Node, width, gap int) []int {
	widths := make([]int, len(children))
	flex := 0
	used := gap * (len(children) - 1)
	for i, child := range children {
		if child.Width() > 0 {
			widths[i] = child.Width()
			used += child.Width()
			continue
		}
		flex++
	}
	if flex == 0 || width <= 0 {
		return widths
	}
	remain := width - used
	if remain < flex {
		remain = flex
	}
	share, extra := remain/flex, remain%flex
	for i, child := range children {
		if child.Width() > 0 {
			continue
		}
		widths[i] = share
		if extra > 0 {
			widths[i]++
			extra--
		}
	}
	return widths
}

func blockWidth(b block) int {
	w := 0
	for _, line := range b.lines {
		if lw := lipgloss.Width(line); lw > w {
			w = lw
		}
	}
	return w
}

func padRight(text string, width int) string {
	w := lipgloss.Width(text)
	if w > width {
		return truncate.StringWithTail(text, uint(width), "")
	}
	return text + strings.Repeat(" ", width-w)
}

func styleLine(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

// truncateText shortens plain text to width cells, marking the cut with an
// ellipsis. A non-positive width leaves the text alone.
func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return truncate.String(text, 1)
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
