package state

// Viewport tracks which slice of the rendered rows is on screen.
type Viewport struct {
	Offset int
}

// EnsureVisible adjusts the offset so row stays on screen while keeping the
// window inside [0, total). A non-positive maxVisible shows every row.
func (v *Viewport) EnsureVisible(row, total, maxVisible int) {
	if total <= 0 || maxVisible <= 0 {
		v.Offset = 0
		return
	}
	if row < 0 {
		row = 0
	}
	if row >= total {
		row = total - 1
	}
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
	if row < v.Offset {
		v.Offset = row
	}
	upper := v.Offset + maxVisible - 1
	if row > upper {
		v.Offset = row - maxVisible + 1
		if v.Offset > maxOffset {
			v.Offset = maxOffset
		}
	}
}

// Window returns the half-open row range currently on screen.
func (v *Viewport) Window(total, maxVisible int) (start, end int) {
	if maxVisible <= 0 || total <= maxVisible {
		return 0, total
	}
	start = v.Offset
	if start < 0 {
		start = 0
	}
	if start > total-maxVisible {
		start = total - maxVisible
	}
	return start, start + maxVisible
}
