package controller

// Drag-and-drop is a three-phase interaction: BeginMove picks the item up,
// UpdateTarget follows the pointer, Commit drops it. Any presentation layer
// that can report the vertical extent of its rendered rows can drive it.

// Box is the vertical extent of one rendered item, in whatever unit the view
// uses for pointer coordinates (pixels, terminal rows, ...).
type Box struct {
	Top    float64
	Height float64
}

// End is what DropTarget returns when the pointer is below every candidate.
const End = -1

// DropTarget returns the position in boxes of the nearest element whose
// vertical midpoint lies below pointerY, or End when there is none.
func DropTarget(pointerY float64, boxes []Box) int {
	target := End
	var best float64
	for i, b := range boxes {
		offset := pointerY - b.Top - b.Height/2
		if offset < 0 && (target == End || offset > best) {
			target, best = i, offset
		}
	}
	return target
}

// Move is an in-progress drag of one item.
type Move struct {
	c        *Controller
	from     int
	to       int
	resolved bool
	done     bool
}

// BeginMove picks up the item at index.
func (c *Controller) BeginMove(index int) (*Move, error) {
	if err := c.checkIndex(index); err != nil {
		return nil, err
	}
	return &Move{c: c, from: index}, nil
}

// From is the position of the item being dragged.
func (m *Move) From() int { return m.from }

// UpdateTarget resolves the drop position for a pointer at pointerY. layout
// holds one Box per rendered item in display order, the dragged item
// included; the dragged item itself is never a candidate. A layout that does
// not match the list leaves the move without a target.
func (m *Move) UpdateTarget(pointerY float64, layout []Box) {
	if m.done {
		return
	}
	n := len(m.c.items)
	if len(layout) != n || m.from >= n {
		m.resolved = false
		return
	}
	rest := make([]Box, 0, n-1)
	rest = append(rest, layout[:m.from]...)
	rest = append(rest, layout[m.from+1:]...)

	// A position among the remaining items is exactly the insertion index
	// once the dragged item has been taken out.
	t := DropTarget(pointerY, rest)
	if t == End {
		t = len(rest)
	}
	m.to, m.resolved = t, true
}

// Target reports where the item would land if dropped now.
func (m *Move) Target() (int, bool) {
	if !m.resolved || m.done {
		return 0, false
	}
	return m.to, true
}

// Commit drops the item at the resolved target. A move without a target, or
// one that would put the item back where it was, changes nothing.
func (m *Move) Commit() (bool, error) {
	if m.done {
		return false, nil
	}
	m.done = true
	if !m.resolved {
		return false, nil
	}
	return m.c.Reorder(m.from, m.to)
}

// Cancel abandons the move.
func (m *Move) Cancel() { m.done = true }
