package logic

// Navigator keeps the cursor and the viewport of a list of cards.
// Cards have different heights, so the viewport is measured in lines.
type Navigator struct {
	selected int
	offset   int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{}
}

// Selected returns the cursor index
func (n *Navigator) Selected() int {
	return n.selected
}

// Offset returns the index of the first card in the viewport
func (n *Navigator) Offset() int {
	return n.offset
}

// Reset moves the cursor and the viewport back to the top
func (n *Navigator) Reset() {
	n.selected = 0
	n.offset = 0
}

// Move moves the cursor by delta, clamped to [0, total)
func (n *Navigator) Move(delta, total int) {
	n.selected += delta
	n.Clamp(total)
}

// Home moves the cursor to the first card
func (n *Navigator) Home() {
	n.selected = 0
}

// End moves the cursor to the last card
func (n *Navigator) End(total int) {
	n.selected = total - 1
	n.Clamp(total)
}

// Clamp keeps the cursor and offset inside a list of total cards
func (n *Navigator) Clamp(total int) {
	if n.selected >= total {
		n.selected = total - 1
	}
	if n.selected < 0 {
		n.selected = 0
	}
	if n.offset > n.selected {
		n.offset = n.selected
	}
	if n.offset < 0 {
		n.offset = 0
	}
}

// Fit scrolls so the cursor is visible and returns the range [start, end)
// of cards that fit in height lines. heights holds the rendered height of
// every card. At least the selected card is always included.
func (n *Navigator) Fit(heights []int, height int) (start, end int) {
	total := len(heights)
	n.Clamp(total)
	if total == 0 {
		return 0, 0
	}

	// Reserve a line for each scroll indicator
	budget := func(start int) int {
		h := height
		if start > 0 {
			h--
		}
		return h - 1
	}

	if n.selected < n.offset {
		n.offset = n.selected
	}
	for n.offset < n.selected && used(heights, n.offset, n.selected+1) > budget(n.offset) {
		n.offset++
	}

	end = n.offset
	room := budget(n.offset)
	for end < total {
		if end > n.offset && used(heights, n.offset, end+1) > room {
			break
		}
		end++
	}
	// The last cards need no bottom indicator
	if end < total && used(heights, n.offset, total) <= room+1 {
		end = total
	}

	return n.offset, end
}

func used(heights []int, from, to int) int {
	sum := 0
	for i := from; i < to; i++ {
		sum += heights[i]
	}
	return sum
}

// PerScreen returns how many cards of the given heights fit on a screen,
// averaged over the list. It never returns less than one.
func PerScreen(heights []int, height int) float64 {
	if len(heights) == 0 || height <= 0 {
		return 1
	}
	avg := float64(used(heights, 0, len(heights))) / float64(len(heights))
	if avg <= 0 {
		return 1
	}
	per := float64(height) / avg
	if per < 1 {
		return 1
	}
	return per
}

// NearEnd reports whether the last rendered card is within threshold
// screens of the end of the list. A threshold of 0 fires only when the
// final card is on screen.
func NearEnd(end, total int, perScreen, threshold float64) bool {
	if total == 0 {
		return true
	}
	remaining := float64(total - end)
	return remaining <= threshold*perScreen
}
