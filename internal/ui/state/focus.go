package state

// Focus identifies which element receives key input.
type Focus int

const (
	FocusSearch Focus = iota
	FocusGrid
)

// FocusRing tracks the focused element plus the grid index to restore when
// focus moves from the search field back into the grid.
type FocusRing struct {
	Current    Focus
	GridIndex  int
	Remembered int
}

// ToSearch moves focus to the search field, remembering where the grid
// cursor was so a later ToGrid lands on the same item.
func (f *FocusRing) ToSearch(fromIndex int) {
	f.Current = FocusSearch
	if fromIndex >= 0 {
		f.Remembered = fromIndex
	}
}

// ToGrid moves focus into the grid at the remembered index, clamped to the
// rendered cell count. Returns the index that received focus.
func (f *FocusRing) ToGrid(renderedCount int) int {
	idx := f.Remembered
	if idx < 0 {
		idx = 0
	}
	if renderedCount <= 0 {
		idx = 0
	} else if idx >= renderedCount {
		idx = renderedCount - 1
	}
	f.Current = FocusGrid
	f.GridIndex = idx
	return idx
}

// ClampGrid keeps the grid index within the rendered cell count after the
// result set shrinks underneath it.
func (f *FocusRing) ClampGrid(renderedCount int) {
	if f.GridIndex < 0 {
		f.GridIndex = 0
	}
	if renderedCount > 0 && f.GridIndex >= renderedCount {
		f.GridIndex = renderedCount - 1
	}
	if renderedCount == 0 {
		f.GridIndex = 0
	}
}

// Reset returns focus to the search field and forgets any grid position.
func (f *FocusRing) Reset() {
	f.Current = FocusSearch
	f.GridIndex = 0
	f.Remembered = 0
}
