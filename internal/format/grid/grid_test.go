package grid

import (
	"reflect"
	"testing"
)

func symbols(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "😀"
	}
	return out
}

func TestFitColumns(t *testing.T) {
	cases := []struct {
		width, cellWidth, want int
	}{
		{40, 4, 10},
		{43, 4, 10},
		{4, 4, 1},
		{3, 4, 1},
		{0, 4, 1},
		{40, 0, 1},
	}
	for _, tc := range cases {
		if got := FitColumns(tc.width, tc.cellWidth); got != tc.want {
			t.Fatalf("FitColumns(%d, %d) = %d, want %d", tc.width, tc.cellWidth, got, tc.want)
		}
	}
}

func TestPlaceRowMajor(t *testing.T) {
	cells := Place(symbols(5), 3, 4)

	want := []Cell{
		{Symbol: "😀", Index: 0, X: 0, Y: 0},
		{Symbol: "😀", Index: 1, X: 4, Y: 0},
		{Symbol: "😀", Index: 2, X: 8, Y: 0},
		{Symbol: "😀", Index: 3, X: 0, Y: 1},
		{Symbol: "😀", Index: 4, X: 4, Y: 1},
	}
	if !reflect.DeepEqual(cells, want) {
		t.Fatalf("unexpected layout %#v", cells)
	}
}

func TestPlaceClampsColumns(t *testing.T) {
	cells := Place(symbols(3), 0, 4)
	for i, cell := range cells {
		if cell.Y != i || cell.X != 0 {
			t.Fatalf("expected single column layout, got %#v", cells)
		}
	}
}

func TestSplitRows(t *testing.T) {
	rows := SplitRows(Place(symbols(7), 3, 4))
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if len(rows[0]) != 3 || len(rows[1]) != 3 || len(rows[2]) != 1 {
		t.Fatalf("unexpected row lengths %d/%d/%d", len(rows[0]), len(rows[1]), len(rows[2]))
	}
	if SplitRows(nil) != nil {
		t.Fatalf("expected nil rows for empty input")
	}
}

func TestColumnsFromGeometry(t *testing.T) {
	if got := Columns(nil); got != 1 {
		t.Fatalf("empty grid: got %d columns", got)
	}
	if got := Columns(Place(symbols(1), 5, 4)); got != 1 {
		t.Fatalf("single cell: got %d columns", got)
	}

	// First two cells stacked vertically means one column.
	if got := Columns(Place(symbols(4), 1, 4)); got != 1 {
		t.Fatalf("single column layout: got %d columns", got)
	}

	if got := Columns(Place(symbols(10), 4, 4)); got != 4 {
		t.Fatalf("wrapped layout: got %d columns", got)
	}

	// A final short row does not change the inferred count.
	if got := Columns(Place(symbols(5), 3, 4)); got != 3 {
		t.Fatalf("ragged layout: got %d columns", got)
	}

	// More slots than symbols: the single full row is the count.
	if got := Columns(Place(symbols(3), 8, 4)); got != 3 {
		t.Fatalf("unwrapped layout: got %d columns", got)
	}
}
