// Package pieces defines the shape catalog and draws trays of pieces from it.
package pieces

import "github.com/KirkDiggler/block-cats/internal/puzzle"

// Entry is a catalog shape with its draw weight
type Entry struct {
	Shape  puzzle.Shape
	Weight int
}

func shape(name string, rows ...string) puzzle.Shape {
	s := puzzle.Shape{Name: name}
	for r, line := range rows {
		for c, ch := range line {
			if ch == '#' {
				s.Cells = append(s.Cells, puzzle.Coord{Row: r, Col: c})
			}
		}
	}
	return s
}

// catalog is ordered; small shapes carry the most weight and the large or
// awkward ones are weighted 1.
var catalog = []Entry{
	{shape("single", "#"), 6},

	{shape("line_h2", "##"), 8},
	{shape("line_v2", "#", "#"), 8},
	{shape("line_h3", "###"), 8},
	{shape("line_v3", "#", "#", "#"), 8},
	{shape("line_h4", "####"), 5},
	{shape("line_v4", "#", "#", "#", "#"), 5},
	{shape("line_h5", "#####"), 3},
	{shape("line_v5", "#", "#", "#", "#", "#"), 3},
	{shape("line_h6", "######"), 1},
	{shape("line_v6", "#", "#", "#", "#", "#", "#"), 1},

	{shape("square_2", "##", "##"), 6},
	{shape("rect_2x3", "###", "###"), 2},
	{shape("rect_3x2", "##", "##", "##"), 2},
	{shape("square_3", "###", "###", "###"), 1},

	{shape("corner_ne", "##", "#."), 5},
	{shape("corner_nw", "##", ".#"), 5},
	{shape("corner_se", "#.", "##"), 5},
	{shape("corner_sw", ".#", "##"), 5},

	{shape("l_up", "#.", "#.", "##"), 3},
	{shape("l_right", "###", "#.."), 3},
	{shape("l_down", "##", ".#", ".#"), 3},
	{shape("l_left", "..#", "###"), 3},
	{shape("j_up", ".#", ".#", "##"), 3},
	{shape("j_right", "#..", "###"), 3},
	{shape("j_down", "##", "#.", "#."), 3},
	{shape("j_left", "###", "..#"), 3},

	{shape("t_up", ".#.", "###"), 3},
	{shape("t_down", "###", ".#."), 3},
	{shape("t_left", ".#", "##", ".#"), 3},
	{shape("t_right", "#.", "##", "#."), 3},

	{shape("s_h", ".##", "##."), 2},
	{shape("s_v", "#.", "##", ".#"), 2},
	{shape("z_h", "##.", ".##"), 2},
	{shape("z_v", ".#", "##", "#."), 2},

	{shape("big_corner_ne", "###", "#..", "#.."), 2},
	{shape("big_corner_nw", "###", "..#", "..#"), 2},
	{shape("big_corner_se", "#..", "#..", "###"), 2},
	{shape("big_corner_sw", "..#", "..#", "###"), 2},

	{shape("plus", ".#.", "###", ".#."), 1},
	{shape("cross", "#.#", ".#.", "#.#"), 1},
	{shape("donut", "###", "#.#", "###"), 1},
}

// Catalog returns the ordered shape catalog. The slice is a copy; the shapes
// inside are shared and must be treated as read-only.
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// TotalWeight sums every catalog weight
func TotalWeight() int {
	total := 0
	for _, e := range catalog {
		total += e.Weight
	}
	return total
}

// Lookup finds a catalog shape by name
func Lookup(name string) (puzzle.Shape, bool) {
	for _, e := range catalog {
		if e.Shape.Name == name {
			return e.Shape, true
		}
	}
	return puzzle.Shape{}, false
}
