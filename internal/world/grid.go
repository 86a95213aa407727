// Package world holds the tile grid of a procedurally generated level and
// the chunk generator that grows it.
package world

import "fmt"

// Cell is the code stored in one tile of the grid.
type Cell uint8

const (
	Empty Cell = iota
	Solid
)

// Grid is a column-major tile grid of fixed height that only grows to the right,
// one whole chunk at a time. Cells are never modified once appended.
type Grid struct {
	height     int
	chunkWidth int
	columns    [][]Cell
}

// NewGrid creates an empty grid. Every chunk passed to Extend must have
// exactly chunkWidth columns of height cells.
func NewGrid(height, chunkWidth int) *Grid {
	return &Grid{
		height:     height,
		chunkWidth: chunkWidth,
	}
}

// Width returns the number of generated columns.
func (g *Grid) Width() int {
	return len(g.columns)
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// At returns the cell at (x, y), or Empty outside the generated area.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || x >= len(g.columns) || y < 0 || y >= g.height {
		return Empty
	}
	return g.columns[x][y]
}

// IsSolid reports whether (x, y) holds a solid tile.
// Coordinates outside the generated area are never solid.
func (g *Grid) IsSolid(x, y int) bool {
	return g.At(x, y) == Solid
}

// Extend appends a chunk's columns. A malformed chunk is a programming error.
func (g *Grid) Extend(columns [][]Cell) {
	if len(columns) != g.chunkWidth {
		panic(fmt.Sprintf("world: chunk has %d columns, grid expects %d", len(columns), g.chunkWidth))
	}
	for i, col := range columns {
		if len(col) != g.height {
			panic(fmt.Sprintf("world: chunk column %d has height %d, grid expects %d", i, len(col), g.height))
		}
	}
	g.columns = append(g.columns, columns...)
}
