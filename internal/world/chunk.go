package world

// Platform is one horizontal run of solid tiles written by the generator,
// in absolute tile coordinates.
type Platform struct {
	X, Y int // Leftmost tile of the run
	Len  int
}

// Spawn describes where an enemy should appear: the empty tile directly above
// a platform surface, and the direction it initially walks (-1 or +1).
type Spawn struct {
	X, Y   int
	Facing int
}

// Chunk is a batch of columns produced together by the generator.
type Chunk struct {
	Start     int      // Absolute column of Columns[0]
	Columns   [][]Cell // Column-major cells
	Platforms []Platform
	Spawns    []Spawn
}

// Width returns the number of columns in the chunk.
func (c Chunk) Width() int {
	return len(c.Columns)
}
