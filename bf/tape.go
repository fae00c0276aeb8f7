package bf

const (
	DefaultInitialCells = 30000
	DefaultGrowChunk    = 4096
)

// Tape is the cell memory. It only grows to the right.
type Tape []byte

// Grow returns a tape holding at least n cells, over-allocating by chunk zero cells.
// Existing cells keep their values.
func (t Tape) Grow(n int, chunk int) Tape {
	if n <= len(t) {
		return t
	}
	if chunk <= 0 {
		chunk = DefaultGrowChunk
	}
	return append(t, make(Tape, n-len(t)+chunk)...)
}
