package buffer

import "strings"

// Flags describes where a buffer's content came from. Flags combine with
// the bitwise operators: FlagFile | FlagFifo, f &^ FlagNew, ^f.
type Flags uint8

const (
	FlagNone Flags = 0
	FlagFile Flags = 1 << (iota - 1) // Backed by a file
	FlagNew                          // Created for a file that does not exist yet
	FlagFifo                         // Fed by a fifo
)

// Has returns true if every flag in other is set in f.
func (f Flags) Has(other Flags) bool {
	return f&other == other
}

// String returns the set flags joined by "|", or "none".
func (f Flags) String() string {
	if f == FlagNone {
		return "none"
	}
	var names []string
	if f.Has(FlagFile) {
		names = append(names, "file")
	}
	if f.Has(FlagNew) {
		names = append(names, "new")
	}
	if f.Has(FlagFifo) {
		names = append(names, "fifo")
	}
	return strings.Join(names, "|")
}
