// Package ram implements the memory bank of the Turing system.
package ram

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"os"

	"github.com/ezrec/turing/internal"
)

const (
	RAM_SIZE = 0xFF // Number of memory cells.
)

var _ram_defines = map[string]string{
	"RAM_SIZE": fmt.Sprintf("%#x", RAM_SIZE),
}

// Ram is a bank of byte cells addressed by an 8-bit address.
//
// Address 0xFF lies outside the bank: reads from it return zero and
// writes to it are discarded.
type Ram struct {
	_ internal.NoCopy

	Output io.Writer // Destination of Dump(), os.Stdout if nil.

	cell [RAM_SIZE]byte
}

// Defines for the ram
func (r *Ram) Defines() iter.Seq2[string, string] {
	return maps.All(_ram_defines)
}

// Reset zeroes every cell.
func (r *Ram) Reset() {
	clear(r.cell[:])
}

// Read returns the cell at addr, or zero if addr is outside the bank.
func (r *Ram) Read(addr byte) byte {
	if int(addr) < len(r.cell) {
		return r.cell[addr]
	}
	return 0
}

// Write stores value at addr. Writes outside the bank are ignored.
func (r *Ram) Write(addr byte, value byte) {
	if int(addr) < len(r.cell) {
		r.cell[addr] = value
	}
}

// Dump prints the cells in [from, to) as binary followed by their
// decimal address, one per line, and terminates the block with an
// empty line.
func (r *Ram) Dump(from, to byte) {
	out := r.Output
	if out == nil {
		out = os.Stdout
	}

	for addr := int(from); addr < int(to); addr++ {
		fmt.Fprintf(out, "%08b %d\n", r.Read(byte(addr)), addr)
	}
	fmt.Fprintln(out)
}
