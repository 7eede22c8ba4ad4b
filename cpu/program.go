package cpu

import (
	"iter"
)

// Line represents a line of assembled code with its source location and generated bytes.
type Line struct {
	LineNo int
	Ip     int
	Words  []string
	Bytes  []byte
	Links  map[int]string // Byte index to label, resolved at link time.
}

type Program struct {
	Lines []Line
}

type Debug struct {
	*Line
	Index int
}

// Debug finds the source line that generated the byte at ip.
func (prog *Program) Debug(ip int) (dbg Debug) {
	for n, line := range prog.Lines {
		if ip >= line.Ip && ip < line.Ip+len(line.Bytes) {
			dbg = Debug{
				Line:  &prog.Lines[n],
				Index: ip - line.Ip,
			}
			break
		}
	}

	return
}

// Binary returns the program as a flat byte image starting at address 0.
func (prog *Program) Binary() (bins []byte) {
	for _, data := range prog.Bytes() {
		bins = append(bins, data)
	}

	return
}

// Bytes iterates over the address and value of every assembled byte.
func (prog *Program) Bytes() iter.Seq2[int, byte] {
	return func(yield func(ip int, data byte) bool) {
		for _, line := range prog.Lines {
			for n, data := range line.Bytes {
				if !yield(line.Ip+n, data) {
					return
				}
			}
		}
	}
}
