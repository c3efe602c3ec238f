package pageloop

import (
	"bufio"
	"fmt"
	"io"
)

// WriteCycles formats each cycle (a sequence of new-space ids) as one
// line of space-separated original ids, translated through toOld, and
// writes it to w. Emission is append-only; each line is written in a
// single buffered Write so no partial line is ever observed by a
// concurrent reader of the underlying file.
func WriteCycles(w io.Writer, cycles [][]int, toOld []int) error {
	buf := bufio.NewWriter(w)
	for _, cycle := range cycles {
		line := make([]byte, 0, len(cycle)*4)
		for i, v := range cycle {
			if i > 0 {
				line = append(line, ' ')
			}
			line = fmt.Appendf(line, "%d", toOld[v])
		}
		line = append(line, '\n')
		// Flush before a line that does not fit, so the buffer never
		// hands a part of a line to w.
		if len(line) > buf.Available() && buf.Buffered() > 0 {
			if err := buf.Flush(); err != nil {
				return fmt.Errorf("pageloop: write cycle: %w", err)
			}
		}
		if _, err := buf.Write(line); err != nil {
			return fmt.Errorf("pageloop: write cycle: %w", err)
		}
	}
	return buf.Flush()
}
