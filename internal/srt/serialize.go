package srt

import (
	"bufio"
	"io"
	"strconv"
)

// Write renders blocks back to SRT text: index line, timecode line, text
// lines, then one blank separator line per block.
func Write(w io.Writer, blocks []Block) error {
	bw := bufio.NewWriter(w)
	for _, b := range blocks {
		bw.WriteString(strconv.Itoa(b.Index))
		bw.WriteByte('\n')
		bw.WriteString(b.Timecode())
		bw.WriteByte('\n')
		for _, line := range b.Lines {
			bw.WriteString(line)
			bw.WriteByte('\n')
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
