// Package srt reads and writes SubRip subtitle files: the timecode codec,
// the block parser, and the serializer.
package srt

import "errors"

// ErrEmptyFile reports an input that produced no usable blocks. The caller
// skips the file; the surrounding batch keeps going.
var ErrEmptyFile = errors.New("no usable subtitle blocks")

// ErrBlockStructure reports a chunk that does not follow the index /
// timecode / text layout. The parser drops the chunk and logs it.
var ErrBlockStructure = errors.New("malformed subtitle block")

// Block is one timed caption: its index line, its timecode range, and one
// or more display lines in order.
type Block struct {
	Index int
	Start Timestamp
	End   Timestamp
	Lines []string
}

// Timecode returns the block's range in SRT notation,
// e.g. "00:01:15,123 --> 00:01:18,456".
func (b Block) Timecode() string {
	return b.Start.String() + " --> " + b.End.String()
}
