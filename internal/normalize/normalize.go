// Package normalize reflows parsed subtitle blocks: whitespace cleanup,
// two-line folding, continuation merging, and renumbering.
package normalize

import (
	"strings"

	"subtran/internal/srt"
)

// closingPunct marks a line as the end of a sentence. Both the ASCII and
// the full-width CJK closers count.
const closingPunct = ".!?…。！？"

// Clean runs the full pipeline in its fixed order.
func Clean(blocks []srt.Block) []srt.Block {
	blocks = TrimSpaces(blocks)
	blocks = MergeTwoLine(blocks)
	blocks = MergeContinuations(blocks)
	return Renumber(blocks)
}

// TrimSpaces strips every line and collapses interior whitespace runs to a
// single space. Whitespace is the full Unicode class, so NBSP and ideographic
// spaces collapse too. Lines that end up empty are dropped; a block that
// loses all its lines is still kept.
func TrimSpaces(blocks []srt.Block) []srt.Block {
	for i := range blocks {
		trimmed := blocks[i].Lines[:0]
		for _, line := range blocks[i].Lines {
			line = strings.Join(strings.Fields(line), " ")
			if line != "" {
				trimmed = append(trimmed, line)
			}
		}
		blocks[i].Lines = trimmed
	}
	return blocks
}

// MergeTwoLine joins exactly-two-line blocks into a single line. Two-line
// captions are almost always one sentence wrapped for display width; blocks
// with three or more lines are assumed intentional and left alone.
func MergeTwoLine(blocks []srt.Block) []srt.Block {
	for i := range blocks {
		if len(blocks[i].Lines) == 2 {
			blocks[i].Lines = []string{strings.Join(blocks[i].Lines, " ")}
		}
	}
	return blocks
}

// MergeContinuations merges a block whose text does not end in closing
// punctuation with its successor, carrying the first block's start and the
// second block's end. This is a single left-to-right pass: after a merge the
// scan resumes at the merged result's successor without re-checking the
// result, so a chain of three unterminated blocks merges only its first
// pair. Merged blocks get index 0 until Renumber runs.
func MergeContinuations(blocks []srt.Block) []srt.Block {
	merged := make([]srt.Block, 0, len(blocks))
	for i := 0; i < len(blocks); {
		cur := blocks[i]
		if isTerminal(cur) || i+1 >= len(blocks) {
			merged = append(merged, cur)
			i++
			continue
		}
		next := blocks[i+1]
		merged = append(merged, srt.Block{
			Index: 0,
			Start: cur.Start,
			End:   next.End,
			Lines: []string{strings.Join(append(append([]string{}, cur.Lines...), next.Lines...), " ")},
		})
		i += 2
	}
	return merged
}

// Renumber assigns sequential indices starting at 1.
func Renumber(blocks []srt.Block) []srt.Block {
	for i := range blocks {
		blocks[i].Index = i + 1
	}
	return blocks
}

// isTerminal reports whether the block's last line ends a sentence. Blocks
// without any text are treated as continuations.
func isTerminal(b srt.Block) bool {
	if len(b.Lines) == 0 {
		return false
	}
	line := strings.TrimSpace(b.Lines[len(b.Lines)-1])
	if line == "" {
		return false
	}
	runes := []rune(line)
	return strings.ContainsRune(closingPunct, runes[len(runes)-1])
}
