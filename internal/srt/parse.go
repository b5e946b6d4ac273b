package srt

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dimchansky/utfbom"
	"github.com/sirupsen/logrus"

	"subtran/internal/logging"
)

var (
	// Blocks are separated by a blank line, where blank means any run of
	// whitespace including Unicode spaces such as U+3000.
	blockSepRe = regexp.MustCompile(`\n[\s\p{Z}]*\n`)
	timeLineRe = regexp.MustCompile(`^(\d{2}:\d{2}:\d{2},\d{3})\s*-->\s*(\d{2}:\d{2}:\d{2},\d{3})`)
)

// Parser turns raw SRT text into blocks. Structurally broken chunks are
// dropped with a warning; only read failures and empty files surface as
// errors.
type Parser struct {
	logger *logrus.Entry
}

// NewParser creates a parser logging to the shared srt-parser component.
func NewParser() *Parser {
	return &Parser{logger: logging.NewLogger("srt-parser")}
}

// NewParserWithLogger creates a parser with an injected logger.
func NewParserWithLogger(logger *logrus.Entry) *Parser {
	return &Parser{logger: logger}
}

// Parse reads the whole input and returns its blocks in file order. A UTF-8
// BOM is tolerated. Returns ErrEmptyFile when nothing usable remains.
func (p *Parser) Parse(r io.Reader) ([]Block, error) {
	data, err := io.ReadAll(utfbom.SkipOnly(r))
	if err != nil {
		return nil, fmt.Errorf("reading subtitle input: %w", err)
	}

	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.TrimSpace(content)

	var blocks []Block
	for _, chunk := range blockSepRe.Split(content, -1) {
		block, ok := p.parseChunk(chunk)
		if ok {
			blocks = append(blocks, block)
		}
	}
	if len(blocks) == 0 {
		return nil, ErrEmptyFile
	}
	return blocks, nil
}

// parseChunk validates one blank-line-delimited chunk: an integer index
// line, a timecode line, then the text lines verbatim.
func (p *Parser) parseChunk(chunk string) (Block, bool) {
	lines := strings.Split(chunk, "\n")
	if len(lines) < 3 {
		p.logger.WithField("chunk", truncate(chunk)).WithError(ErrBlockStructure).Warn("Block has fewer than 3 lines, skipping")
		return Block{}, false
	}

	index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		p.logger.WithField("line", lines[0]).WithError(ErrBlockStructure).Warn("Subtitle number expected, skipping block")
		return Block{}, false
	}

	m := timeLineRe.FindStringSubmatch(strings.TrimSpace(lines[1]))
	if m == nil {
		p.logger.WithField("index", index).WithError(ErrBlockStructure).Warn("Time format incorrect, skipping block")
		return Block{}, false
	}
	start, err := ParseTimestamp(m[1])
	if err != nil {
		p.logger.WithField("index", index).WithError(err).Warn("Skipping block")
		return Block{}, false
	}
	end, err := ParseTimestamp(m[2])
	if err != nil {
		p.logger.WithField("index", index).WithError(err).Warn("Skipping block")
		return Block{}, false
	}

	return Block{Index: index, Start: start, End: end, Lines: lines[2:]}, true
}

// truncate shortens a chunk for log output, cutting on a rune boundary.
func truncate(s string) string {
	if len(s) <= 40 {
		return s
	}
	cut := 40
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
