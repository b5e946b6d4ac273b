// Package pipeline drives the per-directory batch stages. Every stage reads
// one directory, processes each file independently, and writes a sibling
// directory; a broken file is skipped with a warning and the batch goes on.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"subtran/internal/logging"
	"subtran/internal/srt"
)

// Result records what happened to one input file.
type Result struct {
	Input   string
	Output  string
	Count   int // blocks or rows written
	Skipped bool
	Reason  string
}

// Runner executes pipeline stages.
type Runner struct {
	logger *logrus.Entry
	parser *srt.Parser
}

// NewRunner creates a runner with the shared pipeline logger.
func NewRunner() *Runner {
	logger := logging.NewLogger("pipeline")
	return &Runner{logger: logger, parser: srt.NewParserWithLogger(logger)}
}

// NewRunnerWithLogger creates a runner with an injected logger.
func NewRunnerWithLogger(logger *logrus.Entry) *Runner {
	return &Runner{logger: logger, parser: srt.NewParserWithLogger(logger)}
}

// listFiles returns the names of regular files in dir with the given
// extension (case-insensitive), sorted. A dir without matches is an error:
// a stage with nothing to do means the previous stage never ran.
func listFiles(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ext) {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no %s files found in %s", ext, dir)
	}
	sort.Strings(names)
	return names, nil
}

// outputName swaps the extension and appends a suffix to the base name,
// e.g. outputName("ep01.srt", "_cleaned", ".srt") -> "ep01_cleaned.srt".
func outputName(name, suffix, ext string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return base + suffix + ext
}

func (r *Runner) skip(name, reason string, err error) Result {
	entry := r.logger.WithField("file", name)
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Warn(reason)
	return Result{Input: name, Skipped: true, Reason: reason}
}

// parseSRTFile opens and parses one subtitle file.
func (r *Runner) parseSRTFile(path string) ([]srt.Block, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return r.parser.Parse(f)
}

// writeSRTFile serializes blocks to path.
func writeSRTFile(path string, blocks []srt.Block) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := srt.Write(f, blocks); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
