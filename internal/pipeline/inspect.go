package pipeline

import (
	"errors"
	"os"
	"path/filepath"

	"subtran/internal/srt"
)

// FileInfo summarizes one subtitle file for the list command.
type FileInfo struct {
	Name   string `json:"name"`
	Blocks int    `json:"blocks"`
	Size   int64  `json:"size"`
}

// Inspect parses every SRT file in dir and reports its block count. Files
// that yield no blocks are listed with a zero count rather than skipped.
func (r *Runner) Inspect(dir string) ([]FileInfo, error) {
	names, err := listFiles(dir, ".srt")
	if err != nil {
		return nil, err
	}
	infos := make([]FileInfo, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		info := FileInfo{Name: name}
		if st, err := os.Stat(path); err == nil {
			info.Size = st.Size()
		}
		blocks, err := r.parseSRTFile(path)
		if err != nil && !errors.Is(err, srt.ErrEmptyFile) {
			r.logger.WithField("file", name).WithError(err).Warn("Could not inspect file")
		}
		info.Blocks = len(blocks)
		infos = append(infos, info)
	}
	return infos, nil
}
