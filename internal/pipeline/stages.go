package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"subtran/internal/normalize"
	"subtran/internal/sanitize"
	"subtran/internal/srt"
	"subtran/internal/store"
	"subtran/internal/translate"
)

// Preprocess parses each raw SRT file, runs the normalization pipeline, and
// writes the cleaned SRT next door as <base>_cleaned.srt.
func (r *Runner) Preprocess(inDir, outDir string) ([]Result, error) {
	names, err := listFiles(inDir, ".srt")
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(names))
	for _, name := range names {
		blocks, err := r.parseSRTFile(filepath.Join(inDir, name))
		if errors.Is(err, srt.ErrEmptyFile) {
			results = append(results, r.skip(name, "no valid subtitles found", nil))
			continue
		}
		if err != nil {
			results = append(results, r.skip(name, "parse failed", err))
			continue
		}
		blocks = normalize.Clean(blocks)
		out := outputName(name, "_cleaned", ".srt")
		if err := writeSRTFile(filepath.Join(outDir, out), blocks); err != nil {
			results = append(results, r.skip(name, "write failed", err))
			continue
		}
		results = append(results, Result{Input: name, Output: out, Count: len(blocks)})
	}
	return results, nil
}

// Extract flattens each cleaned SRT into a CSV with one row per block, the
// block's lines joined by a space.
func (r *Runner) Extract(inDir, outDir string) ([]Result, error) {
	names, err := listFiles(inDir, ".srt")
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(names))
	for _, name := range names {
		blocks, err := r.parseSRTFile(filepath.Join(inDir, name))
		if err != nil {
			results = append(results, r.skip(name, "parse failed", err))
			continue
		}
		records := make([]store.Record, 0, len(blocks))
		for _, b := range blocks {
			records = append(records, store.Record{
				Timecode: b.Timecode(),
				Content:  strings.TrimSpace(strings.Join(b.Lines, " ")),
			})
		}
		out := outputName(name, "", ".csv")
		if err := store.WriteFile(filepath.Join(outDir, out), records, false); err != nil {
			results = append(results, r.skip(name, "write failed", err))
			continue
		}
		results = append(results, Result{Input: name, Output: out, Count: len(records)})
	}
	return results, nil
}

// Translate runs the Content column of each CSV through the engine and
// writes the result with the translation column added.
func (r *Runner) Translate(ctx context.Context, inDir, outDir string, engine *translate.Engine) ([]Result, error) {
	names, err := listFiles(inDir, ".csv")
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(names))
	for _, name := range names {
		records, _, err := store.ReadFile(filepath.Join(inDir, name))
		if err != nil {
			results = append(results, r.skip(name, "read failed", err))
			continue
		}
		texts := make([]string, len(records))
		for i, rec := range records {
			texts[i] = rec.Content
		}
		r.logger.WithField("file", name).WithField("subtitles", len(texts)).Info("Translating")
		for i, translated := range engine.TranslateAll(ctx, texts) {
			records[i].Translation = translated
		}
		out := outputName(name, "_pretranslated", ".csv")
		if err := store.WriteFile(filepath.Join(outDir, out), records, true); err != nil {
			results = append(results, r.skip(name, "write failed", err))
			continue
		}
		results = append(results, Result{Input: name, Output: out, Count: len(records)})
	}
	return results, nil
}

// Sanitize rewrites the translation column of each CSV through the script
// and width sanitizer.
func (r *Runner) Sanitize(inDir, outDir string, s *sanitize.Sanitizer) ([]Result, error) {
	names, err := listFiles(inDir, ".csv")
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(names))
	for _, name := range names {
		records, hasTranslation, err := store.ReadFile(filepath.Join(inDir, name))
		if err != nil {
			results = append(results, r.skip(name, "read failed", err))
			continue
		}
		if !hasTranslation {
			results = append(results, r.skip(name, "translation column not found", nil))
			continue
		}
		ok := true
		for i := range records {
			cleaned, err := s.Sanitize(records[i].Translation)
			if err != nil {
				results = append(results, r.skip(name, "sanitize failed", err))
				ok = false
				break
			}
			records[i].Translation = cleaned
		}
		if !ok {
			continue
		}
		out := outputName(name, "_sanitized", ".csv")
		if err := store.WriteFile(filepath.Join(outDir, out), records, true); err != nil {
			results = append(results, r.skip(name, "write failed", err))
			continue
		}
		results = append(results, Result{Input: name, Output: out, Count: len(records)})
	}
	return results, nil
}

// Convert turns each translated CSV back into an SRT file. Rows without a
// timecode or translation are dropped with a warning; surviving rows are
// renumbered from 1. Any "-->" inside the text would break the block
// format, so it is replaced with an arrow.
func (r *Runner) Convert(inDir, outDir string) ([]Result, error) {
	names, err := listFiles(inDir, ".csv")
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(names))
	for _, name := range names {
		records, hasTranslation, err := store.ReadFile(filepath.Join(inDir, name))
		if err != nil {
			results = append(results, r.skip(name, "read failed", err))
			continue
		}
		if !hasTranslation {
			results = append(results, r.skip(name, "translation column not found", nil))
			continue
		}
		if len(records) == 0 {
			results = append(results, r.skip(name, "no rows", nil))
			continue
		}

		var b strings.Builder
		index := 0
		for i, rec := range records {
			timecode := strings.TrimSpace(rec.Timecode)
			text := strings.TrimSpace(rec.Translation)
			if timecode == "" || text == "" {
				r.logger.WithField("file", name).WithField("row", i+1).Warn("Empty timecode or translation, dropping row")
				continue
			}
			index++
			b.WriteString(strconv.Itoa(index))
			b.WriteByte('\n')
			b.WriteString(timecode)
			b.WriteByte('\n')
			b.WriteString(strings.ReplaceAll(text, "-->", "→"))
			b.WriteString("\n\n")
		}
		out := outputName(name, "", ".srt")
		if err := os.WriteFile(filepath.Join(outDir, out), []byte(b.String()), 0o644); err != nil {
			results = append(results, r.skip(name, "write failed", err))
			continue
		}
		results = append(results, Result{Input: name, Output: out, Count: index})
	}
	return results, nil
}
