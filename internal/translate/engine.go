package translate

import (
	"context"

	"github.com/sirupsen/logrus"

	"subtran/internal/logging"
)

const defaultBatchSize = 50

// Engine feeds a text column through a provider in fixed-size batches. The
// output always has one entry per input: under-returned and failed batches
// are padded with empty strings and logged, never raised.
type Engine struct {
	provider  Provider
	batchSize int
	logger    *logrus.Entry
}

// NewEngine creates an engine with the given batch size (0 means default).
func NewEngine(provider Provider, batchSize int) *Engine {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Engine{
		provider:  provider,
		batchSize: batchSize,
		logger:    logging.NewLogger("translate-engine"),
	}
}

// TranslateAll translates every string, preserving order and length.
func (e *Engine) TranslateAll(ctx context.Context, texts []string) []string {
	out := make([]string, 0, len(texts))
	total := (len(texts) + e.batchSize - 1) / e.batchSize
	for i := 0; i < len(texts); i += e.batchSize {
		end := i + e.batchSize
		if end > len(texts) {
			end = len(texts)
		}
		chunk := texts[i:end]
		e.logger.WithFields(logrus.Fields{
			"chunk": i/e.batchSize + 1,
			"total": total,
		}).Debug("Translating chunk")
		out = append(out, e.translateChunk(ctx, chunk)...)
	}
	return out
}

func (e *Engine) translateChunk(ctx context.Context, chunk []string) []string {
	got, err := e.provider.Translate(ctx, chunk)
	if err != nil {
		e.logger.WithError(err).Warn("Chunk failed, padding with empty translations")
		return make([]string, len(chunk))
	}
	if len(got) != len(chunk) {
		e.logger.WithFields(logrus.Fields{
			"expected": len(chunk),
			"got":      len(got),
		}).Warn("Translation count mismatch")
	}
	if len(got) > len(chunk) {
		got = got[:len(chunk)]
	}
	for len(got) < len(chunk) {
		got = append(got, "")
	}
	return got
}
