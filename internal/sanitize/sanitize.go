// Package sanitize converts translated text between script variants and
// fixes the spacing between mixed half-width and full-width characters.
package sanitize

import (
	"fmt"
	"strings"

	"github.com/longbridgeapp/opencc"
)

// Converter maps text between two writing-system variants of the same
// language. It must be deterministic over valid UTF-8.
type Converter interface {
	Convert(in string) (string, error)
}

// Identity is a Converter that returns its input unchanged.
type Identity struct{}

func (Identity) Convert(in string) (string, error) { return in, nil }

// Sanitizer applies script conversion followed by width-aware spacing.
type Sanitizer struct {
	conv Converter
}

// New builds a sanitizer around an explicit converter.
func New(conv Converter) *Sanitizer {
	if conv == nil {
		conv = Identity{}
	}
	return &Sanitizer{conv: conv}
}

// NewOpenCC builds a sanitizer backed by an OpenCC conversion scheme such
// as "s2t" or "s2twp".
func NewOpenCC(conversion string) (*Sanitizer, error) {
	cc, err := opencc.New(conversion)
	if err != nil {
		return nil, fmt.Errorf("loading opencc conversion %q: %w", conversion, err)
	}
	return New(cc), nil
}

// Sanitize converts the whole string first, then walks it pairwise and
// inserts a single space between adjacent half-width and full-width
// characters. No space is inserted when either side of the pair is
// whitespace or punctuation. Nothing else is altered or removed.
func (s *Sanitizer) Sanitize(text string) (string, error) {
	if text == "" {
		return text, nil
	}
	converted, err := s.conv.Convert(text)
	if err != nil {
		return "", fmt.Errorf("script conversion: %w", err)
	}

	var b strings.Builder
	b.Grow(len(converted))
	prev := rune(0)
	for _, r := range converted {
		if prev != 0 && !isNeutral(prev) && !isNeutral(r) {
			switch {
			case isHalfWidth(prev) && isFullWidth(r) && !isFullWidthPunct(r):
				b.WriteRune(' ')
			case isFullWidth(prev) && !isFullWidthPunct(prev) && isHalfWidth(r):
				b.WriteRune(' ')
			}
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String(), nil
}
