package sanitize

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// asciiNeutral are the characters that suppress spacing entirely: ASCII
// punctuation and whitespace on either side of a pair means no insertion.
const asciiNeutral = " \t\n\v\f\r!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// fullWidthPunct is the curated set of full-width punctuation marks that
// never get a space inserted next to them.
const fullWidthPunct = "。，！？：；“”‘’（）「」『』《》、—…～·〈〉﹏｛｝［］【】" +
	"﹐﹑﹒﹔﹖﹗﹕﹘﹝﹞﹟﹡﹢﹣﹤﹥﹦﹩﹪﹫﹬﹭﹮﹯"

func isFullWidth(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianFullwidth, width.EastAsianWide, width.EastAsianAmbiguous:
		return true
	}
	return false
}

func isHalfWidth(r rune) bool {
	if r < utf8.RuneSelf {
		return true
	}
	return width.LookupRune(r).Kind() == width.EastAsianHalfwidth
}

func isFullWidthPunct(r rune) bool {
	return strings.ContainsRune(fullWidthPunct, r)
}

func isNeutral(r rune) bool {
	return strings.ContainsRune(asciiNeutral, r)
}
