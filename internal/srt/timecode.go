package srt

import (
	"fmt"
	"regexp"
)

// ErrMalformedTimecode reports a timestamp that does not match the SRT
// HH:MM:SS,mmm form. The enclosing block is dropped, never the whole file.
var ErrMalformedTimecode = fmt.Errorf("malformed timecode")

// Timestamp is one side of an SRT timecode range, kept as its four textual
// fields so that formatting is the exact inverse of parsing.
type Timestamp struct {
	Hour   int
	Minute int
	Second int
	Milli  int
}

var timestampRe = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2}),(\d{3})$`)

// ParseTimestamp parses a timestamp in the exact form HH:MM:SS,mmm.
// Hours run to 99; minutes and seconds must stay below 60.
func ParseTimestamp(s string) (Timestamp, error) {
	m := timestampRe.FindStringSubmatch(s)
	if m == nil {
		return Timestamp{}, fmt.Errorf("%w: %q", ErrMalformedTimecode, s)
	}
	t := Timestamp{
		Hour:   atoi2(m[1]),
		Minute: atoi2(m[2]),
		Second: atoi2(m[3]),
		Milli:  atoi3(m[4]),
	}
	if t.Minute > 59 || t.Second > 59 {
		return Timestamp{}, fmt.Errorf("%w: %q", ErrMalformedTimecode, s)
	}
	return t, nil
}

// String renders the timestamp back to HH:MM:SS,mmm.
func (t Timestamp) String() string {
	return fmt.Sprintf("%02d:%02d:%02d,%03d", t.Hour, t.Minute, t.Second, t.Milli)
}

// atoi2/atoi3 convert digit runs already vetted by timestampRe.
func atoi2(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}

func atoi3(s string) int {
	return int(s[0]-'0')*100 + int(s[1]-'0')*10 + int(s[2]-'0')
}
