// Package chunk segments a lemma stream into fixed-size windows. The
// integrity analyzer compares windows against each other as stand-ins
// for career periods, so a trailing partial window is dropped rather
// than skewing the comparison.
package chunk

import "strings"

type Segment struct {
	Index      int
	StartToken int
	EndToken   int
	Text       string
}

// FixedWindows splits tokens into consecutive windows of exactly size
// tokens. Leftover tokens that do not fill a whole window are dropped.
func FixedWindows(tokens []string, size int) []Segment {
	if size <= 0 || len(tokens) == 0 {
		return nil
	}

	segments := make([]Segment, 0, len(tokens)/size)
	for start := 0; start+size < len(tokens); start += size {
		end := start + size
		segments = append(segments, Segment{
			Index:      len(segments),
			StartToken: start,
			EndToken:   end,
			Text:       strings.Join(tokens[start:end], " "),
		})
	}
	return segments
}
