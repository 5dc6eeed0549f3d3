// Package textstat computes deterministic text measurements used to annotate
// analyzed documents.
package textstat

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shauryaa19/legallens/internal/contract"
)

var sentenceRe = regexp.MustCompile(`[.!?]+(?:\s|$)`)

// reviewWPM is the assumed reading pace for contract text. Careful legal
// review runs well below casual reading speed.
const reviewWPM = 150

// Measure computes text statistics for a document.
// Heuristics:
// - Words are whitespace-separated fields
// - Sentences are terminator runs ([.!?] before space or end); floor 1 for non-empty text
// - ReviewMinutes assumes reviewWPM words per minute, rounded to a tenth, floor 1 minute
func Measure(text string) contract.Stats {
	s := contract.Stats{Chars: utf8.RuneCountInString(text)}
	s.Words = len(strings.Fields(text))
	if s.Words == 0 {
		return s
	}
	s.Sentences = len(sentenceRe.FindAllString(text, -1))
	if s.Sentences == 0 {
		s.Sentences = 1
	}
	s.ReviewMinutes = math.Max(math.Round(float64(s.Words)/reviewWPM*10)/10, 1.0)
	return s
}
