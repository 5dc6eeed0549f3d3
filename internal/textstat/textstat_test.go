package textstat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasure(t *testing.T) {
	s := Measure("This agreement is binding. It takes effect today! Does it renew?")

	assert.Equal(t, 64, s.Chars)
	assert.Equal(t, 11, s.Words)
	assert.Equal(t, 3, s.Sentences)
	assert.Equal(t, 1.0, s.ReviewMinutes)
}

func TestMeasure_Empty(t *testing.T) {
	s := Measure("")

	assert.Zero(t, s.Chars)
	assert.Zero(t, s.Words)
	assert.Zero(t, s.Sentences)
	assert.Zero(t, s.ReviewMinutes)
}

func TestMeasure_NoTerminatorStillOneSentence(t *testing.T) {
	s := Measure("short clause without punctuation")

	assert.Equal(t, 4, s.Words)
	assert.Equal(t, 1, s.Sentences)
}

func TestMeasure_ReviewTimeScalesWithLength(t *testing.T) {
	sentence := "The party of the first part shall indemnify the party of the second part. "
	long := Measure(strings.Repeat(sentence, 100))

	assert.Equal(t, 1400, long.Words)
	assert.Equal(t, 100, long.Sentences)
	assert.InDelta(t, 9.3, long.ReviewMinutes, 0.01)
}
