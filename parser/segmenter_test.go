package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSegmentKeywordHeaders(t *testing.T) {
	text := "QUESTÃO 1\nFirst body\nQUESTÃO 2\nSecond body\nQuestion: 3\nThird body\nQ 4\nFourth body"

	chunks := segment(text)
	require.Len(t, chunks, 4)
	require.Equal(t, 1, chunks[0].number)
	require.Equal(t, "First body", chunks[0].content)
	require.Equal(t, 2, chunks[1].number)
	require.Equal(t, "Second body", chunks[1].content)
	require.Equal(t, 3, chunks[2].number)
	require.Equal(t, 4, chunks[3].number)
}

func TestSegmentDropsTextBeforeFirstHeader(t *testing.T) {
	text := "Course introduction, ignore this part.\nQuestion 1\nThe real body"

	chunks := segment(text)
	require.Len(t, chunks, 1)
	require.Equal(t, 1, chunks[0].number)
	require.Equal(t, "The real body", chunks[0].content)
}

func TestSegmentHeaderEmbeddedMidLine(t *testing.T) {
	text := "Question 1\nStem one ends with explanation text Question 2\nStem two"

	chunks := segment(text)
	require.Len(t, chunks, 2)
	require.Equal(t, "Stem one ends with explanation text", chunks[0].content)
	require.Equal(t, "Stem two", chunks[1].content)
}

func TestSegmentOrdinalFallback(t *testing.T) {
	text := "1. First stem here\n2) Second stem here\n3- Third stem here"

	chunks := segment(text)
	require.Len(t, chunks, 3)
	require.Equal(t, 1, chunks[0].number)
	require.Equal(t, "First stem here", chunks[0].content)
	require.Equal(t, 2, chunks[1].number)
	require.Equal(t, 3, chunks[2].number)
}

func TestSegmentOrdinalRequiresDelimiter(t *testing.T) {
	// Numeric option values are digits followed by plain whitespace; they
	// must not open chunks in ordinal mode.
	text := "1. What is 2+2?\nA) 3\nB) 4\nAnswer: B\n2. What is 3+3?\nA) 5\nB) 6\nAnswer: B"

	chunks := segment(text)
	require.Len(t, chunks, 2)
	require.Equal(t, 1, chunks[0].number)
	require.Contains(t, chunks[0].content, "A) 3")
	require.Equal(t, 2, chunks[1].number)
	require.Contains(t, chunks[1].content, "A) 5")
}

func TestSegmentOrdinalIgnoresBareNumberInStem(t *testing.T) {
	text := "1. In 2019 the framework was revised. What applies?\nA) x\nB) y\nAnswer: A"

	chunks := segment(text)
	require.Len(t, chunks, 1)
	require.Equal(t, 1, chunks[0].number)
	require.Contains(t, chunks[0].content, "In 2019 the framework")
}

func TestSegmentKeepsHeadersWithoutBody(t *testing.T) {
	// A header directly followed by another header is still a candidate;
	// extraction is what rejects it.
	chunks := segment("Question 1\nQuestion 2\nOnly this one has a body")
	require.Len(t, chunks, 2)
	require.Equal(t, "", chunks[0].content)
	require.Equal(t, "Only this one has a body", chunks[1].content)
}

func TestSegmentKeywordWinsOverOrdinal(t *testing.T) {
	// A single keyword header disables the ordinal strategy for the whole
	// document, so "2." stays inside the first chunk.
	text := "Question 1\nStem mentioning item 2. as part of a sentence"

	chunks := segment(text)
	require.Len(t, chunks, 1)
	require.Equal(t, 1, chunks[0].number)
	require.Contains(t, chunks[0].content, "item 2. as part of a sentence")
}

func TestSegmentOrdinalIgnoresDecimals(t *testing.T) {
	text := "1. The value of pi is close to three\n2. Another stem"

	chunks := segment(text)
	require.Len(t, chunks, 2)

	withDecimal := segment("1. Pi rounds to 3.14 exactly\n2. Another stem")
	require.Len(t, withDecimal, 2)
	require.Contains(t, withDecimal[0].content, "3.14")
}

func TestSegmentKeywordNotInsideWord(t *testing.T) {
	// "FAQ 12" must not be read as "Q 12".
	chunks := segment("See the FAQ 12 for details\nQuestion 1\nBody")
	require.Len(t, chunks, 1)
	require.Equal(t, 1, chunks[0].number)
}

func TestSegmentNoHeaders(t *testing.T) {
	require.Empty(t, segment("nothing recognizable in here"))
	require.Empty(t, segment(""))
}

func TestSegmentNormalizesLineEndings(t *testing.T) {
	chunks := segment("Question 1\r\nStem with CRLF\r\nQuestion 2\rStem with CR")
	require.Len(t, chunks, 2)
	require.Equal(t, "Stem with CRLF", chunks[0].content)
	require.Equal(t, "Stem with CR", chunks[1].content)
}
