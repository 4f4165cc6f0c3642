package parser

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestExtractFullQuestion(t *testing.T) {
	c := chunk{number: 7, content: "Which control is preventive?\nA) Audit log\nB) Firewall\nC) Incident report\nD) Review meeting\nAnswer: B\nExplanation: A firewall blocks traffic before damage occurs."}

	q := extractContent(c, "cism.txt")
	require.NotNil(t, q)
	require.Equal(t, 7, q.Number)
	require.Equal(t, "Which control is preventive?", q.Text)
	require.Equal(t, "B", q.CorrectAnswer)
	require.Equal(t, "cism.txt", q.SourceFile)
	require.Len(t, q.Options, 4)
	require.Equal(t, Option{Letter: "A", Text: "Audit log"}, q.Options[0])
	require.Equal(t, Option{Letter: "B", Text: "Firewall"}, q.Options[1])
	require.Equal(t, "A firewall blocks traffic before damage occurs.", q.Explanation)
	require.NotEmpty(t, q.ID)
}

func TestExtractAnswerKeyLabels(t *testing.T) {
	cases := []struct {
		name   string
		marker string
	}{
		{"answer", "Answer: C"},
		{"resposta", "Resposta: C"},
		{"gabarito", "Gabarito - C"},
		{"ans", "Ans. C"},
		{"correct", "Correct: C"},
		{"lowercase-letter", "answer: c"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := chunk{number: 1, content: "Stem?\nA) one\nB) two\nC) three\n" + tc.marker}
			q := extractContent(c, "f.txt")
			require.NotNil(t, q)
			require.Equal(t, "C", q.CorrectAnswer)
		})
	}
}

func TestExtractDuplicateLettersFirstWins(t *testing.T) {
	c := chunk{number: 1, content: "Stem?\nA) first\nB) second\nA) duplicate\nAnswer: A"}

	q := extractContent(c, "f.txt")
	require.NotNil(t, q)
	require.Len(t, q.Options, 2)
	require.Equal(t, "first", q.Options[0].Text)
}

func TestExtractOptionsSortedByLetter(t *testing.T) {
	c := chunk{number: 1, content: "Stem?\nC) gamma\nA) alpha\nB) beta\nAnswer: A"}

	q := extractContent(c, "f.txt")
	require.NotNil(t, q)
	require.Equal(t, []Option{
		{Letter: "A", Text: "alpha"},
		{Letter: "B", Text: "beta"},
		{Letter: "C", Text: "gamma"},
	}, q.Options)
}

func TestExtractNormalizesWhitespace(t *testing.T) {
	c := chunk{number: 1, content: "Stem   with\n  broken\tspacing?\nA) an   option\n   split over lines\nB) other\nAnswer: A"}

	q := extractContent(c, "f.txt")
	require.NotNil(t, q)
	require.Equal(t, "Stem with broken spacing?", q.Text)
	require.Equal(t, "an option split over lines", q.Options[0].Text)
}

func TestExtractRejections(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"single-option", "Only stem\nA) only choice\nAnswer: A"},
		{"no-answer", "Stem?\nA) one\nB) two"},
		{"empty-stem", "A) one\nB) two\nAnswer: A"},
		{"no-options-no-answer", "Just some prose without structure"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Nil(t, extractContent(chunk{number: 1, content: tc.content}, "f.txt"))
		})
	}
}

func TestExtractFirstLineStemFallback(t *testing.T) {
	// Without option markers the first line becomes the stem, but the
	// validity gate still rejects for missing options.
	c := chunk{number: 1, content: "A stem without any options\nsecond line\nAnswer: A"}
	require.Nil(t, extractContent(c, "f.txt"))
}

func TestExtractExplanationSentinel(t *testing.T) {
	c := chunk{number: 1, content: "Stem?\nA) one\nB) two\nAnswer: B"}

	q := extractContent(c, "f.txt")
	require.NotNil(t, q)
	require.Equal(t, NoExplanation, q.Explanation)
	require.False(t, q.IsDivergent)
	require.Empty(t, q.ExplanationAnswer)
}

func TestExtractExplanationTruncated(t *testing.T) {
	long := strings.Repeat("word ", 600)
	c := chunk{number: 1, content: "Stem?\nA) one\nB) two\nAnswer: B\nExplanation: " + long}

	q := extractContent(c, "f.txt")
	require.NotNil(t, q)
	require.Len(t, q.Explanation, maxExplanationLen)
}

func TestExtractExplanationTruncationKeepsValidUTF8(t *testing.T) {
	// Accented PT explanations must never be cut mid-rune.
	long := strings.Repeat("€", 2500)
	c := chunk{number: 1, content: "Stem?\nA) one\nB) two\nAnswer: B\nJustificativa: " + long}

	q := extractContent(c, "f.txt")
	require.NotNil(t, q)
	require.True(t, utf8.ValidString(q.Explanation))
	require.Equal(t, maxExplanationLen, utf8.RuneCountInString(q.Explanation))
}

func TestExtractStripsExplanationLabel(t *testing.T) {
	c := chunk{number: 1, content: "Stem?\nA) one\nB) two\nResposta: B\nJustificativa: O firewall atua de forma preventiva."}

	q := extractContent(c, "f.txt")
	require.NotNil(t, q)
	require.Equal(t, "O firewall atua de forma preventiva.", q.Explanation)
}

func TestExtractStripsLeadingHeaderPunctuation(t *testing.T) {
	c := chunk{number: 1, content: ": - Stem after punctuation?\nA) one\nB) two\nAnswer: A"}

	q := extractContent(c, "f.txt")
	require.NotNil(t, q)
	require.Equal(t, "Stem after punctuation?", q.Text)
}
