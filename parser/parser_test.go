package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSingleConsistentQuestion(t *testing.T) {
	text := "QUESTÃO 1\nWhat is 2+2?\nA) 3\nB) 4\nC) 5\nAnswer: B\nExplanation: Basic arithmetic confirms B is correct."

	result := Parse(text, "math.txt")
	require.Equal(t, 1, result.ChunksAttempted)
	require.Equal(t, 1, result.ChunksParsed)
	require.Len(t, result.Questions, 1)

	q := result.Questions[0]
	require.Equal(t, 1, q.Number)
	require.Equal(t, "What is 2+2?", q.Text)
	require.Equal(t, "B", q.CorrectAnswer)
	require.GreaterOrEqual(t, len(q.Options), 2)
	require.False(t, q.IsDivergent)
	require.Equal(t, "B", q.ExplanationAnswer)

	require.Len(t, result.Blocks, 1)
	require.Equal(t, []string{q.ID}, result.Blocks[0].QuestionIDs)
	require.Equal(t, 0, q.BlockIndex)
}

func TestParseDivergentExplanation(t *testing.T) {
	text := "QUESTÃO 1\nWhat is 2+2?\nA) 3\nB) 4\nC) 5\nAnswer: B\nExplanation: Basic arithmetic shows the correct answer is C."

	result := Parse(text, "math.txt")
	require.Len(t, result.Questions, 1)
	require.True(t, result.Questions[0].IsDivergent)
	require.Equal(t, "C", result.Questions[0].ExplanationAnswer)
}

func TestParseRejectsSingleOptionChunk(t *testing.T) {
	text := "QUESTÃO 1\nOnly one choice offered\nA) only choice\nAnswer: A"

	result := Parse(text, "broken.txt")
	require.Equal(t, 1, result.ChunksAttempted)
	require.Equal(t, 0, result.ChunksParsed)
	require.Empty(t, result.Questions)
	require.Empty(t, result.Blocks)
}

func TestParseNoHeaders(t *testing.T) {
	result := Parse("nothing that looks like an exam in here", "empty.txt")
	require.Empty(t, result.Questions)
	require.Empty(t, result.Blocks)
	require.Equal(t, 0, result.ChunksAttempted)
}

func TestParseCountsRejectedChunks(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= 3; i++ {
		fmt.Fprintf(&sb, "Question %d\nStem number %d?\nA) yes\nB) no\nAnswer: A\n", i, i)
	}
	sb.WriteString("Question 4\nA stem with no options and no answer\n")

	result := Parse(sb.String(), "mixed.txt")
	require.Equal(t, 4, result.ChunksAttempted)
	require.Equal(t, 3, result.ChunksParsed)
	require.Len(t, result.Questions, 3)
}

func TestParseOrdinalHeadersWithNumericOptions(t *testing.T) {
	// No keyword headers anywhere, so the ordinal strategy runs; the bare
	// numbers in the option values must not shatter the document.
	text := "1. What is 2+2?\nA) 3\nB) 4\nAnswer: B\n2. What is 3+3?\nA) 5\nB) 6\nAnswer: B"

	result := Parse(text, "arith.txt")
	require.Equal(t, 2, result.ChunksAttempted)
	require.Equal(t, 2, result.ChunksParsed)
	require.Len(t, result.Questions, 2)
	require.Equal(t, 1, result.Questions[0].Number)
	require.Equal(t, "What is 2+2?", result.Questions[0].Text)
	require.Equal(t, 2, result.Questions[1].Number)
	require.Equal(t, "What is 3+3?", result.Questions[1].Text)
}

func TestParseCountsHeaderWithoutBody(t *testing.T) {
	text := "Question 1\nQuestion 2\nStem?\nA) yes\nB) no\nAnswer: A"

	result := Parse(text, "f.txt")
	require.Equal(t, 2, result.ChunksAttempted)
	require.Equal(t, 1, result.ChunksParsed)
	require.Len(t, result.Questions, 1)
	require.Equal(t, 2, result.Questions[0].Number)
}

func TestParsePreservesDeclaredNumbering(t *testing.T) {
	text := "Question 12\nTwelfth stem?\nA) yes\nB) no\nAnswer: A\nQuestion 3\nThird stem?\nA) yes\nB) no\nAnswer: B\n"

	result := Parse(text, "gaps.txt")
	require.Len(t, result.Questions, 2)
	// Sorted by declared number, which may not be contiguous.
	require.Equal(t, 3, result.Questions[0].Number)
	require.Equal(t, 12, result.Questions[1].Number)
}

func TestParseIdempotentModuloIDs(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= 7; i++ {
		fmt.Fprintf(&sb, "QUESTÃO %d\nStem %d?\nA) alpha\nB) beta\nC) gamma\nResposta: B\nComentário: Therefore, B is correct.\n", i, i)
	}
	text := sb.String()

	first := Parse(text, "same.txt")
	second := Parse(text, "same.txt")

	require.Equal(t, first.ChunksAttempted, second.ChunksAttempted)
	require.Equal(t, first.ChunksParsed, second.ChunksParsed)
	require.Len(t, second.Questions, len(first.Questions))
	for i := range first.Questions {
		a, b := first.Questions[i], second.Questions[i]
		require.Equal(t, a.Number, b.Number)
		require.Equal(t, a.Text, b.Text)
		require.Equal(t, a.Options, b.Options)
		require.Equal(t, a.CorrectAnswer, b.CorrectAnswer)
		require.Equal(t, a.Explanation, b.Explanation)
		require.Equal(t, a.IsDivergent, b.IsDivergent)
		require.Equal(t, a.ExplanationAnswer, b.ExplanationAnswer)
		require.Equal(t, a.BlockIndex, b.BlockIndex)
	}
	require.Len(t, second.Blocks, len(first.Blocks))
	for i := range first.Blocks {
		require.Equal(t, first.Blocks[i].StartIndex, second.Blocks[i].StartIndex)
		require.Equal(t, first.Blocks[i].EndIndex, second.Blocks[i].EndIndex)
		require.Len(t, second.Blocks[i].QuestionIDs, len(first.Blocks[i].QuestionIDs))
	}
}

func TestParseCustomBlockSize(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(&sb, "Question %d\nStem %d?\nA) yes\nB) no\nAnswer: A\n", i, i)
	}

	result := ParseWithBlockSize(sb.String(), "f.txt", 2)
	require.Len(t, result.Blocks, 3)
	require.Equal(t, 4, result.Blocks[2].StartIndex)
	require.Equal(t, 4, result.Blocks[2].EndIndex)
}
