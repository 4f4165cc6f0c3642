package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuestionContentHash(t *testing.T) {
	a := QuestionContentHash("Which control is preventive?")
	b := QuestionContentHash("  which control IS preventive?  ")
	c := QuestionContentHash("Which control is detective?")

	require.Len(t, a, 16)
	require.Equal(t, a, b, "case and surrounding whitespace must not change the hash")
	require.NotEqual(t, a, c)
}

func TestQuizTitleFromFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Questoes CISM dump.txt", "CISM dump"},
		{"cism-dump3.txt", "cism-dump"},
		{"Governance.docx", "Governance"},
		{"plain name", "plain name"},
		{"42.txt", "42.txt"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, QuizTitleFromFileName(tc.in), tc.in)
	}
}
