package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var abOptions = []Option{
	{Letter: "A", Text: "first option"},
	{Letter: "B", Text: "second option"},
	{Letter: "C", Text: "third option"},
	{Letter: "D", Text: "fourth option"},
}

func TestDetectDivergencePatternTable(t *testing.T) {
	cases := []struct {
		name        string
		explanation string
		want        string
	}{
		{"correct-answer-is", "After review, the correct answer is C.", "C"},
		{"resposta-correta-e", "A resposta correta é a letra D.", "D"},
		{"answer-x-is-correct", "Answer B is correct because it mitigates risk.", "B"},
		{"alternativa-x-correta", "A alternativa C está correta neste cenário.", "C"},
		{"x-is-the-correct-answer", "C is the best answer for governance questions.", "C"},
		{"the-best-answer-is", "The best choice is D given the scope.", "D"},
		{"therefore-x-is-correct", "Therefore, B is correct.", "B"},
		{"x-is-most-appropriate", "D is the most appropriate control here.", "D"},
		{"gabarito-x", "Gabarito: letra B conforme o manual.", "B"},
		{"answer-colon-x", "Answer: C", "C"},
		{"x-is-right", "In this scenario B is right.", "B"},
		{"the-answer-is-x", "Reading carefully, the answer is D here.", "D"},
		{"option-x-correct", "Option C correct per the framework.", "C"},
		{"select-x", "You should select B on the exam.", "B"},
		{"choose-x", "When in doubt choose D.", "D"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			divergent, letter := DetectDivergence("A", tc.explanation, abOptions)
			require.Equal(t, tc.want, letter)
			require.True(t, divergent)
		})
	}
}

func TestDetectDivergencePriorityOrder(t *testing.T) {
	// Two rules could fire; the more specific one is listed first and wins.
	explanation := "The correct answer is C. You should still not choose D."

	_, letter := DetectDivergence("A", explanation, abOptions)
	require.Equal(t, "C", letter)
}

func TestDetectDivergenceAgreementStillReportsLetter(t *testing.T) {
	divergent, letter := DetectDivergence("B", "Therefore, B is correct.", abOptions)
	require.False(t, divergent)
	require.Equal(t, "B", letter)
}

func TestDetectDivergenceSentinelShortCircuit(t *testing.T) {
	divergent, letter := DetectDivergence("A", NoExplanation, abOptions)
	require.False(t, divergent)
	require.Empty(t, letter)

	divergent, letter = DetectDivergence("A", "", abOptions)
	require.False(t, divergent)
	require.Empty(t, letter)
}

func TestDetectDivergenceNoSignal(t *testing.T) {
	divergent, letter := DetectDivergence("A", "This topic appears in domain one of the syllabus.", abOptions)
	require.False(t, divergent)
	require.Empty(t, letter)
}

func TestDetectDivergenceSecondaryLiteralPhrase(t *testing.T) {
	// The pattern table only captures A-D; an explanation endorsing E is
	// still picked up by the per-option fallback.
	options := append(abOptions, Option{Letter: "E", Text: "fifth option"})
	divergent, letter := DetectDivergence("A", "On review, e is correct here.", options)
	require.True(t, divergent)
	require.Equal(t, "E", letter)
}

func TestDetectDivergenceSecondaryOptionPrefix(t *testing.T) {
	options := []Option{
		{Letter: "A", Text: "segregation of duties"},
		{Letter: "B", Text: "quarterly assessments"},
	}
	divergent, letter := DetectDivergence("A", "The correct control here relies on quarterly assessments of the program.", options)
	require.True(t, divergent)
	require.Equal(t, "B", letter)
}

func TestDetectDivergenceDeterminism(t *testing.T) {
	explanation := "Hence, C is correct even though the key disagrees."
	d1, l1 := DetectDivergence("B", explanation, abOptions)
	d2, l2 := DetectDivergence("B", explanation, abOptions)
	require.Equal(t, d1, d2)
	require.Equal(t, l1, l2)
}
