package parser

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	leadingPunctPattern = regexp.MustCompile(`^[:.\-)\s]+`)
	answerKeyPattern    = regexp.MustCompile(`(?i)\b(?:Resposta|Gabarito|Answer|Ans|Correct)\s*[:.\-]?\s*([A-E])\b`)
	explanationLabel    = regexp.MustCompile(`(?i)^(?:Explanation|Explicação|Comentário|Justificativa)\s*[:.]?\s*`)
	optionMarkerPattern = regexp.MustCompile(`(?:^|\n)\s*([A-E])[.):]\s+`)
	whitespaceRuns      = regexp.MustCompile(`\s+`)
)

func normalizeSpace(s string) string {
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(s, " "))
}

// extractContent turns one chunk into a Question, or nil when the chunk does
// not carry a usable stem, at least two options and an answer letter. A nil
// here is an expected outcome, not an error; the caller only counts it.
func extractContent(c chunk, sourceFile string) *Question {
	content := leadingPunctPattern.ReplaceAllString(c.content, "")

	// Everything before the answer-key marker is stem+options, everything
	// after it is the explanation candidate.
	var correctAnswer, explanation string
	body := content
	if loc := answerKeyPattern.FindStringSubmatchIndex(content); loc != nil {
		correctAnswer = strings.ToUpper(content[loc[2]:loc[3]])
		body = strings.TrimSpace(content[:loc[0]])
		after := strings.TrimSpace(content[loc[1]:])
		explanation = explanationLabel.ReplaceAllString(after, "")
	}

	explanation = normalizeSpace(explanation)
	// Cap by rune count, never mid-rune: a byte slice through a multibyte
	// character would leave invalid UTF-8 behind.
	if utf8.RuneCountInString(explanation) > maxExplanationLen {
		explanation = string([]rune(explanation)[:maxExplanationLen])
	}
	if explanation == "" {
		explanation = NoExplanation
	}

	options, stem := scanOptions(body)
	if len(options) == 0 {
		// Best effort: without option markers the first line is the stem.
		// The chunk still has to clear the validity gate below.
		lines := strings.SplitN(body, "\n", 2)
		stem = lines[0]
	}
	stem = normalizeSpace(stem)

	if stem == "" || len(options) < 2 || correctAnswer == "" {
		return nil
	}

	sort.Slice(options, func(i, j int) bool { return options[i].Letter < options[j].Letter })

	q := &Question{
		ID:            uuid.NewString(),
		Number:        c.number,
		Text:          stem,
		Options:       options,
		CorrectAnswer: correctAnswer,
		Explanation:   explanation,
		SourceFile:    sourceFile,
	}
	q.IsDivergent, q.ExplanationAnswer = DetectDivergence(q.CorrectAnswer, q.Explanation, q.Options)
	return q
}

// scanOptions finds the lettered option markers inside the stem+options region
// and returns the options plus the text preceding the first marker. Each
// marker bounds the span of the previous option; duplicate letters keep their
// first occurrence.
func scanOptions(body string) ([]Option, string) {
	matches := optionMarkerPattern.FindAllStringSubmatchIndex(body, -1)
	if len(matches) == 0 {
		return nil, body
	}

	stem := body[:matches[0][0]]
	seen := make(map[string]bool)
	var options []Option
	for i, m := range matches {
		letter := body[m[2]:m[3]]
		end := len(body)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		text := normalizeSpace(body[m[1]:end])
		if text == "" || seen[letter] {
			continue
		}
		seen[letter] = true
		options = append(options, Option{Letter: letter, Text: text})
	}
	return options, stem
}
