package parser

import (
	"regexp"
	"strings"
)

// divergenceRule is one entry of the ordered pattern table. Rules are tried
// top to bottom and the first match wins, so unambiguous phrasings must stay
// above the generic ones.
type divergenceRule struct {
	name    string
	pattern *regexp.Regexp
}

var divergenceRules = []divergenceRule{
	{"correct-answer-is", regexp.MustCompile(`(?i)(?:the\s+)?correct\s+(?:answer|option|choice)\s+is\s+([A-D])\b`)},
	{"resposta-correta-e", regexp.MustCompile(`(?i)(?:a\s+)?resposta\s+correta\s+é\s+(?:a\s+)?(?:letra\s+)?([A-D])\b`)},
	{"answer-x-is-correct", regexp.MustCompile(`(?i)(?:answer|option|choice)\s+([A-D])\s+is\s+(?:the\s+)?correct`)},
	{"alternativa-x-correta", regexp.MustCompile(`(?i)(?:a\s+)?(?:letra|alternativa|op[çc][ãa]o)\s+([A-D])\s+(?:é|esta|está)\s+(?:a\s+)?correta`)},
	{"x-is-the-correct-answer", regexp.MustCompile(`(?i)([A-D])\s+is\s+the\s+(?:correct|right|best)\s+(?:answer|option|choice)`)},
	{"the-best-answer-is", regexp.MustCompile(`(?i)the\s+(?:best|right|correct)\s+(?:answer|option|choice)\s+is\s+([A-D])\b`)},
	{"therefore-x-is-correct", regexp.MustCompile(`(?i)(?:therefore|thus|hence|so),?\s+([A-D])\s+is\s+(?:the\s+)?correct`)},
	{"portanto-x-correta", regexp.MustCompile(`(?i)(?:portanto|logo|assim),?\s+(?:a\s+)?(?:letra\s+)?([A-D])\s+(?:é|esta|está)\s+(?:a\s+)?correta`)},
	{"x-is-most-appropriate", regexp.MustCompile(`(?i)([A-D])\s+is\s+(?:the\s+)?(?:most\s+)?appropriate`)},
	{"gabarito-x", regexp.MustCompile(`(?i)\bgabarito[:\s]+(?:letra\s+)?([A-D])\b`)},
	{"answer-colon-x", regexp.MustCompile(`(?i)\banswer[:\s]+([A-D])\b`)},
	{"x-is-right", regexp.MustCompile(`(?i)\b([A-D])\s+is\s+(?:the\s+)?(?:right|correct|best)\b`)},
	{"correct-colon-x", regexp.MustCompile(`(?i)\bcorrect[:\s]+([A-D])\b`)},
	{"the-answer-is-x", regexp.MustCompile(`(?i)\bthe\s+answer\s+is\s+([A-D])\b`)},
	{"x-dot-is-correct", regexp.MustCompile(`(?i)\b([A-D])\.\s+is\s+correct\b`)},
	{"option-x-correct", regexp.MustCompile(`(?i)\boption\s+([A-D])\s+(?:is\s+)?correct\b`)},
	{"x-should-be-correct", regexp.MustCompile(`(?i)\b([A-D])\s+should\s+be\s+(?:the\s+)?(?:correct|right)\b`)},
	{"select-x", regexp.MustCompile(`(?i)\bselect(?:ing)?\s+([A-D])\b`)},
	{"choose-x", regexp.MustCompile(`(?i)\bchoose\s+([A-D])\b`)},
	{"escolha-x", regexp.MustCompile(`(?i)\bescolha\s+(?:a\s+)?(?:letra\s+)?([A-D])\b`)},
}

// DetectDivergence decides whether an explanation argues for a different
// letter than the declared answer. It is a pure function: the same inputs
// always produce the same result. The returned letter is reported even when it
// agrees with the declared answer.
func DetectDivergence(correctAnswer, explanation string, options []Option) (bool, string) {
	if explanation == "" || explanation == NoExplanation {
		return false, ""
	}

	var endorsed string
	for _, rule := range divergenceRules {
		if m := rule.pattern.FindStringSubmatch(explanation); m != nil {
			endorsed = strings.ToUpper(m[1])
			break
		}
	}

	if endorsed == "" {
		endorsed = endorsedOptionByText(explanation, options)
	}

	if endorsed != "" && endorsed != strings.ToUpper(correctAnswer) {
		return true, endorsed
	}
	return false, endorsed
}

// endorsedOptionByText is the fallback heuristic: look for literal "<letter>
// is correct" phrasings, or the word "correct" next to a prefix of the
// option's own text. Options arrive sorted by letter, so the first hit is
// deterministic.
func endorsedOptionByText(explanation string, options []Option) string {
	explLower := strings.ToLower(explanation)
	for _, option := range options {
		letter := strings.ToLower(option.Letter)
		if strings.Contains(explLower, letter+" is correct") ||
			strings.Contains(explLower, "correct answer is "+letter) {
			return option.Letter
		}
		prefix := strings.ToLower(option.Text)
		if len(prefix) > 30 {
			prefix = prefix[:30]
		}
		if prefix != "" && strings.Contains(explLower, "correct") && strings.Contains(explLower, prefix) {
			return option.Letter
		}
	}
	return ""
}
