package parser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// chunk is one candidate question: the text between two recognized headers,
// plus the ordinal the header declared.
type chunk struct {
	number  int
	content string
}

var (
	// Keyword headers: "QUESTÃO 12", "Question: 3", "Q 7", "Q1".
	keywordHeaderPattern = regexp.MustCompile(`(?i)(?:QUEST[ÃA]O|QUESTION|Q)[:\s]*(\d+)`)
	// Bare ordinals: "12. ", "12) ", "12- ". Only consulted when the
	// document contains zero keyword headers. The delimiter is mandatory:
	// a bare number followed by whitespace (a numeric option value, a year)
	// is never a header.
	ordinalHeaderPattern = regexp.MustCompile(`(\d+)[.)\-]\s`)
)

// segment splits raw text into one chunk per candidate question. Headers are
// matched anywhere, not just at line starts, so a header embedded after a long
// explanation still opens a new chunk. Text before the first header is dropped.
func segment(text string) []chunk {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	headers := findHeaders(normalized, keywordHeaderPattern, false)
	if len(headers) == 0 {
		headers = findHeaders(normalized, ordinalHeaderPattern, true)
	}
	if len(headers) == 0 {
		return nil
	}

	chunks := make([]chunk, 0, len(headers))
	for i, h := range headers {
		end := len(normalized)
		if i+1 < len(headers) {
			end = headers[i+1].start
		}
		// Headers with no body still count as candidates; extraction
		// rejects them and the caller reports the attempted/parsed gap.
		content := strings.TrimSpace(normalized[h.end:end])
		chunks = append(chunks, chunk{number: h.number, content: content})
	}
	return chunks
}

type headerMatch struct {
	start  int
	end    int
	number int
}

func findHeaders(text string, re *regexp.Regexp, ordinal bool) []headerMatch {
	var out []headerMatch
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[0], m[1]
		if start > 0 {
			prev, _ := utf8.DecodeLastRuneInString(text[:start])
			if unicode.IsLetter(prev) || unicode.IsDigit(prev) {
				continue
			}
			// "3.14": the "14" after the dot is a decimal fraction, not a header.
			if ordinal && prev == '.' {
				continue
			}
		}
		n, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil {
			continue
		}
		out = append(out, headerMatch{start: start, end: end, number: n})
	}
	return out
}
