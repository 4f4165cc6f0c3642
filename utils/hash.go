package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

// QuestionContentHash identifies identical question stems across users and
// uploads, so notes attach to the content instead of one row.
func QuestionContentHash(questionText string) string {
	normalized := strings.ToLower(strings.TrimSpace(questionText))
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])[:16]
}

var (
	titlePrefixPattern = regexp.MustCompile(`(?i)^Questoes\s+`)
	titleSuffixPattern = regexp.MustCompile(`(?i)\d*\.(?:txt|docx)$`)
)

// QuizTitleFromFileName strips the upload-convention noise from a file name to
// produce a readable quiz title.
func QuizTitleFromFileName(fileName string) string {
	title := titlePrefixPattern.ReplaceAllString(fileName, "")
	title = titleSuffixPattern.ReplaceAllString(title, "")
	title = strings.TrimSpace(title)
	if title == "" {
		return fileName
	}
	return title
}
