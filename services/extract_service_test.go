package services

import (
	"archive/zip"
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildDocx(t *testing.T, paragraphs []string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		fmt.Fprintf(&body, `<w:p><w:r><w:t>%s</w:t></w:r></w:p>`, p)
	}
	body.WriteString(`</w:body></w:document>`)

	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write(body.Bytes())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestExtractTextPlain(t *testing.T) {
	text, err := ExtractText("questions.txt", []byte("QUESTÃO 1\nStem?"))
	require.NoError(t, err)
	require.Equal(t, "QUESTÃO 1\nStem?", text)
}

func TestExtractTextDocx(t *testing.T) {
	data := buildDocx(t, []string{"Question 1", "What is 2+2?", "A) 3", "B) 4", "Answer: B"})

	text, err := ExtractText("questions.docx", data)
	require.NoError(t, err)
	require.Equal(t, "Question 1\nWhat is 2+2?\nA) 3\nB) 4\nAnswer: B", text)
}

func TestExtractTextRejectsPDF(t *testing.T) {
	_, err := ExtractText("questions.pdf", []byte("%PDF-1.7"))
	require.ErrorIs(t, err, ErrPDFUnsupported)
}

func TestExtractTextRejectsUnknownExtension(t *testing.T) {
	_, err := ExtractText("questions.csv", []byte("a,b,c"))
	require.ErrorIs(t, err, ErrUnsupportedFileType)
}

func TestExtractTextCorruptDocx(t *testing.T) {
	_, err := ExtractText("questions.docx", []byte("not a zip at all"))
	require.Error(t, err)
}

func TestExtractTextDocxWithoutDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = ExtractText("questions.docx", buf.Bytes())
	require.Error(t, err)
}
