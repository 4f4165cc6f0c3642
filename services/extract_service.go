package services

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrPDFUnsupported is returned before parsing begins; the UI accepts PDF but
// there is no reliable extractor for it on the backend.
var ErrPDFUnsupported = errors.New("PDF upload is not supported yet. Please upload the DOCX or TXT version of the questions")

var ErrUnsupportedFileType = errors.New("unsupported file type. Please upload a DOCX or TXT file")

// ExtractText returns the raw question text of an uploaded file. Only .txt and
// .docx are accepted; everything else is rejected up front so the parser never
// sees binary garbage.
func ExtractText(fileName string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".txt":
		return string(data), nil
	case ".docx":
		return extractDocxText(data)
	case ".pdf":
		return "", ErrPDFUnsupported
	default:
		return "", ErrUnsupportedFileType
	}
}

// extractDocxText reads word/document.xml out of the docx zip container and
// flattens its paragraphs into newline-separated plain text.
func extractDocxText(data []byte) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: file is not a valid zip container: %w", err)
	}

	var documentXML []byte
	for _, file := range reader.File {
		if file.Name == "word/document.xml" {
			rc, err := file.Open()
			if err != nil {
				return "", fmt.Errorf("open document.xml: %w", err)
			}
			documentXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", fmt.Errorf("read document.xml: %w", err)
			}
			break
		}
	}
	if len(documentXML) == 0 {
		return "", errors.New("invalid docx: no word/document.xml found")
	}

	decoder := xml.NewDecoder(bytes.NewReader(documentXML))
	var paragraphs []string
	for {
		token, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", fmt.Errorf("parse document.xml: %w", err)
		}
		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "p" {
			continue
		}
		text, err := collectParagraph(decoder)
		if err != nil {
			return "", err
		}
		paragraphs = append(paragraphs, text)
	}
	return strings.Join(paragraphs, "\n"), nil
}

func collectParagraph(decoder *xml.Decoder) (string, error) {
	var sb strings.Builder
	inText := false
	for {
		token, err := decoder.Token()
		if err != nil {
			return "", fmt.Errorf("parse paragraph: %w", err)
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "br":
				sb.WriteString("\n")
			case "tab":
				sb.WriteString("\t")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				return sb.String(), nil
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
}
