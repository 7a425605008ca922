package resume

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupportedFormat is returned for any upload that is not a PDF or
// DOCX file, decided by filename extension.
var ErrUnsupportedFormat = errors.New("unsupported file format")

type ParsedResume struct {
	Filename string
	FileType string
	FileSize int64
	Text     string
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts plain text from an uploaded resume.
func (p *Parser) Parse(filename string, reader io.Reader) (*ParsedResume, error) {
	buf := new(bytes.Buffer)
	size, err := io.Copy(buf, reader)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	fileType := strings.ToLower(filepath.Ext(filename))
	data := buf.Bytes()

	var text string
	switch fileType {
	case ".pdf":
		text, err = extractPDFText(data)
	case ".docx":
		text, err = extractDocxText(data)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}

	return &ParsedResume{
		Filename: filename,
		FileType: fileType,
		FileSize: size,
		Text:     text,
	}, nil
}

// extractPDFText joins per-page plain text with newlines, skipping pages
// that yield no text.
func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil || text == "" {
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

// extractDocxText joins paragraph text with newlines. Empty paragraphs are
// kept as empty lines so the document's spacing survives.
func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}
	defer doc.Close()

	paragraphs, err := docxParagraphs(doc.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("parse docx content: %w", err)
	}

	return strings.Join(paragraphs, "\n"), nil
}

// docxParagraphs walks the WordprocessingML body and collects the text
// runs of each w:p element.
func docxParagraphs(content string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var paragraphs []string
	var current strings.Builder
	inParagraph := false
	inText := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "t":
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if inParagraph {
					paragraphs = append(paragraphs, current.String())
				}
				inParagraph = false
			case "t":
				inText = false
			}
		case xml.CharData:
			if inParagraph && inText {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}
