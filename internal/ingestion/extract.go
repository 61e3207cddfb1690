package ingestion

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// Format is a supported input file format
type Format string

// Supported formats
const (
	FormatText  Format = "text"
	FormatLaTeX Format = "latex"
	FormatPDF   Format = "pdf"
	FormatDOCX  Format = "docx"
	FormatHTML  Format = "html"
)

var formatsByExt = map[string]Format{
	".txt":  FormatText,
	".md":   FormatText,
	".tex":  FormatLaTeX,
	".pdf":  FormatPDF,
	".docx": FormatDOCX,
	".html": FormatHTML,
	".htm":  FormatHTML,
}

// DetectFormat returns the format implied by the filename extension
func DetectFormat(filename string) (Format, bool) {
	format, ok := formatsByExt[strings.ToLower(filepath.Ext(filename))]
	return format, ok
}

// ExtractText returns the text of an uploaded document.
// Text and LaTeX sources are returned verbatim so section offsets stay meaningful;
// binary and markup formats are converted and cleaned.
func ExtractText(filename string, data []byte) (string, error) {
	format, ok := DetectFormat(filename)
	if !ok {
		return "", &ExtractionError{Filename: filename, Message: "unsupported file format, use pdf, docx, html, tex, md or txt"}
	}

	var (
		text string
		err  error
	)
	switch format {
	case FormatText, FormatLaTeX:
		if !utf8.Valid(data) {
			return "", &ExtractionError{Filename: filename, Message: "file is not valid UTF-8"}
		}
		text = strings.ReplaceAll(string(data), "\r\n", "\n")
	case FormatPDF:
		text, err = pdfText(data)
	case FormatDOCX:
		text, err = docxText(data)
	case FormatHTML:
		text, err = HTMLText(string(data), nil)
	}
	if err != nil {
		return "", &ExtractionError{Filename: filename, Message: "unreadable " + string(format) + " document", Cause: err}
	}

	if format != FormatText && format != FormatLaTeX {
		text = CleanText(text)
	}
	if strings.TrimSpace(text) == "" {
		return "", &ExtractionError{Filename: filename, Message: "document is empty or has no text layer"}
	}
	return text, nil
}

func pdfText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// docxText walks word/document.xml, emitting run text with paragraph breaks
func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var body io.ReadCloser
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			if body, err = f.Open(); err != nil {
				return "", err
			}
			break
		}
	}
	if body == nil {
		return "", errors.New("no word/document.xml in archive")
	}
	defer func() { _ = body.Close() }()

	var sb strings.Builder
	decoder := xml.NewDecoder(body)
	inText := false
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteString("\t")
			case "br":
				sb.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}
