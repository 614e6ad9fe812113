package candidate

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	pdf "github.com/ledongthuc/pdf"
)

var (
	reTags     = regexp.MustCompile(`<[^>]+>`)
	reHSpace   = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewlines = regexp.MustCompile(`\n+`)
	reEmail    = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
)

// SupportedExtensions: форматы, которые умеет разбирать ParseResumeText.
var SupportedExtensions = []string{".pdf", ".docx", ".txt"}

// IsSupported reports whether the file name has a parseable extension.
func IsSupported(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range SupportedExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// ParseResumeText extracts plain text from supported resume formats.
// Supports: .pdf, .docx and .txt
func ParseResumeText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return extractTextFromPDF(data)
	case ".docx":
		return extractTextFromDocx(data)
	case ".txt":
		if !utf8.Valid(data) {
			return "", errors.New("text resume is not valid UTF-8")
		}
		return normalizeWhitespace(string(data)), nil
	default:
		return "", errors.New("unsupported file format: only pdf, docx and txt are allowed")
	}
}

func extractTextFromPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return normalizeWhitespace(buf.String()), nil
}

func extractTextFromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", err
		}
		break
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}
	xml := string(docXML)
	// Абзацы в переводы строк.
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	txt := reTags.ReplaceAllString(xml, "")
	return normalizeWhitespace(txt), nil
}

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = reHSpace.ReplaceAllString(s, " ")
	s = reNewlines.ReplaceAllString(strings.ReplaceAll(s, " \n", "\n"), "\n")
	return strings.TrimSpace(s)
}

// detectEmail returns the first address-looking token, lowercased.
func detectEmail(text string) string {
	return strings.ToLower(reEmail.FindString(text))
}

// detectName берёт первую короткую строку без цифр и @, иначе имя файла.
func detectName(text, filename string) string {
	for i, line := range strings.Split(text, "\n") {
		if i >= 3 {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" || utf8.RuneCountInString(line) > 60 || strings.ContainsAny(line, "@0123456789:/|") {
			continue
		}
		if len(strings.Fields(line)) > 5 {
			continue
		}
		return line
	}
	return nameFromFile(filename)
}

func nameFromFile(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	return strings.Join(strings.Fields(base), " ")
}
