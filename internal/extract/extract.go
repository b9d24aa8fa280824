// Package extract handles document intake for the comparison API. It
// recognizes uploaded file kinds by extension and produces per-document
// summaries; no extracted text is ever mined for financial facts.
package extract

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"hlcompare/internal/evidence"
)

// Kind classifies a document by its file extension.
type Kind string

const (
	KindPDF         Kind = "pdf"
	KindText        Kind = "text"
	KindDelimited   Kind = "delimited"
	KindSpreadsheet Kind = "spreadsheet"
	KindUnsupported Kind = "unsupported"
)

// previewLimit caps the preview attached to a document summary.
const previewLimit = 280

// Summary describes one intake document for the documents/summary endpoint.
type Summary struct {
	Filename    string `json:"filename"`
	SizeBytes   int64  `json:"size"`
	Kind        Kind   `json:"kind"`
	Extractable bool   `json:"extractable"`
	Preview     string `json:"preview,omitempty"`
}

// KindOf maps a filename to its document kind.
func KindOf(name string) Kind {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return KindPDF
	case ".txt", ".md":
		return KindText
	case ".csv", ".tsv":
		return KindDelimited
	case ".xls", ".xlsx":
		return KindSpreadsheet
	default:
		return KindUnsupported
	}
}

// extractable reports whether Text can produce anything for the kind. PDF and
// spreadsheet parsing are out of scope, so those kinds are recognized but
// yield no text.
func extractable(kind Kind) bool {
	return kind == KindText || kind == KindDelimited
}

// Text returns the plain-text rendering of a stored document. Failures of
// any sort degrade to an empty string; intake must never fail a request.
func Text(path string) string {
	switch KindOf(path) {
	case KindText:
		data, err := os.ReadFile(path)
		if err != nil {
			return ""
		}
		return string(data)
	case KindDelimited:
		return delimitedText(path)
	default:
		return ""
	}
}

// delimitedText renders a CSV/TSV file as a plain tab-joined table.
func delimitedText(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	r := csv.NewReader(f)
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		r.Comma = '\t'
	}
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return ""
	}

	var b strings.Builder
	for _, record := range records {
		b.WriteString(strings.Join(record, "\t"))
		b.WriteByte('\n')
	}
	return b.String()
}

// Summarize builds the intake summary for one stored document.
func Summarize(path string, desc evidence.Descriptor) Summary {
	kind := KindOf(desc.Filename)
	summary := Summary{
		Filename:    desc.Filename,
		SizeBytes:   desc.SizeBytes,
		Kind:        kind,
		Extractable: extractable(kind),
	}
	if summary.Extractable {
		summary.Preview = preview(Text(path))
	}
	return summary
}

// preview trims text to a single-line excerpt capped at previewLimit runes.
func preview(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= previewLimit {
		return text
	}
	runes := []rune(text)
	return string(runes[:previewLimit])
}
