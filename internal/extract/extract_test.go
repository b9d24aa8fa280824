package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hlcompare/internal/evidence"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"report.pdf", KindPDF},
		{"Report.PDF", KindPDF},
		{"notes.txt", KindText},
		{"readme.md", KindText},
		{"data.csv", KindDelimited},
		{"data.tsv", KindDelimited},
		{"sheet.xls", KindSpreadsheet},
		{"sheet.xlsx", KindSpreadsheet},
		{"image.png", KindUnsupported},
		{"noext", KindUnsupported},
		{"", KindUnsupported},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, KindOf(tt.name), "name=%q", tt.name)
	}
}

func TestText_PlainFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("quarterly revenue grew 12%\n"), 0o644))

	assert.Equal(t, "quarterly revenue grew 12%\n", Text(path))
}

func TestText_CSVRendersAsTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metrics.csv")
	require.NoError(t, os.WriteFile(path, []byte("metric,value\nrevenue,394.33\n"), 0o644))

	text := Text(path)
	assert.Equal(t, "metric\tvalue\nrevenue\t394.33\n", text)
}

func TestText_TSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metrics.tsv")
	require.NoError(t, os.WriteFile(path, []byte("metric\tvalue\nrevenue\t394.33\n"), 0o644))

	assert.Equal(t, "metric\tvalue\nrevenue\t394.33\n", Text(path))
}

func TestText_DegradesToEmpty(t *testing.T) {
	// Missing file, binary kinds, and unsupported kinds all yield "".
	assert.Empty(t, Text(filepath.Join(t.TempDir(), "missing.txt")))
	assert.Empty(t, Text("report.pdf"))
	assert.Empty(t, Text("sheet.xlsx"))
	assert.Empty(t, Text("image.png"))
}

func TestSummarize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("line one\nline two\n"), 0o644))

	summary := Summarize(path, evidence.Descriptor{Filename: "notes.txt", SizeBytes: 18})
	assert.Equal(t, "notes.txt", summary.Filename)
	assert.Equal(t, int64(18), summary.SizeBytes)
	assert.Equal(t, KindText, summary.Kind)
	assert.True(t, summary.Extractable)
	assert.Equal(t, "line one line two", summary.Preview)
}

func TestSummarize_BinaryKindHasNoPreview(t *testing.T) {
	summary := Summarize("uploads/report.pdf", evidence.Descriptor{Filename: "report.pdf", SizeBytes: 5_000_000})
	assert.Equal(t, KindPDF, summary.Kind)
	assert.False(t, summary.Extractable)
	assert.Empty(t, summary.Preview)
}

func TestPreviewCappedAt280Runes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "long.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("wordy ", 100)), 0o644))

	summary := Summarize(path, evidence.Descriptor{Filename: "long.txt", SizeBytes: 600})
	assert.Len(t, []rune(summary.Preview), 280)
}
