package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hlcompare/internal/config"
	"hlcompare/internal/store"
)

type fakeComparisons struct {
	mu    sync.Mutex
	seq   int64
	items map[int64]*store.Comparison
}

func newFakeComparisons() *fakeComparisons {
	return &fakeComparisons{items: make(map[int64]*store.Comparison)}
}

func (f *fakeComparisons) Insert(_ context.Context, cmp *store.Comparison) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	cmp.ID = f.seq
	cmp.CreatedAt = time.Now()
	stored := *cmp
	f.items[cmp.ID] = &stored
	return nil
}

func (f *fakeComparisons) GetByID(_ context.Context, id int64) (*store.Comparison, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cmp, ok := f.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cmp, nil
}

func (f *fakeComparisons) ListRecent(_ context.Context, limit int) ([]store.Comparison, error) {
	return nil, nil
}

type fakeFiles struct {
	mu    sync.Mutex
	files []*store.File
}

func (f *fakeFiles) Insert(_ context.Context, file *store.File) error {
	return f.InsertBatch(context.Background(), []*store.File{file})
}

func (f *fakeFiles) InsertBatch(_ context.Context, files []*store.File) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files = append(f.files, files...)
	return nil
}

func (f *fakeFiles) ListRecent(_ context.Context, limit int) ([]store.File, error) {
	return nil, nil
}

func newTestServer(t *testing.T, repos *store.Repos) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Uploads.Dir = t.TempDir()
	cfg.RateLimit.Enabled = false
	return NewServer(cfg, Deps{Logger: zerolog.Nop(), Repos: repos})
}

func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}
	for filename, content := range files {
		fw, err := w.CreateFormFile("files", filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestRootAndHealth(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var root map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &root))
	assert.Equal(t, "HL Compare API is running", root["message"])
	assert.Equal(t, "healthy", root["status"])

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var health map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health["status"])
	assert.Contains(t, health, "uptime_seconds")
	assert.Contains(t, health, "goroutines")
}

func TestCompare_RejectsBadRequests(t *testing.T) {
	srv := newTestServer(t, nil)

	// No files at all.
	body, contentType := multipartBody(t, map[string]string{"entities": "apple, meta"}, nil)
	req := httptest.NewRequest("POST", "/compare/", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No files uploaded")

	// One entity only.
	body, contentType = multipartBody(t,
		map[string]string{"entities": "apple"},
		map[string]string{"AAPL_10K.pdf": "x"})
	req = httptest.NewRequest("POST", "/compare/", body)
	req.Header.Set("Content-Type", contentType)
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "At least two entities must be specified")
}

func TestCompare_Success(t *testing.T) {
	comparisons := newFakeComparisons()
	files := &fakeFiles{}
	srv := newTestServer(t, &store.Repos{Comparisons: comparisons, Files: files})

	body, contentType := multipartBody(t,
		map[string]string{"entities": "apple, microsoft"},
		map[string]string{
			"AAPL_10K_annual_report.pdf": "apple annual report body",
			"MSFT_10K_annual_report.pdf": "microsoft annual report body",
		})
	req := httptest.NewRequest("POST", "/compare/", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, float64(2), payload["documents_analyzed"])
	assert.ElementsMatch(t, []any{"apple", "microsoft"}, payload["entities"])
	assert.Contains(t, payload, "comparison")
	assert.Contains(t, payload, "document_analysis")
	assert.Contains(t, payload, "executive_summary")
	assert.Equal(t, float64(1), payload["comparison_id"])

	comparison := payload["comparison"].(map[string]any)
	thesis := comparison["investment_thesis"].(map[string]any)
	assert.Contains(t, thesis, "conclusion")
	entities := thesis["entities"].(map[string]any)
	assert.Contains(t, entities, "apple")
	assert.Contains(t, entities, "microsoft")

	// Both upload records and the result row were persisted.
	files.mu.Lock()
	assert.Len(t, files.files, 2)
	files.mu.Unlock()
	stored, err := comparisons.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.JSONEq(t, trimComparisonID(t, rec.Body.Bytes()), string(stored.Result))
}

// trimComparisonID removes the response-only comparison_id field so the body
// can be compared against the persisted payload.
func trimComparisonID(t *testing.T, body []byte) string {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(body, &m))
	delete(m, "comparison_id")
	out, err := json.Marshal(m)
	require.NoError(t, err)
	return string(out)
}

func TestCompare_EntityABForm(t *testing.T) {
	srv := newTestServer(t, nil)

	body, contentType := multipartBody(t,
		map[string]string{"entityA": "Apple", "entityB": "Meta"},
		map[string]string{"report.pdf": "x"})
	req := httptest.NewRequest("POST", "/compare/", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.ElementsMatch(t, []any{"apple", "meta"}, payload["entities"])

	// Without repos there is no stored row to reference.
	assert.NotContains(t, payload, "comparison_id")
}

func TestCompare_PartiallyWiredRepos(t *testing.T) {
	postCompare := func(t *testing.T, srv *Server) map[string]any {
		t.Helper()
		body, contentType := multipartBody(t,
			map[string]string{"entities": "apple, meta"},
			map[string]string{"annual_report.pdf": "x"})
		req := httptest.NewRequest("POST", "/compare/", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var payload map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		return payload
	}

	t.Run("comparisons only", func(t *testing.T) {
		comparisons := newFakeComparisons()
		srv := newTestServer(t, &store.Repos{Comparisons: comparisons})

		payload := postCompare(t, srv)
		assert.Equal(t, float64(1), payload["comparison_id"])
	})

	t.Run("files only", func(t *testing.T) {
		files := &fakeFiles{}
		srv := newTestServer(t, &store.Repos{Files: files})

		payload := postCompare(t, srv)
		assert.NotContains(t, payload, "comparison_id")
		assert.Len(t, files.files, 1)
	})
}

func TestResults(t *testing.T) {
	comparisons := newFakeComparisons()
	stored := &store.Comparison{Result: []byte(`{"entities":["apple","meta"]}`)}
	require.NoError(t, comparisons.Insert(context.Background(), stored))

	srv := newTestServer(t, &store.Repos{Comparisons: comparisons})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", fmt.Sprintf("/results/%d", stored.ID), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"entities":["apple","meta"]}`, rec.Body.String())

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/results/999", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Result not found")
}

func TestResultMemo(t *testing.T) {
	comparisons := newFakeComparisons()
	srv := newTestServer(t, &store.Repos{Comparisons: comparisons})

	// Run a real comparison through the API so the stored payload is genuine.
	body, contentType := multipartBody(t,
		map[string]string{"entities": "apple, meta"},
		map[string]string{"combined_10K_filings.pdf": "x"})
	req := httptest.NewRequest("POST", "/compare/", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/results/1/memo", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")

	memo, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(memo), "Subject: Investment Analysis - Apple vs Meta Comparison")
	assert.Contains(t, string(memo), "RECOMMENDATION:")
}

func TestDocumentsSummary(t *testing.T) {
	srv := newTestServer(t, nil)

	body, contentType := multipartBody(t, nil, map[string]string{
		"notes.txt":  "Apple reported record services revenue this quarter.",
		"deck.pdf":   "binary-ish",
		"table.xlsx": "not extractable",
	})
	req := httptest.NewRequest("POST", "/documents/summary", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var payload struct {
		DocumentsProcessed int `json:"documents_processed"`
		Summaries          []struct {
			Filename         string  `json:"filename"`
			Kind             string  `json:"kind"`
			Extractable      bool    `json:"extractable"`
			Preview          string  `json:"preview"`
			CredibilityScore float64 `json:"credibility_score"`
		} `json:"summaries"`
		EvidenceQuality struct {
			Score         float64 `json:"overall_score"`
			Rating        string  `json:"rating"`
			DocumentCount int     `json:"document_count"`
		} `json:"evidence_quality"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, 3, payload.DocumentsProcessed)

	byName := map[string]int{}
	for i, s := range payload.Summaries {
		byName[s.Filename] = i
	}
	txt := payload.Summaries[byName["notes.txt"]]
	assert.Equal(t, "text", txt.Kind)
	assert.True(t, txt.Extractable)
	assert.Contains(t, txt.Preview, "record services revenue")
	// Tiny unmatched documents score the default bucket minus the small-file
	// penalty.
	assert.Equal(t, 50.0, txt.CredibilityScore)

	xlsx := payload.Summaries[byName["table.xlsx"]]
	assert.Equal(t, "spreadsheet", xlsx.Kind)
	assert.False(t, xlsx.Extractable)

	assert.Equal(t, 3, payload.EvidenceQuality.DocumentCount)
	assert.Equal(t, "Moderate", payload.EvidenceQuality.Rating)
	assert.Equal(t, 68.5, payload.EvidenceQuality.Score)
}

func TestRateLimit(t *testing.T) {
	cfg := config.Default()
	cfg.Uploads.Dir = t.TempDir()
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.RPS = 1
	cfg.RateLimit.Burst = 2
	srv := NewServer(cfg, Deps{Logger: zerolog.Nop()})

	var last int
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
		last = rec.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)

	// A different client IP has its own bucket.
	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.7")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthEndpointsUnavailableWithoutService(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/register", bytes.NewBufferString(`{"username":"analyst","password":"longenough"}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
