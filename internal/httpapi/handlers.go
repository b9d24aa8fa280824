package httpapi

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/lib/pq"

	"hlcompare/internal/auth"
	"hlcompare/internal/compare"
	"hlcompare/internal/events"
	"hlcompare/internal/evidence"
	"hlcompare/internal/extract"
	"hlcompare/internal/report"
	"hlcompare/internal/store"
	"hlcompare/internal/uploads"
)

const (
	defaultQuery      = "Compare these entities across all available metrics"
	maxMultipartBytes = 64 << 20
)

// errorBody mirrors the {"detail": ...} error envelope the frontend expects.
type errorBody struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorBody{Detail: detail})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "HL Compare API is running",
		"status":  "healthy",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "healthy",
		"message":        "HL Compare API is operational",
		"uptime_seconds": int64(time.Since(s.started).Seconds()),
		"goroutines":     runtime.NumGoroutine(),
		"storage":        s.breaker.State(),
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not found")
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if s.auth == nil {
		writeError(w, http.StatusServiceUnavailable, "Accounts are not enabled")
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.auth.Register(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, auth.ErrInvalidUsername) || errors.Is(err, auth.ErrWeakPassword):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case errors.Is(err, store.ErrUsernameTaken):
		writeError(w, http.StatusBadRequest, "Username already registered")
		return
	case err != nil:
		s.log.Error().Err(err).Str("request_id", requestID(r)).Msg("register failed")
		writeError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	})
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if s.auth == nil {
		writeError(w, http.StatusServiceUnavailable, "Accounts are not enabled")
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form body")
		return
	}

	token, err := s.auth.Login(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
	switch {
	case errors.Is(err, auth.ErrBadCredentials):
		writeError(w, http.StatusBadRequest, "Incorrect username or password")
		return
	case err != nil:
		s.log.Error().Err(err).Str("request_id", requestID(r)).Msg("login failed")
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if s.auth == nil {
		writeError(w, http.StatusServiceUnavailable, "Accounts are not enabled")
		return
	}
	token := bearerToken(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, "Missing bearer token")
		return
	}
	if err := s.auth.Logout(r.Context(), token); err != nil {
		s.log.Warn().Err(err).Msg("logout failed")
	}
	w.WriteHeader(http.StatusNoContent)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}

// sessionUserID resolves the optional bearer token into a user ID for
// attribution. Comparison requests never require auth.
func (s *Server) sessionUserID(r *http.Request) *int64 {
	if s.auth == nil {
		return nil
	}
	token := bearerToken(r)
	if token == "" {
		return nil
	}
	session, err := s.auth.Authenticate(r.Context(), token)
	if err != nil {
		return nil
	}
	return &session.UserID
}

type compareResponse struct {
	*compare.Result
	ComparisonID *int64 `json:"comparison_id,omitempty"`
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if err := r.ParseMultipartForm(maxMultipartBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart body")
		return
	}

	fileHeaders := r.MultipartForm.File["files"]
	if len(fileHeaders) == 0 {
		writeError(w, http.StatusBadRequest, "No files uploaded")
		return
	}

	entities := parseEntities(r)
	if len(entities) < 2 {
		writeError(w, http.StatusBadRequest, "At least two entities must be specified")
		return
	}

	query := r.PostFormValue("query")
	if query == "" {
		query = defaultQuery
	}

	s.hub.Broadcast(events.NewEvent(events.TypeDocumentsReceived, map[string]any{
		"count": len(fileHeaders),
	}))

	saved, err := s.saveUploads(fileHeaders)
	if err != nil {
		if errors.Is(err, uploads.ErrFileTooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Uploaded file exceeds size limit")
			return
		}
		s.log.Error().Err(err).Str("request_id", requestID(r)).Msg("upload failed")
		writeError(w, http.StatusInternalServerError, "File upload failed")
		return
	}

	userID := s.sessionUserID(r)
	s.persistFiles(r, saved, userID)

	s.hub.Broadcast(events.NewEvent(events.TypeComparisonStarted, map[string]any{
		"entities": entities,
	}))

	req := compare.Request{Entities: entities, Query: query}
	for _, sv := range saved {
		req.Documents = append(req.Documents, sv.Descriptor())
	}

	result, err := s.pipeline.Run(r.Context(), req)
	if err != nil {
		if errors.Is(err, compare.ErrTooFewEntities) {
			writeError(w, http.StatusBadRequest, "At least two entities must be specified")
			return
		}
		s.log.Error().Err(err).Str("request_id", requestID(r)).Msg("comparison failed")
		writeError(w, http.StatusInternalServerError, "Comparison failed")
		return
	}

	s.metrics.ComparisonsTotal.Inc()
	s.metrics.CompareDuration.Observe(time.Since(start).Seconds())
	s.metrics.EvidenceScores.Observe(result.DocumentAnalysis.EvidenceQualityOverview.Score)

	comparisonID := s.persistComparison(r, result, entities, userID)

	completed := map[string]any{"entities": entities}
	if comparisonID != nil {
		completed["comparison_id"] = *comparisonID
	}
	s.hub.Broadcast(events.NewEvent(events.TypeComparisonCompleted, completed))

	writeJSON(w, http.StatusOK, compareResponse{Result: result, ComparisonID: comparisonID})
}

func parseEntities(r *http.Request) []string {
	var entities []string
	if raw := r.PostFormValue("entities"); raw != "" {
		for _, e := range strings.Split(raw, ",") {
			if e = strings.TrimSpace(e); e != "" {
				entities = append(entities, e)
			}
		}
		return entities
	}
	a, b := r.PostFormValue("entityA"), r.PostFormValue("entityB")
	if a != "" && b != "" {
		entities = []string{a, b}
	}
	return entities
}

func (s *Server) saveUploads(headers []*multipart.FileHeader) ([]uploads.Saved, error) {
	saved := make([]uploads.Saved, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		sv, err := s.uploads.Save(fh.Filename, f)
		f.Close()
		if err != nil {
			return nil, err
		}

		kind := string(extract.KindOf(sv.Name))
		s.metrics.UploadsTotal.WithLabelValues(kind).Inc()
		s.metrics.UploadBytes.WithLabelValues(kind).Add(float64(sv.Size))

		saved = append(saved, sv)
	}
	return saved, nil
}

// persistFiles records the uploads. Persistence is best-effort: a database
// outage degrades to log noise, never a failed comparison.
func (s *Server) persistFiles(r *http.Request, saved []uploads.Saved, userID *int64) {
	if s.repos == nil || s.repos.Files == nil {
		return
	}

	files := make([]*store.File, 0, len(saved))
	for _, sv := range saved {
		files = append(files, &store.File{
			Filename:  sv.Name,
			Path:      sv.Path,
			SizeBytes: sv.Size,
			UserID:    userID,
		})
	}

	err := s.breaker.Do(func() error {
		return s.repos.Files.InsertBatch(r.Context(), files)
	})
	if err != nil {
		s.metrics.StorageFailures.WithLabelValues("insert_files").Inc()
		s.log.Warn().Err(err).Str("request_id", requestID(r)).Msg("file records not persisted")
	}
}

func (s *Server) persistComparison(r *http.Request, result *compare.Result, entities []string, userID *int64) *int64 {
	if s.repos == nil || s.repos.Comparisons == nil {
		return nil
	}

	payload, err := json.Marshal(result)
	if err != nil {
		s.log.Error().Err(err).Msg("comparison result not serializable")
		return nil
	}

	cmp := &store.Comparison{UserID: userID, Entities: pq.StringArray(entities), Result: payload}
	err = s.breaker.Do(func() error {
		return s.repos.Comparisons.Insert(r.Context(), cmp)
	})
	if err != nil {
		s.metrics.StorageFailures.WithLabelValues("insert_comparison").Inc()
		s.log.Warn().Err(err).Str("request_id", requestID(r)).Msg("comparison not persisted")
		return nil
	}
	return &cmp.ID
}

func (s *Server) loadComparison(w http.ResponseWriter, r *http.Request) *store.Comparison {
	if s.repos == nil || s.repos.Comparisons == nil {
		writeError(w, http.StatusServiceUnavailable, "Result storage is not enabled")
		return nil
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid result ID")
		return nil
	}

	var cmp *store.Comparison
	err = s.breaker.Do(func() error {
		var inner error
		cmp, inner = s.repos.Comparisons.GetByID(r.Context(), id)
		if errors.Is(inner, store.ErrNotFound) {
			// A missing row is a valid answer, not a storage failure.
			return nil
		}
		return inner
	})
	switch {
	case err == nil && cmp == nil:
		writeError(w, http.StatusNotFound, "Result not found")
		return nil
	case err != nil:
		s.metrics.StorageFailures.WithLabelValues("get_comparison").Inc()
		s.log.Error().Err(err).Int64("comparison_id", id).Msg("result lookup failed")
		writeError(w, http.StatusInternalServerError, "Result lookup failed")
		return nil
	}
	return cmp
}

func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	cmp := s.loadComparison(w, r)
	if cmp == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(cmp.Result)
}

func (s *Server) handleMemo(w http.ResponseWriter, r *http.Request) {
	cmp := s.loadComparison(w, r)
	if cmp == nil {
		return
	}

	var result compare.Result
	if err := json.Unmarshal(cmp.Result, &result); err != nil {
		s.log.Error().Err(err).Int64("comparison_id", cmp.ID).Msg("stored result unreadable")
		writeError(w, http.StatusInternalServerError, "Stored result is unreadable")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(report.EmailMemo(&result, time.Now())))
}

// documentSummary pairs an intake summary with the document's standalone
// credibility score.
type documentSummary struct {
	extract.Summary
	CredibilityScore float64 `json:"credibility_score"`
}

type summaryResponse struct {
	DocumentsProcessed int               `json:"documents_processed"`
	Summaries          []documentSummary `json:"summaries"`
	EvidenceQuality    evidence.Overall  `json:"evidence_quality"`
}

func (s *Server) handleDocumentSummary(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart body")
		return
	}

	fileHeaders := r.MultipartForm.File["files"]
	if len(fileHeaders) == 0 {
		writeError(w, http.StatusBadRequest, "No files uploaded")
		return
	}

	saved, err := s.saveUploads(fileHeaders)
	if err != nil {
		if errors.Is(err, uploads.ErrFileTooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Uploaded file exceeds size limit")
			return
		}
		s.log.Error().Err(err).Str("request_id", requestID(r)).Msg("upload failed")
		writeError(w, http.StatusInternalServerError, "Document processing failed")
		return
	}

	scorer := s.pipeline.Scorer()
	descriptors := make([]evidence.Descriptor, 0, len(saved))
	summaries := make([]documentSummary, 0, len(saved))
	for _, sv := range saved {
		desc := sv.Descriptor()
		descriptors = append(descriptors, desc)
		summaries = append(summaries, documentSummary{
			Summary:          extract.Summarize(sv.Path, desc),
			CredibilityScore: scorer.SourceCredibility([]evidence.Descriptor{desc}),
		})
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		DocumentsProcessed: len(saved),
		Summaries:          summaries,
		EvidenceQuality:    scorer.OverallQuality(descriptors),
	})
}
