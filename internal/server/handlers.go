package server

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/healthdesk/medqa/internal/models"
	"go.uber.org/zap"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<h2>Welcome to the %s API!</h2><p>Visit <a href='/api/v1/health'>/api/v1/health</a> for API documentation.</p>", s.config.Engine.Name)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if s.engine == nil {
		status = "degraded"
	}
	s.respondJSON(w, http.StatusOK, models.HealthResponse{
		Status:    status,
		Engine:    s.config.Engine.Name,
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05Z"),
		Version:   s.config.Engine.Version,
	})
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	if s.engine == nil {
		s.respondError(w, http.StatusInternalServerError, "QA engine not initialized")
		return
	}
	var req models.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "question is required")
		return
	}
	if req.Question == "" {
		s.respondError(w, http.StatusBadRequest, "question is required")
		return
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		s.respondError(w, http.StatusBadRequest, "question cannot be empty")
		return
	}

	start := time.Now()
	answer := s.engine.Answer(question, req.Context)
	elapsed := time.Since(start).Seconds()

	s.logger.Info("answered question",
		zap.Float64("confidence", answer.Confidence),
		zap.String("category", answer.Category),
	)
	s.respondJSON(w, http.StatusOK, models.AskResponse{
		Question:       question,
		Answer:         answer.Text,
		Confidence:     answer.Confidence,
		Source:         answer.Source,
		Category:       answer.Category,
		ProcessingTime: math.Round(elapsed*1000) / 1000,
		Engine:         s.config.Engine.Name,
		Disclaimer:     s.config.Engine.Disclaimer,
	})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if s.engine == nil {
		s.respondError(w, http.StatusInternalServerError, "QA engine not initialized")
		return
	}
	ct := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(ct, "multipart/form-data"):
		s.handleFileUpload(w, r)
	case strings.HasPrefix(ct, "application/json"):
		s.handleJSONUpload(w, r)
	default:
		s.respondError(w, http.StatusBadRequest, "no file or JSON data provided")
	}
}

func (s *Server) handleFileUpload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "no file selected")
		return
	}
	defer file.Close()
	if header.Filename == "" {
		s.respondError(w, http.StatusBadRequest, "no file selected")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		s.logger.Error("file upload read failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to upload documents")
		return
	}
	if !utf8.Valid(content) {
		s.respondError(w, http.StatusBadRequest, "file encoding not supported; please upload a text file")
		return
	}
	text := string(content)
	if err := s.docs.Ingest(text, true); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.logger.Info("uploaded document", zap.String("filename", header.Filename))
	s.respondJSON(w, http.StatusOK, models.UploadFileResponse{
		Message:       fmt.Sprintf("Successfully uploaded document: %s", header.Filename),
		DocumentCount: 1,
		Filename:      header.Filename,
		ContentLength: utf8.RuneCountInString(text),
	})
}

func (s *Server) handleJSONUpload(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Documents []json.RawMessage `json:"documents"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "documents must be a list")
		return
	}
	if req.Documents == nil {
		s.respondError(w, http.StatusBadRequest, "documents are required")
		return
	}

	processed := 0
	for _, raw := range req.Documents {
		text, ok := decodeUploadText(raw)
		if !ok {
			continue
		}
		if err := s.docs.Ingest(text, true); err == nil {
			processed++
		}
	}
	s.respondJSON(w, http.StatusOK, models.UploadJSONResponse{
		Message:       fmt.Sprintf("Successfully processed %d documents", processed),
		DocumentCount: processed,
	})
}

// decodeUploadText accepts either a bare JSON string or an object carrying a
// "text" field; any other shape is skipped, not rejected.
func decodeUploadText(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	var obj struct {
		Text *string `json:"text"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Text != nil {
		return *obj.Text, true
	}
	return "", false
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.engine == nil {
		s.respondError(w, http.StatusInternalServerError, "QA engine not initialized")
		return
	}
	s.respondJSON(w, http.StatusOK, models.StatsResponse{
		KnowledgeBaseTopics: s.knowledge.Count(),
		AvailableTopics:     s.knowledge.Topics(),
		TotalEntries:        s.knowledge.TotalEntries(),
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
