package models

// AskRequest is the request body for POST /api/v1/ask. Context is accepted
// for compatibility with existing clients but no dispatch rule consults it.
type AskRequest struct {
	Question string `json:"question"`
	Context  string `json:"context,omitempty"`
}

// AskResponse is the response body for POST /api/v1/ask.
type AskResponse struct {
	Question       string  `json:"question"`
	Answer         string  `json:"answer"`
	Confidence     float64 `json:"confidence"`
	Source         string  `json:"source"`
	Category       string  `json:"category"`
	ProcessingTime float64 `json:"processing_time"`
	Engine         string  `json:"engine"`
	Disclaimer     string  `json:"disclaimer"`
}

// UploadFileResponse is returned for multipart file uploads.
type UploadFileResponse struct {
	Message       string `json:"message"`
	DocumentCount int    `json:"document_count"`
	Filename      string `json:"filename"`
	ContentLength int    `json:"content_length"`
}

// UploadJSONResponse is returned for JSON document uploads.
type UploadJSONResponse struct {
	Message       string `json:"message"`
	DocumentCount int    `json:"document_count"`
}

// StatsResponse is the response body for GET /api/v1/docs/stats.
type StatsResponse struct {
	KnowledgeBaseTopics int      `json:"knowledge_base_topics"`
	AvailableTopics     []string `json:"available_topics"`
	TotalEntries        int      `json:"total_entries"`
}

// HealthResponse is the response body for GET /api/v1/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Engine    string `json:"engine"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}
