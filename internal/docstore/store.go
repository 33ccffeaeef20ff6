// Package docstore holds ingested documents in process memory and serves
// substring search over the user-uploaded subset.
package docstore

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/healthdesk/medqa/internal/models"
	"go.uber.org/zap"
)

// maxPassages caps how many matching sentences a search may return.
const maxPassages = 5

// Store is an append-only collection of ingested documents. A RWMutex guards
// both slices: an Ingest that returns before a Search begins is visible to
// that Search. Documents are never updated or evicted; growth is unbounded
// for the lifetime of the process. This is an accepted policy, not an
// oversight.
type Store struct {
	mu     sync.RWMutex
	all    []models.Document
	user   []models.Document
	logger *zap.Logger
}

// NewStore creates an empty document store.
func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{logger: logger}
}

// Ingest appends a document to the all-documents collection, and additionally
// to the user-documents collection when userUpload is true. Empty text is
// rejected.
func (s *Store) Ingest(text string, userUpload bool) error {
	if text == "" {
		return fmt.Errorf("document text cannot be empty")
	}
	doc := models.Document{
		ID:         uuid.New().String(),
		Text:       text,
		IngestedAt: time.Now(),
		Length:     utf8.RuneCountInString(text),
		UserUpload: userUpload,
	}
	s.mu.Lock()
	s.all = append(s.all, doc)
	if userUpload {
		s.user = append(s.user, doc)
	}
	s.mu.Unlock()

	s.logger.Info("ingested document",
		zap.Int("chars", doc.Length),
		zap.Bool("user_upload", userUpload),
	)
	return nil
}

// Counts returns the sizes of the all-documents and user-documents collections.
func (s *Store) Counts() (all, user int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.all), len(s.user)
}

// Search scans user-uploaded documents, in insertion order, for sentences
// containing any query word. Sentences are the segments produced by splitting
// a document on the literal ". " separator. Collection stops once maxPassages
// sentences are gathered; the cap is global, so the result never exceeds
// maxPassages sentences regardless of how many documents match. The collected
// sentences, trimmed but otherwise verbatim, are joined with ". ". An empty
// result means no match. No ranking is applied.
func (s *Store) Search(query string) string {
	words := queryWords(query)
	if len(words) == 0 {
		return ""
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var passages []string
	for _, doc := range s.user {
		if len(passages) >= maxPassages {
			break
		}
		textLower := strings.ToLower(doc.Text)
		if !containsAnyWord(textLower, words) {
			continue
		}
		for _, sentence := range strings.Split(doc.Text, ". ") {
			if len(passages) >= maxPassages {
				break
			}
			if containsAnyWord(strings.ToLower(sentence), words) {
				passages = append(passages, strings.TrimSpace(sentence))
			}
		}
	}
	return strings.Join(passages, ". ")
}

// queryWords lowercases and whitespace-splits the query, trimming surrounding
// punctuation from each token so that "wheezing?" still matches "wheezing".
func queryWords(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.Trim(f, ".,;:!?\"'()")
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

func containsAnyWord(haystack string, words []string) bool {
	for _, w := range words {
		if strings.Contains(haystack, w) {
			return true
		}
	}
	return false
}
