// Package cli provides output formatting for the medqa command line client.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/healthdesk/medqa/internal/models"
)

// OutputFormat is the format for answer output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// WriteAnswer writes an ask response to w in the given format.
func WriteAnswer(w io.Writer, response *models.AskResponse, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	default:
		writeAnswerText(w, response)
		return nil
	}
}

func writeAnswerText(w io.Writer, response *models.AskResponse) {
	fmt.Fprintf(w, "\nQ: %s\n", response.Question)
	fmt.Fprintf(w, "A: %s\n\n", response.Answer)
	fmt.Fprintf(w, "Confidence: %.0f%% | Source: %s | Category: %s\n",
		response.Confidence*100, response.Source, response.Category)
	fmt.Fprintf(w, "\n%s\n", response.Disclaimer)
}

// WriteStats writes document stats to w in the given format.
func WriteStats(w io.Writer, response *models.StatsResponse, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	default:
		fmt.Fprintf(w, "Knowledge base topics: %d\n", response.KnowledgeBaseTopics)
		for _, topic := range response.AvailableTopics {
			fmt.Fprintf(w, "  - %s\n", topic)
		}
		fmt.Fprintf(w, "Total entries: %d\n", response.TotalEntries)
		return nil
	}
}

// Truncate truncates s to maxLen and appends "..." if truncated.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
