// Package models defines core data structures for documents, answers, and API payloads.
package models

import "time"

// Document is a text block stored verbatim with origin and time metadata.
// Documents are append-only for the lifetime of the process.
type Document struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	IngestedAt time.Time `json:"ingested_at"`
	Length     int       `json:"length"`
	UserUpload bool      `json:"user_upload"`
}
