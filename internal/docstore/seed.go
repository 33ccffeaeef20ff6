package docstore

import (
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

const (
	// sectionDelimiter separates sections in the bundled sample file.
	sectionDelimiter = "==="
	// minSectionChars is the minimum section length worth ingesting.
	minSectionChars = 100
)

// SeedFromFile splits the sample file at path on the section delimiter and
// ingests every trimmed section longer than minSectionChars as system
// content. A missing or unreadable file is logged and skipped; seeding never
// fails startup. Returns the number of sections ingested.
func (s *Store) SeedFromFile(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warn("could not load sample documents",
			zap.String("path", path),
			zap.Error(err),
		)
		return 0
	}

	seeded := 0
	for _, section := range strings.Split(string(data), sectionDelimiter) {
		section = strings.TrimSpace(section)
		if utf8.RuneCountInString(section) <= minSectionChars {
			continue
		}
		if err := s.Ingest(section, false); err == nil {
			seeded++
		}
	}
	s.logger.Info("loaded sample documents",
		zap.String("path", path),
		zap.Int("sections", seeded),
	)
	return seeded
}
