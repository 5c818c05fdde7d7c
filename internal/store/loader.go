package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/AmiraLearning/amira-amirabot-analysis/internal/models"
)

// Loader reads per-conversation analysis JSONs from a directory. One file
// per conversation; the filename stem is the conversation id when the
// payload omits it. Files it cannot read or parse are logged and counted,
// never fatal.
type Loader struct {
	dir    string
	logger *zerolog.Logger
}

func NewLoader(dir string, logger *zerolog.Logger) *Loader {
	return &Loader{dir: dir, logger: logger}
}

// Load returns the records in lexicographic filename order so repeated
// runs over the same directory are deterministic, plus the count of files
// it had to skip.
func (l *Loader) Load() ([]models.AnalysisRecord, int, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, 0, fmt.Errorf("read analyses directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	records := make([]models.AnalysisRecord, 0, len(names))
	skipped := 0

	for _, name := range names {
		path := filepath.Join(l.dir, name)

		data, err := os.ReadFile(path)
		if err != nil {
			skipped++
			l.logger.Error().Err(err).Str("file", path).Msg("failed to read analysis file")
			continue
		}

		var record models.AnalysisRecord
		if err := json.Unmarshal(data, &record); err != nil {
			skipped++
			l.logger.Error().Err(err).Str("file", path).Msg("failed to parse analysis file")
			continue
		}

		if record.ConversationID == "" {
			record.ConversationID = strings.TrimSuffix(name, ".json")
		}

		records = append(records, record)
	}

	l.logger.Info().
		Int("loaded", len(records)).
		Int("skipped", skipped).
		Str("dir", l.dir).
		Msg("analysis records loaded")

	return records, skipped, nil
}
