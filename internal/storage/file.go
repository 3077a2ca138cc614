package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/wordstash/wordstash/internal/entities"
)

// FileAdapter stores the snapshot as one JSON file on disk.
type FileAdapter struct {
	path string
	log  zerolog.Logger
}

func NewFileAdapter(path string, log zerolog.Logger) *FileAdapter {
	return &FileAdapter{path: path, log: log}
}

func (a *FileAdapter) Load() entities.Snapshot {
	data, err := os.ReadFile(a.path)
	if err != nil {
		if !os.IsNotExist(err) {
			a.log.Warn().Err(err).Str("path", a.path).Msg("failed to read snapshot, starting fresh")
		}
		return EmptySnapshot()
	}

	var snapshot entities.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		a.log.Warn().Err(err).Str("path", a.path).Msg("corrupt snapshot, starting fresh")
		return EmptySnapshot()
	}
	return normalize(snapshot)
}

// Save writes the snapshot to a temp file and renames it into place, so a
// crash mid-write cannot leave a truncated snapshot behind.
func (a *FileAdapter) Save(snapshot entities.Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(a.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := a.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, a.path)
}

// normalize replaces nil collections from partially-written blobs so that
// callers always see non-nil slices.
func normalize(s entities.Snapshot) entities.Snapshot {
	if s.Vocabulary == nil {
		s.Vocabulary = []entities.VocabularyEntry{}
	}
	if s.Categories == nil {
		s.Categories = []entities.Category{}
	}
	if s.Topics == nil {
		s.Topics = []entities.Topic{}
	}
	return s
}
