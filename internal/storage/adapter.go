// Package storage persists the application snapshot as a single opaque blob.
//
// Adapters never surface load failures to callers: missing or corrupt state
// degrades to an empty snapshot so a broken store cannot crash a learning
// session. Save errors are returned for logging but are likewise expected to
// be non-fatal.
package storage

import "github.com/wordstash/wordstash/internal/entities"

// Adapter is the persistence contract shared by all backends. The most
// recent Save wins; there is no merging.
type Adapter interface {
	Load() entities.Snapshot
	Save(snapshot entities.Snapshot) error
}

// EmptySnapshot returns a snapshot with all collections present but empty.
func EmptySnapshot() entities.Snapshot {
	return entities.Snapshot{
		Vocabulary: []entities.VocabularyEntry{},
		Categories: []entities.Category{},
		Topics:     []entities.Topic{},
	}
}

// ValidateSnapshot checks the structural shape required for import: all
// three collections must be present. LastUpdated is optional on import.
func ValidateSnapshot(s entities.Snapshot) bool {
	return s.Vocabulary != nil && s.Categories != nil && s.Topics != nil
}
