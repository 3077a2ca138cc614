// Package library wires the category store, the vocabulary engine and the
// persistence adapter into one explicitly constructed unit. Screens talk to
// a Library instance; there is no shared global state.
package library

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/wordstash/wordstash/internal/categories"
	"github.com/wordstash/wordstash/internal/config"
	"github.com/wordstash/wordstash/internal/entities"
	"github.com/wordstash/wordstash/internal/storage"
	"github.com/wordstash/wordstash/internal/vocabulary"
)

var ErrTopicNameRequired = errors.New("topic name is required")

// Library owns the live collections and persists a full snapshot after
// every mutating command. Persistence failures are logged, never raised:
// the in-memory state stays authoritative until the next successful save.
type Library struct {
	categories *categories.Store
	vocabulary *vocabulary.Engine
	topics     []entities.Topic
	adapter    storage.Adapter
	log        zerolog.Logger
}

// New builds a library and immediately loads the persisted snapshot.
func New(adapter storage.Adapter, cfg *config.Config, log zerolog.Logger) *Library {
	locale, err := language.Parse(cfg.Locale.Tag)
	if err != nil {
		log.Warn().Str("locale", cfg.Locale.Tag).Msg("unknown locale, falling back to English")
		locale = language.English
	}

	lib := &Library{
		categories: categories.NewStore(cfg.Learning.FallbackCategory, locale),
		vocabulary: vocabulary.NewEngine(cfg.Learning.RecentWindowDays, cfg.Learning.ReviewStaleDays),
		topics:     []entities.Topic{},
		adapter:    adapter,
		log:        log,
	}
	lib.categories.SetMigrator(lib.vocabulary)

	snapshot := adapter.Load()
	lib.categories.Load(snapshot.Categories)
	lib.vocabulary.Load(snapshot.Vocabulary)
	lib.topics = append(lib.topics[:0], snapshot.Topics...)
	return lib
}

// Vocabulary commands

func (l *Library) AddEntry(data vocabulary.NewEntry) (*entities.VocabularyEntry, error) {
	entry, err := l.vocabulary.Add(data)
	if err != nil {
		return nil, err
	}
	l.persist()
	return entry, nil
}

func (l *Library) UpdateEntry(id string, patch vocabulary.EntryPatch) (*entities.VocabularyEntry, error) {
	entry, err := l.vocabulary.Update(id, patch)
	if err != nil || entry == nil {
		return entry, err
	}
	l.persist()
	return entry, nil
}

func (l *Library) DeleteEntry(id string) bool {
	if !l.vocabulary.Delete(id) {
		return false
	}
	l.persist()
	return true
}

func (l *Library) AddExample(id, sentence, translation string) (*entities.VocabularyEntry, error) {
	entry, err := l.vocabulary.AddExample(id, sentence, translation)
	if err != nil || entry == nil {
		return entry, err
	}
	l.persist()
	return entry, nil
}

func (l *Library) MarkReviewed(id string) *entities.VocabularyEntry {
	entry := l.vocabulary.MarkReviewed(id)
	if entry != nil {
		l.persist()
	}
	return entry
}

func (l *Library) ToggleMastered(id string) *entities.VocabularyEntry {
	entry := l.vocabulary.ToggleMastered(id)
	if entry != nil {
		l.persist()
	}
	return entry
}

// BulkOperate applies a bulk operation best-effort over the given id set.
// It returns true unless the operation was malformed or the resulting
// snapshot could not be persisted.
func (l *Library) BulkOperate(op vocabulary.BulkOperation) bool {
	if _, err := l.vocabulary.Bulk(op); err != nil {
		l.log.Error().Err(err).Str("type", string(op.Type)).Msg("bulk operation rejected")
		return false
	}
	return l.persist() == nil
}

// Vocabulary queries

func (l *Library) Entry(id string) *entities.VocabularyEntry {
	return l.vocabulary.Get(id)
}

func (l *Library) Entries() []entities.VocabularyEntry {
	return l.vocabulary.All()
}

func (l *Library) FilterEntries(criteria vocabulary.FilterCriteria) []entities.VocabularyEntry {
	return l.vocabulary.Filter(criteria)
}

func (l *Library) SortEntries(entries []entities.VocabularyEntry, field vocabulary.SortField, order vocabulary.SortOrder) []entities.VocabularyEntry {
	return l.vocabulary.Sort(entries, field, order)
}

func (l *Library) Stats() vocabulary.Statistics {
	return l.vocabulary.Stats()
}

// Category commands

func (l *Library) AddCategory(name, parentID, color, description string) (*entities.Category, error) {
	category, err := l.categories.Add(name, parentID, color, description)
	if err != nil {
		return nil, err
	}
	l.persist()
	return category, nil
}

func (l *Library) UpdateCategory(id string, patch categories.CategoryPatch) (*entities.Category, error) {
	category, err := l.categories.Update(id, patch)
	if err != nil {
		return nil, err
	}
	l.persist()
	return category, nil
}

func (l *Library) DeleteCategory(id string) error {
	if err := l.categories.Delete(id); err != nil {
		return err
	}
	l.persist()
	return nil
}

// Category queries

func (l *Library) Category(id string) *entities.Category {
	return l.categories.Get(id)
}

func (l *Library) Categories() []entities.Category {
	return l.categories.All()
}

func (l *Library) CategoryTree() []categories.TreeNode {
	return l.categories.Tree(l.vocabulary.CountByCategory)
}

func (l *Library) CategoryDropdown(excludeName string) []categories.DropdownItem {
	return l.categories.DropdownList(excludeName)
}

// Topics

func (l *Library) AddTopic(name, description, categoryID string) (*entities.Topic, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrTopicNameRequired
	}
	topic := entities.Topic{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(description),
		CategoryID:  categoryID,
	}
	l.topics = append(l.topics, topic)
	l.persist()
	return &topic, nil
}

func (l *Library) Topics() []entities.Topic {
	out := make([]entities.Topic, len(l.topics))
	copy(out, l.topics)
	return out
}

// Snapshot round trip

// ExportSnapshot returns the complete current state.
func (l *Library) ExportSnapshot() entities.Snapshot {
	return entities.Snapshot{
		Vocabulary:  l.vocabulary.All(),
		Categories:  l.categories.All(),
		Topics:      l.Topics(),
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}
}

// ImportSnapshot replaces all three collections wholesale. Returns false
// when the snapshot fails structural validation.
func (l *Library) ImportSnapshot(snapshot entities.Snapshot) bool {
	if !storage.ValidateSnapshot(snapshot) {
		l.log.Error().Msg("import rejected: snapshot is missing required collections")
		return false
	}
	l.categories.Load(snapshot.Categories)
	l.vocabulary.Load(snapshot.Vocabulary)
	l.topics = append(l.topics[:0], snapshot.Topics...)
	l.persist()
	return true
}

func (l *Library) persist() error {
	if err := l.adapter.Save(l.ExportSnapshot()); err != nil {
		l.log.Error().Err(err).Msg("failed to persist snapshot")
		return err
	}
	return nil
}
