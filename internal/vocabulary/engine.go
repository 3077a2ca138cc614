// Package vocabulary owns the flat collection of vocabulary entries and the
// filter/sort/bulk-operation engine the review and browse screens run on.
package vocabulary

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wordstash/wordstash/internal/entities"
)

var (
	ErrWordRequired      = errors.New("word is required")
	ErrMeaningRequired   = errors.New("meaning is required")
	ErrSentenceRequired  = errors.New("example sentence is required")
	ErrInvalidDifficulty = errors.New("difficulty must be easy, medium or hard")
	ErrUnknownBulkOp     = errors.New("unknown bulk operation type")
)

// NewEntry carries the caller-supplied fields for Add. The engine assigns
// the id, creation date and learning-state defaults.
type NewEntry struct {
	Word          string
	Pronunciation string
	Meaning       string
	Examples      []ExampleInput
	Category      string
	Topic         string
	Difficulty    entities.Difficulty
	Tags          []string
}

type ExampleInput struct {
	Sentence    string
	Translation string
}

// EntryPatch is a partial update; nil fields are left unchanged.
type EntryPatch struct {
	Word          *string
	Pronunciation *string
	Meaning       *string
	Examples      *[]entities.Example
	Category      *string
	Topic         *string
	Difficulty    *entities.Difficulty
	Mastered      *bool
	Tags          *[]string
}

// Mastered filter values
const (
	MasteredAll  = "all"
	MasteredOnly = "mastered"
	MasteredNot  = "not-mastered"
)

// FilterCriteria compose with AND semantics across dimensions; within the
// category, topic and tag dimensions membership is OR. Zero values mean
// "no constraint" for every field.
type FilterCriteria struct {
	SearchTerm string
	Categories []string
	Topics     []string
	Difficulty string // "easy", "medium", "hard"; "" or "all" matches everything
	Mastered   string // "mastered", "not-mastered"; "" or "all" matches everything
	DateFrom   string // inclusive, YYYY-MM-DD
	DateTo     string // inclusive, YYYY-MM-DD
	Tags       []string
}

type SortField string

const (
	SortByWord         SortField = "word"
	SortByDateAdded    SortField = "dateAdded"
	SortByReviewCount  SortField = "reviewCount"
	SortByDifficulty   SortField = "difficulty"
	SortByLastReviewed SortField = "lastReviewed"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type BulkType string

const (
	BulkDelete           BulkType = "delete"
	BulkMoveCategory     BulkType = "move-category"
	BulkChangeDifficulty BulkType = "change-difficulty"
	BulkMarkMastered     BulkType = "mark-mastered"
	BulkAddTag           BulkType = "add-tag"
)

// BulkOperation applies one uniform change to a set of entry ids. Ids that
// no longer exist are skipped; bulk operations never partially fail.
type BulkOperation struct {
	Type       BulkType
	ItemIDs    []string
	Category   string              // move-category
	Difficulty entities.Difficulty // change-difficulty
	Mastered   bool                // mark-mastered
	Tag        string              // add-tag
}

// Statistics are derived on demand and never stored.
type Statistics struct {
	Total         int                         `json:"total"`
	Mastered      int                         `json:"mastered"`
	NotMastered   int                         `json:"notMastered"`
	ByDifficulty  map[entities.Difficulty]int `json:"byDifficulty"`
	ByCategory    map[string]int              `json:"byCategory"`
	RecentlyAdded int                         `json:"recentlyAdded"`
	NeedReview    int                         `json:"needReview"`
}

// Engine owns the vocabulary collection. Query methods return copies;
// callers never see the internal slice.
type Engine struct {
	entries          []entities.VocabularyEntry
	recentWindowDays int
	reviewStaleDays  int
	now              func() time.Time
}

// NewEngine creates an empty engine. The day windows feed the
// recently-added and need-review statistics.
func NewEngine(recentWindowDays, reviewStaleDays int) *Engine {
	if recentWindowDays <= 0 {
		recentWindowDays = 7
	}
	if reviewStaleDays <= 0 {
		reviewStaleDays = 7
	}
	return &Engine{
		entries:          []entities.VocabularyEntry{},
		recentWindowDays: recentWindowDays,
		reviewStaleDays:  reviewStaleDays,
		now:              time.Now,
	}
}

// Load replaces the collection, typically from a persisted snapshot.
func (e *Engine) Load(entries []entities.VocabularyEntry) {
	e.entries = make([]entities.VocabularyEntry, len(entries))
	copy(e.entries, entries)
}

// All returns a copy of every entry in insertion order.
func (e *Engine) All() []entities.VocabularyEntry {
	out := make([]entities.VocabularyEntry, len(e.entries))
	copy(out, e.entries)
	return out
}

// Get returns a copy of the entry with the given id, or nil.
func (e *Engine) Get(id string) *entities.VocabularyEntry {
	if i := e.indexOf(id); i >= 0 {
		entry := e.entries[i]
		return &entry
	}
	return nil
}

// Add creates an entry. Word and meaning are required; difficulty defaults
// to medium; dateAdded is stamped with today's date.
func (e *Engine) Add(data NewEntry) (*entities.VocabularyEntry, error) {
	word := strings.TrimSpace(data.Word)
	if word == "" {
		return nil, ErrWordRequired
	}
	meaning := strings.TrimSpace(data.Meaning)
	if meaning == "" {
		return nil, ErrMeaningRequired
	}
	difficulty := data.Difficulty
	if difficulty == "" {
		difficulty = entities.DifficultyMedium
	}
	if !difficulty.Valid() {
		return nil, ErrInvalidDifficulty
	}

	examples := make([]entities.Example, 0, len(data.Examples))
	for _, ex := range data.Examples {
		sentence := strings.TrimSpace(ex.Sentence)
		if sentence == "" {
			return nil, ErrSentenceRequired
		}
		examples = append(examples, entities.Example{
			ID:          uuid.NewString(),
			Sentence:    sentence,
			Translation: strings.TrimSpace(ex.Translation),
		})
	}

	entry := entities.VocabularyEntry{
		ID:            uuid.NewString(),
		Word:          word,
		Pronunciation: strings.TrimSpace(data.Pronunciation),
		Meaning:       meaning,
		Examples:      examples,
		Category:      data.Category,
		Topic:         data.Topic,
		Difficulty:    difficulty,
		DateAdded:     e.today(),
		Tags:          uniqueTags(data.Tags),
	}
	e.entries = append(e.entries, entry)

	result := entry
	return &result, nil
}

// Update merges a partial patch into an entry. A nil result with a nil
// error means the id was not found; callers routinely probe with stale ids.
func (e *Engine) Update(id string, patch EntryPatch) (*entities.VocabularyEntry, error) {
	i := e.indexOf(id)
	if i < 0 {
		return nil, nil
	}

	entry := e.entries[i]
	if patch.Word != nil {
		word := strings.TrimSpace(*patch.Word)
		if word == "" {
			return nil, ErrWordRequired
		}
		entry.Word = word
	}
	if patch.Meaning != nil {
		meaning := strings.TrimSpace(*patch.Meaning)
		if meaning == "" {
			return nil, ErrMeaningRequired
		}
		entry.Meaning = meaning
	}
	if patch.Difficulty != nil {
		if !patch.Difficulty.Valid() {
			return nil, ErrInvalidDifficulty
		}
		entry.Difficulty = *patch.Difficulty
	}
	if patch.Pronunciation != nil {
		entry.Pronunciation = strings.TrimSpace(*patch.Pronunciation)
	}
	if patch.Examples != nil {
		entry.Examples = *patch.Examples
	}
	if patch.Category != nil {
		entry.Category = *patch.Category
	}
	if patch.Topic != nil {
		entry.Topic = *patch.Topic
	}
	if patch.Mastered != nil {
		entry.Mastered = *patch.Mastered
	}
	if patch.Tags != nil {
		entry.Tags = uniqueTags(*patch.Tags)
	}
	e.entries[i] = entry

	result := entry
	return &result, nil
}

// Delete reports whether an entry was actually removed.
func (e *Engine) Delete(id string) bool {
	i := e.indexOf(id)
	if i < 0 {
		return false
	}
	e.entries = append(e.entries[:i], e.entries[i+1:]...)
	return true
}

// AddExample appends a usage sentence to an entry. Returns nil when the id
// is unknown.
func (e *Engine) AddExample(id, sentence, translation string) (*entities.VocabularyEntry, error) {
	sentence = strings.TrimSpace(sentence)
	if sentence == "" {
		return nil, ErrSentenceRequired
	}
	i := e.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	e.entries[i].Examples = append(e.entries[i].Examples, entities.Example{
		ID:          uuid.NewString(),
		Sentence:    sentence,
		Translation: strings.TrimSpace(translation),
	})
	entry := e.entries[i]
	return &entry, nil
}

// MarkReviewed increments the review counter and stamps lastReviewed.
func (e *Engine) MarkReviewed(id string) *entities.VocabularyEntry {
	i := e.indexOf(id)
	if i < 0 {
		return nil
	}
	e.entries[i].ReviewCount++
	e.entries[i].LastReviewed = e.today()
	entry := e.entries[i]
	return &entry
}

// ToggleMastered flips the mastered flag. Toggling counts as a review: the
// counter and lastReviewed advance on every toggle.
func (e *Engine) ToggleMastered(id string) *entities.VocabularyEntry {
	i := e.indexOf(id)
	if i < 0 {
		return nil
	}
	e.entries[i].Mastered = !e.entries[i].Mastered
	e.entries[i].ReviewCount++
	e.entries[i].LastReviewed = e.today()
	entry := e.entries[i]
	return &entry
}

// Filter evaluates every criterion against every entry in one linear pass.
func (e *Engine) Filter(criteria FilterCriteria) []entities.VocabularyEntry {
	term := strings.ToLower(strings.TrimSpace(criteria.SearchTerm))
	var matched []entities.VocabularyEntry
	for _, entry := range e.entries {
		if matches(entry, criteria, term) {
			matched = append(matched, entry)
		}
	}
	return matched
}

func matches(entry entities.VocabularyEntry, c FilterCriteria, term string) bool {
	if term != "" && !matchesSearch(entry, term) {
		return false
	}
	if len(c.Categories) > 0 && !containsString(c.Categories, entry.Category) {
		return false
	}
	if len(c.Topics) > 0 && !containsString(c.Topics, entry.Topic) {
		return false
	}
	if c.Difficulty != "" && c.Difficulty != "all" && string(entry.Difficulty) != c.Difficulty {
		return false
	}
	switch c.Mastered {
	case MasteredOnly:
		if !entry.Mastered {
			return false
		}
	case MasteredNot:
		if entry.Mastered {
			return false
		}
	}
	if c.DateFrom != "" && entry.DateAdded < c.DateFrom {
		return false
	}
	if c.DateTo != "" && entry.DateAdded > c.DateTo {
		return false
	}
	if len(c.Tags) > 0 && !anyOverlap(entry.Tags, c.Tags) {
		return false
	}
	return true
}

func matchesSearch(entry entities.VocabularyEntry, term string) bool {
	if strings.Contains(strings.ToLower(entry.Word), term) ||
		strings.Contains(strings.ToLower(entry.Meaning), term) ||
		strings.Contains(strings.ToLower(entry.Pronunciation), term) {
		return true
	}
	for _, ex := range entry.Examples {
		if strings.Contains(strings.ToLower(ex.Sentence), term) ||
			strings.Contains(strings.ToLower(ex.Translation), term) {
			return true
		}
	}
	return false
}

// Sort returns a stably sorted copy of the given entries; ties keep their
// original relative order so repeated renders are deterministic.
func (e *Engine) Sort(entries []entities.VocabularyEntry, field SortField, order SortOrder) []entities.VocabularyEntry {
	sorted := make([]entities.VocabularyEntry, len(entries))
	copy(sorted, entries)

	less := func(a, b entities.VocabularyEntry) int {
		switch field {
		case SortByWord:
			return strings.Compare(strings.ToLower(a.Word), strings.ToLower(b.Word))
		case SortByDateAdded:
			return strings.Compare(a.DateAdded, b.DateAdded)
		case SortByReviewCount:
			return a.ReviewCount - b.ReviewCount
		case SortByDifficulty:
			return a.Difficulty.Rank() - b.Difficulty.Rank()
		case SortByLastReviewed:
			// A missing lastReviewed sorts as the earliest possible date.
			return strings.Compare(a.LastReviewed, b.LastReviewed)
		}
		return 0
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := less(sorted[i], sorted[j])
		if order == SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})
	return sorted
}

// Bulk applies one operation to every listed id that still exists and
// returns how many entries were touched. Missing ids are skipped silently.
func (e *Engine) Bulk(op BulkOperation) (int, error) {
	switch op.Type {
	case BulkDelete, BulkMoveCategory, BulkChangeDifficulty, BulkMarkMastered, BulkAddTag:
	default:
		return 0, ErrUnknownBulkOp
	}
	if op.Type == BulkChangeDifficulty && !op.Difficulty.Valid() {
		return 0, ErrInvalidDifficulty
	}

	if op.Type == BulkDelete {
		doomed := make(map[string]bool, len(op.ItemIDs))
		for _, id := range op.ItemIDs {
			doomed[id] = true
		}
		kept := e.entries[:0]
		removed := 0
		for _, entry := range e.entries {
			if doomed[entry.ID] {
				removed++
				continue
			}
			kept = append(kept, entry)
		}
		e.entries = kept
		return removed, nil
	}

	applied := 0
	for _, id := range op.ItemIDs {
		i := e.indexOf(id)
		if i < 0 {
			continue
		}
		switch op.Type {
		case BulkMoveCategory:
			e.entries[i].Category = op.Category
		case BulkChangeDifficulty:
			e.entries[i].Difficulty = op.Difficulty
		case BulkMarkMastered:
			e.entries[i].Mastered = op.Mastered
		case BulkAddTag:
			if op.Tag != "" && !containsString(e.entries[i].Tags, op.Tag) {
				e.entries[i].Tags = append(e.entries[i].Tags, op.Tag)
			}
		}
		applied++
	}
	return applied, nil
}

// Stats derives aggregate statistics from the current collection.
func (e *Engine) Stats() Statistics {
	stats := Statistics{
		ByDifficulty: map[entities.Difficulty]int{},
		ByCategory:   map[string]int{},
	}
	recentCutoff := e.now().AddDate(0, 0, -e.recentWindowDays).Format(entities.DateFormat)
	staleCutoff := e.now().AddDate(0, 0, -e.reviewStaleDays).Format(entities.DateFormat)

	for _, entry := range e.entries {
		stats.Total++
		if entry.Mastered {
			stats.Mastered++
		} else {
			stats.NotMastered++
		}
		stats.ByDifficulty[entry.Difficulty]++
		stats.ByCategory[entry.Category]++
		if entry.DateAdded >= recentCutoff {
			stats.RecentlyAdded++
		}
		if !entry.Mastered && (entry.LastReviewed == "" || entry.LastReviewed < staleCutoff) {
			stats.NeedReview++
		}
	}
	return stats
}

// MigrateCategory rewrites the category on every entry referencing oldName
// and returns how many entries changed. Satisfies categories.EntryMigrator.
func (e *Engine) MigrateCategory(oldName, newName string) int {
	changed := 0
	for i := range e.entries {
		if e.entries[i].Category == oldName {
			e.entries[i].Category = newName
			changed++
		}
	}
	return changed
}

// CountByCategory returns how many entries reference the given category name.
func (e *Engine) CountByCategory(name string) int {
	count := 0
	for _, entry := range e.entries {
		if entry.Category == name {
			count++
		}
	}
	return count
}

func (e *Engine) indexOf(id string) int {
	for i, entry := range e.entries {
		if entry.ID == id {
			return i
		}
	}
	return -1
}

func (e *Engine) today() string {
	return e.now().Format(entities.DateFormat)
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func anyOverlap(have, want []string) bool {
	for _, w := range want {
		if containsString(have, w) {
			return true
		}
	}
	return false
}

func uniqueTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
