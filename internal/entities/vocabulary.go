package entities

import "time"

// DateFormat is the calendar-date layout used for dateAdded and lastReviewed.
// It sorts correctly as plain text, which the filter layer relies on.
const DateFormat = "2006-01-02"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Rank orders difficulties easy < medium < hard for sorting.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyEasy:
		return 0
	case DifficultyMedium:
		return 1
	case DifficultyHard:
		return 2
	}
	return -1
}

func (d Difficulty) Valid() bool {
	return d.Rank() >= 0
}

// Example is one usage sentence attached to a vocabulary entry.
// Order within an entry is insertion order and is meaningful for display.
type Example struct {
	ID          string `json:"id"`
	Sentence    string `json:"sentence"`
	Translation string `json:"translation,omitempty"`
}

// VocabularyEntry is a single word or phrase being learned, together with
// its learning-state metadata. Category is a soft reference: it stores a
// category's display name, not its id.
type VocabularyEntry struct {
	ID            string     `json:"id"`
	Word          string     `json:"word"`
	Pronunciation string     `json:"pronunciation,omitempty"`
	Meaning       string     `json:"meaning"`
	Examples      []Example  `json:"examples"`
	Category      string     `json:"category"`
	Topic         string     `json:"topic"`
	Difficulty    Difficulty `json:"difficulty"`
	DateAdded     string     `json:"dateAdded"`
	Mastered      bool       `json:"mastered"`
	ReviewCount   int        `json:"reviewCount"`
	LastReviewed  string     `json:"lastReviewed,omitempty"`
	Tags          []string   `json:"tags,omitempty"`
}

// Category is a named grouping label for vocabulary entries. Categories form
// a forest via ParentID; an empty ParentID marks a root category.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ParentID    string    `json:"parentId,omitempty"`
	Color       string    `json:"color"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Topic is a flat secondary classification axis, independent of the
// category forest. No cascade rules apply to topics.
type Topic struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CategoryID  string `json:"categoryId,omitempty"`
}

// Snapshot is the complete serializable state of the application at a point
// in time. Its JSON shape is the durable interchange format consumed by
// backup and import tooling, so field names must not change.
type Snapshot struct {
	Vocabulary  []VocabularyEntry `json:"vocabulary"`
	Categories  []Category        `json:"categories"`
	Topics      []Topic           `json:"topics"`
	LastUpdated string            `json:"lastUpdated,omitempty"`
}
