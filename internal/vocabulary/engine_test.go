package vocabulary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordstash/wordstash/internal/entities"
)

func newTestEngine() *Engine {
	e := NewEngine(7, 7)
	e.now = func() time.Time {
		return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	}
	return e
}

func mustAdd(t *testing.T, e *Engine, data NewEntry) *entities.VocabularyEntry {
	t.Helper()
	entry, err := e.Add(data)
	require.NoError(t, err)
	return entry
}

func TestEngine_Add(t *testing.T) {
	e := newTestEngine()

	entry, err := e.Add(NewEntry{
		Word:     "gato",
		Meaning:  "cat",
		Category: "Animals",
		Examples: []ExampleInput{{Sentence: "El gato duerme.", Translation: "The cat sleeps."}},
		Tags:     []string{"pets", "pets", "animals"},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "2024-03-15", entry.DateAdded)
	assert.Equal(t, entities.DifficultyMedium, entry.Difficulty)
	assert.False(t, entry.Mastered)
	assert.Zero(t, entry.ReviewCount)
	assert.Empty(t, entry.LastReviewed)
	require.Len(t, entry.Examples, 1)
	assert.NotEmpty(t, entry.Examples[0].ID)
	assert.Equal(t, []string{"pets", "animals"}, entry.Tags)
}

func TestEngine_Add_Validation(t *testing.T) {
	e := newTestEngine()

	_, err := e.Add(NewEntry{Word: "  ", Meaning: "cat"})
	assert.ErrorIs(t, err, ErrWordRequired)

	_, err = e.Add(NewEntry{Word: "gato", Meaning: "   "})
	assert.ErrorIs(t, err, ErrMeaningRequired)

	_, err = e.Add(NewEntry{Word: "gato", Meaning: "cat", Difficulty: "impossible"})
	assert.ErrorIs(t, err, ErrInvalidDifficulty)

	_, err = e.Add(NewEntry{Word: "gato", Meaning: "cat", Examples: []ExampleInput{{Sentence: " "}}})
	assert.ErrorIs(t, err, ErrSentenceRequired)

	assert.Empty(t, e.All())
}

func TestEngine_Update_PartialPatch(t *testing.T) {
	e := newTestEngine()
	entry := mustAdd(t, e, NewEntry{Word: "gato", Meaning: "cat", Category: "Animals"})

	meaning := "cat (animal)"
	hard := entities.DifficultyHard
	updated, err := e.Update(entry.ID, EntryPatch{Meaning: &meaning, Difficulty: &hard})

	require.NoError(t, err)
	assert.Equal(t, "cat (animal)", updated.Meaning)
	assert.Equal(t, entities.DifficultyHard, updated.Difficulty)
	// Untouched fields survive the patch.
	assert.Equal(t, "gato", updated.Word)
	assert.Equal(t, "Animals", updated.Category)
}

func TestEngine_Update_NotFoundReturnsNil(t *testing.T) {
	e := newTestEngine()

	word := "x"
	updated, err := e.Update("missing", EntryPatch{Word: &word})

	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestEngine_Update_RejectsEmptyWord(t *testing.T) {
	e := newTestEngine()
	entry := mustAdd(t, e, NewEntry{Word: "gato", Meaning: "cat"})

	empty := "  "
	_, err := e.Update(entry.ID, EntryPatch{Word: &empty})

	assert.ErrorIs(t, err, ErrWordRequired)
	assert.Equal(t, "gato", e.Get(entry.ID).Word)
}

func TestEngine_Delete(t *testing.T) {
	e := newTestEngine()
	entry := mustAdd(t, e, NewEntry{Word: "gato", Meaning: "cat"})

	assert.True(t, e.Delete(entry.ID))
	assert.False(t, e.Delete(entry.ID))
	assert.Nil(t, e.Get(entry.ID))
}

func TestEngine_AddExample(t *testing.T) {
	e := newTestEngine()
	entry := mustAdd(t, e, NewEntry{Word: "gato", Meaning: "cat"})

	updated, err := e.AddExample(entry.ID, "El gato come.", "The cat eats.")
	require.NoError(t, err)
	require.Len(t, updated.Examples, 1)
	assert.Equal(t, "El gato come.", updated.Examples[0].Sentence)

	_, err = e.AddExample(entry.ID, "   ", "")
	assert.ErrorIs(t, err, ErrSentenceRequired)

	missing, err := e.AddExample("missing", "sentence", "")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestEngine_Filter_SearchTerm(t *testing.T) {
	e := newTestEngine()
	mustAdd(t, e, NewEntry{Word: "gato", Meaning: "cat"})
	mustAdd(t, e, NewEntry{Word: "perro", Meaning: "dog"})
	mustAdd(t, e, NewEntry{
		Word: "pájaro", Meaning: "bird",
		Examples: []ExampleInput{{Sentence: "El pájaro canta.", Translation: "The CAT watches the bird."}},
	})

	// Case-insensitive, matches word, meaning, pronunciation and examples.
	results := e.Filter(FilterCriteria{SearchTerm: "CAT"})

	require.Len(t, results, 2)
	assert.Equal(t, "gato", results[0].Word)
	assert.Equal(t, "pájaro", results[1].Word)
}

func TestEngine_Filter_ScenarioCategoryAndDifficulty(t *testing.T) {
	e := newTestEngine()
	for i := 0; i < 5; i++ {
		mustAdd(t, e, NewEntry{Word: "easy-animal", Meaning: "m", Category: "Animals", Difficulty: entities.DifficultyEasy})
	}
	mustAdd(t, e, NewEntry{Word: "hard-animal", Meaning: "m", Category: "Animals", Difficulty: entities.DifficultyHard})
	for i := 0; i < 4; i++ {
		mustAdd(t, e, NewEntry{Word: "easy-plant", Meaning: "m", Category: "Plants", Difficulty: entities.DifficultyEasy})
	}

	results := e.Filter(FilterCriteria{Categories: []string{"Animals"}, Difficulty: "easy"})

	require.Len(t, results, 5)
	for _, entry := range results {
		assert.Equal(t, "Animals", entry.Category)
		assert.Equal(t, entities.DifficultyEasy, entry.Difficulty)
	}
}

func TestEngine_Filter_CompositionIsIntersection(t *testing.T) {
	e := newTestEngine()
	mustAdd(t, e, NewEntry{Word: "a", Meaning: "m", Category: "Animals", Topic: "general"})
	mustAdd(t, e, NewEntry{Word: "b", Meaning: "m", Category: "Animals", Topic: "business"})
	mustAdd(t, e, NewEntry{Word: "c", Meaning: "m", Category: "Plants", Topic: "general"})

	byCategory := e.Filter(FilterCriteria{Categories: []string{"Animals"}})
	byTopic := e.Filter(FilterCriteria{Topics: []string{"general"}})
	combined := e.Filter(FilterCriteria{Categories: []string{"Animals"}, Topics: []string{"general"}})

	require.Len(t, combined, 1)
	assert.Equal(t, "a", combined[0].Word)
	// Combined results are a subset of each single-dimension result.
	for _, entry := range combined {
		assert.True(t, containsEntry(byCategory, entry.ID))
		assert.True(t, containsEntry(byTopic, entry.ID))
	}
}

func TestEngine_Filter_MultiValueDimensionsAreUnions(t *testing.T) {
	e := newTestEngine()
	mustAdd(t, e, NewEntry{Word: "a", Meaning: "m", Category: "Animals"})
	mustAdd(t, e, NewEntry{Word: "b", Meaning: "m", Category: "Plants"})
	mustAdd(t, e, NewEntry{Word: "c", Meaning: "m", Category: "Music"})

	results := e.Filter(FilterCriteria{Categories: []string{"Animals", "Plants"}})

	require.Len(t, results, 2)
}

func TestEngine_Filter_Mastered(t *testing.T) {
	e := newTestEngine()
	a := mustAdd(t, e, NewEntry{Word: "a", Meaning: "m"})
	mustAdd(t, e, NewEntry{Word: "b", Meaning: "m"})
	e.ToggleMastered(a.ID)

	mastered := e.Filter(FilterCriteria{Mastered: MasteredOnly})
	notMastered := e.Filter(FilterCriteria{Mastered: MasteredNot})
	all := e.Filter(FilterCriteria{Mastered: MasteredAll})

	require.Len(t, mastered, 1)
	assert.Equal(t, "a", mastered[0].Word)
	require.Len(t, notMastered, 1)
	assert.Equal(t, "b", notMastered[0].Word)
	assert.Len(t, all, 2)
}

func TestEngine_Filter_DateRangeInclusive(t *testing.T) {
	e := newTestEngine()
	entry := mustAdd(t, e, NewEntry{Word: "a", Meaning: "m"}) // dateAdded 2024-03-15

	assert.Len(t, e.Filter(FilterCriteria{DateFrom: "2024-03-15"}), 1)
	assert.Len(t, e.Filter(FilterCriteria{DateTo: "2024-03-15"}), 1)
	assert.Empty(t, e.Filter(FilterCriteria{DateFrom: "2024-03-16"}))
	assert.Empty(t, e.Filter(FilterCriteria{DateTo: "2024-03-14"}))
	assert.Equal(t, entry.ID, e.Filter(FilterCriteria{DateFrom: "2024-03-01", DateTo: "2024-03-31"})[0].ID)
}

func TestEngine_Filter_Tags(t *testing.T) {
	e := newTestEngine()
	mustAdd(t, e, NewEntry{Word: "a", Meaning: "m", Tags: []string{"work"}})
	mustAdd(t, e, NewEntry{Word: "b", Meaning: "m", Tags: []string{"travel", "food"}})
	mustAdd(t, e, NewEntry{Word: "c", Meaning: "m"})

	results := e.Filter(FilterCriteria{Tags: []string{"work", "food"}})

	require.Len(t, results, 2)
}

func TestEngine_Sort_ReviewCountStability(t *testing.T) {
	e := newTestEngine()
	// reviewCounts [3, 0, 3, 1]; the two 3's must keep their relative order.
	first3 := mustAdd(t, e, NewEntry{Word: "first3", Meaning: "m"})
	mustAdd(t, e, NewEntry{Word: "zero", Meaning: "m"})
	second3 := mustAdd(t, e, NewEntry{Word: "second3", Meaning: "m"})
	one := mustAdd(t, e, NewEntry{Word: "one", Meaning: "m"})
	for i := 0; i < 3; i++ {
		e.MarkReviewed(first3.ID)
		e.MarkReviewed(second3.ID)
	}
	e.MarkReviewed(one.ID)

	asc := e.Sort(e.All(), SortByReviewCount, SortAsc)
	require.Len(t, asc, 4)
	assert.Equal(t, []string{"zero", "one", "first3", "second3"}, words(asc))

	desc := e.Sort(e.All(), SortByReviewCount, SortDesc)
	assert.Equal(t, []string{"first3", "second3", "one", "zero"}, words(desc))
}

func TestEngine_Sort_WordCaseInsensitive(t *testing.T) {
	e := newTestEngine()
	mustAdd(t, e, NewEntry{Word: "banana", Meaning: "m"})
	mustAdd(t, e, NewEntry{Word: "Apple", Meaning: "m"})
	mustAdd(t, e, NewEntry{Word: "cherry", Meaning: "m"})

	sorted := e.Sort(e.All(), SortByWord, SortAsc)

	assert.Equal(t, []string{"Apple", "banana", "cherry"}, words(sorted))
}

func TestEngine_Sort_Difficulty(t *testing.T) {
	e := newTestEngine()
	mustAdd(t, e, NewEntry{Word: "hard", Meaning: "m", Difficulty: entities.DifficultyHard})
	mustAdd(t, e, NewEntry{Word: "easy", Meaning: "m", Difficulty: entities.DifficultyEasy})
	mustAdd(t, e, NewEntry{Word: "medium", Meaning: "m", Difficulty: entities.DifficultyMedium})

	sorted := e.Sort(e.All(), SortByDifficulty, SortAsc)

	assert.Equal(t, []string{"easy", "medium", "hard"}, words(sorted))
}

func TestEngine_Sort_LastReviewedMissingSortsEarliest(t *testing.T) {
	e := newTestEngine()
	reviewed := mustAdd(t, e, NewEntry{Word: "reviewed", Meaning: "m"})
	mustAdd(t, e, NewEntry{Word: "never", Meaning: "m"})
	e.MarkReviewed(reviewed.ID)

	sorted := e.Sort(e.All(), SortByLastReviewed, SortAsc)

	assert.Equal(t, []string{"never", "reviewed"}, words(sorted))
}

func TestEngine_Sort_DoesNotMutateInput(t *testing.T) {
	e := newTestEngine()
	mustAdd(t, e, NewEntry{Word: "b", Meaning: "m"})
	mustAdd(t, e, NewEntry{Word: "a", Meaning: "m"})

	input := e.All()
	e.Sort(input, SortByWord, SortAsc)

	assert.Equal(t, []string{"b", "a"}, words(input))
}

func TestEngine_Bulk_MoveCategorySkipsMissingIDs(t *testing.T) {
	e := newTestEngine()
	a := mustAdd(t, e, NewEntry{Word: "a", Meaning: "m", Category: "Animals"})
	b := mustAdd(t, e, NewEntry{Word: "b", Meaning: "m", Category: "Plants"})

	applied, err := e.Bulk(BulkOperation{
		Type:     BulkMoveCategory,
		ItemIDs:  []string{a.ID, b.ID, "nonexistent"},
		Category: "Daily",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, applied)
	assert.Equal(t, "Daily", e.Get(a.ID).Category)
	assert.Equal(t, "Daily", e.Get(b.ID).Category)
}

func TestEngine_Bulk_Delete(t *testing.T) {
	e := newTestEngine()
	a := mustAdd(t, e, NewEntry{Word: "a", Meaning: "m"})
	mustAdd(t, e, NewEntry{Word: "b", Meaning: "m"})
	c := mustAdd(t, e, NewEntry{Word: "c", Meaning: "m"})

	removed, err := e.Bulk(BulkOperation{Type: BulkDelete, ItemIDs: []string{a.ID, c.ID, "missing"}})

	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, []string{"b"}, words(e.All()))
}

func TestEngine_Bulk_ChangeDifficultyAndMastered(t *testing.T) {
	e := newTestEngine()
	a := mustAdd(t, e, NewEntry{Word: "a", Meaning: "m"})

	_, err := e.Bulk(BulkOperation{Type: BulkChangeDifficulty, ItemIDs: []string{a.ID}, Difficulty: entities.DifficultyHard})
	require.NoError(t, err)
	assert.Equal(t, entities.DifficultyHard, e.Get(a.ID).Difficulty)

	_, err = e.Bulk(BulkOperation{Type: BulkMarkMastered, ItemIDs: []string{a.ID}, Mastered: true})
	require.NoError(t, err)
	assert.True(t, e.Get(a.ID).Mastered)
}

func TestEngine_Bulk_AddTagDeduplicates(t *testing.T) {
	e := newTestEngine()
	a := mustAdd(t, e, NewEntry{Word: "a", Meaning: "m", Tags: []string{"work"}})

	_, err := e.Bulk(BulkOperation{Type: BulkAddTag, ItemIDs: []string{a.ID, a.ID}, Tag: "work"})
	require.NoError(t, err)

	assert.Equal(t, []string{"work"}, e.Get(a.ID).Tags)
}

func TestEngine_Bulk_UnknownType(t *testing.T) {
	e := newTestEngine()

	_, err := e.Bulk(BulkOperation{Type: "explode"})

	assert.ErrorIs(t, err, ErrUnknownBulkOp)
}

func TestEngine_ToggleMastered_CountsAsReview(t *testing.T) {
	e := newTestEngine()
	entry := mustAdd(t, e, NewEntry{Word: "a", Meaning: "m"})

	toggled := e.ToggleMastered(entry.ID)
	require.NotNil(t, toggled)
	assert.True(t, toggled.Mastered)
	assert.Equal(t, 1, toggled.ReviewCount)
	assert.Equal(t, "2024-03-15", toggled.LastReviewed)

	// Toggling twice restores the flag but each toggle is a review.
	toggled = e.ToggleMastered(entry.ID)
	assert.False(t, toggled.Mastered)
	assert.Equal(t, 2, toggled.ReviewCount)

	assert.Nil(t, e.ToggleMastered("missing"))
}

func TestEngine_Stats(t *testing.T) {
	e := newTestEngine()

	recent := mustAdd(t, e, NewEntry{Word: "recent", Meaning: "m", Category: "Animals", Difficulty: entities.DifficultyEasy})
	old := mustAdd(t, e, NewEntry{Word: "old", Meaning: "m", Category: "Plants", Difficulty: entities.DifficultyHard})
	stale := mustAdd(t, e, NewEntry{Word: "stale", Meaning: "m", Category: "Animals"})

	// Backdate two entries past the windows.
	e.entries[e.indexOf(old.ID)].DateAdded = "2024-02-01"
	e.entries[e.indexOf(stale.ID)].DateAdded = "2024-02-01"
	e.entries[e.indexOf(stale.ID)].ReviewCount = 1
	e.entries[e.indexOf(stale.ID)].LastReviewed = "2024-03-01"

	e.ToggleMastered(recent.ID)

	stats := e.Stats()

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Mastered)
	assert.Equal(t, 2, stats.NotMastered)
	assert.Equal(t, 1, stats.ByDifficulty[entities.DifficultyEasy])
	assert.Equal(t, 1, stats.ByDifficulty[entities.DifficultyMedium])
	assert.Equal(t, 1, stats.ByDifficulty[entities.DifficultyHard])
	assert.Equal(t, 2, stats.ByCategory["Animals"])
	assert.Equal(t, 1, stats.ByCategory["Plants"])
	assert.Equal(t, 1, stats.RecentlyAdded)
	// "old" was never reviewed, "stale" was reviewed over a week ago.
	assert.Equal(t, 2, stats.NeedReview)
}

func TestEngine_MigrateCategory(t *testing.T) {
	e := newTestEngine()
	a := mustAdd(t, e, NewEntry{Word: "a", Meaning: "m", Category: "Birds"})
	b := mustAdd(t, e, NewEntry{Word: "b", Meaning: "m", Category: "Animals"})

	changed := e.MigrateCategory("Birds", "New")

	assert.Equal(t, 1, changed)
	assert.Equal(t, "New", e.Get(a.ID).Category)
	assert.Equal(t, "Animals", e.Get(b.ID).Category)
}

func TestEngine_CountByCategory(t *testing.T) {
	e := newTestEngine()
	mustAdd(t, e, NewEntry{Word: "a", Meaning: "m", Category: "Animals"})
	mustAdd(t, e, NewEntry{Word: "b", Meaning: "m", Category: "Animals"})
	mustAdd(t, e, NewEntry{Word: "c", Meaning: "m", Category: "Plants"})

	assert.Equal(t, 2, e.CountByCategory("Animals"))
	assert.Equal(t, 1, e.CountByCategory("Plants"))
	assert.Zero(t, e.CountByCategory("Missing"))
}

func words(entries []entities.VocabularyEntry) []string {
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = entry.Word
	}
	return out
}

func containsEntry(entries []entities.VocabularyEntry, id string) bool {
	for _, entry := range entries {
		if entry.ID == id {
			return true
		}
	}
	return false
}
