// Package seed populates a library with a small sample dataset for demos
// and first-run exploration.
package seed

import (
	"fmt"

	"github.com/wordstash/wordstash/internal/entities"
	"github.com/wordstash/wordstash/internal/library"
	"github.com/wordstash/wordstash/internal/vocabulary"
)

// Populate creates sample categories, topics and entries through the
// library's own commands so every invariant holds on the result.
func Populate(lib *library.Library) error {
	animals, err := lib.AddCategory("Animals", "", "", "Creatures great and small")
	if err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	if _, err := lib.AddCategory("Birds", animals.ID, "", ""); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	daily, err := lib.AddCategory("Daily Life", "", "", "Everyday situations")
	if err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	business, err := lib.AddCategory("Business", "", "", "")
	if err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	if _, err := lib.AddCategory("New", "", "", "Uncategorized entries"); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	if _, err := lib.AddTopic("general", "Everyday vocabulary", daily.ID); err != nil {
		return err
	}
	if _, err := lib.AddTopic("business", "Workplace vocabulary", business.ID); err != nil {
		return err
	}

	for _, sample := range sampleEntries() {
		if _, err := lib.AddEntry(sample); err != nil {
			return fmt.Errorf("failed to seed entry %q: %w", sample.Word, err)
		}
	}
	return nil
}

func sampleEntries() []vocabulary.NewEntry {
	return []vocabulary.NewEntry{
		{
			Word:          "gato",
			Pronunciation: "GAH-toh",
			Meaning:       "cat",
			Category:      "Animals",
			Topic:         "general",
			Difficulty:    entities.DifficultyEasy,
			Examples: []vocabulary.ExampleInput{
				{Sentence: "El gato duerme en el sofá.", Translation: "The cat sleeps on the sofa."},
			},
			Tags: []string{"pets"},
		},
		{
			Word:          "petirrojo",
			Pronunciation: "peh-tee-RROH-hoh",
			Meaning:       "robin",
			Category:      "Birds",
			Topic:         "general",
			Difficulty:    entities.DifficultyMedium,
			Tags:          []string{"birds"},
		},
		{
			Word:       "desayuno",
			Meaning:    "breakfast",
			Category:   "Daily Life",
			Topic:      "general",
			Difficulty: entities.DifficultyEasy,
			Examples: []vocabulary.ExampleInput{
				{Sentence: "Tomo el desayuno a las ocho.", Translation: "I have breakfast at eight."},
			},
		},
		{
			Word:          "reunión",
			Pronunciation: "reh-oo-NYOHN",
			Meaning:       "meeting",
			Category:      "Business",
			Topic:         "business",
			Difficulty:    entities.DifficultyMedium,
			Examples: []vocabulary.ExampleInput{
				{Sentence: "La reunión empieza a las diez.", Translation: "The meeting starts at ten."},
			},
			Tags: []string{"work"},
		},
		{
			Word:       "presupuesto",
			Meaning:    "budget",
			Category:   "Business",
			Topic:      "business",
			Difficulty: entities.DifficultyHard,
			Tags:       []string{"work", "finance"},
		},
		{
			Word:       "madrugada",
			Meaning:    "early morning, small hours",
			Category:   "Daily Life",
			Topic:      "general",
			Difficulty: entities.DifficultyHard,
		},
	}
}
