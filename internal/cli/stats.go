package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/wordstash/wordstash/internal/categories"
	"github.com/wordstash/wordstash/internal/entities"
)

// StatsCommand prints aggregate learning statistics.
type StatsCommand struct {
	Backend string
	Path    string
}

func NewStatsCommand() *StatsCommand {
	return &StatsCommand{}
}

func (cmd *StatsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)

	fs.StringVar(&cmd.Backend, "backend", "", "Storage backend: file or sqlite (default from STORAGE_BACKEND)")
	fs.StringVar(&cmd.Path, "path", "", "Path to the snapshot file or database (default from STORAGE_PATH)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s stats [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print vocabulary statistics.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *StatsCommand) Run() error {
	lib, closer, err := openLibrary(cmd.Backend, cmd.Path)
	if err != nil {
		return err
	}
	defer closer()

	stats := lib.Stats()

	fmt.Println("Vocabulary Statistics")
	fmt.Println("=====================")
	fmt.Printf("Total entries:   %d\n", stats.Total)
	fmt.Printf("Mastered:        %d\n", stats.Mastered)
	fmt.Printf("Not mastered:    %d\n", stats.NotMastered)
	fmt.Printf("Recently added:  %d\n", stats.RecentlyAdded)
	fmt.Printf("Need review:     %d\n", stats.NeedReview)

	fmt.Println("\nBy difficulty:")
	for _, d := range []entities.Difficulty{entities.DifficultyEasy, entities.DifficultyMedium, entities.DifficultyHard} {
		fmt.Printf("  %-8s %d\n", d, stats.ByDifficulty[d])
	}

	if len(stats.ByCategory) > 0 {
		fmt.Println("\nBy category:")
		for _, node := range lib.CategoryTree() {
			printCategoryCounts(node, "  ")
		}
	}
	return nil
}

func printCategoryCounts(node categories.TreeNode, indent string) {
	fmt.Printf("%s%-20s %d\n", indent, node.Name, node.VocabularyCount)
	for _, child := range node.Children {
		printCategoryCounts(child, indent+"  ")
	}
}
