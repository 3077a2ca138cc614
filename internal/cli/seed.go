package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/wordstash/wordstash/internal/seed"
)

// SeedCommand populates the store with the sample dataset.
type SeedCommand struct {
	Backend string
	Path    string
}

func NewSeedCommand() *SeedCommand {
	return &SeedCommand{}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)

	fs.StringVar(&cmd.Backend, "backend", "", "Storage backend: file or sqlite (default from STORAGE_BACKEND)")
	fs.StringVar(&cmd.Path, "path", "", "Path to the snapshot file or database (default from STORAGE_PATH)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Populate the store with sample categories, topics and vocabulary.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *SeedCommand) Run() error {
	lib, closer, err := openLibrary(cmd.Backend, cmd.Path)
	if err != nil {
		return err
	}
	defer closer()

	if err := seed.Populate(lib); err != nil {
		return err
	}

	stats := lib.Stats()
	fmt.Printf("Seeded %d entries across %d categories\n", stats.Total, len(lib.Categories()))
	return nil
}
