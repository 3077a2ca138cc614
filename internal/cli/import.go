package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/wordstash/wordstash/internal/entities"
)

// ImportCommand restores the store from an exported snapshot, replacing
// all current state.
type ImportCommand struct {
	Backend string
	Path    string
	File    string
}

func NewImportCommand() *ImportCommand {
	return &ImportCommand{}
}

func (cmd *ImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)

	fs.StringVar(&cmd.Backend, "backend", "", "Storage backend: file or sqlite (default from STORAGE_BACKEND)")
	fs.StringVar(&cmd.Path, "path", "", "Path to the snapshot file or database (default from STORAGE_PATH)")
	fs.StringVar(&cmd.File, "file", "", "Snapshot JSON file to import (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Replace all vocabulary, categories and topics with the given snapshot.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.File == "" {
		return fmt.Errorf("required flag -file not provided")
	}
	return nil
}

func (cmd *ImportCommand) Run() error {
	data, err := os.ReadFile(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", cmd.File, err)
	}

	var snapshot entities.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("invalid snapshot file: %w", err)
	}

	lib, closer, err := openLibrary(cmd.Backend, cmd.Path)
	if err != nil {
		return err
	}
	defer closer()

	if !lib.ImportSnapshot(snapshot) {
		return fmt.Errorf("snapshot failed validation: vocabulary, categories and topics are required")
	}

	fmt.Printf("Imported %d entries, %d categories, %d topics\n",
		len(snapshot.Vocabulary), len(snapshot.Categories), len(snapshot.Topics))
	return nil
}
