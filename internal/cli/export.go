package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
)

// ExportCommand writes the full snapshot as JSON for backup.
type ExportCommand struct {
	Backend string
	Path    string
	Output  string
}

func NewExportCommand() *ExportCommand {
	return &ExportCommand{}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)

	fs.StringVar(&cmd.Backend, "backend", "", "Storage backend: file or sqlite (default from STORAGE_BACKEND)")
	fs.StringVar(&cmd.Path, "path", "", "Path to the snapshot file or database (default from STORAGE_PATH)")
	fs.StringVar(&cmd.Output, "out", "", "Output file (default: stdout)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export the complete snapshot (vocabulary, categories, topics) as JSON.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ExportCommand) Run() error {
	lib, closer, err := openLibrary(cmd.Backend, cmd.Path)
	if err != nil {
		return err
	}
	defer closer()

	data, err := json.MarshalIndent(lib.ExportSnapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	if cmd.Output == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(cmd.Output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cmd.Output, err)
	}
	fmt.Printf("Exported snapshot to %s\n", cmd.Output)
	return nil
}
