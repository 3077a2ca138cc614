package main

import (
	"fmt"
	"os"

	"github.com/wordstash/wordstash/internal/cli"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "seed":
		runCommand(cli.NewSeedCommand(), args)

	case "export":
		runCommand(cli.NewExportCommand(), args)

	case "import":
		runCommand(cli.NewImportCommand(), args)

	case "stats":
		runCommand(cli.NewStatsCommand(), args)

	case "version":
		fmt.Printf("wordstash %s (%s)\n", Version, Commit)

	case "-h", "--help", "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

type command interface {
	ParseFlags(args []string) error
	Run() error
}

func runCommand(cmd command, args []string) {
	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  seed     Populate the store with sample data\n")
	fmt.Fprintf(os.Stderr, "  export   Export the full snapshot as JSON\n")
	fmt.Fprintf(os.Stderr, "  import   Replace all state with a snapshot file\n")
	fmt.Fprintf(os.Stderr, "  stats    Print vocabulary statistics\n")
	fmt.Fprintf(os.Stderr, "  version  Print version information\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
