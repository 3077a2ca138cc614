// Command generate_demo creates a demo snapshot with sample vocabulary.
// Usage: go run cmd/generate_demo/main.go [-out path/to/demo-snapshot.json]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/wordstash/wordstash/internal/config"
	"github.com/wordstash/wordstash/internal/library"
	"github.com/wordstash/wordstash/internal/logger"
	"github.com/wordstash/wordstash/internal/seed"
	"github.com/wordstash/wordstash/internal/storage"
)

func main() {
	out := flag.String("out", config.DefaultDemoSnapshotPath, "path to the demo snapshot file")
	flag.Parse()

	log.Printf("Generating demo snapshot at %s...", *out)

	// Delete any existing snapshot to start fresh
	if err := os.Remove(*out); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo snapshot: %v", err)
	}

	zlog := logger.New("generate-demo")
	cfg := config.NewConfig()
	cfg.Storage.Backend = config.BackendFile
	cfg.Storage.Path = *out

	lib := library.New(storage.NewFileAdapter(*out, zlog), cfg, zlog)

	if err := seed.Populate(lib); err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	stats := lib.Stats()
	log.Printf("Demo snapshot ready: %d entries, %d categories, %d topics",
		stats.Total, len(lib.Categories()), len(lib.Topics()))
}
