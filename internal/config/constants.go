package config

// Default storage locations
const (
	// DefaultSnapshotPath is the default path for the JSON snapshot file
	DefaultSnapshotPath = "./wordstash.json"

	// DefaultDatabasePath is the default path for the SQLite-backed snapshot store
	DefaultDatabasePath = "./wordstash.db"

	// DefaultDemoSnapshotPath is where the demo generator writes its snapshot
	DefaultDemoSnapshotPath = "./demo/demo-snapshot.json"
)

// Storage backend names
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)
