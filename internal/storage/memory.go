package storage

import "github.com/wordstash/wordstash/internal/entities"

// MemoryAdapter keeps the snapshot in memory. Used in tests and anywhere
// persistence is not wanted.
type MemoryAdapter struct {
	Snapshot  entities.Snapshot
	SaveCalls int
	SaveErr   error // injected failure for tests
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{Snapshot: EmptySnapshot()}
}

func (a *MemoryAdapter) Load() entities.Snapshot {
	return normalize(a.Snapshot)
}

func (a *MemoryAdapter) Save(snapshot entities.Snapshot) error {
	a.SaveCalls++
	if a.SaveErr != nil {
		return a.SaveErr
	}
	a.Snapshot = snapshot
	return nil
}
