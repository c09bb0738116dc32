package recon

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Artifact is a generated workbook held for download.
type Artifact struct {
	Filename  string
	Data      []byte
	CreatedAt time.Time
}

// ArtifactStore keeps recently generated workbooks so the download link from
// a just-completed run works. Nothing here survives a restart; every run
// recomputes from its uploads.
type ArtifactStore interface {
	Put(id uuid.UUID, artifact Artifact)
	Get(id uuid.UUID) (Artifact, bool)
}

type memoryStore struct {
	mu       sync.Mutex
	capacity int
	order    []uuid.UUID
	items    map[uuid.UUID]Artifact
}

// NewMemoryStore returns an in-process store bounded to the given number of
// artifacts, evicting oldest-first.
func NewMemoryStore(capacity int) ArtifactStore {
	if capacity < 1 {
		capacity = 1
	}
	return &memoryStore{
		capacity: capacity,
		items:    make(map[uuid.UUID]Artifact, capacity),
	}
}

func (s *memoryStore) Put(id uuid.UUID, artifact Artifact) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		s.order = append(s.order, id)
	}
	s.items[id] = artifact

	for len(s.order) > s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.items, oldest)
	}
}

func (s *memoryStore) Get(id uuid.UUID) (Artifact, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	artifact, ok := s.items[id]
	return artifact, ok
}
