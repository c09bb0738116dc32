package recon

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_PutGet(t *testing.T) {
	store := NewMemoryStore(4)
	id := uuid.New()
	store.Put(id, Artifact{Filename: "out.xlsx", Data: []byte{1}})

	got, ok := store.Get(id)
	assert.True(t, ok)
	assert.Equal(t, "out.xlsx", got.Filename)

	_, ok = store.Get(uuid.New())
	assert.False(t, ok)
}

func TestMemoryStore_EvictsOldestFirst(t *testing.T) {
	store := NewMemoryStore(2)
	first, second, third := uuid.New(), uuid.New(), uuid.New()
	store.Put(first, Artifact{})
	store.Put(second, Artifact{})
	store.Put(third, Artifact{})

	_, ok := store.Get(first)
	assert.False(t, ok, "oldest artifact should be evicted")
	_, ok = store.Get(second)
	assert.True(t, ok)
	_, ok = store.Get(third)
	assert.True(t, ok)
}
