package cache

import (
	"context"
	"sync"
	"time"

	"github.com/Rohith-kulkarni/qwipo-app/internal/model"
	"github.com/vmihailenco/msgpack/v5"
)

type memoryEntry struct {
	encoded   []byte
	expiresAt time.Time
}

type memoryProfileCache struct {
	mu         sync.Mutex
	entries    map[string]memoryEntry
	timeToLive time.Duration
	now        func() time.Time
}

// NewMemoryProfileCache builds process-local ProfileCache, used when redis is not configured
func NewMemoryProfileCache(ttl time.Duration) ProfileCache {
	return &memoryProfileCache{
		entries:    make(map[string]memoryEntry),
		timeToLive: ttl,
		now:        time.Now,
	}
}

func (m *memoryProfileCache) FindByID(_ context.Context, session string, customerID model.ID) (*model.ProfileState, error) {
	key := profileKey(session, customerID)

	m.mu.Lock()
	entry, ok := m.entries[key]
	if ok && !m.now().Before(entry.expiresAt) {
		delete(m.entries, key)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		return nil, nil
	}

	// state is stored encoded so callers never share slices with the cache
	var s model.ProfileState
	if err := msgpack.Unmarshal(entry.encoded, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (m *memoryProfileCache) Cache(_ context.Context, session string, customerID model.ID, state *model.ProfileState) error {
	encoded, err := msgpack.Marshal(state)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.evictExpired()
	m.entries[profileKey(session, customerID)] = memoryEntry{
		encoded:   encoded,
		expiresAt: m.now().Add(m.timeToLive),
	}
	return nil
}

func (m *memoryProfileCache) EvictByID(_ context.Context, session string, customerID model.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, profileKey(session, customerID))
	return nil
}

func (m *memoryProfileCache) evictExpired() {
	now := m.now()
	for k, e := range m.entries {
		if !now.Before(e.expiresAt) {
			delete(m.entries, k)
		}
	}
}
