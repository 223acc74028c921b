// Package store provides the small key-value blob persistence used for
// per-user presets and read marks. Values are whole JSON blobs written
// last-write-wins; a missing or corrupt blob always reads as empty.
package store

import (
	"context"
	"encoding/json"
	"sync"
)

// KV stores opaque blobs under string keys. Get returns nil with no error
// for a missing key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// GetJSON reads and decodes a blob into dest. A missing key or a blob that
// fails to decode leaves dest untouched and returns false; only transport
// errors are surfaced.
func GetJSON(ctx context.Context, kv KV, key string, dest any) (bool, error) {
	data, err := kv.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		// Corrupt persisted state reads as empty.
		return false, nil
	}
	return true, nil
}

// SetJSON encodes and writes a value as one blob.
func SetJSON(ctx context.Context, kv KV, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return kv.Set(ctx, key, data)
}

// Memory is an in-process KV used in tests and as the fallback when no
// backend is configured.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory builds an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *Memory) Ping(context.Context) error {
	return nil
}
