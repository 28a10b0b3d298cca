// Package registry menyediakan registry generic yang thread-safe untuk
// menyimpan singleton instance aplikasi (collection Mongo, service, dst).
package registry

import (
	"fmt"
	"sync"

	"github.com/rezhamata/BOT-REKAPAN/internal/common"
)

// Registry adalah implementasi registry pattern dengan generic type.
// Thread-safety dijamin lewat sync.RWMutex.
type Registry[T any] struct {
	items map[string]T // Map penyimpanan item per key
	mu    sync.RWMutex // Mutex untuk thread-safety
}

// NewRegistry membuat registry baru untuk tipe T
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register mendaftarkan item baru. Item dengan nama sama akan ditimpa.
// Mengembalikan isNew = true kalau item baru, false kalau menimpa item lama.
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get mengambil item berdasarkan nama
func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists = r.items[name]
	return item, exists
}

// GetOrCreate mengambil item; kalau belum ada, dibuat lewat creator function
func (r *Registry[T]) GetOrCreate(name string, creator func() (T, error)) (item T, err error) {
	if name == "" {
		return item, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existingItem, exists := r.items[name]; exists {
		return existingItem, nil
	}

	newItem, err := creator()
	if err != nil {
		return item, fmt.Errorf("failed to create item: %w", err)
	}

	r.items[name] = newItem
	return newItem, nil
}

// Clear menghapus satu item; cleanup opsional dipanggil sebelum dihapus
func (r *Registry[T]) Clear(name string, cleanup func(T) error) (deleted bool, err error) {
	if name == "" {
		return false, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[name]
	if !exists {
		return false, nil
	}

	if cleanup != nil {
		if err := cleanup(item); err != nil {
			return false, fmt.Errorf("failed to cleanup item %s: %w", name, err)
		}
	}

	delete(r.items, name)
	return true, nil
}
