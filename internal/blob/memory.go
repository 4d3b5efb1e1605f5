package blob

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/apperr"
)

// MemStore is an in-memory Store for tests. It records every delete so
// cascade behavior can be asserted.
type MemStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	deletes []string

	// FailPut, when non-empty, makes Put fail for files with this name.
	FailPut string
}

func NewMemStore() *MemStore {
	return &MemStore{objects: make(map[string][]byte)}
}

func (m *MemStore) Put(ctx context.Context, folder, name, contentType string, data []byte) (string, error) {
	if m.FailPut != "" && name == m.FailPut {
		return "", apperr.Storage("blob.Put", fmt.Errorf("injected failure for %s", name))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.TrimSuffix(folder, "/") + "/" + uuid.NewString() + "-" + name
	m.objects[key] = append([]byte(nil), data...)
	return "mem://bucket/" + key, nil
}

func (m *MemStore) Delete(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return apperr.Storage("blob.Delete", err)
	}
	key := strings.TrimPrefix(u.Path, "/")

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.objects, key)
	m.deletes = append(m.deletes, rawURL)
	return nil
}

// Len reports how many objects are currently stored.
func (m *MemStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

// Deletes returns the URLs passed to Delete, in call order.
func (m *MemStore) Deletes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.deletes...)
}
