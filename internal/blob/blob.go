// Package blob is the object store gateway. Resource services never touch
// the storage backend directly; they hold attachment references returned
// by Put and hand them back to Delete. Keys are namespaced by a folder
// argument (albums/, classwork/<schoolId>/, ...).
package blob

import "context"

// Attachment is the reference persisted on an owning document. Each
// attachment is exclusively owned by one document.
type Attachment struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Size        int64  `json:"size,omitempty"`
	ContentType string `json:"mimetype,omitempty"`
}

// Store abstracts the storage backend. Put returns a fetchable URL; a
// document must never be persisted referencing a URL that failed to store.
// Delete is idempotent: removing an already-absent object is not an error.
type Store interface {
	Put(ctx context.Context, folder, name, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, url string) error
}
