// Package attach coordinates the lifecycle of file attachments: uploads
// when a parent document is created or extended, and object deletion when
// an attachment or its parent goes away.
package attach

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/apperr"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/blob"
)

// File is one incoming upload, already read off the multipart body.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

type Manager struct {
	store  blob.Store
	logger *slog.Logger
}

func NewManager(store blob.Store, logger *slog.Logger) *Manager {
	return &Manager{store: store, logger: logger}
}

// Attach uploads every file concurrently and returns one attachment record
// per file, in input order. If any upload fails the already-stored objects
// are rolled back best-effort and no records are returned, so a parent is
// never persisted half-attached.
func (m *Manager) Attach(ctx context.Context, folder string, files []File) ([]blob.Attachment, error) {
	if len(files) == 0 {
		return nil, nil
	}

	atts := make([]blob.Attachment, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			url, err := m.store.Put(gctx, folder, f.Name, f.ContentType, f.Data)
			if err != nil {
				return err
			}
			atts[i] = blob.Attachment{
				ID:          uuid.NewString(),
				Name:        f.Name,
				URL:         url,
				Size:        int64(len(f.Data)),
				ContentType: f.ContentType,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		m.rollback(ctx, atts)
		return nil, err
	}
	return atts, nil
}

// DetachOne removes the attachment with the given id from the list and
// deletes its backing object. The shortened list is returned. A storage
// delete failure is logged, not surfaced: the reference is gone either way
// and the delete is idempotent.
func (m *Manager) DetachOne(ctx context.Context, atts []blob.Attachment, id string) ([]blob.Attachment, blob.Attachment, error) {
	for i, a := range atts {
		if a.ID == id {
			if err := m.store.Delete(ctx, a.URL); err != nil {
				m.logger.Error("failed to delete attachment object", "url", a.URL, "error", err)
			}
			remaining := append(append([]blob.Attachment{}, atts[:i]...), atts[i+1:]...)
			return remaining, a, nil
		}
	}
	return atts, blob.Attachment{}, apperr.NotFound("attachment")
}

// DetachAll deletes every backing object. Individual failures are logged
// and do not abort the remaining deletions.
func (m *Manager) DetachAll(ctx context.Context, atts []blob.Attachment) {
	for _, a := range atts {
		if err := m.store.Delete(ctx, a.URL); err != nil {
			m.logger.Error("failed to delete attachment object", "url", a.URL, "error", err)
		}
	}
}

// rollback removes whatever made it to the store before a failed Attach.
// Failures here only leave orphaned objects, so they are logged and
// swallowed.
func (m *Manager) rollback(ctx context.Context, atts []blob.Attachment) {
	for _, a := range atts {
		if a.URL == "" {
			continue
		}
		if err := m.store.Delete(ctx, a.URL); err != nil {
			m.logger.Error("failed to roll back uploaded object", "url", a.URL, "error", err)
		}
	}
}
