package classwork

import (
	"context"
	"log/slog"
	"path"
	"time"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/attach"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/tenant"
)

type Service struct {
	repo    store.Interface[*Classwork]
	manager *attach.Manager
	logger  *slog.Logger
}

func NewService(repo store.Interface[*Classwork], manager *attach.Manager, logger *slog.Logger) *Service {
	return &Service{repo: repo, manager: manager, logger: logger}
}

func folder(schoolID string) string { return path.Join("classwork", schoolID) }

func (s *Service) Create(ctx context.Context, cw *Classwork, files []attach.File) (*Classwork, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	attachments, err := s.manager.Attach(ctx, folder(schoolID), files)
	if err != nil {
		return nil, err
	}
	cw.Attachments = attachments

	created, err := s.repo.Create(ctx, schoolID, cw)
	if err != nil {
		s.logger.Error("classwork create failed after upload, releasing objects", "error", err)
		s.manager.DetachAll(ctx, attachments)
		return nil, err
	}
	return created, nil
}

func (s *Service) List(ctx context.Context, page, limit int, classID string, from, to time.Time) ([]*Classwork, int, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, 0, err
	}
	return s.repo.List(ctx, schoolID, page, limit,
		store.Eq("class_id", classID),
		store.From("date", from),
		store.To("date", to),
	)
}

func (s *Service) ListAllSchools(ctx context.Context, page, limit int) ([]*Classwork, int, error) {
	return s.repo.ListAllSchools(ctx, page, limit)
}

func (s *Service) Get(ctx context.Context, id string) (*Classwork, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, schoolID, id)
}

func (s *Service) Update(ctx context.Context, id string, cw *Classwork, columns ...string) (*Classwork, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, schoolID, id, cw, columns...)
}

// AddAttachments appends uploads to an existing record.
func (s *Service) AddAttachments(ctx context.Context, id string, files []attach.File) (*Classwork, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	cw, err := s.repo.Get(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}

	attachments, err := s.manager.Attach(ctx, folder(schoolID), files)
	if err != nil {
		return nil, err
	}

	cw.Attachments = append(cw.Attachments, attachments...)
	return s.repo.Update(ctx, schoolID, id, cw, "attachments")
}

// RemoveAttachment detaches one attachment and deletes its backing object.
func (s *Service) RemoveAttachment(ctx context.Context, id, attachmentID string) (*Classwork, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	cw, err := s.repo.Get(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}

	remaining, _, err := s.manager.DetachOne(ctx, cw.Attachments, attachmentID)
	if err != nil {
		return nil, err
	}

	cw.Attachments = remaining
	return s.repo.Update(ctx, schoolID, id, cw, "attachments")
}

func (s *Service) Delete(ctx context.Context, id string) (*Classwork, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	deleted, err := s.repo.Delete(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}

	s.manager.DetachAll(ctx, deleted.Attachments)
	deleted.Attachments = nil
	return deleted, nil
}
