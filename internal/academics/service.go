package academics

import (
	"context"
	"log/slog"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/tenant"
)

// Service covers the three small academic reference entities. Their CRUD
// is entirely the shared repository's; only tenant resolution lives here.
type Service struct {
	classes   store.Interface[*Class]
	sessions  store.Interface[*Session]
	examTypes store.Interface[*ExamType]
	logger    *slog.Logger
}

func NewService(classes store.Interface[*Class], sessions store.Interface[*Session], examTypes store.Interface[*ExamType], logger *slog.Logger) *Service {
	return &Service{classes: classes, sessions: sessions, examTypes: examTypes, logger: logger}
}

func (s *Service) CreateClass(ctx context.Context, c *Class) (*Class, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.classes.Create(ctx, schoolID, c)
}

func (s *Service) ListClasses(ctx context.Context, page, limit int, name string) ([]*Class, int, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, 0, err
	}
	return s.classes.List(ctx, schoolID, page, limit, store.Eq("name", name))
}

func (s *Service) ListClassesAllSchools(ctx context.Context, page, limit int) ([]*Class, int, error) {
	return s.classes.ListAllSchools(ctx, page, limit)
}

func (s *Service) GetClass(ctx context.Context, id string) (*Class, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.classes.Get(ctx, schoolID, id)
}

func (s *Service) UpdateClass(ctx context.Context, id string, c *Class, columns ...string) (*Class, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.classes.Update(ctx, schoolID, id, c, columns...)
}

func (s *Service) DeleteClass(ctx context.Context, id string) (*Class, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.classes.Delete(ctx, schoolID, id)
}

func (s *Service) CreateSession(ctx context.Context, se *Session) (*Session, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.sessions.Create(ctx, schoolID, se)
}

func (s *Service) ListSessions(ctx context.Context, page, limit int) ([]*Session, int, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, 0, err
	}
	return s.sessions.List(ctx, schoolID, page, limit)
}

func (s *Service) ListSessionsAllSchools(ctx context.Context, page, limit int) ([]*Session, int, error) {
	return s.sessions.ListAllSchools(ctx, page, limit)
}

func (s *Service) GetSession(ctx context.Context, id string) (*Session, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.sessions.Get(ctx, schoolID, id)
}

func (s *Service) UpdateSession(ctx context.Context, id string, se *Session, columns ...string) (*Session, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.sessions.Update(ctx, schoolID, id, se, columns...)
}

func (s *Service) DeleteSession(ctx context.Context, id string) (*Session, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.sessions.Delete(ctx, schoolID, id)
}

func (s *Service) CreateExamType(ctx context.Context, et *ExamType) (*ExamType, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.examTypes.Create(ctx, schoolID, et)
}

func (s *Service) ListExamTypes(ctx context.Context, page, limit int) ([]*ExamType, int, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, 0, err
	}
	return s.examTypes.List(ctx, schoolID, page, limit)
}

func (s *Service) ListExamTypesAllSchools(ctx context.Context, page, limit int) ([]*ExamType, int, error) {
	return s.examTypes.ListAllSchools(ctx, page, limit)
}

func (s *Service) GetExamType(ctx context.Context, id string) (*ExamType, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.examTypes.Get(ctx, schoolID, id)
}

func (s *Service) UpdateExamType(ctx context.Context, id string, et *ExamType, columns ...string) (*ExamType, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.examTypes.Update(ctx, schoolID, id, et, columns...)
}

func (s *Service) DeleteExamType(ctx context.Context, id string) (*ExamType, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.examTypes.Delete(ctx, schoolID, id)
}
