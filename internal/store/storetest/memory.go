// Package storetest provides an in-memory store.Interface implementation
// for service and handler tests. It enforces the same tenant scoping and
// uniqueness semantics as the SQL-backed repository, resolving filter
// columns through the models' bun tags.
package storetest

import (
	"context"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/apperr"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store"
)

type Memory[T store.Record] struct {
	mu      sync.Mutex
	cfg     store.Config
	unique  []string // bun column names forming the unique key
	records []T
}

func NewMemory[T store.Record](cfg store.Config, uniqueColumns ...string) *Memory[T] {
	return &Memory[T]{cfg: cfg, unique: uniqueColumns}
}

func (m *Memory[T]) Create(ctx context.Context, schoolID string, rec T) (T, error) {
	var zero T
	if schoolID == "" {
		return zero, apperr.Validation("schoolId", "school id is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	meta := rec.Meta()
	meta.ID = uuid.NewString()
	meta.SchoolID = schoolID
	now := time.Now().UTC()
	meta.CreatedAt = now
	meta.UpdatedAt = now

	if len(m.unique) > 0 {
		for _, existing := range m.records {
			if m.sameUniqueKey(existing, rec) {
				return zero, apperr.Conflict(m.cfg.Name, m.cfg.UniqueFields...)
			}
		}
	}

	m.records = append(m.records, rec)
	return rec, nil
}

func (m *Memory[T]) List(ctx context.Context, schoolID string, page, limit int, filters ...store.Filter) ([]T, int, error) {
	if schoolID == "" {
		return nil, 0, apperr.Validation("schoolId", "school id is required")
	}
	return m.list(&schoolID, page, limit, filters)
}

func (m *Memory[T]) ListAllSchools(ctx context.Context, page, limit int, filters ...store.Filter) ([]T, int, error) {
	return m.list(nil, page, limit, filters)
}

func (m *Memory[T]) list(schoolID *string, page, limit int, filters []store.Filter) ([]T, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	matched := make([]T, 0)
	for _, rec := range m.records {
		if schoolID != nil && rec.Meta().SchoolID != *schoolID {
			continue
		}
		if matchesAll(rec, filters) {
			matched = append(matched, rec)
		}
	}

	total := len(matched)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (m *Memory[T]) Get(ctx context.Context, schoolID, id string) (T, error) {
	var zero T
	if schoolID == "" {
		return zero, apperr.Validation("schoolId", "school id is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rec := range m.records {
		if rec.Meta().ID == id && rec.Meta().SchoolID == schoolID {
			return rec, nil
		}
	}
	return zero, apperr.NotFound(m.cfg.Name)
}

func (m *Memory[T]) Update(ctx context.Context, schoolID, id string, rec T, columns ...string) (T, error) {
	var zero T
	if schoolID == "" {
		return zero, apperr.Validation("schoolId", "school id is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.records {
		if existing.Meta().ID == id && existing.Meta().SchoolID == schoolID {
			for _, col := range columns {
				copyColumn(existing, rec, col)
			}
			existing.Meta().UpdatedAt = time.Now().UTC()
			return existing, nil
		}
	}
	return zero, apperr.NotFound(m.cfg.Name)
}

func (m *Memory[T]) Delete(ctx context.Context, schoolID, id string) (T, error) {
	var zero T
	if schoolID == "" {
		return zero, apperr.Validation("schoolId", "school id is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, rec := range m.records {
		if rec.Meta().ID == id && rec.Meta().SchoolID == schoolID {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return rec, nil
		}
	}
	return zero, apperr.NotFound(m.cfg.Name)
}

func (m *Memory[T]) sameUniqueKey(a, b T) bool {
	for _, col := range m.unique {
		av, aok := columnValue(a, col)
		bv, bok := columnValue(b, col)
		if !aok || !bok || !equalValues(av, bv) {
			return false
		}
	}
	return true
}

func matchesAll[T store.Record](rec T, filters []store.Filter) bool {
	for _, f := range filters {
		if filterSkipped(f) {
			continue
		}
		v, ok := columnValue(rec, f.Column)
		if !ok {
			return false
		}
		switch f.Op {
		case ">=":
			if !timeGTE(v, f.Value) {
				return false
			}
		case "<=":
			if !timeGTE(f.Value, v) {
				return false
			}
		default:
			if !equalValues(v, f.Value) {
				return false
			}
		}
	}
	return true
}

func filterSkipped(f store.Filter) bool {
	if t, ok := f.Value.(time.Time); ok && t.IsZero() {
		return true
	}
	if s, ok := f.Value.(string); ok && s == "" {
		return true
	}
	return false
}

// columnValue resolves a bun column name to the field value, walking
// embedded structs the way bun flattens them.
func columnValue(rec interface{}, column string) (interface{}, bool) {
	v := reflect.ValueOf(rec)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	return fieldByColumn(v, column)
}

func fieldByColumn(v reflect.Value, column string) (interface{}, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			fv := v.Field(i)
			for fv.Kind() == reflect.Ptr {
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				if val, ok := fieldByColumn(fv, column); ok {
					return val, true
				}
			}
			continue
		}
		tag := field.Tag.Get("bun")
		name := strings.Split(tag, ",")[0]
		if name == column {
			return v.Field(i).Interface(), true
		}
	}
	return nil, false
}

func copyColumn(dst, src interface{}, column string) {
	dv := reflect.ValueOf(dst).Elem()
	sv := reflect.ValueOf(src).Elem()
	copyFieldByColumn(dv, sv, column)
}

func copyFieldByColumn(dst, src reflect.Value, column string) bool {
	t := dst.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			if dst.Field(i).Kind() == reflect.Struct {
				if copyFieldByColumn(dst.Field(i), src.Field(i), column) {
					return true
				}
			}
			continue
		}
		tag := field.Tag.Get("bun")
		name := strings.Split(tag, ",")[0]
		if name == column {
			dst.Field(i).Set(src.Field(i))
			return true
		}
	}
	return false
}

func equalValues(a, b interface{}) bool {
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Equal(bt)
		}
	}
	return reflect.DeepEqual(a, b)
}

// timeGTE reports a >= b for time values; non-time values fall back to
// equality.
func timeGTE(a, b interface{}) bool {
	at, aok := a.(time.Time)
	bt, bok := b.(time.Time)
	if aok && bok {
		return !at.Before(bt)
	}
	return reflect.DeepEqual(a, b)
}
