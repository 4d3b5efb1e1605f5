package store

import (
	"time"

	"github.com/uptrace/bun"
)

// Filter is an equality or range predicate on a single column. Keeping it
// a plain value rather than a query closure lets the in-memory test store
// interpret the same filters the SQL store does.
type Filter struct {
	Column string
	Op     string
	Value  interface{}
}

func Eq(column string, value interface{}) Filter {
	return Filter{Column: column, Op: "=", Value: value}
}

// From is a lower bound (inclusive). A zero time is a no-op so handlers
// can pass optional query parameters through unconditionally.
func From(column string, t time.Time) Filter {
	return Filter{Column: column, Op: ">=", Value: t}
}

// To is an upper bound (inclusive).
func To(column string, t time.Time) Filter {
	return Filter{Column: column, Op: "<=", Value: t}
}

func (f Filter) skip() bool {
	if t, ok := f.Value.(time.Time); ok && t.IsZero() {
		return true
	}
	if s, ok := f.Value.(string); ok && s == "" {
		return true
	}
	return false
}

func (f Filter) apply(q *bun.SelectQuery) *bun.SelectQuery {
	if f.skip() {
		return q
	}
	switch f.Op {
	case ">=":
		return q.Where("? >= ?", bun.Ident(f.Column), f.Value)
	case "<=":
		return q.Where("? <= ?", bun.Ident(f.Column), f.Value)
	default:
		return q.Where("? = ?", bun.Ident(f.Column), f.Value)
	}
}
