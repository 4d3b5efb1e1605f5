package httputil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// PageParams reads ?page= and ?limit= with the conventional defaults.
func PageParams(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

// DateParam parses an RFC 3339 or YYYY-MM-DD query parameter. A missing
// or unparsable value yields the zero time.
func DateParam(r *http.Request, name string) time.Time {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	t, _ := time.Parse("2006-01-02", raw)
	return t
}

// DecodePartial unmarshals a partial-update body into dst and returns the
// database columns for exactly the fields the client sent, resolved
// through the field map (json name -> column). Unknown fields are
// rejected; a tenant key in the body is ignored entirely, the verified
// context value wins.
func DecodePartial(body io.Reader, dst interface{}, fields map[string]string) ([]string, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var provided map[string]json.RawMessage
	if err := json.Unmarshal(raw, &provided); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}

	columns := make([]string, 0, len(provided))
	for name := range provided {
		if name == "schoolId" {
			continue
		}
		column, ok := fields[name]
		if !ok {
			return nil, fmt.Errorf("unknown field %q", name)
		}
		columns = append(columns, column)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}
	return columns, nil
}
