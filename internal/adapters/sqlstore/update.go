package sqlstore

import (
	"encoding/json"
	"strings"
	"time"
)

// setClause accumulates the column assignments of a partial update.
// Table and column names come from constants in this package only;
// caller data travels exclusively as bound arguments.
type setClause struct {
	columns []string
	values  []any
}

func (s *setClause) add(column string, value any) {
	s.columns = append(s.columns, column+" = ?")
	s.values = append(s.values, value)
}

func (s *setClause) empty() bool {
	return len(s.columns) == 0
}

// statement renders "UPDATE <table> SET ... WHERE id = ?".
func (s *setClause) statement(table string) string {
	return "UPDATE " + table + " SET " + strings.Join(s.columns, ", ") + " WHERE id = ?"
}

// args returns the bound values followed by the row ID.
func (s *setClause) args(id int64) []any {
	return append(append([]any{}, s.values...), id)
}

// Nullable column helpers. Each maps the Go "absent" value to SQL NULL.

func nullTime(t *time.Time) any {
	if t == nil || t.IsZero() {
		return nil
	}
	return t.UTC()
}

func nullJSON(raw json.RawMessage) any {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return string(raw)
}

func nullString(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

func nullInt64(v *int64) any {
	if v == nil || *v == 0 {
		return nil
	}
	return *v
}
