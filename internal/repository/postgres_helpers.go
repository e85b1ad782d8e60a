package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
)

// setBuilder accumulates "column = $n" pairs with a matching ordered
// parameter list. Column names are always literals from this package; only
// values travel as parameters, never interpolated into the query text.
type setBuilder struct {
	assignments []string
	args        []any
}

func (b *setBuilder) add(column string, value any) {
	b.args = append(b.args, value)
	b.assignments = append(b.assignments, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// addExpr appends a raw assignment that needs no parameter (e.g. NOW()).
func (b *setBuilder) addExpr(assignment string) {
	b.assignments = append(b.assignments, assignment)
}

func (b *setBuilder) empty() bool { return len(b.assignments) == 0 }

func (b *setBuilder) clause() string { return strings.Join(b.assignments, ", ") }

// next returns the placeholder index for the argument appended after the
// assignments (typically the WHERE id parameter).
func (b *setBuilder) next() int { return len(b.args) + 1 }

func itoa(n int) string { return strconv.Itoa(n) }

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// nullString maps nil or the empty string to SQL NULL.
func nullString(p *string) sql.NullString {
	if p == nil || *p == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func nullTime(p *time.Time) sql.NullTime {
	if p == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *p, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
