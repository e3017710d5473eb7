// Package sqlbuild renders parameterized PostgreSQL statements. Identifiers
// come from compiled-in schemas; every value is bound as a $n placeholder.
package sqlbuild

import (
	"strconv"
	"strings"

	"fittrack/internal/domain"
)

// Cond is an equality predicate of a WHERE clause.
type Cond struct {
	Column string
	Value  any
}

// Eq returns the predicate column = value.
func Eq(column string, value any) Cond { return Cond{Column: column, Value: value} }

// Insert renders INSERT INTO table (...) VALUES (...) RETURNING returning.
// An empty returning column omits the RETURNING clause.
func Insert(table, returning string, fields []domain.Assignment) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, domain.ErrEmptyUpdate
	}
	cols := make([]string, len(fields))
	marks := make([]string, len(fields))
	args := make([]any, len(fields))
	for i, f := range fields {
		cols[i] = f.Column
		marks[i] = placeholder(i + 1)
		args[i] = f.Value
	}
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(table)
	b.WriteString(" (")
	b.WriteString(strings.Join(cols, ", "))
	b.WriteString(") VALUES (")
	b.WriteString(strings.Join(marks, ", "))
	b.WriteString(")")
	if returning != "" {
		b.WriteString(" RETURNING ")
		b.WriteString(returning)
	}
	return b.String(), args, nil
}

// Update renders UPDATE table SET c1 = $1, ... WHERE k = $n. Assignments are
// bound in the order given and the key values last. No assignments is
// domain.ErrEmptyUpdate and no statement is produced.
func Update(table string, fields []domain.Assignment, where ...Cond) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, domain.ErrEmptyUpdate
	}
	args := make([]any, 0, len(fields)+len(where))
	sets := make([]string, len(fields))
	for i, f := range fields {
		args = append(args, f.Value)
		sets[i] = f.Column + " = " + placeholder(len(args))
	}
	q := "UPDATE " + table + " SET " + strings.Join(sets, ", ")
	if len(where) > 0 {
		conds := make([]string, len(where))
		for i, c := range where {
			args = append(args, c.Value)
			conds[i] = c.Column + " = " + placeholder(len(args))
		}
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	return q, args, nil
}

// Select accumulates the predicates of a filtered read.
type Select struct {
	base    string
	conds   []string
	args    []any
	orderBy string
	limit   int
}

// From starts a query from base, a SELECT ... FROM ... without WHERE.
func From(base string) *Select {
	return &Select{base: base}
}

// Where appends "expr op $n". Predicates render in call order joined by AND.
func (s *Select) Where(expr, op string, arg any) *Select {
	s.args = append(s.args, arg)
	s.conds = append(s.conds, expr+" "+op+" "+placeholder(len(s.args)))
	return s
}

// OrderBy sets the ORDER BY clause.
func (s *Select) OrderBy(clause string) *Select {
	s.orderBy = clause
	return s
}

// Limit bounds the result; zero means unbounded.
func (s *Select) Limit(n int) *Select {
	s.limit = n
	return s
}

// SQL returns the statement and its arguments.
func (s *Select) SQL() (string, []any) {
	var b strings.Builder
	b.WriteString(s.base)
	args := append([]any(nil), s.args...)
	if len(s.conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(s.conds, " AND "))
	}
	if s.orderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(s.orderBy)
	}
	if s.limit > 0 {
		args = append(args, s.limit)
		b.WriteString(" LIMIT ")
		b.WriteString(placeholder(len(args)))
	}
	return b.String(), args
}

func placeholder(n int) string { return "$" + strconv.Itoa(n) }
