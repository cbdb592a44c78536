// Package sqlbuilder compiles sparse updates and optional filters into
// PostgreSQL clause fragments with positional placeholders ($1, $2, ...).
//
// Every Clause it returns is self-contained: Values[i] binds placeholder
// $i+1, numbering starts at 1 and is contiguous, and len(Values) equals the
// highest placeholder in Text. All functions are pure and safe for
// concurrent use.
package sqlbuilder

import "strconv"

// Clause is a SET list or WHERE conjunction together with its bound values.
type Clause struct {
	Text   string
	Values []interface{}
}

// IsEmpty reports whether the clause contributes nothing to a statement.
func (c Clause) IsEmpty() bool {
	return c.Text == ""
}

// Next returns the first placeholder not used by the clause, for callers
// that append their own parameters after it.
func (c Clause) Next() string {
	return Placeholder(len(c.Values) + 1)
}

// Placeholder renders the positional marker for the n-th parameter.
func Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

// binder hands out placeholders in the order values are bound.
type binder struct {
	values []interface{}
}

func newBinder(capacity int) *binder {
	return &binder{values: make([]interface{}, 0, capacity)}
}

func (b *binder) bind(v interface{}) string {
	b.values = append(b.values, v)
	return Placeholder(len(b.values))
}
