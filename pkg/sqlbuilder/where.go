package sqlbuilder

import (
	"fmt"
	"strings"
)

// Condition is one optional term of a WHERE conjunction.
type Condition struct {
	Active bool
	// Format is the SQL fragment. When Bound, it holds exactly one %s verb
	// that receives the placeholder for Value.
	Format string
	Value  interface{}
	Bound  bool
}

// Bind builds a condition that binds value, e.g. Bind(ok, "salary >= %s", 100).
func Bind(active bool, format string, value interface{}) Condition {
	return Condition{Active: active, Format: format, Value: value, Bound: true}
}

// Literal builds a condition without parameters, e.g. Literal(ok, "equity > 0").
func Literal(active bool, sql string) Condition {
	return Condition{Active: active, Format: sql}
}

// Where joins the active conditions with AND, numbering placeholders in the
// order conditions are given. With nothing active the clause is empty, which
// means "match every row". The returned text has no WHERE keyword.
func Where(conds ...Condition) Clause {
	b := newBinder(len(conds))
	parts := make([]string, 0, len(conds))
	for _, c := range conds {
		if !c.Active {
			continue
		}
		if !c.Bound {
			parts = append(parts, c.Format)
			continue
		}
		parts = append(parts, fmt.Sprintf(c.Format, b.bind(c.Value)))
	}

	return Clause{Text: strings.Join(parts, " AND "), Values: b.values}
}
