package sqlbuilder

import (
	"strings"

	"golang-jobly/pkg/apperror"

	"github.com/lib/pq"
)

// ErrNoFields is returned when an update names no fields.
var ErrNoFields = apperror.InvalidArgument("no fields to update")

// FieldMap maps logical field names to physical column names.
type FieldMap map[string]string

// Column returns the column for field, or field itself when unmapped.
func (m FieldMap) Column(field string) string {
	if col, ok := m[field]; ok && col != "" {
		return col
	}
	return field
}

// Assignment sets one field to a new value.
type Assignment struct {
	Field string
	Value interface{}
}

// UpdateRequest is the ordered set of fields to change. The order fixes
// placeholder numbering.
type UpdateRequest []Assignment

// Set appends field, or overwrites its value in place if already present.
func (r *UpdateRequest) Set(field string, value interface{}) {
	for i := range *r {
		if (*r)[i].Field == field {
			(*r)[i].Value = value
			return
		}
	}
	*r = append(*r, Assignment{Field: field, Value: value})
}

// Fields lists the field names in order.
func (r UpdateRequest) Fields() []string {
	fields := make([]string, len(r))
	for i, a := range r {
		fields[i] = a.Field
	}
	return fields
}

// CompileUpdate turns req into a SET list such as
// `"first_name"=$1, "last_name"=$2` and the values in the same order.
func CompileUpdate(req UpdateRequest, fields FieldMap) (Clause, error) {
	if len(req) == 0 {
		return Clause{}, ErrNoFields
	}

	b := newBinder(len(req))
	seen := make(map[string]struct{}, len(req))
	cols := make([]string, len(req))
	for i, a := range req {
		col := fields.Column(a.Field)
		if _, dup := seen[col]; dup {
			return Clause{}, apperror.InvalidArgument("field %q assigned more than once", a.Field)
		}
		seen[col] = struct{}{}
		cols[i] = pq.QuoteIdentifier(col) + "=" + b.bind(a.Value)
	}

	return Clause{Text: strings.Join(cols, ", "), Values: b.values}, nil
}
