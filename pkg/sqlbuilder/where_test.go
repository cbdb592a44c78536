package sqlbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhere(t *testing.T) {
	tests := []struct {
		name       string
		conds      []Condition
		wantText   string
		wantValues []interface{}
	}{
		{
			name:       "no conditions",
			wantText:   "",
			wantValues: []interface{}{},
		},
		{
			name: "all inactive",
			conds: []Condition{
				Bind(false, "a = %s", 1),
				Literal(false, "b > 0"),
			},
			wantText:   "",
			wantValues: []interface{}{},
		},
		{
			name: "literal only",
			conds: []Condition{
				Bind(false, "a = %s", 1),
				Literal(true, "b > 0"),
			},
			wantText:   "b > 0",
			wantValues: []interface{}{},
		},
		{
			name: "skipped condition does not consume a placeholder",
			conds: []Condition{
				Bind(false, "a = %s", 1),
				Bind(true, "b = %s", 2),
				Literal(true, "c > 0"),
				Bind(true, "d <> %s", 4),
			},
			wantText:   "b = $1 AND c > 0 AND d <> $2",
			wantValues: []interface{}{2, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Where(tt.conds...)
			assert.Equal(t, tt.wantText, got.Text)
			assert.Equal(t, tt.wantValues, got.Values)
			assert.Equal(t, tt.wantText == "", got.IsEmpty())
			assertBindingContract(t, got)
		})
	}
}

func TestWhere_LiteralKeepsPercentSigns(t *testing.T) {
	got := Where(Literal(true, "code LIKE 'A%'"))

	assert.Equal(t, "code LIKE 'A%'", got.Text)
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "$1", Placeholder(1))
	assert.Equal(t, "$12", Placeholder(12))
	assert.Equal(t, "$1", Clause{}.Next())
}
