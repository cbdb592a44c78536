package repository

import (
	"testing"

	"golang-jobly/internal/api/dto"

	"github.com/stretchr/testify/assert"
)

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestComposeJobSearch(t *testing.T) {
	tests := []struct {
		name       string
		param      dto.JobSearchParam
		wantText   string
		wantValues []interface{}
	}{
		{
			name:       "none",
			param:      dto.JobSearchParam{},
			wantText:   "",
			wantValues: []interface{}{},
		},
		{
			name:       "title",
			param:      dto.JobSearchParam{Title: strPtr("1")},
			wantText:   "title ILIKE $1",
			wantValues: []interface{}{"%1%"},
		},
		{
			name:       "min salary",
			param:      dto.JobSearchParam{MinSalary: intPtr(200)},
			wantText:   "salary >= $1",
			wantValues: []interface{}{200},
		},
		{
			name:       "equity",
			param:      dto.JobSearchParam{HasEquity: boolPtr(true)},
			wantText:   "equity > 0",
			wantValues: []interface{}{},
		},
		{
			name:       "title and min salary",
			param:      dto.JobSearchParam{Title: strPtr("eng"), MinSalary: intPtr(50)},
			wantText:   "title ILIKE $1 AND salary >= $2",
			wantValues: []interface{}{"%eng%", 50},
		},
		{
			name:       "title and equity",
			param:      dto.JobSearchParam{Title: strPtr("eng"), HasEquity: boolPtr(true)},
			wantText:   "title ILIKE $1 AND equity > 0",
			wantValues: []interface{}{"%eng%"},
		},
		{
			name:       "min salary and equity",
			param:      dto.JobSearchParam{MinSalary: intPtr(250), HasEquity: boolPtr(true)},
			wantText:   "salary >= $1 AND equity > 0",
			wantValues: []interface{}{250},
		},
		{
			name:       "all",
			param:      dto.JobSearchParam{Title: strPtr("1"), MinSalary: intPtr(250), HasEquity: boolPtr(true)},
			wantText:   "title ILIKE $1 AND salary >= $2 AND equity > 0",
			wantValues: []interface{}{"%1%", 250},
		},
		{
			name:       "zero min salary is active",
			param:      dto.JobSearchParam{MinSalary: intPtr(0)},
			wantText:   "salary >= $1",
			wantValues: []interface{}{0},
		},
		{
			name:       "equity false adds nothing",
			param:      dto.JobSearchParam{MinSalary: intPtr(10), HasEquity: boolPtr(false)},
			wantText:   "salary >= $1",
			wantValues: []interface{}{10},
		},
		{
			name:       "empty title adds nothing",
			param:      dto.JobSearchParam{Title: strPtr(""), HasEquity: boolPtr(true)},
			wantText:   "equity > 0",
			wantValues: []interface{}{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComposeJobSearch(tt.param)
			assert.Equal(t, tt.wantText, got.Text)
			assert.Equal(t, tt.wantValues, got.Values)

			again := ComposeJobSearch(tt.param)
			assert.Equal(t, got, again)
		})
	}
}
