package dto

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"golang-jobly/pkg/apperror"
)

// Query keys accepted by the job search endpoint.
const (
	QueryTitle     = "title"
	QueryMinSalary = "minSalary"
	QueryHasEquity = "hasEquity"
)

// JobSearchParam holds the optional job search filters. A nil pointer means
// the filter is absent; MinSalary of 0 is an active filter and HasEquity
// only constrains results when it is true.
type JobSearchParam struct {
	Title     *string
	MinSalary *int
	HasEquity *bool
}

// ParseJobSearchParam reads the search filters from a query string.
func ParseJobSearchParam(q url.Values) (JobSearchParam, error) {
	var p JobSearchParam

	for key := range q {
		switch key {
		case QueryTitle, QueryMinSalary, QueryHasEquity:
		default:
			return p, apperror.InvalidArgument("unknown filter %q", key)
		}
	}

	if q.Has(QueryTitle) {
		if title := strings.TrimSpace(q.Get(QueryTitle)); title != "" {
			p.Title = &title
		}
	}

	if q.Has(QueryMinSalary) {
		raw := strings.TrimSpace(q.Get(QueryMinSalary))
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
				return p, apperror.InvalidArgument("minSalary is out of range")
			}
			return p, apperror.InvalidArgument("minSalary must be a whole number, got %q", raw)
		}
		if parsed < 0 {
			return p, apperror.InvalidArgument("minSalary must not be negative")
		}
		minSalary := int(parsed)
		p.MinSalary = &minSalary
	}

	if q.Has(QueryHasEquity) {
		raw := strings.TrimSpace(q.Get(QueryHasEquity))
		hasEquity, err := strconv.ParseBool(raw)
		if err != nil {
			return p, apperror.InvalidArgument("hasEquity must be true or false, got %q", raw)
		}
		p.HasEquity = &hasEquity
	}

	return p, nil
}
