package repository

import (
	"golang-jobly/internal/api/dto"
	"golang-jobly/pkg/sqlbuilder"
)

// ComposeJobSearch builds the WHERE conjunction for a job search. Filters are
// applied in the fixed order title, minimum salary, equity; an empty clause
// matches every job.
func ComposeJobSearch(param dto.JobSearchParam) sqlbuilder.Clause {
	var (
		title     string
		minSalary int
	)
	if param.Title != nil {
		title = "%" + *param.Title + "%"
	}
	if param.MinSalary != nil {
		minSalary = *param.MinSalary
	}

	return sqlbuilder.Where(
		sqlbuilder.Bind(param.Title != nil && *param.Title != "", "title ILIKE %s", title),
		sqlbuilder.Bind(param.MinSalary != nil, "salary >= %s", minSalary),
		sqlbuilder.Literal(param.HasEquity != nil && *param.HasEquity, "equity > 0"),
	)
}
