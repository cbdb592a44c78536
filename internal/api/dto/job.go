package dto

import (
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var maxEquity = decimal.NewFromInt(1)

// MaxSalary is the largest salary the jobs.salary INTEGER column holds.
const MaxSalary = math.MaxInt32

// CreateJobRequest is the DTO for creating a new job.
type CreateJobRequest struct {
	Title         string           `json:"title"`
	Salary        *int             `json:"salary"`
	Equity        *decimal.Decimal `json:"equity" swaggertype:"string"`
	CompanyHandle string           `json:"companyHandle"`
}

// Validate checks the fields a job cannot be stored without.
func (r *CreateJobRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title must not be empty")
	}
	if strings.TrimSpace(r.CompanyHandle) == "" {
		return errors.New("companyHandle must not be empty")
	}
	return validateCompensation(r.Salary, r.Equity)
}

// UpdateJobRequest is the DTO for a partial job update. Absent fields are
// left unchanged; the company a job belongs to cannot be changed.
type UpdateJobRequest struct {
	Title  *string          `json:"title"`
	Salary *int             `json:"salary"`
	Equity *decimal.Decimal `json:"equity" swaggertype:"string"`
}

func (r *UpdateJobRequest) Validate() error {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return errors.New("title must not be empty")
	}
	return validateCompensation(r.Salary, r.Equity)
}

func validateCompensation(salary *int, equity *decimal.Decimal) error {
	if salary != nil && *salary < 0 {
		return errors.New("salary must not be negative")
	}
	if salary != nil && *salary > MaxSalary {
		return errors.New("salary is too large")
	}
	if equity != nil && (equity.IsNegative() || equity.GreaterThan(maxEquity)) {
		return errors.New("equity must be between 0 and 1")
	}
	return nil
}

// CompanyResponse is the company attached to a single job lookup.
type CompanyResponse struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

// JobResponse is the DTO for API responses containing job details.
// A job fetched by ID carries Company instead of CompanyHandle.
type JobResponse struct {
	ID            int                 `json:"id"`
	Title         string              `json:"title"`
	Salary        *int                `json:"salary"`
	Equity        decimal.NullDecimal `json:"equity" swaggertype:"string"`
	CompanyHandle string              `json:"companyHandle,omitempty"`
	Company       *CompanyResponse    `json:"company,omitempty"`
}

// JobEnvelope wraps a single job.
type JobEnvelope struct {
	Job *JobResponse `json:"job"`
}

// JobListResponse wraps a search result.
type JobListResponse struct {
	Jobs []*JobResponse `json:"jobs"`
}

// DeleteJobResponse reports the id of a removed job.
type DeleteJobResponse struct {
	Deleted int `json:"deleted"`
}
