package entity

import "github.com/shopspring/decimal"

// Job is a position posted by a company.
type Job struct {
	ID            int                 `gorm:"primaryKey" json:"id"`
	Title         string              `gorm:"not null" json:"title"`
	Salary        *int                `json:"salary"`
	Equity        decimal.NullDecimal `gorm:"type:numeric" json:"equity"`
	CompanyHandle string              `gorm:"not null;index" json:"company_handle"`
}

func (Job) TableName() string {
	return "jobs"
}
