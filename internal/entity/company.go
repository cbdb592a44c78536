package entity

// Company owns jobs and is looked up by its handle.
type Company struct {
	Handle       string  `gorm:"primaryKey" json:"handle"`
	Name         string  `gorm:"not null;unique" json:"name"`
	Description  string  `gorm:"not null" json:"description"`
	NumEmployees *int    `json:"num_employees"`
	LogoURL      *string `gorm:"column:logo_url" json:"logo_url"`
}

func (Company) TableName() string {
	return "companies"
}
