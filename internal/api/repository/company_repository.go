package repository

import (
	"context"
	"fmt"
	"time"

	"golang-jobly/internal/entity"
	"golang-jobly/pkg/apperror"

	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

// CompanyRepository defines the read access to companies needed by jobs.
type CompanyRepository interface {
	FindByHandle(ctx context.Context, handle string) (*entity.Company, error)
}

// NewCompanyRepository creates a new GORM-based company repository.
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

type companyRepository struct {
	db *gorm.DB
}

// FindByHandle retrieves a company by its handle.
func (r *companyRepository) FindByHandle(ctx context.Context, handle string) (*entity.Company, error) {
	var company entity.Company
	res := r.db.WithContext(ctx).Raw(`
		SELECT handle, name, description, num_employees, logo_url
		FROM companies
		WHERE handle = $1`, handle).Scan(&company)
	if res.Error != nil {
		return nil, fmt.Errorf("find company %s: %w", handle, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperror.NotFound("no company: %s", handle)
	}
	return &company, nil
}

// NewCachedCompanyRepository keeps found companies in memory for expiration.
// Misses and errors are not cached.
func NewCachedCompanyRepository(next CompanyRepository, expiration, cleanupInterval time.Duration) CompanyRepository {
	return &cachedCompanyRepository{
		next:  next,
		cache: cache.New(expiration, cleanupInterval),
	}
}

type cachedCompanyRepository struct {
	next  CompanyRepository
	cache *cache.Cache
}

func (r *cachedCompanyRepository) FindByHandle(ctx context.Context, handle string) (*entity.Company, error) {
	if v, ok := r.cache.Get(handle); ok {
		company := v.(entity.Company)
		return &company, nil
	}

	company, err := r.next.FindByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}
	r.cache.SetDefault(handle, *company)
	return company, nil
}
