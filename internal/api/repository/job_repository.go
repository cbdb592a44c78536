package repository

import (
	"context"
	"errors"
	"fmt"

	"golang-jobly/internal/api/dto"
	"golang-jobly/internal/entity"
	"golang-jobly/pkg/apperror"
	"golang-jobly/pkg/sqlbuilder"

	"gorm.io/gorm"
)

const jobColumns = "id, title, salary, equity, company_handle"

// JobFields maps the field names used in job updates to jobs columns.
var JobFields = sqlbuilder.FieldMap{
	"companyHandle": "company_handle",
}

// JobRepository defines the interface for job data operations.
type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) error
	FindAll(ctx context.Context, param dto.JobSearchParam) ([]entity.Job, error)
	FindByID(ctx context.Context, id int) (*entity.Job, error)
	Update(ctx context.Context, id int, req sqlbuilder.UpdateRequest) (*entity.Job, error)
	Delete(ctx context.Context, id int) error
}

// NewJobRepository creates a new GORM-based job repository.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

type jobRepository struct {
	db *gorm.DB
}

// Create inserts job and refreshes it with the stored row, including its ID.
func (r *jobRepository) Create(ctx context.Context, job *entity.Job) error {
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING `+jobColumns,
		job.Title, job.Salary, job.Equity, job.CompanyHandle,
	).Scan(job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperror.InvalidArgument("no company: %s", job.CompanyHandle)
		}
		return fmt.Errorf("create job: %w", err)
	}
	return nil
}

// FindAll retrieves the jobs matching param, ordered by title.
func (r *jobRepository) FindAll(ctx context.Context, param dto.JobSearchParam) ([]entity.Job, error) {
	where := ComposeJobSearch(param)

	query := "SELECT " + jobColumns + " FROM jobs"
	if !where.IsEmpty() {
		query += " WHERE " + where.Text
	}
	query += " ORDER BY title, id"

	jobs := []entity.Job{}
	if err := r.db.WithContext(ctx).Raw(query, where.Values...).Scan(&jobs).Error; err != nil {
		return nil, fmt.Errorf("find jobs: %w", err)
	}
	return jobs, nil
}

// FindByID retrieves a job by its ID.
func (r *jobRepository) FindByID(ctx context.Context, id int) (*entity.Job, error) {
	var job entity.Job
	res := r.db.WithContext(ctx).Raw("SELECT "+jobColumns+" FROM jobs WHERE id = $1", id).Scan(&job)
	if res.Error != nil {
		return nil, fmt.Errorf("find job %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperror.NotFound("no job: %d", id)
	}
	return &job, nil
}

// Update applies a partial update and returns the job as stored afterwards.
func (r *jobRepository) Update(ctx context.Context, id int, req sqlbuilder.UpdateRequest) (*entity.Job, error) {
	set, err := sqlbuilder.CompileUpdate(req, JobFields)
	if err != nil {
		return nil, err
	}

	query := "UPDATE jobs SET " + set.Text + " WHERE id = " + set.Next() + " RETURNING " + jobColumns
	args := append(set.Values, id)

	var job entity.Job
	res := r.db.WithContext(ctx).Raw(query, args...).Scan(&job)
	if res.Error != nil {
		return nil, fmt.Errorf("update job %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperror.NotFound("no job: %d", id)
	}
	return &job, nil
}

// Delete removes a job by its ID.
func (r *jobRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Exec("DELETE FROM jobs WHERE id = $1", id)
	if res.Error != nil {
		return fmt.Errorf("delete job %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("no job: %d", id)
	}
	return nil
}
