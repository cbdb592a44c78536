package service

import (
	"context"
	"time"

	"golang-jobly/internal/api/dto"
	"golang-jobly/internal/api/event"
	"golang-jobly/internal/api/repository"
	"golang-jobly/internal/entity"
	"golang-jobly/pkg/apperror"
	"golang-jobly/pkg/logger"
	"golang-jobly/pkg/sqlbuilder"

	"github.com/shopspring/decimal"
)

// JobService defines the interface for managing jobs.
type JobService interface {
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	SearchJobs(ctx context.Context, param dto.JobSearchParam) ([]*dto.JobResponse, error)
	GetJobByID(ctx context.Context, id int) (*dto.JobResponse, error)
	UpdateJob(ctx context.Context, id int, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	DeleteJob(ctx context.Context, id int) error
}

// NewJobService creates a new job service.
func NewJobService(jobRepo repository.JobRepository, companyRepo repository.CompanyRepository, publisher event.Publisher, logger *logger.Logger) JobService {
	return &jobService{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

type jobService struct {
	jobRepo     repository.JobRepository
	companyRepo repository.CompanyRepository
	publisher   event.Publisher
	logger      *logger.Logger
	now         func() time.Time
}

// CreateJob stores a new job.
func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.InvalidArgument("%s", err.Error())
	}

	job := &entity.Job{
		Title:         req.Title,
		Salary:        req.Salary,
		CompanyHandle: req.CompanyHandle,
	}
	if req.Equity != nil {
		job.Equity = decimal.NewNullDecimal(*req.Equity)
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		if !apperror.IsInvalidArgument(err) {
			s.logger.Error("Failed to create job", logger.ErrorField(err), logger.Field("company_handle", req.CompanyHandle))
		}
		return nil, err
	}

	s.logger.Info("Job created successfully", logger.Field("job_id", job.ID))
	s.publish(ctx, event.JobEvent{Type: event.TypeJobCreated, JobID: job.ID})
	return mapToJobResponse(job), nil
}

// SearchJobs retrieves the jobs matching the optional filters.
func (s *jobService) SearchJobs(ctx context.Context, param dto.JobSearchParam) ([]*dto.JobResponse, error) {
	jobs, err := s.jobRepo.FindAll(ctx, param)
	if err != nil {
		s.logger.Error("Failed to search jobs", logger.ErrorField(err))
		return nil, err
	}

	jobResponses := make([]*dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		jobResponses = append(jobResponses, mapToJobResponse(&jobs[i]))
	}
	return jobResponses, nil
}

// GetJobByID retrieves a job together with the company that posted it.
func (s *jobService) GetJobByID(ctx context.Context, id int) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := mapToJobResponse(job)
	resp.CompanyHandle = ""

	company, err := s.companyRepo.FindByHandle(ctx, job.CompanyHandle)
	switch {
	case err == nil:
		resp.Company = mapToCompanyResponse(company)
	case apperror.IsNotFound(err):
		s.logger.Warn("Job references a missing company", logger.Field("job_id", id), logger.Field("company_handle", job.CompanyHandle))
	default:
		s.logger.Error("Failed to find company for job", logger.ErrorField(err), logger.Field("job_id", id))
		return nil, err
	}

	return resp, nil
}

// UpdateJob applies a partial update; fields absent from req are left unchanged.
func (s *jobService) UpdateJob(ctx context.Context, id int, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.InvalidArgument("%s", err.Error())
	}

	update := buildJobUpdate(req)
	job, err := s.jobRepo.Update(ctx, id, update)
	if err != nil {
		if !apperror.IsNotFound(err) && !apperror.IsInvalidArgument(err) {
			s.logger.Error("Failed to update job", logger.ErrorField(err), logger.Field("job_id", id))
		}
		return nil, err
	}

	s.logger.Info("Job updated successfully", logger.Field("job_id", id), logger.Field("fields", update.Fields()))
	s.publish(ctx, event.JobEvent{Type: event.TypeJobUpdated, JobID: id, Fields: update.Fields()})
	return mapToJobResponse(job), nil
}

// DeleteJob deletes a job by its ID.
func (s *jobService) DeleteJob(ctx context.Context, id int) error {
	if err := s.jobRepo.Delete(ctx, id); err != nil {
		if !apperror.IsNotFound(err) {
			s.logger.Error("Failed to delete job", logger.ErrorField(err), logger.Field("job_id", id))
		}
		return err
	}

	s.logger.Info("Job deleted successfully", logger.Field("job_id", id))
	s.publish(ctx, event.JobEvent{Type: event.TypeJobDeleted, JobID: id})
	return nil
}

// publish never fails the request; a lost event is only logged.
func (s *jobService) publish(ctx context.Context, evt event.JobEvent) {
	evt.OccurredAt = s.now().UTC()
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Error("Failed to publish job event", logger.ErrorField(err), logger.Field("event", evt.Type), logger.Field("job_id", evt.JobID))
	}
}

// buildJobUpdate lists the fields present in req in a fixed order.
func buildJobUpdate(req *dto.UpdateJobRequest) sqlbuilder.UpdateRequest {
	var update sqlbuilder.UpdateRequest
	if req.Title != nil {
		update.Set("title", *req.Title)
	}
	if req.Salary != nil {
		update.Set("salary", *req.Salary)
	}
	if req.Equity != nil {
		update.Set("equity", *req.Equity)
	}
	return update
}

// mapToJobResponse maps an entity.Job to a dto.JobResponse.
func mapToJobResponse(job *entity.Job) *dto.JobResponse {
	return &dto.JobResponse{
		ID:            job.ID,
		Title:         job.Title,
		Salary:        job.Salary,
		Equity:        job.Equity,
		CompanyHandle: job.CompanyHandle,
	}
}

func mapToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		Handle:       c.Handle,
		Name:         c.Name,
		Description:  c.Description,
		NumEmployees: c.NumEmployees,
		LogoURL:      c.LogoURL,
	}
}
