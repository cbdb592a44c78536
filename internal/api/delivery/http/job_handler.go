package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"golang-jobly/internal/api/dto"
	"golang-jobly/internal/api/service"
	"golang-jobly/pkg/apperror"
	"golang-jobly/pkg/logger"

	"github.com/labstack/echo/v4"
)

// JobHandler handles HTTP requests for jobs.
type JobHandler struct {
	jobService service.JobService
	logger     *logger.Logger
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobService service.JobService, logger *logger.Logger) *JobHandler {
	return &JobHandler{jobService: jobService, logger: logger}
}

// RegisterRoutes registers the job routes to the Echo group.
func (h *JobHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateJob)
	g.GET("", h.SearchJobs)
	g.GET("/:id", h.GetJobByID)
	g.PATCH("/:id", h.UpdateJob)
	g.DELETE("/:id", h.DeleteJob)
}

// CreateJob godoc
// @Summary Create a new job
// @Description Create a job posting for an existing company
// @Tags jobs
// @Accept  json
// @Produce  json
// @Param   job  body    dto.CreateJobRequest   true    "Job to create"
// @Success 201 {object} dto.JobEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c echo.Context) error {
	var req dto.CreateJobRequest
	if err := decodeStrict(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	job, err := h.jobService.CreateJob(c.Request().Context(), &req)
	if err != nil {
		return h.errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, dto.JobEnvelope{Job: job})
}

// SearchJobs godoc
// @Summary Search jobs
// @Description List jobs, optionally filtered. All filters are combined with AND.
// @Tags jobs
// @Produce  json
// @Param   title      query  string  false  "Case-insensitive substring of the title"
// @Param   minSalary  query  int     false  "Minimum salary, inclusive"
// @Param   hasEquity  query  bool    false  "Only jobs offering non-zero equity"
// @Success 200 {object} dto.JobListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /jobs [get]
func (h *JobHandler) SearchJobs(c echo.Context) error {
	param, err := dto.ParseJobSearchParam(c.QueryParams())
	if err != nil {
		return h.errorJSON(c, err)
	}

	jobs, err := h.jobService.SearchJobs(c.Request().Context(), param)
	if err != nil {
		return h.errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, dto.JobListResponse{Jobs: jobs})
}

// GetJobByID godoc
// @Summary Get a job by ID
// @Description Get a single job together with its company
// @Tags jobs
// @Produce  json
// @Param   id  path    int true    "Job ID"
// @Success 200 {object} dto.JobEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJobByID(c echo.Context) error {
	id, err := parseJobID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid job ID"})
	}

	job, err := h.jobService.GetJobByID(c.Request().Context(), id)
	if err != nil {
		return h.errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, dto.JobEnvelope{Job: job})
}

// UpdateJob godoc
// @Summary Partially update a job
// @Description Change any of title, salary and equity. Omitted fields keep their value.
// @Tags jobs
// @Accept  json
// @Produce  json
// @Param   id   path    int                   true  "Job ID"
// @Param   job  body    dto.UpdateJobRequest  true  "Fields to change"
// @Success 200 {object} dto.JobEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /jobs/{id} [patch]
func (h *JobHandler) UpdateJob(c echo.Context) error {
	id, err := parseJobID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid job ID"})
	}

	var req dto.UpdateJobRequest
	if err := decodeStrict(c, &req); err != nil {
		if errors.Is(err, io.EOF) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "no fields to update"})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	job, err := h.jobService.UpdateJob(c.Request().Context(), id, &req)
	if err != nil {
		return h.errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, dto.JobEnvelope{Job: job})
}

// DeleteJob godoc
// @Summary Delete a job
// @Description Delete a job by its ID
// @Tags jobs
// @Produce  json
// @Param   id  path    int true    "Job ID"
// @Success 200 {object} dto.DeleteJobResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c echo.Context) error {
	id, err := parseJobID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid job ID"})
	}

	if err := h.jobService.DeleteJob(c.Request().Context(), id); err != nil {
		return h.errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, dto.DeleteJobResponse{Deleted: id})
}

// errorJSON writes err with the status its kind maps to. Internal details
// stay in the log.
func (h *JobHandler) errorJSON(c echo.Context, err error) error {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("Request failed", logger.ErrorField(err),
			logger.Field("method", c.Request().Method), logger.Field("path", c.Path()))
		return c.JSON(status, echo.Map{"error": http.StatusText(status)})
	}
	return c.JSON(status, echo.Map{"error": err.Error()})
}

func errorStatus(err error) int {
	switch apperror.KindOf(err) {
	case apperror.KindInvalidArgument:
		return http.StatusBadRequest
	case apperror.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func parseJobID(c echo.Context) (int, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// decodeStrict rejects bodies carrying fields the target does not declare.
func decodeStrict(c echo.Context, v interface{}) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
