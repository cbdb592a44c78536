package repository

import (
	"context"
	"testing"
	"time"

	"golang-jobly/internal/api/dto"
	"golang-jobly/internal/entity"
	"golang-jobly/pkg/apperror"
	"golang-jobly/pkg/sqlbuilder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// every pooled connection to :memory: would get its own empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	// jobs is created by hand so company_handle carries the foreign key the
	// postgres migration declares.
	require.NoError(t, db.AutoMigrate(&entity.Company{}))
	require.NoError(t, db.Exec(`
		CREATE TABLE jobs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			salary INTEGER,
			equity NUMERIC,
			company_handle TEXT NOT NULL REFERENCES companies (handle) ON DELETE CASCADE
		)`).Error)

	logo := "http://c1.img"
	require.NoError(t, db.Create(&[]entity.Company{
		{Handle: "c1", Name: "C1", Description: "Desc1", NumEmployees: intPtr(1), LogoURL: &logo},
		{Handle: "c2", Name: "C2", Description: "Desc2", NumEmployees: intPtr(2)},
	}).Error)
	return db
}

func nullDec(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

// seedJobs inserts Job1..Job3 through the repository and returns their IDs.
func seedJobs(t *testing.T, repo JobRepository) []int {
	t.Helper()
	jobs := []*entity.Job{
		{Title: "Job1", Salary: intPtr(100), Equity: nullDec("0.12"), CompanyHandle: "c1"},
		{Title: "Job2", Salary: intPtr(200000), Equity: nullDec("0.2"), CompanyHandle: "c1"},
		{Title: "Job3", Salary: intPtr(300), Equity: nullDec("0"), CompanyHandle: "c2"},
	}
	ids := make([]int, len(jobs))
	for i, j := range jobs {
		require.NoError(t, repo.Create(context.Background(), j))
		ids[i] = j.ID
	}
	return ids
}

func titles(jobs []entity.Job) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.Title
	}
	return out
}

func TestJobRepository_Create(t *testing.T) {
	repo := NewJobRepository(newTestDB(t))

	job := &entity.Job{Title: "Testing123", Salary: intPtr(100000), Equity: nullDec("0.1"), CompanyHandle: "c1"}
	require.NoError(t, repo.Create(context.Background(), job))

	assert.NotZero(t, job.ID)
	assert.Equal(t, "Testing123", job.Title)
	assert.Equal(t, 100000, *job.Salary)
	assert.True(t, job.Equity.Valid)
	assert.True(t, decimal.RequireFromString("0.1").Equal(job.Equity.Decimal))
	assert.Equal(t, "c1", job.CompanyHandle)
}

func TestJobRepository_Create_UnknownCompany(t *testing.T) {
	repo := NewJobRepository(newTestDB(t))

	err := repo.Create(context.Background(), &entity.Job{Title: "x", CompanyHandle: "nope"})

	require.Error(t, err)
	assert.True(t, apperror.IsInvalidArgument(err))
	assert.EqualError(t, err, "no company: nope")

	jobs, err := repo.FindAll(context.Background(), dto.JobSearchParam{})
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

// Title filtering is not exercised here: sqlite has no ILIKE. The clause it
// produces is covered in job_search_test.go.
func TestJobRepository_FindAll(t *testing.T) {
	repo := NewJobRepository(newTestDB(t))
	seedJobs(t, repo)
	ctx := context.Background()

	tests := []struct {
		name  string
		param dto.JobSearchParam
		want  []string
	}{
		{"no filter", dto.JobSearchParam{}, []string{"Job1", "Job2", "Job3"}},
		{"min salary", dto.JobSearchParam{MinSalary: intPtr(200)}, []string{"Job2", "Job3"}},
		{"zero min salary", dto.JobSearchParam{MinSalary: intPtr(0)}, []string{"Job1", "Job2", "Job3"}},
		{"equity", dto.JobSearchParam{HasEquity: boolPtr(true)}, []string{"Job1", "Job2"}},
		{"equity false", dto.JobSearchParam{HasEquity: boolPtr(false)}, []string{"Job1", "Job2", "Job3"}},
		{"min salary and equity", dto.JobSearchParam{MinSalary: intPtr(250), HasEquity: boolPtr(true)}, []string{"Job2"}},
		{"nothing matches", dto.JobSearchParam{MinSalary: intPtr(1000000)}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := repo.FindAll(ctx, tt.param)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(jobs))
		})
	}
}

func TestJobRepository_FindByID(t *testing.T) {
	repo := NewJobRepository(newTestDB(t))
	ids := seedJobs(t, repo)
	ctx := context.Background()

	job, err := repo.FindByID(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, ids[0], job.ID)
	assert.Equal(t, "Job1", job.Title)
	assert.Equal(t, "c1", job.CompanyHandle)
	assert.True(t, decimal.RequireFromString("0.12").Equal(job.Equity.Decimal))

	_, err = repo.FindByID(ctx, 0)
	assert.True(t, apperror.IsNotFound(err))
}

func TestJobRepository_Update(t *testing.T) {
	repo := NewJobRepository(newTestDB(t))
	ids := seedJobs(t, repo)
	ctx := context.Background()

	var req sqlbuilder.UpdateRequest
	req.Set("title", "New")
	req.Set("salary", 5)

	job, err := repo.Update(ctx, ids[0], req)
	require.NoError(t, err)
	assert.Equal(t, ids[0], job.ID)
	assert.Equal(t, "New", job.Title)
	assert.Equal(t, 5, *job.Salary)
	assert.True(t, decimal.RequireFromString("0.12").Equal(job.Equity.Decimal), "untouched field kept")

	stored, err := repo.FindByID(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, "New", stored.Title)
}

func TestJobRepository_Update_Errors(t *testing.T) {
	repo := NewJobRepository(newTestDB(t))
	ids := seedJobs(t, repo)
	ctx := context.Background()

	_, err := repo.Update(ctx, ids[0], sqlbuilder.UpdateRequest{})
	assert.True(t, apperror.IsInvalidArgument(err))

	_, err = repo.Update(ctx, 0, sqlbuilder.UpdateRequest{{Field: "title", Value: "x"}})
	assert.True(t, apperror.IsNotFound(err))
}

func TestJobRepository_Delete(t *testing.T) {
	repo := NewJobRepository(newTestDB(t))
	ids := seedJobs(t, repo)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, ids[0]))

	_, err := repo.FindByID(ctx, ids[0])
	assert.True(t, apperror.IsNotFound(err))

	err = repo.Delete(ctx, ids[0])
	assert.True(t, apperror.IsNotFound(err))
}

func TestCompanyRepository_FindByHandle(t *testing.T) {
	repo := NewCompanyRepository(newTestDB(t))
	ctx := context.Background()

	company, err := repo.FindByHandle(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "C1", company.Name)
	assert.Equal(t, "Desc1", company.Description)
	assert.Equal(t, 1, *company.NumEmployees)
	assert.Equal(t, "http://c1.img", *company.LogoURL)

	company, err = repo.FindByHandle(ctx, "c2")
	require.NoError(t, err)
	assert.Nil(t, company.LogoURL)

	_, err = repo.FindByHandle(ctx, "nope")
	assert.True(t, apperror.IsNotFound(err))
}

type countingCompanyRepository struct {
	calls int
	next  CompanyRepository
}

func (c *countingCompanyRepository) FindByHandle(ctx context.Context, handle string) (*entity.Company, error) {
	c.calls++
	return c.next.FindByHandle(ctx, handle)
}

func TestCachedCompanyRepository(t *testing.T) {
	counter := &countingCompanyRepository{next: NewCompanyRepository(newTestDB(t))}
	repo := NewCachedCompanyRepository(counter, time.Minute, time.Minute)
	ctx := context.Background()

	first, err := repo.FindByHandle(ctx, "c1")
	require.NoError(t, err)
	first.Name = "mutated"

	second, err := repo.FindByHandle(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "C1", second.Name)
	assert.Equal(t, 1, counter.calls)

	_, err = repo.FindByHandle(ctx, "nope")
	assert.True(t, apperror.IsNotFound(err))
	_, err = repo.FindByHandle(ctx, "nope")
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, 3, counter.calls)
}
