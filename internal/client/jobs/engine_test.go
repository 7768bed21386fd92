package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobdesk/jobdesk/internal/client/api"
	"github.com/jobdesk/jobdesk/internal/client/filter"
	"github.com/jobdesk/jobdesk/internal/client/models"
	"github.com/jobdesk/jobdesk/internal/logging"
)

// fakeClient stubs only ListJobs; the engine never touches the rest of the
// API surface.
type fakeClient struct {
	api.Client

	mu      sync.Mutex
	jobs    []models.JobRecord
	err     error
	waiting chan struct{} // when set, ListJobs blocks until released
	release chan struct{}
}

func (f *fakeClient) ListJobs(ctx context.Context) ([]models.JobRecord, error) {
	f.mu.Lock()
	waiting, release := f.waiting, f.release
	jobs, err := f.jobs, f.err
	f.mu.Unlock()

	if waiting != nil {
		close(waiting)
		<-release
	}
	return jobs, err
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func record(id, title, location, category string, jt models.JobType, exp models.ExperienceLevel, salaryMin, salaryMax float64) models.JobRecord {
	return models.JobRecord{
		ID:              id,
		Title:           title,
		Company:         models.CompanyRef{ID: "c-" + id, Name: "Company " + id},
		Location:        location,
		Category:        category,
		JobType:         jt,
		ExperienceLevel: exp,
		Salary:          models.SalaryRecord{Min: salaryMin, Max: salaryMax, Currency: "VND"},
		Status:          models.JobStatusActive,
	}
}

func listing(title string) models.JobListing {
	return models.JobListing{Title: title, SalaryValid: true}
}

func TestNormalize(t *testing.T) {
	rec := record("j1", "Lập trình viên React", "Hà Nội", "IT",
		models.JobTypeFullTime, models.ExperienceJunior, 20_000_000, 30_000_000)

	l := Normalize(rec)
	assert.Equal(t, "Company j1", l.Company)
	assert.InDelta(t, 20.0, l.SalaryMin, 1e-9)
	assert.InDelta(t, 30.0, l.SalaryMax, 1e-9)
	assert.True(t, l.SalaryValid)
}

func TestNormalize_InvertedSalaryMarkedInvalid(t *testing.T) {
	rec := record("j1", "X", "Hà Nội", "IT",
		models.JobTypeFullTime, models.ExperienceJunior, 30_000_000, 20_000_000)
	assert.False(t, Normalize(rec).SalaryValid)
}

func TestFilter_EmptyCriteriaReturnsAllInOrder(t *testing.T) {
	listings := []models.JobListing{listing("a"), listing("b"), listing("c")}

	got := Filter(listings, filter.Criteria{})
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].Title)
	assert.Equal(t, "b", got[1].Title)
	assert.Equal(t, "c", got[2].Title)
}

func TestMatch_KeywordCaseInsensitiveSubstring(t *testing.T) {
	l := listing("Lập trình viên React")

	assert.True(t, Match(l, filter.Criteria{Keyword: "react"}))
	assert.True(t, Match(l, filter.Criteria{Keyword: "REACT"}))
	assert.True(t, Match(l, filter.Criteria{Keyword: ""}))
	assert.False(t, Match(l, filter.Criteria{Keyword: "angular"}))
}

func TestMatch_ExactFields(t *testing.T) {
	l := models.JobListing{
		Title:           "DevOps Engineer",
		Location:        "Đà Nẵng",
		Category:        "IT",
		JobType:         models.JobTypeRemote,
		ExperienceLevel: models.ExperienceSenior,
		SalaryValid:     true,
	}

	assert.True(t, Match(l, filter.Criteria{Location: "Đà Nẵng", Category: "IT"}))
	assert.False(t, Match(l, filter.Criteria{Location: "Hà Nội"}))
	assert.False(t, Match(l, filter.Criteria{JobType: "full-time"}))
	assert.True(t, Match(l, filter.Criteria{JobType: "remote", ExperienceLevel: "senior"}))
	assert.False(t, Match(l, filter.Criteria{ExperienceLevel: "junior"}))
}

func TestMatch_SalaryContainment(t *testing.T) {
	bracket := filter.Criteria{SalaryRange: "5000000-10000000"}

	partial := models.JobListing{Title: "X", SalaryMin: 4.0, SalaryMax: 9.0, SalaryValid: true}
	assert.False(t, Match(partial, bracket),
		"overlap is not enough: the whole range must fit the bracket")

	contained := models.JobListing{Title: "X", SalaryMin: 6.0, SalaryMax: 9.0, SalaryValid: true}
	assert.True(t, Match(contained, bracket))

	above := models.JobListing{Title: "X", SalaryMin: 6.0, SalaryMax: 11.0, SalaryValid: true}
	assert.False(t, Match(above, bracket))
}

func TestMatch_MalformedSalaryFailsClosed(t *testing.T) {
	broken := models.JobListing{Title: "X", SalaryValid: false}

	assert.False(t, Match(broken, filter.Criteria{SalaryRange: "5000000-10000000"}))
	assert.True(t, Match(broken, filter.Criteria{}), "still matches without a salary filter")

	fine := models.JobListing{Title: "X", SalaryMin: 6, SalaryMax: 9, SalaryValid: true}
	assert.False(t, Match(fine, filter.Criteria{SalaryRange: "cheap"}),
		"unparseable bracket matches nothing")
}

func TestParseSalaryRange(t *testing.T) {
	lo, hi, ok := ParseSalaryRange("5000000-10000000")
	require.True(t, ok)
	assert.InDelta(t, 5.0, lo, 1e-9)
	assert.InDelta(t, 10.0, hi, 1e-9)

	_, _, ok = ParseSalaryRange("")
	assert.False(t, ok)
	_, _, ok = ParseSalaryRange("abc-def")
	assert.False(t, ok)
	_, _, ok = ParseSalaryRange("5000000")
	assert.False(t, ok)
}

func TestPaginate(t *testing.T) {
	items := make([]models.JobListing, 12)
	for i := range items {
		items[i] = listing(string(rune('a' + i)))
	}

	p1 := Paginate(items, 1)
	assert.Equal(t, 3, p1.PageCount)
	assert.Len(t, p1.Items, 5)
	assert.Equal(t, 12, p1.Total)

	p3 := Paginate(items, 3)
	assert.Len(t, p3.Items, 2)
	assert.Equal(t, "k", p3.Items[0].Title)

	clampedLow := Paginate(items, 0)
	assert.Equal(t, 1, clampedLow.Page)
	assert.Len(t, clampedLow.Items, 5)

	clampedHigh := Paginate(items, 4)
	assert.Equal(t, 3, clampedHigh.Page)
	assert.Len(t, clampedHigh.Items, 2)
}

func TestPaginate_Empty(t *testing.T) {
	p := Paginate(nil, 7)
	assert.Equal(t, 1, p.Page)
	assert.Zero(t, p.PageCount)
	assert.Empty(t, p.Items)
}

func TestEngine_RefreshAndVisiblePage(t *testing.T) {
	fc := &fakeClient{jobs: []models.JobRecord{
		record("1", "Lập trình viên React", "Hà Nội", "IT", models.JobTypeFullTime, models.ExperienceJunior, 20_000_000, 30_000_000),
		record("2", "Nhân viên kinh doanh", "TP. Hồ Chí Minh", "Sales", models.JobTypePartTime, models.ExperienceFresher, 15_000_000, 25_000_000),
		record("3", "React Native Developer", "Đà Nẵng", "IT", models.JobTypeRemote, models.ExperienceMid, 25_000_000, 35_000_000),
	}}
	e := NewEngine(fc, testLogger())

	require.NoError(t, e.Refresh(context.Background()))

	all := e.VisiblePage(filter.Criteria{}, 1)
	assert.Equal(t, 3, all.Total)

	reacts := e.VisiblePage(filter.Criteria{Keyword: "react"}, 1)
	require.Equal(t, 2, reacts.Total)
	assert.Equal(t, "Lập trình viên React", reacts.Items[0].Title, "fetch order preserved")
	assert.Equal(t, "React Native Developer", reacts.Items[1].Title)
}

func TestEngine_RefreshFailureExposesEmptySet(t *testing.T) {
	fc := &fakeClient{jobs: []models.JobRecord{
		record("1", "X", "Hà Nội", "IT", models.JobTypeFullTime, models.ExperienceJunior, 1, 2),
	}}
	e := NewEngine(fc, testLogger())
	require.NoError(t, e.Refresh(context.Background()))
	require.Equal(t, 1, e.VisiblePage(filter.Criteria{}, 1).Total)

	fc.mu.Lock()
	fc.err = errors.New("backend down")
	fc.mu.Unlock()

	err := e.Refresh(context.Background())
	require.Error(t, err)
	assert.Zero(t, e.VisiblePage(filter.Criteria{}, 1).Total,
		"failed refresh resets to empty, not stale data")
}

func TestEngine_StaleRefreshDoesNotClobberNewer(t *testing.T) {
	fc := &fakeClient{
		jobs:    []models.JobRecord{record("old", "Old", "Hà Nội", "IT", models.JobTypeFullTime, models.ExperienceJunior, 1, 2)},
		waiting: make(chan struct{}),
		release: make(chan struct{}),
	}
	e := NewEngine(fc, testLogger())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = e.Refresh(context.Background()) // slow, stale fetch
	}()
	<-fc.waiting // stale fetch is now in flight

	fc.mu.Lock()
	release := fc.release
	fc.waiting, fc.release, fc.jobs = nil, nil,
		[]models.JobRecord{record("new", "New", "Hà Nội", "IT", models.JobTypeFullTime, models.ExperienceJunior, 1, 2)}
	fc.mu.Unlock()

	require.NoError(t, e.Refresh(context.Background())) // newer fetch commits

	close(release)
	<-done

	got := e.Listings()
	require.Len(t, got, 1)
	assert.Equal(t, "New", got[0].Title, "stale response must not overwrite newer data")
}
