// Package jobs implements the client-side job query engine: it fetches the
// full posting collection from the backend, normalizes records into view
// models, applies the active filter criteria and paginates the result.
//
// All matching happens locally over the fetched set; the backend is only
// asked for the raw collection.
package jobs

import (
	"context"
	"math"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jobdesk/jobdesk/internal/client/api"
	"github.com/jobdesk/jobdesk/internal/client/filter"
	"github.com/jobdesk/jobdesk/internal/client/models"
	"github.com/jobdesk/jobdesk/internal/logging"
)

// PageSize is the fixed number of listings per page.
const PageSize = 5

// salaryScale converts currency minor units to the domain's human unit
// ("millions").
const salaryScale = 1_000_000

// Page is one visible slice of the filtered listings.
type Page struct {
	Items     []models.JobListing
	Page      int
	PageCount int
	Total     int
}

// Engine caches the last fetched collection and answers page queries over
// it. A generation counter guards against overlapping refreshes: only the
// latest requested fetch commits its result, so a slow stale response can
// never clobber newer data.
type Engine struct {
	client api.Client
	log    logging.Logger

	generation atomic.Uint64

	mu       sync.Mutex
	listings []models.JobListing
}

// NewEngine builds an Engine over the given backend client.
func NewEngine(client api.Client, log logging.Logger) *Engine {
	return &Engine{client: client, log: log.With("component", "jobs")}
}

// Refresh fetches the job collection and replaces the cached listings
// wholesale. On failure the cache is reset to empty rather than left stale,
// and the error is returned for inline reporting only; rendering continues
// with the empty set.
func (e *Engine) Refresh(ctx context.Context) error {
	gen := e.generation.Add(1)

	records, err := e.client.ListJobs(ctx)

	if e.generation.Load() != gen {
		// a newer refresh was requested while this one was in flight
		return nil
	}

	if err != nil {
		e.log.Warn(ctx, "fetching jobs failed", "err", err)
		e.mu.Lock()
		e.listings = nil
		e.mu.Unlock()
		return err
	}

	normalized := make([]models.JobListing, 0, len(records))
	for _, rec := range records {
		normalized = append(normalized, Normalize(rec))
	}

	e.mu.Lock()
	e.listings = normalized
	e.mu.Unlock()
	return nil
}

// Listings returns the cached collection in fetch order.
func (e *Engine) Listings() []models.JobListing {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.listings
}

// VisiblePage filters the cached collection with the given criteria and
// returns the requested page. The engine keeps no page state; the caller
// passes the index each time and resets it to 1 on filter changes.
func (e *Engine) VisiblePage(c filter.Criteria, page int) Page {
	matched := Filter(e.Listings(), c)
	return Paginate(matched, page)
}

// Normalize derives the view model from a raw record: salary bounds scaled
// to millions, company flattened to its display name.
func Normalize(rec models.JobRecord) models.JobListing {
	return models.JobListing{
		ID:              rec.ID,
		Title:           rec.Title,
		Company:         rec.Company.Name,
		CompanyAvatar:   rec.Company.Avatar,
		Location:        rec.Location,
		SalaryMin:       rec.Salary.Min / salaryScale,
		SalaryMax:       rec.Salary.Max / salaryScale,
		SalaryCurrency:  rec.Salary.Currency,
		SalaryValid:     rec.Salary.Min >= 0 && rec.Salary.Min <= rec.Salary.Max,
		JobType:         rec.JobType,
		Category:        rec.Category,
		ExperienceLevel: rec.ExperienceLevel,
		Status:          rec.Status,
		CreatedAt:       rec.CreatedAt,
		ClosingDate:     rec.ClosingDate,
	}
}

// Filter returns the listings matching c, preserving fetch order.
func Filter(listings []models.JobListing, c filter.Criteria) []models.JobListing {
	out := make([]models.JobListing, 0, len(listings))
	for _, l := range listings {
		if Match(l, c) {
			out = append(out, l)
		}
	}
	return out
}

// Match reports whether a single listing satisfies every active criterion.
// Empty criteria fields match everything.
func Match(l models.JobListing, c filter.Criteria) bool {
	if c.Keyword != "" &&
		!strings.Contains(strings.ToLower(l.Title), strings.ToLower(c.Keyword)) {
		return false
	}
	if c.Location != "" && l.Location != c.Location {
		return false
	}
	if c.Category != "" && l.Category != c.Category {
		return false
	}
	if c.JobType != "" && string(l.JobType) != c.JobType {
		return false
	}
	if c.ExperienceLevel != "" && string(l.ExperienceLevel) != c.ExperienceLevel {
		return false
	}
	if c.SalaryRange != "" {
		lo, hi, ok := ParseSalaryRange(c.SalaryRange)
		if !ok || !l.SalaryValid {
			// fail closed: an unparseable bracket or broken listing salary
			// matches nothing while a salary filter is active
			return false
		}
		// containment: the listing's whole range must fit the bracket
		if l.SalaryMin < lo || l.SalaryMax > hi {
			return false
		}
	}
	return true
}

// ParseSalaryRange parses a "lo-hi" bracket quoted in currency minor units
// and returns the bounds scaled to millions.
func ParseSalaryRange(s string) (lo, hi float64, ok bool) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	rawLo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	rawHi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	return rawLo / salaryScale, rawHi / salaryScale, true
}

// Paginate slices the filtered listings into the requested 1-based page.
// Out-of-range page indexes clamp to the nearest valid page.
func Paginate(items []models.JobListing, page int) Page {
	total := len(items)
	pageCount := int(math.Ceil(float64(total) / float64(PageSize)))

	if pageCount == 0 {
		return Page{Items: nil, Page: 1, PageCount: 0, Total: 0}
	}
	if page < 1 {
		page = 1
	}
	if page > pageCount {
		page = pageCount
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if end > total {
		end = total
	}
	return Page{Items: items[start:end], Page: page, PageCount: pageCount, Total: total}
}
