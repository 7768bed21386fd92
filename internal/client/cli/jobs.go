package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jobdesk/jobdesk/internal/client/filter"
	"github.com/jobdesk/jobdesk/internal/client/models"
)

// Jobs refetches the posting collection and shows the first page of the
// current filtered view. A fetch failure is reported inline and browsing
// continues over the empty set.
func (a *App) Jobs(ctx context.Context) error {
	if err := a.engine.Refresh(ctx); err != nil {
		printlnFn("Could not load jobs:", err.Error())
	}
	a.page = 1
	a.renderPage()
	return nil
}

// ShowPage jumps to the given 1-based page of the filtered view.
func (a *App) ShowPage(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		printlnFn("Usage: page <number>")
		return nil
	}
	a.page = n
	a.renderPage()
	return nil
}

// NextPage advances one page.
func (a *App) NextPage(ctx context.Context) error {
	a.page++
	a.renderPage()
	return nil
}

// PrevPage goes back one page.
func (a *App) PrevPage(ctx context.Context) error {
	a.page--
	a.renderPage()
	return nil
}

// filterFields maps command-line filter names onto criteria patch setters.
var filterFields = map[string]func(*filter.Patch, *string){
	"keyword":  func(p *filter.Patch, v *string) { p.Keyword = v },
	"location": func(p *filter.Patch, v *string) { p.Location = v },
	"category": func(p *filter.Patch, v *string) { p.Category = v },
	"type":     func(p *filter.Patch, v *string) { p.JobType = v },
	"level":    func(p *filter.Patch, v *string) { p.ExperienceLevel = v },
	"salary":   func(p *filter.Patch, v *string) { p.SalaryRange = v },
}

// SetFilter updates a single criterion. An omitted value clears that
// criterion. The filter store resets the page via its subscription.
func (a *App) SetFilter(ctx context.Context, field, value string) error {
	set, ok := filterFields[field]
	if !ok {
		printlnFn("Unknown filter field:", field)
		return nil
	}
	var p filter.Patch
	set(&p, &value)
	a.filters.Update(p)
	a.renderPage()
	return nil
}

// ClearFilters resets every criterion.
func (a *App) ClearFilters(ctx context.Context) error {
	a.filters.Reset()
	a.renderPage()
	return nil
}

// renderPage prints the current page of the filtered view. The page index is
// clamped by the engine, so next/prev past the edges simply stick there.
func (a *App) renderPage() {
	page := a.engine.VisiblePage(a.filters.Criteria(), a.page)
	a.page = page.Page

	if page.Total == 0 {
		printlnFn("No jobs match.")
		return
	}

	for _, l := range page.Items {
		printlnFn(formatListing(l))
	}
	printlnFn(fmt.Sprintf("Page %d/%d (%d jobs)", page.Page, page.PageCount, page.Total))
}

func formatListing(l models.JobListing) string {
	salary := "salary n/a"
	if l.SalaryValid {
		salary = fmt.Sprintf("%.1f-%.1f million %s", l.SalaryMin, l.SalaryMax, l.SalaryCurrency)
	}
	return fmt.Sprintf("[%s] %s @ %s, %s, %s, %s", l.ID, l.Title, l.Company, l.Location, salary, l.JobType)
}

// Job shows a single posting in full.
func (a *App) Job(ctx context.Context, id string) error {
	rec, err := a.jobService.Get(ctx, id)
	if err != nil {
		printlnFn("Could not load job:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("%s (%s)", rec.Title, rec.Status))
	printlnFn(fmt.Sprintf("%s | %s | %s | %s", rec.Company.Name, rec.Location, rec.JobType, rec.ExperienceLevel))
	printlnFn(fmt.Sprintf("Salary: %.0f-%.0f %s", rec.Salary.Min, rec.Salary.Max, rec.Salary.Currency))
	printlnFn(rec.Description)
	return nil
}

// MyJobs lists the postings of the recruiter's company.
func (a *App) MyJobs(ctx context.Context) error {
	sess := a.sessions.Current()
	if sess.User.CompanyID == "" {
		printlnFn("No company on your profile yet; run 'addcompany' first.")
		return nil
	}
	records, err := a.jobService.ListForCompany(ctx, sess.User.CompanyID)
	if err != nil {
		printlnFn("Could not load your jobs:", err.Error())
		return err
	}
	if len(records) == 0 {
		printlnFn("No postings yet.")
		return nil
	}
	for _, rec := range records {
		printlnFn(fmt.Sprintf("[%s] %s (%s)", rec.ID, rec.Title, rec.Status))
	}
	return nil
}

// promptJobRequest gathers the posting fields interactively.
func (a *App) promptJobRequest() (models.JobRequest, error) {
	var req models.JobRequest

	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return req, err
	}
	description, err := GetMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return req, err
	}
	location, err := getSimpleText(a.reader, "Location", os.Stdout)
	if err != nil {
		return req, err
	}
	salaryMin, err := getSimpleText(a.reader, "Salary min", os.Stdout)
	if err != nil {
		return req, err
	}
	salaryMax, err := getSimpleText(a.reader, "Salary max", os.Stdout)
	if err != nil {
		return req, err
	}
	currency, err := getSimpleText(a.reader, "Currency", os.Stdout)
	if err != nil {
		return req, err
	}
	jobType, err := getSimpleText(a.reader, "Type (full-time/part-time/remote/contract/internship)", os.Stdout)
	if err != nil {
		return req, err
	}
	category, err := getSimpleText(a.reader, "Category", os.Stdout)
	if err != nil {
		return req, err
	}
	level, err := getSimpleText(a.reader, "Experience level (intern/fresher/junior/mid-level/senior)", os.Stdout)
	if err != nil {
		return req, err
	}
	status, err := getSimpleText(a.reader, "Status (active/draft)", os.Stdout)
	if err != nil {
		return req, err
	}
	closing, err := getSimpleText(a.reader, "Closing date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return req, err
	}

	min, _ := strconv.ParseFloat(salaryMin, 64)
	max, _ := strconv.ParseFloat(salaryMax, 64)
	closingDate, err := time.Parse("2006-01-02", closing)
	if err != nil {
		printlnFn("Invalid closing date:", err.Error())
		return req, err
	}

	return models.JobRequest{
		Title:           title,
		Description:     description,
		Location:        location,
		SalaryMin:       min,
		SalaryMax:       max,
		SalaryCurrency:  currency,
		JobType:         models.JobType(jobType),
		Category:        category,
		ExperienceLevel: models.ExperienceLevel(level),
		Status:          models.JobStatus(status),
		ClosingDate:     closingDate,
	}, nil
}

// AddJob creates a posting. "draft" is only selectable here; once published
// the status only toggles between active and closed.
func (a *App) AddJob(ctx context.Context) error {
	req, err := a.promptJobRequest()
	if err != nil {
		return err
	}
	rec, err := a.jobService.Create(ctx, req)
	if err != nil {
		printlnFn("Creating job failed:", err.Error())
		return err
	}
	printlnFn("Created job", rec.ID)
	return nil
}

// EditJob replaces a posting's fields.
func (a *App) EditJob(ctx context.Context, id string) error {
	req, err := a.promptJobRequest()
	if err != nil {
		return err
	}
	rec, err := a.jobService.Update(ctx, id, req)
	if err != nil {
		printlnFn("Updating job failed:", err.Error())
		return err
	}
	printlnFn("Updated job", rec.ID)
	return nil
}

// ToggleJob flips a posting between active and closed.
func (a *App) ToggleJob(ctx context.Context, id string) error {
	rec, err := a.jobService.ToggleStatus(ctx, id)
	if err != nil {
		printlnFn("Toggling job failed:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Job %s is now %s", rec.ID, rec.Status))
	return nil
}

// DeleteJob removes a posting.
func (a *App) DeleteJob(ctx context.Context, id string) error {
	if err := a.jobService.Delete(ctx, id); err != nil {
		printlnFn("Deleting job failed:", err.Error())
		return err
	}
	printlnFn("Deleted job", id)
	return nil
}
