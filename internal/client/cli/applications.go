package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jobdesk/jobdesk/internal/client/models"
)

// Apply submits an application to a posting with an interactive cover
// letter.
func (a *App) Apply(ctx context.Context, jobID string) error {
	coverLetter, err := GetMultiline(a.reader, "Cover letter", os.Stdout)
	if err != nil {
		return err
	}

	app, err := a.applicationService.Apply(ctx, models.ApplicationRequest{JobID: jobID, CoverLetter: coverLetter})
	if err != nil {
		printlnFn("Applying failed:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Applied; application %s is %s", app.ID, app.Status))
	return nil
}

// MyApplications lists the candidate's own applications with their states.
func (a *App) MyApplications(ctx context.Context) error {
	apps, err := a.applicationService.ListMine(ctx)
	if err != nil {
		printlnFn("Could not load applications:", err.Error())
		return err
	}
	if len(apps) == 0 {
		printlnFn("No applications yet.")
		return nil
	}
	for _, app := range apps {
		title := app.JobTitle
		if title == "" {
			title = app.JobID
		}
		printlnFn(fmt.Sprintf("[%s] %s: %s", app.ID, title, app.Status))
	}
	return nil
}

// Withdraw deletes one of the candidate's applications.
func (a *App) Withdraw(ctx context.Context, id string) error {
	if err := a.applicationService.Withdraw(ctx, id); err != nil {
		printlnFn("Withdrawing failed:", err.Error())
		return err
	}
	printlnFn("Withdrew application", id)
	return nil
}

// Applicants lists the applications on one of the recruiter's postings.
func (a *App) Applicants(ctx context.Context, jobID string) error {
	apps, err := a.applicationService.ListForJob(ctx, jobID)
	if err != nil {
		printlnFn("Could not load applicants:", err.Error())
		return err
	}
	if len(apps) == 0 {
		printlnFn("No applicants yet.")
		return nil
	}
	for _, app := range apps {
		name := app.Candidate
		if name == "" {
			name = app.CandidateID
		}
		printlnFn(fmt.Sprintf("[%s] %s: %s", app.ID, name, app.Status))
	}
	return nil
}

// Decide resolves a pending application. The view only changes after the
// backend confirms; a rejected update leaves the shown status as it was.
func (a *App) Decide(ctx context.Context, id, verb string) error {
	app, err := a.applicationService.Decide(ctx, id, verb)
	if err != nil {
		printlnFn("Decision failed:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Application %s is now %s", app.ID, app.Status))
	return nil
}
