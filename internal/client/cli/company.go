package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jobdesk/jobdesk/internal/client/models"
)

// Companies lists the company directory.
func (a *App) Companies(ctx context.Context) error {
	companies, err := a.companyService.List(ctx)
	if err != nil {
		printlnFn("Could not load companies:", err.Error())
		return err
	}
	for _, c := range companies {
		printlnFn(fmt.Sprintf("[%s] %s, %s", c.ID, c.Name, c.Location))
	}
	return nil
}

// Company shows a single company profile.
func (a *App) Company(ctx context.Context, id string) error {
	c, err := a.companyService.Get(ctx, id)
	if err != nil {
		printlnFn("Could not load company:", err.Error())
		return err
	}
	printlnFn(c.Name)
	printlnFn(c.Description)
	if c.Website != "" {
		printlnFn("Website:", c.Website)
	}
	printlnFn("Location:", c.Location)
	return nil
}

func (a *App) promptCompanyRequest() (models.CompanyRequest, error) {
	var req models.CompanyRequest

	name, err := getSimpleText(a.reader, "Company name", os.Stdout)
	if err != nil {
		return req, err
	}
	description, err := GetMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return req, err
	}
	website, err := getSimpleText(a.reader, "Website (optional)", os.Stdout)
	if err != nil {
		return req, err
	}
	location, err := getSimpleText(a.reader, "Location", os.Stdout)
	if err != nil {
		return req, err
	}

	return models.CompanyRequest{Name: name, Description: description, Website: website, Location: location}, nil
}

// AddCompany creates the recruiter's company profile.
func (a *App) AddCompany(ctx context.Context) error {
	req, err := a.promptCompanyRequest()
	if err != nil {
		return err
	}
	c, err := a.companyService.Create(ctx, req)
	if err != nil {
		printlnFn("Creating company failed:", err.Error())
		return err
	}

	// the backend links the company to the account; mirror that locally
	if err := a.sessions.PatchUser(ctx, models.UserPatch{CompanyID: &c.ID}); err != nil {
		a.log.Warn(ctx, "persisting company link", "err", err)
	}
	printlnFn("Created company", c.ID)
	return nil
}

// EditCompany updates a company profile.
func (a *App) EditCompany(ctx context.Context, id string) error {
	req, err := a.promptCompanyRequest()
	if err != nil {
		return err
	}
	c, err := a.companyService.Update(ctx, id, req)
	if err != nil {
		printlnFn("Updating company failed:", err.Error())
		return err
	}
	printlnFn("Updated company", c.ID)
	return nil
}
