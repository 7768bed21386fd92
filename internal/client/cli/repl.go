package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/jobdesk/jobdesk/internal/client/guard"
	"github.com/jobdesk/jobdesk/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with
// a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate. The real
// App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	currentSession() *models.Session

	Register(ctx context.Context) error
	Verify(ctx context.Context) error
	Login(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Logout(ctx context.Context) error

	Jobs(ctx context.Context) error
	ShowPage(ctx context.Context, arg string) error
	NextPage(ctx context.Context) error
	PrevPage(ctx context.Context) error
	SetFilter(ctx context.Context, field, value string) error
	ClearFilters(ctx context.Context) error
	Job(ctx context.Context, id string) error

	Apply(ctx context.Context, jobID string) error
	MyApplications(ctx context.Context) error
	Withdraw(ctx context.Context, id string) error

	MyJobs(ctx context.Context) error
	AddJob(ctx context.Context) error
	EditJob(ctx context.Context, id string) error
	ToggleJob(ctx context.Context, id string) error
	DeleteJob(ctx context.Context, id string) error
	Applicants(ctx context.Context, jobID string) error
	Decide(ctx context.Context, id, verb string) error

	Companies(ctx context.Context) error
	Company(ctx context.Context, id string) error
	AddCompany(ctx context.Context) error
	EditCompany(ctx context.Context, id string) error

	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	DownloadResume(ctx context.Context) error
	ToggleDarkMode(ctx context.Context) error
}

// destinations declares the guard requirements per command. Commands absent
// from the table are open to everyone.
var destinations = map[string]guard.Destination{
	"register": {Name: "register", GuestOnly: true},
	"verify":   {Name: "verify", GuestOnly: true},
	"login":    {Name: "login", GuestOnly: true},
	"forgot":   {Name: "forgot-password", GuestOnly: true},
	"resetpw":  {Name: "reset-password", GuestOnly: true},

	"logout":      {Name: "logout", RequiresAuth: true},
	"profile":     {Name: "profile", RequiresAuth: true},
	"editprofile": {Name: "edit-profile", RequiresAuth: true},

	"apply":    {Name: "apply", RequiredRole: models.RoleCandidate},
	"myapps":   {Name: "my-applications", RequiredRole: models.RoleCandidate},
	"withdraw": {Name: "withdraw", RequiredRole: models.RoleCandidate},
	"resume":   {Name: "resume", RequiredRole: models.RoleCandidate},

	"myjobs":     {Name: "my-jobs", RequiredRole: models.RoleRecruit},
	"addjob":     {Name: "add-job", RequiredRole: models.RoleRecruit},
	"editjob":    {Name: "edit-job", RequiredRole: models.RoleRecruit},
	"togglejob":  {Name: "toggle-job", RequiredRole: models.RoleRecruit},
	"deletejob":  {Name: "delete-job", RequiredRole: models.RoleRecruit},
	"applicants": {Name: "applicants", RequiredRole: models.RoleRecruit},
	"decide":     {Name: "decide", RequiredRole: models.RoleRecruit},
	"addcompany": {Name: "add-company", RequiredRole: models.RoleRecruit},
	"editco":     {Name: "edit-company", RequiredRole: models.RoleRecruit},
}

// runREPL starts a read-eval-print loop for the jobdesk CLI.
//
// Each iteration reads a line, parses the first token as the command,
// consults the route guard and dispatches to methods on 'a'. Unknown
// commands are reported back to the user. The loop exits on scanner EOF or
// when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("jobdesk (%s) > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		arg := func(i int) string {
			if i < len(args) {
				return args[i]
			}
			return ""
		}

		if dest, ok := destinations[cmd]; ok {
			switch guard.Decide(a.currentSession(), dest) {
			case guard.RedirectLogin:
				printlnFn("Please log in first.")
				_ = a.Login(ctx)
				continue
			case guard.RedirectHome:
				printlnFn("Already logged in; use logout first.")
				continue
			case guard.Deny:
				printlnFn("Access denied:", dest.Name, "is not available for your role.")
				continue
			}
		}

		switch cmd {
		case "help":
			printHelp(a.currentSession())

		case "register":
			_ = a.Register(ctx)
		case "verify":
			_ = a.Verify(ctx)
		case "login":
			_ = a.Login(ctx)
		case "forgot":
			_ = a.ForgotPassword(ctx)
		case "resetpw":
			_ = a.ResetPassword(ctx)
		case "logout":
			_ = a.Logout(ctx)

		case "j", "jobs":
			_ = a.Jobs(ctx)
		case "page":
			_ = a.ShowPage(ctx, arg(0))
		case "next":
			_ = a.NextPage(ctx)
		case "prev":
			_ = a.PrevPage(ctx)
		case "filter":
			if len(args) == 0 {
				printlnFn("Usage: filter <keyword|location|category|type|level|salary> [value]")
				continue
			}
			_ = a.SetFilter(ctx, args[0], strings.Join(args[1:], " "))
		case "clearfilter":
			_ = a.ClearFilters(ctx)
		case "job":
			if arg(0) == "" {
				printlnFn("Usage: job <id>")
				continue
			}
			_ = a.Job(ctx, arg(0))

		case "apply":
			if arg(0) == "" {
				printlnFn("Usage: apply <job-id>")
				continue
			}
			_ = a.Apply(ctx, arg(0))
		case "myapps":
			_ = a.MyApplications(ctx)
		case "withdraw":
			if arg(0) == "" {
				printlnFn("Usage: withdraw <application-id>")
				continue
			}
			_ = a.Withdraw(ctx, arg(0))
		case "resume":
			_ = a.DownloadResume(ctx)

		case "myjobs":
			_ = a.MyJobs(ctx)
		case "addjob":
			_ = a.AddJob(ctx)
		case "editjob":
			if arg(0) == "" {
				printlnFn("Usage: editjob <id>")
				continue
			}
			_ = a.EditJob(ctx, arg(0))
		case "togglejob":
			if arg(0) == "" {
				printlnFn("Usage: togglejob <id>")
				continue
			}
			_ = a.ToggleJob(ctx, arg(0))
		case "deletejob":
			if arg(0) == "" {
				printlnFn("Usage: deletejob <id>")
				continue
			}
			_ = a.DeleteJob(ctx, arg(0))
		case "applicants":
			if arg(0) == "" {
				printlnFn("Usage: applicants <job-id>")
				continue
			}
			_ = a.Applicants(ctx, arg(0))
		case "decide":
			if arg(0) == "" || arg(1) == "" {
				printlnFn("Usage: decide <application-id> <accept|reject>")
				continue
			}
			_ = a.Decide(ctx, arg(0), arg(1))

		case "companies":
			_ = a.Companies(ctx)
		case "company":
			if arg(0) == "" {
				printlnFn("Usage: company <id>")
				continue
			}
			_ = a.Company(ctx, arg(0))
		case "addcompany":
			_ = a.AddCompany(ctx)
		case "editco":
			if arg(0) == "" {
				printlnFn("Usage: editco <id>")
				continue
			}
			_ = a.EditCompany(ctx, arg(0))

		case "profile":
			_ = a.Profile(ctx)
		case "editprofile":
			_ = a.EditProfile(ctx)
		case "darkmode":
			_ = a.ToggleDarkMode(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(sess *models.Session) {
	printlnFn("Browsing: (j)obs, filter, clearfilter, page <n>, next, prev, job <id>, companies, company <id>, darkmode")
	switch {
	case sess == nil:
		printlnFn("Account: register, verify, login, forgot, resetpw, exit")
	case sess.User.Role == models.RoleCandidate:
		printlnFn("Candidate: apply <job-id>, myapps, withdraw <id>, resume")
		printlnFn("Account: profile, editprofile, logout, exit")
	case sess.User.Role == models.RoleRecruit:
		printlnFn("Recruiter: myjobs, addjob, editjob, togglejob, deletejob, applicants <job-id>, decide <id> <accept|reject>, addcompany, editco <id>")
		printlnFn("Account: profile, editprofile, logout, exit")
	}
}
