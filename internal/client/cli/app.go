package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/jobdesk/jobdesk/internal/client/api"
	"github.com/jobdesk/jobdesk/internal/client/config"
	"github.com/jobdesk/jobdesk/internal/client/filter"
	"github.com/jobdesk/jobdesk/internal/client/jobs"
	"github.com/jobdesk/jobdesk/internal/client/localdb"
	"github.com/jobdesk/jobdesk/internal/client/services"
	"github.com/jobdesk/jobdesk/internal/client/session"
	"github.com/jobdesk/jobdesk/internal/logging"
)

var _ execIface = (*App)(nil)

// App holds the wired client: configuration, local storage, session state,
// the filter store, the query engine and the application services.
type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	client   *api.HTTPClient
	sessions *session.Store
	filters  *filter.Store
	engine   *jobs.Engine

	authService        services.AuthService
	jobService         services.JobService
	applicationService services.ApplicationService
	companyService     services.CompanyService
	profileService     services.ProfileService

	reader *bufio.Reader

	// page is the current position in the filtered job list. Filter changes
	// reset it to the first page.
	page int
}

// NewApp wires the full client from configuration.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := localdb.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "initializing local database", "err", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log)
	sessions := session.NewStore(db, log)

	app := &App{
		config:   c,
		log:      log.With("component", "cli"),
		db:       db,
		client:   apiClient,
		sessions: sessions,
		filters:  filter.NewStore(),
		engine:   jobs.NewEngine(apiClient, log),
		reader:   bufio.NewReader(os.Stdin),
		page:     1,
	}

	app.authService = services.NewAuthService(apiClient, sessions, log)
	app.jobService = services.NewJobService(apiClient, log)
	app.applicationService = services.NewApplicationService(apiClient, log)
	app.companyService = services.NewCompanyService(apiClient, log)
	app.profileService = services.NewProfileService(apiClient, sessions, c.DownloadsDir, log)

	// Token lifecycle plumbing. Rotated tokens are persisted; an
	// unrecoverable auth failure tears the session down, and teardown in
	// turn drops the client back to the login surface.
	apiClient.OnTokensRefreshed(func(access, refresh string) {
		if err := sessions.UpdateTokens(context.Background(), access, refresh); err != nil {
			log.Warn(context.Background(), "persisting refreshed tokens", "err", err)
		}
	})
	apiClient.OnAuthFailure(func() {
		apiClient.ClearTokens()
		sessions.Teardown(context.Background())
	})
	sessions.OnTeardown(func() {
		printlnFn("Session ended. Please log in again.")
	})

	// Any filter change moves the view back to the first page.
	app.filters.Subscribe(func(filter.Criteria) { app.page = 1 })

	return app, nil
}

// Bootstrap restores the persisted session, if any, and arms the API client
// with its tokens.
func (a *App) Bootstrap(ctx context.Context) {
	if sess := a.sessions.Bootstrap(ctx); sess != nil {
		a.client.SetTokens(sess.AccessToken, sess.RefreshToken)
		a.log.Info(ctx, "session restored", "email", sess.User.Email, "role", sess.User.Role)
	}
}

// Run bootstraps the session and enters the REPL, blocking until exit.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	a.Bootstrap(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// status renders the prompt suffix: the logged-in user and role, if any.
func (a *App) status() string {
	sess := a.sessions.Current()
	if sess == nil {
		return "guest"
	}
	return sess.User.Email + " " + string(sess.User.Role)
}
