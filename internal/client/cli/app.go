package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/mindanalyzer/internal/client/client"
	"github.com/dmitrijs2005/mindanalyzer/internal/client/config"
	"github.com/dmitrijs2005/mindanalyzer/internal/client/localdb"
	"github.com/dmitrijs2005/mindanalyzer/internal/client/models"
	"github.com/dmitrijs2005/mindanalyzer/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/mindanalyzer/internal/client/services"
	"github.com/dmitrijs2005/mindanalyzer/internal/client/ui"
	"github.com/dmitrijs2005/mindanalyzer/internal/i18n"
	"github.com/dmitrijs2005/mindanalyzer/internal/logging"
)

// localeEnv lists the variables consulted for the system locale, most
// specific first.
var localeEnv = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

type App struct {
	config  *config.Config
	logger  logging.Logger
	catalog i18n.Catalog

	authService     services.AuthService
	analysisService services.AnalysisService
	languageService services.LanguageService

	submit   *ui.Control
	login    *ui.Control
	register *ui.Control

	reader *bufio.Reader
	out    io.Writer
	db     *sql.DB
}

// NewApp opens the local database and wires the services. The caller must
// Close the App.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := localdb.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.ServerURL, c.RequestTimeout, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := newApp(apiClient, metadata.NewSQLiteRepository(db), metadata.NewMemoryRepository(), logger,
		bufio.NewReader(os.Stdin), os.Stdout)
	a.config = c
	a.db = db
	return a, nil
}

// newApp assembles an App from its collaborators. The session store only
// lives as long as the process.
func newApp(c client.Client, durable, session metadata.Repository, logger logging.Logger, in *bufio.Reader, out io.Writer) *App {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	auth := services.NewAuthService(c, durable, logger)

	a := &App{
		config:          &config.Config{},
		logger:          logger,
		catalog:         i18n.DefaultCatalog(),
		authService:     auth,
		analysisService: services.NewAnalysisService(c, auth, logger),
		languageService: services.NewLanguageService(durable, session, logger),
		reader:          in,
		out:             out,
	}
	a.submit = ui.NewControl("", "")
	a.login = ui.NewControl("", "")
	a.register = ui.NewControl("", "")
	a.relabel()
	return a
}

// Close releases the local database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Run restores the session and language, prints the banner and blocks in
// the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	a.start(ctx)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) start(ctx context.Context) {
	if a.config.Language != "" {
		a.languageService.Apply(ctx, a.config.Language)
	} else {
		detected := a.languageService.Detect(ctx, systemLocales())
		a.languageService.Apply(ctx, detected.String())
	}
	a.relabel()

	if _, err := a.authService.Restore(ctx); err != nil {
		a.logger.Warn(ctx, "could not restore session", "error", err)
	}

	labels := ui.Labels(a.catalog, a.lang())
	a.println(labels.Title)
	a.println(labels.Subtitle)
	a.println(labels.VisibleDisclaimer())
	if g := ui.Greeting(a.catalog, a.lang(), a.authService.Session()); g != "" {
		a.println(g)
	}
	if a.isLoggedIn() {
		a.println(a.message(i18n.KeyHelpLoggedIn))
	} else {
		a.println(a.message(i18n.KeyHelpLoggedOut))
	}
}

func systemLocales() []string {
	var locales []string
	for _, k := range localeEnv {
		if v := os.Getenv(k); v != "" {
			locales = append(locales, v)
		}
	}
	return locales
}

func (a *App) lang() i18n.Language {
	return a.languageService.Current()
}

// relabel refreshes the control labels after a language change.
func (a *App) relabel() {
	l := ui.Labels(a.catalog, a.lang())
	a.submit.SetLabels(l.Submit, l.SubmitBusy)
	a.login.SetLabels(l.Login, l.LoginBusy)
	a.register.SetLabels(l.Register, l.RegisterBusy)
}

func (a *App) isLoggedIn() bool {
	return a.authService.State() == models.LoggedIn
}

func (a *App) message(key i18n.Key, args ...any) string {
	if len(args) == 0 {
		return a.catalog.T(a.lang(), key)
	}
	return a.catalog.Tf(a.lang(), key, args...)
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

func (a *App) getStatus() string {
	s := a.authService.Session()
	if name := s.Username(); name != "" {
		return fmt.Sprintf(" (%s)", name)
	}
	if s.Token != "" {
		return " (*)"
	}
	return ""
}
