//go:build js && wasm

// Command web is the browser front end. It is compiled to WebAssembly and
// served next to an index.html that defines the elements referenced below
// and calls the registered press* and changeLanguage functions.
package main

import (
	"context"
	"os"
	"syscall/js"
	"time"

	"github.com/dmitrijs2005/mindanalyzer/internal/client/client"
	"github.com/dmitrijs2005/mindanalyzer/internal/client/models"
	"github.com/dmitrijs2005/mindanalyzer/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/mindanalyzer/internal/client/services"
	"github.com/dmitrijs2005/mindanalyzer/internal/client/ui"
	"github.com/dmitrijs2005/mindanalyzer/internal/i18n"
	"github.com/dmitrijs2005/mindanalyzer/internal/logging"
)

const requestTimeout = 60 * time.Second

type App struct {
	doc     js.Value
	catalog i18n.Catalog
	logger  logging.Logger

	auth     services.AuthService
	analysis services.AnalysisService
	language services.LanguageService

	submit   *ui.Control
	login    *ui.Control
	register *ui.Control
}

func main() {
	ctx := context.Background()
	logger := logging.NewTextLogger(os.Stdout, "warn")

	origin := js.Global().Get("location").Get("origin").String()
	apiClient, err := client.NewHTTPClient(origin, requestTimeout, logger)
	if err != nil {
		logger.Error(ctx, "bad origin", "origin", origin, "error", err)
		return
	}

	durable := metadata.NewLocalStorage()
	auth := services.NewAuthService(apiClient, durable, logger)

	app := &App{
		doc:      js.Global().Get("document"),
		catalog:  i18n.DefaultCatalog(),
		logger:   logger,
		auth:     auth,
		analysis: services.NewAnalysisService(apiClient, auth, logger),
		language: services.NewLanguageService(durable, metadata.NewSessionStorage(), logger),
		submit:   ui.NewControl("", ""),
		login:    ui.NewControl("", ""),
		register: ui.NewControl("", ""),
	}

	app.language.Apply(ctx, app.language.Detect(ctx, browserLocales()).String())
	if _, err := app.auth.Restore(ctx); err != nil {
		logger.Warn(ctx, "could not restore session", "error", err)
	}

	app.bind("pressLogin", func(js.Value, []js.Value) { go app.handleLogin() })
	app.bind("pressRegister", func(js.Value, []js.Value) { go app.handleRegister() })
	app.bind("pressLogout", func(js.Value, []js.Value) { app.handleLogout() })
	app.bind("pressAnalyze", func(js.Value, []js.Value) { go app.handleAnalyze() })
	app.bind("changeLanguage", func(_ js.Value, args []js.Value) {
		code := app.value("language")
		if len(args) > 0 && args[0].Type() == js.TypeString {
			code = args[0].String()
		}
		app.handleLanguage(code)
	})

	app.renderLabels()
	app.renderAuth()

	select {}
}

func (a *App) bind(name string, fn func(this js.Value, args []js.Value)) {
	js.Global().Set(name, js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(this, args)
		return nil
	}))
}

// browserLocales returns navigator.languages, or navigator.language.
func browserLocales() []string {
	nav := js.Global().Get("navigator")
	var out []string
	if langs := nav.Get("languages"); langs.Truthy() {
		for i := 0; i < langs.Length(); i++ {
			out = append(out, langs.Index(i).String())
		}
	}
	if len(out) == 0 {
		if l := nav.Get("language"); l.Truthy() {
			out = append(out, l.String())
		}
	}
	return out
}

func (a *App) lang() i18n.Language {
	return a.language.Current()
}

func (a *App) handleLogin() {
	if a.auth.State() == models.LoggedIn || !a.login.Begin() {
		return
	}
	defer func() {
		a.login.End()
		a.renderButton("loginButton", a.login)
	}()
	a.renderButton("loginButton", a.login)
	a.setText("authError", "")

	ctx := context.Background()
	password := []byte(a.value("password"))
	_, err := a.auth.Login(ctx, a.value("username"), password, a.lang())
	if err != nil {
		a.setText("authError", ui.ErrorMessage(a.catalog, a.lang(), err, i18n.KeyErrLoginFailed))
		return
	}
	a.setValue("password", "")
	a.renderAuth()
}

func (a *App) handleRegister() {
	if a.auth.State() == models.LoggedIn || !a.register.Begin() {
		return
	}
	defer func() {
		a.register.End()
		a.renderButton("registerButton", a.register)
	}()
	a.renderButton("registerButton", a.register)
	a.setText("authError", "")

	ctx := context.Background()
	password := []byte(a.value("password"))
	_, err := a.auth.Register(ctx, a.value("username"), a.value("email"), password, a.lang())
	if err != nil {
		a.setText("authError", ui.ErrorMessage(a.catalog, a.lang(), err, i18n.KeyErrRegistrationFailed))
		return
	}
	a.setValue("password", "")
	a.renderAuth()
}

func (a *App) handleLogout() {
	a.auth.Logout(context.Background())
	a.clearResult()
	a.renderAuth()
}

func (a *App) handleAnalyze() {
	if !a.submit.Begin() {
		return
	}
	defer func() {
		a.submit.End()
		a.renderButton("submitButton", a.submit)
	}()
	a.renderButton("submitButton", a.submit)
	a.showLoading()

	res, err := a.analysis.Analyze(context.Background(), a.value("text"), a.lang())
	if err != nil {
		a.showError(ui.ErrorMessage(a.catalog, a.lang(), err, i18n.KeyErrAnalysisFailed))
		a.renderAuth()
		return
	}
	a.showResult(ui.Result(a.catalog, a.lang(), res))
}

func (a *App) handleLanguage(code string) {
	a.language.Apply(context.Background(), code)
	a.renderLabels()
	a.renderAuth()
}
