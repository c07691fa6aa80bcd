//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/dmitrijs2005/mindanalyzer/internal/client/models"
	"github.com/dmitrijs2005/mindanalyzer/internal/client/ui"
	"github.com/dmitrijs2005/mindanalyzer/internal/i18n"
)

// Text always goes in through textContent, so server-supplied strings are
// never parsed as markup.

func (a *App) el(id string) js.Value {
	return a.doc.Call("getElementById", id)
}

func (a *App) value(id string) string {
	if e := a.el(id); e.Truthy() {
		return e.Get("value").String()
	}
	return ""
}

func (a *App) setValue(id, v string) {
	if e := a.el(id); e.Truthy() {
		e.Set("value", v)
	}
}

func (a *App) setText(id, text string) {
	if e := a.el(id); e.Truthy() {
		e.Set("textContent", text)
	}
}

func (a *App) setHidden(id string, hidden bool) {
	if e := a.el(id); e.Truthy() {
		e.Set("hidden", hidden)
	}
}

func (a *App) renderButton(id string, c *ui.Control) {
	if e := a.el(id); e.Truthy() {
		e.Set("textContent", c.Label())
		e.Set("disabled", c.Busy())
	}
}

func (a *App) renderLabels() {
	l := ui.Labels(a.catalog, a.lang())

	a.submit.SetLabels(l.Submit, l.SubmitBusy)
	a.login.SetLabels(l.Login, l.LoginBusy)
	a.register.SetLabels(l.Register, l.RegisterBusy)

	a.doc.Set("title", l.Title)
	a.doc.Get("documentElement").Set("lang", l.Language.String())
	a.setText("title", l.Title)
	a.setText("subtitle", l.Subtitle)
	a.setText("textLabel", l.TextLabel)
	a.setText("languageLabel", l.LanguageLabel)
	a.setText("usernameLabel", l.UsernameLabel)
	a.setText("emailLabel", l.EmailLabel)
	a.setText("passwordLabel", l.PasswordLabel)
	a.setText("logoutButton", l.Logout)
	a.setValue("language", l.Language.String())
	if e := a.el("text"); e.Truthy() {
		e.Set("placeholder", l.TextPlaceholder)
	}

	a.renderButton("submitButton", a.submit)
	a.renderButton("loginButton", a.login)
	a.renderButton("registerButton", a.register)

	for _, d := range l.Disclaimers {
		id := "disclaimer-" + d.Language.String()
		a.setText(id, d.Text)
		a.setHidden(id, !d.Visible)
	}
}

// renderAuth shows either the auth form or the greeting and analysis
// form, depending on the session.
func (a *App) renderAuth() {
	s := a.auth.Session()
	loggedIn := s.State() == models.LoggedIn

	a.setHidden("authForm", loggedIn)
	a.setHidden("sessionPanel", !loggedIn)
	a.setHidden("analysisForm", !loggedIn)
	a.setText("greeting", ui.Greeting(a.catalog, a.lang(), s))
}

func (a *App) result() js.Value {
	return a.el("result")
}

func (a *App) clearResult() {
	if r := a.result(); r.Truthy() {
		r.Set("textContent", "")
	}
}

func (a *App) appendDiv(parent js.Value, class, text string) js.Value {
	div := a.doc.Call("createElement", "div")
	if class != "" {
		div.Set("className", class)
	}
	if text != "" {
		div.Set("textContent", text)
	}
	parent.Call("appendChild", div)
	return div
}

func (a *App) showLoading() {
	a.clearResult()
	if r := a.result(); r.Truthy() {
		a.appendDiv(r, "loading", a.catalog.T(a.lang(), i18n.KeyLoading))
	}
}

func (a *App) showError(msg string) {
	a.clearResult()
	r := a.result()
	if !r.Truthy() {
		return
	}
	box := a.appendDiv(r, "error", "")
	strong := a.doc.Call("createElement", "strong")
	strong.Set("textContent", a.catalog.T(a.lang(), i18n.KeyError))
	box.Call("appendChild", strong)
	box.Call("appendChild", a.doc.Call("createTextNode", " "+msg))
}

func (a *App) showResult(v ui.ResultView) {
	a.clearResult()
	r := a.result()
	if !r.Truthy() {
		return
	}
	for _, row := range v.Rows() {
		item := a.appendDiv(r, "result-item", "")
		a.appendDiv(item, "result-label", row.Label)
		a.appendDiv(item, "", row.Value)
	}
}
