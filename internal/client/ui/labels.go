package ui

import "github.com/dmitrijs2005/mindanalyzer/internal/i18n"

// Disclaimer is one localized disclaimer block. Only the one matching the
// active language is visible.
type Disclaimer struct {
	Language i18n.Language
	Text     string
	Visible  bool
}

// LabelView holds every static label of the page in one language.
type LabelView struct {
	Language        i18n.Language
	Title           string
	Subtitle        string
	TextLabel       string
	TextPlaceholder string
	LanguageLabel   string
	UsernameLabel   string
	EmailLabel      string
	PasswordLabel   string
	Submit          string
	SubmitBusy      string
	Login           string
	LoginBusy       string
	Register        string
	RegisterBusy    string
	Logout          string
	Loading         string
	Disclaimers     []Disclaimer
}

func Labels(c i18n.Catalog, lang i18n.Language) LabelView {
	lang = i18n.Normalize(string(lang))

	v := LabelView{
		Language:        lang,
		Title:           c.T(lang, i18n.KeyTitle),
		Subtitle:        c.T(lang, i18n.KeySubtitle),
		TextLabel:       c.T(lang, i18n.KeyTextLabel),
		TextPlaceholder: c.T(lang, i18n.KeyTextPlaceholder),
		LanguageLabel:   c.T(lang, i18n.KeyLanguageLabel),
		UsernameLabel:   c.T(lang, i18n.KeyUsernameLabel),
		EmailLabel:      c.T(lang, i18n.KeyEmailLabel),
		PasswordLabel:   c.T(lang, i18n.KeyPasswordLabel),
		Submit:          c.T(lang, i18n.KeySubmitButton),
		SubmitBusy:      c.T(lang, i18n.KeySubmitBusy),
		Login:           c.T(lang, i18n.KeyLoginButton),
		LoginBusy:       c.T(lang, i18n.KeyLoginBusy),
		Register:        c.T(lang, i18n.KeyRegisterButton),
		RegisterBusy:    c.T(lang, i18n.KeyRegisterBusy),
		Logout:          c.T(lang, i18n.KeyLogoutButton),
		Loading:         c.T(lang, i18n.KeyLoading),
	}

	for _, l := range i18n.Supported() {
		v.Disclaimers = append(v.Disclaimers, Disclaimer{
			Language: l,
			Text:     c.T(l, i18n.KeyDisclaimer),
			Visible:  l == lang,
		})
	}
	return v
}

// VisibleDisclaimer returns the text of the disclaimer being shown.
func (v LabelView) VisibleDisclaimer() string {
	for _, d := range v.Disclaimers {
		if d.Visible {
			return d.Text
		}
	}
	return ""
}
