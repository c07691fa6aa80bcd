package i18n

// Page and form labels.
const (
	KeyTitle            Key = "title"
	KeySubtitle         Key = "subtitle"
	KeyTextLabel        Key = "textLabel"
	KeyTextPlaceholder  Key = "textPlaceholder"
	KeyLanguageLabel    Key = "languageLabel"
	KeyLanguageName     Key = "languageName"
	KeyUsernameLabel    Key = "usernameLabel"
	KeyEmailLabel       Key = "emailLabel"
	KeyPasswordLabel    Key = "passwordLabel"
	KeySubmitButton     Key = "submitButton"
	KeySubmitBusy       Key = "submitBusy"
	KeyLoginButton      Key = "loginButton"
	KeyLoginBusy        Key = "loginBusy"
	KeyRegisterButton   Key = "registerButton"
	KeyRegisterBusy     Key = "registerBusy"
	KeyLogoutButton     Key = "logoutButton"
	KeyLoading          Key = "loading"
	KeyDisclaimer       Key = "disclaimer"
	KeyGreeting         Key = "greeting"
	KeyGreetingAnon     Key = "greetingAnonymous"
	KeyLoggedOut        Key = "loggedOut"
	KeyTokenExpiresAt   Key = "tokenExpiresAt"
	KeyLanguageSwitched Key = "languageSwitched"
	KeyLoggedOutNotice  Key = "loggedOutNotice"
)

// Result labels.
const (
	KeySentiment         Key = "sentiment"
	KeyConfidence        Key = "confidence"
	KeyEmotions          Key = "emotions"
	KeySkills            Key = "skills"
	KeyPatterns          Key = "patterns"
	KeyNone              Key = "none"
	KeyError             Key = "error"
	KeySentimentPositive Key = "sentimentPositive"
	KeySentimentNegative Key = "sentimentNegative"
	KeySentimentNeutral  Key = "sentimentNeutral"
	KeySentimentMixed    Key = "sentimentMixed"
)

// Feedback and error messages.
const (
	KeyErrUsernameRequired   Key = "errUsernameRequired"
	KeyErrEmailRequired      Key = "errEmailRequired"
	KeyErrEmailInvalid       Key = "errEmailInvalid"
	KeyErrPasswordRequired   Key = "errPasswordRequired"
	KeyErrTextRequired       Key = "errTextRequired"
	KeyErrInvalid            Key = "errInvalid"
	KeyErrNotLoggedIn        Key = "errNotLoggedIn"
	KeyErrAlreadyLoggedIn    Key = "errAlreadyLoggedIn"
	KeyErrSessionExpired     Key = "errSessionExpired"
	KeyErrNetwork            Key = "errNetwork"
	KeyErrBusy               Key = "errBusy"
	KeyErrAnalysisFailed     Key = "errAnalysisFailed"
	KeyErrLoginFailed        Key = "errLoginFailed"
	KeyErrRegistrationFailed Key = "errRegistrationFailed"
	KeyErrUnknownLanguage    Key = "errUnknownLanguage"
)

// Terminal-only labels.
const (
	KeyHelpLoggedOut  Key = "helpLoggedOut"
	KeyHelpLoggedIn   Key = "helpLoggedIn"
	KeyUnknownCommand Key = "unknownCommand"
	KeyBye            Key = "bye"
	KeyTextPrompt     Key = "textPrompt"
)
