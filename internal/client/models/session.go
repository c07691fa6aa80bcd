// Package models defines the client-side data exchanged with the
// MindAnalyzer backend and held in memory between commands.
package models

// User is the profile returned by the auth endpoints. Only Username is
// guaranteed; the remaining fields are filled when the backend sends them.
// CreatedAt is kept verbatim: the backend emits ISO timestamps that may
// lack a zone offset.
type User struct {
	ID        int64  `json:"id,omitempty"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// AuthState is the state of the auth UI.
type AuthState int

const (
	LoggedOut AuthState = iota
	LoggedIn
)

func (s AuthState) String() string {
	if s == LoggedIn {
		return "logged_in"
	}
	return "logged_out"
}

// Session is the current authentication record.
//
// User is set only together with Token. After a restart only the token is
// restored, so a Session with a Token and no User is valid until the next
// login or register fills it in.
type Session struct {
	Token string
	User  *User
}

// State derives the auth UI state from the presence of a token.
func (s Session) State() AuthState {
	if s.Token == "" {
		return LoggedOut
	}
	return LoggedIn
}

// Username returns the known username, or "" when the profile is absent.
func (s Session) Username() string {
	if s.User == nil {
		return ""
	}
	return s.User.Username
}
