// Package cli provides the interactive MindAnalyzer terminal client.
//
// It wires configuration, the local SQLite store, the HTTP API client and
// the services, then runs a REPL. On start the UI language is detected
// (saved preference, then LC_ALL/LC_MESSAGES/LANG, then Russian) and a
// persisted token is restored without contacting the server.
//
// Commands: register, login, logout, analyze [text], lang <en|ru>,
// status, help, exit.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
