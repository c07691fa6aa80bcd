package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/mindanalyzer/internal/i18n"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	message(key i18n.Key, args ...any) string
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Analyze(ctx context.Context, text string) error
	SetLanguage(ctx context.Context, code string) error
	Status(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the MindAnalyzer CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on 'a'. The loop exits on EOF or when the user
// types "exit" or "quit".
//
//	Not logged in:
//	  - help              show available commands
//	  - register          create an account
//	  - login             authenticate
//	  - lang <en|ru>      switch the UI language
//	  - status            show the session state
//	  - exit | quit       leave the program
//
//	Logged in:
//	  - analyze [text]    analyze text (prompts when omitted)
//	  - logout            log out
//	  - help, lang, status, exit as above
//
// Errors returned by command handlers are ignored here; handlers print
// their own feedback.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ma%s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), cmd))

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(a.message(i18n.KeyHelpLoggedIn))
			} else {
				printlnFn(a.message(i18n.KeyHelpLoggedOut))
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "analyze":
			_ = a.Analyze(ctx, rest)

		case "lang":
			_ = a.SetLanguage(ctx, rest)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn(a.message(i18n.KeyBye))
			return

		default:
			printlnFn(a.message(i18n.KeyUnknownCommand, cmd))
		}

		if err != nil {
			return
		}
	}
}
