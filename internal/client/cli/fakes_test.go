package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/mindanalyzer/internal/client/models"
	"github.com/dmitrijs2005/mindanalyzer/internal/client/repositories/metadata"
)

// fakeClient implements client.Client.
type fakeClient struct {
	authResp   *models.AuthResponse
	authErr    error
	analyzeRet *models.AnalysisResult
	analyzeErr error

	calls       int
	lastLogin   models.LoginRequest
	lastAnalyze models.AnalysisRequest
}

func (f *fakeClient) Register(_ context.Context, _ models.RegisterRequest) (*models.AuthResponse, error) {
	f.calls++
	return f.authResp, f.authErr
}

func (f *fakeClient) Login(_ context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	f.calls++
	f.lastLogin = req
	return f.authResp, f.authErr
}

func (f *fakeClient) Analyze(_ context.Context, _ string, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	f.calls++
	f.lastAnalyze = req
	return f.analyzeRet, f.analyzeErr
}

type testApp struct {
	*App
	client  *fakeClient
	durable *metadata.MemoryRepository
	session *metadata.MemoryRepository
	buf     *bytes.Buffer
}

// newTestApp builds an App over in-memory stores; input feeds the reader.
func newTestApp(t *testing.T, fc *fakeClient, input string) *testApp {
	t.Helper()
	durable, session := metadata.NewMemoryRepository(), metadata.NewMemoryRepository()
	out := &bytes.Buffer{}
	a := newApp(fc, durable, session, nil,
		bufio.NewReader(strings.NewReader(input)), out)
	return &testApp{App: a, client: fc, durable: durable, session: session, buf: out}
}

// stubInputs replaces the interactive prompts with scripted answers.
func stubInputs(t *testing.T, answers []string, password []byte) *[]string {
	t.Helper()
	var prompts []string
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		prompts = append(prompts, prompt)
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getPassword = func(string, io.Writer) ([]byte, error) {
		return append([]byte(nil), password...), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
	return &prompts
}
