package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"shaderinspector/internal/config"
	"shaderinspector/internal/execx"
	"shaderinspector/internal/httpapi"
	"shaderinspector/internal/inspector"
	"shaderinspector/internal/locator"
	"shaderinspector/internal/output"
)

// fakeCompiler echoes its argv. A -DFAIL define makes it exit non-zero with a
// diagnostic on stderr.
const fakeCompiler = `#!/bin/sh
for a in "$@"; do
	case "$a" in
	-DFAIL) echo "error X3000: forced failure" >&2; exit 3 ;;
	esac
done
echo "compiled $*"
`

type env struct {
	srv     *httptest.Server
	dir     string
	tempDir string
	dxc     string
}

// newServer wires the real locator, runner and session behind the HTTP API.
// The custom dxc path points at a shell script.
func newServer(t *testing.T) *env {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake compiler is a POSIX shell script")
	}
	e := &env{dir: t.TempDir(), tempDir: t.TempDir()}
	e.dxc = filepath.Join(e.dir, "dxc")
	if err := os.WriteFile(e.dxc, []byte(fakeCompiler), 0o755); err != nil {
		t.Fatalf("write fake compiler: %v", err)
	}
	settings := config.New(map[string]string{
		"shaderinspector.customDXCPath":               e.dxc,
		"shaderinspector.shaderDefaults.shaderType":   "ps",
		"shaderinspector.shaderDefaults.shaderModel":  "6_0",
		"shaderinspector.shaderDefaults.optimization": "3",
	})
	loc := locator.New(locator.Config{
		Settings: settings,
		Probe:    func(context.Context) (string, error) { return "", nil },
		Getenv:   func(string) string { return "" },
	})
	board := output.NewBoard()
	sess := inspector.NewWithConfig(inspector.SessionConfig{
		Settings:  settings,
		Locator:   loc,
		Runner:    execx.ExecRunner{},
		Surfaces:  board.Open,
		StatePath: filepath.Join(e.dir, "last.json"),
		TempDir:   e.tempDir,
	})
	mux := httpapi.NewMux(&httpapi.Backend{Session: sess, Board: board, Locator: loc, TabSize: settings.TabSize})
	e.srv = httptest.NewServer(mux)
	t.Cleanup(e.srv.Close)
	return e
}

func (e *env) writeShader(t *testing.T, name, text string) string {
	t.Helper()
	p := filepath.Join(e.dir, name)
	if err := os.WriteFile(p, []byte(text), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func httpGet(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}

func httpPostJSON(t *testing.T, url string, payload any) (*http.Response, []byte) {
	t.Helper()
	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}
