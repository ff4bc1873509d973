package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shaderinspector/internal/execx"
	"shaderinspector/internal/locator"
)

// helper to restore stubs after each test
func withCLIStubs(t *testing.T, stubs func()) {
	t.Helper()
	oldRunner := fnRunner
	oldProbe := fnProbe
	oldListen := fnListenAndServe
	fnProbe = func(context.Context) (string, error) { return "", nil }
	stubs()
	t.Cleanup(func() {
		fnRunner = oldRunner
		fnProbe = oldProbe
		fnListenAndServe = oldListen
	})
}

type fixture struct {
	dir      string
	dxc      string
	fxc      string
	settings string
	state    string
	calls    []execx.Cmd
	output   string
	fail     bool
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	t.Setenv("SHADERINSPECTOR_CONFIG", "")
	t.Setenv("SHADERINSPECTOR_STATE_FILE", "")
	f := &fixture{dir: t.TempDir(), output: "compiled-ok"}
	f.dxc = filepath.Join(f.dir, "bin", "dxc")
	f.fxc = filepath.Join(f.dir, "bin", "fxc")
	f.state = filepath.Join(f.dir, "state", "last.json")
	f.settings = f.write(t, "settings.yaml", fmt.Sprintf(`shaderinspector:
  customDXCPath: %q
  customFXCPath: %q
  addShaderDeclarationsOnInteractiveCompile: true
  shaderDefaults:
    shaderType: ps
    shaderModel: "6_0"
    entryPoint: main
`, f.dxc, f.fxc))
	withCLIStubs(t, func() {
		fnRunner = execx.RunnerFunc(func(_ context.Context, c execx.Cmd) (string, error) {
			f.calls = append(f.calls, c)
			if f.fail {
				return "", &execx.RunError{Args: append([]string{c.Path}, c.Args...), Stderr: "error X3000: syntax error", Err: errors.New("exit status 1")}
			}
			return f.output, nil
		})
	})
	return f
}

func (f *fixture) write(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(f.dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

// exec runs the CLI with the fixture's settings and state file.
func (f *fixture) exec(stdin string, args ...string) (int, string, string) {
	var out, errOut bytes.Buffer
	full := append([]string{"--config", f.settings, "--state-file", f.state, "--env-file", "", "--no-color"}, args...)
	code := run(full, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

const twoShaders = `/*
BEGIN_SHADER_DECLARATIONS
{
	"Shaders": [
		{ "ShaderName": "Sky", "ShaderCompiler": "dxc", "ShaderType": "vs", "EntryPoint": "VSMain" },
		{ "ShaderName": "Sea", "ShaderCompiler": "fxc", "ShaderModel": "5_0", "EntryPoint": "PSMain" }
	]
}
END_SHADER_DECLARATIONS
*/
float4 PSMain() : SV_Target { return 0; }
`

const oneShader = `// BEGIN_SHADER_DECLARATIONS {"Shaders":[{"ShaderName":"Only","ShaderCompiler":"dxc"}]} END_SHADER_DECLARATIONS
float4 main() : SV_Target { return 0; }
`

func TestCompile_SingleDeclaration(t *testing.T) {
	f := newFixture(t)
	src := f.write(t, "only.hlsl", oneShader)

	code, out, errOut := f.exec("", "compile", src)
	if code != 0 {
		t.Fatalf("exit=%d stderr=%s", code, errOut)
	}
	if len(f.calls) != 1 {
		t.Fatalf("runner calls=%d", len(f.calls))
	}
	c := f.calls[0]
	if c.Path != f.dxc {
		t.Fatalf("compiler path=%q want %q", c.Path, f.dxc)
	}
	want := []string{"-nologo", "-Tps_6_0", "-Emain"}
	for _, w := range want {
		if !containsArg(c.Args, w) {
			t.Fatalf("args %v missing %s", c.Args, w)
		}
	}
	if !containsArg(c.Args, src) {
		t.Fatalf("args %v missing source path", c.Args)
	}
	if !strings.Contains(out, "compiled-ok") {
		t.Fatalf("stdout missing compiler output: %q", out)
	}
}

func TestCompile_ShaderFlagSelects(t *testing.T) {
	f := newFixture(t)
	src := f.write(t, "two.hlsl", twoShaders)

	if code, _, errOut := f.exec("", "compile", src, "--shader", "Sea"); code != 0 {
		t.Fatalf("exit=%d stderr=%s", code, errOut)
	}
	if len(f.calls) != 1 || f.calls[0].Path != f.fxc {
		t.Fatalf("expected fxc run, got %+v", f.calls)
	}
	if !containsArg(f.calls[0].Args, "-Tps_5_0") {
		t.Fatalf("args=%v", f.calls[0].Args)
	}
}

func TestCompile_PicksFromTerminal(t *testing.T) {
	f := newFixture(t)
	src := f.write(t, "two.hlsl", twoShaders)

	code, _, errOut := f.exec("1\n", "compile", src)
	if code != 0 {
		t.Fatalf("exit=%d stderr=%s", code, errOut)
	}
	if len(f.calls) != 1 || f.calls[0].Path != f.dxc || !containsArg(f.calls[0].Args, "-Tvs_6_0") {
		t.Fatalf("expected Sky on dxc, got %+v", f.calls)
	}
	if !strings.Contains(errOut, "Sky") || !strings.Contains(errOut, "Sea") {
		t.Fatalf("pick list not shown: %q", errOut)
	}
}

func TestCompile_CompilerFailureExitsOneQuietly(t *testing.T) {
	f := newFixture(t)
	f.fail = true
	src := f.write(t, "only.hlsl", oneShader)

	code, out, errOut := f.exec("", "compile", src)
	if code != 1 {
		t.Fatalf("exit=%d want 1", code)
	}
	if !strings.Contains(out, "X3000") {
		t.Fatalf("compiler diagnostics not shown: %q", out)
	}
	if strings.Contains(errOut, "error:") {
		t.Fatalf("unexpected error line: %q", errOut)
	}
}

func TestCompile_NoBlockNoPrompt(t *testing.T) {
	f := newFixture(t)
	src := f.write(t, "plain.hlsl", "float4 main() : SV_Target { return 0; }\n")

	code, _, errOut := f.exec("", "compile", src, "--no-prompt")
	if code != 1 || !strings.Contains(errOut, "error:") {
		t.Fatalf("exit=%d stderr=%q", code, errOut)
	}
	if len(f.calls) != 0 {
		t.Fatalf("runner should not be called")
	}
}

func TestCompile_ShaderFlagWithoutBlock(t *testing.T) {
	f := newFixture(t)
	src := f.write(t, "plain.hlsl", "float4 main() : SV_Target { return 0; }\n")

	code, _, errOut := f.exec("", "compile", src, "--shader", "Sea")
	if code != 1 || !strings.Contains(errOut, "no shader declaration in") {
		t.Fatalf("exit=%d stderr=%q", code, errOut)
	}
	if strings.Contains(errOut, "cancelled") {
		t.Fatalf("should not fall back to prompting: %q", errOut)
	}
	if len(f.calls) != 0 {
		t.Fatalf("runner should not be called")
	}
}

func TestCompile_WrongLanguage(t *testing.T) {
	f := newFixture(t)
	src := f.write(t, "notes.txt", oneShader)

	code, _, errOut := f.exec("", "compile", src)
	if code != 1 || !strings.Contains(errOut, "error:") {
		t.Fatalf("exit=%d stderr=%q", code, errOut)
	}
}

func TestCompile_StdinUsesTempFile(t *testing.T) {
	f := newFixture(t)

	code, _, errOut := f.exec(oneShader, "compile", "-")
	if code != 0 {
		t.Fatalf("exit=%d stderr=%s", code, errOut)
	}
	if len(f.calls) != 1 {
		t.Fatalf("runner calls=%d", len(f.calls))
	}
	src := f.calls[0].Args[3]
	if !strings.HasPrefix(filepath.Base(src), "shaderinspector-") || !strings.HasSuffix(src, ".hlsl") {
		t.Fatalf("temp source=%q", src)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatalf("temp file should be removed, stat err=%v", err)
	}
}

func TestRepeat_UsesStateFile(t *testing.T) {
	f := newFixture(t)
	src := f.write(t, "only.hlsl", oneShader)

	if code, _, errOut := f.exec("", "repeat"); code != 1 || !strings.Contains(errOut, "haven't compiled anything yet") {
		t.Fatalf("repeat before compile: exit=%d stderr=%q", code, errOut)
	}
	if code, _, errOut := f.exec("", "compile", src); code != 0 {
		t.Fatalf("compile exit=%d stderr=%s", code, errOut)
	}
	if _, err := os.Stat(f.state); err != nil {
		t.Fatalf("state file not written: %v", err)
	}
	if code, _, errOut := f.exec("", "repeat"); code != 0 {
		t.Fatalf("repeat exit=%d stderr=%s", code, errOut)
	}
	if len(f.calls) != 2 || strings.Join(f.calls[0].Args, " ") != strings.Join(f.calls[1].Args, " ") {
		t.Fatalf("repeat should rerun the same command: %+v", f.calls)
	}
}

func TestInteractive_WritesDeclaration(t *testing.T) {
	f := newFixture(t)
	src := f.write(t, "lit.hlsl", "float4 main() : SV_Target { return 0; }\n")

	// Accept every prefilled answer.
	code, _, errOut := f.exec(strings.Repeat("\n", 8), "interactive", src)
	if code != 0 {
		t.Fatalf("exit=%d stderr=%s", code, errOut)
	}
	if len(f.calls) != 1 || f.calls[0].Path != f.dxc {
		t.Fatalf("calls=%+v", f.calls)
	}
	if !containsArg(f.calls[0].Args, "-Tps_6_0") || !containsArg(f.calls[0].Args, "-Emain") {
		t.Fatalf("args=%v", f.calls[0].Args)
	}
	b, err := os.ReadFile(src)
	if err != nil {
		t.Fatal(err)
	}
	text := string(b)
	if !strings.Contains(text, "BEGIN_SHADER_DECLARATIONS") || !strings.Contains(text, `"lit"`) {
		t.Fatalf("declaration not written:\n%s", text)
	}
}

func TestInteractive_DismissedPrompt(t *testing.T) {
	f := newFixture(t)
	src := f.write(t, "lit.hlsl", "float4 main() : SV_Target { return 0; }\n")

	code, _, errOut := f.exec("", "interactive", src)
	if code != 1 || !strings.Contains(errOut, "cancelled") {
		t.Fatalf("exit=%d stderr=%q", code, errOut)
	}
	if len(f.calls) != 0 {
		t.Fatalf("runner should not be called")
	}
}

func TestAddDeclaration(t *testing.T) {
	f := newFixture(t)
	src := f.write(t, "new.hlsl", "float4 main() : SV_Target { return 0; }\n")

	code, out, errOut := f.exec("", "add-declaration", src, "--compiler", "dxc")
	if code != 0 {
		t.Fatalf("exit=%d stderr=%s", code, errOut)
	}
	if !strings.Contains(out, "dxc sample") {
		t.Fatalf("stdout=%q", out)
	}
	b, _ := os.ReadFile(src)
	if !strings.HasPrefix(strings.TrimSpace(string(b)), "/*") || !strings.Contains(string(b), "BEGIN_SHADER_DECLARATIONS") {
		t.Fatalf("sample not inserted at top:\n%s", b)
	}

	code, _, errOut = f.exec("", "add-declaration", src, "--compiler", "dxc")
	if code != 1 || !strings.Contains(errOut, "error:") {
		t.Fatalf("second insert: exit=%d stderr=%q", code, errOut)
	}
}

func TestDoctor_ReportsCompilers(t *testing.T) {
	f := newFixture(t)
	f.write(t, "bin/dxc", "#!/bin/sh\n")

	code, out, errOut := f.exec("", "doctor")
	if code != 0 {
		t.Fatalf("exit=%d stderr=%s", code, errOut)
	}
	if !strings.Contains(out, "✓ dxc") || !strings.Contains(out, f.dxc) {
		t.Fatalf("dxc not reported found: %q", out)
	}
	if !strings.Contains(out, "✗ fxc") {
		t.Fatalf("fxc not reported missing: %q", out)
	}
	if !strings.Contains(out, f.state) {
		t.Fatalf("state path missing: %q", out)
	}
}

func TestDoctor_VulkanFallback(t *testing.T) {
	f := newFixture(t)
	f.settings = f.write(t, "empty.yaml", "editor:\n  tabSize: 2\n")
	sdk := filepath.Join(f.dir, "vulkan")
	f.write(t, "vulkan/bin/dxc", "")
	t.Setenv("VULKAN_SDK", sdk)

	code, out, _ := f.exec("", "doctor")
	if code != 0 {
		t.Fatalf("exit=%d", code)
	}
	if !strings.Contains(out, filepath.Join(sdk, "bin", "dxc")) || !strings.Contains(out, string(locator.SourceVulkanSDK)) {
		t.Fatalf("vulkan dxc not reported: %q", out)
	}
}

func TestServe_WiresServer(t *testing.T) {
	f := newFixture(t)
	var got *http.Server
	fnListenAndServe = func(srv *http.Server) error {
		got = srv
		return http.ErrServerClosed
	}
	code, _, errOut := f.exec("", "serve", "--addr", "127.0.0.1:0", "--cors", "--max-body-bytes", "1024")
	if code != 0 {
		t.Fatalf("exit=%d stderr=%s", code, errOut)
	}
	if got == nil || got.Addr != "127.0.0.1:0" || got.Handler == nil {
		t.Fatalf("server not configured: %+v", got)
	}
}

func TestServe_RepeatIgnoresEarlierRun(t *testing.T) {
	f := newFixture(t)
	src := f.write(t, "only.hlsl", oneShader)
	if code, _, errOut := f.exec("", "compile", src); code != 0 {
		t.Fatalf("compile exit=%d stderr=%s", code, errOut)
	}
	if _, err := os.Stat(f.state); err != nil {
		t.Fatalf("state file not written: %v", err)
	}

	status := 0
	fnListenAndServe = func(srv *http.Server) error {
		w := httptest.NewRecorder()
		srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/repeat", nil))
		status = w.Code
		return http.ErrServerClosed
	}
	if code, _, errOut := f.exec("", "serve", "--addr", "127.0.0.1:0"); code != 0 {
		t.Fatalf("serve exit=%d stderr=%s", code, errOut)
	}
	if status != http.StatusNotFound {
		t.Fatalf("repeat on a fresh daemon: status=%d want 404", status)
	}
	if len(f.calls) != 1 {
		t.Fatalf("daemon should not rerun the earlier compile: %+v", f.calls)
	}
}

func TestServe_ListenError(t *testing.T) {
	f := newFixture(t)
	fnListenAndServe = func(*http.Server) error { return errors.New("address in use") }
	code, _, errOut := f.exec("", "serve")
	if code != 1 || !strings.Contains(errOut, "address in use") {
		t.Fatalf("exit=%d stderr=%q", code, errOut)
	}
}

func TestMainWithArgs_Codes(t *testing.T) {
	f := newFixture(t)
	if code, _, _ := f.exec("", "--help"); code != 0 {
		t.Fatalf("help expected 0, got %d", code)
	}
	if code, _, _ := f.exec("", "nope"); code != 1 {
		t.Fatalf("unknown command expected 1, got %d", code)
	}
	if code, _, _ := f.exec("", "compile"); code != 1 {
		t.Fatalf("missing arg expected 1, got %d", code)
	}
}

func TestSettingsLoadError(t *testing.T) {
	f := newFixture(t)
	f.settings = f.write(t, "bad.json", "{nope")
	code, _, errOut := f.exec("", "doctor")
	if code != 1 || !strings.Contains(errOut, "error:") {
		t.Fatalf("exit=%d stderr=%q", code, errOut)
	}
}

func TestSplitCSV(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"a,,c", []string{"a", "c"}},
		{"", nil},
	}
	for _, c := range cases {
		got := splitCSV(c.in)
		if len(got) != len(c.want) {
			t.Fatalf("%q -> %v, want %v", c.in, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("%q -> %v, want %v", c.in, got, c.want)
			}
		}
	}
}

func containsArg(args []string, want string) bool {
	for _, a := range args {
		if a == want {
			return true
		}
	}
	return false
}
