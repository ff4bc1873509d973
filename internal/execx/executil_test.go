package execx

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"testing"
	"time"
)

func requireShell(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh")
	}
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	return sh
}

func TestExecRunner_Stdout(t *testing.T) {
	sh := requireShell(t)
	out, err := ExecRunner{}.Run(context.Background(), Cmd{Path: sh, Args: []string{"-c", "printf 'compiled ok'"}})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "compiled ok" {
		t.Fatalf("stdout=%q", out)
	}
}

func TestExecRunner_ArgsAreNotShellSplit(t *testing.T) {
	sh := requireShell(t)
	out, err := ExecRunner{}.Run(context.Background(), Cmd{Path: sh, Args: []string{"-c", `printf '%s|' "$@"`, "sh", "a b.hlsl", "-DX=1 2"}})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "a b.hlsl|-DX=1 2|" {
		t.Fatalf("argv split unexpectedly: %q", out)
	}
}

func TestExecRunner_EnvAndDir(t *testing.T) {
	sh := requireShell(t)
	dir := t.TempDir()
	out, err := ExecRunner{}.Run(context.Background(), Cmd{Path: sh, Args: []string{"-c", "printf '%s:%s' \"$SI_TEST\" \"$(pwd)\""}, Env: map[string]string{"SI_TEST": "v"}, Dir: dir})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(out, "v:") {
		t.Fatalf("env not passed: %q", out)
	}
}

func TestExecRunner_FailureCarriesStderr(t *testing.T) {
	sh := requireShell(t)
	_, err := ExecRunner{}.Run(context.Background(), Cmd{Path: sh, Args: []string{"-c", "echo 'shader.hlsl:3:1: error: bad' >&2; exit 1"}})
	var re *RunError
	if !errors.As(err, &re) {
		t.Fatalf("expected RunError, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "Command failed: ") || !strings.Contains(err.Error(), "error: bad") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestExecRunner_MissingBinary(t *testing.T) {
	_, err := ExecRunner{}.Run(context.Background(), Cmd{Path: "/definitely/not/a/compiler"})
	if err == nil || !strings.Contains(err.Error(), "Command failed: /definitely/not/a/compiler") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExecRunner_ContextTimeout(t *testing.T) {
	sh := requireShell(t)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := ExecRunner{}.Run(ctx, Cmd{Path: sh, Args: []string{"-c", "exec sleep 5"}})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestRunnerFunc(t *testing.T) {
	var got Cmd
	r := RunnerFunc(func(_ context.Context, c Cmd) (string, error) { got = c; return "ok", nil })
	out, err := r.Run(context.Background(), Cmd{Path: "dxc", Args: []string{"-nologo"}})
	if err != nil || out != "ok" || got.Path != "dxc" {
		t.Fatalf("unexpected: out=%q err=%v cmd=%+v", out, err, got)
	}
}
