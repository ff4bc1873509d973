package inspector

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"shaderinspector/internal/config"
	"shaderinspector/internal/execx"
	"shaderinspector/internal/output"
	"shaderinspector/internal/shader"
)

type fakeLocator struct {
	path  string
	err   error
	mu    sync.Mutex
	calls []string
}

func (f *fakeLocator) Locate(_ context.Context, compiler string, _ *shader.Declaration) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, compiler)
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.path, nil
}

type recordingRunner struct {
	mu   sync.Mutex
	cmds []execx.Cmd
	fn   func(ctx context.Context, c execx.Cmd) (string, error)
}

func (r *recordingRunner) Run(ctx context.Context, c execx.Cmd) (string, error) {
	r.mu.Lock()
	r.cmds = append(r.cmds, c)
	r.mu.Unlock()
	if r.fn != nil {
		return r.fn(ctx, c)
	}
	return "compiled", nil
}

func (r *recordingRunner) calls() []execx.Cmd {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]execx.Cmd(nil), r.cmds...)
}

type harness struct {
	session  *Session
	settings *config.Settings
	locator  *fakeLocator
	runner   *recordingRunner
	board    *output.Board
	events   *MemoryPublisher
	dir      string
}

func newHarness(t *testing.T, statePath string) *harness {
	t.Helper()
	h := &harness{
		settings: config.New(map[string]string{
			"shaderinspector.shaderDefaults.shaderType":   "ps",
			"shaderinspector.shaderDefaults.shaderModel":  "6_0",
			"shaderinspector.shaderDefaults.optimization": "3",
		}),
		locator: &fakeLocator{path: "/sdk/dxc"},
		runner:  &recordingRunner{},
		board:   output.NewBoard(),
		events:  NewMemoryPublisher(),
		dir:     t.TempDir(),
	}
	h.session = NewWithConfig(SessionConfig{
		Settings:   h.settings,
		Locator:    h.locator,
		Runner:     h.runner,
		Surfaces:   h.board.Open,
		Publisher:  h.events,
		StatePath:  statePath,
		ResumeLast: statePath != "",
		TempDir:    h.dir,
	})
	return h
}

func writeShader(t *testing.T, dir, name, text string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(text), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

// scriptedPrompter answers prompts in order. A nil answer dismisses.
type scriptedPrompter struct {
	answers []*string
	asked   []string
}

func answers(vals ...any) *scriptedPrompter {
	p := &scriptedPrompter{}
	for _, v := range vals {
		switch x := v.(type) {
		case string:
			p.answers = append(p.answers, shader.StringPtr(x))
		default:
			p.answers = append(p.answers, nil)
		}
	}
	return p
}

func (p *scriptedPrompter) next(q string) (string, bool) {
	p.asked = append(p.asked, q)
	if len(p.answers) == 0 {
		return "", false
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	if a == nil {
		return "", false
	}
	return *a, true
}

// Pick answers with an item label; "" selects the default.
func (p *scriptedPrompter) Pick(_ context.Context, title string, items []PickItem, def int) (int, bool, error) {
	a, ok := p.next(title)
	if !ok {
		return -1, false, nil
	}
	if a == "" {
		return def, true, nil
	}
	for i, it := range items {
		if it.Label == a {
			return i, true, nil
		}
	}
	return -1, false, nil
}

// Input answers with the given text; "=" keeps the prefill.
func (p *scriptedPrompter) Input(_ context.Context, prompt, value string) (string, bool, error) {
	a, ok := p.next(prompt)
	if !ok {
		return "", false, nil
	}
	if a == "=" {
		return value, true, nil
	}
	return a, true, nil
}
