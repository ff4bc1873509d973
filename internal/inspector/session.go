package inspector

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"shaderinspector/internal/common/fsutil"
	"shaderinspector/internal/execx"
	"shaderinspector/internal/output"
	"shaderinspector/internal/shader"
)

// Session is the invocation coordinator. It remembers the last request for
// RepeatLast and owns at most one output surface at a time.
type Session struct {
	settings  Settings
	locator   CompilerLocator
	runner    execx.Runner
	surfaces  output.Factory
	publisher EventPublisher
	statePath string
	tempDir   string
	log       zerolog.Logger

	mu      sync.Mutex
	state   State
	last    *Request
	surface output.Surface
}

// State returns the current coordinator state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// HasSurface reports whether an output surface is currently open.
func (s *Session) HasSurface() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surface != nil
}

// Last returns a copy of the recorded request, if any.
func (s *Session) Last() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return Request{}, false
	}
	return Request{Document: s.last.Document, Declaration: *s.last.Declaration.Clone()}, true
}

// Compile records req as the last request and runs it. Errors cover failures
// before the compiler starts (unknown compiler, executable not found); a
// compiler that exits non-zero yields a Result with Failed set.
func (s *Session) Compile(ctx context.Context, req Request) (Result, error) {
	s.record(req)
	return s.execute(ctx, req)
}

// RepeatLast re-runs the last recorded request against the document's current
// content.
func (s *Session) RepeatLast(ctx context.Context) (Result, error) {
	s.mu.Lock()
	last := s.last
	s.mu.Unlock()
	if last == nil {
		return Result{}, ErrNothingToRepeat()
	}
	return s.Compile(ctx, *last)
}

func (s *Session) record(req Request) {
	snap := Request{Document: req.Document, Declaration: *req.Declaration.Clone()}
	s.mu.Lock()
	s.last = &snap
	s.mu.Unlock()
	s.saveLast(snap)
}

func (s *Session) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

func (s *Session) execute(ctx context.Context, req Request) (Result, error) {
	id := uuid.NewString()
	start := time.Now()
	decl := shader.FillDefaults(req.Declaration.Clone(), s.settings)
	compiler := shader.Str(decl.ShaderCompiler)
	log := s.log.With().Str("invocation", id).Str("shader", decl.ShaderName).Str("compiler", compiler).Logger()

	s.setState(StateResolving)
	defer s.setState(StateIdle)

	path, err := s.locator.Locate(ctx, compiler, decl)
	if err != nil {
		observeCompile(compiler, resultError, start)
		log.Error().Err(err).Msg("compiler not resolved")
		return Result{}, err
	}

	source, cleanup, err := s.materialize(req.Document, id, log)
	if err != nil {
		observeCompile(compiler, resultError, start)
		log.Error().Err(err).Msg("cannot prepare shader source")
		return Result{}, err
	}
	args := shader.BuildArgs(decl, source)

	s.setState(StateCompiling)
	s.publisher.Publish(Event{Name: "compile_start", Invocation: id, Fields: map[string]any{
		"shader": decl.ShaderName, "compiler": compiler, "path": path,
	}})
	log.Debug().Str("path", path).Strs("args", args).Msg("running compiler")
	out, runErr := s.run(ctx, path, args)
	cleanup()

	failed := runErr != nil
	if failed {
		out = runErr.Error()
	}
	res := Result{
		Invocation:   id,
		ShaderName:   decl.ShaderName,
		CompilerPath: path,
		Args:         args,
		Output:       out,
		Text:         shader.CommandLine(path, args) + "\r\n\r\n" + out,
		Failed:       failed,
		Duration:     time.Since(start),
	}

	s.setState(StateReporting)
	s.show(id, decl.ShaderName, res.Text)

	result := resultOK
	if failed {
		result = resultCompilerError
	}
	observeCompile(compiler, result, start)
	s.publisher.Publish(Event{Name: "compile_end", Invocation: id, Fields: map[string]any{
		"shader": decl.ShaderName, "failed": failed, "duration_ms": res.Duration.Milliseconds(),
	}})
	log.Info().Bool("failed", failed).Dur("duration", res.Duration).Msg("compile finished")
	return res, nil
}

// materialize returns a path the compiler can read. Untitled buffers go to a
// per-invocation temp file removed by cleanup; dirty files are saved first.
func (s *Session) materialize(doc Document, id string, log zerolog.Logger) (string, func(), error) {
	if doc.IsUntitled() {
		path := filepath.Join(s.tempDir, "shaderinspector-"+id+".hlsl")
		if err := os.WriteFile(path, []byte(doc.Text()), 0o600); err != nil {
			return "", func() {}, err
		}
		return path, func() {
			if err := fsutil.RemoveQuietly(path); err != nil {
				log.Warn().Err(err).Str("path", path).Msg("temp file not removed")
			}
		}, nil
	}
	if doc.IsDirty() {
		if err := doc.Save(); err != nil {
			werr := ErrSaveFailed(doc.FileName(), err)
			log.Warn().Err(werr).Msg("save before compile failed")
			s.publisher.Publish(Event{Name: "save_failed", Invocation: id, Fields: map[string]any{
				"file": doc.FileName(), "error": err.Error(),
			}})
		}
	}
	return doc.FileName(), func() {}, nil
}

func (s *Session) run(ctx context.Context, path string, args []string) (string, error) {
	if t := s.settings.CompileTimeout(); t > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t)
		defer cancel()
	}
	return s.runner.Run(ctx, execx.Cmd{Path: path, Args: args})
}

// show reuses the open surface or creates one; a disposed surface clears the
// handle so the next compile creates a fresh one.
func (s *Session) show(id, title, text string) {
	content := output.Render(title, text, output.Style{
		FontFamily: s.settings.FontFamily(),
		FontSize:   s.settings.FontSize(),
	})

	s.mu.Lock()
	surf := s.surface
	created := surf == nil
	if created {
		surf = s.surfaces(title)
		s.surface = surf
		surf.OnDispose(func() {
			s.mu.Lock()
			if s.surface == surf {
				s.surface = nil
			}
			s.mu.Unlock()
		})
	}
	s.mu.Unlock()

	if created {
		s.publisher.Publish(Event{Name: "surface_created", Invocation: id, Fields: map[string]any{"title": title}})
	} else {
		surf.Reveal()
	}
	surf.Update(content)
}
