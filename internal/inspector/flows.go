package inspector

import (
	"context"

	"shaderinspector/internal/shader"
)

func checkLanguage(doc Document) error {
	if lang := doc.LanguageID(); lang != LanguageHLSL {
		return ErrWrongLanguage(lang)
	}
	return nil
}

// CompileDocument compiles using the document's declaration block. With no
// block it falls back to CompileInteractive when p is non-nil; with several
// declarations p picks one.
func (s *Session) CompileDocument(ctx context.Context, doc Document, p Prompter) (Result, error) {
	if err := checkLanguage(doc); err != nil {
		return Result{}, err
	}
	fd, err := shader.ParseDeclarations(doc.Text())
	if err != nil {
		return Result{}, err
	}
	if fd == nil {
		if p == nil {
			return Result{}, ErrNoDeclarationFound(doc.FileName())
		}
		s.log.Info().Str("file", doc.FileName()).Msg("no shader declaration, compiling interactively")
		res, _, err := s.CompileInteractive(ctx, doc, p)
		return res, err
	}

	decl := fd.Shaders[0]
	if len(fd.Shaders) > 1 {
		if p == nil {
			return Result{}, ErrCancelled("ShaderSelection")
		}
		items := make([]PickItem, len(fd.Shaders))
		for i, d := range fd.Shaders {
			items[i] = PickItem{Label: d.ShaderName, Description: shader.Describe(d)}
		}
		idx, ok, err := p.Pick(ctx, "Select shader to compile", items, 0)
		if err != nil {
			return Result{}, err
		}
		if !ok || idx < 0 || idx >= len(fd.Shaders) {
			return Result{}, ErrCancelled("ShaderSelection")
		}
		decl = fd.Shaders[idx]
	}
	return s.Compile(ctx, Request{Document: doc, Declaration: decl})
}

// CompileInteractive prompts for a declaration, compiles it, and may write it
// back into the document (see CompileAndDeclare).
func (s *Session) CompileInteractive(ctx context.Context, doc Document, p Prompter) (Result, *shader.Edit, error) {
	if err := checkLanguage(doc); err != nil {
		return Result{}, nil, err
	}
	decl, err := PromptDeclaration(ctx, p, s.settings, doc.FileName())
	if err != nil {
		return Result{}, nil, err
	}
	return s.CompileAndDeclare(ctx, doc, *decl)
}

// CompileAndDeclare compiles decl and, when enabled in settings, writes it
// into the document's declaration block. The returned edit is nil when
// nothing was written.
func (s *Session) CompileAndDeclare(ctx context.Context, doc Document, decl shader.Declaration) (Result, *shader.Edit, error) {
	res, err := s.Compile(ctx, Request{Document: doc, Declaration: decl})
	if err != nil {
		return res, nil, err
	}
	if !s.settings.AddDeclarationsOnInteractive() {
		return res, nil, nil
	}
	edit, err := shader.WriteDeclaration(doc.Text(), decl, s.settings.TabSize())
	if err != nil {
		return res, nil, err
	}
	if err := doc.Apply(edit); err != nil {
		return res, nil, err
	}
	s.log.Info().Str("file", doc.FileName()).Str("shader", decl.ShaderName).Msg("shader declaration written")
	return res, &edit, nil
}

// AddDeclaration inserts a sample declaration block for compiler at the top
// of doc. An empty compiler is picked through p.
func (s *Session) AddDeclaration(ctx context.Context, doc Document, compiler string, p Prompter) (shader.Edit, error) {
	if err := checkLanguage(doc); err != nil {
		return shader.Edit{}, err
	}
	if shader.HasDeclarations(doc.Text()) {
		return shader.Edit{}, shader.ErrDeclarationExists()
	}
	if compiler == "" {
		if p == nil {
			return shader.Edit{}, ErrCancelled("ShaderCompiler")
		}
		labels := []string{shader.CompilerFXC, shader.CompilerDXC}
		items := []PickItem{{Label: labels[0]}, {Label: labels[1]}}
		idx, ok, err := p.Pick(ctx, "Shader compiler for the sample declaration", items, 0)
		if err != nil {
			return shader.Edit{}, err
		}
		if !ok || idx < 0 || idx >= len(labels) {
			return shader.Edit{}, ErrCancelled("ShaderCompiler")
		}
		compiler = labels[idx]
	}
	edit, err := shader.InsertSample(doc.Text(), compiler)
	if err != nil {
		return shader.Edit{}, err
	}
	if err := doc.Apply(edit); err != nil {
		return shader.Edit{}, err
	}
	return edit, nil
}
