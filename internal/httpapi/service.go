package httpapi

import (
	"context"
	"time"

	"shaderinspector/internal/inspector"
	"shaderinspector/internal/locator"
	"shaderinspector/internal/output"
	"shaderinspector/internal/shader"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	CompileDocument(ctx context.Context, doc inspector.Document, p inspector.Prompter) (inspector.Result, error)
	CompileAndDeclare(ctx context.Context, doc inspector.Document, decl shader.Declaration) (inspector.Result, *shader.Edit, error)
	RepeatLast(ctx context.Context) (inspector.Result, error)
	AddDeclaration(ctx context.Context, doc inspector.Document, compiler string, p inspector.Prompter) (shader.Edit, error)
	Declare(doc inspector.Document, decl shader.Declaration) (shader.Edit, error)
	Output() (c output.Content, reveals int, updatedAt time.Time, ok bool)
	CloseOutput() bool
	Compilers(ctx context.Context) []locator.SanityReport
}

// Backend implements Service on a Session whose surfaces come from Board.
type Backend struct {
	*inspector.Session
	Board   *output.Board
	Locator *locator.Locator
	TabSize func() int
}

// Declare records decl in the document's declaration block.
func (b *Backend) Declare(doc inspector.Document, decl shader.Declaration) (shader.Edit, error) {
	if lang := doc.LanguageID(); lang != inspector.LanguageHLSL {
		return shader.Edit{}, inspector.ErrWrongLanguage(lang)
	}
	indent := 0
	if b.TabSize != nil {
		indent = b.TabSize()
	}
	edit, err := shader.WriteDeclaration(doc.Text(), decl, indent)
	if err != nil {
		return shader.Edit{}, err
	}
	if err := doc.Apply(edit); err != nil {
		return shader.Edit{}, err
	}
	return edit, nil
}

func (b *Backend) Output() (output.Content, int, time.Time, bool) {
	p := b.Board.Current()
	if p == nil {
		return output.Content{}, 0, time.Time{}, false
	}
	c, reveals, at := p.Snapshot()
	return c, reveals, at, true
}

func (b *Backend) CloseOutput() bool { return b.Board.Close() }

func (b *Backend) Compilers(ctx context.Context) []locator.SanityReport {
	return b.Locator.SanityCheckAll(ctx)
}
