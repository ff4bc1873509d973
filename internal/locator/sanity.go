package locator

import (
	"context"
	"os"

	"shaderinspector/internal/shader"
)

// SanityReport describes where a compiler resolves to and whether it is there.
type SanityReport struct {
	Compiler string `json:"compiler"`
	Found    bool   `json:"found"`
	Path     string `json:"path,omitempty"`
	Source   Source `json:"source,omitempty"`
	Error    string `json:"error,omitempty"`
}

// SanityCheck resolves compiler for a declaration-less request and stats the
// result. It does not mutate state beyond the SDK probe cache.
func (l *Locator) SanityCheck(ctx context.Context, compiler string) SanityReport {
	r := SanityReport{Compiler: compiler}
	res, err := l.Resolve(ctx, compiler, &shader.Declaration{})
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Path, r.Source = res.Path, res.Source
	if res.Path == "" {
		r.Error = ErrNotFound(compiler).Error()
		return r
	}
	fi, err := os.Stat(res.Path)
	switch {
	case err != nil:
		r.Error = err.Error()
	case fi.IsDir():
		r.Error = "compiler path is a directory"
	default:
		r.Found = true
	}
	return r
}

// SanityCheckAll reports on both supported compilers.
func (l *Locator) SanityCheckAll(ctx context.Context) []SanityReport {
	return []SanityReport{
		l.SanityCheck(ctx, shader.CompilerDXC),
		l.SanityCheck(ctx, shader.CompilerFXC),
	}
}
