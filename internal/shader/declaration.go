package shader

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Sentinels delimiting a declaration block inside shader source.
const (
	BeginMarker = "BEGIN_SHADER_DECLARATIONS"
	EndMarker   = "END_SHADER_DECLARATIONS"
)

var declarationRe = regexp.MustCompile(`(?s)` + BeginMarker + `(?P<ShaderJson>.*)` + EndMarker)

// Span is a half-open byte range [Start, End) in a source text.
type Span struct {
	Start int
	End   int
}

// FindDeclarationSpan locates the sentinel-to-sentinel region, markers included.
func FindDeclarationSpan(text string) (Span, bool) {
	loc := declarationRe.FindStringIndex(text)
	if loc == nil {
		return Span{}, false
	}
	return Span{Start: loc[0], End: loc[1]}, true
}

// ParseDeclarations extracts the declaration block from text.
// It returns nil, nil when no block is present.
func ParseDeclarations(text string) (*FileDeclarations, error) {
	m := declarationRe.FindStringSubmatch(text)
	if m == nil {
		return nil, nil
	}
	idx := declarationRe.SubexpIndex("ShaderJson")
	if idx < 0 || idx >= len(m) || strings.TrimSpace(m[idx]) == "" {
		return nil, ErrMalformedDeclaration("missing shader declaration JSON", nil)
	}
	var fd FileDeclarations
	if err := json.Unmarshal([]byte(m[idx]), &fd); err != nil {
		return nil, ErrMalformedDeclaration("parsing shader declaration JSON failed", err)
	}
	if len(fd.Shaders) == 0 {
		return nil, ErrNoDeclarations()
	}
	return &fd, nil
}

// HasDeclarations reports whether text contains a declaration block at all.
func HasDeclarations(text string) bool { return declarationRe.MatchString(text) }

// Describe renders a one-line summary of d for selection lists.
func Describe(d Declaration) string {
	var parts []string
	if c := Str(d.ShaderCompiler); c != "" {
		parts = append(parts, c)
	}
	target := Str(d.ShaderType)
	if m := Str(d.ShaderModel); m != "" {
		if target != "" {
			target += "_" + m
		} else {
			target = m
		}
	}
	if target != "" {
		parts = append(parts, target)
	}
	if e := Str(d.EntryPoint); e != "" {
		parts = append(parts, e)
	}
	if len(d.Defines) > 0 {
		parts = append(parts, strings.Join(d.Defines, " "))
	}
	if len(d.AdditionalArgs) > 0 {
		parts = append(parts, strings.Join(d.AdditionalArgs, " "))
	}
	if o := Str(d.Optimization); o != "" {
		parts = append(parts, "-O"+o)
	}
	return strings.Join(parts, " | ")
}
