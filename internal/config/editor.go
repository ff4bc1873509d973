package config

import (
	"strconv"
	"strings"
	"time"
)

// Editor-wide keys read without the extension namespace.
const (
	KeyTabSize    = "editor.tabSize"
	KeyFontFamily = "editor.fontFamily"
	KeyFontSize   = "editor.fontSize"
)

// Extension keys not owned by the shader or locator packages.
const (
	SettingAddDeclarationsOnInteractive = "addShaderDeclarationsOnInteractiveCompile"
	SettingCompileTimeout               = "compileTimeout"
)

const defaultTabSize = 4

// TabSize returns editor.tabSize, defaulting to 4.
func (s *Settings) TabSize() int {
	n, err := strconv.Atoi(strings.TrimSpace(s.Raw(KeyTabSize)))
	if err != nil || n <= 0 {
		return defaultTabSize
	}
	return n
}

// FontFamily returns editor.fontFamily, defaulting to monospace.
func (s *Settings) FontFamily() string {
	if v := s.Raw(KeyFontFamily); v != "" {
		return v
	}
	return "monospace"
}

// FontSize returns editor.fontSize, defaulting to 14.
func (s *Settings) FontSize() string {
	if v := s.Raw(KeyFontSize); v != "" {
		return v
	}
	return "14"
}

// CompileTimeout parses compileTimeout as a Go duration. Empty or invalid
// values mean no timeout.
func (s *Settings) CompileTimeout() time.Duration {
	v := strings.TrimSpace(s.Get(SettingCompileTimeout))
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// AddDeclarationsOnInteractive reports whether interactive compiles record their declaration.
func (s *Settings) AddDeclarationsOnInteractive() bool {
	return s.Get(SettingAddDeclarationsOnInteractive) == "true"
}
