package shader

import "strings"

// Setting names holding per-field defaults.
const (
	SettingShaderCompiler = "shaderDefaults.shaderCompiler"
	SettingShaderType     = "shaderDefaults.shaderType"
	SettingShaderModel    = "shaderDefaults.shaderModel"
	SettingEntryPoint     = "shaderDefaults.entryPoint"
	SettingOptimization   = "shaderDefaults.optimization"
	SettingAdditionalArgs = "shaderDefaults.additionalArgs"
	SettingDefines        = "shaderDefaults.defines"
)

// Settings reads named configuration values; unset names yield "".
type Settings interface {
	Get(name string) string
}

// FillDefaults assigns configured defaults to every undeclared field of d and
// returns d. The additional-args default is appended on every call, so callers
// must merge a fresh copy exactly once per compile.
func FillDefaults(d *Declaration, s Settings) *Declaration {
	fill := func(p **string, name string) {
		if *p == nil {
			*p = StringPtr(s.Get(name))
		}
	}
	fill(&d.ShaderCompiler, SettingShaderCompiler)
	fill(&d.ShaderType, SettingShaderType)
	fill(&d.ShaderModel, SettingShaderModel)
	fill(&d.EntryPoint, SettingEntryPoint)
	fill(&d.Optimization, SettingOptimization)

	if d.AdditionalArgs == nil {
		d.AdditionalArgs = []string{}
	}
	if d.Defines == nil {
		d.Defines = []string{}
	}
	d.AdditionalArgs = append(d.AdditionalArgs, s.Get(SettingAdditionalArgs))
	d.Defines = append(d.Defines, SplitDefines(s.Get(SettingDefines))...)
	return d
}

// SplitDefines splits a ';'-separated define list, dropping empty segments.
func SplitDefines(s string) []string {
	var out []string
	for _, def := range strings.Split(s, ";") {
		if def != "" {
			out = append(out, def)
		}
	}
	return out
}
