package inspector

import (
	"context"
	"path/filepath"
	"strings"

	"shaderinspector/internal/shader"
)

// PickItem is one entry of a selection prompt.
type PickItem struct {
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// Prompter asks the user for input. ok is false when the user dismissed the
// prompt.
type Prompter interface {
	// Pick returns the index of the chosen item. def is the preselected index.
	Pick(ctx context.Context, title string, items []PickItem, def int) (idx int, ok bool, err error)
	// Input returns free text, prefilled with value.
	Input(ctx context.Context, prompt, value string) (text string, ok bool, err error)
}

var optimizationLevels = []string{"0", "1", "2", "3"}

// PromptDeclaration builds a declaration field by field. Scalars are
// prefilled from settings; an entry point defaults to the shader name when no
// setting exists. Any dismissed prompt aborts with a cancelled error.
func PromptDeclaration(ctx context.Context, p Prompter, s shader.Settings, fileName string) (*shader.Declaration, error) {
	input := func(step, prompt, value string) (string, error) {
		v, ok, err := p.Input(ctx, prompt, value)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", ErrCancelled(step)
		}
		return strings.TrimSpace(v), nil
	}
	pick := func(step, title string, labels []string, current string) (string, error) {
		items := make([]PickItem, len(labels))
		def := 0
		for i, l := range labels {
			items[i] = PickItem{Label: l}
			if l == current {
				def = i
				items[i].Description = "default"
			}
		}
		idx, ok, err := p.Pick(ctx, title, items, def)
		if err != nil {
			return "", err
		}
		if !ok || idx < 0 || idx >= len(labels) {
			return "", ErrCancelled(step)
		}
		return labels[idx], nil
	}

	base := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	name, err := input("ShaderName", "Shader name", base)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrCancelled("ShaderName")
	}
	d := &shader.Declaration{ShaderName: name}

	compiler, err := pick("ShaderCompiler", "Shader compiler",
		[]string{shader.CompilerDXC, shader.CompilerFXC}, s.Get(shader.SettingShaderCompiler))
	if err != nil {
		return nil, err
	}
	d.ShaderCompiler = shader.StringPtr(compiler)

	typ, err := input("ShaderType", "Shader type (vs, ps, cs, ...)", s.Get(shader.SettingShaderType))
	if err != nil {
		return nil, err
	}
	d.ShaderType = shader.StringPtr(typ)

	model, err := input("ShaderModel", "Shader model (e.g. 6_0)", s.Get(shader.SettingShaderModel))
	if err != nil {
		return nil, err
	}
	d.ShaderModel = shader.StringPtr(model)

	entry := s.Get(shader.SettingEntryPoint)
	if entry == "" {
		entry = name
	}
	if entry, err = input("EntryPoint", "Entry point", entry); err != nil {
		return nil, err
	}
	d.EntryPoint = shader.StringPtr(entry)

	defines, err := input("Defines", "Defines (NAME=VALUE;...)", "")
	if err != nil {
		return nil, err
	}
	d.Defines = append([]string{}, shader.SplitDefines(defines)...)

	opt, err := pick("Optimization", "Optimization level", optimizationLevels, s.Get(shader.SettingOptimization))
	if err != nil {
		return nil, err
	}
	d.Optimization = shader.StringPtr(opt)

	extra, err := input("AdditionalArgs", "Additional compiler arguments", "")
	if err != nil {
		return nil, err
	}
	d.AdditionalArgs = append([]string{}, strings.Fields(extra)...)
	return d, nil
}

// ChoicePrompter answers prompts from preset values for non-interactive
// hosts. Pick matches Choice against item labels; Input accepts the prefill.
type ChoicePrompter struct {
	Choice string
}

func (c ChoicePrompter) Pick(_ context.Context, _ string, items []PickItem, _ int) (int, bool, error) {
	for i, it := range items {
		if it.Label == c.Choice {
			return i, true, nil
		}
	}
	return -1, false, nil
}

func (ChoicePrompter) Input(_ context.Context, _ string, value string) (string, bool, error) {
	return value, true, nil
}
