package shader

// Compiler names understood by the locator.
const (
	CompilerDXC = "dxc"
	CompilerFXC = "fxc"
)

// Declaration describes one compile target. Nil scalar pointers and nil
// slices mean "not declared" and are filled by FillDefaults.
type Declaration struct {
	ShaderName     string   `json:"ShaderName"`
	ShaderCompiler *string  `json:"ShaderCompiler"`
	ShaderType     *string  `json:"ShaderType"`
	ShaderModel    *string  `json:"ShaderModel"`
	EntryPoint     *string  `json:"EntryPoint"`
	Defines        []string `json:"Defines"`
	Optimization   *string  `json:"Optimization"`
	AdditionalArgs []string `json:"AdditionalArgs"`
}

// FileDeclarations is the payload of a declaration block.
type FileDeclarations struct {
	Shaders []Declaration `json:"Shaders"`
}

// Clone returns a deep copy so merges never touch the original.
func (d Declaration) Clone() *Declaration {
	out := Declaration{
		ShaderName:     d.ShaderName,
		ShaderCompiler: clonePtr(d.ShaderCompiler),
		ShaderType:     clonePtr(d.ShaderType),
		ShaderModel:    clonePtr(d.ShaderModel),
		EntryPoint:     clonePtr(d.EntryPoint),
		Optimization:   clonePtr(d.Optimization),
	}
	if d.Defines != nil {
		out.Defines = append([]string{}, d.Defines...)
	}
	if d.AdditionalArgs != nil {
		out.AdditionalArgs = append([]string{}, d.AdditionalArgs...)
	}
	return &out
}

// Str dereferences p, returning "" for nil.
func Str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// StringPtr returns a pointer to a copy of s.
func StringPtr(s string) *string { return &s }

func clonePtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
