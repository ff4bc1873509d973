package types

// Document identifies the editor buffer a request operates on.
type Document struct {
	// Path of a file-backed buffer. Empty for untitled buffers.
	// example: /home/user/shaders/lighting.hlsl
	Path string `json:"path,omitempty" example:"/home/user/shaders/lighting.hlsl"`
	// Current buffer text. When omitted for a file-backed buffer, the file is read from disk.
	// example: float4 main() : SV_Target { return 1; }
	Text *string `json:"text,omitempty" example:"float4 main() : SV_Target { return 1; }"`
	// True when Text differs from what is saved at Path; the server saves before compiling.
	// example: false
	Dirty bool `json:"dirty,omitempty" example:"false"`
	// Display name for untitled buffers.
	// example: Untitled-1
	Name string `json:"name,omitempty" example:"Untitled-1"`
	// Editor language id. Defaults from the file extension, or hlsl for untitled buffers.
	// example: hlsl
	LanguageID string `json:"language_id,omitempty" example:"hlsl"`
}

// Declaration mirrors one entry of a BEGIN_SHADER_DECLARATIONS block.
// Omitted fields are filled from settings at compile time.
type Declaration struct {
	// example: Lighting
	ShaderName string `json:"ShaderName" example:"Lighting"`
	// example: dxc
	ShaderCompiler *string `json:"ShaderCompiler,omitempty" example:"dxc"`
	// example: ps
	ShaderType *string `json:"ShaderType,omitempty" example:"ps"`
	// example: 6_6
	ShaderModel *string `json:"ShaderModel,omitempty" example:"6_6"`
	// example: main
	EntryPoint *string `json:"EntryPoint,omitempty" example:"main"`
	Defines    []string `json:"Defines,omitempty"`
	// example: 3
	Optimization   *string  `json:"Optimization,omitempty" example:"3"`
	AdditionalArgs []string `json:"AdditionalArgs,omitempty"`
}

// Edit replaces the byte range [Start, End) of the document text with Text.
type Edit struct {
	// example: 0
	Start int `json:"start" example:"0"`
	// example: 0
	End int `json:"end" example:"0"`
	// Replacement text.
	Text string `json:"text"`
}

// CompilerStatus reports where a compiler resolves to.
type CompilerStatus struct {
	// example: dxc
	Compiler string `json:"compiler" example:"dxc"`
	// Whether the resolved path exists and is a file.
	// example: true
	Found bool `json:"found" example:"true"`
	// example: /opt/vulkan/bin/dxc
	Path string `json:"path,omitempty" example:"/opt/vulkan/bin/dxc"`
	// Which lookup step produced Path: custom, windows-sdk or vulkan-sdk.
	// example: vulkan-sdk
	Source string `json:"source,omitempty" example:"vulkan-sdk"`
	Error  string `json:"error,omitempty"`
}
