package types

// CompileRequest compiles a document using its declaration block.
type CompileRequest struct {
	Document Document `json:"document"`
	// Selects a declaration by ShaderName when the block holds several.
	// example: Lighting
	Shader string `json:"shader,omitempty" example:"Lighting"`
}

// InteractiveCompileRequest compiles a document with a caller-supplied
// declaration, standing in for the editor's prompt sequence.
type InteractiveCompileRequest struct {
	Document    Document    `json:"document"`
	Declaration Declaration `json:"declaration"`
}

// CompileResponse is the outcome of a compile.
type CompileResponse struct {
	// example: 5f0c6a7e-5d55-4e2a-9a43-5b8e2f1c9d10
	Invocation string `json:"invocation" example:"5f0c6a7e-5d55-4e2a-9a43-5b8e2f1c9d10"`
	// example: Lighting
	ShaderName string `json:"shader_name" example:"Lighting"`
	// example: /opt/vulkan/bin/dxc
	CompilerPath string   `json:"compiler_path" example:"/opt/vulkan/bin/dxc"`
	Args         []string `json:"args"`
	// Raw compiler output, or the failure message when the compiler failed.
	Output string `json:"output"`
	// Command line, blank line, then Output; as shown on the output surface.
	Text string `json:"text"`
	// True when the compiler exited non-zero or could not run.
	// example: false
	Failed bool `json:"failed" example:"false"`
	// example: 412
	DurationMS int64 `json:"duration_ms" example:"412"`
	// Declaration written back into the document, when enabled.
	Edit *Edit `json:"edit,omitempty"`
}

// DeclarationRequest records a declaration in a document's block.
type DeclarationRequest struct {
	Document    Document    `json:"document"`
	Declaration Declaration `json:"declaration"`
}

// SampleDeclarationRequest inserts a starter block for a compiler.
type SampleDeclarationRequest struct {
	Document Document `json:"document"`
	// example: dxc
	Compiler string `json:"compiler" example:"dxc"`
}

// EditResponse carries the edit a caller should apply to its buffer.
type EditResponse struct {
	Edit Edit `json:"edit"`
	// Document text after the edit.
	Text string `json:"text"`
}

// OutputResponse is the current output surface content.
type OutputResponse struct {
	// example: Lighting
	Title string `json:"title" example:"Lighting"`
	Text  string `json:"text"`
	HTML  string `json:"html"`
	// Number of times an existing surface was brought to front.
	// example: 2
	Reveals int `json:"reveals" example:"2"`
	// example: 1700000000
	UpdatedUnix int64 `json:"updated_unix" example:"1700000000"`
}

// CompilersResponse lists compiler resolution results for GET /compilers.
type CompilersResponse struct {
	Compilers []CompilerStatus `json:"compilers"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
