package inspector

import (
	"time"

	"shaderinspector/internal/shader"
)

// State is the coordinator's position in a compile.
type State string

const (
	StateIdle      State = "idle"
	StateResolving State = "resolving"
	StateCompiling State = "compiling"
	StateReporting State = "reporting"
)

// Request is one compilation: a source document plus the declaration to
// build it with, as the user wrote it (before defaults are merged).
type Request struct {
	Document    Document
	Declaration shader.Declaration
}

// Result summarizes a finished compile. A compiler that ran and reported
// errors is a Result with Failed set, not an error.
type Result struct {
	Invocation   string        `json:"invocation"`
	ShaderName   string        `json:"shader_name"`
	CompilerPath string        `json:"compiler_path"`
	Args         []string      `json:"args"`
	Output       string        `json:"output"`
	Text         string        `json:"text"`
	Failed       bool          `json:"failed"`
	Duration     time.Duration `json:"duration_ns"`
}
