package shader

import "strings"

// BuildArgs assembles the compiler argv for a merged declaration. The result
// is passed element-wise to the subprocess and never joined into a shell line.
func BuildArgs(d *Declaration, sourceFile string) []string {
	args := []string{
		"-nologo",
		"-T" + Str(d.ShaderType) + "_" + Str(d.ShaderModel),
		"-O" + Str(d.Optimization),
		sourceFile,
	}
	if ep := Str(d.EntryPoint); ep != "" {
		args = append(args, "-E"+ep)
	}
	for _, def := range d.Defines {
		args = append(args, "-D"+def)
	}
	// Entries are discrete argv elements; "-HV 2018" stays one argument.
	for _, a := range d.AdditionalArgs {
		if a != "" {
			args = append(args, a)
		}
	}
	return args
}

// CommandLine renders the executed command for display only.
func CommandLine(path string, args []string) string {
	if len(args) == 0 {
		return path
	}
	return path + " " + strings.Join(args, " ")
}
