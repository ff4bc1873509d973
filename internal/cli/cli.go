package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Config carries the persistent flags shared by every command.
type Config struct {
	ConfigPath string
	EnvFile    string
	LogLevel   string
	StateFile  string
	NoColor    bool
}

func defaultConfig() *Config {
	return &Config{
		ConfigPath: os.Getenv("SHADERINSPECTOR_CONFIG"),
		EnvFile:    ".env",
		LogLevel:   envStr("SHADERINSPECTOR_LOG_LEVEL", "warn"),
		StateFile:  os.Getenv("SHADERINSPECTOR_STATE_FILE"),
	}
}

// errCompileFailed is returned when the compiler ran and reported failure.
// Its output is already on screen, so only the exit code matters.
var errCompileFailed = errors.New("compilation failed")

var errColor = color.New(color.FgRed, color.Bold)

// run executes the command tree and maps errors to exit codes.
func run(args []string, in io.Reader, out, errOut io.Writer) int {
	root := buildRootCmdWith(defaultConfig())
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errCompileFailed) {
			errColor.Fprint(errOut, "error: ")
			fmt.Fprintln(errOut, err.Error())
		}
		return 1
	}
	return 0
}

// MainWithArgs runs the CLI against the process streams and returns an exit code.
func MainWithArgs(args []string) int { return run(args, os.Stdin, os.Stdout, os.Stderr) }

// Main returns an exit code (0 for success, non-zero on error) for use by cmd/shaderinspector.
func Main() int { return MainWithArgs(os.Args[1:]) }

// Env helpers
func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// splitCSV splits a comma-separated flag value, trimming blanks.
func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
