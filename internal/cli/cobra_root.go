package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"shaderinspector/internal/inspector"
	"shaderinspector/internal/output"
	"shaderinspector/internal/prompt"
	"shaderinspector/internal/shader"
)

// buildRootCmdWith constructs the Cobra command tree bound to cfg.
func buildRootCmdWith(cfg *Config) *cobra.Command {
	var a *app
	root := &cobra.Command{
		Use:           "shaderinspector",
		Short:         "Compile HLSL shaders with dxc or fxc from in-file declarations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags -> Config
	root.PersistentFlags().StringVar(&cfg.ConfigPath, "config", cfg.ConfigPath, "Settings file (.yaml, .json or .toml); defaults SHADERINSPECTOR_CONFIG or the user config dir")
	root.PersistentFlags().StringVar(&cfg.EnvFile, "env-file", cfg.EnvFile, "Optional .env file loaded before settings")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug|info|warn|error (defaults SHADERINSPECTOR_LOG_LEVEL or warn)")
	root.PersistentFlags().StringVar(&cfg.StateFile, "state-file", cfg.StateFile, "Where the last compile is remembered for repeat (defaults to the user cache dir)")
	root.PersistentFlags().BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cfg.NoColor {
			color.NoColor = true
		}
		var err error
		a, err = newApp(cfg, cmd.ErrOrStderr())
		return err
	}

	terminal := func(cmd *cobra.Command) output.Factory { return output.NewTerminalFactory(cmd.OutOrStdout()) }

	var shaderName string
	var noPrompt bool
	compileCmd := &cobra.Command{
		Use:     "compile <file|->",
		Short:   "Compile a shader using its BEGIN_SHADER_DECLARATIONS block",
		Long:    "Compile a shader using its declaration block. With several declarations, --shader selects one or you are asked. Without a block the command falls back to interactive prompts. Use - to read an untitled buffer from stdin.",
		Example: "  shaderinspector compile lighting.hlsl\n  shaderinspector compile water.hlsl --shader Sea\n  cat blur.hlsl | shaderinspector compile -",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, fromStdin, err := openDocument(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			var p inspector.Prompter
			switch {
			case shaderName != "":
				if !shader.HasDeclarations(doc.Text()) {
					return inspector.ErrNoDeclarationFound(doc.FileName())
				}
				p = inspector.ChoicePrompter{Choice: shaderName}
			case !noPrompt && !fromStdin:
				p = prompt.New(cmd.InOrStdin(), cmd.ErrOrStderr())
			}
			sess := a.session(terminal(cmd), stateRecord)
			res, err := sess.CompileDocument(cmd.Context(), doc, p)
			if err != nil {
				return err
			}
			return finish(doc, res)
		},
	}
	compileCmd.Flags().StringVar(&shaderName, "shader", "", "ShaderName to compile when the block declares several")
	compileCmd.Flags().BoolVar(&noPrompt, "no-prompt", false, "Never prompt; fail when input would be required")

	interactiveCmd := &cobra.Command{
		Use:   "interactive <file>",
		Short: "Compile after answering prompts for every declaration field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := inspector.OpenFile(args[0])
			if err != nil {
				return err
			}
			sess := a.session(terminal(cmd), stateRecord)
			res, _, err := sess.CompileInteractive(cmd.Context(), doc, prompt.New(cmd.InOrStdin(), cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			return finish(doc, res)
		},
	}

	repeatCmd := &cobra.Command{
		Use:   "repeat",
		Short: "Repeat the last compile against the file's current content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := a.session(terminal(cmd), stateResume)
			res, err := sess.RepeatLast(cmd.Context())
			if err != nil {
				return err
			}
			return resultErr(res)
		},
	}

	var sampleCompiler string
	addDeclCmd := &cobra.Command{
		Use:     "add-declaration <file>",
		Short:   "Insert a sample declaration block at the top of a shader",
		Example: "  shaderinspector add-declaration lighting.hlsl --compiler dxc",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := inspector.OpenFile(args[0])
			if err != nil {
				return err
			}
			var p inspector.Prompter
			if sampleCompiler == "" {
				p = prompt.New(cmd.InOrStdin(), cmd.ErrOrStderr())
			}
			sess := a.session(terminal(cmd), stateOff)
			if _, err := sess.AddDeclaration(cmd.Context(), doc, sampleCompiler, p); err != nil {
				return err
			}
			if err := doc.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s declaration to %s\n", sampleCompilerLabel(sampleCompiler), doc.FileName())
			return nil
		},
	}
	addDeclCmd.Flags().StringVar(&sampleCompiler, "compiler", "", "Sample to insert: dxc or fxc (asked when omitted)")

	doctorCmd := &cobra.Command{
		Use:   "doctor",
		Short: "Show where dxc and fxc resolve to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printDoctor(cmd.OutOrStdout(), a, cmd)
		},
	}

	root.AddCommand(compileCmd, interactiveCmd, repeatCmd, addDeclCmd, doctorCmd, newServeCmd(func() *app { return a }))

	// completion command
	completionCmd := &cobra.Command{Use: "completion", Short: "Generate the autocompletion script for the specified shell"}
	completionCmd.AddCommand(&cobra.Command{Use: "bash", Short: "Bash completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenBashCompletion(cmd.OutOrStdout()) }})
	completionCmd.AddCommand(&cobra.Command{Use: "zsh", Short: "Zsh completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenZshCompletion(cmd.OutOrStdout()) }})
	completionCmd.AddCommand(&cobra.Command{Use: "fish", Short: "Fish completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenFishCompletion(cmd.OutOrStdout(), true) }})
	completionCmd.AddCommand(&cobra.Command{Use: "powershell", Short: "PowerShell completion", RunE: func(cmd *cobra.Command, args []string) error {
		return root.GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
	}})
	root.AddCommand(completionCmd)

	return root
}

// openDocument reads path, or stdin as an untitled buffer for "-".
func openDocument(in io.Reader, path string) (inspector.Document, bool, error) {
	if path == "-" {
		b, err := io.ReadAll(in)
		if err != nil {
			return nil, true, err
		}
		return inspector.NewMemoryDocument("stdin", "", string(b)), true, nil
	}
	doc, err := inspector.OpenFile(path)
	if err != nil {
		return nil, false, err
	}
	return doc, false, nil
}

// finish persists a declaration written by an interactive compile and maps
// the compile outcome to an error.
func finish(doc inspector.Document, res inspector.Result) error {
	if !doc.IsUntitled() && doc.IsDirty() {
		if err := doc.Save(); err != nil {
			return err
		}
	}
	return resultErr(res)
}

func resultErr(res inspector.Result) error {
	if res.Failed {
		return errCompileFailed
	}
	return nil
}

func sampleCompilerLabel(c string) string {
	if c == "" {
		return "sample"
	}
	return c + " sample"
}

func printDoctor(w io.Writer, a *app, cmd *cobra.Command) error {
	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed).SprintFunc()
	for _, r := range a.locator.SanityCheckAll(cmd.Context()) {
		if r.Found {
			fmt.Fprintf(w, "%s %-4s %s (%s)\n", ok("✓"), r.Compiler, r.Path, r.Source)
			continue
		}
		detail := r.Error
		if r.Path != "" {
			detail = r.Path + ": " + detail
		}
		fmt.Fprintf(w, "%s %-4s %s\n", bad("✗"), r.Compiler, detail)
	}
	fmt.Fprintf(w, "state file: %s\n", a.statePath())
	if a.cfg.ConfigPath != "" {
		fmt.Fprintf(w, "settings:   %s\n", a.cfg.ConfigPath)
	} else if p := findSettingsFile(); p != "" {
		fmt.Fprintf(w, "settings:   %s\n", p)
	}
	if v := os.Getenv("VULKAN_SDK"); v != "" {
		fmt.Fprintf(w, "VULKAN_SDK: %s\n", v)
	}
	return nil
}
