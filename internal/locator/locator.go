package locator

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"shaderinspector/internal/common/fsutil"
	"shaderinspector/internal/shader"
)

// Setting names for user-configured compiler paths.
const (
	SettingCustomDXCPath = "customDXCPath"
	SettingCustomFXCPath = "customFXCPath"
)

const (
	// SPIRVFlag asks dxc for SPIR-V output, which the Windows SDK build lacks.
	SPIRVFlag = "-spirv"
	// VulkanSDKEnv points at a Vulkan SDK install that ships its own dxc.
	VulkanSDKEnv = "VULKAN_SDK"
)

// Source names the resolution step that produced a path.
type Source string

const (
	SourceNone       Source = ""
	SourceCustom     Source = "custom"
	SourceWindowsSDK Source = "windows-sdk"
	SourceVulkanSDK  Source = "vulkan-sdk"
)

// ProbeFunc discovers the platform SDK binary root. Its output is trimmed.
type ProbeFunc func(ctx context.Context) (string, error)

// Config wires a Locator. Zero values select the host platform.
type Config struct {
	Settings shader.Settings
	Probe    ProbeFunc
	GOOS     string
	Getenv   func(string) string
	Logger   *zerolog.Logger
}

// Locator resolves compiler executables. The first successful SDK probe is
// cached for the Locator's lifetime and never re-validated.
type Locator struct {
	settings shader.Settings
	probe    ProbeFunc
	goos     string
	getenv   func(string) string
	log      zerolog.Logger

	mu            sync.Mutex
	cachedSDKPath string
}

// New constructs a Locator from cfg.
func New(cfg Config) *Locator {
	l := &Locator{
		settings: cfg.Settings,
		probe:    cfg.Probe,
		goos:     cfg.GOOS,
		getenv:   cfg.Getenv,
		log:      zerolog.Nop(),
	}
	if l.goos == "" {
		l.goos = runtime.GOOS
	}
	if l.probe == nil {
		l.probe = DefaultProbe
	}
	if l.getenv == nil {
		l.getenv = os.Getenv
	}
	if cfg.Logger != nil {
		l.log = *cfg.Logger
	}
	return l
}

// Resolution is the outcome of walking the precedence chain.
type Resolution struct {
	Compiler string `json:"compiler"`
	Path     string `json:"path,omitempty"`
	Source   Source `json:"source,omitempty"`
}

// Locate returns the executable path for compiler. d supplies the extra
// arguments that decide whether the Windows SDK copy of dxc is usable.
func (l *Locator) Locate(ctx context.Context, compiler string, d *shader.Declaration) (string, error) {
	r, err := l.Resolve(ctx, compiler, d)
	if err != nil {
		return "", err
	}
	if r.Path == "" {
		return "", ErrNotFound(compiler)
	}
	l.log.Debug().Str("compiler", compiler).Str("path", r.Path).Str("source", string(r.Source)).Msg("compiler located")
	return r.Path, nil
}

// Resolve walks custom path, platform SDK, then (dxc only) the Vulkan SDK.
// An empty Path with a nil error means every step came up empty.
func (l *Locator) Resolve(ctx context.Context, compiler string, d *shader.Declaration) (Resolution, error) {
	var customKey string
	switch compiler {
	case shader.CompilerDXC:
		customKey = SettingCustomDXCPath
	case shader.CompilerFXC:
		customKey = SettingCustomFXCPath
	default:
		return Resolution{}, shader.ErrUnsupportedCompiler(compiler)
	}
	res := Resolution{Compiler: compiler}

	if p := l.settings.Get(customKey); p != "" {
		if exp, err := fsutil.ExpandHome(p); err == nil {
			p = exp
		}
		res.Path, res.Source = p, SourceCustom
		return res, nil
	}

	exe := compiler + fsutil.ExeSuffix(l.goos)
	if !(compiler == shader.CompilerDXC && wantsSPIRV(d)) {
		if root := l.PlatformSDKPath(ctx); root != "" {
			res.Path, res.Source = filepath.Join(root, "x64", exe), SourceWindowsSDK
			return res, nil
		}
	}

	if compiler == shader.CompilerDXC {
		if root := l.getenv(VulkanSDKEnv); root != "" {
			res.Path, res.Source = filepath.Join(root, vulkanBinDir(l.goos), exe), SourceVulkanSDK
			return res, nil
		}
	}
	return res, nil
}

// PlatformSDKPath runs the SDK probe once and caches a non-empty result.
// Probe failures are logged and treated as "not installed".
func (l *Locator) PlatformSDKPath(ctx context.Context) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cachedSDKPath != "" {
		return l.cachedSDKPath
	}
	out, err := l.probe(ctx)
	if err != nil {
		l.log.Debug().Err(err).Msg("platform sdk probe failed")
		return ""
	}
	l.cachedSDKPath = strings.TrimSpace(out)
	if l.cachedSDKPath != "" {
		l.log.Info().Str("path", l.cachedSDKPath).Msg("platform sdk discovered")
	}
	return l.cachedSDKPath
}

func wantsSPIRV(d *shader.Declaration) bool {
	if d == nil {
		return false
	}
	for _, a := range d.AdditionalArgs {
		if slices.Contains(strings.Fields(a), SPIRVFlag) {
			return true
		}
	}
	return false
}

func vulkanBinDir(goos string) string {
	if goos == "windows" {
		return "Bin"
	}
	return "bin"
}
