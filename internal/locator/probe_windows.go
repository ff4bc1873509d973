//go:build windows

package locator

import (
	"context"
	"os/exec"
	"syscall"
)

// windowsSDKSearchCommand finds the newest Visual Studio install with vswhere,
// loads its developer environment and echoes the Windows SDK binary root.
const windowsSDKSearchCommand = `((for /f "usebackq tokens=*" %i in (` + "`" + `"%ProgramFiles(x86)%/Microsoft Visual Studio/Installer/vswhere.exe" -latest -products * -property installationPath` + "`" + `) do (set VSDetectedDir=%i) && (call "%VSDetectedDir%/Common7/Tools/VsDevCmd.bat" > nul)) > nul) && (cmd /c echo %WindowsSdkVerBinPath%)`

// DefaultProbe runs the search command through cmd.exe. The command line is
// handed over verbatim since Go's argument quoting would break cmd parsing.
func DefaultProbe(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "cmd.exe")
	cmd.SysProcAttr = &syscall.SysProcAttr{CmdLine: `cmd.exe /d /s /c "` + windowsSDKSearchCommand + `"`}
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
