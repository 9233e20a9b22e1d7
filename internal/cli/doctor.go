package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/gdennie/create-rx-app/internal/platform"
	"github.com/gdennie/create-rx-app/internal/toolrunner"
)

// minNodeVersion is the oldest Node.js release the generated build
// toolchain supports.
const minNodeVersion = "8.3.0"

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that this machine can generate and run apps",
	Long: `Run diagnostic checks on the local environment: Node.js presence and
version, an available package manager (yarn or npm), and PowerShell on
Windows for certificate generation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := &toolrunner.ExecRunner{}
		failures := 0

		fmt.Println("Environment check:")
		if !checkNode(cmd.Context(), runner) {
			failures++
		}

		haveYarn := checkTool(cmd.Context(), runner, "yarn")
		haveNPM := checkTool(cmd.Context(), runner, "npm")
		if !haveYarn && !haveNPM {
			fmt.Println("  [MISS] no package manager found: install yarn or npm")
			failures++
		}

		if platform.IsWindows() && !checkTool(cmd.Context(), runner, "powershell") {
			fmt.Println("  [WARN] without powershell, generated apps use the bundled debug certificate")
		}

		if failures > 0 {
			return fmt.Errorf("%d required tool(s) missing or outdated", failures)
		}
		fmt.Println("All checks passed.")
		return nil
	},
}

// checkNode verifies Node.js is installed and meets the minimum release.
func checkNode(ctx context.Context, runner toolrunner.Runner) bool {
	if !toolrunner.Available("node") {
		fmt.Println("  [MISS] node not found")
		return false
	}

	res, err := runner.Run(ctx, "", "node", "--version")
	if err != nil || res.ExitCode != 0 {
		fmt.Println("  [WARN] node found but reports no version")
		return true
	}
	reported := res.LastStdoutLine()

	version, err := semver.NewVersion(strings.TrimPrefix(reported, "v"))
	if err != nil {
		fmt.Printf("  [WARN] node version %q is not parseable\n", reported)
		return true
	}
	if version.LessThan(semver.MustParse(minNodeVersion)) {
		fmt.Printf("  [FAIL] node %s is older than the minimum supported %s\n", reported, minNodeVersion)
		return false
	}

	fmt.Printf("  [ OK ] node %s\n", reported)
	return true
}

// checkTool reports whether a tool is on PATH, printing its version when
// it is.
func checkTool(ctx context.Context, runner toolrunner.Runner, name string) bool {
	if !toolrunner.Available(name) {
		fmt.Printf("  [MISS] %s not found\n", name)
		return false
	}

	res, err := runner.Run(ctx, "", name, "--version")
	if err != nil || res.ExitCode != 0 {
		fmt.Printf("  [ OK ] %s found\n", name)
		return true
	}
	fmt.Printf("  [ OK ] %s %s\n", name, res.LastStdoutLine())
	return true
}
