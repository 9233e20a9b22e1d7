// Package certificate creates the temporary signing certificate a
// generated Windows app package is signed with. Off Windows the helper is
// a no-op; on Windows it shells out to PowerShell and hands back the
// certificate thumbprint for substitution into the project files.
package certificate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdennie/create-rx-app/internal/platform"
	"github.com/gdennie/create-rx-app/internal/toolrunner"
)

// pfxPassword protects the exported key file. The file only ever signs
// local developer builds, so the value matches what the Windows app
// tooling expects rather than guarding anything.
const pfxPassword = "password"

// Generate builds a self-signed certificate for the current OS user and
// exports it under the project's windows folder as
// <projectName>_TemporaryKey.pfx. It returns the certificate thumbprint,
// or "" on non-Windows hosts. Callers treat a failure as a warning and
// fall back to the bundled default keys.
func Generate(ctx context.Context, runner toolrunner.Runner, projectDir, projectName string) (string, error) {
	if !platform.IsWindows() {
		return "", nil
	}
	return build(ctx, runner, projectDir, projectName)
}

func build(ctx context.Context, runner toolrunner.Runner, projectDir, projectName string) (string, error) {
	destDir := filepath.Join(projectDir, "windows", projectName)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("creating certificate directory: %w", err)
	}
	pfxPath := filepath.Join(destDir, projectName+"_TemporaryKey.pfx")

	res, err := runner.Run(ctx, projectDir, "powershell",
		"-NoProfile", "-NonInteractive", "-Command", script(pfxPath))
	if err != nil {
		return "", fmt.Errorf("running the certificate tool: %w", err)
	}
	if res.ExitCode != 0 {
		return "", fmt.Errorf("the certificate tool exited with status %d", res.ExitCode)
	}

	// The script prints the thumbprint as its final line.
	thumbprint := res.LastStdoutLine()
	if thumbprint == "" {
		return "", fmt.Errorf("the certificate tool produced no thumbprint")
	}
	return thumbprint, nil
}

// script emits the PowerShell that creates a code-signing certificate in
// the current user's store, exports it to pfxPath, and prints the
// thumbprint.
func script(pfxPath string) string {
	return fmt.Sprintf(`$cert = New-SelfSignedCertificate -Type Custom -Subject "CN=%[1]s" -FriendlyName "%[1]s" -KeyUsage DigitalSignature -CertStoreLocation "Cert:\CurrentUser\My" -TextExtension @("2.5.29.37={text}1.3.6.1.5.5.7.3.3", "2.5.29.19={text}")
$password = ConvertTo-SecureString -String "%[2]s" -Force -AsPlainText
Export-PfxCertificate -Cert ("Cert:\CurrentUser\My\" + $cert.Thumbprint) -FilePath "%[3]s" -Password $password | Out-Null
$cert.Thumbprint`, platform.Username(), pfxPassword, pfxPath)
}
