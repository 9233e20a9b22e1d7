package installer

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdennie/create-rx-app/internal/template"
	"github.com/gdennie/create-rx-app/internal/toolrunner"
	"github.com/gdennie/create-rx-app/internal/ui"
)

type runnerCall struct {
	dir  string
	name string
	args []string
}

// fakeRunner records invocations and fails the pass whose ordinal matches
// failAt (1-based).
type fakeRunner struct {
	calls  []runnerCall
	failAt int
}

func (f *fakeRunner) Run(ctx context.Context, dir, name string, args ...string) (*toolrunner.Result, error) {
	f.calls = append(f.calls, runnerCall{dir: dir, name: name, args: args})
	if f.failAt == len(f.calls) {
		return &toolrunner.Result{ExitCode: 1}, nil
	}
	return &toolrunner.Result{}, nil
}

func muteUI(t *testing.T) {
	t.Helper()
	out, errOut := ui.Out, ui.ErrOut
	ui.Out, ui.ErrOut = io.Discard, io.Discard
	t.Cleanup(func() { ui.Out, ui.ErrOut = out, errOut })
}

// writeFrameworkManifest plants the manifest the peer pass reads back.
func writeFrameworkManifest(t *testing.T, projectDir, content string) {
	t.Helper()
	dir := filepath.Join(projectDir, "node_modules", "reactxp")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

const fullPeers = `{
  "name": "reactxp",
  "version": "2.0.0",
  "peerDependencies": {
    "react": "^16.8.6",
    "react-dom": "^16.8.6",
    "react-native": "^0.59.0",
    "react-native-windows": "^0.59.0"
  }
}`

func hasArg(args []string, want string) bool {
	for _, a := range args {
		if a == want {
			return true
		}
	}
	return false
}

func TestInstall_ThreePasses(t *testing.T) {
	muteUI(t)
	dir := t.TempDir()
	writeFrameworkManifest(t, dir, fullPeers)

	runner := &fakeRunner{}
	inst := &Installer{Runner: runner, Tool: NPM, ProjectDir: dir}
	if err := inst.Install(context.Background(), template.TypeScript); err != nil {
		t.Fatalf("Install error: %v", err)
	}
	if len(runner.calls) != 3 {
		t.Fatalf("got %d installer invocations, want 3", len(runner.calls))
	}

	dev := runner.calls[0]
	if dev.name != "npm" || dev.dir != dir {
		t.Errorf("dev pass ran %q in %q, want npm in the project dir", dev.name, dev.dir)
	}
	for _, flag := range []string{"install", "--save-dev", "--save-exact", "--ignore-scripts"} {
		if !hasArg(dev.args, flag) {
			t.Errorf("dev pass args missing %s: %v", flag, dev.args)
		}
	}
	if !hasArg(dev.args, "typescript@^3.4.5") {
		t.Errorf("dev pass args missing the typescript spec: %v", dev.args)
	}

	framework := runner.calls[1]
	if !hasArg(framework.args, "reactxp@^2.0.0") {
		t.Errorf("framework pass args missing reactxp: %v", framework.args)
	}
	if hasArg(framework.args, "--save-dev") {
		t.Error("framework pass must not install as a dev dependency")
	}

	peers := runner.calls[2]
	wantPeers := []string{"react@^16.8.6", "react-dom@^16.8.6", "react-native@^0.59.0", "react-native-windows@^0.59.0"}
	for _, spec := range wantPeers {
		if !hasArg(peers.args, spec) {
			t.Errorf("peer pass args missing %s: %v", spec, peers.args)
		}
	}
}

func TestInstall_JavaScriptDevToolchain(t *testing.T) {
	muteUI(t)
	dir := t.TempDir()
	writeFrameworkManifest(t, dir, fullPeers)

	runner := &fakeRunner{}
	inst := &Installer{Runner: runner, Tool: NPM, ProjectDir: dir}
	if err := inst.Install(context.Background(), template.JavaScript); err != nil {
		t.Fatalf("Install error: %v", err)
	}

	dev := runner.calls[0]
	if !hasArg(dev.args, "@babel/core@^7.4.4") {
		t.Errorf("javascript dev pass missing babel: %v", dev.args)
	}
	if hasArg(dev.args, "typescript@^3.4.5") {
		t.Errorf("javascript dev pass must not install typescript: %v", dev.args)
	}
}

func TestInstall_YarnArgs(t *testing.T) {
	muteUI(t)
	dir := t.TempDir()
	writeFrameworkManifest(t, dir, fullPeers)

	runner := &fakeRunner{}
	inst := &Installer{Runner: runner, Tool: Yarn, ProjectDir: dir}
	if err := inst.Install(context.Background(), template.TypeScript); err != nil {
		t.Fatalf("Install error: %v", err)
	}

	dev := runner.calls[0]
	for _, flag := range []string{"add", "--dev", "--exact", "--ignore-scripts"} {
		if !hasArg(dev.args, flag) {
			t.Errorf("yarn dev pass args missing %s: %v", flag, dev.args)
		}
	}
	if hasArg(runner.calls[1].args, "--dev") {
		t.Error("yarn framework pass must not carry --dev")
	}
}

func TestInstall_MissingRequiredPeerAborts(t *testing.T) {
	muteUI(t)
	dir := t.TempDir()
	writeFrameworkManifest(t, dir, `{
  "name": "reactxp",
  "peerDependencies": {
    "react": "^16.8.6",
    "react-dom": "^16.8.6",
    "react-native": "^0.59.0"
  }
}`)

	runner := &fakeRunner{}
	inst := &Installer{Runner: runner, Tool: NPM, ProjectDir: dir}
	err := inst.Install(context.Background(), template.TypeScript)
	if err == nil {
		t.Fatal("Install succeeded with a missing required peer")
	}
	if !strings.Contains(err.Error(), "react-native-windows") {
		t.Errorf("error %q does not name the missing peer", err)
	}
	if len(runner.calls) != 2 {
		t.Errorf("got %d invocations, want 2 (peer install must not run)", len(runner.calls))
	}
}

func TestInstall_FailedPassAborts(t *testing.T) {
	muteUI(t)
	dir := t.TempDir()
	writeFrameworkManifest(t, dir, fullPeers)

	runner := &fakeRunner{failAt: 1}
	inst := &Installer{Runner: runner, Tool: NPM, ProjectDir: dir}
	err := inst.Install(context.Background(), template.TypeScript)
	if err == nil {
		t.Fatal("Install succeeded despite a failing pass")
	}
	if !strings.Contains(err.Error(), "development dependencies") {
		t.Errorf("error %q does not name the failed group", err)
	}
	if len(runner.calls) != 1 {
		t.Errorf("got %d invocations, want 1 (later passes must not run)", len(runner.calls))
	}
}

func TestDetect(t *testing.T) {
	avail := func(names ...string) func(string) bool {
		return func(name string) bool {
			for _, n := range names {
				if n == name {
					return true
				}
			}
			return false
		}
	}

	tests := []struct {
		name       string
		preference string
		available  func(string) bool
		want       Tool
		wantErr    bool
	}{
		{"auto prefers yarn", "auto", avail("yarn", "npm"), Yarn, false},
		{"auto falls back to npm", "", avail("npm"), NPM, false},
		{"auto with nothing installed", "auto", avail(), "", true},
		{"explicit npm", "npm", avail("yarn", "npm"), NPM, false},
		{"explicit yarn missing", "yarn", avail("npm"), "", true},
		{"unknown preference", "pnpm", avail("yarn", "npm"), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(tt.preference, tt.available)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Detect succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Detect error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Detect = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPackageSpec(t *testing.T) {
	if got := (Package{Name: "react", Version: "^16.8.6"}).Spec(); got != "react@^16.8.6" {
		t.Errorf("Spec() = %q, want %q", got, "react@^16.8.6")
	}
	if got := (Package{Name: "jest"}).Spec(); got != "jest" {
		t.Errorf("Spec() = %q, want bare name", got)
	}
}
