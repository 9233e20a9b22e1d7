package installer

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gdennie/create-rx-app/internal/manifest"
	"github.com/gdennie/create-rx-app/internal/template"
	"github.com/gdennie/create-rx-app/internal/toolrunner"
	"github.com/gdennie/create-rx-app/internal/ui"
)

// Installer runs dependency installs inside a generated project.
type Installer struct {
	Runner     toolrunner.Runner
	Tool       Tool
	ProjectDir string
}

// Install runs the three passes for a fresh project: development
// dependencies, the framework, then the peer set the installed framework
// declares. The peer manifest is read and gated before the peer install
// is attempted, so a framework missing a required renderer aborts without
// touching the registry again.
func (i *Installer) Install(ctx context.Context, variant template.Variant) error {
	if err := i.installGroup(ctx, "development dependencies", DevDependencies(variant), true); err != nil {
		return err
	}
	if err := i.installGroup(ctx, "reactxp", Framework(), false); err != nil {
		return err
	}

	peers, err := i.peerPackages()
	if err != nil {
		return err
	}
	return i.installGroup(ctx, "peer dependencies", peers, false)
}

func (i *Installer) installGroup(ctx context.Context, group string, pkgs []Package, dev bool) error {
	specs := make([]string, len(pkgs))
	for n, p := range pkgs {
		specs[n] = p.Spec()
	}

	ui.Info("Installing %s with %s", group, i.Tool)
	res, err := i.Runner.Run(ctx, i.ProjectDir, string(i.Tool), i.Tool.installArgs(dev, specs)...)
	if err != nil {
		return fmt.Errorf("installing %s: %w", group, err)
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("installing %s: %s exited with status %d", group, i.Tool, res.ExitCode)
	}
	return nil
}

// peerPackages reads peer versions back from the framework manifest the
// previous pass installed. Every required peer must be declared there.
func (i *Installer) peerPackages() ([]Package, error) {
	path := filepath.Join(i.ProjectDir, "node_modules", "reactxp", manifest.FileName)
	m, err := manifest.Load(path)
	if err != nil {
		return nil, fmt.Errorf("reading the installed reactxp manifest: %w", err)
	}

	var declared map[string]string
	ok, err := m.Get("peerDependencies", &declared)
	if err != nil {
		return nil, fmt.Errorf("reading reactxp peer dependencies: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("the installed reactxp declares no peer dependencies")
	}

	peers := make([]Package, 0, len(RequiredPeers))
	for _, name := range RequiredPeers {
		version, ok := declared[name]
		if !ok {
			return nil, fmt.Errorf("the installed reactxp does not declare the required peer dependency %s", name)
		}
		peers = append(peers, Package{Name: name, Version: version})
	}
	return peers, nil
}
