package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/gdennie/create-rx-app/internal/certificate"
	"github.com/gdennie/create-rx-app/internal/installer"
	"github.com/gdennie/create-rx-app/internal/manifest"
	"github.com/gdennie/create-rx-app/internal/platform"
	"github.com/gdennie/create-rx-app/internal/template"
	"github.com/gdennie/create-rx-app/internal/toolrunner"
	"github.com/gdennie/create-rx-app/internal/ui"
)

const totalSteps = 5

// Request is the immutable input for one generation run.
type Request struct {
	TemplateRoot string
	ProjectName  string
	ProjectPath  string
	Variant      template.Variant
}

// Generator runs generation requests. Runner and Tool are injected so
// tests can drive the whole pipeline without touching npm.
type Generator struct {
	Runner toolrunner.Runner
	Tool   installer.Tool
}

// Run executes the full generation sequence for req.
func (g *Generator) Run(ctx context.Context, req Request) error {
	ui.Step(1, totalSteps, "Creating %s", req.ProjectPath)
	if err := createProjectDir(req.ProjectPath); err != nil {
		return err
	}

	ui.Step(2, totalSteps, "Loading the %s base manifest", req.Variant)
	base, err := manifest.Load(filepath.Join(req.TemplateRoot, req.Variant.Dir(), manifest.BaseName))
	if err != nil {
		return err
	}

	ui.Step(3, totalSteps, "Copying template files")
	files, err := g.materialize(ctx, req)
	if err != nil {
		return err
	}

	ui.Step(4, totalSteps, "Writing %s", manifest.FileName)
	manifestPath := filepath.Join(req.ProjectPath, manifest.FileName)
	if err := base.SetProject(req.ProjectName); err != nil {
		return err
	}
	if err := base.Write(manifestPath); err != nil {
		return err
	}
	warnOnManifestIssues(manifestPath)

	ui.Step(5, totalSteps, "Installing dependencies")
	inst := &installer.Installer{Runner: g.Runner, Tool: g.Tool, ProjectDir: req.ProjectPath}
	if err := inst.Install(ctx, req.Variant); err != nil {
		return err
	}

	printInstructions(req, g.Tool, files)
	return nil
}

// createProjectDir creates the project directory, refusing to touch a
// path that already exists.
func createProjectDir(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("directory %s already exists", path)
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}
	return nil
}

// materialize copies every template source into the project. The keys
// source (the bundled debug certificate) only ships when no certificate
// thumbprint was produced, which includes every non-Windows host.
func (g *Generator) materialize(ctx context.Context, req Request) ([]string, error) {
	thumbprint, err := certificate.Generate(ctx, g.Runner, req.ProjectPath, req.ProjectName)
	if err != nil {
		ui.Warn("Could not build a signing certificate (%v); using the bundled debug certificate", err)
		thumbprint = ""
	}

	// Most sources merge into the project root; the windows tree keeps its
	// own folder so the exported certificate and the app manifest that
	// references it live side by side.
	type source struct {
		dir  string
		dest string
	}
	sources := []source{{dir: "common"}, {dir: req.Variant.Dir()}}
	if thumbprint == "" {
		sources = append(sources, source{dir: "keys"})
	}
	sources = append(sources, source{dir: "windows", dest: "windows"})

	pathRules := template.PathRules(req.ProjectName)
	contentRules := template.ContentRules(template.ContentValues{
		ProjectName:           req.ProjectName,
		Username:              platform.Username(),
		ProjectGUID:           uuid.NewString(),
		PackageGUID:           uuid.NewString(),
		CertificateThumbprint: thumbprint,
	})

	var files []string
	for _, s := range sources {
		copied, err := template.Materialize(
			filepath.Join(req.TemplateRoot, s.dir),
			filepath.Join(req.ProjectPath, s.dest),
			template.DefaultIgnores(),
			pathRules,
			contentRules,
		)
		if err != nil {
			return nil, fmt.Errorf("copying %s: %w", s.dir, err)
		}
		for _, rel := range copied {
			if s.dest != "" {
				rel = s.dest + "/" + rel
			}
			files = append(files, rel)
		}
	}
	return files, nil
}

// warnOnManifestIssues runs the schema check over the manifest just
// written. Problems never stop a run; the file is already on disk and npm
// is the final arbiter.
func warnOnManifestIssues(path string) {
	result, err := manifest.ValidateFile(path)
	if err != nil {
		ui.Warn("Could not validate %s: %v", manifest.FileName, err)
		return
	}
	for _, issue := range result.Issues {
		if issue.Path != "" {
			ui.Warn("%s: %s: %s", manifest.FileName, issue.Path, issue.Message)
			continue
		}
		ui.Warn("%s: %s", manifest.FileName, issue.Message)
	}
}
