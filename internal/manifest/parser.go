package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Load reads and parses the manifest at path.
func Load(path string) (*PackageJSON, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var p PackageJSON
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &p, nil
}

// SetProject stamps a base manifest with the new project's identity: the
// name becomes the lowercased project name, and both dependency blocks
// reset to empty objects because the dependency installer pins every
// package itself rather than trusting whatever the template listed.
func (p *PackageJSON) SetProject(projectName string) error {
	if err := p.Set("name", strings.ToLower(projectName)); err != nil {
		return err
	}
	if err := p.Set("dependencies", map[string]string{}); err != nil {
		return err
	}
	return p.Set("devDependencies", map[string]string{})
}

// Write renders the manifest with two-space indentation and a trailing
// newline, the way npm itself writes package.json.
func (p *PackageJSON) Write(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
