package generator

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/ddddddO/gtree"
	"github.com/lithammer/dedent"

	"github.com/gdennie/create-rx-app/internal/installer"
	"github.com/gdennie/create-rx-app/internal/manifest"
	"github.com/gdennie/create-rx-app/internal/ui"
)

// printInstructions renders the success epilogue: the generated top-level
// layout and the run commands for each platform.
func printInstructions(req Request, tool installer.Tool, files []string) {
	ui.Success("%s was generated successfully!", req.ProjectName)

	if tree := layoutTree(req.ProjectName, files); tree != "" {
		ui.Plain("%s", "\n"+tree)
	}

	run := runCommand(tool)
	text := dedent.Dedent(fmt.Sprintf(`
		To run your app on the web:
		  cd %[1]s
		  %[2]s start:web

		To build the production web bundle:
		  cd %[1]s
		  %[2]s build:web

		To run your app on iOS:
		  cd %[1]s
		  %[2]s start:ios

		To run your app on Android:
		  cd %[1]s
		  %[2]s start:android

		To run your app on Windows:
		  cd %[1]s
		  %[2]s start:windows
	`, req.ProjectPath, run))
	ui.Plain("%s", text)
}

// runCommand is how the chosen package manager invokes a script.
func runCommand(tool installer.Tool) string {
	if tool == installer.Yarn {
		return "yarn"
	}
	return "npm run"
}

// layoutTree renders the project's top-level entries under the project
// name. Directories sort before files.
func layoutTree(projectName string, files []string) string {
	dirs := map[string]bool{}
	plain := map[string]bool{manifest.FileName: true}
	for _, f := range files {
		if i := strings.IndexByte(f, '/'); i >= 0 {
			dirs[f[:i]] = true
		} else {
			plain[f] = true
		}
	}

	root := gtree.NewRoot(projectName)
	for _, name := range sortedKeys(dirs) {
		root.Add(name)
	}
	for _, name := range sortedKeys(plain) {
		root.Add(name)
	}

	var buf bytes.Buffer
	if err := gtree.OutputProgrammably(&buf, root); err != nil {
		return ""
	}
	return buf.String()
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
