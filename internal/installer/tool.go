package installer

import "fmt"

// Tool is a supported package manager.
type Tool string

const (
	NPM  Tool = "npm"
	Yarn Tool = "yarn"
)

// Detect picks the package manager for a run. An explicit preference
// names the tool outright and fails when it is missing; with no
// preference yarn wins when present, then npm.
func Detect(preference string, available func(string) bool) (Tool, error) {
	switch preference {
	case "npm":
		if available("npm") {
			return NPM, nil
		}
		return "", fmt.Errorf("npm was requested but is not on PATH")
	case "yarn":
		if available("yarn") {
			return Yarn, nil
		}
		return "", fmt.Errorf("yarn was requested but is not on PATH")
	case "", "auto":
		if available("yarn") {
			return Yarn, nil
		}
		if available("npm") {
			return NPM, nil
		}
		return "", fmt.Errorf("neither yarn nor npm is on PATH")
	}
	return "", fmt.Errorf("unknown installer preference %q (expected auto, npm, or yarn)", preference)
}

// installArgs builds the argument list for one dependency-group install.
// Both tools pin exact versions and skip lifecycle scripts.
func (t Tool) installArgs(dev bool, specs []string) []string {
	var args []string
	switch t {
	case Yarn:
		args = []string{"add"}
		if dev {
			args = append(args, "--dev")
		}
		args = append(args, "--exact", "--ignore-scripts")
	default:
		args = []string{"install"}
		if dev {
			args = append(args, "--save-dev")
		} else {
			args = append(args, "--save")
		}
		args = append(args, "--save-exact", "--ignore-scripts")
	}
	return append(args, specs...)
}
