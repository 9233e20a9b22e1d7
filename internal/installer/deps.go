package installer

import "github.com/gdennie/create-rx-app/internal/template"

// Package is one installable npm package. An empty Version installs
// whatever the registry tags latest; the exact-version flag pins the
// resolved release either way.
type Package struct {
	Name    string
	Version string
}

// Spec renders the package as an installer argument.
func (p Package) Spec() string {
	if p.Version == "" {
		return p.Name
	}
	return p.Name + "@" + p.Version
}

// RequiredPeers are the renderers reactxp must declare as peer
// dependencies before a generated app is considered complete: the UI
// framework, the DOM renderer, and the two native renderers.
var RequiredPeers = []string{
	"react",
	"react-dom",
	"react-native",
	"react-native-windows",
}

// Framework is the dependency group holding reactxp itself.
func Framework() []Package {
	return []Package{{Name: "reactxp", Version: "^2.0.0"}}
}

// DevDependencies returns the development toolchain for a variant: the
// shared web/test tooling plus the language-specific compiler and linter
// stack.
func DevDependencies(v template.Variant) []Package {
	shared := []Package{
		{Name: "cross-env", Version: "^5.2.0"},
		{Name: "jest", Version: "^24.7.1"},
		{Name: "react-test-renderer", Version: "^16.8.6"},
		{Name: "rimraf", Version: "^2.6.3"},
		{Name: "webpack", Version: "^4.30.0"},
		{Name: "webpack-cli", Version: "^3.3.1"},
		{Name: "webpack-dev-server", Version: "^3.3.1"},
	}

	switch v {
	case template.JavaScript:
		return append(shared,
			Package{Name: "@babel/core", Version: "^7.4.4"},
			Package{Name: "babel-jest", Version: "^24.7.1"},
			Package{Name: "babel-loader", Version: "^8.0.5"},
			Package{Name: "eslint", Version: "^5.16.0"},
			Package{Name: "eslint-plugin-react", Version: "^7.13.0"},
			Package{Name: "metro-react-native-babel-preset", Version: "^0.53.1"},
		)
	default:
		return append(shared,
			Package{Name: "@types/jest", Version: "^24.0.12"},
			Package{Name: "@types/react", Version: "^16.8.15"},
			Package{Name: "@types/react-dom", Version: "^16.8.4"},
			Package{Name: "@types/react-native", Version: "^0.57.51"},
			Package{Name: "@types/webpack-env", Version: "^1.13.9"},
			Package{Name: "ts-jest", Version: "^24.0.2"},
			Package{Name: "ts-loader", Version: "^5.4.5"},
			Package{Name: "tslint", Version: "^5.16.0"},
			Package{Name: "tslint-microsoft-contrib", Version: "^6.1.1"},
			Package{Name: "tslint-react", Version: "^4.0.0"},
			Package{Name: "typescript", Version: "^3.4.5"},
		)
	}
}
