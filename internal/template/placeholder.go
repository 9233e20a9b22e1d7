package template

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// rule is one compiled replacement. source keeps the original pattern text
// so rules can be ordered by pattern length.
type rule struct {
	source  string
	pattern *regexp.Regexp
	value   string
}

// ReplacementSet is an ordered collection of regex replacement rules.
// Rules apply longest pattern first so an overlapping shorter token can
// never eat the prefix of a longer one, and ties keep insertion order.
// Apply runs each rule exactly once over the whole input; the set is never
// re-applied to its own output.
type ReplacementSet struct {
	rules []rule
}

// NewReplacementSet returns an empty set.
func NewReplacementSet() *ReplacementSet {
	return &ReplacementSet{}
}

// Add compiles pattern as a regular expression and appends it to the set.
// value is substituted verbatim; it is never interpreted as a regexp
// replacement template, so a "$" in a value (Windows machine-account
// usernames end with one) survives untouched.
func (s *ReplacementSet) Add(pattern, value string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("compiling replacement pattern %q: %w", pattern, err)
	}
	s.rules = append(s.rules, rule{source: pattern, pattern: re, value: value})
	s.sort()
	return nil
}

// AddLiteral appends a rule matching token verbatim.
func (s *ReplacementSet) AddLiteral(token, value string) {
	// QuoteMeta output always compiles.
	if err := s.Add(regexp.QuoteMeta(token), value); err != nil {
		panic(err)
	}
}

// Apply rewrites in through every rule in order and returns the result.
func (s *ReplacementSet) Apply(in string) string {
	out := in
	for _, r := range s.rules {
		out = r.pattern.ReplaceAllLiteralString(out, r.value)
	}
	return out
}

// Len reports the number of rules in the set.
func (s *ReplacementSet) Len() int {
	return len(s.rules)
}

func (s *ReplacementSet) sort() {
	sort.SliceStable(s.rules, func(i, j int) bool {
		return len(s.rules[i].source) > len(s.rules[j].source)
	})
}

// ContentValues carries the per-run values substituted into text files.
// GUIDs and the certificate thumbprint are generated by the caller so a
// run is reproducible under test.
type ContentValues struct {
	ProjectName           string
	Username              string
	ProjectGUID           string
	PackageGUID           string
	CertificateThumbprint string
}

// PathRules returns the destination path rewrites for a project name:
// the HelloWorld placeholder becomes the project name, and the
// underscore-prefixed config files regain the live names their tools
// expect.
func PathRules(projectName string) *ReplacementSet {
	s := NewReplacementSet()
	s.AddLiteral("HelloWorld", projectName)
	s.AddLiteral("_eslintrc", ".eslintrc")
	s.AddLiteral("_gitignore", ".gitignore")
	s.AddLiteral("_tsconfig.json", "tsconfig.json")
	s.AddLiteral("_tslint.json", "tslint.json")
	return s
}

// ContentRules returns the text substitutions for a run. The thumbprint
// token expands to a full PackageCertificateThumbprint element when a
// certificate was built and to nothing otherwise, so Windows project files
// stay valid either way.
func ContentRules(v ContentValues) *ReplacementSet {
	thumbprint := ""
	if v.CertificateThumbprint != "" {
		thumbprint = fmt.Sprintf("<PackageCertificateThumbprint>%s</PackageCertificateThumbprint>", v.CertificateThumbprint)
	}

	s := NewReplacementSet()
	s.AddLiteral("HelloWorld", v.ProjectName)
	s.AddLiteral("helloworld", strings.ToLower(v.ProjectName))
	s.AddLiteral("${currentUser}", v.Username)
	s.AddLiteral("${projectGuid}", v.ProjectGUID)
	s.AddLiteral("${packageGuid}", v.PackageGUID)
	s.AddLiteral("${certificateThumbprint}", thumbprint)
	return s
}
