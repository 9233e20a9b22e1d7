package template

import "fmt"

// Variant selects which language flavor of the template tree a project is
// generated from.
type Variant string

const (
	TypeScript Variant = "typescript"
	JavaScript Variant = "javascript"
)

// ParseVariant maps a user-facing flag value to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case string(TypeScript), "ts":
		return TypeScript, nil
	case string(JavaScript), "js":
		return JavaScript, nil
	}
	return "", fmt.Errorf("unknown template variant %q (expected typescript or javascript)", s)
}

// Dir is the subdirectory of the template root holding this variant's
// sources.
func (v Variant) Dir() string {
	return string(v)
}
