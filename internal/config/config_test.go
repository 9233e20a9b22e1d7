package config

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr bool
	}{
		{KeyInstaller, "npm", false},
		{KeyInstaller, "yarn", false},
		{KeyInstaller, "auto", false},
		{KeyInstaller, "pnpm", true},
		{KeyColor, "never", false},
		{KeyColor, "sometimes", true},
		{KeyTemplates, "/opt/rx-templates", false},
		{"mirror", "https://example.com", true},
	}
	for _, tt := range tests {
		err := Validate(tt.key, tt.value)
		if tt.wantErr && err == nil {
			t.Errorf("Validate(%q, %q) succeeded, want error", tt.key, tt.value)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("Validate(%q, %q): %v", tt.key, tt.value, err)
		}
	}
}

func TestTemplateRootOverride(t *testing.T) {
	if got := TemplateRoot("/custom/templates"); got != "/custom/templates" {
		t.Errorf("TemplateRoot(override) = %q, want the override", got)
	}
}
