package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/gdennie/create-rx-app/internal/config"
	"github.com/gdennie/create-rx-app/internal/generator"
	"github.com/gdennie/create-rx-app/internal/installer"
	"github.com/gdennie/create-rx-app/internal/template"
	"github.com/gdennie/create-rx-app/internal/toolrunner"
)

// Project names become class and namespace identifiers in the generated
// sources, so they are restricted to letter-led alphanumerics.
var projectNamePattern = regexp.MustCompile(`^[A-Za-z][0-9A-Za-z]*$`)

var (
	generateJavaScript bool
	generateVariant    string
	generateTemplates  string
)

func init() {
	generateCmd.Flags().BoolVar(&generateJavaScript, "javascript", false, "Generate the plain-JavaScript variant (default: TypeScript)")
	generateCmd.Flags().StringVar(&generateVariant, "variant", "", "Template variant: typescript or javascript")
	generateCmd.Flags().StringVar(&generateTemplates, "template-dir", "", "Template root override")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate <project-directory>",
	Short: "Generate a ReactXP application skeleton",
	Long: `Generate a ReactXP application in a new directory, install its
dependencies, and print the per-platform run commands. The last path
segment becomes the project name.

Examples:
  create-rx-app generate TodoList
  create-rx-app generate apps/TodoList --javascript`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectPath := filepath.Clean(args[0])
		projectName := filepath.Base(projectPath)
		if err := validateProjectName(projectName); err != nil {
			return err
		}

		variant, err := resolveVariant(generateVariant, generateJavaScript)
		if err != nil {
			return err
		}

		templateRoot := config.TemplateRoot(generateTemplates)
		if _, err := os.Stat(templateRoot); err != nil {
			return fmt.Errorf("template root %s not found (set the %s config key or pass --template-dir): %w",
				templateRoot, config.KeyTemplates, err)
		}

		tool, err := installer.Detect(config.Get(config.KeyInstaller), toolrunner.Available)
		if err != nil {
			return err
		}

		gen := &generator.Generator{
			Runner: &toolrunner.ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr},
			Tool:   tool,
		}
		return gen.Run(cmd.Context(), generator.Request{
			TemplateRoot: templateRoot,
			ProjectName:  projectName,
			ProjectPath:  projectPath,
			Variant:      variant,
		})
	},
}

// resolveVariant combines the --variant and --javascript flags.
// --javascript is shorthand for --variant javascript and may not
// contradict an explicit --variant value.
func resolveVariant(name string, javascript bool) (template.Variant, error) {
	if name == "" {
		if javascript {
			return template.JavaScript, nil
		}
		return template.TypeScript, nil
	}
	v, err := template.ParseVariant(name)
	if err != nil {
		return "", err
	}
	if javascript && v != template.JavaScript {
		return "", fmt.Errorf("--javascript conflicts with --variant %s", name)
	}
	return v, nil
}

func validateProjectName(name string) error {
	if !projectNamePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must start with a letter and contain only letters and digits", name)
	}
	return nil
}
