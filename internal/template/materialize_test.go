package template

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func testRules(projectName string) (*ReplacementSet, *ReplacementSet) {
	return PathRules(projectName), ContentRules(ContentValues{
		ProjectName: projectName,
		Username:    "alice",
		ProjectGUID: "11111111-1111-1111-1111-111111111111",
		PackageGUID: "22222222-2222-2222-2222-222222222222",
	})
}

func TestMaterializeRenamesAndSubstitutes(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeTestFile(t, filepath.Join(src, "src", "HelloWorld.tsx"), "export class HelloWorld {}")
	writeTestFile(t, filepath.Join(src, "windows", "HelloWorld", "app.sln"), "by ${currentUser}")
	writeTestFile(t, filepath.Join(src, "_gitignore"), "node_modules\n")

	pathRules, contentRules := testRules("Notes")
	files, err := Materialize(src, dst, DefaultIgnores(), pathRules, contentRules)
	if err != nil {
		t.Fatalf("Materialize(): %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dst, "src", "Notes.tsx"))
	if err != nil {
		t.Fatalf("renamed file missing: %v", err)
	}
	if string(got) != "export class Notes {}" {
		t.Errorf("content = %q, want substituted class name", got)
	}

	got, err = os.ReadFile(filepath.Join(dst, "windows", "Notes", "app.sln"))
	if err != nil {
		t.Fatalf("renamed directory missing: %v", err)
	}
	if string(got) != "by alice" {
		t.Errorf("content = %q, want substituted user", got)
	}

	if _, err := os.Stat(filepath.Join(dst, ".gitignore")); err != nil {
		t.Errorf("_gitignore was not renamed to .gitignore: %v", err)
	}

	want := []string{".gitignore", "src/Notes.tsx", "windows/Notes/app.sln"}
	if len(files) != len(want) {
		t.Fatalf("Materialize() reported %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestMaterializeCopiesBinariesVerbatim(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	// A binary asset whose bytes happen to contain a token must not be
	// rewritten.
	raw := []byte("\x89PNG\r\n\x1a\nHelloWorld ${currentUser}\x00\xff")
	if err := os.WriteFile(filepath.Join(src, "logo.png"), raw, 0o644); err != nil {
		t.Fatal(err)
	}

	pathRules, contentRules := testRules("Notes")
	if _, err := Materialize(src, dst, nil, pathRules, contentRules); err != nil {
		t.Fatalf("Materialize(): %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dst, "logo.png"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, raw) {
		t.Errorf("binary content changed: got %q, want %q", got, raw)
	}
}

func TestMaterializeSkipsIgnoredEntries(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeTestFile(t, filepath.Join(src, "_package.json"), "{}")
	writeTestFile(t, filepath.Join(src, "keep.txt"), "k")

	pathRules, contentRules := testRules("Notes")
	files, err := Materialize(src, dst, DefaultIgnores(), pathRules, contentRules)
	if err != nil {
		t.Fatalf("Materialize(): %v", err)
	}
	if len(files) != 1 || files[0] != "keep.txt" {
		t.Fatalf("Materialize() reported %v, want only keep.txt", files)
	}
	if _, err := os.Stat(filepath.Join(dst, "_package.json")); !os.IsNotExist(err) {
		t.Error("_package.json was copied into the project")
	}
}

func TestMaterializePreservesFileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}

	src := t.TempDir()
	dst := t.TempDir()
	script := filepath.Join(src, "scripts", "run.sh")
	writeTestFile(t, script, "#!/bin/sh\n")
	if err := os.Chmod(script, 0o755); err != nil {
		t.Fatal(err)
	}

	pathRules, contentRules := testRules("Notes")
	if _, err := Materialize(src, dst, nil, pathRules, contentRules); err != nil {
		t.Fatalf("Materialize(): %v", err)
	}

	info, err := os.Stat(filepath.Join(dst, "scripts", "run.sh"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Errorf("mode = %v, want 0755", info.Mode().Perm())
	}
}
