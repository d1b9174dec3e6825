package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdir changes into dir for the duration of the test. It stands in for
// testing.T.Chdir, which is unavailable before Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunConvert_ExplicitOutput(t *testing.T) {
	input := writeInput(t, "watched-movies.json",
		`[{"title":"Movie A","year":2020,"ids":{"imdb":"tt0000001","tmdb":"123"}}]`)
	output := filepath.Join(t.TempDir(), "out.json")

	if err := runConvert(convertParams{input: input, output: output}); err != nil {
		t.Fatalf("runConvert failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"imdb_id": "tt0000001"`) {
		t.Errorf("unexpected output: %s", data)
	}
}

func TestRunConvert_DefaultOutputName(t *testing.T) {
	input := writeInput(t, "export.json",
		`[{"plays":1,"last_watched_at":"2024-01-01T00:00:00Z",
		   "movie":{"title":"Movie A","year":2020,"ids":{"imdb":"tt0000001"}}}]`)
	t.Setenv("TRAKTPORT_OUTPUT_DIR", "")
	chdir(t, t.TempDir())

	if err := runConvert(convertParams{input: input}); err != nil {
		t.Fatalf("runConvert failed: %v", err)
	}
	if _, err := os.Stat("movies_import.json"); err != nil {
		t.Errorf("expected movies_import.json to exist: %v", err)
	}
}

func TestRunConvert_MissingFile(t *testing.T) {
	err := runConvert(convertParams{input: filepath.Join(t.TempDir(), "nope.json")})
	if err == nil || !strings.HasPrefix(err.Error(), "File not found") {
		t.Fatalf("err = %v, want File not found", err)
	}
}

func TestRunConvert_InvalidJSON(t *testing.T) {
	input := writeInput(t, "bad.json", `[{"movie": }`)
	chdir(t, t.TempDir())

	err := runConvert(convertParams{input: input})
	if err == nil || !strings.HasPrefix(err.Error(), "Invalid JSON") {
		t.Fatalf("err = %v, want Invalid JSON", err)
	}
	// No output file is written on failure.
	if _, statErr := os.Stat("import.json"); statErr == nil {
		t.Error("output file written despite failure")
	}
}

func TestRunConvert_UnknownShape(t *testing.T) {
	input := writeInput(t, "export.json", `[{"foo":"bar"}]`)

	err := runConvert(convertParams{input: input})
	if err == nil || err.Error() != "No valid items found" {
		t.Fatalf("err = %v, want No valid items found", err)
	}
}

func TestRunConvert_EmptyExportWithHint(t *testing.T) {
	input := writeInput(t, "watched-shows.json", `[]`)
	t.Setenv("TRAKTPORT_OUTPUT_DIR", "")
	chdir(t, t.TempDir())

	if err := runConvert(convertParams{input: input}); err != nil {
		t.Fatalf("runConvert failed: %v", err)
	}

	data, err := os.ReadFile("shows_import.json")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("output = %q, want empty array", data)
	}
}

func TestRunConvert_ForcedFormat(t *testing.T) {
	input := writeInput(t, "export.json", `[]`)
	output := filepath.Join(t.TempDir(), "out.json")

	if err := runConvert(convertParams{input: input, output: output, format: "history"}); err != nil {
		t.Fatalf("runConvert failed: %v", err)
	}
	if _, err := os.Stat(output); err != nil {
		t.Errorf("expected output file: %v", err)
	}
}

func TestRunConvert_BadFormatFlag(t *testing.T) {
	input := writeInput(t, "export.json", `[]`)

	err := runConvert(convertParams{input: input, format: "bogus"})
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("err = %v, want unknown format", err)
	}
}

func TestRunConvert_SchemaCheck(t *testing.T) {
	input := writeInput(t, "history-1.json",
		`[{"id":1,"watched_at":"2024-10-25T20:00:00Z","action":"watch","type":"movie","rating":8,
		   "movie":{"title":"The Godfather","year":1972,"ids":{"imdb":"tt0068646"}}}]`)
	output := filepath.Join(t.TempDir(), "out.json")

	if err := runConvert(convertParams{input: input, output: output, check: true}); err != nil {
		t.Fatalf("runConvert --check failed: %v", err)
	}
}

func TestUserErrorPassesThroughOtherErrors(t *testing.T) {
	err := os.ErrPermission
	if userError(err) != err {
		t.Errorf("unrelated error rewritten: %v", userError(err))
	}
}
