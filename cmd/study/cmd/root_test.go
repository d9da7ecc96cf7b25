package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/templui/studytracker/internal/model"
)

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := RootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--store", "file", "--path", dir}, args...))
	err := root.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := run(t, dir, args...)
	if err != nil {
		t.Fatalf("study %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func TestStudyWorkflow(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	dir := t.TempDir()

	out := mustRun(t, dir, "add", "Math", "10")
	if !strings.Contains(out, "Added Math (0 / 10 hours)") {
		t.Fatalf("unexpected add output %q", out)
	}

	out = mustRun(t, dir, "log", "Math", "4")
	if !strings.Contains(out, "Math: 4 / 10 hours (40%)") {
		t.Fatalf("unexpected log output %q", out)
	}
	if strings.Contains(out, "Congratulations") {
		t.Fatalf("goal not reached yet: %q", out)
	}

	out = mustRun(t, dir, "log", "Math", "7")
	if !strings.Contains(out, "Congratulations! You have completed your study goal for Math.") {
		t.Fatalf("expected completion message, got %q", out)
	}
	if !strings.Contains(out, "Total Study Time: 11 hours") {
		t.Fatalf("expected total, got %q", out)
	}

	mustRun(t, dir, "add", "Art", "2")
	out = mustRun(t, dir, "ls")
	if !strings.Contains(out, "11 / 10 hours") || !strings.Contains(out, "0 / 2 hours") {
		t.Fatalf("unexpected listing %q", out)
	}

	if _, err := run(t, dir, "reset"); err == nil {
		t.Fatalf("reset without --yes must fail")
	}
	mustRun(t, dir, "reset", "--yes")
	out = mustRun(t, dir, "total")
	if strings.TrimSpace(out) != "Total Study Time: 0 hours" {
		t.Fatalf("unexpected total %q", out)
	}

	mustRun(t, dir, "rm", "Art")
	out = mustRun(t, dir, "export")
	var exported []model.Subject
	if err := json.Unmarshal([]byte(out), &exported); err != nil {
		t.Fatalf("export is not JSON: %v\n%s", err, out)
	}
	if len(exported) != 1 || exported[0].Subject != "Math" {
		t.Fatalf("unexpected export %+v", exported)
	}

	mustRun(t, dir, "export", "--format", "xlsx", "--output", filepath.Join(dir, "subjects.xlsx"))
}

func TestStudyErrors(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	dir := t.TempDir()

	if _, err := run(t, dir, "log", "Ghost", "1"); err == nil || !strings.Contains(err.Error(), "subject not found") {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := run(t, dir, "add", "Math", "0"); err == nil {
		t.Fatalf("expected invalid goal error")
	}
	mustRun(t, dir, "add", "Math", "3")
	if _, err := run(t, dir, "add", "Math", "3"); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestThemeCommand(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	dir := t.TempDir()

	if out := mustRun(t, dir, "theme"); !strings.Contains(out, "Dark mode disabled") {
		t.Fatalf("default theme should be light, got %q", out)
	}
	if out := mustRun(t, dir, "theme", "toggle"); !strings.Contains(out, "Dark mode enabled") {
		t.Fatalf("toggle should enable dark mode, got %q", out)
	}
	if out := mustRun(t, dir, "theme"); !strings.Contains(out, "Dark mode enabled") {
		t.Fatalf("theme must persist, got %q", out)
	}
	if _, err := run(t, dir, "theme", "purple"); err == nil {
		t.Fatalf("expected invalid argument error")
	}
}
