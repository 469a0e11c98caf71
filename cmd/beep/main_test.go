package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"pkt.systems/beeper"
)

func runBeepCLI(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	if beeper.Active() != nil {
		t.Fatalf("beep left an active beeper behind")
	}
	return stdout.String(), stderr.String(), code
}

func TestBeepPlainMessage(t *testing.T) {
	out, errOut, code := runBeepCLI(t, "--no-color", "--id", "svc", "--origin", "main.x:42", "info", "boom %d", "7")
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, errOut)
	}
	if want := "(svc) main.x:42: boom 7\n"; out != want {
		t.Fatalf("unexpected output: got %q want %q", out, want)
	}
}

func TestBeepFormattedMessage(t *testing.T) {
	out, errOut, code := runBeepCLI(t, "--formatted", "--id", "svc", "warn", "careful")
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, errOut)
	}
	if !strings.HasPrefix(out, "\x1b[0;49;93;1;") {
		t.Fatalf("expected bold yellow prelude, got %q", out)
	}
	if !strings.HasSuffix(out, "(svc) careful\x1b[0m\n") {
		t.Fatalf("expected message and reset, got %q", out)
	}
}

func TestBeepUnknownStyle(t *testing.T) {
	out, errOut, code := runBeepCLI(t, "--no-color", "nope", "hello")
	if code == 0 {
		t.Fatalf("expected failure for unknown style")
	}
	if out != "" {
		t.Fatalf("nothing should be written, got %q", out)
	}
	if !strings.Contains(errOut, "unknown style nope") {
		t.Fatalf("stderr should explain the failure, got %q", errOut)
	}
}

func TestBeepRejectsBadArguments(t *testing.T) {
	for _, args := range [][]string{
		{"info"},
		{"--origin", "nowhere", "info", "x"},
		{"info", "%d apples", "many"},
		{"--wide-encoding", "klingon", "info", "x"},
	} {
		if _, _, code := runBeepCLI(t, args...); code == 0 {
			t.Fatalf("expected failure for %q", args)
		}
	}
}

func TestBeepMultipleOutputs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beep.log")
	out, errOut, code := runBeepCLI(t, "--no-color", "-o", "default", "-o", path, "--show-time", "success", "done")
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, errOut)
	}
	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if string(written) != out {
		t.Fatalf("file and stdout differ: %q vs %q", written, out)
	}
	if !strings.HasSuffix(out, " (beep) done\n") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestBeepFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("BEEPER_IDENTIFIER", "from-env")
	t.Setenv("BEEPER_FORMATTED", "false")

	out, _, code := runBeepCLI(t, "info", "x")
	if code != 0 || out != "(from-env) x\n" {
		t.Fatalf("environment identifier not used: code %d output %q", code, out)
	}
	out, _, code = runBeepCLI(t, "--id", "from-flag", "info", "x")
	if code != 0 || out != "(from-flag) x\n" {
		t.Fatalf("flag should win over environment: code %d output %q", code, out)
	}
}

func TestBeepThemesListing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.toml")
	doc := "[themes.\"警告\"]\nforeground = \"red\"\n\n[themes.warn]\nforeground = \"purple\"\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write themes: %v", err)
	}

	out, errOut, code := runBeepCLI(t, "--no-color", "--themes", path, "themes")
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, errOut)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	// header, two file themes, four built-in themes left unshadowed
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines, got %d: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "NAME") {
		t.Fatalf("missing header: %q", lines[0])
	}
	column := -1
	for _, line := range lines[1:] {
		i := strings.Index(line, "(beep) the quick brown fox")
		if i < 0 {
			t.Fatalf("missing preview in %q", line)
		}
		width := runewidth.StringWidth(line[:i])
		if column >= 0 && width != column {
			t.Fatalf("preview column misaligned in %q: %d vs %d", line, width, column)
		}
		column = width
	}
	if !strings.Contains(out, "warn") || strings.Count(out, "built-in") != 4 {
		t.Fatalf("unexpected theme sources: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("--no-color listing contains escapes: %q", out)
	}
}

func TestBeepOriginKeepsThemeHideOrigin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.toml")
	if err := os.WriteFile(path, []byte("[themes.quiet]\nhide_origin = true\n"), 0o644); err != nil {
		t.Fatalf("write themes: %v", err)
	}
	out, errOut, code := runBeepCLI(t, "--no-color", "--id", "svc", "--themes", path, "--origin", "main.go:3", "quiet", "hi")
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, errOut)
	}
	if want := "(svc) hi\n"; out != want {
		t.Fatalf("theme hide_origin should survive --origin: got %q want %q", out, want)
	}

	out, errOut, code = runBeepCLI(t, "--no-color", "--id", "svc", "--origin", "main.go:3", "info", "hi")
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, errOut)
	}
	if want := "(svc) main.go:3: hi\n"; out != want {
		t.Fatalf("unexpected output: got %q want %q", out, want)
	}
}

func TestCoerceArgs(t *testing.T) {
	args, err := coerceArgs("%s=%d %.1f %t %% %*d %x %c", []string{"a", "5", "2.5", "true", "4", "7", "hex", "λ"})
	if err != nil {
		t.Fatalf("coerceArgs: %v", err)
	}
	want := []any{"a", int64(5), 2.5, true, int64(4), int64(7), "hex", 'λ'}
	if len(args) != len(want) {
		t.Fatalf("got %d args want %d", len(args), len(want))
	}
	for i := range want {
		if args[i] != want[i] {
			t.Fatalf("arg %d: got %T %v want %T %v", i, args[i], args[i], want[i], want[i])
		}
	}

	_, err = coerceArgs("%s %d", []string{"a", "x"})
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Fatalf("expected a wrapped syntax error, got %v", err)
	}
	if !strings.Contains(err.Error(), `argument 2 ("x") for %d:`) {
		t.Fatalf("error should name the argument and verb, got %q", err)
	}
	extra, err := coerceArgs("%s", []string{"a", "b"})
	if err != nil || extra[1] != "b" {
		t.Fatalf("extra arguments should stay strings: %v %v", extra, err)
	}
}

func TestParseOrigin(t *testing.T) {
	file, line, err := parseOrigin("C:/src/main.go:12")
	if err != nil || file != "C:/src/main.go" || line != 12 {
		t.Fatalf("parseOrigin: %q %d %v", file, line, err)
	}
	if file, _, err := parseOrigin(""); err != nil || file != "" {
		t.Fatalf("empty origin should be allowed: %q %v", file, err)
	}
	for _, bad := range []string{"main.go", ":3", "main.go:x", "main.go:-1"} {
		if _, _, err := parseOrigin(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
