package main

import (
	"bytes"
	"strings"
	"testing"
)

func captureRun(t *testing.T, format string, debug bool) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(&out, &errOut, format, debug)
	return code, out.String(), errOut.String()
}

func TestRunText(t *testing.T) {
	code, out, errOut := captureRun(t, "text", false)
	if code != 0 {
		t.Fatalf("run exit=%d\nstderr:\n%s", code, errOut)
	}
	expected := "dummy: (int*, double) --> ((int, (int, int) --> (int)) --> (int))\n"
	if out != expected {
		t.Fatalf("expected %q, got %q", expected, out)
	}
	if errOut != "" {
		t.Fatalf("unexpected stderr:\n%s", errOut)
	}
}

func TestRunYAML(t *testing.T) {
	code, out, errOut := captureRun(t, "yaml", false)
	if code != 0 {
		t.Fatalf("run exit=%d\nstderr:\n%s", code, errOut)
	}
	for _, want := range []string{"kind: func", "kind: pointer", "name: double"} {
		if !strings.Contains(out, want) {
			t.Fatalf("YAML missing %q:\n%s", want, out)
		}
	}
}

func TestRunTable(t *testing.T) {
	code, out, errOut := captureRun(t, "table", false)
	if code != 0 {
		t.Fatalf("run exit=%d\nstderr:\n%s", code, errOut)
	}
	for _, want := range []string{"PROTOTYPE", "dummy", "BinOp", "FcnPtrType", "(int, (int, int) --> (int)) --> (int)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
}

func TestRunDebug(t *testing.T) {
	code, out, errOut := captureRun(t, "text", true)
	if code != 0 {
		t.Fatalf("run exit=%d\nstderr:\n%s", code, errOut)
	}
	if !strings.HasPrefix(out, "dummy: ") {
		t.Fatalf("unexpected stdout %q", out)
	}
	if !strings.Contains(errOut, "Params") {
		t.Fatalf("debug dump missing tree:\n%s", errOut)
	}
}

func TestRunUnknownFormat(t *testing.T) {
	code, out, errOut := captureRun(t, "json", false)
	if code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
	if out != "" || !strings.Contains(errOut, `unknown format "json"`) {
		t.Fatalf("unexpected output\nstdout:\n%s\nstderr:\n%s", out, errOut)
	}
}
