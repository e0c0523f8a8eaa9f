package runner_test

import (
	"testing"

	"notecage/internal/runner"
)

func TestNormalize_PassThrough(t *testing.T) {
	n := runner.Normalize(`<get-notes/>`)
	if n.Violation || n.Command != `<get-notes/>` {
		t.Fatalf("unexpected result: %+v", n)
	}
}

func TestNormalize_StripsThinkBlock(t *testing.T) {
	n := runner.Normalize("<think>ignore</think><get-notes/>")
	if n.Violation || n.Command != `<get-notes/>` {
		t.Fatalf("unexpected result: %+v", n)
	}
}

func TestNormalize_ThinkBlock_MultilineAndCase(t *testing.T) {
	n := runner.Normalize("  <THINK>line one\nline two\n</Think>\n  <get-note name=\"a\"/>")
	if n.Violation || n.Command != `<get-note name="a"/>` {
		t.Fatalf("unexpected result: %+v", n)
	}
}

func TestNormalize_ThinkBlock_FirstCloseWins(t *testing.T) {
	// Only the span up to the first closing tag is discarded.
	n := runner.Normalize("<think>a</think>rest</think>")
	if n.Command != "rest</think>" {
		t.Fatalf("got %q", n.Command)
	}
}

func TestNormalize_UnclosedThinkBlockLeftAlone(t *testing.T) {
	n := runner.Normalize("<think>never closed <get-notes/>")
	if n.Command != "<think>never closed <get-notes/>" {
		t.Fatalf("got %q", n.Command)
	}
}

func TestNormalize_ThinkBlockNotAtStartLeftAlone(t *testing.T) {
	in := "<get-notes/><think>late</think>"
	if n := runner.Normalize(in); n.Command != in {
		t.Fatalf("got %q", n.Command)
	}
}

func TestNormalize_AssistantPrefixIsViolation(t *testing.T) {
	n := runner.Normalize("assistant> <get-notes/>")
	if !n.Violation {
		t.Fatal("want violation")
	}
	if n.Command != `<get-notes/>` {
		t.Fatalf("intended command: got %q", n.Command)
	}
}

func TestNormalize_AssistantPrefix_CaseInsensitive(t *testing.T) {
	n := runner.Normalize("  ASSISTANT>   <get-note name=\"a\"/>")
	if !n.Violation || n.Command != `<get-note name="a"/>` {
		t.Fatalf("unexpected result: %+v", n)
	}
}

func TestNormalize_ThinkThenPrefix(t *testing.T) {
	// The marker check runs on the post-strip text, so a marker hiding
	// behind a reasoning block still counts.
	n := runner.Normalize("<think>hmm</think>assistant> <get-notes/>")
	if !n.Violation || n.Command != `<get-notes/>` {
		t.Fatalf("unexpected result: %+v", n)
	}
}

func TestNormalize_BareMarker(t *testing.T) {
	n := runner.Normalize("assistant>")
	if !n.Violation || n.Command != "" {
		t.Fatalf("unexpected result: %+v", n)
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	n := runner.Normalize("   \n ")
	if n.Violation || n.Command != "" {
		t.Fatalf("unexpected result: %+v", n)
	}
}
