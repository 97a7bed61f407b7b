package diagnostics_test

import (
	"strings"
	"testing"

	"github.com/chrismichaelps/solis/internal/diagnostics"
)

func TestErrorRendersPositionPhaseAndCode(t *testing.T) {
	err := diagnostics.New(diagnostics.PhaseEvaluator, diagnostics.CodeUnboundVariable, diagnostics.Position{Line: 3, Column: 7}, "foo")
	got := err.Error()
	for _, want := range []string{"3:7", "evaluator", "RUN001", "unbound variable: foo"} {
		if !strings.Contains(got, want) {
			t.Errorf("error %q missing %q", got, want)
		}
	}
}

func TestErrorWithoutPositionOmitsLineColumn(t *testing.T) {
	err := diagnostics.New(diagnostics.PhaseEvaluator, diagnostics.CodeInfiniteLoop, diagnostics.Position{})
	got := err.Error()
	if strings.HasPrefix(got, "0:0") {
		t.Fatalf("expected no leading 0:0 position, got %q", got)
	}
}

func TestNewfUsesExplicitMessage(t *testing.T) {
	err := diagnostics.Newf(diagnostics.PhaseParser, diagnostics.CodeParseError, diagnostics.Position{Line: 1, Column: 1}, "unexpected token %q", "+")
	if !strings.Contains(err.Error(), `unexpected token "+"`) {
		t.Fatalf("got %q", err.Error())
	}
}
