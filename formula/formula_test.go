package formula

import (
	"strings"
	"testing"
)

func TestToMathML(t *testing.T) {
	got, err := ToMathML(`x^2 + y^2 = z^2`)
	if err != nil {
		t.Fatalf("ToMathML() error = %v", err)
	}
	if !strings.HasPrefix(got, "<math") || !strings.HasSuffix(got, "</math>") {
		t.Fatalf("result is not a math element: %q", got)
	}
}

func TestToMathMLEmpty(t *testing.T) {
	if _, err := ToMathML("   "); err == nil {
		t.Fatalf("expected error for empty formula")
	}
}
