// Package formula post-processes recognized formulas. Recognition backends
// emit LaTeX; downstream HTML export wants MathML, so the conversion lives
// here, next to the pipeline rather than inside any backend.
package formula

import (
	"bytes"
	"fmt"
	"strings"

	treeblood "github.com/wyatt915/goldmark-treeblood"
	"github.com/yuin/goldmark"
)

// ToMathML converts a recognized LaTeX formula to MathML markup. The LaTeX
// is wrapped in display-math delimiters and run through the markdown
// converter's math extension; the <math> element is cut out of the result.
func ToMathML(latex string) (string, error) {
	latex = strings.TrimSpace(latex)
	if latex == "" {
		return "", fmt.Errorf("empty formula")
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			treeblood.MathML(),
		),
	)

	var buf bytes.Buffer
	if err := md.Convert([]byte("$$"+latex+"$$"), &buf); err != nil {
		return "", fmt.Errorf("convert formula: %w", err)
	}

	out := buf.String()
	start := strings.Index(out, "<math")
	end := strings.LastIndex(out, "</math>")
	if start < 0 || end < 0 {
		return "", fmt.Errorf("no MathML produced for %q", latex)
	}
	return out[start : end+len("</math>")], nil
}
