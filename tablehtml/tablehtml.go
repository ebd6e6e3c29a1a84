// Package tablehtml validates and inspects the markup returned by table
// recognition backends.
package tablehtml

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Valid reports whether markup looks like a complete recognition result:
// non-empty, with the trimmed content ending in the closing tag of either a
// full document wrapper or a table-only wrapper. Backends that get cut off
// mid-generation fail this check.
func Valid(markup string) bool {
	trimmed := strings.TrimSpace(markup)
	if trimmed == "" {
		return false
	}
	return strings.HasSuffix(trimmed, "</html>") || strings.HasSuffix(trimmed, "</table>")
}

// CellCount parses the markup and counts table cells (td/th). It is used
// for diagnostics only; the markup's validity is decided by Valid.
func CellCount(markup string) (int, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return 0, fmt.Errorf("parse table markup: %w", err)
	}
	count := 0
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Td, atom.Th:
				count++
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return count, nil
}
