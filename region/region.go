// Package region defines the detection record shared by every stage of the
// analysis pipeline and the category-driven partitioning of a page's
// detections into per-stage work lists.
package region

import "github.com/lemonit-eric-mao/MinerU/geom"

// Category identifies what a detected region is. The numeric values match
// the layout model's class ids and are stable across runs.
type Category int

const (
	Title         Category = 0
	PlainText     Category = 1
	Abandoned     Category = 2
	Figure        Category = 3
	FigureCaption Category = 4
	Table         Category = 5
	TableCaption  Category = 6
	TableFootnote Category = 7
	// IsolatedFormula is a display formula found by the layout model itself.
	IsolatedFormula Category = 8
	FormulaCaption  Category = 9
	// InlineFormula and DisplayFormula are produced by the formula detector.
	InlineFormula  Category = 13
	DisplayFormula Category = 14
	// TextLine is a recognized text line produced by the OCR stage.
	TextLine Category = 15
)

var categoryNames = map[Category]string{
	Title:           "title",
	PlainText:       "plain_text",
	Abandoned:       "abandoned",
	Figure:          "figure",
	FigureCaption:   "figure_caption",
	Table:           "table",
	TableCaption:    "table_caption",
	TableFootnote:   "table_footnote",
	IsolatedFormula: "isolated_formula",
	FormulaCaption:  "formula_caption",
	InlineFormula:   "inline_formula",
	DisplayFormula:  "display_formula",
	TextLine:        "text_line",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// IsFormulaContext reports whether the category participates in formula
// suppression during OCR cropping.
func (c Category) IsFormulaContext() bool {
	return c == InlineFormula || c == DisplayFormula
}

// NeedsOCR reports whether regions of this category are cropped and sent
// through text detection/recognition.
func (c Category) NeedsOCR() bool {
	switch c {
	case Title, PlainText, Abandoned, FigureCaption, TableCaption, TableFootnote:
		return true
	}
	return false
}

// IsTable reports whether the category goes through table recognition.
func (c Category) IsTable() bool { return c == Table }

// Region is one detection on a page. Box is always in the coordinate space
// of the original page image; stages that work inside a crop keep adjusted
// copies locally and never let them escape. Which content fields are
// populated depends on Category: Text for TextLine, LaTeX/MathML for
// formula categories, HTML/CellBoxes for Table.
type Region struct {
	Box        geom.Rect `json:"box"`
	Category   Category  `json:"category_id"`
	Confidence float64   `json:"score,omitempty"`

	Text      string      `json:"text,omitempty"`
	LaTeX     string      `json:"latex,omitempty"`
	MathML    string      `json:"mathml,omitempty"`
	HTML      string      `json:"html,omitempty"`
	CellBoxes []geom.Rect `json:"cell_boxes,omitempty"`
}

// PageRecord is the externally visible per-page result: the page's number
// and pixel dimensions plus every region detected on it. Pages outside the
// analyzed range carry an empty region list.
type PageRecord struct {
	PageNo  int      `json:"page_no"`
	Width   float64  `json:"width"`
	Height  float64  `json:"height"`
	Regions []Region `json:"layout_dets"`
}
