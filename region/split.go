package region

import "github.com/lemonit-eric-mao/MinerU/geom"

// SplitResult holds the three per-stage views over one page's detections.
// The slices index into the same underlying regions by position, not by
// pointer: OCR and Tables carry indices into the original slice so later
// stages can mutate the page's regions in place, while FormulaContext carries
// only the boxes needed for coordinate adjustment.
type SplitResult struct {
	// OCR indexes regions that are cropped for text detection/recognition.
	OCR []int
	// Tables indexes regions that go through table recognition.
	Tables []int
	// FormulaContext holds the boxes of formula regions on the page, used to
	// mask math inside OCR crops.
	FormulaContext []geom.Rect
}

// Split partitions one page's detections by category. It is a pure function
// of the categories: the input slice is not mutated and no region appears in
// more than one of the OCR/Tables views.
func Split(regions []Region) SplitResult {
	var out SplitResult
	for i, r := range regions {
		switch {
		case r.Category.IsFormulaContext():
			out.FormulaContext = append(out.FormulaContext, r.Box)
		case r.Category.NeedsOCR():
			out.OCR = append(out.OCR, i)
		case r.Category.IsTable():
			out.Tables = append(out.Tables, i)
		}
	}
	return out
}
