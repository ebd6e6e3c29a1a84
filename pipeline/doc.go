// Package pipeline coordinates the multi-stage batch analysis of page
// images: layout detection, formula detection/recognition, per-region OCR
// and table recognition, and the document-level driver that assembles
// per-page records. Stages run strictly in that order; any parallelism is
// the model backends' concern.
package pipeline
