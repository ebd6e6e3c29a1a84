// Package config carries the user-facing options of the analysis pipeline
// and their normalization rules.
package config

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Options is the recognized configuration surface. Zero values mean "unset"
// and are resolved by Normalize.
type Options struct {
	// OCR enables text recognition; with OCR false the OCR stage still runs
	// text detection.
	OCR bool `yaml:"ocr"`
	// ShowLog enables informational logging.
	ShowLog bool `yaml:"show_log"`
	// StartPage and EndPage bound the analyzed page range, inclusive.
	// EndPage < 0 means the last page.
	StartPage int `yaml:"start_page"`
	EndPage   int `yaml:"end_page"`
	// Lang is the recognition language hint; empty means unset.
	Lang string `yaml:"lang"`
	// LayoutModel selects the layout-detection backend by name.
	LayoutModel string `yaml:"layout_model"`
	// Formula and Table toggle their stages.
	Formula bool `yaml:"formula_enable"`
	Table   bool `yaml:"table_enable"`
	// BatchRatio multiplies every stage's base batch size; 0 means 1.
	BatchRatio int `yaml:"batch_ratio"`
	// DPI is the page rasterization resolution for PDF datasets.
	DPI int `yaml:"dpi"`
}

// Default returns the options used when nothing is configured: all stages
// enabled, full page range, unit batch ratio.
func Default() Options {
	return Options{
		EndPage:    -1,
		Formula:    true,
		Table:      true,
		BatchRatio: 1,
	}
}

// Load reads YAML options from path on top of the defaults.
func Load(path string) (Options, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse config %s: %w", path, err)
	}
	return opts, nil
}

// Normalize resolves unset values against a document with pageCount pages:
// the language hint is canonicalized (empty stays unset), the batch ratio
// defaults to 1, and the page range is clamped to the document.
func (o Options) Normalize(pageCount int) Options {
	o.Lang = NormalizeLang(o.Lang)
	if o.BatchRatio <= 0 {
		o.BatchRatio = 1
	}
	if o.StartPage < 0 {
		o.StartPage = 0
	}
	if o.EndPage < 0 || o.EndPage >= pageCount {
		o.EndPage = pageCount - 1
	}
	return o
}

// NormalizeLang canonicalizes a language hint to its base subtag ("en",
// "zh", ...). Empty input stays empty; an unparseable hint is passed through
// trimmed so backends with their own naming still receive it.
func NormalizeLang(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return ""
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return lang
	}
	base, conf := tag.Base()
	if conf == language.No {
		return lang
	}
	return base.String()
}
