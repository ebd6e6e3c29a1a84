package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	opts := Default()
	if !opts.Formula || !opts.Table {
		t.Fatalf("formula/table should default on: %+v", opts)
	}
	if opts.EndPage != -1 {
		t.Fatalf("EndPage default = %d", opts.EndPage)
	}
	if opts.BatchRatio != 1 {
		t.Fatalf("BatchRatio default = %d", opts.BatchRatio)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "ocr: true\nlang: en-US\nend_page: 4\ntable_enable: false\nbatch_ratio: 2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !opts.OCR || opts.Table || opts.EndPage != 4 || opts.BatchRatio != 2 {
		t.Fatalf("unexpected options: %+v", opts)
	}
	// Unmentioned keys keep their defaults.
	if !opts.Formula {
		t.Fatalf("formula default lost on load")
	}
}

func TestNormalize(t *testing.T) {
	opts := Options{StartPage: -3, EndPage: 99, Lang: " en-US "}.Normalize(10)
	if opts.StartPage != 0 {
		t.Fatalf("StartPage = %d", opts.StartPage)
	}
	if opts.EndPage != 9 {
		t.Fatalf("EndPage = %d", opts.EndPage)
	}
	if opts.BatchRatio != 1 {
		t.Fatalf("BatchRatio = %d", opts.BatchRatio)
	}
	if opts.Lang != "en" {
		t.Fatalf("Lang = %q", opts.Lang)
	}

	opts = Options{EndPage: 3}.Normalize(10)
	if opts.EndPage != 3 {
		t.Fatalf("in-range EndPage clamped to %d", opts.EndPage)
	}
}

func TestNormalizeLang(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"  ", ""},
		{"en", "en"},
		{"en-US", "en"},
		{"zh-Hans", "zh"},
		{"ch_doc", "ch_doc"}, // backend-specific name passes through
	}
	for _, c := range cases {
		if got := NormalizeLang(c.in); got != c.want {
			t.Fatalf("NormalizeLang(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
