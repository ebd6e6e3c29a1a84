// Command mineru-analyze runs the batch analysis pipeline over a PDF or a
// directory of page images and writes the per-page detections as JSON.
//
// Only backends that ship with this module are wired in: the full-page
// layout heuristic and Tesseract text recognition. Formula and table
// recognition need externally provided backends and are disabled here.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/lemonit-eric-mao/MinerU/accel"
	"github.com/lemonit-eric-mao/MinerU/config"
	"github.com/lemonit-eric-mao/MinerU/dataset"
	"github.com/lemonit-eric-mao/MinerU/model"
	"github.com/lemonit-eric-mao/MinerU/model/tesseract"
	"github.com/lemonit-eric-mao/MinerU/pipeline"
)

type options struct {
	inputPath  string
	outPath    string
	configPath string
	cpu        bool
	opts       config.Options
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mineru-analyze: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "mineru-analyze: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: mineru-analyze [flags] <pdf-or-image-dir>\n")
		flag.PrintDefaults()
	}
	configPath := flag.String("config", "", "YAML config file (optional)")
	outPath := flag.String("out", "", "Output JSON path (default stdout)")
	lang := flag.String("lang", "", "Recognition language hint")
	startPage := flag.Int("start", 0, "First page to analyze (inclusive)")
	endPage := flag.Int("end", -1, "Last page to analyze (inclusive, -1 = last)")
	dpi := flag.Int("dpi", 0, "PDF rasterization DPI")
	showLog := flag.Bool("v", false, "Log stage timings")
	cpu := flag.Bool("cpu", false, "Run on the host instead of requiring an accelerator")
	flag.Parse()

	if flag.NArg() != 1 {
		return options{}, fmt.Errorf("exactly one input path is required")
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return options{}, err
		}
	}
	cfg.OCR = true
	cfg.ShowLog = *showLog
	if *lang != "" {
		cfg.Lang = *lang
	}
	cfg.StartPage = *startPage
	cfg.EndPage = *endPage
	if *dpi > 0 {
		cfg.DPI = *dpi
	}
	// No formula/table backends are packaged with the CLI.
	cfg.Formula = false
	cfg.Table = false
	cfg.LayoutModel = model.FullPageLayout

	return options{
		inputPath:  flag.Arg(0),
		outPath:    *outPath,
		configPath: *configPath,
		cpu:        *cpu,
		opts:       cfg,
	}, nil
}

func run(o options) error {
	ds, err := openDataset(o.inputPath, o.opts.DPI)
	if err != nil {
		return err
	}
	defer ds.Close()

	device := accel.CUDA()
	if o.cpu {
		device = accel.Host()
	}

	provider := model.NewProvider(func(key model.Key) (*model.Bundle, error) {
		var langs []string
		if key.Lang != "" {
			langs = append(langs, key.Lang)
		}
		return &model.Bundle{
			Device:   device,
			Layout:   model.FullPage(),
			OCR:      tesseract.New(langs...),
			ApplyOCR: key.OCR,
		}, nil
	})

	result, err := pipeline.AnalyzeDocument(context.Background(), ds, provider, device, o.opts)
	if err != nil {
		return err
	}

	out := os.Stdout
	if o.outPath != "" {
		f, err := os.Create(o.outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result.Pages)
}

func openDataset(path string, dpi int) (dataset.Dataset, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return dataset.OpenImages(path)
	}
	return dataset.OpenPDF(path, dpi)
}
