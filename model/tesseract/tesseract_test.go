package tesseract

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"os/exec"
	"strings"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lemonit-eric-mao/MinerU/geom"
)

// ensureTesseractAvailable checks that the tesseract binary is reachable.
func ensureTesseractAvailable(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("tesseract"); err != nil {
		t.Skip("tesseract not installed in PATH")
	}
}

func textImage(text string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 240, 80))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(10, 50),
	}
	d.DrawString(text)
	return img
}

func TestRecognize(t *testing.T) {
	ensureTesseractAvailable(t)

	engine := New("eng")
	regions, err := engine.Recognize(context.Background(), textImage("Hello world"), nil, true)
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if len(regions) == 0 {
		t.Fatalf("expected at least one text line")
	}
	var all []string
	for _, r := range regions {
		if r.Box.IsEmpty() {
			t.Fatalf("empty box for %q", r.Text)
		}
		all = append(all, r.Text)
	}
	if joined := strings.ToLower(strings.Join(all, " ")); !strings.Contains(joined, "hello") {
		t.Fatalf("recognized text %q does not contain target", joined)
	}
}

func TestRecognizeDetectionOnly(t *testing.T) {
	ensureTesseractAvailable(t)

	engine := New("eng")
	regions, err := engine.Recognize(context.Background(), textImage("Hello world"), nil, false)
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	for _, r := range regions {
		if r.Text != "" {
			t.Fatalf("detection-only result carries text %q", r.Text)
		}
	}
}

func TestRecognizeSkipsMaskedLines(t *testing.T) {
	ensureTesseractAvailable(t)

	engine := New("eng")
	// Mask the whole image: every line must be suppressed.
	mask := []geom.Rect{{X0: 0, Y0: 0, X1: 240, Y1: 80}}
	regions, err := engine.Recognize(context.Background(), textImage("Hello world"), mask, true)
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if len(regions) != 0 {
		t.Fatalf("masked lines were returned: %d", len(regions))
	}
}

func TestOverlapsAny(t *testing.T) {
	box := geom.Rect{10, 10, 20, 20}
	if overlapsAny(box, nil) {
		t.Fatalf("no masks should mean no overlap")
	}
	if !overlapsAny(box, []geom.Rect{{15, 15, 30, 30}}) {
		t.Fatalf("expected overlap")
	}
	if overlapsAny(box, []geom.Rect{{30, 30, 40, 40}}) {
		t.Fatalf("disjoint mask reported as overlap")
	}
}
