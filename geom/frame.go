package geom

// CropFrame records how a page-space rectangle was mapped onto a padded
// crop canvas. The cropped pixels sit at (PadX, PadY) on the canvas, so a
// page-space point p maps to the local point p - Crop.Min + Pad. Frames are
// ephemeral: they exist only while a single region is being processed and
// every box leaving that processing step is translated back to page space.
type CropFrame struct {
	// Crop is the page-space rectangle that was cut out.
	Crop Rect
	// PadX, PadY is the canvas margin around the cropped pixels on each side.
	PadX, PadY float64
}

// CanvasWidth returns the width of the padded crop canvas.
func (f CropFrame) CanvasWidth() float64 { return f.Crop.Width() + 2*f.PadX }

// CanvasHeight returns the height of the padded crop canvas.
func (f CropFrame) CanvasHeight() float64 { return f.Crop.Height() + 2*f.PadY }

// CanvasBounds returns the canvas extent in local coordinates.
func (f CropFrame) CanvasBounds() Rect {
	return Rect{0, 0, f.CanvasWidth(), f.CanvasHeight()}
}

// Origin returns the page-space position of the canvas's upper-left corner.
func (f CropFrame) Origin() Point {
	return Point{X: f.Crop.X0 - f.PadX, Y: f.Crop.Y0 - f.PadY}
}

// ToLocal translates a page-space rectangle into the crop's local frame.
func (f CropFrame) ToLocal(r Rect) Rect {
	o := f.Origin()
	return r.Translate(-o.X, -o.Y)
}

// ToPage translates a local rectangle back into page coordinates.
func (f CropFrame) ToPage(r Rect) Rect {
	o := f.Origin()
	return r.Translate(o.X, o.Y)
}
