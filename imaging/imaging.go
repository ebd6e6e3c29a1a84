// Package imaging implements the pixel-level half of region cropping: the
// page-space arithmetic lives in geom, this package produces the actual
// padded crop canvas handed to recognition engines.
package imaging

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/lemonit-eric-mao/MinerU/geom"
)

// CropPad cuts box out of src and pastes it onto a white canvas with a
// padX/padY margin on every side. The returned frame translates between the
// canvas' local coordinates and page coordinates. The box is clipped to the
// source bounds before cropping.
func CropPad(src image.Image, box geom.Rect, padX, padY int) (*image.RGBA, geom.CropFrame) {
	bounds := src.Bounds()
	pageRect := geom.Rect{
		X0: float64(bounds.Min.X), Y0: float64(bounds.Min.Y),
		X1: float64(bounds.Max.X), Y1: float64(bounds.Max.Y),
	}
	box = box.Clip(pageRect)

	frame := geom.CropFrame{Crop: box, PadX: float64(padX), PadY: float64(padY)}
	canvas := image.NewRGBA(image.Rect(0, 0, int(frame.CanvasWidth()), int(frame.CanvasHeight())))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	srcRect := image.Rect(int(box.X0), int(box.Y0), int(box.X1), int(box.Y1))
	draw.Copy(canvas, image.Pt(padX, padY), src, srcRect, draw.Src, nil)
	return canvas, frame
}

// Crop cuts box out of src without padding, sharing pixels with the source
// when it supports sub-images. The box is clipped to the source bounds.
func Crop(src image.Image, box geom.Rect) image.Image {
	rect := image.Rect(int(box.X0), int(box.Y0), int(box.X1), int(box.Y1)).Intersect(src.Bounds())
	if sub, ok := src.(interface {
		SubImage(r image.Rectangle) image.Image
	}); ok {
		return sub.SubImage(rect)
	}
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Copy(dst, image.Point{}, src, rect, draw.Src, nil)
	return dst
}

// ToRGBA converts an image to the packed RGBA layout recognition engines
// expect. Images that already use that layout are returned unchanged.
func ToRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	dst := image.NewRGBA(src.Bounds())
	draw.Copy(dst, src.Bounds().Min, src, src.Bounds(), draw.Src, nil)
	return dst
}

// Scale resizes src to width x height using bilinear interpolation.
func Scale(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
