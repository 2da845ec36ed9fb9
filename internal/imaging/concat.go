package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ResizeToHeight scales img to the target height, keeping its aspect ratio.
// The new width is truncated and never drops below one pixel. An image that
// already has the target height is returned unchanged.
func ResizeToHeight(img image.Image, height int) image.Image {
	b := img.Bounds()
	if b.Dy() == height || b.Dy() == 0 {
		return img
	}
	width := b.Dx() * height / b.Dy()
	return imaging.Resize(img, atLeastOne(width), atLeastOne(height), imaging.Linear)
}

// ResizeToWidth scales img to the target width, keeping its aspect ratio.
// The new height is truncated and never drops below one pixel. An image that
// already has the target width is returned unchanged.
func ResizeToWidth(img image.Image, width int) image.Image {
	b := img.Bounds()
	if b.Dx() == width || b.Dx() == 0 {
		return img
	}
	height := b.Dy() * width / b.Dx()
	return imaging.Resize(img, atLeastOne(width), atLeastOne(height), imaging.Linear)
}

// SideBySide normalizes left and right to the smaller of their two heights and
// places them next to each other, left first.
func SideBySide(left, right image.Image) *image.NRGBA {
	height := left.Bounds().Dy()
	if h := right.Bounds().Dy(); h < height {
		height = h
	}
	return HConcat(ResizeToHeight(left, height), ResizeToHeight(right, height))
}

// HConcat joins images left to right. The canvas is as tall as the tallest
// input; shorter inputs are top-aligned over black.
func HConcat(images ...image.Image) *image.NRGBA {
	width, height := 0, 0
	for _, img := range images {
		b := img.Bounds()
		width += b.Dx()
		if b.Dy() > height {
			height = b.Dy()
		}
	}

	canvas := imaging.New(width, height, color.Black)
	x := 0
	for _, img := range images {
		canvas = imaging.Paste(canvas, img, image.Pt(x, 0))
		x += img.Bounds().Dx()
	}
	return canvas
}

// VConcat stacks images top to bottom. The canvas is as wide as the widest
// input; narrower inputs are left-aligned over black.
func VConcat(images ...image.Image) *image.NRGBA {
	width, height := 0, 0
	for _, img := range images {
		b := img.Bounds()
		height += b.Dy()
		if b.Dx() > width {
			width = b.Dx()
		}
	}

	canvas := imaging.New(width, height, color.Black)
	y := 0
	for _, img := range images {
		canvas = imaging.Paste(canvas, img, image.Pt(0, y))
		y += img.Bounds().Dy()
	}
	return canvas
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
