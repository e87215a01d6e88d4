package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-cpu-pathtracer/pkg/core"
)

// PixelBuffer is a row-major frame of packed 0x00RRGGBB pixels. Row 0 is the top of the image.
type PixelBuffer struct {
	Width  int
	Height int
	Pixels []uint32
}

// NewPixelBuffer allocates a black buffer
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]uint32, width*height),
	}
}

// Index returns the position of pixel (x, y) in Pixels
func (b *PixelBuffer) Index(x, y int) int {
	return y*b.Width + x
}

// At returns the packed pixel at (x, y)
func (b *PixelBuffer) At(x, y int) uint32 {
	return b.Pixels[b.Index(x, y)]
}

// Row returns the pixels of row y
func (b *PixelBuffer) Row(y int) []uint32 {
	start := b.Index(0, y)
	return b.Pixels[start : start+b.Width]
}

// ToImage converts the buffer to an opaque RGBA image for encoders and presenters
func (b *PixelBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			r, g, bl := UnpackColor(b.At(x, y))
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: bl, A: 255})
		}
	}
	return img
}

// PackColor scales each channel of c by 255, clamps it to [0, 255] and packs
// red into bits 23:16, green into 15:8 and blue into 7:0.
func PackColor(c core.Vec3) uint32 {
	return uint32(channel(c.X))<<16 | uint32(channel(c.Y))<<8 | uint32(channel(c.Z))
}

// UnpackColor splits a packed pixel into its channels
func UnpackColor(p uint32) (r, g, b uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// channel converts one color component to a byte. NaN maps to 0.
func channel(v float64) uint8 {
	scaled := 255 * v
	if !(scaled > 0) {
		return 0
	}
	if scaled >= 255 {
		return 255
	}
	return uint8(scaled)
}
