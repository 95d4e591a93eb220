// Package heightmap samples grayscale images as terrain heights and
// displaces plane meshes with them.
package heightmap

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Heightmap is an 8-bit grayscale height image. Pixel (0, 0) is the
// top-left corner.
type Heightmap struct {
	img *image.Gray
}

// Load decodes a PNG, JPEG, BMP, TIFF or WebP file into a heightmap.
func Load(path string) (*Heightmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("heightmap: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("heightmap: decode %q: %w", path, err)
	}
	hm := FromImage(img)
	if hm.Width() < 1 || hm.Height() < 1 {
		return nil, fmt.Errorf("heightmap: %q (%s) has no pixels", path, format)
	}
	return hm, nil
}

// FromImage converts any image to a grayscale heightmap anchored at (0, 0).
func FromImage(src image.Image) *Heightmap {
	if g, ok := src.(*image.Gray); ok && g.Rect.Min == (image.Point{}) {
		return &Heightmap{img: g}
	}
	b := src.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), src, b.Min, draw.Src)
	return &Heightmap{img: gray}
}

// FromNoise renders a width x height heightmap from a [-1,1] noise field
// sampled at pixel coordinates times frequency. Negative sizes count as zero.
func FromNoise(width, height int, frequency float64, noise interface{ Eval2(x, y float64) float64 }) *Heightmap {
	width, height = max(width, 0), max(height, 0)
	gray := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := (noise.Eval2(float64(x)*frequency, float64(y)*frequency) + 1) * 0.5
			v = math.Max(0, math.Min(1, v))
			gray.Pix[y*gray.Stride+x] = uint8(math.Round(v * 255))
		}
	}
	return &Heightmap{img: gray}
}

func (h *Heightmap) Width() int  { return h.img.Rect.Dx() }
func (h *Heightmap) Height() int { return h.img.Rect.Dy() }

// Image returns the underlying grayscale image.
func (h *Heightmap) Image() *image.Gray { return h.img }

func (h *Heightmap) empty() bool { return h.Width() < 1 || h.Height() < 1 }

// Resize returns a copy scaled to width x height with bilinear filtering.
func (h *Heightmap) Resize(width, height int) *Heightmap {
	dst := image.NewGray(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), h.img, h.img.Bounds(), draw.Src, nil)
	return &Heightmap{img: dst}
}

// Pixel returns the height at integer pixel (x, y) in [0, 1]. Coordinates
// outside the image are clamped to the nearest edge. An image with no pixels
// reads as 0 everywhere.
func (h *Heightmap) Pixel(x, y int) float64 {
	if h.empty() {
		return 0
	}
	x = clampInt(x, 0, h.Width()-1)
	y = clampInt(y, 0, h.Height()-1)
	return float64(h.img.Pix[y*h.img.Stride+x]) / 255.0
}

// BilinearSample returns the height at normalised coordinates, where (0, 0)
// is the first pixel and (1, 1) the last. Out-of-range input clamps to the edge.
func (h *Heightmap) BilinearSample(xf, yf float64) float64 {
	if h.empty() {
		return 0
	}
	w := float64(h.Width() - 1)
	hh := float64(h.Height() - 1)

	x := clamp(xf, 0, 1) * w
	y := clamp(yf, 0, 1) * hh

	x1 := int(math.Floor(x))
	y1 := int(math.Floor(y))
	x2 := min(x1+1, h.Width()-1)
	y2 := min(y1+1, h.Height()-1)

	dx := x - float64(x1)
	dy := y - float64(y1)

	p11 := h.Pixel(x1, y1)
	p21 := h.Pixel(x2, y1)
	p12 := h.Pixel(x1, y2)
	p22 := h.Pixel(x2, y2)

	top := p11 + (p21-p11)*dx
	bottom := p12 + (p22-p12)*dx
	return top + (bottom-top)*dy
}

// Sample implements Sampler.
func (h *Heightmap) Sample(xf, yf float64) float64 {
	return h.BilinearSample(xf, yf)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
