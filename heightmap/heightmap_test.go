package heightmap

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"hexisland/scene"
)

// checker returns a 2x2 image: black, white on the first row, white, black below.
func checker() *image.Gray {
	g := image.NewGray(image.Rect(0, 0, 2, 2))
	g.SetGray(1, 0, color.Gray{Y: 255})
	g.SetGray(0, 1, color.Gray{Y: 255})
	return g
}

func TestPixel(t *testing.T) {
	hm := FromImage(checker())
	assert.Equal(t, 0.0, hm.Pixel(0, 0))
	assert.Equal(t, 1.0, hm.Pixel(1, 0))
	assert.Equal(t, 1.0, hm.Pixel(-5, 1), "clamped to left edge")
	assert.Equal(t, 0.0, hm.Pixel(9, 9), "clamped to corner")
}

func TestBilinearSample(t *testing.T) {
	hm := FromImage(checker())

	tests := []struct {
		xf, yf float64
		want   float64
	}{
		{0, 0, 0},
		{1, 0, 1},
		{0, 1, 1},
		{1, 1, 0},
		{0.5, 0.5, 0.5},
		{0.5, 0, 0.5},
		{0.25, 0, 0.25},
		{-1, 0, 0},
		{2, 0, 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, hm.BilinearSample(tt.xf, tt.yf), 1e-9, "(%v, %v)", tt.xf, tt.yf)
	}
}

func TestFromImageConvertsColour(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 13, 12))
	src.Set(10, 10, color.White)
	hm := FromImage(src)

	assert.Equal(t, 3, hm.Width())
	assert.Equal(t, 2, hm.Height())
	assert.Equal(t, 1.0, hm.Pixel(0, 0))
	assert.Equal(t, 0.0, hm.Pixel(1, 0))
}

func TestSinglePixel(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 1, 1))
	g.Pix[0] = 51
	hm := FromImage(g)
	assert.InDelta(t, 0.2, hm.BilinearSample(0.7, 0.3), 1e-9)
}

func TestEmptyImageReadsZero(t *testing.T) {
	for name, hm := range map[string]*Heightmap{
		"image":          FromImage(image.NewGray(image.Rect(0, 0, 0, 0))),
		"no rows":        FromImage(image.NewGray(image.Rect(0, 0, 4, 0))),
		"noise":          FromNoise(0, 0, 1, ramp{}),
		"negative noise": FromNoise(-3, 2, 1, ramp{}),
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 0.0, hm.Pixel(0, 0))
			assert.Equal(t, 0.0, hm.Pixel(5, -2))
			assert.Equal(t, 0.0, hm.BilinearSample(0.5, 0.5))
			assert.Equal(t, 0.0, hm.Sample(1, 1))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "height.png")
	f, err := os.Create(pngPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, checker()))
	require.NoError(t, f.Close())

	bmpPath := filepath.Join(dir, "height.bmp")
	f, err = os.Create(bmpPath)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, checker()))
	require.NoError(t, f.Close())

	for _, path := range []string{pngPath, bmpPath} {
		hm, err := Load(path)
		require.NoError(t, err, path)
		assert.Equal(t, 2, hm.Width())
		assert.InDelta(t, 0.5, hm.BilinearSample(0.5, 0.5), 1e-9)
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	junk := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(junk, []byte("not an image"), 0o644))
	_, err = Load(junk)
	assert.ErrorIs(t, err, image.ErrFormat)
}

func TestResize(t *testing.T) {
	hm := FromImage(checker()).Resize(8, 4)
	assert.Equal(t, 8, hm.Width())
	assert.Equal(t, 4, hm.Height())
}

type ramp struct{}

func (ramp) Eval2(x, y float64) float64 { return x - 1 }

func TestFromNoise(t *testing.T) {
	hm := FromNoise(3, 2, 1, ramp{})
	assert.Equal(t, 0.0, hm.Pixel(0, 0))
	assert.InDelta(t, 0.5, hm.Pixel(1, 1), 0.01)
	assert.Equal(t, 1.0, hm.Pixel(2, 0))
}

func TestRadial(t *testing.T) {
	r := Radial{Width: 10, Depth: 10, Falloff: 5}
	assert.Equal(t, 0.0, r.Sample(0.5, 0.5))
	assert.InDelta(t, 1, r.Sample(1, 0.5), 1e-9)
	assert.Equal(t, 1.0, r.Sample(0, 0), "clamped")
	assert.InDelta(t, 0.5, r.Sample(0.75, 0.5), 1e-9)
	assert.Equal(t, 0.0, Radial{Width: 10, Depth: 10}.Sample(0, 0))
}

func TestDisplace(t *testing.T) {
	plane := scene.CreatePlane(10, 10, 2, 2)
	Displace(plane, 10, 10, 3, FromImage(checker()))

	// corners follow the image: (-X,-Z) black, (+X,-Z) white
	assert.InDelta(t, 0, plane.Vertices[0].Position.Y, 1e-6)
	assert.InDelta(t, 3, plane.Vertices[2].Position.Y, 1e-6)
	assert.InDelta(t, 1.5, plane.Vertices[4].Position.Y, 1e-6)

	for _, v := range plane.Vertices {
		assert.InDelta(t, 1, v.Normal.Length(), 1e-4)
	}
}

func TestDisplaceFlat(t *testing.T) {
	plane := scene.CreatePlane(4, 4, 3, 3)
	Displace(plane, 4, 4, 2, SamplerFunc(func(float64, float64) float64 { return 0.5 }))
	for _, v := range plane.Vertices {
		assert.InDelta(t, 1, v.Position.Y, 1e-6)
		assert.InDelta(t, 1, v.Normal.Y, 1e-4)
	}
}
